package entity

import "errors"

// Closed error set. Callers classify failures with errors.Is instead of
// matching message strings.
var (
	ErrValidation   = errors.New("validation error")
	ErrPersistence  = errors.New("persistence error")
	ErrNotification = errors.New("notification error")
	ErrNotFound     = errors.New("not found")
)
