package repository

import "context"

// Mailer sends one transactional email. Implementations surface provider
// failures as errors without retrying; callers decide whether a failure is
// terminal.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
