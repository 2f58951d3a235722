package utils

import (
	"crypto/rand"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the length of generated membership codes
const CodeLength = 8

// GenerateUniqueCode returns an 8-character uppercase base-36 code.
// Uniqueness is not checked against existing codes; codes are short
// human-readable identifiers, and validation always pairs them with the
// member's email.
func GenerateUniqueCode() string {
	buf := make([]byte, CodeLength)
	rand.Read(buf)

	code := make([]byte, CodeLength)
	for i, b := range buf {
		code[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(code)
}
