package common

import "strings"

type Email string

// NewEmail normalizes a raw address so lookups and token binding are
// case-insensitive.
func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}
