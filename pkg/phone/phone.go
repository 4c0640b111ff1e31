// Package phone normalizes customer phone numbers for WhatsApp delivery.
package phone

import (
	"errors"
	"strings"
)

// ErrInvalidPhone means fewer than 10 digits remained after stripping
// formatting. It blocks auto-send eligibility and explicit API sends.
var ErrInvalidPhone = errors.New("invalid phone number")

// Digits strips every non-digit character.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize strips non-digits and prefixes country code 91 when exactly 10
// digits remain. Fewer than 10 digits is rejected; longer numbers are
// assumed to already carry a country code and pass through unchanged.
func Normalize(raw string) (string, error) {
	digits := Digits(raw)
	if len(digits) < 10 {
		return "", ErrInvalidPhone
	}
	if len(digits) == 10 {
		return "91" + digits, nil
	}
	return digits, nil
}

// Eligible reports whether raw normalizes to a sendable number.
func Eligible(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
