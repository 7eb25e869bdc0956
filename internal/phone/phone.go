package phone

import (
	"strings"
)

const (
	MinDigits = 6
	MaxDigits = 15

	// MaxInputLength caps the local-number field while typing.
	MaxInputLength = 20
)

// DigitCount counts ASCII digits in raw.
func DigitCount(raw string) int {
	n := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// ValidateNumber reports whether raw holds between 6 and 15 digits once every
// other character is ignored.
func ValidateNumber(raw string) bool {
	n := DigitCount(raw)
	return n >= MinDigits && n <= MaxDigits
}

// FormatDisplay joins the dial prefix of countryCode and the local number.
// Unknown codes yield the trimmed local number alone.
func FormatDisplay(countryCode, localNumber string) string {
	c, ok := Lookup(countryCode)
	if !ok {
		return strings.TrimSpace(localNumber)
	}
	return strings.TrimSpace(c.Dial + " " + localNumber)
}

// Sanitize keeps digits, spaces, hyphens and parentheses, silently dropping
// everything else, and truncates to MaxInputLength characters.
func Sanitize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	n := 0
	for _, r := range input {
		if n == MaxInputLength {
			break
		}
		if IsAllowedRune(r) {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}

// IsAllowedRune is the per-keystroke check behind Sanitize.
func IsAllowedRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == ' ' || r == '-' || r == '(' || r == ')'
}
