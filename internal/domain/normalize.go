package domain

import "strings"

// PIN length bounds for newly set PINs. Existing stored PINs are
// compared as-is and never re-validated.
const (
	PINMinLength = 4
	PINMaxLength = 6
)

// NormalizePIN prepares a PIN for storage and comparison: surrounding
// whitespace is stripped, nothing else. PINs are compared as plain
// normalized strings.
func NormalizePIN(pin string) string {
	return strings.TrimSpace(pin)
}

// ValidateNewPIN checks a PIN that is about to be stored: digits only,
// within length bounds after normalization.
func ValidateNewPIN(pin string) error {
	p := NormalizePIN(pin)

	if len(p) < PINMinLength {
		return NewValidationError("pin", "must be at least 4 digits")
	}
	if len(p) > PINMaxLength {
		return NewValidationError("pin", "must be at most 6 digits")
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return NewValidationError("pin", "digits only")
		}
	}
	return nil
}

// NormalizeName prepares a mood or tag name for case-insensitive
// lookup and storage:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
