package domain

import (
	"regexp"
	"unicode"
)

// emailPattern accepts the minimal local@domain.tld shape: a non-empty local
// part, an '@', and a domain containing at least one dot before a non-empty
// final segment. This is deliberately looser than RFC 5322.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ValidateUsername reports whether the username is 5 to 20 characters long.
// There is no character-set restriction.
func ValidateUsername(s string) bool {
	return len(s) >= 5 && len(s) <= 20
}

// ValidatePassword reports whether the password is at least 8 characters and
// contains at least one letter and one digit.
func ValidatePassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// ValidateEmail reports whether the address matches the minimal
// local@domain.tld shape.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}
