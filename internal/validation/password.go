package validation

import (
	"regexp"
)

const MinPasswordLen = 8

var (
	lowerRe  = regexp.MustCompile(`[a-z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	symbolRe = regexp.MustCompile(`[^0-9A-Za-z_]`)
)

// PasswordErrors returns every policy violation for a candidate password.
// The policy: at least 8 characters, at least one lowercase letter, one
// uppercase letter, and one non-word symbol.
func PasswordErrors(password string) []string {
	var errs []string
	if len(password) < MinPasswordLen {
		errs = append(errs, "password must be at least 8 characters long")
	}
	if !lowerRe.MatchString(password) || !upperRe.MatchString(password) || !symbolRe.MatchString(password) {
		errs = append(errs, "password must contain a lowercase letter, an uppercase letter and a symbol")
	}
	return errs
}
