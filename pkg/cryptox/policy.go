package cryptox

import (
	"strings"
	"unicode/utf8"
)

// Length bounds, counted in characters (runes) rather than bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// SpecialCharacters is the set that satisfies the special character rule.
const SpecialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Policy messages, listed in the order the rules are evaluated.
const (
	MsgPasswordTooShort  = "Password must be at least 8 characters long"
	MsgPasswordTooLong   = "Password must be no more than 128 characters long"
	MsgPasswordLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordDigit     = "Password must contain at least one number"
	MsgPasswordSpecial   = "Password must contain at least one special character"
)

// PolicyResult is the outcome of ValidatePassword. Errors holds one message
// per violated rule.
type PolicyResult struct {
	Valid  bool
	Errors []string
}

// PolicyError is returned when a password is handed to the hasher without
// passing the policy first.
type PolicyError struct {
	Reasons []string
}

func (e *PolicyError) Error() string {
	return "invalid password: " + strings.Join(e.Reasons, ", ")
}

// ValidatePassword runs every strength rule. Rules are independent, so a weak
// password reports all of its problems at once.
func ValidatePassword(password string) PolicyResult {
	var lower, upper, digit, special bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(SpecialCharacters, c):
			special = true
		}
	}

	n := utf8.RuneCountInString(password)
	checks := []struct {
		ok  bool
		msg string
	}{
		{n >= MinPasswordLength, MsgPasswordTooShort},
		{n <= MaxPasswordLength, MsgPasswordTooLong},
		{lower, MsgPasswordLowercase},
		{upper, MsgPasswordUppercase},
		{digit, MsgPasswordDigit},
		{special, MsgPasswordSpecial},
	}

	var errs []string
	for _, c := range checks {
		if !c.ok {
			errs = append(errs, c.msg)
		}
	}

	return PolicyResult{Valid: len(errs) == 0, Errors: errs}
}
