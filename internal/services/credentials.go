package services

import (
	"regexp"
	"strings"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 12
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9]+@[a-zA-Z0-9]+\.[a-zA-Z]{2,}$`)

// ValidateCredentials checks email then password and returns a
// *ValidationError for the first field that fails.
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: MsgEmailRequired}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: MsgEmailInvalid}
	}

	if strings.TrimSpace(password) == "" {
		return &ValidationError{Field: "password", Message: MsgPasswordRequired}
	}
	if !wellFormedPassword(password) {
		return &ValidationError{Field: "password", Message: MsgPasswordMalformed}
	}

	return nil
}

// wellFormedPassword requires 8-12 ASCII letters or digits with at least one
// lowercase letter, one uppercase letter and two digits.
func wellFormedPassword(password string) bool {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return false
	}

	var lower, upper, digits int
	for i := 0; i < len(password); i++ {
		switch c := password[i]; {
		case c >= 'a' && c <= 'z':
			lower++
		case c >= 'A' && c <= 'Z':
			upper++
		case c >= '0' && c <= '9':
			digits++
		default:
			return false
		}
	}

	return lower > 0 && upper > 0 && digits >= 2
}
