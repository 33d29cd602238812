// Package validate holds the input validators shared by registration and
// onboarding: international phone format, password strength, date ordering.
package validate

import (
	"regexp"
	"time"
	"unicode"
)

// Phone numbers must carry a country code (leading +), no spaces, digits only,
// 6-14 digits after the plus sign plus a final digit.
var phonePattern = regexp.MustCompile(`^\+[0-9]{6,14}[0-9]$`)

// InternationalPhoneNumber reports whether phone is a valid international
// phone number, e.g. +254712345678.
func InternationalPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// PasswordStrength checks the password policy: at least 8 characters, at most
// 124, and not purely numeric. Returns a list of human-readable problems;
// empty means the password passes.
func PasswordStrength(password string) []string {
	var problems []string
	if len(password) < 8 {
		problems = append(problems, "This password is too short. It must contain at least 8 characters.")
	}
	if len(password) > 124 {
		problems = append(problems, "This password is too long. It must contain at most 124 characters.")
	}
	if password != "" && isAllDigits(password) {
		problems = append(problems, "This password is entirely numeric.")
	}
	return problems
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// StartDateBeforeEndDate reports whether start comes strictly before end.
// The start date is allowed to be in the past.
func StartDateBeforeEndDate(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return start.Before(end)
}
