package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format. Empty strings are rejected; callers
// treating email as optional should check for empty first.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhoneNumber validates phone number format: optional leading +,
// then 8 to 14 digits.
func ValidatePhoneNumber(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}
	if len(cleaned) < 8 || len(cleaned) > 14 {
		return false
	}
	for _, char := range cleaned {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// IsISODate validates a YYYY-MM-DD date string shape. It does not check
// calendar validity; Postgres and time.Parse do that where it matters.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func IsISODate(date string) bool {
	return isoDatePattern.MatchString(date)
}
