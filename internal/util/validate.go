package util

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitPattern = regexp.MustCompile(`\d`)
)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePasswordStrength enforces the signup password policy: at least
// 8 characters and at least one digit. Returns an empty message when valid.
func ValidatePasswordStrength(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !digitPattern.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}
