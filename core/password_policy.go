package core

import "unicode"

const minPasswordLength = 6

// CheckPasswordStrength enforces the signup password policy: at least 6
// characters containing one digit, one lowercase and one uppercase letter.
// Any violation is reported as ErrWeakPassword.
func CheckPasswordStrength(password string) error {
	var hasDigit, hasLower, hasUpper bool
	length := 0

	for _, r := range password {
		length++
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	if length < minPasswordLength || !hasDigit || !hasLower || !hasUpper {
		return ErrWeakPassword
	}

	return nil
}
