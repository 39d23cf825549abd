package user

import (
	"strings"
	"unicode"
)

const passwordSpecials = "!@#$%^&*()_+{}[]|:;'<>,.?/"

// ValidatePassword returns one message per unmet rule, empty when the password is acceptable.
func ValidatePassword(pw string) []string {
	var problems []string
	if len(pw) < 8 {
		problems = append(problems, "Password must be at least 8 characters long.")
	}

	var hasDigit, hasUpper, hasLower, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	if !hasDigit {
		problems = append(problems, "Password must contain at least one digit.")
	}
	if !hasUpper {
		problems = append(problems, "Password must contain at least one uppercase letter.")
	}
	if !hasLower {
		problems = append(problems, "Password must contain at least one lowercase letter.")
	}
	if !hasSpecial {
		problems = append(problems, "Password must contain at least one special character.")
	}
	return problems
}
