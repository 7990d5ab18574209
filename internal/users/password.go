package users

import (
	"unicode"
	"unicode/utf8"
)

// PasswordPolicy is the guidance printed when a password is rejected.
const PasswordPolicy = "Password must have a minimum of 8 characters including a capital letter and a special character (ex: ~!@#$%^&*_-+=`|(){}[]:;'<>,.?)"

// CheckPassword reports whether a password is at least 8 characters long and
// contains an uppercase letter and a character that is neither a letter, a
// digit, nor whitespace.
func CheckPassword(password string) bool {
	var hasCapital, hasSpecial bool
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasCapital = true
		}
		if !unicode.IsDigit(r) && !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			hasSpecial = true
		}
	}
	return hasCapital && hasSpecial && utf8.RuneCountInString(password) >= 8
}
