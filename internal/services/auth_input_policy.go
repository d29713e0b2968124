package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	usernamePattern      = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,20}$`)
	passwordLowerPattern = regexp.MustCompile(`[a-z]`)
	passwordUpperPattern = regexp.MustCompile(`[A-Z]`)
	passwordDigitPattern = regexp.MustCompile(`[0-9]`)
	passwordSpecialChars = `!@#$%^&*`
)

var (
	ErrUsernameInvalid = errors.New("username must be 3-20 letters, digits, or _.-")
	ErrEmailInvalid    = errors.New("invalid email address")
	ErrPasswordLength  = errors.New("password must be 8-50 characters long")
	ErrPasswordWeak    = errors.New("password must contain a lowercase, uppercase, number, and a special character")
)

func NormalizeUsername(raw string) string {
	return strings.TrimSpace(raw)
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(NormalizeUsername(username)) {
		return ErrUsernameInvalid
	}
	return nil
}

func ValidateEmail(email string) error {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return ErrEmailInvalid
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePassword enforces the registration password rules: 8-50 chars with
// at least one lowercase, one uppercase, one digit, and one special
// character.
func ValidatePassword(password string) error {
	length := len(password)
	if length < 8 || length > 50 {
		return ErrPasswordLength
	}
	if !passwordLowerPattern.MatchString(password) ||
		!passwordUpperPattern.MatchString(password) ||
		!passwordDigitPattern.MatchString(password) ||
		!strings.ContainsAny(password, passwordSpecialChars) {
		return ErrPasswordWeak
	}
	return nil
}
