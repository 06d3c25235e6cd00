package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyPhone indicates the phone number is empty.
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidLength indicates the phone number is not 10 digits.
	ErrInvalidLength = errors.New("phone number must be exactly 10 digits")

	// ErrInvalidFormat indicates the phone number contains non-digits.
	ErrInvalidFormat = errors.New("phone number can only contain digits")

	// ErrInvalidPrefix indicates the number does not start with 6-9.
	ErrInvalidPrefix = errors.New("phone number must start with 6, 7, 8 or 9")
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

var phoneSanitizer = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

// SanitizePhone strips separators and an optional +91 country code.
func SanitizePhone(phone string) string {
	s := phoneSanitizer.Replace(strings.TrimSpace(phone))
	s = strings.TrimPrefix(s, "+")
	if len(s) == 12 && strings.HasPrefix(s, "91") {
		s = s[2:]
	}
	return s
}

// ValidatePhone validates an Indian 10-digit mobile number starting 6-9.
// Accepts "9876543210", "98765 43210", "+91 98765 43210" etc. and returns
// the sanitized digits-only form.
func ValidatePhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", ErrEmptyPhone
	}

	sanitized := SanitizePhone(phone)

	if !digitsOnly.MatchString(sanitized) {
		return "", ErrInvalidFormat
	}
	if len(sanitized) != 10 {
		return "", ErrInvalidLength
	}
	if sanitized[0] < '6' || sanitized[0] > '9' {
		return "", ErrInvalidPrefix
	}
	return sanitized, nil
}
