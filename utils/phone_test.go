package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone_Valid(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "9876543210", "9876543210"},
		{"with spaces", "98765 43210", "9876543210"},
		{"with dashes", "98765-43210", "9876543210"},
		{"country code", "919876543210", "9876543210"},
		{"plus country code", "+91 98765 43210", "9876543210"},
		{"starts with 6", "6123456789", "6123456789"},
		{"starts with 7", "7000000000", "7000000000"},
		{"starts with 8", "8999999999", "8999999999"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidatePhone(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestValidatePhone_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyPhone},
		{"whitespace only", "   ", ErrEmptyPhone},
		{"too short", "98765", ErrInvalidLength},
		{"too long", "98765432101", ErrInvalidLength},
		{"letters", "98765abcde", ErrInvalidFormat},
		{"landline prefix", "0123456789", ErrInvalidPrefix},
		{"starts with 5", "5876543210", ErrInvalidPrefix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidatePhone(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***a@example.com", MaskEmail("aasha@example.com"))
	assert.Equal(t, "a*@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
