//nolint:revive // types is a standard Go package name pattern
package types

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// Validate checks that the resume is complete enough to export.
func (r *ResumeData) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("phone", validatePhone); err != nil {
		return err
	}
	return validate.Struct(r)
}

// validatePhone accepts numbers with 10 to 15 digits once formatting is removed.
func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

// IsValidPhone reports whether s holds a plausible phone number.
func IsValidPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ', r == '-', r == '.', r == '(', r == ')', r == '+':
		default:
			return false
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}
