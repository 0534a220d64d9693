package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// E164-like phone: optional +, digits 7-15 length
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}
