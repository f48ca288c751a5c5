package validation

import (
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("intl_phone", IntlPhone)
}

// IntlPhone validates a phone number as "+"-prefixed and globally valid
func IntlPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return ValidatePhoneNumber(val)
}
