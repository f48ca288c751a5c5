package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the payload keys clients submit
var FieldLabels = map[string]string{
	"Title":        "title",
	"Content":      "content",
	"Name":         "name",
	"EmailAddress": "email_address",
	"PhoneNumber":  "phone_number",
}

// FormatValidationErrors converts validator.ValidationErrors to client-facing messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)
	case "intl_phone":
		return fmt.Sprintf("%s is not a valid international phone number", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return strings.ToLower(fieldName)
}
