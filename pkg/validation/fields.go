package validation

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Field describes one payload field in a resource schema. Only string-typed
// fields exist in this API, but the kind is kept explicit so type errors can
// be reported separately from missing fields.
type Field struct {
	Name string
	Kind Kind
}

type Kind int

const (
	String Kind = iota
)

// Schema is the ordered required-field set for one resource.
type Schema []Field

// Names returns the schema field names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// ValidateFields returns the subset of field names that are absent from the
// payload, or present but nil, empty, or the literal string "null".
func ValidateFields(fieldNames []string, payload map[string]any) []string {
	missing := []string{}
	for _, name := range fieldNames {
		value, ok := payload[name]
		if !ok || value == nil || value == "" || value == "null" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ValidateTypes checks the payload against a schema and returns two lists:
// fields absent entirely, and fields present but not of the declared kind.
func ValidateTypes(payload map[string]any, schema Schema) (missing, invalid []string) {
	for _, field := range schema {
		value, ok := payload[field.Name]
		if !ok {
			missing = append(missing, field.Name)
			continue
		}
		switch field.Kind {
		case String:
			if _, ok := value.(string); !ok {
				invalid = append(invalid, field.Name)
			}
		}
	}
	return missing, invalid
}

// FormatSchemaErrors builds the client-facing message for a failed schema
// check. Returns "" when both lists are empty.
func FormatSchemaErrors(missing, invalid []string) string {
	var b strings.Builder
	if len(missing) > 0 {
		fmt.Fprintf(&b, "Missing required fields: %s. ", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		fmt.Fprintf(&b, "Invalid field types: %s.", strings.Join(invalid, ", "))
	}
	return strings.TrimSpace(b.String())
}

// RequiredFieldsError builds the "<a>, <b> parameter(s) is required" message
// used by the singleton and skill endpoints.
func RequiredFieldsError(missing []string) string {
	return strings.Join(missing, ", ") + " parameter(s) is required"
}

// ValidatePhoneNumber reports whether the value is a "+"-prefixed,
// internationally valid phone number. Region is never inferred; numbers
// without a country code are rejected.
func ValidatePhoneNumber(phoneNumber string) bool {
	if phoneNumber == "" || !strings.HasPrefix(phoneNumber, "+") {
		return false
	}
	parsed, err := phonenumbers.Parse(phoneNumber, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
