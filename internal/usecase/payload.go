package usecase

// stringField pulls a string value out of a decoded payload. Non-string
// values come back empty; schema validation runs before this is used.
func stringField(payload map[string]any, name string) string {
	value, _ := payload[name].(string)
	return value
}
