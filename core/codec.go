package core

import (
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ParseOptionalBool applies the console's three-valued boolean read: an
// empty value means "field not set" (nil, so the server default applies),
// "true" means true, and any other non-empty value means false. An empty
// string must never leak through as a meaningful true/false.
func ParseOptionalBool(value string) *bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	result := strings.EqualFold(trimmed, "true")
	return &result
}

// ParseOptionalPrice decodes a price form field. Empty input maps to nil
// (serialized as an explicit null), never to zero; unparsable input is an
// error rather than a NaN that would poison the payload.
func ParseOptionalPrice(value string) (*float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, NewConsoleError("Price must be a number.", goerrors.CategoryBadInput)
	}
	return &parsed, nil
}

// OptionalString maps an empty form value to nil so the field is omitted
// from the payload instead of overwriting the server value with "".
func OptionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// FormatOptionalBool renders a boolean for a two-valued form selector.
func FormatOptionalBool(value bool) string {
	return strconv.FormatBool(value)
}

// FormatOptionalPrice renders a nullable price for form pre-fill; nil
// becomes the empty string.
func FormatOptionalPrice(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

// StringOrEmpty unwraps a nullable string for display.
func StringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
