package pipeline

import "strconv"

// Payload is the decoded "data" object of a request body. Values keep the
// types produced by encoding/json: string, float64, bool, nil,
// []interface{} and map[string]interface{}.
type Payload map[string]interface{}

// Value returns the raw value stored under field.
func (p Payload) Value(field string) (interface{}, bool) {
	v, ok := p[field]
	return v, ok
}

// Has reports whether field is present, not null and not an empty string.
func (p Payload) Has(field string) bool {
	v, ok := p[field]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && s == "" {
		return false
	}
	return true
}

// IsText reports whether field holds a scalar that String can render:
// a string, number or boolean. Objects, arrays, null and absent fields
// are not text.
func (p Payload) IsText(field string) bool {
	switch p[field].(type) {
	case string, float64, bool:
		return true
	default:
		return false
	}
}

// String returns field as text. Numbers and booleans are rendered in their
// JSON form; absent, null and structured values give "".
func (p Payload) String(field string) string {
	switch v := p[field].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Number returns field as a float64 when it is a JSON number.
func (p Payload) Number(field string) (float64, bool) {
	n, ok := p[field].(float64)
	return n, ok
}

// List returns field as a slice when it is a JSON array.
func (p Payload) List(field string) ([]interface{}, bool) {
	l, ok := p[field].([]interface{})
	return l, ok
}
