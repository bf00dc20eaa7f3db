package canon

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Values holds the typed value of every parameter of a request.
type Values map[string]any

// Get returns the value of name, nil when absent.
func (v Values) Get(name string) any { return v[name] }

// Has reports whether name has a non nil value.
func (v Values) Has(name string) bool { return v[name] != nil }

// String returns the value of name as a string.
func (v Values) String(name string) string {
	switch value := v[name].(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// Int returns the value of name as an int, zero when it is not one.
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// Bool returns the value of name as a bool.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Slice returns an array value, nil when it is not one.
func (v Values) Slice(name string) []any {
	s, _ := v[name].([]any)
	return s
}

// Convert turns the text in args into typed values. Parameters without
// text get their default. It fails when RequestStatus would not be valid.
func Convert(cmd *Command, args Args) (Values, error) {
	values := make(Values, len(cmd.params))
	for _, param := range cmd.params {
		if c := ParamConversion(param, args); c != nil {
			if !c.IsValid() {
				return nil, errors.Wrapf(ErrRejected, "%s: %s %s", param.name, c.Status, c.Message)
			}
			values[param.name] = c.Value
			continue
		}
		value, ok := param.Default()
		if !ok {
			return nil, errors.Wrapf(ErrIncomplete, "%s is required", param.name)
		}
		values[param.name] = value
	}
	return values, nil
}
