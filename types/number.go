package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milvus-io/pilot/argument"
)

// NumberType parses base 10 integers within optional bounds.
type NumberType struct {
	min  *int
	max  *int
	step int
}

func newNumberType(spec TypeSpec, _ *Registry) (Type, error) {
	if spec.Data != nil || spec.Defer != nil || spec.Subtype != nil {
		return nil, configErrorf("number type only accepts min, max and step")
	}
	if spec.Min != nil && spec.Max != nil && *spec.Min > *spec.Max {
		return nil, configErrorf("number type min %d is greater than max %d", *spec.Min, *spec.Max)
	}
	t := &NumberType{min: spec.Min, max: spec.Max, step: 1}
	if spec.Step != nil {
		if *spec.Step <= 0 {
			return nil, configErrorf("number type step must be positive, got %d", *spec.Step)
		}
		t.step = *spec.Step
	}
	return t, nil
}

func (t *NumberType) Name() string { return NameNumber }

// Bounds returns the configured min and max, nil when unbounded.
func (t *NumberType) Bounds() (min, max *int) {
	return t.min, t.max
}

func (t *NumberType) Parse(arg argument.Arg) *Conversion {
	text := strings.TrimSpace(arg.Text())
	if text == "" {
		return NewFailedConversion(nil, arg, StatusIncomplete, "")
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return NewFailedConversion(nil, arg, StatusError,
			fmt.Sprintf("Can't convert %q to a number.", arg.Text()))
	}

	if t.max != nil && value > *t.max {
		return NewFailedConversion(value, arg, StatusError,
			fmt.Sprintf("%d is greater than maximum allowed: %d.", value, *t.max))
	}
	if t.min != nil && value < *t.min {
		return NewFailedConversion(value, arg, StatusError,
			fmt.Sprintf("%d is smaller than minimum allowed: %d.", value, *t.min))
	}

	return NewConversion(value, arg)
}

func (t *NumberType) Stringify(value any) string {
	if value == nil {
		return ""
	}
	if n, ok := toInt(value); ok {
		return strconv.Itoa(n)
	}
	return fmt.Sprint(value)
}

// Increment adds step unless that would pass max.
func (t *NumberType) Increment(value any) any {
	n, ok := toInt(value)
	if !ok {
		return t.initial()
	}
	if t.max == nil || n+t.step <= *t.max {
		return n + t.step
	}
	return n
}

// Decrement subtracts step unless that would pass min.
func (t *NumberType) Decrement(value any) any {
	n, ok := toInt(value)
	if !ok {
		return t.initial()
	}
	if t.min == nil || n-t.step >= *t.min {
		return n - t.step
	}
	return n
}

// initial is where stepping starts from when there is no current value.
func (t *NumberType) initial() int {
	switch {
	case t.min != nil:
		return *t.min
	case t.max != nil && *t.max < 0:
		return *t.max
	default:
		return 0
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		return int(v), v == float64(int(v))
	default:
		return 0, false
	}
}
