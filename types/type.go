// Package types converts command line arguments into typed values.
//
// A Type parses an argument.Arg into a Conversion that carries the value, a
// Status and optional completion predictions. Types are created from a
// TypeSpec through a Registry so that parameters can refer to them by name.
package types

import (
	"github.com/cockroachdb/errors"

	"github.com/milvus-io/pilot/argument"
)

// Names of the basic types.
const (
	NameText      = "text"
	NameNumber    = "number"
	NameBoolean   = "boolean"
	NameBool      = "bool"
	NameBlank     = "blank"
	NameSelection = "selection"
	NameDeferred  = "deferred"
	NameArray     = "array"
)

// ErrConfiguration marks errors caused by a broken type declaration.
var ErrConfiguration = errors.New("type configuration error")

// Type converts between command line text and typed values.
//
// Parse never fails for bad user input, it reports a Conversion with
// StatusIncomplete or StatusError instead.
type Type interface {
	Name() string
	Parse(arg argument.Arg) *Conversion
	Stringify(value any) string
}

// Stepper is implemented by types that support spinner style editing.
type Stepper interface {
	Increment(value any) any
	Decrement(value any) any
}

// Lister is implemented by types with an enumerable domain.
type Lister interface {
	Options() []any
}

// stringParser is implemented by types that need more than a single
// argument to parse their stringified form.
type stringParser interface {
	ParseString(text string) *Conversion
}

// ParseString parses text as if it were typed for t.
func ParseString(t Type, text string) *Conversion {
	if sp, ok := t.(stringParser); ok {
		return sp.ParseString(text)
	}
	return t.Parse(argument.NewText(text))
}

// Increment steps value up when t supports it, ok is false otherwise.
func Increment(t Type, value any) (any, bool) {
	stepper, ok := t.(Stepper)
	if !ok {
		return nil, false
	}
	return stepper.Increment(value), true
}

// Decrement steps value down when t supports it, ok is false otherwise.
func Decrement(t Type, value any) (any, bool) {
	stepper, ok := t.(Stepper)
	if !ok {
		return nil, false
	}
	return stepper.Decrement(value), true
}

func configErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}
