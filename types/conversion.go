package types

import (
	"github.com/milvus-io/pilot/argument"
)

// Conversion is the result of parsing an Argument with a Type.
type Conversion struct {
	// Value is the parsed value, nil when nothing could be parsed.
	Value any
	// Arg is the argument the value was parsed from.
	Arg argument.Arg
	// Status tells whether Value can be used.
	Status Status
	// Message is a human readable hint for non valid conversions.
	Message string
	// Predictions are completion candidates for the argument text.
	Predictions []any
}

// NewConversion returns a valid Conversion.
func NewConversion(value any, arg argument.Arg) *Conversion {
	return &Conversion{
		Value:  value,
		Arg:    arg,
		Status: StatusValid,
	}
}

// NewFailedConversion returns a Conversion with a non valid status.
func NewFailedConversion(value any, arg argument.Arg, status Status, message string, predictions ...any) *Conversion {
	return &Conversion{
		Value:       value,
		Arg:         arg,
		Status:      status,
		Message:     message,
		Predictions: predictions,
	}
}

// IsValid is sugar for c.Status == StatusValid.
func (c *Conversion) IsValid() bool {
	return c.Status == StatusValid
}

// PredictionNames returns the predictions rendered as option names.
func (c *Conversion) PredictionNames() []string {
	names := make([]string, 0, len(c.Predictions))
	for _, prediction := range c.Predictions {
		names = append(names, OptionName(prediction))
	}
	return names
}
