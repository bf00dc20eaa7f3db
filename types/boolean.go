package types

import (
	"fmt"

	"github.com/milvus-io/pilot/argument"
)

// BooleanType accepts exactly "true" or "false". Stepping toggles.
type BooleanType struct {
	SelectionType
	name string
}

func newBooleanType(spec TypeSpec, _ *Registry) (Type, error) {
	if spec.customized() {
		return nil, configErrorf("boolean type can not be customized")
	}
	return NewBoolean(spec.Name), nil
}

// NewBoolean returns a boolean type registered under name.
func NewBoolean(name string) *BooleanType {
	if name == "" {
		name = NameBoolean
	}
	return &BooleanType{
		SelectionType: SelectionType{
			data: func() []any { return []any{"true", "false"} },
			fromString: func(option any) any {
				return option == "true"
			},
		},
		name: name,
	}
}

func (t *BooleanType) Name() string { return t.name }

// Parse only accepts an exact match. Both options share no prefix a user
// could be completing towards, so there are no predictions.
func (t *BooleanType) Parse(arg argument.Arg) *Conversion {
	switch arg.Text() {
	case "true":
		return NewConversion(true, arg)
	case "false":
		return NewConversion(false, arg)
	}
	return NewFailedConversion(nil, arg, StatusError, fmt.Sprintf("Can't use '%s'.", arg.Text()))
}

func (t *BooleanType) Stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
