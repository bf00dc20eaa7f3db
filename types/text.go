package types

import (
	"fmt"

	"github.com/milvus-io/pilot/argument"
)

// textType is the plain string type, every input is valid.
type textType struct{}

func newTextType(spec TypeSpec, _ *Registry) (Type, error) {
	if spec.customized() {
		return nil, configErrorf("text type can not be customized")
	}
	return textType{}, nil
}

func (textType) Name() string { return NameText }

func (textType) Parse(arg argument.Arg) *Conversion {
	return NewConversion(arg.Text(), arg)
}

func (textType) Stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
