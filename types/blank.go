package types

import (
	"github.com/milvus-io/pilot/argument"
)

// blankType stands in for a deferred type whose target is not known yet.
type blankType struct{}

func newBlankType(spec TypeSpec, _ *Registry) (Type, error) {
	if spec.customized() {
		return nil, configErrorf("blank type can not be customized")
	}
	return blankType{}, nil
}

func (blankType) Name() string { return NameBlank }

func (blankType) Parse(arg argument.Arg) *Conversion {
	return NewConversion(nil, arg)
}

func (blankType) Stringify(any) string { return "" }
