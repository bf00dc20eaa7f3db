package types

import (
	"reflect"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/argument"
)

// ArrayType parses every constituent of an ArrayArgument with its subtype.
type ArrayType struct {
	subtype Type
	logger  *zap.Logger
}

func newArrayType(spec TypeSpec, registry *Registry) (Type, error) {
	subspec := Spec(NameText)
	if spec.Subtype == nil {
		registry.Logger().Warn("array type is missing subtype, assuming text")
	} else {
		subspec = *spec.Subtype
	}
	subtype, err := registry.Get(subspec)
	if err != nil {
		return nil, err
	}
	return &ArrayType{subtype: subtype, logger: registry.Logger()}, nil
}

// NewArray returns an array of subtype elements.
func NewArray(subtype Type) *ArrayType {
	return &ArrayType{subtype: subtype, logger: zap.NewNop()}
}

func (t *ArrayType) Name() string { return NameArray }

// Subtype returns the element type.
func (t *ArrayType) Subtype() Type { return t.subtype }

// ParseElements parses each constituent on its own. A non array argument
// is parsed as the only element.
func (t *ArrayType) ParseElements(arg argument.Arg) []*Conversion {
	array, ok := arg.(*argument.ArrayArgument)
	if !ok {
		t.logger.Warn("array type parsing a non array argument", zap.Stringer("kind", arg.Kind()))
		return []*Conversion{t.subtype.Parse(arg)}
	}
	return lo.Map(array.Arguments(), func(element argument.Arg, _ int) *Conversion {
		return t.subtype.Parse(element)
	})
}

// Parse folds ParseElements into one Conversion holding a []any. The
// status is the worst element status and the message and predictions come
// from the first element that is not valid.
func (t *ArrayType) Parse(arg argument.Arg) *Conversion {
	elements := t.ParseElements(arg)
	values := lo.Map(elements, func(c *Conversion, _ int) any { return c.Value })
	status := Combine(lo.Map(elements, func(c *Conversion, _ int) Status { return c.Status })...)
	if status == StatusValid {
		return NewConversion(values, arg)
	}
	failed, _ := lo.Find(elements, func(c *Conversion) bool { return !c.IsValid() })
	return NewFailedConversion(values, arg, status, failed.Message, failed.Predictions...)
}

// ParseString tokenizes text into elements. Blank text is an empty array.
func (t *ArrayType) ParseString(text string) *Conversion {
	if strings.TrimSpace(text) == "" {
		return NewConversion([]any{}, argument.NewArray())
	}
	return t.Parse(argument.NewArray(argument.Tokenize(text)...))
}

// Stringify joins the stringified elements with spaces, quoting those that
// would not survive tokenizing.
func (t *ArrayType) Stringify(value any) string {
	if value == nil {
		return ""
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return argument.Quote(t.subtype.Stringify(value))
	}
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts = append(parts, argument.Quote(t.subtype.Stringify(rv.Index(i).Interface())))
	}
	return strings.Join(parts, " ")
}
