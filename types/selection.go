package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"github.com/milvus-io/pilot/argument"
)

// Named is implemented by selection options that are not plain strings.
type Named interface {
	Name() string
}

// OptionName returns the name a selection option is matched by.
func OptionName(option any) string {
	switch v := option.(type) {
	case nil:
		return ""
	case string:
		return v
	case Named:
		return v.Name()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// SelectionType matches input against a list of options.
type SelectionType struct {
	data func() []any
	// fromString maps an option back to the value handed out by stepping.
	fromString func(option any) any
}

func newSelectionType(spec TypeSpec, _ *Registry) (Type, error) {
	data, err := selectionData(spec.Data)
	if err != nil {
		return nil, err
	}
	return &SelectionType{data: data, fromString: identity}, nil
}

// NewSelection returns a selection over a fixed option list.
func NewSelection(options ...any) *SelectionType {
	return &SelectionType{
		data:       func() []any { return options },
		fromString: identity,
	}
}

func selectionData(data any) (func() []any, error) {
	switch v := data.(type) {
	case []any:
		return func() []any { return v }, nil
	case []string:
		return func() []any { return toAnySlice(v) }, nil
	case func() []any:
		return v, nil
	case func() []string:
		return func() []any { return toAnySlice(v()) }, nil
	default:
		return nil, configErrorf("selection type needs data to be a list or a function returning a list, got %T", data)
	}
}

func toAnySlice(values []string) []any {
	return lo.Map(values, func(v string, _ int) any { return v })
}

func identity(option any) any { return option }

func (t *SelectionType) Name() string { return NameSelection }

// Options evaluates the option list.
func (t *SelectionType) Options() []any {
	return t.data()
}

func (t *SelectionType) Parse(arg argument.Arg) *Conversion {
	text := arg.Text()
	options := t.Options()

	var predictions []any
	for _, option := range options {
		name := OptionName(option)
		if name == text {
			return NewConversion(option, arg)
		}
		if strings.HasPrefix(name, text) {
			predictions = append(predictions, option)
		}
	}

	if len(predictions) > 0 {
		return NewFailedConversion(nil, arg, StatusIncomplete, "", predictions...)
	}
	return NewFailedConversion(nil, arg, StatusError, unknownOptionMessage(text, options))
}

func (t *SelectionType) Stringify(value any) string {
	return OptionName(value)
}

// Increment returns the option after value, wrapping to the first.
func (t *SelectionType) Increment(value any) any {
	options := t.Options()
	if len(options) == 0 {
		return nil
	}
	index := t.indexOf(value, options)
	if index < 0 || index == len(options)-1 {
		return t.fromString(options[0])
	}
	return t.fromString(options[index+1])
}

// Decrement returns the option before value, wrapping to the last.
func (t *SelectionType) Decrement(value any) any {
	options := t.Options()
	if len(options) == 0 {
		return nil
	}
	index := t.indexOf(value, options)
	if index <= 0 {
		return t.fromString(options[len(options)-1])
	}
	return t.fromString(options[index-1])
}

// indexOf looks value up by its stringified name, -1 when absent.
func (t *SelectionType) indexOf(value any, options []any) int {
	if value == nil {
		return -1
	}
	name := t.Stringify(value)
	_, index, _ := lo.FindIndexOf(options, func(option any) bool {
		return OptionName(option) == name
	})
	return index
}

func unknownOptionMessage(text string, options []any) string {
	msg := fmt.Sprintf("Can't use '%s'.", text)
	if text == "" {
		return msg
	}
	names := lo.Map(options, func(option any, _ int) string { return OptionName(option) })
	ranks := fuzzy.RankFindFold(text, names)
	if len(ranks) == 0 {
		return msg
	}
	sort.Sort(ranks)
	return fmt.Sprintf("%s Did you mean '%s'?", msg, ranks[0].Target)
}
