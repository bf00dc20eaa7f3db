package types

import (
	"github.com/milvus-io/pilot/argument"
)

// DeferredType delegates to a type resolved on every call. Until the
// resolver has something to offer it behaves like the blank type.
type DeferredType struct {
	resolve func() Type
}

func newDeferredType(spec TypeSpec, _ *Registry) (Type, error) {
	if spec.Defer == nil {
		return nil, configErrorf("deferred type needs defer to be a function returning a type")
	}
	return &DeferredType{resolve: spec.Defer}, nil
}

// NewDeferred returns a deferred type resolving through fn.
func NewDeferred(fn func() Type) *DeferredType {
	return &DeferredType{resolve: fn}
}

func (t *DeferredType) Name() string { return NameDeferred }

// Resolved returns the current target type.
func (t *DeferredType) Resolved() Type {
	if resolved := t.resolve(); resolved != nil {
		return resolved
	}
	return blankType{}
}

func (t *DeferredType) Parse(arg argument.Arg) *Conversion {
	return t.Resolved().Parse(arg)
}

func (t *DeferredType) ParseString(text string) *Conversion {
	return ParseString(t.Resolved(), text)
}

func (t *DeferredType) Stringify(value any) string {
	return t.Resolved().Stringify(value)
}

// Increment returns nil when the target can't step.
func (t *DeferredType) Increment(value any) any {
	next, _ := Increment(t.Resolved(), value)
	return next
}

// Decrement returns nil when the target can't step.
func (t *DeferredType) Decrement(value any) any {
	prev, _ := Decrement(t.Resolved(), value)
	return prev
}

// Options returns the target options, nil when it has none.
func (t *DeferredType) Options() []any {
	if lister, ok := t.Resolved().(Lister); ok {
		return lister.Options()
	}
	return nil
}
