package types

// TypeSpec declares a type by registered name plus type specific options.
type TypeSpec struct {
	// Name is the registered type name, e.g. "text" or "number".
	Name string `yaml:"name"`

	// Min, Max and Step customize the number type.
	Min  *int `yaml:"min,omitempty"`
	Max  *int `yaml:"max,omitempty"`
	Step *int `yaml:"step,omitempty"`

	// Data supplies selection options: a []string, a []any or a function
	// returning either, evaluated on every use.
	Data any `yaml:"data,omitempty"`

	// Defer resolves the target of a deferred type on every call.
	Defer func() Type `yaml:"-"`

	// Subtype is the element type of an array.
	Subtype *TypeSpec `yaml:"subtype,omitempty"`
}

// Spec returns a TypeSpec with only a name.
func Spec(name string) TypeSpec {
	return TypeSpec{Name: name}
}

// NumberSpec returns a number TypeSpec bounded by min and max.
func NumberSpec(min, max int) TypeSpec {
	return TypeSpec{Name: NameNumber, Min: &min, Max: &max}
}

// SelectionSpec returns a selection TypeSpec over data.
func SelectionSpec(data any) TypeSpec {
	return TypeSpec{Name: NameSelection, Data: data}
}

// ArraySpec returns an array TypeSpec of subtype elements.
func ArraySpec(subtype TypeSpec) TypeSpec {
	return TypeSpec{Name: NameArray, Subtype: &subtype}
}

// DeferredSpec returns a deferred TypeSpec resolving through fn.
func DeferredSpec(fn func() Type) TypeSpec {
	return TypeSpec{Name: NameDeferred, Defer: fn}
}

// customized reports whether the TypeSpec carries anything beyond a name.
func (s TypeSpec) customized() bool {
	return s.Min != nil || s.Max != nil || s.Step != nil ||
		s.Data != nil || s.Defer != nil || s.Subtype != nil
}
