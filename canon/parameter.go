package canon

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/types"
)

// DefaultValue is the default of an optional parameter. A nil Value makes
// the parameter optional without a value.
type DefaultValue struct {
	Value any
}

// Default returns a DefaultValue holding v.
func Default(v any) *DefaultValue {
	return &DefaultValue{Value: v}
}

// Optional returns the DefaultValue of a parameter that may be left out.
func Optional() *DefaultValue {
	return &DefaultValue{}
}

// ParamSpec declares one parameter of a command.
type ParamSpec struct {
	Name        string         `yaml:"name"`
	Type        types.TypeSpec `yaml:"type"`
	Description string         `yaml:"description,omitempty"`
	// Default is nil for required parameters.
	Default *DefaultValue `yaml:"-"`
}

// Parameter is a resolved ParamSpec.
type Parameter struct {
	name         string
	command      string
	description  string
	typ          types.Type
	defaultValue *DefaultValue
	uniquePrefix string
}

func newParameter(spec ParamSpec, command string, siblings []string, registry *types.Registry, logger *zap.Logger) (*Parameter, error) {
	if spec.Name == "" {
		return nil, configErrorf("in %s: all params must have a name", command)
	}

	typ, err := registry.Get(spec.Type)
	if err != nil {
		return nil, configErrorf("in %s/%s: %v", command, spec.Name, err)
	}

	p := &Parameter{
		name:         spec.Name,
		command:      command,
		description:  spec.Description,
		typ:          typ,
		defaultValue: spec.Default,
		uniquePrefix: uniquePrefix(spec.Name, siblings),
	}

	// boolean parameters are always optional and default to false
	if p.IsBoolean() {
		if spec.Default != nil {
			return nil, configErrorf("in %s/%s: boolean parameters can not have a default", command, spec.Name)
		}
		p.defaultValue = Default(false)
	}

	if p.defaultValue != nil && p.defaultValue.Value != nil {
		text := typ.Stringify(p.defaultValue.Value)
		if c := types.ParseString(typ, text); !c.IsValid() {
			logger.Warn("default value does not round trip",
				zap.String("param", p.ID()),
				zap.String("text", text),
				zap.Stringer("status", c.Status),
				zap.String("message", c.Message))
		}
	}

	return p, nil
}

// uniquePrefix grows the first character of name until it is no longer a
// prefix of any sibling. A name which is a prefix of a sibling is returned
// whole.
func uniquePrefix(name string, siblings []string) string {
	_, size := utf8.DecodeRuneInString(name)
	prefix := name[:size]
	self := false
	for _, sibling := range siblings {
		if sibling == name && !self {
			self = true
			continue
		}
		for prefix != name && strings.HasPrefix(sibling, prefix) {
			_, size := utf8.DecodeRuneInString(name[len(prefix):])
			prefix = name[:len(prefix)+size]
		}
		if prefix == name {
			break
		}
	}
	return prefix
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// ID identifies the parameter across commands, it is what arguments are
// assigned to.
func (p *Parameter) ID() string { return p.command + "/" + p.name }

// Description returns the description, empty when there is none.
func (p *Parameter) Description() string { return p.description }

// Type returns the parameter type.
func (p *Parameter) Type() types.Type { return p.typ }

// UniquePrefix returns the shortest abbreviation accepted as `--x`.
func (p *Parameter) UniquePrefix() string { return p.uniquePrefix }

// IsBoolean reports whether the parameter is a flag.
func (p *Parameter) IsBoolean() bool {
	_, ok := p.typ.(*types.BooleanType)
	return ok
}

// IsDataRequired reports whether the parameter has no default.
func (p *Parameter) IsDataRequired() bool { return p.defaultValue == nil }

// IsOptional reports whether the parameter was declared with a nil default.
func (p *Parameter) IsOptional() bool {
	return p.defaultValue != nil && p.defaultValue.Value == nil
}

// Default returns the default value, ok is false for required parameters.
func (p *Parameter) Default() (any, bool) {
	if p.defaultValue == nil {
		return nil, false
	}
	return p.defaultValue.Value, true
}

// IsNamedParam reports whether text is a `-x`/`--x` switch for p. The name
// typed must start with the unique prefix and be a prefix of the full name.
func (p *Parameter) IsNamedParam(text string) bool {
	typed, ok := switchName(text)
	if !ok {
		return false
	}
	return strings.HasPrefix(typed, p.uniquePrefix) && strings.HasPrefix(p.name, typed)
}

// switchName strips the dashes of a switch.
func switchName(text string) (string, bool) {
	var typed string
	switch {
	case strings.HasPrefix(text, "--"):
		typed = text[2:]
	case strings.HasPrefix(text, "-"):
		typed = text[1:]
	default:
		return "", false
	}
	return typed, typed != ""
}

// paramNames returns the names of specs.
func paramNames(specs []ParamSpec) []string {
	return lo.Map(specs, func(spec ParamSpec, _ int) string { return spec.Name })
}
