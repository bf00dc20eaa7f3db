package canon

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/milvus-io/pilot/types"
)

// ExecFunc runs a command. Values holds one typed value per parameter.
// Output goes to req, returning without calling req.Async marks the request
// done.
type ExecFunc func(ctx context.Context, req *Request, values Values) error

// CommandSpec declares a command.
type CommandSpec struct {
	// Name may contain spaces for sub commands, e.g. "show history".
	Name        string
	Description string
	Params      []ParamSpec
	Exec        ExecFunc
	// Hidden commands are not listed in help or suggestions.
	Hidden bool
}

// Command is a resolved CommandSpec.
type Command struct {
	name        string
	description string
	params      []*Parameter
	exec        ExecFunc
	hidden      bool
}

// NewCommand resolves spec against registry. Problems with the declaration
// are returned as errors marked with ErrConfiguration.
func NewCommand(spec CommandSpec, registry *types.Registry, opts ...Option) (*Command, error) {
	o := newOptions(opts)

	name := strings.Join(strings.Fields(spec.Name), " ")
	if name == "" {
		return nil, configErrorf("all registered commands must have a name")
	}
	if spec.Exec == nil {
		return nil, configErrorf("command %s has no exec function", name)
	}

	names := paramNames(spec.Params)
	if dup := lo.FindDuplicates(names); len(dup) > 0 {
		return nil, configErrorf("command %s declares duplicate params: %s", name, strings.Join(dup, ", "))
	}

	cmd := &Command{
		name:        name,
		description: spec.Description,
		exec:        spec.Exec,
		hidden:      spec.Hidden,
	}
	for _, paramSpec := range spec.Params {
		param, err := newParameter(paramSpec, name, names, registry, o.logger)
		if err != nil {
			return nil, err
		}
		cmd.params = append(cmd.params, param)
	}
	return cmd, nil
}

// Name returns the command name, words separated by one space.
func (c *Command) Name() string { return c.name }

// Words returns the name split into words.
func (c *Command) Words() []string { return strings.Fields(c.name) }

// Description returns the description or "(No description)".
func (c *Command) Description() string {
	if c.description == "" {
		return "(No description)"
	}
	return c.description
}

// Hidden reports whether the command is left out of listings.
func (c *Command) Hidden() bool { return c.hidden }

// Params returns the parameters in declaration order.
func (c *Command) Params() []*Parameter {
	result := make([]*Parameter, len(c.params))
	copy(result, c.params)
	return result
}

// Param looks a parameter up by name.
func (c *Command) Param(name string) (*Parameter, bool) {
	return lo.Find(c.params, func(p *Parameter) bool { return p.name == name })
}

// NamedParam returns the parameter switched by text, e.g. "--verb".
func (c *Command) NamedParam(text string) (*Parameter, bool) {
	return lo.Find(c.params, func(p *Parameter) bool { return p.IsNamedParam(text) })
}
