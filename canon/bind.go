package canon

import (
	"strings"

	"github.com/samber/lo"

	"github.com/milvus-io/pilot/argument"
	"github.com/milvus-io/pilot/types"
)

// Binding is the result of assigning command line arguments to the
// parameters of a command.
type Binding struct {
	Command *Command
	// Assignments maps parameter names to the argument bound to them.
	Assignments map[string]argument.Arg
	// Unused holds arguments no parameter took.
	Unused []argument.Arg
}

// Args returns the text bound per parameter. Flags of boolean parameters
// bind as "true", array elements are quoted one by one so that parsing the
// text yields the bound elements again.
func (b *Binding) Args() Args {
	args := make(Args, len(b.Assignments))
	for name, arg := range b.Assignments {
		switch v := arg.(type) {
		case *argument.BooleanNamedArgument:
			args[name] = "true"
		case *argument.ArrayArgument:
			elements := lo.Map(v.Arguments(), func(element argument.Arg, _ int) string {
				return argument.Quote(element.Text())
			})
			args[name] = strings.Join(elements, " ")
		default:
			args[name] = arg.Text()
		}
	}
	return args
}

// ParamAt returns the parameter whose argument covers offset, for
// completion of the argument under the cursor.
func (b *Binding) ParamAt(offset int) (*Parameter, argument.Arg, bool) {
	for _, param := range b.Command.params {
		arg, ok := b.Assignments[param.name]
		if !ok || arg.Start() == argument.AtCursor {
			continue
		}
		if arg.Start() <= offset && offset <= arg.End() {
			return param, arg, true
		}
	}
	return nil, nil, false
}

// Bind assigns args, the arguments following the command name, to the
// parameters of cmd.
//
// Switches (`--name value`, `--name=value`, `-n value`) bind by name, a
// switch of a boolean parameter takes no value. The rest fill the unbound
// parameters in declaration order. When the last of them is text it takes
// every remaining argument as one merged argument, an array parameter
// collects every remaining argument.
func Bind(cmd *Command, args []argument.Arg) *Binding {
	b := &Binding{
		Command:     cmd,
		Assignments: make(map[string]argument.Arg),
	}

	var positional []argument.Arg
	for i := 0; i < len(args); i++ {
		arg := args[i]
		param, value, ok := b.matchSwitch(arg)
		if !ok {
			if !arg.IsBlank() {
				positional = append(positional, arg)
			}
			continue
		}
		if _, bound := b.Assignments[param.name]; bound {
			b.Unused = append(b.Unused, arg)
			if !param.IsBoolean() && value == nil && i+1 < len(args) {
				b.Unused = append(b.Unused, args[i+1])
				i++
			}
			continue
		}

		switch {
		case param.IsBoolean():
			b.assign(param, argument.NewBooleanNamed(arg))
		case value != nil:
			b.assign(param, value)
		case i+1 < len(args):
			b.assign(param, argument.NewNamed(arg, args[i+1]))
			i++
		default:
			// switch typed, value not yet
			b.assign(param, argument.NewNamed(arg, argument.New("", "", "", arg.End(), arg.End())))
		}
	}

	b.bindPositional(positional)
	return b
}

// matchSwitch recognizes arg as a switch. value is set for `--name=value`.
func (b *Binding) matchSwitch(arg argument.Arg) (*Parameter, argument.Arg, bool) {
	if arg.Kind() != argument.KindPlain || !isBare(arg) {
		return nil, nil, false
	}
	text := arg.Text()
	if name, rest, found := strings.Cut(text, "="); found {
		param, ok := b.Command.NamedParam(name)
		if !ok || param.IsBoolean() {
			return nil, nil, false
		}
		return param, splitAssignment(arg, len(name)+1, rest), true
	}
	param, ok := b.Command.NamedParam(text)
	return param, nil, ok
}

func (b *Binding) bindPositional(positional []argument.Arg) {
	unbound := lo.Filter(b.Command.params, func(p *Parameter, _ int) bool {
		_, bound := b.Assignments[p.name]
		return !bound && !p.IsBoolean()
	})

	for len(positional) > 0 {
		if len(unbound) == 0 {
			b.Unused = append(b.Unused, positional...)
			return
		}
		param := unbound[0]
		unbound = unbound[1:]

		switch {
		case isArray(param):
			b.assign(param, argument.NewArray(positional...))
			positional = nil
		case len(unbound) == 0 && isText(param) && len(positional) > 1:
			b.assign(param, argument.NewMerged(positional))
			positional = nil
		default:
			b.assign(param, positional[0])
			positional = positional[1:]
		}
	}
}

func (b *Binding) assign(param *Parameter, arg argument.Arg) {
	arg.Assign(param.ID())
	b.Assignments[param.name] = arg
}

// splitAssignment splits `--name=value` after the equals sign at cut.
func splitAssignment(arg argument.Arg, cut int, value string) argument.Arg {
	start, end := arg.Start(), arg.End()
	mid := argument.AtCursor
	if start != argument.AtCursor {
		mid = start + len(arg.Prefix()) + cut
	}
	nameArg := argument.New(arg.Text()[:cut], arg.Prefix(), "", start, mid)
	valueArg := argument.New(value, "", arg.Suffix(), mid, end)
	return argument.NewNamed(nameArg, valueArg)
}

// isBare reports whether arg was typed without quotes.
func isBare(arg argument.Arg) bool {
	return strings.TrimSpace(arg.Prefix()) == "" && strings.TrimSpace(arg.Suffix()) == ""
}

func isArray(param *Parameter) bool {
	_, ok := param.typ.(*types.ArrayType)
	return ok
}

func isText(param *Parameter) bool {
	return param.typ.Name() == types.NameText
}
