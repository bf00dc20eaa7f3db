package argument

import (
	"strings"

	"github.com/samber/lo"
)

// ArrayArgument groups the arguments bound to one multi valued parameter.
// Its text, prefix and offsets are those of its merged constituents.
type ArrayArgument struct {
	args []Arg

	assignment string
}

var _ Arg = (*ArrayArgument)(nil)

// NewArray returns an ArrayArgument holding args in order.
func NewArray(args ...Arg) *ArrayArgument {
	constituents := make([]Arg, len(args))
	copy(constituents, args)
	return &ArrayArgument{args: constituents}
}

func (a *ArrayArgument) sealed() {}

func (a *ArrayArgument) Kind() Kind { return KindArray }

func (a *ArrayArgument) joined() Arg {
	if merged := Merge(a.args); merged != nil {
		return merged
	}
	return Blank()
}

func (a *ArrayArgument) Text() string   { return a.joined().Text() }
func (a *ArrayArgument) Prefix() string { return a.joined().Prefix() }
func (a *ArrayArgument) Suffix() string { return a.joined().Suffix() }
func (a *ArrayArgument) Start() int     { return a.joined().Start() }
func (a *ArrayArgument) End() int       { return a.joined().End() }

// String renders the constituents as `{a,b,c}`.
func (a *ArrayArgument) String() string {
	parts := lo.Map(a.args, func(arg Arg, _ int) string { return arg.String() })
	return "{" + strings.Join(parts, ",") + "}"
}

// Arguments returns the constituent arguments.
func (a *ArrayArgument) Arguments() []Arg {
	result := make([]Arg, len(a.args))
	copy(result, a.args)
	return result
}

// Len returns the number of constituents.
func (a *ArrayArgument) Len() int { return len(a.args) }

// Append returns a new ArrayArgument with args added at the end.
func (a *ArrayArgument) Append(args ...Arg) *ArrayArgument {
	return NewArray(append(a.Arguments(), args...)...)
}

func (a *ArrayArgument) Merge(following Arg) Arg {
	return merge(a, following)
}

// Beget collapses the constituents into a single one carrying text.
func (a *ArrayArgument) Beget(text string, opts *BegetOptions) Arg {
	result := NewArray(a.joined().Beget(text, opts))
	result.assignment = a.assignment
	return result
}

func (a *ArrayArgument) BegetShifted(distance int) Arg {
	result := NewArray(lo.Map(a.args, func(arg Arg, _ int) Arg { return arg.BegetShifted(distance) })...)
	result.assignment = a.assignment
	return result
}

func (a *ArrayArgument) IsBlank() bool {
	for _, arg := range a.args {
		if !arg.IsBlank() {
			return false
		}
	}
	return true
}

func (a *ArrayArgument) Assign(paramID string) {
	for _, arg := range a.args {
		arg.Assign(paramID)
	}
	a.assignment = paramID
}

func (a *ArrayArgument) Assignment() string { return a.assignment }

// UpdateCliArgs removes all constituents of old from args and splices the
// receiver's constituents in where the first of them was found.
func (a *ArrayArgument) UpdateCliArgs(args []Arg, old Arg) []Arg {
	var oldArgs []Arg
	switch o := old.(type) {
	case nil:
	case *ArrayArgument:
		oldArgs = o.args
	default:
		oldArgs = []Arg{o}
	}

	firstMatchingIdx := len(args)
	remaining := make([]Arg, 0, len(args)+len(a.args))
	for _, cliArg := range args {
		if lo.Contains(oldArgs, cliArg) {
			if len(remaining) < firstMatchingIdx {
				firstMatchingIdx = len(remaining)
			}
			continue
		}
		remaining = append(remaining, cliArg)
	}
	if firstMatchingIdx > len(remaining) {
		firstMatchingIdx = len(remaining)
	}

	result := make([]Arg, 0, len(remaining)+len(a.args))
	result = append(result, remaining[:firstMatchingIdx]...)
	result = append(result, a.args...)
	result = append(result, remaining[firstMatchingIdx:]...)
	return result
}

// Equals compares constituents pairwise.
func (a *ArrayArgument) Equals(other Arg) (bool, error) {
	if other == nil {
		return false, nil
	}
	that, ok := other.(*ArrayArgument)
	if !ok {
		return equalFields(a, other)
	}
	if a == that {
		return true, nil
	}
	if len(a.args) != len(that.args) {
		return false, nil
	}
	for i := range a.args {
		eq, err := a.args[i].Equals(that.args[i])
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}
