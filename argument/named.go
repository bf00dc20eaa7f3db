package argument

// NamedArgument is an argument given as `--param value`, `-p value` or
// `--param=value`. It behaves like its value with the name folded into the prefix.
type NamedArgument struct {
	nameArg  Arg
	valueArg Arg

	assignment string
}

var _ Arg = (*NamedArgument)(nil)

// NewNamed pairs the flag token with its value token.
func NewNamed(nameArg, valueArg Arg) *NamedArgument {
	return &NamedArgument{
		nameArg:  nameArg,
		valueArg: valueArg,
	}
}

func (n *NamedArgument) sealed() {}

func (n *NamedArgument) Kind() Kind     { return KindNamed }
func (n *NamedArgument) Text() string   { return n.valueArg.Text() }
func (n *NamedArgument) Prefix() string { return n.nameArg.String() + n.valueArg.Prefix() }
func (n *NamedArgument) Suffix() string { return n.valueArg.Suffix() }
func (n *NamedArgument) Start() int     { return n.valueArg.Start() }
func (n *NamedArgument) End() int       { return n.valueArg.End() }

func (n *NamedArgument) String() string {
	return n.Prefix() + renderedText(n.valueArg) + n.Suffix()
}

// NameArg returns the flag token, e.g. `--verbose`.
func (n *NamedArgument) NameArg() Arg { return n.nameArg }

// ValueArg returns the value token.
func (n *NamedArgument) ValueArg() Arg { return n.valueArg }

func (n *NamedArgument) Merge(following Arg) Arg {
	return merge(n, following)
}

// Beget replaces the value, the flag token is kept verbatim.
func (n *NamedArgument) Beget(text string, opts *BegetOptions) Arg {
	result := NewNamed(n.nameArg, n.valueArg.Beget(text, opts))
	result.assignment = n.assignment
	return result
}

func (n *NamedArgument) BegetShifted(distance int) Arg {
	result := NewNamed(n.nameArg.BegetShifted(distance), n.valueArg.BegetShifted(distance))
	result.assignment = n.assignment
	return result
}

func (n *NamedArgument) IsBlank() bool { return isBlank(n) }

func (n *NamedArgument) Assign(paramID string) {
	n.nameArg.Assign(paramID)
	n.valueArg.Assign(paramID)
	n.assignment = paramID
}

func (n *NamedArgument) Assignment() string { return n.assignment }

func (n *NamedArgument) UpdateCliArgs(args []Arg, old Arg) []Arg {
	return replaceArg(n, args, old)
}

func (n *NamedArgument) Equals(other Arg) (bool, error) {
	return equalFields(n, other)
}

// BooleanNamedArgument is a flag without value like `--verbose`; its
// absence means false.
type BooleanNamedArgument struct {
	arg Arg

	assignment string
}

var _ Arg = (*BooleanNamedArgument)(nil)

// NewBooleanNamed wraps the flag token.
func NewBooleanNamed(arg Arg) *BooleanNamedArgument {
	return &BooleanNamedArgument{arg: arg}
}

func (b *BooleanNamedArgument) sealed() {}

func (b *BooleanNamedArgument) Kind() Kind     { return KindBooleanNamed }
func (b *BooleanNamedArgument) Text() string   { return b.arg.Text() }
func (b *BooleanNamedArgument) Prefix() string { return b.arg.Prefix() }
func (b *BooleanNamedArgument) Suffix() string { return b.arg.Suffix() }
func (b *BooleanNamedArgument) Start() int     { return b.arg.Start() }
func (b *BooleanNamedArgument) End() int       { return b.arg.End() }
func (b *BooleanNamedArgument) String() string { return b.arg.String() }

// Flag returns the wrapped token.
func (b *BooleanNamedArgument) Flag() Arg { return b.arg }

func (b *BooleanNamedArgument) Merge(following Arg) Arg {
	return merge(b, following)
}

func (b *BooleanNamedArgument) Beget(text string, opts *BegetOptions) Arg {
	result := NewBooleanNamed(b.arg.Beget(text, opts))
	result.assignment = b.assignment
	return result
}

func (b *BooleanNamedArgument) BegetShifted(distance int) Arg {
	result := NewBooleanNamed(b.arg.BegetShifted(distance))
	result.assignment = b.assignment
	return result
}

func (b *BooleanNamedArgument) IsBlank() bool { return isBlank(b) }

func (b *BooleanNamedArgument) Assign(paramID string) {
	b.arg.Assign(paramID)
	b.assignment = paramID
}

func (b *BooleanNamedArgument) Assignment() string { return b.assignment }

func (b *BooleanNamedArgument) UpdateCliArgs(args []Arg, old Arg) []Arg {
	return replaceArg(b, args, old)
}

func (b *BooleanNamedArgument) Equals(other Arg) (bool, error) {
	return equalFields(b, other)
}
