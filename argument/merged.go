package argument

// MergedArgument fuses several tokens into one logical argument, used by
// commands that take a single free text tail like `echo a b c`.
type MergedArgument struct {
	args   []Arg
	joined *Argument

	assignment string
}

var _ Arg = (*MergedArgument)(nil)

// NewMerged returns the merge of args. An empty list yields a blank argument at the cursor.
func NewMerged(args []Arg) *MergedArgument {
	constituents := make([]Arg, len(args))
	copy(constituents, args)

	joined := Blank()
	if merged := Merge(constituents); merged != nil {
		joined = New(merged.Text(), merged.Prefix(), merged.Suffix(), merged.Start(), merged.End())
		joined.setRaw(renderedText(merged))
	}
	return &MergedArgument{
		args:   constituents,
		joined: joined,
	}
}

func (m *MergedArgument) sealed() {}

func (m *MergedArgument) Kind() Kind     { return KindMerged }
func (m *MergedArgument) Text() string   { return m.joined.text }
func (m *MergedArgument) Prefix() string { return m.joined.prefix }
func (m *MergedArgument) Suffix() string { return m.joined.suffix }
func (m *MergedArgument) Start() int     { return m.joined.start }
func (m *MergedArgument) End() int       { return m.joined.end }
func (m *MergedArgument) String() string { return m.joined.String() }

// Arguments returns the constituent arguments.
func (m *MergedArgument) Arguments() []Arg {
	result := make([]Arg, len(m.args))
	copy(result, m.args)
	return result
}

func (m *MergedArgument) Merge(following Arg) Arg {
	return merge(m, following)
}

// Beget replaces the text without ever adding quotes, merged text needs none.
func (m *MergedArgument) Beget(text string, opts *BegetOptions) Arg {
	result := NewMerged([]Arg{beget(m, text, opts, "")})
	result.assignment = m.assignment
	return result
}

func (m *MergedArgument) BegetShifted(distance int) Arg {
	shifted := make([]Arg, 0, len(m.args))
	for _, arg := range m.args {
		shifted = append(shifted, arg.BegetShifted(distance))
	}
	result := NewMerged(shifted)
	if len(shifted) == 0 {
		result.joined = m.joined.BegetShifted(distance).(*Argument)
	}
	result.assignment = m.assignment
	return result
}

func (m *MergedArgument) IsBlank() bool { return isBlank(m) }

// Assign records the parameter on the merged argument and all constituents.
func (m *MergedArgument) Assign(paramID string) {
	for _, arg := range m.args {
		arg.Assign(paramID)
	}
	m.assignment = paramID
}

func (m *MergedArgument) Assignment() string { return m.assignment }

func (m *MergedArgument) UpdateCliArgs(args []Arg, old Arg) []Arg {
	return replaceArg(m, args, old)
}

func (m *MergedArgument) Equals(other Arg) (bool, error) {
	return equalFields(m, other)
}
