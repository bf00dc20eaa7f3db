// Package argument models position preserving command line tokens.
//
// Every Arg remembers the text it was derived from together with the
// whitespace and quoting around it, so prefix+text+suffix of each argument
// concatenates back to the original input. Editing an argument never
// mutates it: Beget, BegetShifted and Merge return new values.
package argument

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// AtCursor marks a position that is the live cursor instead of a fixed offset.
const AtCursor = -1

// ErrKindMismatch is returned by Equals when two different argument kinds are compared.
var ErrKindMismatch = errors.New("argument kind mismatch")

// Kind identifies the concrete argument variant.
type Kind int

const (
	KindPlain Kind = iota + 1
	KindMerged
	KindNamed
	KindBooleanNamed
	KindArray
)

var kindNames = map[Kind]string{
	KindPlain:        "Argument",
	KindMerged:       "MergedArgument",
	KindNamed:        "NamedArgument",
	KindBooleanNamed: "BooleanNamedArgument",
	KindArray:        "ArrayArgument",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "Unknown"
	}
	return name
}

// BegetOptions controls prefix and suffix regeneration in Beget.
// A nil *BegetOptions keeps the original prefix and suffix.
type BegetOptions struct {
	// PrefixSpace puts a single space in front of the new text.
	PrefixSpace bool
}

// Arg is the capability set shared by all argument variants.
// The set of implementations is closed, use a type switch to tell them apart.
type Arg interface {
	Kind() Kind
	Text() string
	Prefix() string
	Suffix() string
	Start() int
	End() int
	// String renders the argument back into command line text.
	String() string

	Merge(following Arg) Arg
	Beget(text string, opts *BegetOptions) Arg
	BegetShifted(distance int) Arg
	IsBlank() bool
	Equals(other Arg) (bool, error)
	// Assign records the id of the parameter this argument is bound to.
	Assign(paramID string)
	Assignment() string
	// UpdateCliArgs replaces old with the receiver inside args and returns the result.
	UpdateCliArgs(args []Arg, old Arg) []Arg

	sealed()
}

// Argument is a single token of command line input.
type Argument struct {
	text   string
	prefix string
	suffix string
	start  int
	end    int
	// raw is the typed form of text when it held escapes, empty otherwise.
	raw string

	assignment string
}

var _ Arg = (*Argument)(nil)

// New returns an Argument with explicit provenance.
func New(text, prefix, suffix string, start, end int) *Argument {
	return &Argument{
		text:   text,
		prefix: prefix,
		suffix: suffix,
		start:  start,
		end:    end,
	}
}

// NewText returns an Argument for text that has no known position in any input.
func NewText(text string) *Argument {
	return New(text, "", "", AtCursor, AtCursor)
}

// Blank returns an empty Argument positioned at the cursor.
func Blank() *Argument {
	return NewText("")
}

func (a *Argument) sealed() {}

func (a *Argument) Kind() Kind     { return KindPlain }
func (a *Argument) Text() string   { return a.text }
func (a *Argument) Prefix() string { return a.prefix }
func (a *Argument) Suffix() string { return a.suffix }
func (a *Argument) Start() int     { return a.start }
func (a *Argument) End() int       { return a.end }

func (a *Argument) String() string {
	return a.prefix + a.rendered() + a.suffix
}

// rendered returns text as it was typed.
func (a *Argument) rendered() string {
	if a.raw != "" {
		return a.raw
	}
	return a.text
}

// Merge joins the receiver with the following argument, keeping the
// separating suffix and prefix inside the merged text.
func (a *Argument) Merge(following Arg) Arg {
	return merge(a, following)
}

// Beget returns a copy with text replaced and the end offset adjusted.
// With options the prefix and suffix are regenerated, quoting text that
// contains a space or is empty.
func (a *Argument) Beget(text string, opts *BegetOptions) Arg {
	return beget(a, text, opts, quoteFor(text))
}

// BegetShifted returns a copy slid along by distance.
func (a *Argument) BegetShifted(distance int) Arg {
	return &Argument{
		text:       a.text,
		prefix:     a.prefix,
		suffix:     a.suffix,
		start:      shift(a.start, distance),
		end:        shift(a.end, distance),
		raw:        a.raw,
		assignment: a.assignment,
	}
}

// IsBlank reports whether the argument has no visible content.
func (a *Argument) IsBlank() bool {
	return isBlank(a)
}

func (a *Argument) Assign(paramID string) { a.assignment = paramID }

func (a *Argument) Assignment() string { return a.assignment }

// UpdateCliArgs replaces every occurrence of old with the receiver, appending
// the receiver when old is not in the list.
func (a *Argument) UpdateCliArgs(args []Arg, old Arg) []Arg {
	return replaceArg(a, args, old)
}

// Equals compares all provenance fields.
func (a *Argument) Equals(other Arg) (bool, error) {
	return equalFields(a, other)
}

// Merge left folds Merge over args. It returns nil for an empty list.
func Merge(args []Arg) Arg {
	return MergeRange(args, 0, len(args))
}

// MergeRange left folds Merge over args[start:end). It returns nil for an empty range.
func MergeRange(args []Arg, start, end int) Arg {
	if start < 0 {
		start = 0
	}
	if end > len(args) {
		end = len(args)
	}
	var joined Arg
	for i := start; i < end; i++ {
		if joined == nil {
			joined = args[i]
			continue
		}
		joined = joined.Merge(args[i])
	}
	return joined
}

// Join renders args back into a command line.
func Join(args []Arg) string {
	builder := &strings.Builder{}
	for _, arg := range args {
		builder.WriteString(arg.String())
	}
	return builder.String()
}

func merge(a, following Arg) *Argument {
	separator := a.Suffix() + following.Prefix()
	merged := &Argument{
		text:   a.Text() + separator + following.Text(),
		prefix: a.Prefix(),
		suffix: following.Suffix(),
		start:  a.Start(),
		end:    following.End(),
	}
	merged.setRaw(renderedText(a) + separator + renderedText(following))
	return merged
}

func (a *Argument) setRaw(raw string) {
	if raw != a.text {
		a.raw = raw
	}
}

// renderedText is the text of a as typed, with escapes in place.
func renderedText(a Arg) string {
	switch v := a.(type) {
	case *Argument:
		return v.rendered()
	case *MergedArgument:
		return v.joined.rendered()
	case *NamedArgument:
		return renderedText(v.valueArg)
	case *BooleanNamedArgument:
		return renderedText(v.arg)
	case *ArrayArgument:
		return renderedText(v.joined())
	default:
		return a.Text()
	}
}

// beget implements Beget for plain values, quote is put around text when
// options are given.
func beget(a Arg, text string, opts *BegetOptions, quote string) *Argument {
	prefix, suffix := a.Prefix(), a.Suffix()
	end := shift(a.End(), len(text)-len(renderedText(a)))

	if opts != nil {
		prefix = quote
		if opts.PrefixSpace {
			prefix = " " + quote
		}
		suffix = quote
		// rendered form keeps its start, end absorbs the prefix and suffix delta
		end = shift(end, len(prefix)-len(a.Prefix())+len(suffix)-len(a.Suffix()))
	}

	return &Argument{
		text:       text,
		prefix:     prefix,
		suffix:     suffix,
		start:      a.Start(),
		end:        end,
		assignment: a.Assignment(),
	}
}

func quoteFor(text string) string {
	if text == "" || strings.Contains(text, " ") {
		return "'"
	}
	return ""
}

func shift(pos, distance int) int {
	if pos == AtCursor {
		return pos
	}
	return pos + distance
}

func isBlank(a Arg) bool {
	return a.Text() == "" &&
		strings.TrimSpace(a.Prefix()) == "" &&
		strings.TrimSpace(a.Suffix()) == ""
}

func replaceArg(replacement Arg, args []Arg, old Arg) []Arg {
	result := make([]Arg, len(args))
	copy(result, args)

	updated := false
	for i, arg := range result {
		if old != nil && arg == old {
			result[i] = replacement
			updated = true
		}
	}
	if !updated {
		result = append(result, replacement)
	}
	return result
}

// equalFields is the structural comparison shared by single valued variants.
func equalFields(a, other Arg) (bool, error) {
	if other == nil {
		return false, nil
	}
	if a.Kind() != other.Kind() {
		return false, errors.Wrapf(ErrKindMismatch, "cannot compare %s with %s", a.Kind(), other.Kind())
	}
	if a == other {
		return true, nil
	}
	return a.Text() == other.Text() &&
		a.Prefix() == other.Prefix() &&
		a.Suffix() == other.Suffix() &&
		a.Start() == other.Start() &&
		a.End() == other.End(), nil
}
