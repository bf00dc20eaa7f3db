package argument

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits a command line into Arguments.
//
// Whitespace in front of a token becomes its prefix, quotes ('...' or "...")
// are kept in prefix and suffix, and trailing whitespace of the line goes to
// the suffix of the last token. A backslash escapes the following character,
// the escaped character lands in the text while String keeps the backslash.
// Offsets are byte offsets into input and span the rendered form of each
// argument, so Join(Tokenize(s)) == s.
func Tokenize(input string) []Arg {
	if input == "" {
		return nil
	}

	var args []Arg
	pos := 0
	for pos < len(input) {
		start := pos
		pos = skipSpace(input, pos)
		if pos >= len(input) {
			// trailing whitespace belongs to the previous token
			if len(args) > 0 {
				last := *args[len(args)-1].(*Argument)
				last.suffix += input[start:]
				last.end = len(input)
				args[len(args)-1] = &last
				break
			}
			args = append(args, New("", input[start:], "", start, len(input)))
			break
		}

		var text, suffix string
		textStart := pos
		r, size := utf8.DecodeRuneInString(input[pos:])
		if r == '\'' || r == '"' {
			textStart += size
			var closed bool
			text, pos, closed = scan(input, textStart, func(c rune) bool { return c == r })
			if closed {
				suffix = string(r)
			}
		} else {
			text, pos, _ = scan(input, textStart, unicode.IsSpace)
		}

		arg := New(text, input[start:textStart], suffix, start, pos+len(suffix))
		arg.setRaw(input[textStart:pos])
		args = append(args, arg)
		pos += len(suffix)
	}
	return args
}

// Quote renders text as a single token that Tokenize reads back with the
// same text.
func Quote(text string) string {
	if text != "" && !strings.ContainsAny(text, " \t\n\r'\"\\") {
		return text
	}
	builder := &strings.Builder{}
	builder.WriteByte('"')
	for _, r := range text {
		if r == '"' || r == '\\' {
			builder.WriteByte('\\')
		}
		builder.WriteRune(r)
	}
	builder.WriteByte('"')
	return builder.String()
}

// scan reads text from input starting at from until stop matches an
// unescaped rune. It returns the unescaped text, the offset of the stop
// rune, or len(input), and whether a stop rune was found.
func scan(input string, from int, stop func(rune) bool) (string, int, bool) {
	builder := &strings.Builder{}
	pos := from
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if r == '\\' && pos+size < len(input) {
			escaped, escapedSize := utf8.DecodeRuneInString(input[pos+size:])
			builder.WriteRune(escaped)
			pos += size + escapedSize
			continue
		}
		if stop(r) {
			return builder.String(), pos, true
		}
		builder.WriteRune(r)
		pos += size
	}
	return builder.String(), pos, false
}

func skipSpace(input string, pos int) int {
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if !unicode.IsSpace(r) {
			return pos
		}
		pos += size
	}
	return pos
}
