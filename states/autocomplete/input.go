package autocomplete

import (
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/milvus-io/pilot/argument"
)

// parseInput splits input into components. When input ends with
// whitespace an empty component is appended for the word to come.
func parseInput(input string) []cComp {
	args := lo.Filter(argument.Tokenize(input), func(arg argument.Arg, _ int) bool {
		return !arg.IsBlank()
	})

	comps := lo.Map(args, func(arg argument.Arg, _ int) cComp {
		part := arg.Text()
		// quoted text is never a flag
		if !strings.HasPrefix(part, "-") || strings.TrimSpace(arg.Prefix()) != "" {
			return cComp{raw: part, cTag: part, cType: cmdCompCommand}
		}
		if name, value, found := strings.Cut(part, "="); found {
			return cComp{
				raw:      part,
				cTag:     strings.TrimLeft(name, "-"),
				cValue:   value,
				cType:    cmdCompFlag,
				assigned: true,
			}
		}
		return cComp{raw: part, cTag: strings.TrimLeft(part, "-"), cType: cmdCompFlag}
	})

	// add empty comp if end with space
	if input != "" && unicode.IsSpace(rune(input[len(input)-1])) {
		comps = append(comps, cComp{cType: cmdCompCommand})
	}
	return comps
}
