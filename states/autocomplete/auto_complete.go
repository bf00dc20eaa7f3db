package autocomplete

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/milvus-io/pilot/argument"
	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/types"
)

var (
	debugSuggestion = false
)

// acCandidate is the interface for auto-complete candidates.
type acCandidate interface {
	Match(cComp) bool
	NextCandidates(cComp, []acCandidate) []acCandidate
	Suggest(cComp) map[string]string
}

// wordNode is one word of the registered command names.
type wordNode struct {
	word     string
	cmd      *canon.Command
	children []*wordNode
}

func (n *wordNode) child(word string) *wordNode {
	for _, c := range n.children {
		if c.word == word {
			return c
		}
	}
	c := &wordNode{word: word}
	n.children = append(n.children, c)
	return c
}

func buildWordTree(commands []*canon.Command) *wordNode {
	root := &wordNode{}
	for _, cmd := range commands {
		node := root
		for _, word := range cmd.Words() {
			node = node.child(word)
		}
		node.cmd = cmd
	}
	return root
}

// cmdCandidate is a command word.
type cmdCandidate struct {
	node *wordNode
}

// Match implements acCandidate, compares the command word.
func (c *cmdCandidate) Match(input cComp) bool {
	if debugSuggestion {
		fmt.Printf("cmd: %s, cType: %d, cTag: %s\n", c.node.word, input.cType, input.cTag)
	}
	return input.cType == cmdCompCommand && c.node.word == input.cTag
}

// NextCandidates implements acCandidate, returns sub commands, params and
// positional values.
func (c *cmdCandidate) NextCandidates(_ cComp, _ []acCandidate) []acCandidate {
	result := lo.Map(c.node.children, func(child *wordNode, _ int) acCandidate {
		return &cmdCandidate{node: child}
	})
	if c.node.cmd == nil {
		return result
	}
	for _, param := range c.node.cmd.Params() {
		result = append(result, &paramCandidate{param: param})
	}
	return append(result, newPositionalCandidate(c.node.cmd))
}

func (c *cmdCandidate) Suggest(target cComp) map[string]string {
	if target.cType != cmdCompCommand && target.cType != cmdCompAll {
		return map[string]string{}
	}
	if strings.HasPrefix(c.node.word, target.cTag) || target.cType == cmdCompAll {
		desc := ""
		if c.node.cmd != nil {
			desc = c.node.cmd.Description()
		}
		return map[string]string{c.node.word: desc}
	}
	return map[string]string{}
}

// paramCandidate is a `--param` switch.
type paramCandidate struct {
	param *canon.Parameter
}

// Match implements acCandidate, abbreviated switches match as well.
func (c *paramCandidate) Match(input cComp) bool {
	return input.cType == cmdCompFlag && c.param.IsNamedParam("--"+input.cTag)
}

// Suggest implements acCandidate.
func (c *paramCandidate) Suggest(target cComp) map[string]string {
	// --param=value
	if target.cType == cmdCompFlag && target.assigned {
		result := make(map[string]string)
		if !c.param.IsNamedParam("--" + target.cTag) {
			return result
		}
		for _, v := range valueSuggestions(c.param, target.cValue) {
			// include the switch so go-prompt replaces the whole word
			result[fmt.Sprintf("--%s=%s", target.cTag, v)] = ""
		}
		return result
	}

	k := "--" + c.param.Name()
	if target.cType == cmdCompAll ||
		(target.cType == cmdCompFlag && strings.HasPrefix(c.param.Name(), target.cTag)) {
		return map[string]string{k: c.param.Description()}
	}
	return map[string]string{}
}

// NextCandidates implements acCandidate, a switch that takes a value is
// followed by a value candidate.
func (c *paramCandidate) NextCandidates(matched cComp, current []acCandidate) []acCandidate {
	next := lo.Map(current, func(candidate acCandidate, _ int) acCandidate {
		if positional, ok := candidate.(*positionalCandidate); ok {
			return positional.withBound(c.param.Name())
		}
		return candidate
	})
	if matched.assigned || c.param.IsBoolean() {
		return next
	}
	return []acCandidate{&valueCandidate{param: c.param, previousCandidates: next}}
}

// valueCandidate is the pending value of a switch.
type valueCandidate struct {
	param              *canon.Parameter
	previousCandidates []acCandidate
}

// Match implements acCandidate, whatever follows a switch is its value.
func (c *valueCandidate) Match(_ cComp) bool {
	return true
}

// NextCandidates implements acCandidate, returns to the previous candidates
// once the value is consumed.
func (c *valueCandidate) NextCandidates(_ cComp, _ []acCandidate) []acCandidate {
	return c.previousCandidates
}

// Suggest implements acCandidate.
func (c *valueCandidate) Suggest(target cComp) map[string]string {
	result := make(map[string]string)
	for _, v := range valueSuggestions(c.param, target.cTag) {
		result[v] = ""
	}
	return result
}

// positionalCandidate is the next parameter filled by a bare word.
type positionalCandidate struct {
	params []*canon.Parameter
	bound  map[string]bool
}

func newPositionalCandidate(cmd *canon.Command) *positionalCandidate {
	return &positionalCandidate{
		params: lo.Filter(cmd.Params(), func(p *canon.Parameter, _ int) bool { return !p.IsBoolean() }),
		bound:  map[string]bool{},
	}
}

func (c *positionalCandidate) unbound() []*canon.Parameter {
	return lo.Filter(c.params, func(p *canon.Parameter, _ int) bool { return !c.bound[p.Name()] })
}

func (c *positionalCandidate) withBound(name string) *positionalCandidate {
	bound := make(map[string]bool, len(c.bound)+1)
	for k, v := range c.bound {
		bound[k] = v
	}
	bound[name] = true
	return &positionalCandidate{params: c.params, bound: bound}
}

// Match implements acCandidate.
func (c *positionalCandidate) Match(input cComp) bool {
	return input.cType == cmdCompCommand && len(c.unbound()) > 0
}

// NextCandidates implements acCandidate. The last text parameter and array
// parameters take every remaining word.
func (c *positionalCandidate) NextCandidates(_ cComp, current []acCandidate) []acCandidate {
	unbound := c.unbound()
	param := unbound[0]
	_, isArray := param.Type().(*types.ArrayType)
	if isArray || (len(unbound) == 1 && param.Type().Name() == types.NameText) {
		return current
	}
	return lo.Map(current, func(candidate acCandidate, _ int) acCandidate {
		if candidate == acCandidate(c) {
			return c.withBound(param.Name())
		}
		return candidate
	})
}

// Suggest implements acCandidate.
func (c *positionalCandidate) Suggest(target cComp) map[string]string {
	result := make(map[string]string)
	unbound := c.unbound()
	if target.cType != cmdCompCommand || len(unbound) == 0 {
		return result
	}
	param := unbound[0]
	if at, ok := param.Type().(*types.ArrayType); ok {
		for _, v := range typeSuggestions(at.Subtype(), target.cTag) {
			result[v] = ""
		}
		return result
	}
	for _, v := range valueSuggestions(param, target.cTag) {
		result[v] = ""
	}
	return result
}

// valueSuggestions returns the values of param starting with partial.
func valueSuggestions(param *canon.Parameter, partial string) []string {
	return typeSuggestions(param.Type(), partial)
}

func typeSuggestions(typ types.Type, partial string) []string {
	if lister, ok := typ.(types.Lister); ok && lister.Options() != nil {
		names := lo.Map(lister.Options(), func(option any, _ int) string { return types.OptionName(option) })
		return lo.Filter(names, func(name string, _ int) bool { return strings.HasPrefix(name, partial) })
	}
	return typ.Parse(argument.NewText(partial)).PredictionNames()
}

// SuggestInput returns suggestions for input given the commands of catalog,
// suggested text mapped to its description.
func SuggestInput(input string, catalog *canon.Catalog) map[string]string {
	return findCmdSuggestions(parseInput(input), catalog.Match(""))
}

func findCmdSuggestions(comps []cComp, commands []*canon.Command) map[string]string {
	// no suggestion if input is empty
	if len(comps) == 0 {
		return map[string]string{}
	}

	root := buildWordTree(commands)
	candidates := lo.Map(root.children, func(node *wordNode, _ int) acCandidate {
		return &cmdCandidate{node: node}
	})

	if debugSuggestion {
		fmt.Println()
	}

	// reduce leading components
	// for example
	// "history --limit 3", ac target shall be "3"
	// "show history", ac target shall be "history"
loop:
	for i := 0; i < len(comps)-1; i++ {
		if debugSuggestion {
			fmt.Printf("reducing part %d:", i)
			printCandidates(candidates)
			fmt.Println(comps)
		}

		for _, candidate := range candidates {
			if candidate.Match(comps[i]) {
				candidates = candidate.NextCandidates(comps[i], candidates)
				continue loop
			}
		}
		if debugSuggestion {
			fmt.Println("no suggestion matched, return")
		}
		return map[string]string{}
	}

	target := comps[len(comps)-1]
	if debugSuggestion {
		fmt.Println("target candidates")
		printCandidates(candidates)
		fmt.Println("target:", target)
	}
	// check candidates has target prefix
	result := make(map[string]string)
	for _, candidate := range candidates {
		suggests := candidate.Suggest(target)
		for k, v := range suggests {
			result[k] = v
		}
	}

	return result
}

func printCandidates(candidates []acCandidate) {
	for _, cmd := range candidates {
		suggests := cmd.Suggest(cComp{})
		for k := range suggests {
			fmt.Printf("\"%s\" ", k)
		}
	}
	fmt.Println()
}
