package framework

import (
	"github.com/spf13/pflag"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/types"
)

// FlagUsage renders the parameters of cmd the way pflag prints flags. A
// parameter with a one letter unique prefix gets it as shorthand.
func FlagUsage(cmd *canon.Command) string {
	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	for _, p := range cmd.Params() {
		name, desc := p.Name(), p.Description()
		if p.IsDataRequired() {
			desc += " (required)"
		}
		shorthand := ""
		if len(p.UniquePrefix()) == 1 {
			shorthand = p.UniquePrefix()
		}

		defaultValue, _ := p.Default()
		switch typ := p.Type().(type) {
		case *types.BooleanType:
			flags.BoolP(name, shorthand, false, desc)
		case *types.NumberType:
			n, _ := defaultValue.(int)
			flags.IntP(name, shorthand, n, desc)
		case *types.ArrayType:
			flags.StringSliceP(name, shorthand, nil, desc)
		default:
			flags.StringP(name, shorthand, typ.Stringify(defaultValue), desc)
		}
	}
	return flags.FlagUsages()
}
