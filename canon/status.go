package canon

import (
	"github.com/milvus-io/pilot/types"
)

// Args maps parameter names to the text supplied for them. A name that is
// present with empty text differs from a name that is absent.
type Args map[string]string

// Clone returns a copy of a.
func (a Args) Clone() Args {
	result := make(Args, len(a))
	for k, v := range a {
		result[k] = v
	}
	return result
}

// ParamConversion parses the text supplied for param. It returns nil when
// no text, or empty text, was supplied.
func ParamConversion(param *Parameter, args Args) *types.Conversion {
	text, ok := args[param.name]
	if !ok || text == "" {
		return nil
	}
	return types.ParseString(param.typ, text)
}

// ParamStatus returns the status of a single parameter given args.
func ParamStatus(param *Parameter, args Args) types.Status {
	text, ok := args[param.name]
	switch {
	case !ok:
		if param.IsDataRequired() {
			return types.StatusIncomplete
		}
		return types.StatusValid
	case text == "":
		if param.IsOptional() {
			return types.StatusValid
		}
		return types.StatusIncomplete
	default:
		return ParamConversion(param, args).Status
	}
}

// RequestStatus combines the status of every parameter of cmd. A command
// without parameters is always valid.
func RequestStatus(cmd *Command, args Args) types.Status {
	statuses := make([]types.Status, 0, len(cmd.params))
	for _, param := range cmd.params {
		statuses = append(statuses, ParamStatus(param, args))
	}
	return types.Combine(statuses...)
}

// ParamReport is the status of one parameter with the conversion it is
// based on, if any.
type ParamReport struct {
	Param      *Parameter
	Status     types.Status
	Conversion *types.Conversion
}

// Report returns a ParamReport per parameter in declaration order.
func Report(cmd *Command, args Args) []ParamReport {
	reports := make([]ParamReport, 0, len(cmd.params))
	for _, param := range cmd.params {
		reports = append(reports, ParamReport{
			Param:      param,
			Status:     ParamStatus(param, args),
			Conversion: ParamConversion(param, args),
		})
	}
	return reports
}
