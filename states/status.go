package states

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/milvus-io/pilot/argument"
	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/framework"
	"github.com/milvus-io/pilot/types"
)

type StatusParam struct {
	framework.ParamBase `use:"status" desc:"show how a command line would be understood without running it"`
	Line                string `name:"line" desc:"command line to evaluate"`
}

// StatusCommand binds line to its command and reports the status of every
// parameter.
func (app *ApplicationState) StatusCommand(ctx context.Context, p *StatusParam, req *canon.Request) error {
	args := argument.Tokenize(p.Line)
	cmd, n := app.Catalog().Resolve(args)
	if cmd == nil {
		return errors.Wrapf(canon.ErrUnknownCommand, "%q", strings.TrimSpace(p.Line))
	}

	binding := canon.Bind(cmd, args[n:])
	bound := binding.Args()
	reports := canon.Report(cmd, bound)

	t := framework.Table{
		Header: []string{"Parameter", "Type", "Status", "Value", "Message"},
		Rows: lo.Map(reports, func(r canon.ParamReport, _ int) []any {
			value, message := "", ""
			if r.Conversion != nil {
				value = r.Param.Type().Stringify(r.Conversion.Value)
				message = r.Conversion.Message
			}
			if text, ok := bound[r.Param.Name()]; ok && r.Conversion != nil && !r.Conversion.IsValid() {
				value = text
			}
			return []any{r.Param.Name(), r.Param.Type().Name(), colorStatus(r.Status), value, message}
		}),
	}

	sb := &strings.Builder{}
	sb.WriteString(framework.PrintTable(t, framework.FormatDefault))
	sb.WriteString("\n")
	sb.WriteString(cmd.Name())
	sb.WriteString(": ")
	sb.WriteString(colorStatus(canon.RequestStatus(cmd, bound)))
	for _, arg := range binding.Unused {
		sb.WriteString("\nunexpected argument: ")
		sb.WriteString(strings.TrimSpace(arg.String()))
	}
	req.Output(sb.String())
	return nil
}

func colorStatus(status types.Status) string {
	switch status {
	case types.StatusValid:
		return color.GreenString(status.String())
	case types.StatusIncomplete:
		return color.YellowString(status.String())
	default:
		return color.RedString(status.String())
	}
}
