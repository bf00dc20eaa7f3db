package states

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/framework"
)

type HelpParam struct {
	framework.ParamBase `use:"help [command]" desc:"list commands or describe one"`
	Command             []string `name:"command" default:"" desc:"command to describe"`
	Format              string   `name:"format" default:"default" options:"default,plain,json,table,line" desc:"output format"`
}

// HelpCommand lists the visible commands, or describes the named one.
func (app *ApplicationState) HelpCommand(ctx context.Context, p *HelpParam, req *canon.Request) (*framework.PresetResultSet, error) {
	catalog := app.Catalog()
	name := strings.Join(p.Command, " ")
	if name == "" {
		return framework.NewPresetResultSet(framework.NewListResult[Commands](catalog.Match("")), app.outputFormat(p.Format)), nil
	}

	cmd, ok := catalog.Get(name)
	if !ok {
		matched := catalog.Match(name)
		if len(matched) == 0 {
			return nil, errors.Wrapf(canon.ErrUnknownCommand, "%q", name)
		}
		return framework.NewPresetResultSet(framework.NewListResult[Commands](matched), app.outputFormat(p.Format)), nil
	}

	sb := &strings.Builder{}
	fmt.Fprintln(sb, cmd.Description())
	fmt.Fprintln(sb)
	fmt.Fprintln(sb, "Usage:")
	fmt.Fprintf(sb, "  %s\n", framework.Use(cmd))
	if len(cmd.Params()) > 0 {
		fmt.Fprintln(sb)
		fmt.Fprintln(sb, "Parameters:")
		sb.WriteString(framework.FlagUsage(cmd))
	}
	req.Output(sb.String())
	return nil, nil
}

type Commands struct {
	framework.ListResultSet[*canon.Command]
}

func (rs *Commands) PrintAs(format framework.Format) string {
	return framework.PrintTable(framework.Table{
		Header: []string{"Command", "Description"},
		Rows: lo.Map(rs.Data, func(cmd *canon.Command, _ int) []any {
			return []any{cmd.Name(), cmd.Description()}
		}),
	}, format)
}
