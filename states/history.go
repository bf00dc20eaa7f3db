package states

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/framework"
)

type HistoryParam struct {
	framework.ParamBase `use:"history" desc:"list previous requests"`
	Prefix              string `name:"prefix" default:"" desc:"only requests of commands starting with prefix"`
	Limit               int    `name:"limit" default:"20" min:"1" desc:"max number of requests"`
	Format              string `name:"format" default:"default" options:"default,plain,json,table,line" desc:"output format"`
}

// HistoryCommand prints the last requests, the running one included.
func (app *ApplicationState) HistoryCommand(ctx context.Context, p *HistoryParam) (*framework.PresetResultSet, error) {
	requests := app.history.Requests(p.Prefix)
	if len(requests) > p.Limit {
		requests = requests[len(requests)-p.Limit:]
	}
	return framework.NewPresetResultSet(framework.NewListResult[Requests](requests), app.outputFormat(p.Format)), nil
}

type Requests struct {
	framework.ListResultSet[*canon.Request]
}

func (rs *Requests) PrintAs(format framework.Format) string {
	return framework.PrintTable(framework.Table{
		Header: []string{"ID", "Command", "Status", "Duration"},
		Rows: lo.Map(rs.Data, func(r *canon.Request, _ int) []any {
			return []any{r.ID(), requestLine(r), requestState(r), r.Duration().Round(time.Microsecond).String()}
		}),
	}, format)
}

func requestLine(r *canon.Request) string {
	if r.Typed() != "" {
		return r.Typed()
	}
	return r.Command().Name()
}

func requestState(r *canon.Request) string {
	switch {
	case r.Failed():
		return "failed"
	case r.Completed():
		return "done"
	default:
		return "running"
	}
}
