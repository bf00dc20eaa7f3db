package states

import (
	"context"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/common"
	"github.com/milvus-io/pilot/framework"
)

type PrintVerParam struct {
	framework.ParamBase `use:"version" desc:"print version"`
}

func (app *ApplicationState) PrintVersionCommand(ctx context.Context, _ *PrintVerParam, req *canon.Request) {
	req.Output("Pilot Version " + common.Version.String())
}
