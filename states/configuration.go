package states

import (
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/configs"
	"github.com/milvus-io/pilot/framework"
)

var validator = map[string]func(string, string) error{
	configs.KeyPager: func(key string, value string) error {
		if value == "" {
			return nil
		}
		_, err := exec.LookPath(value) // check if the command exists
		return err
	},
	configs.KeyOutputFormat: func(key string, value string) error {
		if value == "" || framework.IsFormatName(value) {
			return nil
		}
		return errors.Newf("unknown format %q, expect one of %s", value, framework.FormatNames)
	},
}

type ShowConfigParam struct {
	framework.ParamBase `use:"show config" desc:"show pilot config items"`
	Format              string `name:"format" default:"default" options:"default,plain,json,table,line" desc:"output format"`
}

func (app *ApplicationState) ShowConfigCommand(ctx context.Context, p *ShowConfigParam, req *canon.Request) error {
	t := framework.Table{
		Header: []string{"Key", "Value"},
		Rows: lo.Map(app.config.Items(), func(item [2]string, _ int) []any {
			return []any{item[0], item[1]}
		}),
	}
	req.Output(framework.PrintTable(t, app.outputFormat(p.Format)))
	return nil
}

type SetConfigParam struct {
	framework.ParamBase `use:"set config" desc:"set pilot config"`
	Key                 string `name:"key" options:"HistorySize,LogLevel,LogFile,Pager,OutputFormat" desc:"config key"`
	Value               string `name:"value" default:"" desc:"config value"`
	Source              string `name:"source" default:"env" options:"env,file" desc:"config source, default is env"`
}

func (app *ApplicationState) SetConfigCommand(ctx context.Context, p *SetConfigParam) error {
	if validator, ok := validator[p.Key]; ok {
		if err := validator(p.Key, p.Value); err != nil {
			return errors.Wrapf(err, "invalid key-value %s-%s", p.Key, p.Value)
		}
	}
	return app.config.SetConfig(p.Source, p.Key, p.Value)
}
