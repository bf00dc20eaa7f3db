package states

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/framework"
	"github.com/milvus-io/pilot/types"
)

type StepParam struct {
	framework.ParamBase `use:"step" desc:"step a value of a type up or down"`
	Type                string `name:"type" type:"typename" desc:"registered type name"`
	Value               string `name:"value" default:"" desc:"value to start from"`
	Down                bool   `name:"down" desc:"step down instead of up"`
	Times               int    `name:"times" default:"1" min:"1" max:"1000" desc:"number of steps"`
}

// StepCommand prints the values met stepping from value.
func (app *ApplicationState) StepCommand(ctx context.Context, p *StepParam, req *canon.Request) error {
	typ, err := app.Registry().Lookup(p.Type)
	if err != nil {
		return err
	}

	var value any
	if p.Value != "" {
		c := types.ParseString(typ, p.Value)
		if !c.IsValid() {
			return errors.Newf("invalid %s value %q: %s", typ.Name(), p.Value, c.Message)
		}
		value = c.Value
	}

	step := types.Increment
	if p.Down {
		step = types.Decrement
	}
	values := make([]string, 0, p.Times)
	for i := 0; i < p.Times; i++ {
		next, ok := step(typ, value)
		if !ok {
			return errors.Newf("type %s does not support stepping", typ.Name())
		}
		value = next
		values = append(values, typ.Stringify(value))
	}
	req.Output(strings.Join(values, " "))
	return nil
}
