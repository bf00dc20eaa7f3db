package states

import (
	"context"
	"strings"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/framework"
)

type EchoParam struct {
	framework.ParamBase `use:"echo" desc:"print the message"`
	Message             string `name:"message" desc:"text to print"`
	Times               int    `name:"times" default:"1" min:"1" max:"100" desc:"number of repetitions"`
	Upper               bool   `name:"upper" desc:"print in upper case"`
}

func (app *ApplicationState) EchoCommand(ctx context.Context, p *EchoParam, req *canon.Request) error {
	message := p.Message
	if p.Upper {
		message = strings.ToUpper(message)
	}
	for i := 0; i < p.Times; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		req.Output(message)
	}
	return nil
}
