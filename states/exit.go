package states

import (
	"context"

	"github.com/milvus-io/pilot/framework"
)

// exitState simple exit state.
type exitState struct {
	*framework.CmdState
}

// SetupCommands setups the command.
// also called after each command run to reset flag values.
func (s *exitState) SetupCommands() {}

// IsEnding returns true for exit State
func (s *exitState) IsEnding() bool { return true }

type exitParam struct {
	framework.ParamBase `use:"exit" desc:"Close this CLI tool"`
}

// ExitCommand returns exit command
func (app *ApplicationState) ExitCommand(ctx context.Context, _ *exitParam) {
	app.SetNext(&exitState{CmdState: app.CmdState})
}
