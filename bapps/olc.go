package bapps

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/common"
	"github.com/milvus-io/pilot/framework"
)

type olcApp struct {
	script string
	logger *zap.Logger
}

type olcCmd struct {
	cmd   string
	muted bool
}

// NewOlcApp returns an app running the comma separated commands of script.
// A command starting with `#` runs with its output discarded.
func NewOlcApp(script string, opts ...AppOption) BApp {
	opt := newAppOption(opts)
	return &olcApp{
		script: script,
		logger: opt.logger,
	}
}

func (a *olcApp) Run(start framework.State) {
	app := start
	cmds := a.parseScripts(a.script)
	var err error
	for _, cmd := range cmds {
		stdout := os.Stdout
		if cmd.muted {
			// set to /dev/null to discard not wanted output
			os.Stdout, _ = os.Open(os.DevNull)
		}
		app, err = app.Process(cmd.cmd)
		if cmd.muted {
			os.Stdout = stdout
		}
		if errors.Is(err, common.ExitErr) {
			return
		}
		if err != nil {
			a.logger.Warn("olc command failed", zap.String("command", cmd.cmd), zap.Error(err))
			// failed requests print their own error
			if !errors.Is(err, framework.ErrCommandFailed) {
				fmt.Println(err.Error())
			}
			return
		}
		if app.IsEnding() {
			return
		}
	}
}

func (a *olcApp) parseScripts(script string) []olcCmd {
	parts := strings.Split(script, ",")
	return lo.Map(parts, func(raw string, _ int) olcCmd {
		muted := false
		cmd := strings.TrimSpace(raw)
		// mute cmd using #[command]
		if strings.HasPrefix(cmd, "#") {
			muted = true
			cmd = cmd[1:]
		}
		return olcCmd{
			muted: muted,
			cmd:   cmd,
		}
	})
}
