package bapps

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/common"
	"github.com/milvus-io/pilot/framework"
	"github.com/milvus-io/pilot/types"
)

// simpleApp wraps promptui as BApp.
type simpleApp struct {
	logger *zap.Logger
}

func NewSimpleApp(opts ...AppOption) BApp {
	opt := newAppOption(opts)
	return &simpleApp{logger: opt.logger}
}

// Run starts Pilot with promptui. (disable suggestion and history)
func (a *simpleApp) Run(start framework.State) {
	app := start
	app.SetCompletionProvider(NewPromptCompleter())
	for {
		p := promptui.Prompt{
			Label: app.Label(),
			Validate: func(input string) error {
				return nil
			},
		}

		line, err := p.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return
		}
		if err != nil {
			continue
		}
		next, err := app.Process(line)
		if errors.Is(err, common.ExitErr) {
			return
		}
		if err != nil {
			a.logger.Info("command failed", zap.String("line", line), zap.Error(err))
			if !errors.Is(err, framework.ErrCommandFailed) {
				fmt.Println(err.Error())
			}
			continue
		}
		if next.IsEnding() {
			return
		}
		next.SetupCommands()
		app = next
	}
}

// promptCompleter asks for the parameters a request misses.
type promptCompleter struct {
	// run overrides how a parameter is asked for, used in tests
	run func(param *canon.Parameter, current string) (string, error)
}

var _ canon.CompletionProvider = (*promptCompleter)(nil)

// NewPromptCompleter returns a completion provider asking with promptui, a
// select list for parameters with options, a validated prompt otherwise.
func NewPromptCompleter() canon.CompletionProvider {
	return &promptCompleter{run: askParam}
}

// Complete implements canon.CompletionProvider.
func (c *promptCompleter) Complete(ctx context.Context, req *canon.Request) error {
	for _, param := range req.Command().Params() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if canon.ParamStatus(param, req.Args) == types.StatusValid {
			continue
		}
		value, err := c.run(param, req.Args[param.Name()])
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", param.Name())
		}
		req.Args[param.Name()] = value
	}
	return nil
}

func paramLabel(param *canon.Parameter) string {
	label := param.Name()
	if desc := param.Description(); desc != "" {
		label = fmt.Sprintf("%s, %s", label, desc)
	}
	if param.IsOptional() {
		label += " (optional)"
	}
	return label
}

// stderr lets questions bypass a pager capturing stdout, promptui closes
// its output when done.
type stderr struct{}

func (stderr) Write(p []byte) (int, error) { return os.Stderr.Write(p) }
func (stderr) Close() error                { return nil }

func askParam(param *canon.Parameter, current string) (string, error) {
	if lister, ok := param.Type().(types.Lister); ok && len(lister.Options()) > 0 {
		names := lo.Map(lister.Options(), func(option any, _ int) string { return types.OptionName(option) })
		s := promptui.Select{
			Label:  paramLabel(param),
			Items:  names,
			Stdout: stderr{},
			Searcher: func(input string, index int) bool {
				return fuzzy.MatchFold(input, names[index])
			},
		}
		_, value, err := s.Run()
		return value, err
	}

	p := promptui.Prompt{
		Label:   paramLabel(param),
		Default: current,
		Stdout:  stderr{},
		Validate: func(input string) error {
			c := types.ParseString(param.Type(), input)
			if c.Status == types.StatusError {
				return errors.New(c.Message)
			}
			return nil
		},
	}
	return p.Run()
}
