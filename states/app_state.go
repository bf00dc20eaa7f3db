package states

import (
	"io"

	"go.uber.org/zap"

	"github.com/milvus-io/pilot/configs"
	"github.com/milvus-io/pilot/framework"
	"github.com/milvus-io/pilot/history"
	"github.com/milvus-io/pilot/types"
)

const appLabel = "Pilot"

// ApplicationState is the state serving the builtin commands.
type ApplicationState struct {
	*framework.CmdState

	// config stores configuration items
	config  *configs.Config
	history *history.Helper
}

var _ framework.State = (*ApplicationState)(nil)

// Option is the option function for Start.
type Option func(*startOption)

type startOption struct {
	logger   *zap.Logger
	history  *history.Helper
	registry *types.Registry
	output   io.Writer
}

// WithLogger sets the logger of the application.
func WithLogger(logger *zap.Logger) Option {
	return func(opt *startOption) {
		opt.logger = logger
	}
}

// WithHistory sets the history helper recording requests.
func WithHistory(hh *history.Helper) Option {
	return func(opt *startOption) {
		opt.history = hh
	}
}

// WithRegistry sets the type registry, basic types plus `typename` are
// registered otherwise.
func WithRegistry(registry *types.Registry) Option {
	return func(opt *startOption) {
		opt.registry = registry
	}
}

// WithOutput sets where command output is written, stdout by default.
func WithOutput(w io.Writer) Option {
	return func(opt *startOption) {
		opt.output = w
	}
}

// Start returns the first state serving the builtin commands.
func Start(config *configs.Config, opts ...Option) (*ApplicationState, error) {
	opt := &startOption{logger: zap.NewNop()}
	for _, o := range opts {
		o(opt)
	}
	if opt.history == nil {
		opt.history = history.NewHistoryHelper("", history.WithSize(config.GetHistorySize()), history.WithLogger(opt.logger))
	}
	if opt.registry == nil {
		opt.registry = types.NewBasicRegistry(types.WithLogger(opt.logger))
		if err := RegisterTypeNameType(opt.registry); err != nil {
			return nil, err
		}
	}

	stateOpts := []framework.CmdStateOption{
		framework.WithLogger(opt.logger),
		framework.WithRecorder(opt.history),
	}
	if opt.output != nil {
		stateOpts = append(stateOpts, framework.WithOutput(opt.output))
	}
	core := framework.NewCmdState(appLabel, opt.registry, stateOpts...)
	app := &ApplicationState{
		CmdState: core,
		config:   config,
		history:  opt.history,
	}
	if err := core.UpdateState(app, nil); err != nil {
		return nil, err
	}
	return app, nil
}

// History returns the history helper of the application.
func (app *ApplicationState) History() *history.Helper {
	return app.history
}

func (app *ApplicationState) outputFormat(name string) framework.Format {
	if name == "" || name == "default" {
		name = app.config.GetGlobalOutputFormat()
	}
	return framework.NameFormat(name)
}
