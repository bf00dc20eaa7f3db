package bapps

import (
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/framework"
	"github.com/milvus-io/pilot/history"
)

// BApp interface for pilot application
type BApp interface {
	Run(framework.State)
}

// AppOption application setup option function.
type AppOption func(*appOption)

type appOption struct {
	logger  *zap.Logger
	history *history.Helper
}

func newAppOption(opts []AppOption) *appOption {
	opt := &appOption{logger: zap.NewNop()}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithLogger returns AppOption to setup application logger.
func WithLogger(logger *zap.Logger) AppOption {
	return func(opt *appOption) {
		opt.logger = logger
	}
}

// WithHistory returns AppOption to share the history helper with the
// application state.
func WithHistory(hh *history.Helper) AppOption {
	return func(opt *appOption) {
		opt.history = hh
	}
}
