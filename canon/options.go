package canon

import (
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
}

// Option is the option function for command and catalog construction.
type Option func(*options)

// WithLogger sets the logger for configuration warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
