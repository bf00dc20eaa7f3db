package canon

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/argument"
	"github.com/milvus-io/pilot/types"
)

// CompletionProvider supplies missing argument text for an incomplete
// request, usually by asking the user. It fills req.Args and returns. It
// must give up when ctx is done.
type CompletionProvider interface {
	Complete(ctx context.Context, req *Request) error
}

// CompletionFunc adapts a function to CompletionProvider.
type CompletionFunc func(ctx context.Context, req *Request) error

// Complete implements CompletionProvider.
func (f CompletionFunc) Complete(ctx context.Context, req *Request) error {
	return f(ctx, req)
}

// Recorder receives every request the dispatcher handles.
type Recorder interface {
	Record(req *Request)
}

// Dispatcher checks requests and runs the commands of a catalog.
type Dispatcher struct {
	catalog  *Catalog
	provider CompletionProvider
	recorder Recorder
	logger   *zap.Logger
}

// DispatcherOption is the option function for NewDispatcher.
type DispatcherOption func(*Dispatcher)

// WithCompletionProvider sets the provider asked for missing arguments.
func WithCompletionProvider(provider CompletionProvider) DispatcherOption {
	return func(d *Dispatcher) {
		d.provider = provider
	}
}

// WithRecorder sets where handled requests are recorded.
func WithRecorder(recorder Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		d.recorder = recorder
	}
}

// WithDispatcherLogger sets the dispatcher logger.
func WithDispatcherLogger(logger *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher returns a dispatcher over catalog.
func NewDispatcher(catalog *Catalog, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		catalog: catalog,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Catalog returns the catalog commands are looked up in.
func (d *Dispatcher) Catalog() *Catalog { return d.catalog }

// ExecLine parses line, binds it to the command it names and executes it.
func (d *Dispatcher) ExecLine(ctx context.Context, line string) (*Request, error) {
	args := argument.Tokenize(line)
	cmd, n := d.catalog.Resolve(args)
	if cmd == nil {
		return nil, errors.Wrapf(ErrUnknownCommand, "%q", strings.TrimSpace(line))
	}

	binding := Bind(cmd, args[n:])
	if len(binding.Unused) > 0 {
		req := d.newRequest(cmd, binding.Args(), line)
		unused := lo.Map(binding.Unused, func(arg argument.Arg, _ int) string { return arg.String() })
		err := errors.Wrapf(ErrRejected, "%s: unexpected arguments:%s", cmd.name, strings.Join(unused, ""))
		req.DoneWithError(err)
		return req, err
	}
	return d.Exec(ctx, cmd, binding.Args(), line)
}

// ExecName executes the command registered as name.
func (d *Dispatcher) ExecName(ctx context.Context, name string, args Args) (*Request, error) {
	cmd, ok := d.catalog.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCommand, "%q", name)
	}
	return d.Exec(ctx, cmd, args, "")
}

// Exec creates a request for cmd and runs it through Resume.
func (d *Dispatcher) Exec(ctx context.Context, cmd *Command, args Args, typed string) (*Request, error) {
	req := d.newRequest(cmd, args, typed)
	return req, d.Resume(ctx, req)
}

func (d *Dispatcher) newRequest(cmd *Command, args Args, typed string) *Request {
	req := NewRequest(cmd, args, typed)
	if d.recorder != nil {
		d.recorder.Record(req)
	}
	return req
}

// Resume evaluates the status of req. An erroneous request is rejected, an
// incomplete one is handed to the completion provider and evaluated again,
// a valid one is executed.
func (d *Dispatcher) Resume(ctx context.Context, req *Request) error {
	status := RequestStatus(req.command, req.Args)
	d.logger.Debug("request status", zap.Int64("request", req.id), zap.String("command", req.command.name), zap.Stringer("status", status))

	if status == types.StatusIncomplete {
		if err := d.complete(ctx, req); err != nil {
			return err
		}
		status = RequestStatus(req.command, req.Args)
	}

	switch status {
	case types.StatusError:
		err := errors.Wrapf(ErrRejected, "%s: %s", req.command.name, invalidParams(req))
		d.logger.Warn("request rejected", zap.Int64("request", req.id), zap.Error(err))
		req.DoneWithError(err)
		return err
	case types.StatusIncomplete:
		err := errors.Wrapf(ErrIncomplete, "%s: missing %s", req.command.name, invalidParams(req))
		req.DoneWithError(err)
		return err
	default:
		return d.execute(ctx, req)
	}
}

// complete runs the completion provider, one cycle per request at a time.
func (d *Dispatcher) complete(ctx context.Context, req *Request) error {
	if d.provider == nil {
		return nil
	}
	if !req.completing.CompareAndSwap(false, true) {
		return ErrCompletionInFlight
	}
	defer req.completing.Store(false)

	if err := d.provider.Complete(ctx, req); err != nil {
		err = errors.Wrapf(err, "complete %s", req.command.name)
		req.DoneWithError(err)
		return err
	}
	if err := ctx.Err(); err != nil {
		req.DoneWithError(err)
		return err
	}
	return nil
}

func (d *Dispatcher) execute(ctx context.Context, req *Request) (err error) {
	values, err := Convert(req.command, req.Args)
	if err != nil {
		req.DoneWithError(err)
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("command %s panicked: %v", req.command.name, r)
		}
		if err != nil {
			d.logger.Warn("command failed", zap.Int64("request", req.id), zap.String("command", req.command.name), zap.Error(err))
			req.DoneWithError(err)
			return
		}
		if !req.IsAsync() {
			req.Done()
		}
	}()

	return req.command.exec(ctx, req, values)
}

// invalidParams describes the parameters that keep req from being valid.
func invalidParams(req *Request) string {
	var parts []string
	for _, report := range Report(req.command, req.Args) {
		if report.Status == types.StatusValid {
			continue
		}
		part := report.Param.name
		if report.Conversion != nil && report.Conversion.Message != "" {
			part = fmt.Sprintf("%s (%s)", part, report.Conversion.Message)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}
