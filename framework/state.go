package framework

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/common"
	"github.com/milvus-io/pilot/states/autocomplete"
	"github.com/milvus-io/pilot/types"
)

// ErrCommandFailed marks errors of requests whose failure was already
// printed as request output.
var ErrCommandFailed = errors.New("command failed")

// State is the interface for application state.
type State interface {
	Ctx() (context.Context, context.CancelFunc)
	Label() string
	Process(line string) (State, error)
	Close()
	SetNext(state State)
	NextState() State
	Suggestions(input string) map[string]string
	SetupCommands()
	IsEnding() bool
	SetCompletionProvider(provider canon.CompletionProvider)
}

// SetupFunc function type for setup commands.
type SetupFunc func()

// CmdState serves the commands of a catalog as State.
type CmdState struct {
	label      string
	registry   *types.Registry
	catalog    *canon.Catalog
	dispatcher *canon.Dispatcher
	provider   canon.CompletionProvider
	recorder   canon.Recorder
	nextState  State
	signal     <-chan os.Signal
	output     io.Writer
	logger     *zap.Logger
	self       State

	SetupFn func()
}

// CmdStateOption is the option function for NewCmdState.
type CmdStateOption func(*CmdState)

// WithOutput sets where request output is written, stdout by default.
func WithOutput(w io.Writer) CmdStateOption {
	return func(s *CmdState) {
		s.output = w
	}
}

// WithRecorder sets the request recorder, usually the history.
func WithRecorder(recorder canon.Recorder) CmdStateOption {
	return func(s *CmdState) {
		s.recorder = recorder
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) CmdStateOption {
	return func(s *CmdState) {
		s.logger = logger
	}
}

// NewCmdState returns a CmdState with provided label resolving types with
// registry.
func NewCmdState(label string, registry *types.Registry, opts ...CmdStateOption) *CmdState {
	s := &CmdState{
		label:    label,
		registry: registry,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

func (s *CmdState) reset() {
	s.catalog = canon.NewCatalog(s.registry, canon.WithLogger(s.logger))
	s.rebuildDispatcher()
}

func (s *CmdState) rebuildDispatcher() {
	opts := []canon.DispatcherOption{canon.WithDispatcherLogger(s.logger)}
	if s.provider != nil {
		opts = append(opts, canon.WithCompletionProvider(s.provider))
	}
	if s.recorder != nil {
		opts = append(opts, canon.WithRecorder(s.recorder))
	}
	s.dispatcher = canon.NewDispatcher(s.catalog, opts...)
}

// SetLabel updates label value.
func (s *CmdState) SetLabel(label string) {
	s.label = label
}

// Catalog returns the commands of the state.
func (s *CmdState) Catalog() *canon.Catalog { return s.catalog }

// Registry returns the type registry.
func (s *CmdState) Registry() *types.Registry { return s.registry }

// Logger returns the state logger.
func (s *CmdState) Logger() *zap.Logger { return s.logger }

// SetCompletionProvider sets who is asked for missing arguments.
func (s *CmdState) SetCompletionProvider(provider canon.CompletionProvider) {
	s.provider = provider
	s.rebuildDispatcher()
}

// UpdateState rebuilds the catalog from the %Command methods of state.
func (s *CmdState) UpdateState(state any, fn SetupFunc) error {
	s.reset()
	if err := s.MergeFunctionCommands(state); err != nil {
		return err
	}
	if self, ok := state.(State); ok {
		s.self = self
	}
	s.SetupFn = fn
	return nil
}

// Ctx returns context which bind to sigint handler.
func (s *CmdState) Ctx() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		select {
		case <-s.signal:
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// SetupCommands perform command setup & reset.
func (s *CmdState) SetupCommands() {
	if s.SetupFn != nil {
		s.SetupFn()
	}
}

// MergeFunctionCommands parses all member methods for provided state and
// adds them to the catalog.
func (s *CmdState) MergeFunctionCommands(state any) error {
	specs, err := parseFunctionCommands(state, s.registry)
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if _, err := s.catalog.Add(spec); err != nil {
			return err
		}
	}
	return nil
}

// Label returns the display label for current cli.
func (s *CmdState) Label() string {
	return s.label
}

func (s *CmdState) Suggestions(input string) map[string]string {
	return autocomplete.SuggestInput(input, s.catalog)
}

// Process is the main entry for processing command.
func (s *CmdState) Process(line string) (State, error) {
	if strings.TrimSpace(line) == "" {
		return s.current(), nil
	}

	signal.Reset(syscall.SIGINT)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT)
	s.signal = c
	defer signal.Reset(syscall.SIGINT)

	ctx, cancel := s.Ctx()
	defer cancel()

	s.logger.Info("begin to process command", zap.String("line", line))
	req, err := s.dispatcher.ExecLine(ctx, line)
	if req == nil {
		return s.current(), err
	}
	s.print(req)
	if err != nil {
		// already printed as request output
		return s.current(), errors.Mark(err, ErrCommandFailed)
	}

	if s.nextState != nil {
		nextState := s.nextState
		s.nextState = nil
		if nextState.IsEnding() {
			return nextState, common.ExitErr
		}
		return nextState, nil
	}
	return s.current(), nil
}

// current is the state handed back after processing, the state whose
// commands were merged when there is one.
func (s *CmdState) current() State {
	if s.self != nil {
		return s.self
	}
	return s
}

func (s *CmdState) print(req *canon.Request) {
	w := s.output
	if w == nil {
		w = os.Stdout
	}
	for _, out := range req.Outputs() {
		fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	}
}

// SetNext simple method to set next state.
func (s *CmdState) SetNext(state State) {
	s.nextState = state
}

func (s *CmdState) NextState() State {
	return s.nextState
}

// Close empty method to implement State.
func (s *CmdState) Close() {}

// Check state is ending state.
func (s *CmdState) IsEnding() bool { return false }
