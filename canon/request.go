package canon

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
)

var requestID atomic.Int64

// Request is one invocation of a command.
type Request struct {
	id      int64
	command *Command
	// Args is the text supplied per parameter. Completion providers fill
	// in what is missing.
	Args  Args
	typed string

	start time.Time

	mu        sync.Mutex
	end       time.Time
	outputs   []string
	async     bool
	completed bool
	failed    bool
	err       error
	listeners []func(*Request)

	completing atomic.Bool
}

// NewRequest returns a request for cmd. typed is the command line the
// request was parsed from, if any.
func NewRequest(cmd *Command, args Args, typed string) *Request {
	if args == nil {
		args = Args{}
	}
	return &Request{
		id:      requestID.Inc(),
		command: cmd,
		Args:    args,
		typed:   typed,
		start:   time.Now(),
	}
}

// ID returns the process wide request id.
func (r *Request) ID() int64 { return r.id }

// Command returns the requested command.
func (r *Request) Command() *Command { return r.command }

// Typed returns the command line, empty for programmatic requests.
func (r *Request) Typed() string { return r.typed }

// Start returns when the request was created.
func (r *Request) Start() time.Time { return r.start }

// End returns when the request completed, zero while running.
func (r *Request) End() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.end
}

// Duration returns how long the request took, zero while running.
func (r *Request) Duration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.end.IsZero() {
		return 0
	}
	return r.end.Sub(r.start)
}

// OnOutput registers fn to be called on every output and on completion.
func (r *Request) OnOutput(fn func(*Request)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Output appends content to the request output.
func (r *Request) Output(content any) *Request {
	r.mu.Lock()
	r.outputs = append(r.outputs, render(content))
	r.mu.Unlock()

	r.notify()
	return r
}

// Outputs returns a copy of everything output so far.
func (r *Request) Outputs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]string, len(r.outputs))
	copy(result, r.outputs)
	return result
}

// Async declares the command calls Done itself after Exec returns.
func (r *Request) Async() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.async = true
}

// IsAsync reports whether Async was called.
func (r *Request) IsAsync() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.async
}

// Done completes the request, outputting content first if given. Only the
// first call completes.
func (r *Request) Done(content ...any) {
	for _, c := range content {
		if c != nil {
			r.Output(c)
		}
	}

	r.mu.Lock()
	if r.completed {
		r.mu.Unlock()
		return
	}
	r.completed = true
	r.end = time.Now()
	r.mu.Unlock()

	r.notify()
}

// DoneWithError completes the request as failed.
func (r *Request) DoneWithError(err error) {
	r.mu.Lock()
	r.failed = true
	if r.err == nil {
		r.err = err
	}
	r.mu.Unlock()

	if err != nil {
		r.Done(err)
		return
	}
	r.Done()
}

// Completed reports whether Done was called.
func (r *Request) Completed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

// Failed reports whether the request completed with an error.
func (r *Request) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// Err returns the error the request failed with.
func (r *Request) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Request) notify() {
	r.mu.Lock()
	listeners := make([]func(*Request), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(r)
	}
}

func render(content any) string {
	switch v := content.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
