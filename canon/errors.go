package canon

import (
	"github.com/cockroachdb/errors"

	"github.com/milvus-io/pilot/types"
)

var (
	// ErrConfiguration marks broken command declarations. It is the same
	// sentinel as types.ErrConfiguration so one errors.Is check covers both.
	ErrConfiguration = types.ErrConfiguration

	// ErrUnknownCommand is returned when no command matches the input.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrRejected is returned when the arguments of a request can't be made valid.
	ErrRejected = errors.New("request rejected")
	// ErrIncomplete is returned when required arguments are still missing
	// after completion, or there is no completion provider.
	ErrIncomplete = errors.New("request incomplete")
	// ErrCompletionInFlight is returned when a request is resumed while its
	// completion provider is still running.
	ErrCompletionInFlight = errors.New("completion already in flight")
)

func configErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}
