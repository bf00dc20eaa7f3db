package canon

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestRequestLifecycle(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{Name: "x"})
	req := NewRequest(cmd, nil, "x")
	other := NewRequest(cmd, nil, "x")
	assert.Greater(t, other.ID(), req.ID())
	assert.NotNil(t, req.Args)

	var events int
	req.OnOutput(func(*Request) { events++ })

	req.Output("one").Output(2)
	assert.Equal(t, []string{"one", "2"}, req.Outputs())
	assert.False(t, req.Completed())
	assert.Zero(t, req.Duration())

	req.Done("three")
	assert.True(t, req.Completed())
	assert.False(t, req.Failed())
	assert.False(t, req.End().IsZero())
	assert.Equal(t, []string{"one", "2", "three"}, req.Outputs())
	assert.Equal(t, 4, events)

	req.Done()
	assert.Equal(t, 4, events)
}

func TestRequestDoneWithError(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{Name: "x"})
	req := NewRequest(cmd, Args{}, "")
	boom := errors.New("boom")

	req.DoneWithError(boom)
	assert.True(t, req.Completed())
	assert.True(t, req.Failed())
	assert.Equal(t, boom, req.Err())
	assert.Equal(t, []string{"boom"}, req.Outputs())
}
