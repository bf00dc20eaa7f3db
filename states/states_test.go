package states

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/pilot/argument"
	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/common"
	"github.com/milvus-io/pilot/configs"
	"github.com/milvus-io/pilot/framework"
	"github.com/milvus-io/pilot/types"
)

type testApp struct {
	t   *testing.T
	out *bytes.Buffer
	app *ApplicationState
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	config, err := configs.NewConfig(t.TempDir())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app, err := Start(config, WithOutput(out))
	require.NoError(t, err)
	return &testApp{t: t, out: out, app: app}
}

// run processes line and returns the printed output.
func (a *testApp) run(line string) (string, framework.State, error) {
	a.out.Reset()
	next, err := a.app.Process(line)
	return a.out.String(), next, err
}

func (a *testApp) mustRun(line string) string {
	a.t.Helper()
	out, next, err := a.run(line)
	require.NoError(a.t, err, line)
	require.Equal(a.t, framework.State(a.app), next)
	return out
}

func TestHelpCommand(t *testing.T) {
	a := newTestApp(t)

	t.Run("list", func(t *testing.T) {
		out := a.mustRun("help")
		for _, name := range []string{"echo", "exit", "help", "history", "set config", "show config", "status", "step", "version"} {
			assert.Contains(t, out, name)
		}
	})

	t.Run("describe", func(t *testing.T) {
		out := a.mustRun("help echo")
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "echo --message <text> [--times <number>] [--upper]")
		assert.Contains(t, out, "--times")
	})

	t.Run("prefix", func(t *testing.T) {
		assert.Contains(t, a.mustRun("help show"), "show config")
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := a.run("help bogus")
		assert.True(t, errors.Is(err, canon.ErrUnknownCommand))
		assert.True(t, errors.Is(err, framework.ErrCommandFailed))
	})
}

func TestEchoCommand(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, "hello world\nhello world\n", a.mustRun("echo hello world --times 2"))
	assert.Equal(t, "HI\n", a.mustRun("echo --upper hi"))
	assert.Equal(t, "a  b\n", a.mustRun(`echo "a  b"`))

	_, _, err := a.run("echo")
	assert.True(t, errors.Is(err, canon.ErrIncomplete))

	_, _, err = a.run("echo hi --times 0")
	assert.True(t, errors.Is(err, canon.ErrRejected))
}

func TestStepCommand(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, "4 5\n", a.mustRun("step number 3 --times 2"))
	assert.Equal(t, "2\n", a.mustRun("step number 3 --down"))
	assert.Equal(t, "false\n", a.mustRun("step boolean true"))

	_, _, err := a.run("step text abc")
	assert.Error(t, err)

	_, _, err = a.run("step unknown 1")
	assert.True(t, errors.Is(err, canon.ErrRejected))
}

func TestHistoryCommand(t *testing.T) {
	a := newTestApp(t)
	a.mustRun("echo a")
	a.mustRun("echo b")
	a.mustRun("version")

	out := a.mustRun("history --prefix echo --format plain")
	assert.Contains(t, out, "echo a")
	assert.Contains(t, out, "echo b")
	assert.NotContains(t, out, "version")

	out = a.mustRun("history --prefix echo --limit 1 --format plain")
	assert.NotContains(t, out, "echo a")
	assert.Contains(t, out, "echo b")
	assert.Contains(t, out, "done")

	assert.Len(t, a.app.History().Requests(""), 5)
}

func TestListResultSets(t *testing.T) {
	a := newTestApp(t)
	a.mustRun("echo a")

	rs, err := a.app.HistoryCommand(context.Background(), &HistoryParam{Limit: 20, Format: "json"})
	require.NoError(t, err)
	requests, ok := rs.Entities().([]*canon.Request)
	require.True(t, ok)
	require.Len(t, requests, 1)
	assert.Equal(t, "echo a", requests[0].Typed())
	assert.JSONEq(t, fmt.Sprintf(`[{"ID":%d,"Command":"echo a","Status":"done","Duration":%q}]`,
		requests[0].ID(), requests[0].Duration().Round(time.Microsecond).String()), rs.String())

	out := a.mustRun("help show --format json")
	assert.JSONEq(t, `[{"Command":"show config","Description":"show pilot config items"}]`, out)
}

func TestVersionCommand(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, "Pilot Version "+common.Version.String()+"\n", a.mustRun("version"))
}

func TestStatusCommand(t *testing.T) {
	a := newTestApp(t)

	out := a.mustRun("status echo --times x")
	assert.Contains(t, out, "message")
	assert.Contains(t, out, "INCOMPLETE")
	assert.Contains(t, out, "echo: ERROR")

	out = a.mustRun(`status echo "hi there"`)
	assert.Contains(t, out, "echo: VALID")

	_, _, err := a.run("status nothing")
	assert.True(t, errors.Is(err, canon.ErrUnknownCommand))
}

func TestConfigCommands(t *testing.T) {
	a := newTestApp(t)

	a.mustRun("set config --key OutputFormat --value json --source file")
	assert.Contains(t, a.mustRun("show config --format plain"), "OutputFormat\tjson")

	_, _, err := a.run("set config --key OutputFormat --value bogus --source file")
	assert.Error(t, err)

	_, _, err = a.run("set config --key Bogus --value x")
	assert.True(t, errors.Is(err, canon.ErrRejected))
}

func TestExitCommand(t *testing.T) {
	a := newTestApp(t)

	_, next, err := a.run("exit")
	assert.ErrorIs(t, err, common.ExitErr)
	assert.True(t, next.IsEnding())
}

func TestSuggestions(t *testing.T) {
	a := newTestApp(t)

	assert.Contains(t, a.app.Suggestions("ec"), "echo")
	assert.Contains(t, a.app.Suggestions("step "), "number")
	assert.Contains(t, a.app.Suggestions("history --f"), "--format")
}

func TestTypeNameType(t *testing.T) {
	a := newTestApp(t)

	typ, err := a.app.Registry().Lookup(TypeNameType)
	require.NoError(t, err)

	c := typ.Parse(argument.NewText("num"))
	assert.Equal(t, types.StatusIncomplete, c.Status)
	assert.Equal(t, []string{"number"}, c.PredictionNames())

	c = typ.Parse(argument.NewText(TypeNameType))
	assert.True(t, c.IsValid())
}
