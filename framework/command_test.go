package framework

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/types"
)

type greetParam struct {
	ParamBase `use:"say hello" desc:"greet someone"`
	Name      string   `name:"name" desc:"who to greet"`
	Times     int      `name:"times" default:"1" min:"1" max:"3"`
	Loud      bool     `name:"loud"`
	Mood      string   `name:"mood" default:"happy" options:"happy,grumpy"`
	Tags      []string `name:"tags" default:""`
}

type testState struct {
	*CmdState
	greeted []greetParam
}

func (s *testState) GreetCommand(ctx context.Context, p *greetParam, req *canon.Request) error {
	if p.Name == "nobody" {
		return errors.New("nobody to greet")
	}
	s.greeted = append(s.greeted, *p)
	req.Output("hello " + p.Name)
	return nil
}

type listParam struct {
	ParamBase `use:"list" desc:"list greetings"`
}

func (s *testState) ListCommand(ctx context.Context, _ *listParam) (*PresetResultSet, error) {
	return NewPresetResultSet(&greetings{names: []string{"a", "b"}}, FormatPlain), nil
}

// NotACommand is skipped for its signature.
func (s *testState) NotACommand(name string) {}

type greetings struct {
	names []string
}

func (g *greetings) PrintAs(format Format) string {
	t := Table{Header: []string{"Name"}}
	for _, name := range g.names {
		t.Rows = append(t.Rows, []any{name})
	}
	return PrintTable(t, format)
}

func (g *greetings) Entities() any { return g.names }

func newTestState(t *testing.T) (*testState, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	s := &testState{CmdState: NewCmdState("Test", types.NewBasicRegistry(), WithOutput(out))}
	require.NoError(t, s.UpdateState(s, nil))
	return s, out
}

func TestParseFunctionCommands(t *testing.T) {
	s, _ := newTestState(t)

	assert.Equal(t, []string{"list", "say hello"}, s.Catalog().Names())

	cmd, ok := s.Catalog().Get("say hello")
	require.True(t, ok)
	assert.Equal(t, "greet someone", cmd.Description())

	times, ok := cmd.Param("times")
	require.True(t, ok)
	number, ok := times.Type().(*types.NumberType)
	require.True(t, ok)
	min, max := number.Bounds()
	assert.Equal(t, 1, *min)
	assert.Equal(t, 3, *max)

	mood, _ := cmd.Param("mood")
	assert.Equal(t, types.NameSelection, mood.Type().Name())
	tags, _ := cmd.Param("tags")
	assert.True(t, tags.IsOptional())
	name, _ := cmd.Param("name")
	assert.True(t, name.IsDataRequired())

	assert.Equal(t, "say hello --name <text> [--times <number>] [--loud] [--mood <selection>] [--tags <array>]", Use(cmd))
	usage := FlagUsage(cmd)
	assert.Contains(t, usage, "--name")
	assert.Contains(t, usage, "(required)")
	assert.Contains(t, usage, "-l, --loud")
}

func TestParseFunctionCommandsBadDefault(t *testing.T) {
	type badParam struct {
		ParamBase `use:"bad"`
		Count     int `name:"count" default:"many"`
	}
	_, err := paramSpecs(reflect.TypeOf(badParam{}), types.NewBasicRegistry())
	assert.Error(t, err)
}

func TestParseFunctionCommandsFlagDefaultIgnored(t *testing.T) {
	type flagParam struct {
		ParamBase `use:"flags"`
		Quiet     bool `name:"quiet" type:"bool" default:"true"`
		Force     bool `name:"force" default:"true"`
	}
	registry := types.NewBasicRegistry()
	specs, err := paramSpecs(reflect.TypeOf(flagParam{}), registry)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	for _, spec := range specs {
		assert.Nil(t, spec.Default, spec.Name)
	}

	cmd, err := canon.NewCommand(canon.CommandSpec{Name: "flags", Params: specs}, registry)
	require.NoError(t, err)
	quiet, ok := cmd.Param("quiet")
	require.True(t, ok)
	assert.True(t, quiet.IsBoolean())
}

func TestProcess(t *testing.T) {
	s, out := newTestState(t)

	next, err := s.Process("say hello world --times 2 --loud --mood grumpy")
	require.NoError(t, err)
	assert.Equal(t, State(s), next)
	assert.Equal(t, "hello world\n", out.String())
	require.Len(t, s.greeted, 1)
	assert.Equal(t, greetParam{Name: "world", Times: 2, Loud: true, Mood: "grumpy"}, s.greeted[0])

	out.Reset()
	_, err = s.Process("list")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out.String())

	out.Reset()
	_, err = s.Process("say hello nobody")
	assert.True(t, errors.Is(err, ErrCommandFailed))
	assert.Contains(t, out.String(), "nobody to greet")

	_, err = s.Process("whatever")
	assert.True(t, errors.Is(err, canon.ErrUnknownCommand))
	assert.False(t, errors.Is(err, ErrCommandFailed))

	next, err = s.Process("   ")
	assert.NoError(t, err)
	assert.Equal(t, State(s), next)
}

func TestPrintTable(t *testing.T) {
	tb := Table{Header: []string{"Key", "Value"}, Rows: [][]any{{"a", 1}, {"b", 2}}}

	assert.Equal(t, "a\t1\nb\t2\n", PrintTable(tb, FormatPlain))
	assert.Equal(t, "Key: a\nValue: 1\n\nKey: b\nValue: 2\n\n", PrintTable(tb, FormatLine))
	assert.JSONEq(t, `[{"Key":"a","Value":1},{"Key":"b","Value":2}]`, PrintTable(tb, FormatJSON))
	assert.Contains(t, PrintTable(tb, FormatDefault), "KEY")
}

func TestNameFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, NameFormat("json"))
	assert.Equal(t, FormatDefault, NameFormat("bogus"))
	assert.True(t, IsFormatName("line"))
	assert.False(t, IsFormatName("bogus"))
}
