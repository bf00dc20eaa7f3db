package canon

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/pilot/types"
)

func noop(context.Context, *Request, Values) error { return nil }

func mustCommand(t *testing.T, spec CommandSpec) *Command {
	t.Helper()
	if spec.Exec == nil {
		spec.Exec = noop
	}
	cmd, err := NewCommand(spec, types.NewBasicRegistry())
	require.NoError(t, err)
	return cmd
}

func TestUniquePrefix(t *testing.T) {
	cases := []struct {
		name     string
		siblings []string
		expect   string
	}{
		{"verbose", []string{"verbose", "version"}, "verb"},
		{"version", []string{"verbose", "version"}, "vers"},
		{"version", []string{"version", "verbose"}, "vers"},
		{"name", []string{"name", "count"}, "n"},
		{"add", []string{"add", "addall"}, "add"},
		{"addall", []string{"add", "addall"}, "adda"},
		{"alone", []string{"alone"}, "a"},
		{"über", []string{"über", "übel"}, "über"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, uniquePrefix(tc.name, tc.siblings))
		})
	}
}

func TestUniquePrefixOrderIndependent(t *testing.T) {
	names := []string{"verbose", "version", "value", "count", "color"}
	reversed := []string{"color", "count", "value", "version", "verbose"}
	for _, name := range names {
		assert.Equal(t, uniquePrefix(name, names), uniquePrefix(name, reversed), name)
	}
}

func TestNewCommandParams(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{
		Name: "show  things",
		Params: []ParamSpec{
			{Name: "verbose", Type: types.Spec(types.NameBoolean)},
			{Name: "version", Type: types.Spec(types.NameText), Description: "which one"},
			{Name: "limit", Type: types.NumberSpec(1, 100), Default: Default(10)},
			{Name: "filter", Type: types.Spec(types.NameText), Default: Optional()},
		},
	})

	assert.Equal(t, "show things", cmd.Name())
	assert.Equal(t, []string{"show", "things"}, cmd.Words())
	assert.Equal(t, "(No description)", cmd.Description())
	require.Len(t, cmd.Params(), 4)

	verbose, ok := cmd.Param("verbose")
	require.True(t, ok)
	assert.Equal(t, "verb", verbose.UniquePrefix())
	assert.True(t, verbose.IsBoolean())
	assert.False(t, verbose.IsDataRequired())
	value, ok := verbose.Default()
	assert.True(t, ok)
	assert.Equal(t, false, value)

	version, _ := cmd.Param("version")
	assert.Equal(t, "vers", version.UniquePrefix())
	assert.True(t, version.IsDataRequired())
	assert.Equal(t, "show things/version", version.ID())

	filter, _ := cmd.Param("filter")
	assert.True(t, filter.IsOptional())
	limit, _ := cmd.Param("limit")
	assert.False(t, limit.IsOptional())
	assert.False(t, limit.IsDataRequired())
}

func TestIsNamedParam(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{
		Name: "cmd",
		Params: []ParamSpec{
			{Name: "verbose", Type: types.Spec(types.NameBoolean)},
			{Name: "version", Type: types.Spec(types.NameText)},
		},
	})
	verbose, _ := cmd.Param("verbose")

	assert.True(t, verbose.IsNamedParam("--verbose"))
	assert.True(t, verbose.IsNamedParam("--verb"))
	assert.True(t, verbose.IsNamedParam("-verbo"))
	assert.False(t, verbose.IsNamedParam("--ver"))
	assert.False(t, verbose.IsNamedParam("--verbosely"))
	assert.False(t, verbose.IsNamedParam("verbose"))
	assert.False(t, verbose.IsNamedParam("--"))

	param, ok := cmd.NamedParam("--vers")
	require.True(t, ok)
	assert.Equal(t, "version", param.Name())
}

func TestCommandConfigErrors(t *testing.T) {
	registry := types.NewBasicRegistry()
	cases := map[string]CommandSpec{
		"no name": {Exec: noop},
		"no exec": {Name: "x"},
		"duplicate params": {Name: "x", Exec: noop, Params: []ParamSpec{
			{Name: "a", Type: types.Spec(types.NameText)},
			{Name: "a", Type: types.Spec(types.NameNumber)},
		}},
		"param without name": {Name: "x", Exec: noop, Params: []ParamSpec{
			{Type: types.Spec(types.NameText)},
		}},
		"unknown type": {Name: "x", Exec: noop, Params: []ParamSpec{
			{Name: "a", Type: types.Spec("color")},
		}},
		"boolean default": {Name: "x", Exec: noop, Params: []ParamSpec{
			{Name: "a", Type: types.Spec(types.NameBoolean), Default: Default(true)},
		}},
		"boolean optional": {Name: "x", Exec: noop, Params: []ParamSpec{
			{Name: "a", Type: types.Spec(types.NameBool), Default: Optional()},
		}},
		"selection without data": {Name: "x", Exec: noop, Params: []ParamSpec{
			{Name: "a", Type: types.Spec(types.NameSelection)},
		}},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewCommand(spec, registry)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
		})
	}
}

func TestBadDefaultIsNotFatal(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{
		Name: "x",
		Params: []ParamSpec{
			{Name: "n", Type: types.NumberSpec(0, 10), Default: Default(50)},
		},
	})
	value, ok := cmd.params[0].Default()
	assert.True(t, ok)
	assert.Equal(t, 50, value)
}
