package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/pilot/argument"
	"github.com/milvus-io/pilot/types"
)

func bindLine(t *testing.T, cmd *Command, line string) *Binding {
	t.Helper()
	return Bind(cmd, argument.Tokenize(line))
}

func TestBindPositional(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{Name: "send", Params: []ParamSpec{
		{Name: "count", Type: types.Spec(types.NameNumber)},
		{Name: "message", Type: types.Spec(types.NameText)},
	}})

	b := bindLine(t, cmd, "3 hello there  world")
	assert.Empty(t, b.Unused)
	assert.Equal(t, Args{"count": "3", "message": "hello there  world"}, b.Args())
	assert.Equal(t, argument.KindMerged, b.Assignments["message"].Kind())
	assert.Equal(t, "send/message", b.Assignments["message"].Assignment())
	assert.Equal(t, "send/count", b.Assignments["count"].Assignment())
}

func TestBindNamed(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{Name: "send", Params: []ParamSpec{
		{Name: "verbose", Type: types.Spec(types.NameBoolean)},
		{Name: "version", Type: types.Spec(types.NameText), Default: Optional()},
		{Name: "count", Type: types.Spec(types.NameNumber)},
	}})

	t.Run("switch with value", func(t *testing.T) {
		b := bindLine(t, cmd, "--vers 1.2 --count 4")
		assert.Empty(t, b.Unused)
		assert.Equal(t, Args{"version": "1.2", "count": "4"}, b.Args())
		named := b.Assignments["version"]
		require.Equal(t, argument.KindNamed, named.Kind())
		assert.Equal(t, "--vers 1.2", named.String())
	})

	t.Run("equals form", func(t *testing.T) {
		b := bindLine(t, cmd, "--count=4 --verb")
		assert.Empty(t, b.Unused)
		assert.Equal(t, Args{"count": "4", "verbose": "true"}, b.Args())
		count := b.Assignments["count"]
		assert.Equal(t, "--count=4", count.String())
		// offsets are those of the value
		assert.Equal(t, len("--count="), count.Start())
		assert.Equal(t, len("--count=4"), count.End())
		assert.Equal(t, argument.KindBooleanNamed, b.Assignments["verbose"].Kind())
	})

	t.Run("switch then positional", func(t *testing.T) {
		b := bindLine(t, cmd, "--count 4 abc")
		assert.Empty(t, b.Unused)
		assert.Equal(t, Args{"count": "4", "version": "abc"}, b.Args())
	})

	t.Run("switch waiting for value", func(t *testing.T) {
		b := bindLine(t, cmd, "--count")
		assert.Equal(t, Args{"count": ""}, b.Args())
		assert.Equal(t, types.StatusIncomplete, RequestStatus(cmd, b.Args()))
	})

	t.Run("repeated switch is unused", func(t *testing.T) {
		b := bindLine(t, cmd, "--count 1 --count 2")
		require.Len(t, b.Unused, 2)
		assert.Equal(t, "--count", b.Unused[0].Text())
	})

	t.Run("too many positional", func(t *testing.T) {
		b := bindLine(t, cmd, "1 2 3")
		assert.Equal(t, Args{"version": "1", "count": "2"}, b.Args())
		require.Len(t, b.Unused, 1)
		assert.Equal(t, "3", b.Unused[0].Text())
	})

	t.Run("quoted switch is text", func(t *testing.T) {
		b := bindLine(t, cmd, `"--count" 5`)
		assert.Equal(t, Args{"version": "--count", "count": "5"}, b.Args())
	})
}

func TestBindArray(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{Name: "sum", Params: []ParamSpec{
		{Name: "label", Type: types.Spec(types.NameText)},
		{Name: "values", Type: types.ArraySpec(types.Spec(types.NameNumber))},
	}})

	b := bindLine(t, cmd, "total 1 2 3")
	assert.Empty(t, b.Unused)
	values := b.Assignments["values"]
	require.Equal(t, argument.KindArray, values.Kind())
	assert.Equal(t, 3, values.(*argument.ArrayArgument).Len())
	assert.Equal(t, types.StatusValid, RequestStatus(cmd, b.Args()))

	converted, err := Convert(cmd, b.Args())
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, converted.Slice("values"))
}

func TestBindingParamAt(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{Name: "x", Params: []ParamSpec{
		{Name: "op", Type: types.SelectionSpec([]string{"add", "remove"})},
		{Name: "count", Type: types.Spec(types.NameNumber)},
	}})

	b := bindLine(t, cmd, "ad --count 3")
	param, arg, ok := b.ParamAt(1)
	require.True(t, ok)
	assert.Equal(t, "op", param.Name())
	assert.Equal(t, "ad", arg.Text())

	param, _, ok = b.ParamAt(12)
	require.True(t, ok)
	assert.Equal(t, "count", param.Name())
}
