package autocomplete

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/types"
)

func noop(context.Context, *canon.Request, canon.Values) error { return nil }

func makeCatalog(t *testing.T) *canon.Catalog {
	t.Helper()
	catalog := canon.NewCatalog(types.NewBasicRegistry())
	specs := []canon.CommandSpec{
		{
			Name:        "show history",
			Description: "list history",
			Params: []canon.ParamSpec{
				{Name: "limit", Type: types.Spec(types.NameNumber), Description: "max entries", Default: canon.Default(10)},
				{Name: "format", Type: types.SelectionSpec([]string{"default", "json", "table"}), Default: canon.Default("default")},
				{Name: "verbose", Type: types.Spec(types.NameBoolean)},
				{Name: "prefix", Type: types.Spec(types.NameText), Default: canon.Optional()},
			},
			Exec: noop,
		},
		{Name: "show version", Description: "print version", Exec: noop},
		{
			Name: "step",
			Params: []canon.ParamSpec{
				{Name: "type", Type: types.SelectionSpec([]string{"number", "text"})},
				{Name: "value", Type: types.Spec(types.NameText)},
			},
			Exec: noop,
		},
		{Name: "secret", Hidden: true, Exec: noop},
	}
	for _, spec := range specs {
		_, err := catalog.Add(spec)
		require.NoError(t, err)
	}
	return catalog
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestCommandSuggestions(t *testing.T) {
	catalog := makeCatalog(t)

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SuggestInput("", catalog))
	})

	t.Run("first word", func(t *testing.T) {
		assert.Equal(t, []string{"show", "step"}, sortedKeys(SuggestInput("s", catalog)))
	})

	t.Run("sub commands", func(t *testing.T) {
		result := SuggestInput("show ", catalog)
		assert.Equal(t, []string{"history", "version"}, sortedKeys(result))
		assert.Equal(t, "print version", result["version"])
	})

	t.Run("unknown command", func(t *testing.T) {
		assert.Empty(t, SuggestInput("nothing at all", catalog))
	})

	t.Run("hidden command", func(t *testing.T) {
		assert.Empty(t, SuggestInput("sec", catalog))
	})
}

func TestParamSuggestions(t *testing.T) {
	catalog := makeCatalog(t)

	t.Run("all switches", func(t *testing.T) {
		result := SuggestInput("show history --", catalog)
		assert.Equal(t, []string{"--format", "--limit", "--prefix", "--verbose"}, sortedKeys(result))
		assert.Equal(t, "max entries", result["--limit"])
	})

	t.Run("partial switch", func(t *testing.T) {
		assert.Equal(t, []string{"--format"}, sortedKeys(SuggestInput("show history --f", catalog)))
	})

	t.Run("all values after switch", func(t *testing.T) {
		result := SuggestInput("show history --format ", catalog)
		assert.Equal(t, []string{"default", "json", "table"}, sortedKeys(result))
	})

	t.Run("partial value", func(t *testing.T) {
		assert.Equal(t, []string{"json"}, sortedKeys(SuggestInput("show history --format j", catalog)))
	})

	t.Run("partial value with equals sign", func(t *testing.T) {
		assert.Equal(t, []string{"--format=json"}, sortedKeys(SuggestInput("show history --format=j", catalog)))
	})

	t.Run("abbreviated switch", func(t *testing.T) {
		assert.Equal(t, []string{"table"}, sortedKeys(SuggestInput("show history --fo t", catalog)))
	})

	t.Run("consumed value returns to switches", func(t *testing.T) {
		result := SuggestInput("show history --format json --", catalog)
		assert.Contains(t, result, "--limit")
		assert.Contains(t, result, "--verbose")
	})

	t.Run("boolean switch takes no value", func(t *testing.T) {
		result := SuggestInput("show history --verbose --l", catalog)
		assert.Equal(t, []string{"--limit"}, sortedKeys(result))
	})

	t.Run("boolean values", func(t *testing.T) {
		result := SuggestInput("show history --verbose=", catalog)
		assert.Equal(t, []string{"--verbose=false", "--verbose=true"}, sortedKeys(result))
	})
}

func TestPositionalSuggestions(t *testing.T) {
	catalog := makeCatalog(t)

	t.Run("first positional", func(t *testing.T) {
		assert.Equal(t, []string{"number", "text"}, sortedKeys(SuggestInput("step ", catalog)))
		assert.Equal(t, []string{"number"}, sortedKeys(SuggestInput("step n", catalog)))
	})

	t.Run("switch binds positional", func(t *testing.T) {
		assert.Empty(t, SuggestInput("step --type number ", catalog))
	})

	t.Run("text has no suggestion", func(t *testing.T) {
		assert.Empty(t, SuggestInput("step number ", catalog))
	})

	t.Run("quoted text is not a switch", func(t *testing.T) {
		assert.Empty(t, SuggestInput(`step "--ty`, catalog))
	})
}
