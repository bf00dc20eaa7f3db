package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/types"
)

func TestHelperPersistsLines(t *testing.T) {
	dir := t.TempDir()

	h := NewHistoryHelper(dir)
	h.AddLog("help")
	h.AddLog("   ")
	h.AddLog("history --limit 3")
	h.Close()

	reopened := NewHistoryHelper(dir)
	defer reopened.Close()

	items := reopened.List("")
	require.Len(t, items, 2)
	assert.Equal(t, "help", items[0].Cmd)
	assert.Equal(t, "history --limit 3", items[1].Cmd)

	assert.Len(t, reopened.List("hist"), 1)
}

func TestHelperSize(t *testing.T) {
	h := NewHistoryHelper("", WithSize(3))
	for i := 0; i < 5; i++ {
		h.AddLog(fmt.Sprintf("echo %d", i))
	}
	items := h.List("")
	require.Len(t, items, 3)
	assert.Equal(t, "echo 2", items[0].Cmd)
}

func TestHelperRecordsRequests(t *testing.T) {
	catalog := canon.NewCatalog(types.NewBasicRegistry())
	for _, name := range []string{"echo", "help"} {
		_, err := catalog.Add(canon.CommandSpec{
			Name: name,
			Exec: func(context.Context, *canon.Request, canon.Values) error { return nil },
		})
		require.NoError(t, err)
	}

	h := NewHistoryHelper("", WithSize(2))
	dispatcher := canon.NewDispatcher(catalog, canon.WithRecorder(h))

	for _, line := range []string{"help", "echo", "help"} {
		_, err := dispatcher.ExecLine(context.Background(), line)
		require.NoError(t, err)
	}

	requests := h.Requests("")
	require.Len(t, requests, 2)
	assert.Equal(t, "echo", requests[0].Command().Name())
	assert.Len(t, h.Requests("he"), 1)
}
