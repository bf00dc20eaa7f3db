package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/canon"
)

const historyFileName = ".pilot_history"

// Item is one typed command line.
type Item struct {
	Cmd string
	Ts  int64
}

var _ canon.Recorder = (*Helper)(nil)

// Helper command history helper.
//
// It keeps the typed lines, persisted one json object per line when a
// folder is provided, and the last requests the dispatcher created. Both
// are bounded by size in memory.
type Helper struct {
	mu       sync.Mutex
	items    []Item
	requests []*canon.Request
	size     int
	hFile    *os.File
	logger   *zap.Logger
}

// Option is the option function for NewHistoryHelper.
type Option func(*Helper)

// WithSize sets how many items and requests are kept, 100 by default.
func WithSize(size int) Option {
	return func(h *Helper) {
		if size > 0 {
			h.size = size
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Helper) {
		h.logger = logger
	}
}

// NewHistoryHelper returns a helper persisting lines under folder. An empty
// folder keeps the history in memory only.
func NewHistoryHelper(folder string, opts ...Option) *Helper {
	h := &Helper{
		size:   100,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if folder == "" {
		return h
	}

	filePath := path.Join(folder, historyFileName)
	// read all
	readFile, err := os.Open(filePath)
	if err == nil {
		fileScanner := bufio.NewScanner(readFile)
		fileScanner.Split(bufio.ScanLines)

		for fileScanner.Scan() {
			hi := Item{}
			if err := json.Unmarshal(fileScanner.Bytes(), &hi); err == nil {
				h.items = append(h.items, hi)
			}
		}
		readFile.Close()
		h.items = h.trim(h.items)
	}

	// open file and create if non-existent
	h.hFile, err = os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		h.logger.Warn("failed to open history file", zap.String("path", filePath), zap.Error(err))
	}
	return h
}

func (h *Helper) trim(items []Item) []Item {
	if len(items) > h.size {
		return items[len(items)-h.size:]
	}
	return items
}

// AddLog add cmd log into history helper.
func (h *Helper) AddLog(cmd string) {
	// skip empty line
	if len(strings.TrimSpace(cmd)) == 0 {
		return
	}
	hi := Item{
		Ts:  time.Now().Unix(),
		Cmd: cmd,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hFile != nil {
		bs, _ := json.Marshal(hi)
		if _, err := h.hFile.Write(append(bs, '\n')); err != nil {
			h.logger.Warn("failed to write history", zap.Error(err))
		}
	}
	h.items = h.trim(append(h.items, hi))
}

// Record implements canon.Recorder, keeping the last requests.
func (h *Helper) Record(req *canon.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, req)
	if len(h.requests) > h.size {
		h.requests = h.requests[len(h.requests)-h.size:]
	}
	h.logger.Debug("request recorded", zap.Int64("request", req.ID()), zap.String("command", req.Command().Name()))
}

// List all history items with prefix.
func (h *Helper) List(input string) []Item {
	h.mu.Lock()
	defer h.mu.Unlock()
	return lo.Filter(h.items, func(item Item, _ int) bool {
		return strings.HasPrefix(item.Cmd, input)
	})
}

// Requests returns the recorded requests, oldest first, whose command name
// starts with prefix.
func (h *Helper) Requests(prefix string) []*canon.Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	return lo.Filter(h.requests, func(req *canon.Request, _ int) bool {
		return strings.HasPrefix(req.Command().Name(), prefix)
	})
}

func (h *Helper) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hFile != nil {
		h.hFile.Close()
		h.hFile = nil
	}
}
