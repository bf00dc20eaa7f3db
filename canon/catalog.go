package canon

import (
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/argument"
	"github.com/milvus-io/pilot/types"
)

// Catalog holds the registered commands by name.
type Catalog struct {
	mu       sync.RWMutex
	commands map[string]*Command
	registry *types.Registry
	opts     []Option
	logger   *zap.Logger
}

// NewCatalog returns an empty catalog resolving types with registry.
func NewCatalog(registry *types.Registry, opts ...Option) *Catalog {
	return &Catalog{
		commands: make(map[string]*Command),
		registry: registry,
		opts:     opts,
		logger:   newOptions(opts).logger,
	}
}

// Registry returns the type registry commands are resolved with.
func (c *Catalog) Registry() *types.Registry { return c.registry }

// Add resolves spec and registers the command.
func (c *Catalog) Add(spec CommandSpec) (*Command, error) {
	cmd, err := NewCommand(spec, c.registry, c.opts...)
	if err != nil {
		return nil, err
	}
	if err := c.AddCommand(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

// AddCommand registers a resolved command.
func (c *Catalog) AddCommand(cmd *Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.commands[cmd.name]; ok {
		return configErrorf("command %s already registered", cmd.name)
	}
	c.commands[cmd.name] = cmd
	c.logger.Debug("command registered", zap.String("command", cmd.name), zap.Int("params", len(cmd.params)))
	return nil
}

// Remove unregisters name, unknown names are ignored.
func (c *Catalog) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.commands, name)
}

// Get looks a command up by its full name.
func (c *Catalog) Get(name string) (*Command, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cmd, ok := c.commands[strings.Join(strings.Fields(name), " ")]
	return cmd, ok
}

// Commands returns all commands sorted by name.
func (c *Catalog) Commands() []*Command {
	c.mu.RLock()
	commands := lo.Values(c.commands)
	c.mu.RUnlock()
	sort.Slice(commands, func(i, j int) bool { return commands[i].name < commands[j].name })
	return commands
}

// Names returns all command names sorted.
func (c *Catalog) Names() []string {
	return lo.Map(c.Commands(), func(cmd *Command, _ int) string { return cmd.name })
}

// Match returns the visible commands whose name starts with prefix.
func (c *Catalog) Match(prefix string) []*Command {
	return lo.Filter(c.Commands(), func(cmd *Command, _ int) bool {
		return !cmd.hidden && strings.HasPrefix(cmd.name, prefix)
	})
}

// Resolve finds the command with the longest name matching the leading
// args. It returns the command and how many args its name used.
func (c *Catalog) Resolve(args []argument.Arg) (*Command, int) {
	words := lo.Map(args, func(arg argument.Arg, _ int) string { return arg.Text() })
	for n := len(words); n > 0; n-- {
		if cmd, ok := c.Get(strings.Join(words[:n], " ")); ok {
			return cmd, n
		}
	}
	return nil, 0
}
