package types

import (
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Factory builds a Type instance from its spec. The registry is passed in
// for types that resolve nested specs.
type Factory func(spec TypeSpec, registry *Registry) (Type, error)

// Registry maps type names to factories. It is populated by type providing
// modules at startup and only read afterwards.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	logger    *zap.Logger
}

// RegistryOption is the option function for NewRegistry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for configuration warnings.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewBasicRegistry returns a registry with all basic types registered.
func NewBasicRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	// names are distinct, registration cannot fail on a fresh registry
	_ = RegisterBasicTypes(r)
	return r
}

// Logger returns the registry logger.
func (r *Registry) Logger() *zap.Logger {
	return r.logger
}

// Register adds a factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return configErrorf("type name must not be empty")
	}
	if factory == nil {
		return configErrorf("type %s registered without factory", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return configErrorf("type %s already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Unregister removes name, unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// Get builds the type described by spec.
func (r *Registry) Get(spec TypeSpec) (Type, error) {
	r.mu.RLock()
	factory, ok := r.factories[spec.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, configErrorf("can't find type for %q, known types: %s", spec.Name, strings.Join(r.Names(), ", "))
	}
	return factory(spec, r)
}

// Lookup is Get for a name only spec.
func (r *Registry) Lookup(name string) (Type, error) {
	return r.Get(Spec(name))
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the sorted registered type names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.factories)
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

var basicFactories = map[string]Factory{
	NameText:      newTextType,
	NameNumber:    newNumberType,
	NameBoolean:   newBooleanType,
	NameBool:      newBooleanType,
	NameBlank:     newBlankType,
	NameSelection: newSelectionType,
	NameDeferred:  newDeferredType,
	NameArray:     newArrayType,
}

// RegisterBasicTypes registers text, number, boolean, blank, selection,
// deferred and array.
func RegisterBasicTypes(r *Registry) error {
	for _, name := range lo.Keys(basicFactories) {
		if err := r.Register(name, basicFactories[name]); err != nil {
			return err
		}
	}
	return nil
}

// UnregisterBasicTypes reverts RegisterBasicTypes.
func UnregisterBasicTypes(r *Registry) {
	for name := range basicFactories {
		r.Unregister(name)
	}
}
