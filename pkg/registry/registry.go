// Package registry provides the process-wide directory of benchmark plugins.
//
// Plugin packages register a factory for their tool name from init(), so a
// blank import of the package is all it takes to make a benchmark available.
// The registry is write-once per key and read-only after startup.
package registry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mnmehta/benchmark-wrapper/pkg/benchmark"
	"github.com/mnmehta/benchmark-wrapper/pkg/errors"
	"github.com/mnmehta/benchmark-wrapper/pkg/logger"
)

// Factory creates a fresh benchmark plugin instance
type Factory func() (benchmark.Benchmark, error)

// Registry maps tool names to benchmark factories, preserving registration
// order for deterministic listing.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	order     []string
	logger    *zap.Logger
}

// Global registry instance
var globalRegistry = NewRegistry()

// NewRegistry creates an empty benchmark registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		logger:    logger.With(zap.String("component", "benchmark_registry")),
	}
}

// Register adds a benchmark factory under its tool name. The sentinel base
// name is never stored. Registering an existing non-sentinel name is a
// definition error.
func (r *Registry) Register(name string, factory Factory) error {
	if name == benchmark.BaseToolName {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.NewDuplicateRegistration(name)
	}

	r.factories[name] = factory
	r.order = append(r.order, name)
	r.logger.Info("benchmark registered", zap.String("name", name))
	return nil
}

// Create instantiates the benchmark registered under name
func (r *Registry) Create(name string) (benchmark.Benchmark, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NewUnknownPlugin(name)
	}

	b, err := factory()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig,
			"failed to create benchmark "+name)
	}
	return b, nil
}

// Names returns the registered tool names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Has checks if a benchmark is registered under name
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.factories[name]
	return exists
}

// Global registry functions

// Register adds a benchmark factory to the global registry
func Register(name string, factory Factory) error {
	return globalRegistry.Register(name, factory)
}

// MustRegister adds a benchmark factory to the global registry and panics on
// a name collision. Intended for plugin package init(), where a collision is
// a programming error.
func MustRegister(name string, factory Factory) {
	if err := globalRegistry.Register(name, factory); err != nil {
		panic(err)
	}
}

// Create instantiates a benchmark from the global registry
func Create(name string) (benchmark.Benchmark, error) {
	return globalRegistry.Create(name)
}

// Names returns the tool names registered in the global registry
func Names() []string {
	return globalRegistry.Names()
}

// Has checks if a benchmark is registered in the global registry
func Has(name string) bool {
	return globalRegistry.Has(name)
}
