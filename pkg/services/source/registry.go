package source

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Factory opens a Store from a driver-specific data source name.
type Factory func(ctx context.Context, dsn string) (Store, error)

// Registry manages store factories keyed by driver name.
type Registry interface {
	// Register adds a new driver factory
	Register(driver string, factory Factory) error
	// Open instantiates a store for the driver using the provided dsn
	Open(ctx context.Context, driver, dsn string) (Store, error)
	// ListDrivers returns the registered drivers in lexical order
	ListDrivers() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]Factory),
	}
}

func (r *registry) Register(driver string, factory Factory) error {
	if driver == "" {
		return fmt.Errorf("driver name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[driver]; exists {
		return fmt.Errorf("driver %q is already registered", driver)
	}

	r.factories[driver] = factory
	return nil
}

func (r *registry) Open(ctx context.Context, driver, dsn string) (Store, error) {
	r.mu.RLock()
	factory, exists := r.factories[driver]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("driver %q is not registered", driver)
	}

	store, err := factory(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}
	return store, nil
}

func (r *registry) ListDrivers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]string, 0, len(r.factories))
	for driver := range r.factories {
		drivers = append(drivers, driver)
	}
	sort.Strings(drivers)
	return drivers
}
