package transport

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Factory creates a transport from cfg.
// Factories are registered via Register() and called by Open().
type Factory func(cfg Config) (Transport, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

func init() {
	Register("memory", func(Config) (Transport, error) {
		return NewMemory(), nil
	})
	Register("stream", func(cfg Config) (Transport, error) {
		if cfg.Writer == nil {
			return nil, errors.New("transport: stream requires a writer")
		}
		var opts []StreamOption
		if cfg.Session != uuid.Nil {
			opts = append(opts, WithSession(cfg.Session))
		}
		return NewStream(cfg.Writer, opts...), nil
	})
}

// Register makes a transport available under name. It is typically called
// from init() in the package implementing the transport:
//
//	func init() {
//	    transport.Register("comm", func(cfg transport.Config) (transport.Transport, error) {
//	        return newCommTransport(cfg.Writer)
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("transport: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("transport: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a transport from the registry.
// This is primarily useful for testing to clean up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Open creates a transport by name.
//
//	t, err := transport.Open("stream", transport.Config{Writer: conn})
func Open(name string, cfg Config) (Transport, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("transport: unknown transport %q (forgotten import?)", name)
	}
	t, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", name, err)
	}
	return t, nil
}

// MustOpen is like Open but panics on error.
func MustOpen(name string, cfg Config) Transport {
	t, err := Open(name, cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Transports returns the sorted names of registered transports.
func Transports() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a transport with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
