package core

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrAlreadyInit is returned when a second Handler is installed in a
// Registry. The first installation always wins; it is never replaced.
var ErrAlreadyInit = errors.New("global handler already installed")

// Registry holds at most one Handler for its lifetime. The package-level
// Set/Active functions operate on a process-wide default Registry; tests
// that need isolation can use their own instance.
type Registry struct {
	mu      sync.RWMutex
	handler Handler
}

// Set installs h as the registry's handler. It fails with ErrAlreadyInit
// if a handler was installed before; the existing handler is kept.
func (reg *Registry) Set(h Handler) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.handler != nil {
		return errors.WithStack(ErrAlreadyInit)
	}
	reg.handler = h
	return nil
}

// Handler returns the installed handler, or nil if none was set.
func (reg *Registry) Handler() Handler {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.handler
}

var defaultRegistry Registry

// Set installs h as the process-wide handler. A second call fails with
// ErrAlreadyInit no matter which handler it carries.
func Set(h Handler) error {
	return defaultRegistry.Set(h)
}

// Active returns the process-wide handler, or nil before initialization.
func Active() Handler {
	return defaultRegistry.Handler()
}
