package lcd

import "sync/atomic"

// Registry tracks whether a Session is connected. The SDK keeps one global
// applet, so a process should use a single Registry; tests can create their
// own.
type Registry struct {
	active atomic.Bool
}

// DefaultRegistry is the process-wide registry used unless WithRegistry is given.
var DefaultRegistry = &Registry{}

// Active reports whether a session currently holds the registry.
func (r *Registry) Active() bool {
	return r.active.Load()
}

func (r *Registry) acquire() bool {
	return r.active.CompareAndSwap(false, true)
}

func (r *Registry) release() {
	r.active.Store(false)
}
