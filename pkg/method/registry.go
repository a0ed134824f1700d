package method

import (
	"sync"

	"go.uber.org/zap"
)

// Lookup operation names reported to an Observer.
const (
	OpSelect = "select"
	OpLegacy = "legacy"
	OpParse  = "parse"
)

// Observer receives registry events, typically to export metrics.
type Observer interface {
	// MethodRegistered is called after d was stored. replaced is true when
	// d overwrote an earlier descriptor with the same key.
	MethodRegistered(d *Descriptor, replaced bool)
	// MethodsSelected is called after each lookup with the number of matches.
	MethodsSelected(op string, matches int)
}

// Registry holds registered method descriptors in registration order.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	order   []Key
	entries map[Key]*Descriptor

	logger            *zap.Logger
	observer          Observer
	legacyFallthrough bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and lookup events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver attaches an Observer.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observer = o
	}
}

// WithLegacyFallthrough controls SelectLegacy when a legacy name matches
// neither a registered name nor any keyword: if enabled, every method of
// the requested dimension is returned, otherwise none.
func WithLegacyFallthrough(enabled bool) Option {
	return func(r *Registry) {
		r.legacyFallthrough = enabled
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[Key]*Descriptor),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores d and returns the stored copy. A descriptor with the same
// key replaces the previous one but keeps its position in the order.
// Field values are not validated: unknown values simply never match.
func (r *Registry) Register(d Descriptor) *Descriptor {
	d.normalize()
	stored := &d

	r.mu.Lock()
	_, replaced := r.entries[d.key]
	if !replaced {
		r.order = append(r.order, d.key)
	}
	r.entries[d.key] = stored
	r.mu.Unlock()

	r.logger.Debug("method registered",
		zap.Stringer("key", d.key),
		zap.String("legacy", d.Legacy),
		zap.Bool("replaced", replaced),
	)
	if r.observer != nil {
		r.observer.MethodRegistered(stored, replaced)
	}
	return stored
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// All returns every descriptor in registration order.
func (r *Registry) All() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Descriptor, 0, len(r.order))
	for _, k := range r.order {
		result = append(result, r.entries[k])
	}
	return result
}

// ListAvailable returns the printable form of every descriptor in
// registration order.
func (r *Registry) ListAvailable() []string {
	all := r.All()
	result := make([]string, 0, len(all))
	for _, d := range all {
		result = append(result, d.String())
	}
	return result
}

// Lookup finds the descriptor registered under k. k is normalized first.
func (r *Registry) Lookup(k Key) (*Descriptor, bool) {
	k = NewKey(k.Dim, k.Split, k.Algo, k.Impl).WithTarget(k.Target)

	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[k]
	return d, ok
}

// Available reports whether a descriptor is registered under k.
func (r *Registry) Available(k Key) bool {
	_, ok := r.Lookup(k)
	return ok
}

func (r *Registry) observe(op string, matches int) {
	if r.observer != nil {
		r.observer.MethodsSelected(op, matches)
	}
}
