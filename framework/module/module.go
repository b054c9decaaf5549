package module

import (
	"errors"
	"fmt"
	"sync"

	"github.com/km-arc/go-nox/framework/container"
)

// ── Registration errors ───────────────────────────────────────────────────────

var (
	ErrEmptyName = errors.New("module: name is required")
	ErrNilInit   = errors.New("module: initializer is required")
	ErrDuplicate = errors.New("module: already registered")
	ErrSealed    = errors.New("module: registry is sealed")
)

// ── Init / Provider ───────────────────────────────────────────────────────────

// Init installs a module's capability into the bag of the current call.
// It must only attach its own key and must not rely on the order other
// modules run in.
type Init func(b *container.Bag)

// Provider is the collaborator form of a module: a name plus the Init body.
//
//	type EventsProvider struct{}
//
//	func (EventsProvider) Name() string { return "events" }
//	func (EventsProvider) Register(b *container.Bag) {
//	    b.Set("events", &Events{})
//	}
type Provider interface {
	// Name is the registry key, conventionally also the bag key.
	Name() string

	// Register attaches the module's capability to the bag.
	Register(b *container.Bag)
}

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry maps module names to initializers.
//
// It is append-only: entries are added during start-up, then Seal() freezes
// the registry and every later Register call fails with ErrSealed. Reads are
// safe from any goroutine.
type Registry struct {
	mu sync.RWMutex

	// name → initializer
	inits map[string]Init

	// registration order
	order []string

	sealOnce sync.Once
	sealed   bool
}

// NewRegistry creates an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{inits: make(map[string]Init)}
}

// Register adds an initializer under name.
func (r *Registry) Register(name string, fn Init) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("%w for [%s]", ErrNilInit, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("%w: cannot add [%s]", ErrSealed, name)
	}
	if _, exists := r.inits[name]; exists {
		return fmt.Errorf("%w: [%s]", ErrDuplicate, name)
	}
	r.inits[name] = fn
	r.order = append(r.order, name)
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(name string, fn Init) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// RegisterProvider registers p.Register under p.Name().
func (r *Registry) RegisterProvider(p Provider) error {
	return r.Register(p.Name(), p.Register)
}

// Seal freezes the registry. Calling it more than once is a no-op.
func (r *Registry) Seal() {
	r.sealOnce.Do(func() {
		r.mu.Lock()
		r.sealed = true
		r.mu.Unlock()
	})
}

// Sealed returns true once Seal() has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// Lookup returns the initializer registered under name.
func (r *Registry) Lookup(name string) (Init, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.inits[name]
	return fn, ok
}

// Has returns true if name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
