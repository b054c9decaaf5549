package container

import "fmt"

// ── Bag ───────────────────────────────────────────────────────────────────────

// Bag is the dependency bag handed to every module initializer of a single
// Factory call and, finally, to the constructor.
//
// Modules attach their capability under their own key:
//
//	func(b *container.Bag) { b.Set("ajax", &Ajax{}) }
//
// and constructors read them back:
//
//	ajax := container.Resolve[*providers.Ajax](b, "ajax")
//
// Keys are kept in insertion order so Keys() is deterministic.
//
// A Bag lives for exactly one call and is not safe for concurrent use.
type Bag struct {
	// key → capability
	items map[string]any

	// insertion order of keys
	order []string
}

// New creates an empty bag.
func New() *Bag {
	return &Bag{items: make(map[string]any)}
}

// ── Mutation ──────────────────────────────────────────────────────────────────

// Set attaches a capability under key, replacing any previous value.
//
//	b.Set("dom", &DOM{})
func (b *Bag) Set(key string, value any) {
	if _, exists := b.items[key]; !exists {
		b.order = append(b.order, key)
	}
	b.items[key] = value
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// Get returns the capability stored under key.
func (b *Bag) Get(key string) (any, bool) {
	v, ok := b.items[key]
	return v, ok
}

// Has returns true if key has been set.
func (b *Bag) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// Len returns the number of keys in the bag.
func (b *Bag) Len() int {
	return len(b.items)
}

// Keys returns a copy of all keys in insertion order.
func (b *Bag) Keys() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve fetches key and type-asserts it, panicking when the key is missing
// or holds another type.
//
//	// Instead of: ajax := b.Get("ajax").(*providers.Ajax)
//	// Write:      ajax := container.Resolve[*providers.Ajax](b, "ajax")
func Resolve[T any](b *Bag, key string) T {
	v, ok := b.Get(key)
	if !ok {
		panic(fmt.Sprintf("container: nothing installed under [%s]", key))
	}
	typed, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] holds %T", *new(T), key, v))
	}
	return typed
}

// Lookup is like Resolve but returns (T, bool) without panicking.
func Lookup[T any](b *Bag, key string) (T, bool) {
	v, ok := b.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
