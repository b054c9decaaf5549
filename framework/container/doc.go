// Package container provides the dependency bag shared by module
// initializers during a single nox Factory call.
//
// # Overview
//
// A Bag is created fresh for every call. Each requested module installs its
// capability under its own key, then the whole bag is handed to the
// constructor registered at the end of the namespace path.
//
// # Installing
//
//	b := container.New()
//	b.Set("events", &providers.Events{})
//
// # Reading
//
//	// Untyped
//	raw, ok := b.Get("events")
//
//	// Generic (panics if missing or of another type)
//	events := container.Resolve[*providers.Events](b, "events")
//
//	// Generic, non-panicking
//	events, ok := container.Lookup[*providers.Events](b, "events")
//
// # Ordering
//
// Keys() reports keys in the order they were first set, which is the order
// the modules ran in.
package container
