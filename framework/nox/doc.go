// Package nox registers objects into a dotted namespace tree, handing each
// constructor a bag of capabilities installed by named modules.
//
// # Overview
//
//	reg := module.NewRegistry()
//	providers.Register(reg)
//
//	f := nox.New(reg)
//	home, err := f.Nox("app.views.Home", "ajax", "events", func(b *container.Bag) any {
//	    return &Home{Events: container.Resolve[*providers.Events](b, "events")}
//	})
//
// A call runs in this order:
//
//  1. The namespace (first argument) is validated.
//  2. The constructor (last argument) is checked.
//  3. Module names in between are resolved; "*" means every module. All
//     names are checked before any module runs.
//  4. Each module installs its capability into a fresh bag.
//  5. Missing containers along the path are created.
//  6. The constructor runs with the bag and its result is stored at the
//     leaf, replacing whatever was there without complaint.
//  7. If the result implements Initializer (or InitializerE), Initialize is
//     called. By then the object is already reachable at its path.
//
// # Modules
//
// Modules may be passed as separate strings or as a single []string:
//
//	f.Nox("a.b", "ajax", "dom", ctor)
//	f.Nox("a.b", []string{"ajax", "dom"}, ctor)
//	f.Nox("a.b", "*", ctor)
//
// A module listed twice runs twice unless the Factory was built with
// WithDedupe(true).
package nox
