// Package module holds the registry of named modules that a nox Factory
// can pull into a call.
//
// # Lifecycle
//
//  1. Create: reg := module.NewRegistry()
//  2. Register: reg.Register("ajax", fn) or reg.RegisterProvider(&AjaxProvider{})
//  3. Seal: reg.Seal() (nox.New does this for you)
//  4. Resolve names from any goroutine
//
// # Writing a module
//
//	type DOMProvider struct{}
//
//	func (DOMProvider) Name() string { return "dom" }
//	func (DOMProvider) Register(b *container.Bag) {
//	    b.Set("dom", &DOM{})
//	}
//
// A module attaches exactly one key to the bag, its own name, and must not
// touch keys owned by other modules.
package module
