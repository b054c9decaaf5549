package providers

import (
	"github.com/km-arc/go-nox/framework/container"
	"github.com/km-arc/go-nox/framework/module"
)

// All returns the shipped providers in registration order.
func All() []module.Provider {
	return []module.Provider{
		&AjaxServiceProvider{},
		&DOMServiceProvider{},
		&EventsServiceProvider{},
	}
}

// Register adds every shipped provider to reg.
func Register(reg *module.Registry) error {
	for _, p := range All() {
		if err := reg.RegisterProvider(p); err != nil {
			return err
		}
	}
	return nil
}

// ── AjaxServiceProvider ───────────────────────────────────────────────────────

// Ajax is the capability installed by the "ajax" module.
type Ajax struct{}

// Request is a placeholder; the module carries no transport yet.
func (a *Ajax) Request() {}

// AjaxServiceProvider installs *Ajax under "ajax".
//
// Installed keys:
//   - "ajax"  → *providers.Ajax
type AjaxServiceProvider struct{}

func (p *AjaxServiceProvider) Name() string { return "ajax" }

func (p *AjaxServiceProvider) Register(b *container.Bag) {
	b.Set(p.Name(), &Ajax{})
}

// ── DOMServiceProvider ────────────────────────────────────────────────────────

// DOM is the capability installed by the "dom" module.
type DOM struct{}

// GetElement is a placeholder.
func (d *DOM) GetElement() {}

// DOMServiceProvider installs *DOM under "dom".
//
// Installed keys:
//   - "dom"  → *providers.DOM
type DOMServiceProvider struct{}

func (p *DOMServiceProvider) Name() string { return "dom" }

func (p *DOMServiceProvider) Register(b *container.Bag) {
	b.Set(p.Name(), &DOM{})
}

// ── EventsServiceProvider ─────────────────────────────────────────────────────

// Events is the capability installed by the "events" module.
type Events struct{}

// Click is a placeholder.
func (e *Events) Click() {}

// EventsServiceProvider installs *Events under "events".
//
// Installed keys:
//   - "events"  → *providers.Events
type EventsServiceProvider struct{}

func (p *EventsServiceProvider) Name() string { return "events" }

func (p *EventsServiceProvider) Register(b *container.Bag) {
	b.Set(p.Name(), &Events{})
}
