package nox

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/km-arc/go-nox/framework/container"
	"github.com/km-arc/go-nox/framework/module"
	"github.com/km-arc/go-nox/framework/namespace"
)

// ── Lifecycle hooks ───────────────────────────────────────────────────────────

// Initializer is implemented by registered objects that want a hook run
// right after they are stored in the tree.
type Initializer interface {
	Initialize()
}

// InitializerE is an Initializer whose failure is reported to the caller.
type InitializerE interface {
	Initialize() error
}

// ── Factory ───────────────────────────────────────────────────────────────────

// Factory registers constructed objects into a namespace tree, filling their
// dependency bag from a module registry.
type Factory struct {
	registry *module.Registry
	tree     *namespace.Tree
	logger   *zap.Logger
	dedupe   bool
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger used for debug output. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithTree registers into an existing tree instead of a fresh one.
func WithTree(t *namespace.Tree) Option {
	return func(f *Factory) {
		if t != nil {
			f.tree = t
		}
	}
}

// WithDedupe makes a module requested twice in one call run only once.
// By default every occurrence runs.
func WithDedupe(on bool) Option {
	return func(f *Factory) { f.dedupe = on }
}

// New creates a Factory over reg and seals reg: modules must all be
// registered before the first Factory exists.
func New(reg *module.Registry, opts ...Option) *Factory {
	if reg == nil {
		reg = module.NewRegistry()
	}
	reg.Seal()

	f := &Factory{
		registry: reg,
		tree:     namespace.NewTree(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Registry returns the module registry.
func (f *Factory) Registry() *module.Registry { return f.registry }

// Tree returns the namespace tree objects are registered into.
func (f *Factory) Tree() *namespace.Tree { return f.tree }

// Get returns the object registered at path.
func (f *Factory) Get(path string) (any, bool) { return f.tree.Get(path) }

// ── Entry points ──────────────────────────────────────────────────────────────

// Nox takes the namespace first, the constructor last, and module names in
// between, either as separate strings or as one []string.
//
//	home, err := f.Nox("app.views.Home", "ajax", "dom", func(b *container.Bag) any {
//	    return &Home{Ajax: container.Resolve[*providers.Ajax](b, "ajax")}
//	})
//
//	all, err := f.Nox("app.Everything", "*", ctor)
func (f *Factory) Nox(args ...any) (any, error) {
	call, err := ParseArgs(args)
	if err != nil {
		return nil, err
	}
	return f.run(call)
}

// Register is the typed form of Nox.
func (f *Factory) Register(ns string, modules []string, ctor Constructor) (any, error) {
	return f.Nox(ns, modules, ctor)
}

// MustNox is like Nox but panics on error.
func (f *Factory) MustNox(args ...any) any {
	instance, err := f.Nox(args...)
	if err != nil {
		panic(err)
	}
	return instance
}

// ── Pipeline ──────────────────────────────────────────────────────────────────

func (f *Factory) run(call Call) (any, error) {
	bag, err := f.collect(call.Modules)
	if err != nil {
		return nil, err
	}

	h, err := f.tree.Walk(call.Namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNamespace, err)
	}

	instance, err := call.Constructor(bag)
	if err != nil {
		return nil, fmt.Errorf("nox: constructing [%s]: %w", call.Namespace, err)
	}

	_, replaced, err := f.tree.Set(h, instance)
	if err != nil {
		return nil, err
	}
	if replaced {
		f.logger.Debug("namespace overwritten", zap.String("namespace", call.Namespace))
	}

	switch hook := instance.(type) {
	case InitializerE:
		if err := hook.Initialize(); err != nil {
			return instance, fmt.Errorf("nox: initializing [%s]: %w", call.Namespace, err)
		}
	case Initializer:
		hook.Initialize()
	}

	f.logger.Debug("namespace registered",
		zap.String("namespace", call.Namespace),
		zap.Strings("modules", bag.Keys()),
		zap.String("type", fmt.Sprintf("%T", instance)),
	)
	return instance, nil
}

// collect resolves the module arguments and runs each initializer
// against a fresh bag.
func (f *Factory) collect(args []any) (*container.Bag, error) {
	bag := container.New()

	names, err := ResolveModules(f.registry, args)
	if err != nil {
		return nil, err
	}
	if f.dedupe {
		names = dedupe(names)
	}

	for _, name := range names {
		fn, _ := f.registry.Lookup(name)
		fn(bag)
		f.logger.Debug("module installed", zap.String("module", name))
	}
	return bag, nil
}
