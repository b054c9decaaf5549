package nox

import (
	"fmt"

	"github.com/km-arc/go-nox/framework/container"
	"github.com/km-arc/go-nox/framework/namespace"
)

// Constructor builds the object registered at the namespace leaf from the
// bag filled by the requested modules.
type Constructor func(deps *container.Bag) any

// ConstructorE is a Constructor that can fail.
type ConstructorE func(deps *container.Bag) (any, error)

// Call is a parsed Nox argument list.
type Call struct {
	// Namespace is the validated dotted path.
	Namespace string

	// Modules is the raw module arguments found between the namespace
	// and the constructor.
	Modules []any

	// Constructor is the last argument, normalised to ConstructorE.
	Constructor ConstructorE
}

// ParseArgs splits a Nox argument list into namespace, module arguments
// and constructor. The namespace is checked first, then the constructor;
// whatever is left over is the module arguments.
//
//	call, err := nox.ParseArgs([]any{"app.Home", "ajax", "dom", ctor})
//	// call.Namespace == "app.Home", call.Modules == ["ajax" "dom"]
func ParseArgs(args []any) (Call, error) {
	if len(args) == 0 {
		return Call{}, fmt.Errorf("%w: no arguments", ErrInvalidNamespace)
	}

	ns, ok := args[0].(string)
	if !ok {
		return Call{}, fmt.Errorf("%w: got %T", ErrInvalidNamespace, args[0])
	}
	segments, err := namespace.Split(ns)
	if err != nil {
		return Call{}, fmt.Errorf("%w: %w", ErrInvalidNamespace, err)
	}

	rest := args[1:]
	if len(rest) == 0 {
		return Call{}, fmt.Errorf("%w: missing", ErrInvalidCallback)
	}
	last := rest[len(rest)-1]
	ctor, ok := asConstructor(last)
	if !ok {
		return Call{}, fmt.Errorf("%w: got %T", ErrInvalidCallback, last)
	}

	return Call{
		Namespace:   namespace.Join(segments...),
		Modules:     rest[:len(rest)-1],
		Constructor: ctor,
	}, nil
}

// asConstructor accepts the callable shapes a caller may pass last.
func asConstructor(v any) (ConstructorE, bool) {
	switch fn := v.(type) {
	case ConstructorE:
		return fn, fn != nil
	case Constructor:
		if fn == nil {
			return nil, false
		}
		return func(b *container.Bag) (any, error) { return fn(b), nil }, true
	case func(*container.Bag) (any, error):
		return fn, fn != nil
	case func(*container.Bag) any:
		if fn == nil {
			return nil, false
		}
		return func(b *container.Bag) (any, error) { return fn(b), nil }, true
	}
	return nil, false
}
