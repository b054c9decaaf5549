package nox

import (
	"fmt"

	"github.com/km-arc/go-nox/framework/module"
)

// Wildcard requests every registered module.
const Wildcard = "*"

// ResolveModules turns a module arguments into registry names.
//
//   - a leading string: every element is a module name
//   - a leading []string or []any: its elements are the names
//   - anything else: no modules
//
// A resolved list starting with Wildcard is replaced by all registry names
// in registration order. Every name is checked before any is returned, so a
// failure means no initializer has run.
func ResolveModules(reg *module.Registry, args []any) ([]string, error) {
	var requested []any
	if len(args) > 0 {
		switch first := args[0].(type) {
		case string:
			if first != "" {
				requested = args
			}
		case []string:
			requested = make([]any, len(first))
			for i, name := range first {
				requested[i] = name
			}
		case []any:
			requested = first
		}
	}

	if len(requested) == 0 {
		return nil, nil
	}
	if requested[0] == Wildcard {
		return reg.Names(), nil
	}

	names := make([]string, 0, len(requested))
	for _, r := range requested {
		name, ok := r.(string)
		if !ok || !reg.Has(name) {
			return nil, &UnknownModuleError{Name: fmt.Sprint(r)}
		}
		names = append(names, name)
	}
	return names, nil
}

// dedupe drops repeated names, keeping first occurrences.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0:0]
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
