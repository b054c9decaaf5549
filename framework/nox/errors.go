package nox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNamespace is returned when the first argument is missing, is
	// not a string, or holds an invalid segment.
	ErrInvalidNamespace = errors.New("nox: first argument must be a valid namespace string")

	// ErrInvalidCallback is returned when the last argument is not a
	// constructor.
	ErrInvalidCallback = errors.New("nox: last argument must be a constructor")

	// ErrUnknownModule is matched by every *UnknownModuleError.
	ErrUnknownModule = errors.New("nox: module does not exist")
)

// UnknownModuleError names the first requested module missing from the
// registry.
type UnknownModuleError struct {
	Name string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("nox: module [%s] does not exist", e.Name)
}

// Is lets errors.Is(err, ErrUnknownModule) match.
func (e *UnknownModuleError) Is(target error) bool {
	return target == ErrUnknownModule
}
