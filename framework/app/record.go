package app

import "github.com/km-arc/go-nox/framework/container"

// Record is the object the CLI and the inspection API register: it lists
// the capabilities its bag received.
type Record struct {
	Namespace   string   `json:"namespace" yaml:"namespace"`
	Modules     []string `json:"modules" yaml:"modules"`
	Initialized bool     `json:"initialized" yaml:"initialized"`
}

// NewRecord returns a constructor producing a Record for ns.
func NewRecord(ns string) func(*container.Bag) any {
	return func(b *container.Bag) any {
		return &Record{Namespace: ns, Modules: b.Keys()}
	}
}

// Initialize marks the record as set up.
func (r *Record) Initialize() { r.Initialized = true }
