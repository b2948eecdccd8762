package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownPuzzle is returned when no solver is registered under a name.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered solvers for a single application instance.
type Registry struct {
	solvers map[string]*Solver
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		solvers: make(map[string]*Solver),
	}
}

// Lookup returns the solver registered under name.
func (r *Registry) Lookup(name string) (*Solver, error) {
	s, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownPuzzle, name, r.Names())
	}
	return s, nil
}

// Names returns the registered puzzle names in ascending order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.solvers))
}

// Len returns the number of registered solvers.
func (r *Registry) Len() int {
	return len(r.solvers)
}
