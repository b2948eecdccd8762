package registry

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// PartFunc solves one part of a puzzle. opts is the value produced by the
// solver's NewOptions, already populated from the run file. Parts of one
// puzzle may run concurrently and share opts, so it must not be modified.
type PartFunc func(ctx context.Context, input string, opts any) (any, error)

// Solver holds the compiled Go parts of a puzzle.
type Solver struct {
	Description string
	// NewOptions returns a pointer to an options struct pre-filled with
	// defaults. Nil means the solver takes no options.
	NewOptions func() any
	// Parts maps the part number (1, 2, ...) to its implementation.
	Parts map[int]PartFunc
}

// PartNumbers returns the solver's part numbers in ascending order.
func (s *Solver) PartNumbers() []int {
	return slices.Sorted(maps.Keys(s.Parts))
}

// Options returns a fresh options value, or nil when the solver has none.
func (s *Solver) Options() any {
	if s.NewOptions == nil {
		return nil
	}
	return s.NewOptions()
}

// Part returns the implementation of the given part.
func (s *Solver) Part(n int) (PartFunc, error) {
	fn, ok := s.Parts[n]
	if !ok {
		return nil, fmt.Errorf("part %d not implemented (available: %v)", n, s.PartNumbers())
	}
	return fn, nil
}

// RegisterSolver registers the solver for a puzzle name.
func (r *Registry) RegisterSolver(name string, solver *Solver) {
	if _, exists := r.solvers[name]; exists {
		panic(fmt.Sprintf("solver with name '%s' already registered", name))
	}
	slog.Debug("Registering solver.", "name", name, "parts", len(solver.Parts))
	r.solvers[name] = solver
}

// Typed adapts a part function that takes its concrete options type. The
// returned PartFunc fails if it receives options of any other type.
func Typed[O any](fn func(ctx context.Context, input string, opts *O) (any, error)) PartFunc {
	return func(ctx context.Context, input string, opts any) (any, error) {
		if opts == nil {
			return fn(ctx, input, new(O))
		}
		o, ok := opts.(*O)
		if !ok {
			return nil, fmt.Errorf("options have type %T, want %T", opts, (*O)(nil))
		}
		return fn(ctx, input, o)
	}
}
