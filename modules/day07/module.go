package day07

import "github.com/vk/stepgrid/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options are the run file options of the day07 puzzle.
type Options struct {
	// Workers is the size of the worker pool in part 2.
	Workers int `cty:"workers"`
	// BaseDuration is added to every step's letter rank in part 2.
	BaseDuration int `cty:"base_duration"`
	// Trace logs every tick of the part 2 simulation at info level.
	Trace bool `cty:"trace"`
}

// DefaultOptions matches the published puzzle: five workers, sixty
// seconds of base work per step.
func DefaultOptions() *Options {
	return &Options{Workers: 5, BaseDuration: 60}
}

// Register registers the solver with the registry.
func (m *Module) Register(r *registry.Registry) {
	p := NewParser()
	r.RegisterSolver("day07", &registry.Solver{
		Description: "The Sum of Its Parts: dependency-ordered assembly",
		NewOptions:  func() any { return DefaultOptions() },
		Parts: map[int]registry.PartFunc{
			1: registry.Typed(p.Part1),
			2: registry.Typed(p.Part2),
		},
	})
}
