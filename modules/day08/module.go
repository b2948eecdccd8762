package day08

import "github.com/vk/stepgrid/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options are the run file options of the day08 puzzle.
type Options struct {
	// CycleNames restarts the name alphabet once it runs out instead of failing.
	CycleNames bool `cty:"cycle_names"`
}

// Register registers the solver with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSolver("day08", &registry.Solver{
		Description: "Memory Maneuver: licence tree",
		NewOptions:  func() any { return &Options{CycleNames: true} },
		Parts: map[int]registry.PartFunc{
			1: registry.Typed(Part1),
			2: registry.Typed(Part2),
		},
	})
}
