package day06

import "github.com/vk/stepgrid/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options are the run file options of the day06 puzzle.
type Options struct {
	// MaxTotalDistance is the exclusive bound on the summed distance used by part 2.
	MaxTotalDistance int `cty:"max_total_distance"`
}

// Register registers the solver with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSolver("day06", &registry.Solver{
		Description: "Chronal Coordinates: manhattan regions",
		NewOptions:  func() any { return &Options{MaxTotalDistance: 10000} },
		Parts: map[int]registry.PartFunc{
			1: registry.Typed(Part1),
			2: registry.Typed(Part2),
		},
	})
}
