package day01

import (
	"github.com/vk/stepgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options are the run file options of the day01 puzzle.
type Options struct {
	// MaxPasses bounds how many times part 2 replays the change list.
	MaxPasses int `cty:"max_passes"`
}

// Register registers the solver with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSolver("day01", &registry.Solver{
		Description: "Chronal Calibration: frequency drift",
		NewOptions:  func() any { return &Options{MaxPasses: 1000} },
		Parts: map[int]registry.PartFunc{
			1: registry.Typed(Part1),
			2: registry.Typed(Part2),
		},
	})
}
