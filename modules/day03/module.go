package day03

import "github.com/vk/stepgrid/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the solver with the registry.
func (m *Module) Register(r *registry.Registry) {
	p := NewParser()
	r.RegisterSolver("day03", &registry.Solver{
		Description: "No Matter How You Slice It: fabric claims",
		Parts: map[int]registry.PartFunc{
			1: p.Part1,
			2: p.Part2,
		},
	})
}
