package day02

import "github.com/vk/stepgrid/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the solver with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSolver("day02", &registry.Solver{
		Description: "Inventory Management System: box ids",
		Parts: map[int]registry.PartFunc{
			1: Part1,
			2: Part2,
		},
	})
}
