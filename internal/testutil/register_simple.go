package testutil

import (
	"context"

	"github.com/vk/stepgrid/internal/registry"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers a single solver.
type SimpleModule struct {
	Name   string
	Solver *registry.Solver
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Name != "" && m.Solver != nil {
		r.RegisterSolver(m.Name, m.Solver)
	}
}

// ConstantSolver returns a solver whose single part always answers value.
func ConstantSolver(value any) *registry.Solver {
	return &registry.Solver{
		Parts: map[int]registry.PartFunc{
			1: func(context.Context, string, any) (any, error) { return value, nil },
		},
	}
}
