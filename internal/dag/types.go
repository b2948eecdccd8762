package dag

import (
	"cmp"
	"errors"
	"sync"
)

// ErrCycle is returned by DetectCycles when a step transitively depends on itself.
var ErrCycle = errors.New("cycle detected")

// ErrStepNotFound is returned when a query names a step the graph does not know.
var ErrStepNotFound = errors.New("step not found")

// Rule is a single ordering constraint: Step cannot begin until
// Prerequisite has finished.
type Rule[S cmp.Ordered] struct {
	Step         S
	Prerequisite S
}

// Graph is a static dependency graph over steps of type S.
// All operations on the graph are concurrency-safe.
type Graph[S cmp.Ordered] struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all steps in the graph, keyed by their identifier.
	nodes map[S]*node[S]
}

// node represents a single step. It is un-exported to enforce interaction
// with the graph via step identifiers rather than struct manipulation.
type node[S cmp.Ordered] struct {
	id S
	// deps holds the prerequisites of this step (predecessors).
	deps map[S]*node[S]
	// dependents holds the steps waiting on this one (successors).
	dependents map[S]*node[S]
}
