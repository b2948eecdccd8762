package dag

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// New creates and returns an initialized, empty Graph.
func New[S cmp.Ordered]() *Graph[S] {
	return &Graph[S]{
		nodes: make(map[S]*node[S]),
	}
}

// AddStep adds a step with no prerequisites. If the step already exists,
// the function does nothing.
func (g *Graph[S]) AddStep(id S) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.addStep(id)
}

func (g *Graph[S]) addStep(id S) *node[S] {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &node[S]{
		id:         id,
		deps:       make(map[S]*node[S]),
		dependents: make(map[S]*node[S]),
	}
	g.nodes[id] = n
	return n
}

// AddRule records that r.Step depends on r.Prerequisite, creating either
// step if it is not yet known. Adding the same rule twice has no effect.
// A step naming itself as prerequisite is stored as-is and later reported
// by DetectCycles.
func (g *Graph[S]) AddRule(r Rule[S]) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	step := g.addStep(r.Step)
	prereq := g.addStep(r.Prerequisite)
	step.deps[prereq.id] = prereq
	prereq.dependents[step.id] = step
}

// Len returns the number of distinct steps.
func (g *Graph[S]) Len() int {
	if g == nil {
		return 0
	}
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// HasStep reports whether id is a known step.
func (g *Graph[S]) HasStep(id S) bool {
	if g == nil {
		return false
	}
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Steps returns every known step in ascending order.
func (g *Graph[S]) Steps() []S {
	if g == nil {
		return nil
	}
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return slices.Sorted(maps.Keys(g.nodes))
}

// Prerequisites returns the steps id depends on, in ascending order.
func (g *Graph[S]) Prerequisites(id S) ([]S, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStepNotFound, id)
	}
	return slices.Sorted(maps.Keys(n.deps)), nil
}

// Dependents returns the steps that depend on id, in ascending order.
func (g *Graph[S]) Dependents(id S) ([]S, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStepNotFound, id)
	}
	return slices.Sorted(maps.Keys(n.dependents)), nil
}

// DetectCycles checks the graph for any cycles. It returns an error
// wrapping ErrCycle and naming the step that closed the cycle. Steps are
// visited in ascending order so the reported step is stable across runs.
func (g *Graph[S]) DetectCycles() error {
	if g == nil {
		return nil
	}
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// permanent: fully explored and known to be acyclic.
	// temporary: on the current DFS stack.
	permanent := make(map[S]bool, len(g.nodes))
	temporary := make(map[S]bool)

	var visit func(n *node[S]) error
	visit = func(n *node[S]) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return fmt.Errorf("%w involving step '%v'", ErrCycle, n.id)
		}

		temporary[n.id] = true
		for _, id := range slices.Sorted(maps.Keys(n.dependents)) {
			if err := visit(n.dependents[id]); err != nil {
				return err
			}
		}
		delete(temporary, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
		if err := visit(g.nodes[id]); err != nil {
			return err
		}
	}
	return nil
}
