package dag

import "cmp"

// Build constructs a dependency graph from an ordered list of rules.
// Duplicate rules are idempotent and an empty list yields an empty graph.
// Build never fails; acyclicity is checked separately by DetectCycles.
func Build[S cmp.Ordered](rules []Rule[S]) *Graph[S] {
	g := New[S]()
	for _, r := range rules {
		g.AddRule(r)
	}
	return g
}
