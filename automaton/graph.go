package automaton

import "github.com/kvryabov/langreach/core"

// GraphToNFA wraps a core.Graph as an NFA whose states are the graph's
// vertex IDs and whose alphabet is the graph's edge labels: every edge
// u--label-->v becomes a transition δ(u, label) ∋ v. start and final name
// the vertices to mark as start/accepting states; per §4.3, an empty start
// or final defaults to every vertex of g (S = F = V).
//
// Fails with ErrInvalidStateSet if any vertex in start or final is not a
// vertex of g, matching this package's Error Kind → Sentinel Map entry for
// InvalidStateSet.
// Complexity: O(V + E).
func GraphToNFA(g *core.Graph, start, final []string) (*NFA, error) {
	a := NewNFA()

	vertices := g.Vertices()
	for _, v := range vertices {
		a.AddState(v)
	}
	for _, e := range g.Edges() {
		a.AddTransition(e.From, e.Label, e.To)
	}

	if len(start) == 0 {
		start = vertices
	}
	if len(final) == 0 {
		final = vertices
	}

	for _, s := range start {
		if !g.HasVertex(s) {
			return nil, ErrInvalidStateSet
		}
		if err := a.SetStart(s); err != nil {
			return nil, err
		}
	}
	for _, f := range final {
		if !g.HasVertex(f) {
			return nil, ErrInvalidStateSet
		}
		if err := a.SetFinal(f); err != nil {
			return nil, err
		}
	}

	return a, nil
}
