package cfpq

import (
	"sort"

	"github.com/kvryabov/langreach/automaton"
	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/grammar"
	"github.com/kvryabov/langreach/sbm"
)

type labeledEdge struct{ from, label, to string }

// TensorCFPQ implements §4.8's RSM ⊗ graph variant: build an RSM from the
// grammar, build its boolean-matrix engine once, then repeatedly
// intersect it with the (growing) graph engine, transitive-close the
// product, and feed completed box derivations back into the graph as new
// labeled edges until a round adds nothing.
func TensorCFPQ(g *core.Graph, cfg *grammar.CFG, start, final []string, startVar string) ([]Result, error) {
	startName := startVar
	if startName == "" {
		startName = cfg.Start().String()
	}
	if len(start) == 0 {
		start = g.Vertices()
	}
	if len(final) == 0 {
		final = g.Vertices()
	}
	startSet := stringSet(start)
	finalSet := stringSet(final)

	ecfg := grammar.CFGToECFG(cfg)
	rsm, err := grammar.ECFGToRSM(ecfg)
	if err != nil {
		return nil, err
	}
	engineR := sbm.BuildFromRSM(rsm)

	vertices := g.Vertices()
	edges := make(map[labeledEdge]bool)
	for _, e := range g.Edges() {
		edges[labeledEdge{e.From, e.Label, e.To}] = true
	}
	for _, box := range rsm.BoxList() {
		dfa := box.DFA()
		if dfa.IsFinal(dfa.Start()) {
			for _, v := range vertices {
				edges[labeledEdge{v, box.Variable(), v}] = true
			}
		}
	}

	for {
		graphNFA := automaton.NewNFA()
		for _, v := range vertices {
			graphNFA.AddState(v)
			_ = graphNFA.SetStart(v)
			_ = graphNFA.SetFinal(v)
		}
		for e := range edges {
			graphNFA.AddTransition(e.from, e.label, e.to)
		}
		engineG := sbm.BuildFromNFA(graphNFA)

		product := engineG.Intersect(engineR)
		closure := product.TransitiveClosure()
		nR := engineR.Len()

		graphStates := engineG.States()
		finalIdx := make(map[int]bool)
		for _, q := range product.FinalIndices() {
			finalIdx[q] = true
		}

		added := false
		for _, p := range product.StartIndices() {
			for _, q := range closure.Row(p) {
				if !finalIdx[q] {
					continue
				}
				u, i := graphStates[p/nR], p%nR
				v, j := graphStates[q/nR], q%nR
				variable, ok := engineR.BoxVariable(i, j)
				if !ok {
					continue
				}
				e := labeledEdge{u, variable, v}
				if !edges[e] {
					edges[e] = true
					added = true
				}
			}
		}

		if !added {
			break
		}
	}

	var out []Result
	for _, u := range vertices {
		if !startSet[u] {
			continue
		}
		for _, v := range vertices {
			if finalSet[v] && edges[labeledEdge{u, startName, v}] {
				out = append(out, Result{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out, nil
}
