package rpq

import (
	"github.com/kvryabov/langreach/automaton"
	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/regexlang"
	"github.com/kvryabov/langreach/sbm"
)

// Query implements §4.4's five-step RPQ pipeline: wrap G as an NFA over
// (start, final), parse regexText into a min-DFA, build SBM engines for
// both with the graph engine on the LEFT of the Kronecker product,
// transitive-close the product, and project nonzero (p, q) entries where p
// is a product start index and q a product final index back to graph
// vertices by dividing by the query automaton's state count.
//
// Returns ErrInvalidStateSet if start or final name vertices absent from
// g, and regexlang.ErrInvalidRegex if regexText does not parse.
func Query(g *core.Graph, regexText string, start, final []string) ([]Result, error) {
	graphNFA, err := automaton.GraphToNFA(g, start, final)
	if err != nil {
		return nil, err
	}
	queryDFA, err := regexlang.ToMinDFA(regexText)
	if err != nil {
		return nil, err
	}
	queryNFA := dfaToNFA(queryDFA)

	graphEngine := sbm.BuildFromNFA(graphNFA)
	queryEngine := sbm.BuildFromNFA(queryNFA)

	product := graphEngine.Intersect(queryEngine)
	closure := product.TransitiveClosure()

	nQuery := queryEngine.Len()
	finalSet := make(map[int]bool)
	for _, i := range product.FinalIndices() {
		finalSet[i] = true
	}

	graphStates := graphEngine.States()
	seen := make(map[Result]bool)
	var out []Result
	for _, p := range product.StartIndices() {
		for _, q := range closure.Row(p) {
			if !finalSet[q] {
				continue
			}
			r := Result{From: graphStates[p/nQuery], To: graphStates[q/nQuery]}
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}

	return out, nil
}

// dfaToNFA lifts a DFA into the automaton.NFA shape sbm.BuildFromNFA
// expects, since the RPQ pipeline's two SBM engines are built uniformly
// from NFAs regardless of whether the source was deterministic.
func dfaToNFA(d *automaton.DFA) *automaton.NFA {
	a := automaton.NewNFA()
	for _, s := range d.States() {
		a.AddState(s)
	}
	for _, s := range d.States() {
		for _, l := range d.Labels() {
			if to, ok := d.Step(s, l); ok {
				a.AddTransition(s, l, to)
			}
		}
	}
	_ = a.SetStart(d.Start())
	for _, f := range d.FinalStates() {
		_ = a.SetFinal(f)
	}
	return a
}
