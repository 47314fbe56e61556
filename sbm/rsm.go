package sbm

import "github.com/kvryabov/langreach/automaton"

// Box is a single boxed DFA keyed by the nonterminal it represents. The
// grammar package's RSM type implements BoxSource directly so this package
// never needs to import grammar (cfpq imports both and wires them
// together), keeping the sbm/grammar dependency one-directional.
type Box interface {
	Variable() string
	DFA() *automaton.DFA
}

// BoxSource supplies the boxes of an RSM.
type BoxSource interface {
	Boxes() []Box
}

// BuildFromRSM builds the disjoint-union engine over every box's DFA
// states, per §4.1's "Build from RSM" note: states are renamed
// "<state>#<variable>" to disambiguate identically-named states across
// boxes, box start/final states become engine start/final states, and the
// returned box-pair map records which variable each (box-start-index,
// box-final-index) pair represents — consumed by the tensor CFPQ variant
// to recognize when a product-automaton run completes a box.
func BuildFromRSM(r BoxSource) *Engine {
	a := automaton.NewNFA()
	type pair struct{ start, final string }
	var boxPairs []struct {
		v string
		p pair
	}

	for _, box := range r.Boxes() {
		v := box.Variable()
		dfa := box.DFA()
		rename := func(s string) string { return s + "#" + v }

		for _, s := range dfa.States() {
			a.AddState(rename(s))
		}
		for _, s := range dfa.States() {
			for _, l := range dfa.Labels() {
				if to, ok := dfa.Step(s, l); ok {
					a.AddTransition(rename(s), l, rename(to))
				}
			}
		}

		start := rename(dfa.Start())
		_ = a.SetStart(start)
		for _, f := range dfa.FinalStates() {
			fin := rename(f)
			_ = a.SetFinal(fin)
			boxPairs = append(boxPairs, struct {
				v string
				p pair
			}{v, pair{start, fin}})
		}
	}

	e := BuildFromNFA(a)
	e.boxPair = make(map[[2]int]string, len(boxPairs))
	for _, bp := range boxPairs {
		e.boxPair[[2]int{e.index[bp.p.start], e.index[bp.p.final]}] = bp.v
	}

	return e
}
