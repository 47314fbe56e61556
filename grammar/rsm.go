package grammar

import (
	"github.com/kvryabov/langreach/automaton"
	"github.com/kvryabov/langreach/regexlang"
	"github.com/kvryabov/langreach/sbm"
)

// Box pairs a variable with the minimal DFA recognizing its ECFG body.
// Box equality is variable equality AND DFA language-equivalence (§3's RSM
// invariant), grounded in rsm_utils.Box.__eq__.
type Box struct {
	variable Variable
	dfa      *automaton.DFA
}

// Variable returns the box's nonterminal.
func (b Box) Variable() string { return b.variable.name }

// DFA returns the box's minimal DFA. Implements sbm.Box.
func (b Box) DFA() *automaton.DFA { return b.dfa }

// Equal reports whether b and other represent the same variable and
// language-equivalent DFAs (§3's RSM invariant). Variable identity is
// compared by name, not by interned ID: boxes compared this way routinely
// come from independently-built RSMs with their own symbolTable, where IDs
// are only dense and stable within one table (grammar/symbol.go), not
// comparable across grammars. Language equivalence is checked directly by
// a product walk over both DFAs rather than by comparing minimized state
// names: two DFAs for the same language built from differently-named
// states minimize to isomorphic but differently-labeled automata, so name
// comparison alone would wrongly reject them.
func (b Box) Equal(other Box) bool {
	if b.variable.name != other.variable.name {
		return false
	}
	return dfaLanguageEqual(b.dfa, other.dfa)
}

// dfaPos tracks one DFA's position during the product walk: state is only
// meaningful while alive; once a DFA has no transition for some label it
// falls into the implicit dead state (alive=false), which is always
// non-accepting and self-looping on every label.
type dfaPos struct {
	state string
	alive bool
}

func (p dfaPos) step(d *automaton.DFA, label string) dfaPos {
	if !p.alive {
		return p
	}
	to, ok := d.Step(p.state, label)
	if !ok {
		return dfaPos{alive: false}
	}
	return dfaPos{state: to, alive: true}
}

func (p dfaPos) isFinal(d *automaton.DFA) bool {
	return p.alive && d.IsFinal(p.state)
}

// dfaLanguageEqual reports whether a and b accept the same language, via
// the standard product-automaton equivalence check: walk pairs of
// positions breadth-first from (a.Start, b.Start) over the union of both
// alphabets; if any reached pair disagrees on acceptance, the languages
// differ; if the walk exhausts all reachable pairs without a
// disagreement, the languages are equal.
func dfaLanguageEqual(a, b *automaton.DFA) bool {
	labels := unionLabels(a.Labels(), b.Labels())

	start := [2]dfaPos{{state: a.Start(), alive: true}, {state: b.Start(), alive: true}}
	if start[0].isFinal(a) != start[1].isFinal(b) {
		return false
	}

	visited := map[[2]dfaPos]bool{start: true}
	queue := [][2]dfaPos{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, l := range labels {
			next := [2]dfaPos{cur[0].step(a, l), cur[1].step(b, l)}
			if next[0].isFinal(a) != next[1].isFinal(b) {
				return false
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return true
}

func unionLabels(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, l := range a {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	for _, l := range b {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}

// RSM is a recursive state machine: a start variable plus a finite
// collection of boxes, one per grammar variable.
type RSM struct {
	start Variable
	boxes []Box
}

// Start returns the RSM's start variable.
func (r *RSM) Start() Variable { return r.start }

// BoxList returns the RSM's boxes.
func (r *RSM) BoxList() []Box {
	return append([]Box(nil), r.boxes...)
}

// Boxes implements sbm.BoxSource so an RSM can feed sbm.BuildFromRSM
// directly without sbm importing this package.
func (r *RSM) Boxes() []sbm.Box {
	out := make([]sbm.Box, len(r.boxes))
	for i, b := range r.boxes {
		out[i] = b
	}
	return out
}

// ECFGToRSM builds a box (A, min_dfa(r)) for every ECFG production A → r,
// per §4.5's ECFG→RSM rule.
//
// Grounded in ecfg_utils.ecfg_to_rsm.
func ECFGToRSM(e *ECFG) (*RSM, error) {
	boxes := make([]Box, 0, len(e.productions))
	for _, p := range e.productions {
		dfa, err := regexlang.ToMinDFA(p.Body)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, Box{variable: p.Head, dfa: dfa})
	}
	return &RSM{start: e.start, boxes: boxes}, nil
}
