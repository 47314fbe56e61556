package automaton

import "strings"

// subsetName renders a set of NFA states (given sorted) as a single DFA
// state name. Two distinct subsets render to distinct names as long as no
// member name contains the "|" separator, which holds for the "n<k>" state
// names regexlang's parser produces. Minimize also uses it to name blocks
// of DFA states, whose names are themselves "|"-joined subsets; distinct
// names are not guaranteed there.
func subsetName(sorted []string) string {
	if len(sorted) == 0 {
		return "∅"
	}
	return strings.Join(sorted, "|")
}

// Determinize builds the minimal-state-count-agnostic DFA equivalent to a
// via the standard subset construction: each DFA state is the ε-closed set
// of NFA states reachable by some input word, and δ(S, label) is the
// ε-closure of the union of δ(q, label) over q ∈ S.
//
// Grounded in the subset-construction reference in
// mabhi256-codecrafters-grep-go and coregx-coregex's compile pipeline
// (nfa → dfa via state-set worklist), adapted to this package's
// string-named, multi-label automaton model.
// Complexity: O(2^|Q| · |Σ|) worst case, as with any subset construction.
func (a *NFA) Determinize() *DFA {
	d := NewDFA()

	startSet := a.EpsilonClosure(a.StartStates())
	startSorted := setKeys(startSet)
	sortStrings(startSorted)
	startName := subsetName(startSorted)

	d.AddState(startName)
	_ = d.SetStart(startName)
	if containsFinal(a, startSorted) {
		_ = d.SetFinal(startName)
	}

	seen := map[string]bool{startName: true}
	worklist := [][]string{startSorted}

	labels := a.Labels()

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		curName := subsetName(cur)

		for _, label := range labels {
			next := make(map[string]struct{})
			for _, s := range cur {
				for to := range a.trans[s][label] {
					next[to] = struct{}{}
				}
			}
			if len(next) == 0 {
				continue
			}

			closed := a.EpsilonClosure(setKeys(next))
			sorted := setKeys(closed)
			sortStrings(sorted)
			name := subsetName(sorted)

			d.AddTransition(curName, label, name)

			if !seen[name] {
				seen[name] = true
				if containsFinal(a, sorted) {
					_ = d.SetFinal(name)
				}
				worklist = append(worklist, sorted)
			}
		}
	}

	return d
}

func containsFinal(a *NFA, states []string) bool {
	for _, s := range states {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}

func sortStrings(s []string) {
	// small-alphabet insertion sort keeps this allocation-free for the
	// typical few-state subsets seen in practice; falls back correctly
	// for larger sets too.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
