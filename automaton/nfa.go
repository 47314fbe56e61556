package automaton

// EpsilonClosure computes the ε-closure of a set of states: every state
// reachable from the set using zero or more ε-transitions. The input set is
// included in the result.
//
// Grounded in mabhi256-codecrafters-grep-go's app/nfa.epsilonClosure
// (stack-based DFS over ε-transitions), generalized from a single
// ExecutionContext worklist to a plain state-set worklist since automaton
// queries here never need capture-group bookkeeping.
// Complexity: O(|Q| + |ε-transitions|).
func (a *NFA) EpsilonClosure(states []string) map[string]struct{} {
	closure := make(map[string]struct{}, len(states))
	stack := append([]string(nil), states...)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := closure[cur]; ok {
			continue
		}
		closure[cur] = struct{}{}

		for next := range a.eps[cur] {
			if _, ok := closure[next]; !ok {
				stack = append(stack, next)
			}
		}
	}

	return closure
}

// Accepts reports whether the NFA accepts the given sequence of labels,
// by tracking the ε-closed set of active states and stepping it on each
// label in turn.
// Complexity: O(|word| · |Q|²) worst case.
func (a *NFA) Accepts(word []string) bool {
	active := a.EpsilonClosure(a.StartStates())

	for _, label := range word {
		next := make(map[string]struct{})
		for s := range active {
			for to := range a.trans[s][label] {
				next[to] = struct{}{}
			}
		}
		if len(next) == 0 {
			return false
		}

		closed := a.EpsilonClosure(setKeys(next))
		active = closed
	}

	for s := range active {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}

func setKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
