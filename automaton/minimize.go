package automaton

import "sort"

// deadState is the implicit trap state used to complete a partial DFA's
// transition function before partition refinement; it never appears in
// Minimize's output: it is left out of every block's member list, and
// transitions into it are dropped, so the result stays partial wherever
// the input was (as Determinize's output usually is).
const deadState = "∅dead"

// Minimize collapses d to its minimal equivalent DFA using Hopcroft-style
// partition refinement: starting from the {final, non-final} partition,
// repeatedly split blocks whose members disagree on which block some label
// leads into, until no block can be split further. Each surviving block
// becomes one state of the result, named by its sorted member list so the
// mapping is reproducible across calls on the same input.
//
// Grounded in the determinize→minimize pipeline sketched in
// coregx-coregex's nfa/builder.go (compile stages feeding a composite DFA),
// generalized here from byte transitions to this package's string-label
// alphabet.
// Complexity: O(|Q| · |Σ| · log |Q|) in the classic Hopcroft formulation;
// this implementation uses the simpler O(|Q|² · |Σ|) iterate-to-fixpoint
// refinement, which is sufficient for the automaton sizes this engine
// produces (regex and RSM box DFAs, not general-purpose lexers).
func (d *DFA) Minimize() *DFA {
	states := d.States()
	labels := d.Labels()

	total := newTotalView(d, states, labels)

	// Initial partition: final vs non-final (including the dead state).
	partition := make(map[string]int)
	finalBlock, nonFinalBlock := 0, 1
	for _, s := range total.states {
		if d.IsFinal(s) {
			partition[s] = finalBlock
		} else {
			partition[s] = nonFinalBlock
		}
	}
	nextBlockID := 2

	for {
		changed := false
		signature := make(map[string]string, len(total.states))

		for _, s := range total.states {
			sig := blockOf(partition, s)
			for _, l := range labels {
				to := total.step(s, l)
				sig += "," + blockOf(partition, to)
			}
			signature[s] = sig
		}

		bySignature := make(map[int]map[string]bool)
		for _, s := range total.states {
			b := partition[s]
			if bySignature[b] == nil {
				bySignature[b] = make(map[string]bool)
			}
			bySignature[b][signature[s]] = true
		}

		newPartition := make(map[string]int, len(partition))
		sigToBlock := make(map[string]int)
		for _, s := range total.states {
			sig := signature[s]
			id, ok := sigToBlock[sig]
			if !ok {
				id = nextBlockID
				nextBlockID++
				sigToBlock[sig] = id
			}
			newPartition[s] = id
		}

		for b, sigs := range bySignature {
			_ = b
			if len(sigs) > 1 {
				changed = true
			}
		}

		partition = newPartition
		if !changed {
			break
		}
	}

	blockMembers := make(map[int][]string)
	for _, s := range total.states {
		if s == deadState {
			continue
		}
		b := partition[s]
		blockMembers[b] = append(blockMembers[b], s)
	}

	blockName := make(map[int]string)
	for b, members := range blockMembers {
		sort.Strings(members)
		blockName[b] = subsetName(members)
	}

	out := NewDFA()
	startBlock := partition[d.Start()]
	for b, name := range blockName {
		out.AddState(name)
		if b == startBlock {
			_ = out.SetStart(name)
		}
	}
	for b, members := range blockMembers {
		if d.IsFinal(members[0]) {
			_ = out.SetFinal(blockName[b])
		}
		for _, l := range labels {
			to := total.step(members[0], l)
			if to == deadState {
				continue
			}
			toBlock, ok := partition[to]
			if !ok {
				continue
			}
			if name, ok := blockName[toBlock]; ok {
				out.AddTransition(blockName[b], l, name)
			}
		}
	}

	return out
}

func blockOf(partition map[string]int, s string) string {
	if b, ok := partition[s]; ok {
		return itoa(b)
	}
	return "-"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// totalView completes d's transition function over deadState so partition
// refinement can treat every (state, label) pair uniformly.
type totalView struct {
	d      *DFA
	states []string
}

func newTotalView(d *DFA, states, labels []string) *totalView {
	_ = labels
	withDead := append(append([]string(nil), states...), deadState)
	return &totalView{d: d, states: withDead}
}

func (t *totalView) step(s, label string) string {
	if s == deadState {
		return deadState
	}
	to, ok := t.d.Step(s, label)
	if !ok {
		return deadState
	}
	return to
}
