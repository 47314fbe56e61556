package sbm

import (
	"sort"

	"github.com/kvryabov/langreach/automaton"
)

// Engine is a boolean-matrix engine state (§3): a family of per-label
// boolean matrices sharing one state indexing, plus the start/final index
// sets, plus — for RSM-derived engines — the box-pair→variable map used by
// the tensor CFPQ variant.
//
// An Engine is immutable after construction: BuildFromNFA, Intersect, and
// BuildFromRSM are the only constructors; no method here mutates an
// existing Engine's matrices.
type Engine struct {
	states  []string
	index   map[string]int
	mats    map[string]*BoolMatrix
	start   map[int]struct{}
	final   map[int]struct{}
	boxPair map[[2]int]string
}

// States returns the engine's state names in stable enumeration order
// (index i is states[i]).
func (e *Engine) States() []string {
	return append([]string(nil), e.states...)
}

// Len returns the number of states n.
func (e *Engine) Len() int {
	return len(e.states)
}

// Labels returns the distinct labels with a nonempty matrix, sorted.
func (e *Engine) Labels() []string {
	out := make([]string, 0, len(e.mats))
	for l := range e.mats {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Matrix returns the boolean matrix for label, or an all-false matrix if
// label never occurs.
func (e *Engine) Matrix(label string) *BoolMatrix {
	if m, ok := e.mats[label]; ok {
		return m
	}
	return NewBoolMatrix(len(e.states))
}

// StartIndices returns the start-state indices, sorted.
func (e *Engine) StartIndices() []int {
	return sortedInts(e.start)
}

// FinalIndices returns the final-state indices, sorted.
func (e *Engine) FinalIndices() []int {
	return sortedInts(e.final)
}

// IsStart reports whether index i is a start index.
func (e *Engine) IsStart(i int) bool {
	_, ok := e.start[i]
	return ok
}

// IsFinal reports whether index i is a final index.
func (e *Engine) IsFinal(i int) bool {
	_, ok := e.final[i]
	return ok
}

// BoxVariable returns the nonterminal a (startIdx, finalIdx) box pair
// represents, for engines built via BuildFromRSM. ok is false for engines
// that carry no box-pair map (i.e. built from a plain NFA).
func (e *Engine) BoxVariable(startIdx, finalIdx int) (string, bool) {
	v, ok := e.boxPair[[2]int{startIdx, finalIdx}]
	return v, ok
}

func sortedInts(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for i := range m {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// BuildFromNFA enumerates δ of a and allocates one boolean matrix per
// label, sized to |Q|, per §4.1's Construction rule. State indexing is a's
// sorted state order so it stays stable for the engine's lifetime.
// ε-transitions of a are folded into the label matrices: from --label--> to
// is set whenever a path ε* label ε* leads from from to to, and a state is
// final whenever its ε-closure holds a final state, so the engine accepts
// L(a).
func BuildFromNFA(a *automaton.NFA) *Engine {
	states := a.States()
	index := make(map[string]int, len(states))
	for i, s := range states {
		index[s] = i
	}

	mats := make(map[string]*BoolMatrix)
	for _, from := range states {
		for mid := range a.EpsilonClosure([]string{from}) {
			for _, label := range a.Labels() {
				for _, to := range a.Step(mid, label) {
					for end := range a.EpsilonClosure([]string{to}) {
						m, ok := mats[label]
						if !ok {
							m = NewBoolMatrix(len(states))
							mats[label] = m
						}
						m.Set(index[from], index[end])
					}
				}
			}
		}
	}

	start := make(map[int]struct{})
	for _, s := range a.StartStates() {
		start[index[s]] = struct{}{}
	}
	final := make(map[int]struct{})
	for _, s := range states {
		for c := range a.EpsilonClosure([]string{s}) {
			if a.IsFinal(c) {
				final[index[s]] = struct{}{}
			}
		}
	}

	return &Engine{states: states, index: index, mats: mats, start: start, final: final}
}

// ToNFA rebuilds an automaton.NFA equivalent to e: one state per engine
// index, one transition per true matrix entry, start/final carried over.
func (e *Engine) ToNFA() *automaton.NFA {
	a := automaton.NewNFA()
	for _, s := range e.states {
		a.AddState(s)
	}
	for label, m := range e.mats {
		for i, row := range m.rows {
			for j := range row {
				a.AddTransition(e.states[i], label, e.states[j])
			}
		}
	}
	for i := range e.start {
		_ = a.SetStart(e.states[i])
	}
	for i := range e.final {
		_ = a.SetFinal(e.states[i])
	}
	return a
}

// Intersect computes the Kronecker-product engine recognizing L(e) ∩
// L(other), per §4.1's Intersection rule: labels present in only one side
// are dropped, state (i,j) maps to index i·n2+j, and (i,j) is a start
// (resp. final) index iff both i and j are start (resp. final) indices of
// their own engine.
func (e *Engine) Intersect(other *Engine) *Engine {
	n2 := other.Len()

	shared := make(map[string]struct{})
	for _, l := range e.Labels() {
		if _, ok := other.mats[l]; ok {
			shared[l] = struct{}{}
		}
	}

	mats := make(map[string]*BoolMatrix, len(shared))
	for l := range shared {
		mats[l] = e.mats[l].Kron(other.mats[l])
	}

	start := make(map[int]struct{})
	for i := range e.start {
		for j := range other.start {
			start[i*n2+j] = struct{}{}
		}
	}
	final := make(map[int]struct{})
	for i := range e.final {
		for j := range other.final {
			final[i*n2+j] = struct{}{}
		}
	}

	states := make([]string, e.Len()*n2)
	index := make(map[string]int, len(states))
	for i, si := range e.states {
		for j, sj := range other.states {
			name := si + "," + sj
			idx := i*n2 + j
			states[idx] = name
			index[name] = idx
		}
	}

	return &Engine{states: states, index: index, mats: mats, start: start, final: final}
}

// TransitiveClosure computes T = Σ_σ M_σ then iterates T ← T ∨ (T·T) until
// the nonzero count stabilizes across two consecutive iterations, per
// §4.1's Transitive closure rule. If e has no labels, returns a 1×1
// all-false matrix (the documented edge case).
// Complexity: ≤ ⌈log₂ n⌉ iterations of boolean matrix multiply.
func (e *Engine) TransitiveClosure() *BoolMatrix {
	if len(e.mats) == 0 {
		return NewBoolMatrix(1)
	}

	n := e.Len()
	t := NewBoolMatrix(n)
	for _, m := range e.mats {
		t, _ = t.Or(m)
	}

	for {
		sq, _ := t.Mul(t)
		next, _ := t.Or(sq)
		if next.NNZ() == t.NNZ() {
			t = next
			break
		}
		t = next
	}

	return t
}
