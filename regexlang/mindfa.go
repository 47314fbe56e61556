package regexlang

import "github.com/kvryabov/langreach/automaton"

// ToMinDFA implements §4.2's regex→min-DFA pipeline end to end: parse text
// into a Thompson ε-NFA, determinize it via subset construction, then
// minimize. The result is canonical for the language text denotes — two
// regexes are language-equivalent iff their ToMinDFA results are
// structurally identical once both are minimized from the same starting
// convention.
func ToMinDFA(text string) (*automaton.DFA, error) {
	nfa, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return nfa.Determinize().Minimize(), nil
}
