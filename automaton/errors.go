package automaton

import "errors"

// Sentinel errors for automaton construction and queries.
var (
	// ErrInvalidStateSet indicates a start or final set referenced a state
	// that does not belong to the automaton (or, for GraphToNFA, a vertex
	// that is not in the source graph).
	ErrInvalidStateSet = errors.New("automaton: invalid state set")

	// ErrEmptyAutomaton indicates an operation requires at least one state
	// but the automaton has none.
	ErrEmptyAutomaton = errors.New("automaton: automaton has no states")
)
