// Package automaton models finite automata A = (Q, Σ, δ, S, F) over a
// string alphabet, with a stable integer indexing of Q, and provides the
// two constructions spec.md §4.2/§4.3 calls out: subset-construction
// determinization plus Hopcroft-style minimization, and wrapping a
// core.Graph as an NFA.
//
// States are named with strings so that RSM-derived engines (sbm package)
// can disambiguate states with the "<state>#<variable>" convention from
// §4.1's "Build from RSM" note, and so graph vertices can be used directly
// as NFA state names by rpq/cfpq.
//
// Grounded in the Thompson-construction NFA models of
// mabhi256-codecrafters-grep-go's app/nfa and coregx-coregex's nfa package
// (state/transition shape, epsilon handling), generalized from a byte
// alphabet to an arbitrary label alphabet.
package automaton
