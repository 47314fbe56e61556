// Package cfpq implements context-free path querying (§4.6–§4.9): three
// independent algorithms — Hellings (worklist fixed point), Matrix
// (per-variable boolean matrices), and Tensor (RSM ⊗ graph product
// automaton) — that must agree on every (graph, grammar, start, final)
// input (Testable property 6), plus CYK grammar membership (§4.9,
// distinct from reachability).
//
// Grounded in bozhnyukAlex/formal-lang-course's tests/test_cfpq.py (which
// parametrizes the same test fixtures across matrix_cfpq, hellings_cfpq,
// and tensor_cfpq — the agreement property this package's tests check
// directly) and project/cyk.py (the CNF-based dp-table membership test).
package cfpq
