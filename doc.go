// Package langreach answers language-constrained reachability queries —
// regular path queries (RPQ) and context-free path queries (CFPQ) — over
// in-memory labeled multigraphs.
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/      — labeled multigraph Graph, Vertex, Edge & thread-safe primitives
//	automaton/ — NFA/DFA model: determinization, minimization, graph→NFA conversion
//	regexlang/ — regular expressions over edge labels, compiled to a minimal DFA
//	sbm/       — sparse boolean adjacency matrices & the Kronecker-product engine
//	grammar/   — CFG/ECFG parsing, weak Chomsky normal form, recursive state machines
//	rpq/       — regular path query solver (automaton ⊗ automaton)
//	cfpq/      — Hellings, matrix and tensor context-free path query solvers, plus CYK
//
// cmd/pathquery is a thin non-interactive CLI demonstrating the library; it
// is not part of the importable API.
//
//	go get github.com/kvryabov/langreach
package langreach
