// Package rpq implements the regular path query solver (§4.4): given a
// graph G, a regex, and optional start/final vertex sets, it returns every
// pair (u, v) with u ∈ S, v ∈ F, and some path u→v in G whose edge-label
// sequence is accepted by the regex.
//
// Grounded in bozhnyukAlex/formal-lang-course's project/rpq.py (graph-on-
// the-left Kronecker order, then division of the product index by the
// query automaton's state count to recover the graph vertex), adapted to
// this module's automaton/sbm packages instead of pyformlang's
// BooleanMatrices.
package rpq
