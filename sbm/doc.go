// Package sbm implements §4.1's Sparse Boolean Matrix engine: a per-label
// boolean adjacency matrix view of an automaton, with Kronecker-product
// intersection and path-doubling transitive closure. This is the shared
// kernel underneath the RPQ solver (rpq package) and the tensor CFPQ
// variant (cfpq package).
//
// Matrices are stored as nonzero-only row maps rather than dense bitsets:
// grounded in coregx-coregex's internal/sparse.SparseSet (an index-set
// representation sized to avoid scanning absent entries), generalized here
// from a 1-D set of indices to a 2-D set of (row, col) pairs since a
// boolean adjacency matrix is exactly a set of edges over the integer
// state space.
package sbm
