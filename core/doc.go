// Package core defines the directed, edge-labeled multigraph that every
// other package in this module consumes.
//
// A Graph is G = (V, Σ, E) where V is a set of vertex IDs, Σ is a set of
// string labels, and E ⊆ V × Σ × V. Parallel edges between the same pair of
// vertices are permitted as long as they carry distinct edge IDs (labels may
// repeat). Vertices carry no attributes beyond their ID.
//
// Graph is safe for concurrent use: a muVert lock guards the vertex catalog
// and a separate muEdgeAdj lock guards the edge catalog and adjacency index.
// Vertex lookups never wait on edge operations; AddVertex, when it inserts a
// new vertex, briefly takes muEdgeAdj as well to create its adjacency entry.
// Individual path queries (rpq, cfpq) are themselves single-threaded
// per the module's concurrency model; the locking here only protects
// concurrent construction/inspection of the graph itself.
package core
