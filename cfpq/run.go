package cfpq

import (
	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/grammar"
)

// Run dispatches to the Algorithm variant selected by alg. All three
// variants are required to agree for the same input (Testable property
// 6) — callers pick whichever fits their performance profile.
func Run(alg Algorithm, g *core.Graph, cfg *grammar.CFG, start, final []string, startVar string) ([]Result, error) {
	switch alg {
	case AlgMatrix:
		return MatrixCFPQ(g, cfg, start, final, startVar)
	case AlgTensor:
		return TensorCFPQ(g, cfg, start, final, startVar)
	default:
		return Hellings(g, cfg, start, final, startVar)
	}
}
