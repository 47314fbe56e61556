package cfpq

import (
	"sort"

	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/grammar"
	"github.com/kvryabov/langreach/sbm"
)

// MatrixCFPQ implements §4.7's per-variable boolean matrix fixed point:
// one n×n matrix T_A per variable (n = |V|), seeded like Hellings, closed
// by T_C ← T_C ∨ (T_A · T_B) for every binary production C → AB until no
// matrix changes.
func MatrixCFPQ(g *core.Graph, cfg *grammar.CFG, start, final []string, startVar string) ([]Result, error) {
	wcnf := cfg.ToWeakCNF()

	startName := startVar
	if startName == "" {
		startName = cfg.Start().String()
	}
	if len(start) == 0 {
		start = g.Vertices()
	}
	if len(final) == 0 {
		final = g.Vertices()
	}
	startSet := stringSet(start)
	finalSet := stringSet(final)

	vertices := g.Vertices()
	n := len(vertices)
	idx := make(map[string]int, n)
	for i, v := range vertices {
		idx[v] = i
	}

	matrices := make(map[string]*sbm.BoolMatrix)
	get := func(name string) *sbm.BoolMatrix {
		if m, ok := matrices[name]; ok {
			return m
		}
		return sbm.NewBoolMatrix(n)
	}

	type binaryProd struct{ head, a, b string }
	var binaries []binaryProd

	for _, p := range wcnf.Productions() {
		head := p.Head.String()
		switch len(p.Body) {
		case 0:
			m := get(head)
			for i := 0; i < n; i++ {
				m.Set(i, i)
			}
			matrices[head] = m
		case 1:
			term := p.Body[0].Terminal
			m := get(head)
			for _, e := range g.Edges() {
				if e.Label == term {
					m.Set(idx[e.From], idx[e.To])
				}
			}
			matrices[head] = m
		case 2:
			binaries = append(binaries, binaryProd{head, p.Body[0].Variable.String(), p.Body[1].Variable.String()})
		}
	}

	for {
		changed := false
		for _, bp := range binaries {
			prod, _ := get(bp.a).Mul(get(bp.b))
			merged, _ := get(bp.head).Or(prod)
			if merged.NNZ() != get(bp.head).NNZ() {
				matrices[bp.head] = merged
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	result := get(startName)
	var out []Result
	for i, u := range vertices {
		if !startSet[u] {
			continue
		}
		for _, j := range result.Row(i) {
			v := vertices[j]
			if finalSet[v] {
				out = append(out, Result{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out, nil
}
