package cfpq

import (
	"sort"

	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/grammar"
)

type triple struct {
	a, u, v string
}

// Hellings implements §4.6's worklist fixed point directly over a weak-CNF
// grammar: seed triples from ε- and terminal-productions, then repeatedly
// extend via binary productions until the worklist drains.
//
// Grounded in the hellings_cfpq fixture exercised by
// bozhnyukAlex/formal-lang-course's tests/test_cfpq.py, reimplemented here
// over this module's core.Graph/grammar.CFG instead of networkx/pyformlang.
func Hellings(g *core.Graph, cfg *grammar.CFG, start, final []string, startVar string) ([]Result, error) {
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

	// prodsByFirst[X] holds (head, Y) for every production head -> X Y;
	// prodsBySecond[Y] holds (head, X) for the same productions, keyed by
	// the other operand — this lets the worklist step look up both
	// extension directions spec §4.6 describes in O(1) per candidate.
	prodsByFirst := make(map[string][]struct{ head, other string })
	prodsBySecond := make(map[string][]struct{ head, other string })

	for _, p := range wcnf.Productions() {
		switch len(p.Body) {
		case 0, 1:
		case 2:
			x, y := p.Body[0].Variable.String(), p.Body[1].Variable.String()
			head := p.Head.String()
			prodsByFirst[x] = append(prodsByFirst[x], struct{ head, other string }{head, y})
			prodsBySecond[y] = append(prodsBySecond[y], struct{ head, other string }{head, x})
		}
	}

	present := make(map[triple]bool)
	firstIndex := make(map[string]map[string][]string)  // [var][u] -> []v
	secondIndex := make(map[string]map[string][]string) // [var][v] -> []u
	var worklist []triple

	add := func(a, u, v string) {
		t := triple{a, u, v}
		if present[t] {
			return
		}
		present[t] = true
		worklist = append(worklist, t)

		if firstIndex[a] == nil {
			firstIndex[a] = make(map[string][]string)
		}
		firstIndex[a][u] = append(firstIndex[a][u], v)
		if secondIndex[a] == nil {
			secondIndex[a] = make(map[string][]string)
		}
		secondIndex[a][v] = append(secondIndex[a][v], u)
	}

	for _, p := range wcnf.Productions() {
		head := p.Head.String()
		switch len(p.Body) {
		case 0:
			for _, v := range g.Vertices() {
				add(head, v, v)
			}
		case 1:
			term := p.Body[0].Terminal
			for _, e := range g.Edges() {
				if e.Label == term {
					add(head, e.From, e.To)
				}
			}
		}
	}

	for len(worklist) > 0 {
		t := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		// existing (B, v, w) and production C -> AB, A = t.a
		for _, entry := range prodsByFirst[t.a] {
			for _, w := range firstIndex[entry.other][t.v] {
				add(entry.head, t.u, w)
			}
		}
		// existing (B, w, u) and production C -> BA, A = t.a
		for _, entry := range prodsBySecond[t.a] {
			for _, w := range secondIndex[entry.other][t.u] {
				add(entry.head, w, t.v)
			}
		}
	}

	var out []Result
	for t := range present {
		if t.a != startName || !startSet[t.u] || !finalSet[t.v] {
			continue
		}
		out = append(out, Result{From: t.u, To: t.v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out, nil
}
