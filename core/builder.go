package core

import "strconv"

// TwoCyclesGraph builds the canonical fixture from Testable scenario S1: two
// cycles sharing vertex "0". The first cycle adds firstN non-shared vertices
// "1".."firstN" and closes 0→1→…→firstN→0 with edges labeled firstLabel; the
// second cycle adds secondN further vertices "firstN+1".."firstN+secondN"
// and closes 0→(firstN+1)→…→(firstN+secondN)→0 with edges labeled
// secondLabel.
//
// Grounded in the original Python project's graphs.generate_two_cycles_graph
// (cfpq_data.labeled_two_cycles_graph), adapted to this module's core.Graph.
// Complexity: O(firstN + secondN).
func TwoCyclesGraph(firstN, secondN int, firstLabel, secondLabel string) *Graph {
	g := NewGraph()

	prev := "0"
	for i := 1; i <= firstN; i++ {
		cur := strconv.Itoa(i)
		_, _ = g.AddEdge(prev, cur, firstLabel)
		prev = cur
	}
	_, _ = g.AddEdge(prev, "0", firstLabel)

	prev = "0"
	for i := 1; i <= secondN; i++ {
		cur := strconv.Itoa(firstN + i)
		_, _ = g.AddEdge(prev, cur, secondLabel)
		prev = cur
	}
	_, _ = g.AddEdge(prev, "0", secondLabel)

	return g
}
