package rpq_test

import (
	"testing"

	"github.com/kvryabov/langreach/automaton"
	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/rpq"
	"github.com/stretchr/testify/require"
)

// Testable scenario S1 — RPQ on two-cycle graph.
func TestQueryTwoCyclesScenario(t *testing.T) {
	g := core.TwoCyclesGraph(3, 2, "a", "b")

	results, err := rpq.Query(g, "a*|b", g.Vertices(), g.Vertices())
	require.NoError(t, err)

	want := map[rpq.Result]bool{}
	for i := 0; i <= 3; i++ {
		for j := 0; j <= 3; j++ {
			want[rpq.Result{From: itoa(i), To: itoa(j)}] = true
		}
	}
	want[rpq.Result{From: "0", To: "4"}] = true
	want[rpq.Result{From: "4", To: "5"}] = true
	want[rpq.Result{From: "5", To: "0"}] = true

	got := map[rpq.Result]bool{}
	for _, r := range results {
		got[r] = true
	}

	require.Equal(t, want, got)
}

// §4.3's default: an omitted start/final set falls back to every vertex
// of the graph, so a nil/nil call must return the same pairs as passing
// g.Vertices() explicitly (mirrored by TestQueryTwoCyclesScenario above).
func TestQueryDefaultsStartFinalToAllVertices(t *testing.T) {
	g := core.TwoCyclesGraph(3, 2, "a", "b")

	explicit, err := rpq.Query(g, "a*|b", g.Vertices(), g.Vertices())
	require.NoError(t, err)

	defaulted, err := rpq.Query(g, "a*|b", nil, nil)
	require.NoError(t, err)

	toSet := func(rs []rpq.Result) map[rpq.Result]bool {
		m := make(map[rpq.Result]bool, len(rs))
		for _, r := range rs {
			m[r] = true
		}
		return m
	}
	require.NotEmpty(t, defaulted)
	require.Equal(t, toSet(explicit), toSet(defaulted))
}

func TestQueryInvalidStateSet(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))

	_, err := rpq.Query(g, "a", []string{"missing"}, []string{"0"})
	require.ErrorIs(t, err, automaton.ErrInvalidStateSet)
}

func TestQueryInvalidRegex(t *testing.T) {
	g := core.TwoCyclesGraph(1, 1, "a", "b")
	_, err := rpq.Query(g, "(a", g.Vertices(), g.Vertices())
	require.Error(t, err)
}

func itoa(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	return ""
}
