package cfpq_test

import (
	"testing"

	"github.com/kvryabov/langreach/cfpq"
	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/grammar"
	"github.com/stretchr/testify/require"
)

func cycleGraph(n int, label string) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		from := itoa(i)
		to := itoa((i + 1) % n)
		_, _ = g.AddEdge(from, to, label)
	}
	return g
}

func itoa(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	return ""
}

func resultSet(rs []cfpq.Result) map[cfpq.Result]bool {
	m := make(map[cfpq.Result]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

// Testable property 6: Hellings, Matrix and Tensor must agree on every
// scenario below.
func runAll(t *testing.T, g *core.Graph, cfg *grammar.CFG, start, final []string, startVar string) map[cfpq.Result]bool {
	t.Helper()

	hellings, err := cfpq.Hellings(g, cfg, start, final, startVar)
	require.NoError(t, err)
	matrix, err := cfpq.MatrixCFPQ(g, cfg, start, final, startVar)
	require.NoError(t, err)
	tensor, err := cfpq.TensorCFPQ(g, cfg, start, final, startVar)
	require.NoError(t, err)

	want := resultSet(hellings)
	require.Equal(t, want, resultSet(matrix), "matrix variant disagrees with hellings")
	require.Equal(t, want, resultSet(tensor), "tensor variant disagrees with hellings")

	for _, alg := range []cfpq.Algorithm{cfpq.AlgHellings, cfpq.AlgMatrix, cfpq.AlgTensor} {
		got, err := cfpq.Run(alg, g, cfg, start, final, startVar)
		require.NoError(t, err)
		require.Equal(t, want, resultSet(got))
	}

	return want
}

// Scenario S2: A -> aA | $, B -> bB | b over a 3-cycle labeled "a".
func TestCFPQScenarioS2(t *testing.T) {
	g := cycleGraph(3, "a")
	cfg, err := grammar.ParseCFG("A -> a A | $\nB -> b B | b\n", "A")
	require.NoError(t, err)

	got := runAll(t, g, cfg, []string{"0"}, []string{"0"}, "A")
	require.Equal(t, map[cfpq.Result]bool{{From: "0", To: "0"}: true}, got)

	all := runAll(t, g, cfg, nil, nil, "A")
	want := map[cfpq.Result]bool{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want[cfpq.Result{From: itoa(i), To: itoa(j)}] = true
		}
	}
	require.Equal(t, want, all)

	empty := runAll(t, g, cfg, nil, nil, "B")
	require.Empty(t, empty)
}

// A grammar generating only the empty word, checked against a labeled
// 4-cycle: S -> $ should only relate each vertex to itself.
func TestCFPQEpsilonOnlyGrammar(t *testing.T) {
	g := cycleGraph(4, "b")
	cfg, err := grammar.ParseCFG("S -> $\n", "S")
	require.NoError(t, err)

	got := runAll(t, g, cfg, []string{"0", "1"}, []string{"0", "1"}, "S")
	require.Equal(t, map[cfpq.Result]bool{
		{From: "0", To: "0"}: true,
		{From: "1", To: "1"}: true,
	}, got)

	all := runAll(t, g, cfg, nil, nil, "S")
	want := map[cfpq.Result]bool{}
	for i := 0; i < 4; i++ {
		want[cfpq.Result{From: itoa(i), To: itoa(i)}] = true
	}
	require.Equal(t, want, all)
}

// Scenario S3: balanced-parentheses-shaped grammar over the canonical
// two-cycle fixture.
func TestCFPQScenarioS3(t *testing.T) {
	g := core.TwoCyclesGraph(2, 1, "a", "b")
	cfg, err := grammar.ParseCFG(
		"S -> A B\nS -> A S1\nS1 -> S B\nA -> a\nB -> b\n", "S")
	require.NoError(t, err)

	all := runAll(t, g, cfg, nil, nil, "S")
	require.Equal(t, map[cfpq.Result]bool{
		{From: "0", To: "0"}: true,
		{From: "0", To: "3"}: true,
		{From: "2", To: "0"}: true,
		{From: "2", To: "3"}: true,
		{From: "1", To: "0"}: true,
		{From: "1", To: "3"}: true,
	}, all)

	aOnly := runAll(t, g, cfg, nil, nil, "A")
	require.Equal(t, map[cfpq.Result]bool{
		{From: "0", To: "1"}: true,
		{From: "1", To: "2"}: true,
		{From: "2", To: "0"}: true,
	}, aOnly)

	bOnly := runAll(t, g, cfg, nil, nil, "B")
	require.Equal(t, map[cfpq.Result]bool{
		{From: "3", To: "0"}: true,
		{From: "0", To: "3"}: true,
	}, bOnly)

	fromZero := runAll(t, g, cfg, []string{"0"}, []string{"0"}, "S")
	require.Equal(t, map[cfpq.Result]bool{{From: "0", To: "0"}: true}, fromZero)
}

// Testable property 7: cyk(cfg, "") == cfg.GeneratesEpsilon, and a grammar
// generating balanced a^n b^n correctly classifies membership.
func TestCYKMembership(t *testing.T) {
	cfg, err := grammar.ParseCFG("S -> a S b S | $\n", "S")
	require.NoError(t, err)

	require.True(t, cfg.GeneratesEpsilon())
	require.True(t, cfpq.CYK(cfg, nil, ""))

	require.True(t, cfpq.CYK(cfg, []string{"a", "a", "b", "b"}, ""))
	require.True(t, cfpq.CYK(cfg, []string{"a", "b", "a", "b"}, ""))
	require.False(t, cfpq.CYK(cfg, []string{"a", "b", "a"}, ""))
}

func TestCYKEmptyWordNonNullableGrammar(t *testing.T) {
	cfg, err := grammar.ParseCFG("S -> a S | a\n", "S")
	require.NoError(t, err)

	require.False(t, cfg.GeneratesEpsilon())
	require.False(t, cfpq.CYK(cfg, nil, ""))
	require.True(t, cfpq.CYK(cfg, []string{"a", "a", "a"}, ""))
}
