package grammar_test

import (
	"testing"

	"github.com/kvryabov/langreach/grammar"
	"github.com/kvryabov/langreach/regexlang"
	"github.com/stretchr/testify/require"
)

func TestParseCFGInvalid(t *testing.T) {
	_, err := grammar.ParseCFG("", "")
	require.ErrorIs(t, err, grammar.ErrInvalidGrammar)

	_, err = grammar.ParseCFG("S a b", "")
	require.ErrorIs(t, err, grammar.ErrInvalidGrammar)

	_, err = grammar.ParseCFG("s -> a", "")
	require.ErrorIs(t, err, grammar.ErrInvalidGrammar)
}

func TestParseCFGDefaultsStartToS(t *testing.T) {
	c, err := grammar.ParseCFG("S -> a S b | epsilon", "")
	require.NoError(t, err)
	require.Equal(t, "S", c.Start().String())
	require.True(t, c.GeneratesEpsilon())
}

// Testable scenario S2's grammar.
func TestParseCFGMultiLineSameHead(t *testing.T) {
	c, err := grammar.ParseCFG("A -> a A\nA -> $\nB -> b B | b\n", "A")
	require.NoError(t, err)
	require.Len(t, c.Productions(), 4)
	require.True(t, c.GeneratesEpsilon())
}

// Universal invariant 4: is_wcnf(to_wcnf(C)) is true and L-preserving via
// the reachable-epsilon check.
func TestToWeakCNFIsWeakCNF(t *testing.T) {
	c, err := grammar.ParseCFG("S -> A S B S | epsilon\nA -> a\nB -> b", "")
	require.NoError(t, err)

	nf := c.ToWeakCNF()
	require.True(t, grammar.IsWeakCNF(nf, c))

	for _, p := range nf.Productions() {
		require.LessOrEqual(t, len(p.Body), 2)
	}
}

func TestToWeakCNFPreservesEpsilon(t *testing.T) {
	c, err := grammar.ParseCFG("S -> a S b S | epsilon", "")
	require.NoError(t, err)
	require.True(t, c.GeneratesEpsilon())

	nf := c.ToWeakCNF()
	require.True(t, grammar.IsWeakCNF(nf, c))

	foundEpsilon := false
	for _, p := range nf.Productions() {
		if p.Head.Equal(c.Start()) && len(p.Body) == 0 {
			foundEpsilon = true
		}
	}
	require.True(t, foundEpsilon)
}

// Universal invariant 8: ecfg_to_rsm(cfg_to_ecfg(C)) has one box per
// variable of C, each recognizing the union of bodies for that head.
func TestCFGToECFGToRSMRoundTrip(t *testing.T) {
	c, err := grammar.ParseCFG("A -> a A | $\nB -> b B | b\n", "")
	require.NoError(t, err)

	e := grammar.CFGToECFG(c)
	require.Len(t, e.Productions(), 2) // one body per head: A, B

	rsm, err := grammar.ECFGToRSM(e)
	require.NoError(t, err)
	require.Len(t, rsm.BoxList(), 2)

	var aBox, bBox *grammar.Box
	for i, box := range rsm.BoxList() {
		switch box.Variable() {
		case "A":
			aBox = &rsm.BoxList()[i]
		case "B":
			bBox = &rsm.BoxList()[i]
		}
	}
	require.NotNil(t, aBox)
	require.NotNil(t, bBox)

	// "A -> a A | $" gives A's box the body language {ε, a A} over the
	// grammar's terminals and variables; build that box independently
	// (different regex text, so a differently-shaped DFA before
	// minimization) and check Box.Equal recognizes the languages as equal
	// rather than merely comparing state names.
	aEquiv, err := grammar.ParseECFG("A -> $ | a A\n", "")
	require.NoError(t, err)
	aEquivRSM, err := grammar.ECFGToRSM(aEquiv)
	require.NoError(t, err)
	require.True(t, aBox.Equal(aEquivRSM.BoxList()[0]))

	// Same variable name, different language: an "A -> a*" box accepts the
	// one-symbol word "a", which A's box does not, so Equal must reject it.
	aStar, err := grammar.ParseECFG("A -> a*\n", "")
	require.NoError(t, err)
	aStarRSM, err := grammar.ECFGToRSM(aStar)
	require.NoError(t, err)
	require.False(t, aBox.Equal(aStarRSM.BoxList()[0]))

	// Same language, different variable name: Equal must still reject,
	// since box equality is variable-equality AND language-equivalence.
	bEquiv, err := grammar.ParseECFG("B -> $ | a A\n", "")
	require.NoError(t, err)
	bEquivRSM, err := grammar.ECFGToRSM(bEquiv)
	require.NoError(t, err)
	require.False(t, aBox.Equal(bEquivRSM.BoxList()[0]))
}

func TestParseECFGInvalid(t *testing.T) {
	_, err := grammar.ParseECFG("S a b", "")
	require.ErrorIs(t, err, grammar.ErrInvalidECFGFormat)

	_, err = grammar.ParseECFG("S -> a\nS -> b\n", "")
	require.ErrorIs(t, err, grammar.ErrInvalidECFGFormat)

	_, err = grammar.ParseECFG("S -> (a", "")
	require.ErrorIs(t, err, regexlang.ErrInvalidRegex)
}

func TestLoadCFGFileRejectsBadPaths(t *testing.T) {
	_, err := grammar.LoadCFGFile("", "")
	require.ErrorIs(t, err, grammar.ErrInvalidPath)

	_, err = grammar.LoadCFGFile("grammar.json", "")
	require.ErrorIs(t, err, grammar.ErrInvalidPath)

	_, err = grammar.LoadCFGFile("does-not-exist.txt", "")
	require.ErrorIs(t, err, grammar.ErrInvalidPath)
}
