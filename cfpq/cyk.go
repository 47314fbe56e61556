package cfpq

import "github.com/kvryabov/langreach/grammar"

// CYK implements §4.9's membership test: does startVar (or the grammar's
// own start symbol when startVar is empty) generate word under cfg?
//
// Grounded in original_source/project/cyk.py's dp_matrix approach: convert
// to weak CNF, fill an upper-triangular table of variable names by
// increasing span size, then check membership of the start symbol in the
// top span. The empty word is a special case (Testable property 7):
// cyk(cfg, "") == cfg.GeneratesEpsilon().
func CYK(cfg *grammar.CFG, word []string, startVar string) bool {
	startName := startVar
	if startName == "" {
		startName = cfg.Start().String()
	}

	if len(word) == 0 {
		if startName != cfg.Start().String() {
			return false
		}
		return cfg.GeneratesEpsilon()
	}

	wcnf := cfg.ToWeakCNF()

	var termProds []grammar.Production
	var binProds []grammar.Production
	for _, p := range wcnf.Productions() {
		switch len(p.Body) {
		case 1:
			termProds = append(termProds, p)
		case 2:
			binProds = append(binProds, p)
		}
	}

	n := len(word)
	dp := make([][]map[string]bool, n)
	for i := range dp {
		dp[i] = make([]map[string]bool, n)
		for j := range dp[i] {
			dp[i][j] = make(map[string]bool)
		}
	}

	for i := 0; i < n; i++ {
		for _, p := range termProds {
			if p.Body[0].Terminal == word[i] {
				dp[i][i][p.Head.String()] = true
			}
		}
	}

	for span := 1; span < n; span++ {
		for i := 0; i+span < n; i++ {
			j := i + span
			for k := i; k < j; k++ {
				for _, p := range binProds {
					if dp[i][k][p.Body[0].Variable.String()] && dp[k+1][j][p.Body[1].Variable.String()] {
						dp[i][j][p.Head.String()] = true
					}
				}
			}
		}
	}

	return dp[0][n-1][startName]
}
