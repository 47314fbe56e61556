package cfpq_test

import (
	"fmt"

	"github.com/kvryabov/langreach/cfpq"
	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/grammar"
)

// ExampleRun_hellingsOnCycle runs the A-nonterminal half of Testable
// scenario S2: a 3-vertex cycle labeled "a", grammar A -> aA | epsilon,
// queried for the full vertex-pair relation under A.
func ExampleRun_hellingsOnCycle() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		from := fmt.Sprintf("%d", i)
		to := fmt.Sprintf("%d", (i+1)%3)
		g.AddEdge(from, to, "a")
	}

	cfg, err := grammar.ParseCFG("A -> a A | epsilon\n", "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	results, err := cfpq.Run(cfpq.AlgHellings, g, cfg, nil, nil, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(results))
	// Output:
	// 9
}
