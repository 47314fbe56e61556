package rpq_test

import (
	"fmt"

	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/rpq"
)

// ExampleQuery_twoCycles runs the canonical two-cycle fixture (Testable
// scenario S1): an a-cycle of 3 extra vertices and a b-cycle of 2 extra
// vertices, both sharing vertex "0". The regex "a*|b" matches any run along
// the a-cycle or a single b-edge, such as 0 -b-> 4.
func ExampleQuery_twoCycles() {
	g := core.TwoCyclesGraph(3, 2, "a", "b")

	results, err := rpq.Query(g, "a*|b", nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	count := 0
	for _, r := range results {
		if r.From == "0" && r.To == "4" {
			count++
		}
	}
	fmt.Println(count)
	// Output:
	// 1
}
