package flownet_test

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/beltflow/flownet"
)

// ExampleSolve solves the canonical bottlenecked chain: supply 10/min,
// but the A→B belt admits only 5/min.
func ExampleSolve() {
	p := &flownet.Problem{
		Edges: []flownet.Edge{
			{From: "S", To: "A", Lo: 0, Hi: 10},
			{From: "A", To: "B", Lo: 0, Hi: 5},
			{From: "B", To: "T", Lo: 0, Hi: 10},
		},
		Sources:  map[string]float64{"S": 10},
		Sink:     "T",
		NodeCaps: map[string]float64{"A": 8, "B": 10},
	}

	res, err := flownet.Solve(p)
	if err != nil {
		fmt.Println("fault:", err)

		return
	}

	fmt.Println(res.Status, res.MaxFlowPerMin)
	for _, f := range res.Flows {
		fmt.Printf("%s→%s %g\n", f.From, f.To, f.Flow)
	}
	// Output:
	// ok 5
	// S→A 5
	// A→B 5
	// B→T 5
}

// ExampleSolve_infeasible shows the certificate emitted for a belt
// whose bounds are inverted.
func ExampleSolve_infeasible() {
	p := &flownet.Problem{
		Edges:   []flownet.Edge{{From: "A", To: "B", Lo: 10, Hi: 5}},
		Sources: map[string]float64{"A": 10},
		Sink:    "B",
	}

	res, _ := flownet.Solve(p)
	doc, _ := json.Marshal(res)
	_, _ = os.Stdout.Write(doc)
	fmt.Println()
	// Output:
	// {"status":"infeasible","cut_reachable":[],"deficit":{"demand_balance":5,"tight_nodes":[],"tight_edges":[]}}
}
