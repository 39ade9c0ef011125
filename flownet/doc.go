// Package flownet solves maximum-throughput problems on capacitated
// belt networks whose edges carry both lower and upper bounds and whose
// nodes may impose a total-throughput cap.
//
// 🚀 What does flownet do?
//
//	Given a network description (edges with [lo,hi] bounds, a supply map,
//	a single sink, optional per-node caps), it answers two questions:
//	  • Is the network feasible at all given the lower bounds and caps?
//	  • If so, how much can the declared sources deliver to the sink,
//	    and along which edges?
//	On infeasibility it emits a verifiable certificate: the minimum-cut
//	node set, the deficit amount, and the saturated edges/node caps that
//	block feasibility.
//
// ✨ Method:
//
//   - Node splitting — a capacitated node becomes an in/out index pair
//     joined by an internal arc, so node caps are ordinary arc capacities.
//   - Lower-bound elimination — the bounded problem is reduced to a
//     circulation feasibility check via demand super-nodes (the standard
//     circulation-with-lower-bounds transformation).
//   - Dinic max-flow — level-graph BFS plus blocking-flow search with
//     per-node resume cursors, run twice: once for lower-bound
//     feasibility, once for source→sink delivery.
//
// Determinism is a hard guarantee: node indices are assigned in
// lexicographic name order, arcs are inserted in a fixed order, and the
// blocking-flow search never iterates an unordered keyed collection.
// Two solves on byte-identical input produce byte-identical output.
//
// ⚙️ Usage:
//
//	p := &flownet.Problem{
//	    Edges:    []flownet.Edge{{From: "S", To: "T", Lo: 0, Hi: 10}},
//	    Sources:  map[string]float64{"S": 10},
//	    Sink:     "T",
//	    NodeCaps: nil,
//	}
//	res, err := flownet.Solve(p)
//	if err != nil {
//	    // non-domain fault (nil problem); never a domain infeasibility
//	}
//	if res.Status == flownet.StatusInfeasible {
//	    // res.CutReachable / res.Deficit hold the certificate
//	}
//
// A solver instance owns all mutable state for exactly one invocation;
// distinct solves are independent and may run on separate goroutines,
// but a single solve is strictly sequential.
//
// Complexity: O(E·V²) worst case per phase (Dinic), O(V+E) memory.
package flownet
