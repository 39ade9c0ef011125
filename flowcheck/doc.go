// Package flowcheck independently re-verifies a flownet result against
// its problem. It recomputes per-node inflow/outflow balance, per-edge
// bound compliance, node-cap compliance and the sink-sum identity from
// the emitted flows alone, sharing no state with the solver — a result
// that passes flowcheck is correct regardless of how it was produced.
//
// Usage:
//
//	res, _ := flownet.Solve(p)
//	if violations := flowcheck.Check(p, res); len(violations) > 0 {
//	    // each entry describes one broken constraint
//	}
package flowcheck
