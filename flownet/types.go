// Package flownet public types: the problem description consumed by
// Solve, the result/certificate shapes it emits, and solver options.
package flownet

import "encoding/json"

// Status values carried by Result.Status.
const (
	// StatusOK marks a feasible solve with a complete flow assignment.
	StatusOK = "ok"
	// StatusInfeasible marks a provably infeasible network; the Result
	// carries a minimum-cut certificate.
	StatusInfeasible = "infeasible"
)

// Edge is one declared belt: directed from→to with a required minimum
// throughput Lo and a maximum throughput Hi. Hi ≥ Lo ≥ 0 must hold;
// a violation is a terminal infeasibility, not a construction error.
type Edge struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Lo   float64 `json:"lo"`
	Hi   float64 `json:"hi"`
}

// Problem is the full network description.
//
// Fields:
//   - Edges    — declared belts, in declaration order. Output flows are
//     reported in this same order.
//   - Sources  — node name → non-negative supply per minute.
//   - Sink     — the single delivery target.
//   - NodeCaps — optional node name → total-throughput cap. A capped
//     node that is neither a source nor the sink is split internally.
type Problem struct {
	Edges    []Edge             `json:"edges"`
	Sources  map[string]float64 `json:"sources"`
	Sink     string             `json:"sink"`
	NodeCaps map[string]float64 `json:"node_caps,omitempty"`
}

// EdgeFlow is the assigned flow on one declared edge.
type EdgeFlow struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Flow float64 `json:"flow"`
}

// TightEdge is a saturated edge at the infeasibility cut boundary.
// FlowNeeded is the capacity required to fully saturate the edge,
// inclusive of its lower bound.
type TightEdge struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	FlowNeeded float64 `json:"flow_needed"`
}

// Deficit quantifies an infeasibility: the missing amount and the
// saturated edges/node caps that block it.
type Deficit struct {
	// DemandBalance is the required total minus the achieved flow,
	// rounded to 9 decimal places.
	DemandBalance float64 `json:"demand_balance"`
	// TightNodes lists split nodes whose internal capacity arc is
	// saturated, lexicographically sorted.
	TightNodes []string `json:"tight_nodes"`
	// TightEdges lists saturated cut-crossing edges.
	TightEdges []TightEdge `json:"tight_edges"`
}

// Result is the outcome of one solve. Exactly one of the two field
// groups is populated, keyed by Status:
//
//	StatusOK         → MaxFlowPerMin, Flows
//	StatusInfeasible → CutReachable, Deficit
//
// A Result is never mutated after construction.
type Result struct {
	Status string `json:"status"`

	// MaxFlowPerMin is the total delivered to the sink: the sum of
	// Flow over edges whose To equals the sink.
	MaxFlowPerMin float64 `json:"max_flow_per_min,omitempty"`
	// Flows covers every declared edge, in declaration order.
	Flows []EdgeFlow `json:"flows,omitempty"`

	// CutReachable is the source side of the minimum cut, as external
	// names, lexicographically sorted.
	CutReachable []string `json:"cut_reachable,omitempty"`
	Deficit      *Deficit `json:"deficit,omitempty"`
}

// MarshalJSON emits exactly the wire shape consumers expect: success
// documents carry status/max_flow_per_min/flows, infeasibility
// documents carry status/cut_reachable/deficit. Empty certificate
// lists serialize as [] rather than null.
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.Status == StatusInfeasible {
		cut := r.CutReachable
		if cut == nil {
			cut = []string{}
		}
		return json.Marshal(struct {
			Status       string   `json:"status"`
			CutReachable []string `json:"cut_reachable"`
			Deficit      *Deficit `json:"deficit"`
		}{r.Status, cut, r.Deficit})
	}
	flows := r.Flows
	if flows == nil {
		flows = []EdgeFlow{}
	}
	return json.Marshal(struct {
		Status        string     `json:"status"`
		MaxFlowPerMin float64    `json:"max_flow_per_min"`
		Flows         []EdgeFlow `json:"flows"`
	}{r.Status, r.MaxFlowPerMin, flows})
}

// Options configures a solve.
//   - Epsilon: residual capacities ≤ Epsilon are treated as zero
//     (default ResidualEps).
//   - PhaseEpsilon: tolerance for phase-completion checks
//     (default PhaseEps).
//   - RequireFullDelivery: by default a delivery shortfall is not an
//     error — the solver reports the maximum deliverable amount as a
//     success. Set RequireFullDelivery to treat any undelivered supply
//     as infeasibility with a full cut certificate instead.
type Options struct {
	Epsilon             float64
	PhaseEpsilon        float64
	RequireFullDelivery bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:      ResidualEps,
		PhaseEpsilon: PhaseEps,
	}
}

// normalize replaces unset (non-positive) tolerances with defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = ResidualEps
	}
	if o.PhaseEpsilon <= 0 {
		o.PhaseEpsilon = PhaseEps
	}
}
