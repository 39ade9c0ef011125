package flowcheck

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/beltflow/flownet"
)

// Tolerance is the comparison slack for all recomputed balances,
// matching the solver's phase-completion tolerance.
const Tolerance = 1e-6

// ErrViolations indicates a result failed verification; use errors.Is.
var ErrViolations = errors.New("flowcheck: result violates network constraints")

// Check re-derives every verifiable property of a successful result
// from its flows array and returns one description per violation. An
// empty slice means the result is verified. Infeasible results carry
// no flow assignment and verify vacuously.
//
// Properties checked:
//   - the flows array covers every declared edge, in declaration order;
//   - every edge flow respects Lo ≤ flow ≤ Hi;
//   - every node other than sources and the sink conserves flow;
//   - no source ships more than its declared supply (or anything
//     negative);
//   - every capped transit node's through-flow respects its cap;
//   - MaxFlowPerMin equals the summed flow into the sink.
func Check(p *flownet.Problem, r *flownet.Result) []string {
	if p == nil || r == nil || r.Status != flownet.StatusOK {
		return nil
	}

	var violations []string
	if len(r.Flows) != len(p.Edges) {
		violations = append(violations,
			fmt.Sprintf("flows array covers %d edges, network declares %d", len(r.Flows), len(p.Edges)))

		return violations
	}

	net := make(map[string]float64)    // outflow − inflow per node
	inflow := make(map[string]float64) // inflow per node, for caps
	var intoSink float64
	for i, f := range r.Flows {
		e := p.Edges[i]
		if f.From != e.From || f.To != e.To {
			violations = append(violations,
				fmt.Sprintf("flow %d reported for %s→%s, edge %d declared as %s→%s", i, f.From, f.To, i, e.From, e.To))

			continue
		}
		if f.Flow < e.Lo-Tolerance || f.Flow > e.Hi+Tolerance {
			violations = append(violations,
				fmt.Sprintf("edge %s→%s carries %g outside bounds [%g, %g]", e.From, e.To, f.Flow, e.Lo, e.Hi))
		}
		net[e.From] += f.Flow
		net[e.To] -= f.Flow
		inflow[e.To] += f.Flow
		if f.To == p.Sink {
			intoSink += f.Flow
		}
	}

	names := make([]string, 0, len(net))
	for name := range net {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		balance := net[name]
		if supply, isSource := p.Sources[name]; isSource {
			if balance < -Tolerance || balance > supply+Tolerance {
				violations = append(violations,
					fmt.Sprintf("source %s ships %g, declared supply %g", name, balance, supply))
			}

			continue
		}
		if name == p.Sink {
			continue
		}
		if math.Abs(balance) > Tolerance {
			violations = append(violations,
				fmt.Sprintf("node %s does not conserve flow: imbalance %g", name, balance))
		}
	}

	// Node caps bind transit nodes only; the solver never splits a
	// declared source or the sink.
	capNames := make([]string, 0, len(p.NodeCaps))
	for name := range p.NodeCaps {
		capNames = append(capNames, name)
	}
	sort.Strings(capNames)
	for _, name := range capNames {
		if _, isSource := p.Sources[name]; isSource || name == p.Sink {
			continue
		}
		if limit := p.NodeCaps[name]; inflow[name] > limit+Tolerance {
			violations = append(violations,
				fmt.Sprintf("node %s passes %g, cap %g", name, inflow[name], limit))
		}
	}

	if math.Abs(intoSink-r.MaxFlowPerMin) > Tolerance {
		violations = append(violations,
			fmt.Sprintf("max_flow_per_min %g disagrees with summed sink inflow %g", r.MaxFlowPerMin, intoSink))
	}

	return violations
}

// Validate is the error-shaped form of Check: nil when verified,
// ErrViolations (wrapped with the first finding) otherwise.
func Validate(p *flownet.Problem, r *flownet.Result) error {
	violations := Check(p, r)
	if len(violations) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s (%d total)", ErrViolations, violations[0], len(violations))
}
