// Package flownet - solve orchestration.
//
// Solve sequences the two max-flow phases over one shared residual
// graph: a lower-bound feasibility circulation (S*→T*), then the
// source→sink delivery (S_main→T_main). Each step is terminal on
// infeasibility; only a non-domain fault is reported as a Go error.
package flownet

import "math"

// Solve computes the maximum feasible throughput for p with default
// options. See SolveWithOptions.
func Solve(p *Problem) (*Result, error) {
	return SolveWithOptions(p, DefaultOptions())
}

// SolveWithOptions runs the full pipeline:
//
//  1. BuildGraph — node splitting, lower-bound elimination, demand
//     wiring. Terminal iff an edge has Hi < Lo.
//  2. CheckLowerBoundFeasibility — max-flow S*→T* must equal the total
//     positive demand within PhaseEpsilon, else the lower bounds are
//     unsatisfiable and a cut certificate is emitted.
//  3. BuildSupplyNetwork — S_main/T_main wiring. Terminal iff a source
//     name is unresolved or the sink is missing.
//  4. RunMainFlow — max-flow S_main→T_main. The achieved value is the
//     deliverable throughput; with RequireFullDelivery set, any
//     shortfall against the total supply is terminal and emits a cut
//     certificate.
//  5. ReconstructFlows — per declared edge, flow = pushed reduced flow
//     plus its lower bound.
//
// The returned error is non-nil only for non-domain faults (nil
// problem); every domain outcome, including malformed bounds, is a
// well-formed Result.
func SolveWithOptions(p *Problem, opts Options) (*Result, error) {
	if p == nil {
		return nil, ErrNilProblem
	}

	s := newSolver(p, opts)
	if res := s.buildGraph(); res != nil {
		return res, nil
	}

	// Phase 1: lower-bound feasibility circulation.
	circulated := s.g.maxFlow(s.reg.sStar, s.reg.tStar)
	if math.Abs(circulated-s.totalDemand) > s.opts.PhaseEpsilon {
		return s.certificate(s.reg.sStar, s.totalDemand, circulated), nil
	}

	if res := s.buildSupplyNetwork(); res != nil {
		return res, nil
	}

	// Phase 2: push as much declared supply to the sink as the network
	// admits.
	delivered := s.g.maxFlow(s.reg.sMain, s.reg.tMain)
	if s.opts.RequireFullDelivery && math.Abs(delivered-s.totalSupply) > s.opts.PhaseEpsilon {
		return s.certificate(s.reg.sMain, s.totalSupply, delivered), nil
	}

	return s.reconstruct(), nil
}

// reconstruct reads the final residual state back into per-edge flows:
// for each declared edge, flow = (reduced original − reduced remaining)
// + Lo. Flows are reported in declaration order; MaxFlowPerMin is the
// sum over edges entering the sink.
func (s *solver) reconstruct() *Result {
	flows := make([]EdgeFlow, 0, len(s.records))
	var delivered float64
	for i := range s.records {
		rec := &s.records[i]
		a := s.g.at(rec.ref)
		f := (a.orig - a.cap) + rec.Lo
		if math.Abs(f) < OutputEps {
			f = 0
		}
		f = round9(f)
		flows = append(flows, EdgeFlow{From: rec.From, To: rec.To, Flow: f})
		if rec.To == s.p.Sink {
			delivered += f
		}
	}

	return &Result{
		Status:        StatusOK,
		MaxFlowPerMin: round9(delivered),
		Flows:         flows,
	}
}

// round9 rounds to 9 decimal places; all emitted numbers pass through
// it to keep output stable against floating-point drift.
func round9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
