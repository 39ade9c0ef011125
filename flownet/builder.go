package flownet

import "sort"

// edgeRecord ties one declared edge to the residual arc that carries
// its reduced capacity (Hi − Lo), for saturation checks and flow
// reconstruction.
type edgeRecord struct {
	Edge
	ref arcRef
}

// capArcRecord ties a split node's name to its internal in→out
// capacity arc.
type capArcRecord struct {
	name string
	ref  arcRef
}

// solver owns every piece of mutable state for one invocation: the
// registry, the residual graph, edge/cap handles and demand totals.
// Instances are independent; a solver is never reused.
type solver struct {
	p    *Problem
	opts Options
	reg  *nameRegistry
	g    *residualGraph

	records []edgeRecord   // declared order, as flows are reported
	sorted  []int          // record indices in (From, To) order, as arcs are inserted
	capArcs []capArcRecord // split-node internal arcs, in sorted name order

	totalDemand float64 // Σ positive lower-bound demand, the phase-1 target
	totalSupply float64 // Σ declared supply, the phase-2 target
}

func newSolver(p *Problem, opts Options) *solver {
	opts.normalize()

	return &solver{p: p, opts: opts}
}

// buildGraph transforms the declared problem into a residual network
// ready for the lower-bound feasibility circulation.
//
// Procedure:
//  1. Index all node names (lexicographic, split where capped).
//  2. Reject any edge with Hi < Lo before constructing anything.
//  3. Add internal capacity arcs for split nodes, in name order.
//  4. Add one reduced arc out(u)→in(v) of capacity Hi−Lo per declared
//     edge, in (From, To) order, accumulating each Lo into the
//     endpoint demands.
//  5. Wire every nonzero demand to the S*/T* super-pair; the positive
//     total is the amount phase 1 must circulate.
//
// Returns a terminal infeasibility Result for malformed bounds, nil on
// success.
func (s *solver) buildGraph() *Result {
	s.reg = newNameRegistry(s.p)
	eps := s.opts.Epsilon

	// Fixed processing order for edges: (From, To) lexicographic.
	s.sorted = make([]int, len(s.p.Edges))
	for i := range s.sorted {
		s.sorted[i] = i
	}
	sort.SliceStable(s.sorted, func(a, b int) bool {
		ea, eb := s.p.Edges[s.sorted[a]], s.p.Edges[s.sorted[b]]
		if ea.From != eb.From {
			return ea.From < eb.From
		}

		return ea.To < eb.To
	})

	// Malformed bounds are terminal before any arc exists: the deficit
	// is the shortfall and the cut is empty.
	for _, i := range s.sorted {
		e := s.p.Edges[i]
		if e.Hi+eps < e.Lo {
			return infeasible(e.Lo - e.Hi)
		}
	}

	s.g = newResidualGraph(s.reg.size, eps)

	// Internal capacity arcs for split nodes.
	for _, name := range s.reg.names {
		id, _ := s.reg.id(name)
		if id.split() {
			ref := s.g.addArc(id.in, id.out, s.p.NodeCaps[name])
			s.capArcs = append(s.capArcs, capArcRecord{name: name, ref: ref})
		}
	}

	// Reduced edge arcs plus lower-bound demand accumulation.
	s.records = make([]edgeRecord, len(s.p.Edges))
	demand := make([]float64, s.reg.size)
	for _, i := range s.sorted {
		e := s.p.Edges[i]
		from, _ := s.reg.id(e.From)
		to, _ := s.reg.id(e.To)
		capacity := e.Hi - e.Lo
		if capacity < 0 {
			capacity = 0
		}
		s.records[i] = edgeRecord{Edge: e, ref: s.g.addArc(from.out, to.in, capacity)}
		demand[to.in] += e.Lo
		demand[from.out] -= e.Lo
	}

	// Demand super-node wiring, node indices ascending.
	for i, d := range demand {
		switch {
		case d > eps:
			s.g.addArc(s.reg.sStar, i, d)
			s.totalDemand += d
		case d < -eps:
			s.g.addArc(i, s.reg.tStar, -d)
		}
	}

	return nil
}

// buildSupplyNetwork wires the delivery-phase super-pair: one arc
// S_main→out(source) per positive supply, and a single arc
// in(sink)→T_main sized to the total supply. A source name the network
// never mentions, or a missing sink, is terminal infeasibility with an
// empty cut.
func (s *solver) buildSupplyNetwork() *Result {
	names := make([]string, 0, len(s.p.Sources))
	for name := range s.p.Sources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		supply := s.p.Sources[name]
		if supply < -s.opts.Epsilon {
			supply = 0
		}
		if !s.reg.known(name) {
			return infeasible(supply)
		}
		if supply > 0 {
			id, _ := s.reg.id(name)
			s.g.addArc(s.reg.sMain, id.out, supply)
			s.totalSupply += supply
		}
	}

	if s.p.Sink == "" {
		return infeasible(s.totalSupply)
	}
	sink, ok := s.reg.id(s.p.Sink)
	if !ok {
		return infeasible(s.totalSupply)
	}
	s.g.addArc(sink.in, s.reg.tMain, s.totalSupply)

	return nil
}
