package flownet

// certificate builds the infeasibility result for a failed max-flow
// phase. src is the phase's super-source; required and achieved are
// the phase target and the flow actually pushed.
//
// The residual reachability scan from src yields the source side of a
// minimum cut. External names with either index visited form
// CutReachable (sorted, since registry names are). Tight edges are
// declared edges crossing the cut with no remaining reduced capacity;
// their FlowNeeded is the capacity required to saturate them inclusive
// of the lower bound (Lo + reduced original = Hi for well-formed
// edges). Tight nodes are split nodes whose internal cap arc is
// saturated.
func (s *solver) certificate(src int, required, achieved float64) *Result {
	visited := s.g.reachable(src)

	cut := make([]string, 0, len(s.reg.names))
	for _, name := range s.reg.names {
		id, _ := s.reg.id(name)
		if visited[id.in] || visited[id.out] {
			cut = append(cut, name)
		}
	}

	tightEdges := make([]TightEdge, 0)
	for _, i := range s.sorted {
		rec := &s.records[i]
		a := s.g.at(rec.ref)
		if visited[rec.ref.node] && !visited[a.to] && a.cap <= s.opts.Epsilon {
			tightEdges = append(tightEdges, TightEdge{
				From:       rec.From,
				To:         rec.To,
				FlowNeeded: round9(rec.Lo + a.orig),
			})
		}
	}

	tightNodes := make([]string, 0)
	for _, ca := range s.capArcs {
		if s.g.at(ca.ref).cap <= s.opts.Epsilon {
			tightNodes = append(tightNodes, ca.name)
		}
	}

	return &Result{
		Status:       StatusInfeasible,
		CutReachable: cut,
		Deficit: &Deficit{
			DemandBalance: round9(required - achieved),
			TightNodes:    tightNodes,
			TightEdges:    tightEdges,
		},
	}
}

// infeasible is the empty-cut terminal result used when the failure is
// known before any flow computation: malformed bounds or an unresolved
// source/sink name. deficit is the shortfall or the unresolved amount.
func infeasible(deficit float64) *Result {
	return &Result{
		Status:       StatusInfeasible,
		CutReachable: []string{},
		Deficit: &Deficit{
			DemandBalance: round9(deficit),
			TightNodes:    []string{},
			TightEdges:    []TightEdge{},
		},
	}
}
