package flownet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSolver(p *Problem) *solver {
	return newSolver(p, DefaultOptions())
}

// TestBuildGraphReducedArcsAndDemand: a lower bound shrinks the arc to
// Hi−Lo and contributes ±Lo to the endpoint demands.
func TestBuildGraphReducedArcsAndDemand(t *testing.T) {
	s := newTestSolver(&Problem{
		Edges:   []Edge{{From: "a", To: "b", Lo: 2, Hi: 5}},
		Sources: map[string]float64{"a": 5},
		Sink:    "b",
	})
	require.Nil(t, s.buildGraph())

	require.Equal(t, 2.0, s.totalDemand)
	a := s.g.at(s.records[0].ref)
	require.Equal(t, 3.0, a.orig) // 5 − 2

	// Demand wiring: S*→in(b) cap 2, out(a)→T* cap 2.
	bID, _ := s.reg.id("b")
	aID, _ := s.reg.id("a")
	var sawSupply, sawDrain bool
	for _, arc := range s.g.adj[s.reg.sStar] {
		if arc.to == bID.in && arc.orig == 2.0 {
			sawSupply = true
		}
	}
	for _, arc := range s.g.adj[aID.out] {
		if arc.to == s.reg.tStar && arc.orig == 2.0 {
			sawDrain = true
		}
	}
	require.True(t, sawSupply, "positive demand must hang off S*")
	require.True(t, sawDrain, "negative demand must drain into T*")
}

// TestBuildGraphSplitNodeCapArc: a split node's internal arc carries
// exactly the declared cap and is recorded for saturation checks.
func TestBuildGraphSplitNodeCapArc(t *testing.T) {
	s := newTestSolver(&Problem{
		Edges:    []Edge{{From: "a", To: "m", Hi: 9}, {From: "m", To: "t", Hi: 9}},
		Sources:  map[string]float64{"a": 9},
		Sink:     "t",
		NodeCaps: map[string]float64{"m": 4},
	})
	require.Nil(t, s.buildGraph())

	require.Len(t, s.capArcs, 1)
	require.Equal(t, "m", s.capArcs[0].name)
	capArc := s.g.at(s.capArcs[0].ref)
	require.Equal(t, 4.0, capArc.orig)
	m, _ := s.reg.id("m")
	require.Equal(t, m.out, capArc.to)
}

// TestBuildGraphRejectsInvertedBounds: Hi < Lo is terminal before any
// arc exists; the deficit is the shortfall and the cut is empty.
func TestBuildGraphRejectsInvertedBounds(t *testing.T) {
	s := newTestSolver(&Problem{
		Edges:   []Edge{{From: "a", To: "b", Lo: 10, Hi: 5}},
		Sources: map[string]float64{"a": 1},
		Sink:    "b",
	})
	res := s.buildGraph()

	require.NotNil(t, res)
	require.Equal(t, StatusInfeasible, res.Status)
	require.Empty(t, res.CutReachable)
	require.Equal(t, 5.0, res.Deficit.DemandBalance)
	require.Empty(t, res.Deficit.TightNodes)
	require.Empty(t, res.Deficit.TightEdges)
	require.Nil(t, s.g, "no graph may be built for malformed bounds")
}

// TestBuildSupplyNetworkUnknownSource: a source the network never
// mentions is rejected with its declared supply as the deficit.
func TestBuildSupplyNetworkUnknownSource(t *testing.T) {
	s := newTestSolver(&Problem{
		Edges:   []Edge{{From: "a", To: "t", Hi: 5}},
		Sources: map[string]float64{"a": 2, "ghost": 7},
		Sink:    "t",
	})
	require.Nil(t, s.buildGraph())

	res := s.buildSupplyNetwork()
	require.NotNil(t, res)
	require.Equal(t, StatusInfeasible, res.Status)
	require.Empty(t, res.CutReachable)
	require.Equal(t, 7.0, res.Deficit.DemandBalance)
}

// TestBuildSupplyNetworkMissingSink: an empty sink name is terminal
// with the total supply as the unresolved amount.
func TestBuildSupplyNetworkMissingSink(t *testing.T) {
	s := newTestSolver(&Problem{
		Edges:   []Edge{{From: "a", To: "b", Hi: 5}},
		Sources: map[string]float64{"a": 3},
	})
	require.Nil(t, s.buildGraph())

	res := s.buildSupplyNetwork()
	require.NotNil(t, res)
	require.Equal(t, StatusInfeasible, res.Status)
	require.Equal(t, 3.0, res.Deficit.DemandBalance)
}

// TestBuildSupplyNetworkClampsNegativeSupply: negative supplies count
// as zero rather than corrupting the totals.
func TestBuildSupplyNetworkClampsNegativeSupply(t *testing.T) {
	s := newTestSolver(&Problem{
		Edges:   []Edge{{From: "a", To: "t", Hi: 5}, {From: "b", To: "t", Hi: 5}},
		Sources: map[string]float64{"a": 4, "b": -2},
		Sink:    "t",
	})
	require.Nil(t, s.buildGraph())
	require.Nil(t, s.buildSupplyNetwork())
	require.Equal(t, 4.0, s.totalSupply)
}
