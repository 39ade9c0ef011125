package flownet

import "math"

// maxFlow computes the maximum flow from s to t with Dinic's algorithm
// (level graph + blocking flows), mutating arc capacities in place:
// forward capacity decreases, the paired reverse capacity increases by
// the same amount.
//
// Steps, repeated until t becomes unreachable:
//  1. BFS from s over arcs with capacity > eps assigns every reachable
//     node its depth ("level").
//  2. Blocking flow: a depth-first search restricted to arcs that
//     advance exactly one level pushes the bottleneck capacity along
//     each discovered path. Each node keeps a resume cursor into its
//     own arc list, so arcs proven useless within the phase are never
//     revisited.
//
// Given the fixed arc insertion order, two runs on identical input
// traverse arcs identically and produce identical flow decompositions.
//
// Complexity: O(V²·E) time in general, O(V) auxiliary memory.
func (g *residualGraph) maxFlow(s, t int) float64 {
	n := len(g.adj)
	level := make([]int, n)
	cursor := make([]int, n)

	var total float64
	for g.assignLevels(s, t, level) {
		for i := range cursor {
			cursor[i] = 0
		}
		for {
			pushed := g.blockingPush(s, t, level, cursor)
			if pushed <= g.eps {
				break
			}
			total += pushed
		}
	}

	return total
}

// assignLevels runs the BFS phase: level[v] is the arc-count distance
// from s over arcs with remaining capacity, or -1 if unreachable.
// Returns whether t is reachable.
func (g *residualGraph) assignLevels(s, t int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range g.adj[u] {
			if a.cap > g.eps && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return level[t] >= 0
}

// blockingPush finds one augmenting path in the current level graph
// and pushes its bottleneck capacity, returning the amount sent (0 if
// no path remains). The search is an explicit-stack depth-first walk —
// pathological chain networks can drive path length toward the node
// count, which call-stack recursion would not survive.
//
// cursor[u] is u's resume position: arcs before it are already proven
// saturated or level-violating for this phase, which bounds total work
// per phase by O(V·E).
func (g *residualGraph) blockingPush(s, t int, level, cursor []int) float64 {
	// path[i] identifies the arc taken out of the i-th node on the
	// current partial path; the arc itself is adj[node][cursor[node]].
	path := make([]int, 0, 16)
	u := s
	for {
		if u == t {
			// Bottleneck, then apply it along the whole path.
			push := math.MaxFloat64
			for _, node := range path {
				if c := g.adj[node][cursor[node]].cap; c < push {
					push = c
				}
			}
			for _, node := range path {
				a := &g.adj[node][cursor[node]]
				a.cap -= push
				g.adj[a.to][a.rev].cap += push
			}

			return push
		}

		advanced := false
		for cursor[u] < len(g.adj[u]) {
			a := &g.adj[u][cursor[u]]
			if a.cap > g.eps && level[a.to] == level[u]+1 {
				path = append(path, u)
				u = a.to
				advanced = true

				break
			}
			cursor[u]++
		}
		if advanced {
			continue
		}

		// Dead end: no usable arc leaves u in this phase.
		if u == s {
			return 0
		}
		u = path[len(path)-1]
		path = path[:len(path)-1]
		cursor[u]++
	}
}
