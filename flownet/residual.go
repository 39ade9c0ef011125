package flownet

// arc is one directed residual edge. Every declared capacity becomes a
// forward arc plus a paired zero-capacity reverse arc; pushing flow
// moves capacity from one to the other, so
//
//	forward.cap + reverse.cap == forward.orig
//
// holds at all times.
type arc struct {
	to   int     // head node index
	rev  int     // position of the paired arc in adj[to]
	cap  float64 // remaining capacity, mutated by augmentation
	orig float64 // original capacity, immutable after creation
}

// arcRef is a stable handle to a forward arc: position pos in node's
// adjacency list. Handles stay valid across augmentation because arcs
// are only ever appended.
type arcRef struct {
	node int
	pos  int
}

// residualGraph is an index-based adjacency-list residual network.
// Arc insertion order is part of the solver contract: callers add arcs
// in a fixed, reproducible order (nodes ascending, edges in sorted
// name order), and every traversal below walks adjacency slices in
// insertion order. No operation depends on map iteration.
type residualGraph struct {
	adj [][]arc
	eps float64 // capacities ≤ eps are treated as zero
}

// newResidualGraph allocates a graph over n node indices.
func newResidualGraph(n int, eps float64) *residualGraph {
	return &residualGraph{
		adj: make([][]arc, n),
		eps: eps,
	}
}

// addArc appends a forward arc u→v with the given capacity and its
// paired zero-capacity reverse arc v→u, each recording the other's
// list position. It returns a handle to the forward arc for later
// saturation checks and flow reconstruction.
func (g *residualGraph) addArc(u, v int, capacity float64) arcRef {
	g.adj[u] = append(g.adj[u], arc{to: v, rev: len(g.adj[v]), cap: capacity, orig: capacity})
	g.adj[v] = append(g.adj[v], arc{to: u, rev: len(g.adj[u]) - 1})

	return arcRef{node: u, pos: len(g.adj[u]) - 1}
}

// at returns a pointer to the arc behind a handle. The pointer is only
// valid until the next addArc on the same node.
func (g *residualGraph) at(ref arcRef) *arc {
	return &g.adj[ref.node][ref.pos]
}

// reachable performs a breadth-first scan from src over arcs with
// remaining capacity above eps and returns the visited mask. After a
// failed max-flow phase this mask is the source side of a minimum cut.
func (g *residualGraph) reachable(src int) []bool {
	visited := make([]bool, len(g.adj))
	visited[src] = true
	queue := []int{src}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range g.adj[u] {
			if a.cap > g.eps && !visited[a.to] {
				visited[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return visited
}
