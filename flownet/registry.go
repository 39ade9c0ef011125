package flownet

import "sort"

// nodeID is the internal dual identity of one external node: the index
// flow enters at (in) and the index flow leaves from (out). They are
// equal unless the node is split by a throughput cap, in which case an
// internal in→out arc carries the cap. The "equal when unsplit"
// invariant is enforced here at construction, never by convention.
type nodeID struct {
	in  int
	out int
}

// split reports whether the node carries an internal capacity arc.
func (id nodeID) split() bool { return id.in != id.out }

// nameRegistry assigns stable internal indices to externally named
// nodes. Names are collected from edges, sources, the sink and node
// caps, then indexed in lexicographic order so that every downstream
// tie-break — and therefore the emitted flow assignment — is
// reproducible bit for bit.
//
// A registry is private to one solver invocation. It is never shared
// and never promoted to package state.
type nameRegistry struct {
	names []string          // all external names, sorted
	ids   map[string]nodeID // name → internal index pair
	wired map[string]bool   // names that appear in edges, sink or caps

	// Transient super-node indices. sStar/tStar drive the lower-bound
	// feasibility circulation, sMain/tMain the delivery phase.
	sStar, tStar int
	sMain, tMain int

	size int // total internal index count, super-nodes included
}

// newNameRegistry collects and indexes every node name in p.
// A node is split iff it has a declared cap and is neither a declared
// source nor the sink; splitting consumes two consecutive indices
// (in, then out). Four super-node indices follow the real nodes.
func newNameRegistry(p *Problem) *nameRegistry {
	seen := make(map[string]bool, len(p.Edges)*2)
	wired := make(map[string]bool, len(p.Edges)*2)
	for _, e := range p.Edges {
		seen[e.From], seen[e.To] = true, true
		wired[e.From], wired[e.To] = true, true
	}
	for name := range p.Sources {
		seen[name] = true
	}
	if p.Sink != "" {
		seen[p.Sink] = true
		wired[p.Sink] = true
	}
	for name := range p.NodeCaps {
		seen[name] = true
		wired[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	reg := &nameRegistry{
		names: names,
		ids:   make(map[string]nodeID, len(names)),
		wired: wired,
	}

	idx := 0
	for _, name := range names {
		_, capped := p.NodeCaps[name]
		_, isSource := p.Sources[name]
		if capped && name != p.Sink && !isSource {
			reg.ids[name] = nodeID{in: idx, out: idx + 1}
			idx += 2
		} else {
			reg.ids[name] = nodeID{in: idx, out: idx}
			idx++
		}
	}
	reg.sStar, reg.tStar = idx, idx+1
	reg.sMain, reg.tMain = idx+2, idx+3
	reg.size = idx + 4

	return reg
}

// id returns the index pair for an external name; ok is false for
// names the registry never saw.
func (r *nameRegistry) id(name string) (nodeID, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// known reports whether name occurs in the network proper (edges, sink
// or node caps) as opposed to only in the supply map. A source that the
// network never mentions cannot deliver anything and is rejected
// before the delivery phase.
func (r *nameRegistry) known(name string) bool { return r.wired[name] }
