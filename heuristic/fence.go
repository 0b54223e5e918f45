package heuristic

import (
	"math"

	"github.com/elektrokombinacija/meshknn-research/fence"
	"github.com/elektrokombinacija/meshknn-research/mesh"
	"github.com/elektrokombinacija/meshknn-research/search"
)

// Fence is the dam-table-backed heuristic of spec.md §4.7: H returns the
// smallest dam lower bound among unreached goals on the node's entry
// edge, read straight out of fence.BuildDams's precomputed table instead
// of querying an R*-tree per node; the caller adds the node's g.
type Fence struct {
	Dams      fence.EdgeDams
	Unreached map[int]bool
}

// NewFence wraps a precomputed dam table for search against the given
// goal ids, all initially unreached.
func NewFence(dams fence.EdgeDams, goalIDs []int) *Fence {
	unreached := make(map[int]bool, len(goalIDs))
	for _, gid := range goalIDs {
		unreached[gid] = true
	}
	return &Fence{Dams: dams, Unreached: unreached}
}

func (f *Fence) H(n *search.Node, m *mesh.Mesh) float64 {
	if len(f.Unreached) == 0 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	for _, dam := range f.Dams.Lookup(n.NextPolygon, n.Edge) {
		if !f.Unreached[dam.GID] || dam.LB >= best {
			continue
		}
		best = dam.LB
	}
	if math.IsInf(best, 1) {
		// No dam reaches this edge for any goal still unreached (flood
		// fill deadline, or a one-way polygon it never crossed) — fall
		// back to the always-admissible zero bound rather than
		// overestimate.
		return 0
	}
	return best
}

func (f *Fence) OnSeal(gid int) {
	delete(f.Unreached, gid)
}
