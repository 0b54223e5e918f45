package search

import "github.com/elektrokombinacija/meshknn-research/geom"

// RootTable is the per-vertex root-pruning structure of spec.md §4.1 and
// §9: the key polynomial-time speedup of interval propagation over naive
// continuous Dijkstra. It records, per mesh vertex used as a root, the
// best g value reached at that root so far in the current search epoch;
// a node whose root already has a strictly better recorded g is
// redundant and can be pruned without being expanded.
//
// The epoch id sidesteps clearing the table between searches: bumping
// the current epoch with Reset makes every prior entry stale in O(1), trading a few
// extra bytes per slot for the pool's same no-per-search-free discipline
// (spec.md §5).
type RootTable struct {
	bestG []float64
	epoch []int
	cur   int
}

// NewRootTable returns a table sized for a mesh with the given vertex
// count.
func NewRootTable(numVertices int) *RootTable {
	return &RootTable{
		bestG: make([]float64, numVertices),
		epoch: make([]int, numVertices),
		cur:   1, // zeroed slots carry epoch 0, so they start out stale
	}
}

// Reset starts a new epoch, invalidating every previously recorded
// best-g value in O(1).
func (t *RootTable) Reset() { t.cur++ }

// ShouldPrune reports whether a node with the given root vertex and g
// value is dominated by a root cost recorded this epoch that is lower by
// more than geom.Epsilon, using the reference implementation's
// strict-improvement margin so floating-point noise never prunes a
// legitimately-better path; an equal g is not pruned.
func (t *RootTable) ShouldPrune(root int, g float64) bool {
	if root == RootStart {
		return false
	}
	if t.epoch[root] != t.cur {
		return false
	}
	return t.bestG[root]+geom.Epsilon < g
}

// Record updates the best-g value for root, if g improves on (or
// establishes) the current epoch's recorded value.
func (t *RootTable) Record(root int, g float64) {
	if root == RootStart {
		return
	}
	if t.epoch[root] != t.cur || g < t.bestG[root] {
		t.bestG[root] = g
		t.epoch[root] = t.cur
	}
}
