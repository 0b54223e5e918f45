// Package euclid declares the contract of the Euclidean-graph kNN
// baseline (spec.md §4.8): an external collaborator's implementation,
// out of scope for this repo (spec.md §1 Non-goals), but given a real
// Go interface here so engine's cross-implementation equivalence tests
// (spec.md §8) can be written against a typed contract instead of an
// untyped placeholder.
package euclid

import "github.com/elektrokombinacija/meshknn-research/geom"

// Result is one ranked nearest-goal hit.
type Result struct {
	GoalIndex int
	Cost      float64
}

// Baseline finds the k nearest of goals to start by Dijkstra/A* over
// the mesh's visibility graph rather than polyanya's interval
// propagation (spec.md §4.8's "ODC" expanding-disc technique, which
// grows an explored radius curR and repeatedly queries an R*-tree for
// goals inside it). spec.md §9 flags an open question in the reference
// implementation's own exit condition — goals found with d > curR are
// provisionally accepted and only the next iteration's re-check can
// reject them, which looks like an off-by-one in when curR is allowed
// to lag behind the true search frontier. This repo does not resolve
// or implement that behavior; it is recorded here only so a future
// Baseline implementation knows to either reproduce or fix it
// deliberately, not by accident.
type Baseline interface {
	NearestK(start geom.Point, goals []geom.Point, k int) []Result
}
