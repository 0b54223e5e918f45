// Package spatial indexes kNN goal points in an R*-tree so the
// target-heuristic (spec.md §4.5) can answer "nearest unreached goal to
// this point" and "nearest unreached goal within this angular sector"
// queries without scanning every goal on each call.
package spatial

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/elektrokombinacija/meshknn-research/geom"
)

// GoalID identifies one of the kNN search's goal points.
type GoalID int

// GoalIndex is an R*-tree over the live (not yet sealed) goal set,
// built once per search and pruned as goals seal (spec.md §4.6:
// target-heuristic re-evaluation needs the nearest *unreached* goal).
type GoalIndex struct {
	tree   rtree.RTreeG[GoalID]
	points map[GoalID]geom.Point
	live   map[GoalID]bool
}

// NewGoalIndex builds an index over goals.
func NewGoalIndex(goals map[GoalID]geom.Point) *GoalIndex {
	idx := &GoalIndex{
		points: make(map[GoalID]geom.Point, len(goals)),
		live:   make(map[GoalID]bool, len(goals)),
	}
	for gid, p := range goals {
		idx.points[gid] = p
		idx.live[gid] = true
		box := [2]float64{p.X, p.Y}
		idx.tree.Insert(box, box, gid)
	}
	return idx
}

// Remove seals a goal: it no longer participates in nearest-neighbor
// queries (it stays in the tree itself, since tidwall/rtree has no
// cheap single-item delete by value; live filters it out at query time).
func (g *GoalIndex) Remove(gid GoalID) {
	delete(g.live, gid)
}

// Empty reports whether every indexed goal has been sealed.
func (g *GoalIndex) Empty() bool {
	return len(g.live) == 0
}

// NearestTo returns the id and distance of the closest unreached goal to
// p, via an expanding-box R*-tree search: each ring doubles the query
// box until it has definitely enclosed the true nearest point (the
// incremental-nearest-neighbor queue of spec.md §4.5, simplified to
// fixed-ring expansion since tidwall/rtree exposes box search rather
// than a node-priority iterator).
func (g *GoalIndex) NearestTo(p geom.Point) (GoalID, float64, bool) {
	return g.nearestMatching(p, func(GoalID, geom.Point) bool { return true })
}

// NearestInSector returns the closest unreached goal to apex whose
// direction from apex lies in the angular sector swept counter-clockwise
// from angle0 to angle1 (both in radians; wraps past 2π as needed).
// This is the angle-restricted nearest-neighbor query the target
// heuristic's four-area decomposition (spec.md §4.5) issues once per
// area to bound the distance from a node's interval to the nearest
// unreached goal.
func (g *GoalIndex) NearestInSector(apex geom.Point, angle0, angle1 float64) (GoalID, float64, bool) {
	sweep := geom.NormalizeAngle(angle1 - angle0)
	return g.nearestMatching(apex, func(_ GoalID, pt geom.Point) bool {
		a := geom.NormalizeAngle(geom.AngleOf(pt.Sub(apex)) - angle0)
		return a <= sweep+geom.Epsilon
	})
}

func (g *GoalIndex) nearestMatching(p geom.Point, accept func(GoalID, geom.Point) bool) (GoalID, float64, bool) {
	if g.Empty() {
		return 0, 0, false
	}
	radius := initialRadius(g)
	for ring := 0; ring < 64; ring++ {
		best, bestDist, found := g.scanBox(p, radius, accept)
		if found && bestDist <= radius {
			return best, bestDist, true
		}
		radius *= 2
	}
	return g.scanBox(p, math.Inf(1), accept)
}

func (g *GoalIndex) scanBox(p geom.Point, radius float64, accept func(GoalID, geom.Point) bool) (GoalID, float64, bool) {
	min := [2]float64{p.X - radius, p.Y - radius}
	max := [2]float64{p.X + radius, p.Y + radius}
	best, bestDist, found := GoalID(0), math.Inf(1), false
	g.tree.Search(min, max, func(_, _ [2]float64, gid GoalID) bool {
		if !g.live[gid] {
			return true
		}
		gp := g.points[gid]
		if !accept(gid, gp) {
			return true
		}
		d := geom.Dist(p, gp)
		if d < bestDist {
			best, bestDist, found = gid, d, true
		}
		return true
	})
	return best, bestDist, found
}

// initialRadius seeds the expanding-ring search with a value
// proportional to the goal set's spatial spread, so the common case
// resolves in one or two rings rather than many tiny ones.
func initialRadius(g *GoalIndex) float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for gid, p := range g.points {
		if !g.live[gid] {
			continue
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span <= 0 || math.IsInf(span, 0) {
		return 1
	}
	return span / math.Sqrt(float64(len(g.live))+1)
}
