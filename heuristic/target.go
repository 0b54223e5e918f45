package heuristic

import (
	"math"

	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/mesh"
	"github.com/elektrokombinacija/meshknn-research/search"
	"github.com/elektrokombinacija/meshknn-research/spatial"
)

// Target is the R*-tree-backed admissible lower bound of spec.md §4.5:
// for a node's interval (root, left, right), it bounds the distance to
// the nearest *unreached* goal by the four-area reflect-and-clip
// decomposition (grounded on knnheuristic.h's get_min_hueristic):
//
//	.........\.......p'......../...........
//	..........\....area:C...../............
//	area:A     l-------------r.....area:B
//	........../....area:C'...\.............
//	........./.......p........\............
//
// A bounds via the nearest goal visible from l, B via r, C via p
// (root), and C' via p reflected across [l,r] — each clipped to its
// angular sector so it never double-counts a goal another area already
// covers more tightly.
type Target struct {
	Start geom.Point
	Goals *spatial.GoalIndex
}

func (t *Target) resolveRoot(n *search.Node, m *mesh.Mesh) geom.Point {
	if n.Root == search.RootStart {
		return t.Start
	}
	return m.Vertices[n.Root].P
}

func (t *Target) H(n *search.Node, m *mesh.Mesh) float64 {
	if t.Goals.Empty() {
		return math.Inf(1)
	}
	p := t.resolveRoot(n, m)
	l, r := n.Left, n.Right

	if geom.IsCollinear(p, l, r) {
		pivot := l
		if geom.Dist(p, r) < geom.Dist(p, l) {
			pivot = r
		}
		_, d, found := t.Goals.NearestTo(pivot)
		if !found {
			return math.Inf(1)
		}
		return geom.Dist(p, pivot) + d
	}

	p2 := geom.ReflectAcrossLine(p, l, r)

	plAngle := geom.AngleOf(l.Sub(p))
	pl2Angle := geom.AngleOf(l.Sub(p2))
	prAngle := geom.AngleOf(r.Sub(p))
	pr2Angle := geom.AngleOf(r.Sub(p2))

	best := math.Inf(1)
	consider := func(apex geom.Point, a0, a1, extra float64) {
		_, d, found := t.Goals.NearestInSector(apex, a0, a1)
		if found && d+extra < best {
			best = d + extra
		}
	}

	consider(l, plAngle, pl2Angle, geom.Dist(p, l))   // area A
	consider(r, pr2Angle, prAngle, geom.Dist(p, r))   // area B
	consider(p, prAngle, plAngle, 0)                  // area C
	consider(p2, pl2Angle, pr2Angle, 0)                // area C'

	return best
}

func (t *Target) OnSeal(gid int) {
	t.Goals.Remove(spatial.GoalID(gid))
}
