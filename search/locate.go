package search

import (
	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/mesh"
)

// ambigNudge is added to a point that lands exactly on an ambiguous mesh
// corner, to break the tie deterministically and retry location. It
// must be small enough to stay inside whichever polygon the nudge lands
// in, and large enough to clear Epsilon-scale coincidence checks.
var ambigNudge = geom.Point{X: 10 * geom.Epsilon, Y: 10 * geom.Epsilon}

// LocatePoint wraps mesh.Locate with the ambiguous-vertex recovery of
// spec.md §7: ON_CORNER_VERTEX_AMBIG means several polygons meet at this
// exact point with no way to pick one, so the point is nudged by
// (10*Epsilon, 10*Epsilon) and relocated; the nudged location's polygon
// is substituted in, keeping the vertex identity of the original point.
func LocatePoint(m *mesh.Mesh, p geom.Point) mesh.PointLocation {
	loc := m.Locate(p)
	if loc.Type != mesh.OnCornerVertexAmbig {
		return loc
	}
	corrected := m.Locate(p.Add(ambigNudge))
	switch corrected.Type {
	case mesh.InPolygon, mesh.OnMeshBorder, mesh.OnEdge:
		loc.Poly1 = corrected.Poly1
	}
	return loc
}
