package mesh

import "github.com/elektrokombinacija/meshknn-research/geom"

// LocationType classifies where a query point falls relative to the
// mesh, per spec.md §3.
type LocationType int

const (
	NotOnMesh LocationType = iota
	InPolygon
	OnEdge
	OnMeshBorder
	OnNonCornerVertex
	OnCornerVertexUnambig
	OnCornerVertexAmbig
)

func (t LocationType) String() string {
	switch t {
	case NotOnMesh:
		return "NOT_ON_MESH"
	case InPolygon:
		return "IN_POLYGON"
	case OnEdge:
		return "ON_EDGE"
	case OnMeshBorder:
		return "ON_MESH_BORDER"
	case OnNonCornerVertex:
		return "ON_NON_CORNER_VERTEX"
	case OnCornerVertexUnambig:
		return "ON_CORNER_VERTEX_UNAMBIG"
	case OnCornerVertexAmbig:
		return "ON_CORNER_VERTEX_AMBIG"
	default:
		return "UNKNOWN"
	}
}

// PointLocation is the result of locating a point against the mesh.
// Poly1/Poly2 and Vertex1/Vertex2 are populated according to Type, as in
// the reference implementation: Poly1 is the "primary" polygon for
// non-edge cases; for OnEdge, Poly1/Poly2 are the two polygons sharing
// the edge and Vertex1/Vertex2 are its endpoints; for
// OnNonCornerVertex/OnCornerVertex*, Vertex1 is the vertex id.
//
// Polygons additionally carries every non-obstacle polygon incident to
// Vertex1 for OnNonCornerVertex ("the hardest case" of
// gen_initial_nodes in the reference searchinstance.cpp): a non-corner
// vertex can be shared by more than the two polygons Poly1/Poly2 alone
// can express, and a search seeded from it must consider all of them,
// not just whichever happened to be iterated last. Nil for every other
// Type, where Poly1/Poly2 already say everything there is to say.
type PointLocation struct {
	Type             LocationType
	Poly1, Poly2     int
	Vertex1, Vertex2 int
	Polygons         []int
}

// Locate classifies p against the mesh. It does not perform the
// ambiguous-vertex nudge-and-retry of spec.md §7 — that recovery lives
// in search.LocatePoint, which wraps Locate.
func (m *Mesh) Locate(p geom.Point) PointLocation {
	// Exact vertex match.
	for vid, v := range m.Vertices {
		if geom.Equal(v.P, p) {
			return m.locateAtVertex(vid)
		}
	}

	// Edge / interior tests per polygon.
	for pid, poly := range m.Polygons {
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			a := m.Vertices[poly.Vertices[i]].P
			b := m.Vertices[poly.Vertices[(i+1)%n]].P
			if onSegmentStrict(a, b, p) {
				return m.locateOnEdge(pid, i)
			}
		}
		if m.pointInConvexPolygon(pid, p) {
			return PointLocation{Type: InPolygon, Poly1: pid, Poly2: ObstacleSentinel}
		}
	}

	return PointLocation{Type: NotOnMesh, Poly1: ObstacleSentinel, Poly2: ObstacleSentinel}
}

func (m *Mesh) locateAtVertex(vid int) PointLocation {
	v := m.Vertices[vid]
	distinctPolys := 0
	primary := ObstacleSentinel
	incident := make([]int, 0, len(v.Polygons))
	for _, pid := range v.Polygons {
		if pid == ObstacleSentinel {
			continue
		}
		distinctPolys++
		primary = pid
		incident = append(incident, pid)
	}
	if !v.IsCorner {
		return PointLocation{Type: OnNonCornerVertex, Vertex1: vid, Poly1: primary, Poly2: ObstacleSentinel, Polygons: incident}
	}
	if distinctPolys <= 1 {
		return PointLocation{Type: OnCornerVertexUnambig, Vertex1: vid, Poly1: primary, Poly2: ObstacleSentinel}
	}
	return PointLocation{Type: OnCornerVertexAmbig, Vertex1: vid, Poly1: primary, Poly2: ObstacleSentinel}
}

func (m *Mesh) locateOnEdge(pid, edge int) PointLocation {
	left, right := m.EdgeEndpoints(pid, edge)
	neighbor := m.Polygons[pid].Neighbors[edge]
	if neighbor == ObstacleSentinel {
		return PointLocation{
			Type: OnMeshBorder, Poly1: pid, Poly2: ObstacleSentinel,
			Vertex1: left, Vertex2: right,
		}
	}
	return PointLocation{
		Type: OnEdge, Poly1: pid, Poly2: neighbor,
		Vertex1: left, Vertex2: right,
	}
}

// pointInConvexPolygon reports whether p lies strictly inside polygon
// pid (CCW vertices), using the orientation predicate against every
// edge.
func (m *Mesh) pointInConvexPolygon(pid int, p geom.Point) bool {
	poly := m.Polygons[pid]
	n := len(poly.Vertices)
	for i := 0; i < n; i++ {
		a := m.Vertices[poly.Vertices[i]].P
		b := m.Vertices[poly.Vertices[(i+1)%n]].P
		if geom.OrientationOf(a, b, p) == geom.Clockwise {
			return false
		}
	}
	return true
}

func onSegmentStrict(a, b, p geom.Point) bool {
	if !geom.IsCollinear(a, b, p) {
		return false
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX-geom.Epsilon && p.X <= maxX+geom.Epsilon &&
		p.Y >= minY-geom.Epsilon && p.Y <= maxY+geom.Epsilon
}
