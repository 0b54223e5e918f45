// Package mesh implements the convex-polygon navigation mesh the search
// engines plan over: vertex/polygon adjacency and point location.
package mesh

import (
	"fmt"

	"github.com/elektrokombinacija/meshknn-research/geom"
)

// ObstacleSentinel marks a polygon-adjacency or vertex-incidence slot as
// "no polygon here" (an obstacle boundary).
const ObstacleSentinel = -1

// Vertex is a mesh vertex: a point plus the polygons incident to it in
// mesh order (ObstacleSentinel for the obstacle side of a boundary
// vertex) and whether a path may legally turn here.
type Vertex struct {
	P        geom.Point
	Polygons []int
	IsCorner bool
}

// Polygon is a convex polygon of the mesh, vertices listed
// counter-clockwise. Neighbors[i] is the polygon across the edge
// Vertices[i]->Vertices[i+1] (ObstacleSentinel if that edge is an
// obstacle boundary).
type Polygon struct {
	Vertices  []int
	Neighbors []int
	IsOneWay  bool
}

// NumSides returns the number of edges of the polygon.
func (p Polygon) NumSides() int { return len(p.Vertices) }

// Mesh is an immutable convex-polygon partition of the traversable
// region, built once and shared read-only across concurrently running
// searches (each with its own search state, per the concurrency model).
type Mesh struct {
	Vertices    []Vertex
	Polygons    []Polygon
	MaxSides    int
}

// NewMesh validates and returns a mesh. It panics on an invariant
// violation found by Validate (asymmetric or out-of-range adjacency, a
// non-CCW polygon, or a neighbor count that differs from the vertex
// count; the union of the polygons is not checked) since such a violation
// indicates a bug in mesh construction, never a user-facing error.
func NewMesh(vertices []Vertex, polygons []Polygon) *Mesh {
	m := &Mesh{Vertices: vertices, Polygons: polygons}
	for _, p := range polygons {
		if len(p.Vertices) > m.MaxSides {
			m.MaxSides = len(p.Vertices)
		}
	}
	m.Validate()
	return m
}

// Validate checks the mesh invariants of spec.md §3: adjacency symmetry
// and CCW vertex order. Panics with a diagnostic dump on violation —
// internal invariant violations are bugs, not user errors (spec.md §7).
func (m *Mesh) Validate() {
	for pid, p := range m.Polygons {
		n := len(p.Vertices)
		if n < 3 {
			panic(fmt.Sprintf("mesh invariant violation: polygon %d has fewer than 3 vertices", pid))
		}
		if len(p.Neighbors) != n {
			panic(fmt.Sprintf("mesh invariant violation: polygon %d has %d vertices but %d neighbor slots", pid, n, len(p.Neighbors)))
		}
		// CCW check via signed area.
		area := 0.0
		for i := 0; i < n; i++ {
			a := m.Vertices[p.Vertices[i]].P
			b := m.Vertices[p.Vertices[(i+1)%n]].P
			area += a.X*b.Y - b.X*a.Y
		}
		if area < 0 {
			panic(fmt.Sprintf("mesh invariant violation: polygon %d is not CCW", pid))
		}
		for i, nb := range p.Neighbors {
			if nb == ObstacleSentinel {
				continue
			}
			if nb < 0 || nb >= len(m.Polygons) {
				panic(fmt.Sprintf("mesh invariant violation: polygon %d edge %d neighbor %d out of range", pid, i, nb))
			}
			if !m.polygonHasNeighbor(nb, pid) {
				panic(fmt.Sprintf("mesh invariant violation: adjacency polygon %d -> %d is not symmetric", pid, nb))
			}
		}
	}
}

func (m *Mesh) polygonHasNeighbor(pid, want int) bool {
	for _, nb := range m.Polygons[pid].Neighbors {
		if nb == want {
			return true
		}
	}
	return false
}

// EdgeEndpoints returns the two vertex ids of edge i of polygon pid: the
// edge runs from Vertices[i] to Vertices[(i+1)%n] in the polygon's CCW
// order.
func (m *Mesh) EdgeEndpoints(pid, edge int) (from, to int) {
	v := m.Polygons[pid].Vertices
	n := len(v)
	return v[edge], v[(edge+1)%n]
}

// EdgeLeftRight returns the left/right vertex ids of edge i of polygon
// pid in the interval-search sense of spec.md §3: walking the polygon
// CCW, the vertex reached second (Vertices[(i+1)%n]) is "left" and the
// vertex reached first (Vertices[i]) is "right".
func (m *Mesh) EdgeLeftRight(pid, edge int) (leftVID, rightVID int) {
	v := m.Polygons[pid].Vertices
	n := len(v)
	return v[(edge+1)%n], v[edge]
}

// EdgeIndexForVertices returns the edge index of polygon pid whose
// endpoints are {v1,v2} in either order, or -1 if no such edge exists.
// Expansion uses this to locate, within a freshly entered polygon, the
// edge it just crossed (identified by the two shared vertex ids) so it
// can walk the *other* edges for successor generation.
func (m *Mesh) EdgeIndexForVertices(pid, v1, v2 int) int {
	verts := m.Polygons[pid].Vertices
	n := len(verts)
	for i := 0; i < n; i++ {
		a, b := verts[i], verts[(i+1)%n]
		if (a == v1 && b == v2) || (a == v2 && b == v1) {
			return i
		}
	}
	return -1
}
