package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/internal/testmesh"
	"github.com/elektrokombinacija/meshknn-research/mesh"
)

func TestUnitSquareLocate(t *testing.T) {
	m := testmesh.UnitSquare()

	loc := m.Locate(geom.Point{X: 0.5, Y: 0.5})
	assert.Equal(t, mesh.InPolygon, loc.Type)
	assert.Equal(t, 0, loc.Poly1)

	loc = m.Locate(geom.Point{X: 0, Y: 0.5})
	assert.Equal(t, mesh.OnMeshBorder, loc.Type)

	loc = m.Locate(geom.Point{X: 0, Y: 0})
	assert.Equal(t, mesh.OnCornerVertexUnambig, loc.Type)
}

func TestLRoomSharedEdge(t *testing.T) {
	m := testmesh.LRoom()

	loc := m.Locate(geom.Point{X: 0.4, Y: 0.8})
	assert.Equal(t, mesh.OnEdge, loc.Type)
	assert.ElementsMatch(t, []int{0, 1}, []int{loc.Poly1, loc.Poly2})

	loc = m.Locate(geom.Point{X: 0.4, Y: 0.6})
	assert.Equal(t, mesh.OnCornerVertexAmbig, loc.Type)
}

func TestTJunctionNonCornerVertexRetainsAllIncidentPolygons(t *testing.T) {
	m := testmesh.TJunction()

	loc := m.Locate(geom.Point{X: 1, Y: 1})
	assert.Equal(t, mesh.OnNonCornerVertex, loc.Type)
	assert.ElementsMatch(t, []int{0, 1, 2}, loc.Polygons)
}

func TestMeshValidatePanicsOnOutOfRangeNeighbor(t *testing.T) {
	verts := []mesh.Vertex{
		{P: geom.Point{X: 0, Y: 0}, IsCorner: true},
		{P: geom.Point{X: 1, Y: 0}, IsCorner: true},
		{P: geom.Point{X: 1, Y: 1}, IsCorner: true},
	}
	polys := []mesh.Polygon{
		{Vertices: []int{0, 1, 2}, Neighbors: []int{1, mesh.ObstacleSentinel, mesh.ObstacleSentinel}},
	}
	assert.Panics(t, func() {
		mesh.NewMesh(verts, polys)
	})
}
