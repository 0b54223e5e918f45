package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/internal/testmesh"
	"github.com/elektrokombinacija/meshknn-research/mesh"
	"github.com/elektrokombinacija/meshknn-research/search"
)

func TestSeedOnNonCornerVertexSeedsEveryIncidentPolygon(t *testing.T) {
	m := testmesh.TJunction()
	start := geom.Point{X: 1, Y: 1}
	loc := search.LocatePoint(m, start)
	assert.Equal(t, mesh.OnNonCornerVertex, loc.Type)

	pool := search.NewPool(64)
	seeds := search.Seed(m, start, loc, pool)

	polys := make([]int, len(seeds))
	for i, s := range seeds {
		polys[i] = s.NextPolygon
		assert.Equal(t, search.ColLazy, s.ColType)
		assert.True(t, geom.Equal(s.Left, start))
		assert.True(t, geom.Equal(s.Right, start))
	}
	assert.ElementsMatch(t, []int{0, 1, 2}, polys)
}

func TestSeedOnEdgeSeedsBothSides(t *testing.T) {
	m := testmesh.LRoom()
	start := geom.Point{X: 0.4, Y: 0.8}
	loc := search.LocatePoint(m, start)
	assert.Equal(t, mesh.OnEdge, loc.Type)

	pool := search.NewPool(64)
	seeds := search.Seed(m, start, loc, pool)

	polys := make([]int, len(seeds))
	for i, s := range seeds {
		polys[i] = s.NextPolygon
	}
	assert.ElementsMatch(t, []int{0, 1}, polys)
}

func TestSeedNotOnMeshYieldsNoSeeds(t *testing.T) {
	m := testmesh.UnitSquare()
	start := geom.Point{X: -5, Y: -5}
	loc := search.LocatePoint(m, start)
	assert.Equal(t, mesh.NotOnMesh, loc.Type)

	pool := search.NewPool(64)
	assert.Nil(t, search.Seed(m, start, loc, pool))
}
