// Package testmesh builds the small hand-constructed meshes the engine,
// search, fence, and heuristic packages exercise in their tests —
// the unit-square and L-shaped-room scenarios of spec.md §8.
package testmesh

import (
	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/mesh"
)

// UnitSquare returns the single-polygon mesh covering [0,1]x[0,1] with no
// obstacles (spec.md §8 scenario 1).
func UnitSquare() *mesh.Mesh {
	verts := []mesh.Vertex{
		{P: geom.Point{X: 0, Y: 0}, Polygons: []int{0, mesh.ObstacleSentinel}, IsCorner: true},
		{P: geom.Point{X: 1, Y: 0}, Polygons: []int{0, mesh.ObstacleSentinel}, IsCorner: true},
		{P: geom.Point{X: 1, Y: 1}, Polygons: []int{0, mesh.ObstacleSentinel}, IsCorner: true},
		{P: geom.Point{X: 0, Y: 1}, Polygons: []int{0, mesh.ObstacleSentinel}, IsCorner: true},
	}
	polys := []mesh.Polygon{
		{
			Vertices:  []int{0, 1, 2, 3},
			Neighbors: []int{mesh.ObstacleSentinel, mesh.ObstacleSentinel, mesh.ObstacleSentinel, mesh.ObstacleSentinel},
		},
	}
	return mesh.NewMesh(verts, polys)
}

// LRoom returns the two-polygon L-shaped mesh of spec.md §8 scenario 2:
// the unit square with the (0.4..1, 0..0.6) corner removed. The two
// convex polygons meet at the reflex corner (0.4, 0.6).
func LRoom() *mesh.Mesh {
	verts := []mesh.Vertex{
		{P: geom.Point{X: 0, Y: 0}, Polygons: []int{0, mesh.ObstacleSentinel}, IsCorner: true},     // 0
		{P: geom.Point{X: 0.4, Y: 0}, Polygons: []int{0, mesh.ObstacleSentinel}, IsCorner: true},    // 1
		{P: geom.Point{X: 0.4, Y: 0.6}, Polygons: []int{0, 1, mesh.ObstacleSentinel}, IsCorner: true}, // 2, reflex corner
		{P: geom.Point{X: 0.4, Y: 1}, Polygons: []int{0, 1}, IsCorner: true},                        // 3
		{P: geom.Point{X: 0, Y: 1}, Polygons: []int{0, mesh.ObstacleSentinel}, IsCorner: true},      // 4
		{P: geom.Point{X: 1, Y: 0.6}, Polygons: []int{1, mesh.ObstacleSentinel}, IsCorner: true},    // 5
		{P: geom.Point{X: 1, Y: 1}, Polygons: []int{1, mesh.ObstacleSentinel}, IsCorner: true},      // 6
	}
	polys := []mesh.Polygon{
		{
			Vertices:  []int{0, 1, 2, 3, 4},
			Neighbors: []int{mesh.ObstacleSentinel, mesh.ObstacleSentinel, 1, mesh.ObstacleSentinel, mesh.ObstacleSentinel},
		},
		{
			Vertices:  []int{2, 5, 6, 3},
			Neighbors: []int{mesh.ObstacleSentinel, mesh.ObstacleSentinel, mesh.ObstacleSentinel, 0},
		},
	}
	return mesh.NewMesh(verts, polys)
}

// TJunction returns a three-polygon mesh with a T-junction: two unit
// squares side by side ([0,1]x[0,1] and [1,2]x[0,1]) under one wide
// rectangle ([0,2]x[1,2]) whose bottom edge is split at (1,1) to match
// the seam between the two squares below. (1,1) is therefore a
// non-corner vertex (180 degrees along the wide rectangle's own
// boundary) incident to all three polygons — the "hardest case" of
// ON_NON_CORNER_VERTEX seeding.
func TJunction() *mesh.Mesh {
	verts := []mesh.Vertex{
		{P: geom.Point{X: 0, Y: 0}, Polygons: []int{0, mesh.ObstacleSentinel}, IsCorner: true},    // 0
		{P: geom.Point{X: 1, Y: 0}, Polygons: []int{0, 1, mesh.ObstacleSentinel}, IsCorner: true}, // 1
		{P: geom.Point{X: 1, Y: 1}, Polygons: []int{0, 1, 2}, IsCorner: false},                    // 2, T-junction
		{P: geom.Point{X: 0, Y: 1}, Polygons: []int{0, 2, mesh.ObstacleSentinel}, IsCorner: true},  // 3
		{P: geom.Point{X: 2, Y: 0}, Polygons: []int{1, mesh.ObstacleSentinel}, IsCorner: true},    // 4
		{P: geom.Point{X: 2, Y: 1}, Polygons: []int{1, 2, mesh.ObstacleSentinel}, IsCorner: true},  // 5
		{P: geom.Point{X: 2, Y: 2}, Polygons: []int{2, mesh.ObstacleSentinel}, IsCorner: true},    // 6
		{P: geom.Point{X: 0, Y: 2}, Polygons: []int{2, mesh.ObstacleSentinel}, IsCorner: true},    // 7
	}
	polys := []mesh.Polygon{
		{
			Vertices:  []int{0, 1, 2, 3},
			Neighbors: []int{mesh.ObstacleSentinel, 1, 2, mesh.ObstacleSentinel},
		},
		{
			Vertices:  []int{1, 4, 5, 2},
			Neighbors: []int{mesh.ObstacleSentinel, mesh.ObstacleSentinel, 2, 0},
		},
		{
			Vertices:  []int{3, 2, 5, 6, 7},
			Neighbors: []int{0, 1, mesh.ObstacleSentinel, mesh.ObstacleSentinel, mesh.ObstacleSentinel},
		},
	}
	return mesh.NewMesh(verts, polys)
}
