package search

import (
	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/mesh"
)

// Seed returns the LAZY initial nodes for a search starting at start,
// located via loc (the result of LocatePoint(mesh, start)). Per spec.md
// §4.1's "be very lazy" note, the search abuses its own collinear
// expansion machinery instead of special-casing the first polygon: each
// seed's interval is the single point start, with ColType ColLazy so
// Expand walks every side of the seed polygon rather than excluding an
// entry edge.
//
// ON_EDGE seeds one node per side of the shared edge, since the start
// sits exactly on the boundary between two polygons and either may lead
// to the optimal path. ON_NON_CORNER_VERTEX — gen_initial_nodes's
// "hardest case" in the reference searchinstance.cpp — seeds one node
// per polygon incident to the vertex, since any of them may hold the
// optimal path and none can be preferred over the others.
// ON_CORNER_VERTEX_AMBIG likewise seeds one node per polygon around the
// vertex. Every other on-mesh location seeds a single node. NOT_ON_MESH yields no seeds; the
// caller reports the point as unreachable.
func Seed(m *mesh.Mesh, start geom.Point, loc mesh.PointLocation, pool *Pool) []*Node {
	lazy := func(poly, leftVertex, rightVertex int) *Node {
		n := pool.Alloc()
		n.Parent = nil
		n.Root = RootStart
		n.Left, n.Right = start, start
		n.LeftVertex, n.RightVertex = leftVertex, rightVertex
		n.NextPolygon = poly
		n.Edge = 0
		n.G, n.F = 0, 0
		n.ColType = ColLazy
		return n
	}

	switch loc.Type {
	case mesh.NotOnMesh:
		return nil
	case mesh.OnEdge:
		return []*Node{
			lazy(loc.Poly2, loc.Vertex1, loc.Vertex2),
			lazy(loc.Poly1, loc.Vertex2, loc.Vertex1),
		}
	case mesh.OnNonCornerVertex:
		seeds := make([]*Node, 0, len(loc.Polygons))
		for _, poly := range loc.Polygons {
			seeds = append(seeds, lazy(poly, NoVertex, NoVertex))
		}
		return seeds
	case mesh.OnCornerVertexAmbig:
		var seeds []*Node
		for _, poly := range m.Vertices[loc.Vertex1].Polygons {
			if poly != mesh.ObstacleSentinel {
				seeds = append(seeds, lazy(poly, NoVertex, NoVertex))
			}
		}
		return seeds
	default:
		if loc.Poly1 == mesh.ObstacleSentinel {
			return nil
		}
		return []*Node{lazy(loc.Poly1, NoVertex, NoVertex)}
	}
}
