package search

import (
	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/mesh"
)

// Heuristic computes an admissible lower bound from a node's interval to
// the nearest of the still-unreached goals, and is notified when a goal
// seals. Implementations live in package heuristic; Engine is generic
// over this interface (spec.md §9 design note: composition, not
// per-variant duplication of the search loop).
type Heuristic interface {
	H(n *Node, m *mesh.Mesh) float64
	OnSeal(gid int)
}

// rawSuccessors walks the far edges of polygon NextPolygon and clips
// each against the cone (root, n.Left, n.Right), per spec.md §4.1. A
// normally-entered node skips the edge it came in through; a LAZY seed
// node (spec.md §4.1's "be very lazy" initial expansion) has no entry
// edge to exclude and walks every side.
func rawSuccessors(n *Node, m *mesh.Mesh, root geom.Point) []rawSuccessor {
	poly := m.Polygons[n.NextPolygon]
	sides := poly.NumSides()
	out := make([]rawSuccessor, 0, sides)

	start, count := 1, sides-1
	if n.ColType == ColLazy {
		start, count = 0, sides
	}
	for k := start; k < start+count; k++ {
		idx := (n.Edge + k) % sides
		rightVID, leftVID := poly.Vertices[idx], poly.Vertices[(idx+1)%sides]
		p0 := m.Vertices[rightVID].P // edge-local "right" point
		p1 := m.Vertices[leftVID].P  // edge-local "left" point

		out = append(out, clipFarEdge(n, root, idx, p0, p1, rightVID, leftVID)...)
	}
	return out
}

// clipFarEdge splits far edge (p0=right, p1=left) of the polygon being
// expanded into one or more rawSuccessor chunks by the cone boundaries
// through n.Left and n.Right.
func clipFarEdge(n *Node, root geom.Point, edgeIdx int, p0, p1 geom.Point, rightVID, leftVID int) []rawSuccessor {
	breaks := []float64{0, 1}
	if t, ok := rayParam(root, n.Left, p0, p1); ok {
		breaks = append(breaks, t)
	}
	if t, ok := rayParam(root, n.Right, p0, p1); ok {
		breaks = append(breaks, t)
	}
	breaks = sortedUnique(breaks)

	out := make([]rawSuccessor, 0, len(breaks)-1)
	for i := 0; i+1 < len(breaks); i++ {
		ta, tb := breaks[i], breaks[i+1]
		a := lerp(p0, p1, ta)
		b := lerp(p0, p1, tb)
		mid := lerp(p0, p1, (ta+tb)/2)

		kind := classify(root, n.Left, n.Right, mid)
		if geom.Equal(n.Left, n.Right) && kind == Observable {
			// Degenerate cone: the crossing point itself is collinear.
			// Attribute the chunk before the ray to RIGHT, after to LEFT,
			// matching sweep order (edgeIdx walks right-to-left).
			if i == 0 {
				kind = RightCollinear
			} else {
				kind = LeftCollinear
			}
		}

		av, bv := NoVertex, NoVertex
		if ta == 0 {
			av = rightVID
		}
		if tb == 1 {
			bv = leftVID
		}
		out = append(out, rawSuccessor{
			Kind: kind, Right: a, Left: b,
			RightVertex: av, LeftVertex: bv,
			FarEdge: edgeIdx,
		})
	}
	return out
}

// chainPivot returns the point a forced straight-line run is pivoting
// around: the parent's right or left endpoint for an ongoing RIGHT/LEFT
// run, or the parent's own root point for a LAZY (freshly seeded) node.
func chainPivot(n *Node, root geom.Point) geom.Point {
	switch n.ColType {
	case ColRight:
		return n.Right
	case ColLeft:
		return n.Left
	default:
		return root
	}
}

// closerToLeft reports whether point left is nearer to pivot than point
// right is, comparing the x offsets from pivot, or the y offsets when
// the two x offsets are equal (matching the reference implementation's
// axis-wise comparison, which avoids a square root).
func closerToLeft(pivot, left, right geom.Point) bool {
	dl := left.Sub(pivot)
	dr := right.Sub(pivot)
	if dl.IsZero() {
		return true
	}
	if dr.IsZero() {
		return false
	}
	if abs(dl.X-dr.X) < geom.Epsilon {
		return abs(dl.Y) < abs(dr.Y)
	}
	return abs(dl.X) < abs(dr.X)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return a.Add(b.Sub(a).Scale(t))
}

func sortedUnique(ts []float64) []float64 {
	// insertion sort: at most 4 elements.
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j-1] > ts[j]; j-- {
			ts[j-1], ts[j] = ts[j], ts[j-1]
		}
	}
	out := ts[:1]
	for _, t := range ts[1:] {
		if t-out[len(out)-1] > geom.Epsilon {
			out = append(out, t)
		}
	}
	return out
}

// Expand generates the children of node n (whose interval lies on edge
// n.Edge of polygon n.NextPolygon) by walking the polygon's other edges
// and resolving each candidate successor against mesh adjacency: an
// obstacle edge, or a one-way polygon that is not a destination, drops
// the successor; otherwise a child Node is allocated from pool with Root,
// ColType and G propagated per spec.md §4.1's edge-case table.
func Expand(n *Node, m *mesh.Mesh, start geom.Point, vertexPoint func(int) geom.Point, pool *Pool, h Heuristic, isDestPolygon func(int) bool, roots *RootTable) []*Node {
	root := n.RootPoint(start, vertexPoint)
	raws := rawSuccessors(n, m, root)

	children := make([]*Node, 0, len(raws))
	for _, rs := range raws {
		child := succToNode(n, rs, m, root, pool, isDestPolygon)
		if child == nil {
			continue
		}
		if roots.ShouldPrune(child.Root, child.G) {
			continue
		}
		roots.Record(child.Root, child.G)
		child.F = child.G + h.H(child, m)
		children = append(children, child)
	}
	return children
}

// succToNode resolves a rawSuccessor crossing polygon P = n.NextPolygon
// into a child Node in the polygon across that far edge, or nil if the
// far edge is an obstacle boundary or passes through a one-way polygon
// that isn't one of the active destinations (a one-way polygon may only
// be entered as a final destination, never as a through-path).
func succToNode(n *Node, rs rawSuccessor, m *mesh.Mesh, root geom.Point, pool *Pool, isDestPolygon func(int) bool) *Node {
	pid := n.NextPolygon
	next := m.Polygons[pid].Neighbors[rs.FarEdge]
	if next == mesh.ObstacleSentinel {
		return nil
	}
	if m.Polygons[next].IsOneWay && !isDestPolygon(next) {
		return nil
	}

	// A node already mid a forced straight-line run (ColType != ColNone)
	// must check whether this successor continues that same run before
	// trusting the raw cone classification: if it's still collinear with
	// the run's pivot, the turn point is decided by proximity to that
	// pivot rather than by which side of the cone it fell on.
	kind := rs.Kind
	if n.ColType != ColNone {
		pivot := chainPivot(n, root)
		if geom.IsCollinear(pivot, rs.Left, rs.Right) {
			if closerToLeft(pivot, rs.Left, rs.Right) {
				kind = LeftNonObservable
			} else {
				kind = RightNonObservable
			}
		}
	}

	// Resolve the child's root and ColType per spec.md §4.1's edge-case
	// table. A non-observable or collinear successor pivots at the
	// parent's own corresponding interval vertex (not the successor's
	// possibly-clipped one), and is dropped outright when that vertex is
	// a mesh vertex that isn't a corner (a straight path can't bend at a
	// non-corner vertex). When that vertex is interior to an edge
	// (NoVertex), the turn is still taken but the child's root falls
	// back to RootStart rather than a specific vertex, since there's
	// nothing to key root-pruning on.
	var childRoot int
	var childRootPoint geom.Point
	var colType ColType
	switch kind {
	case Observable:
		childRoot, childRootPoint, colType = n.Root, root, ColNone
	case LeftNonObservable, LeftCollinear:
		if n.LeftVertex != NoVertex && !m.Vertices[n.LeftVertex].IsCorner {
			return nil
		}
		childRoot = RootStart
		if n.LeftVertex != NoVertex {
			childRoot = n.LeftVertex
		}
		childRootPoint = n.Left
		if kind == LeftCollinear {
			colType = ColLeft
		}
	case RightNonObservable, RightCollinear:
		if n.RightVertex != NoVertex && !m.Vertices[n.RightVertex].IsCorner {
			return nil
		}
		childRoot = RootStart
		if n.RightVertex != NoVertex {
			childRoot = n.RightVertex
		}
		childRootPoint = n.Right
		if kind == RightCollinear {
			colType = ColRight
		}
	}

	from, to := m.EdgeEndpoints(pid, rs.FarEdge)
	entryInNext := m.EdgeIndexForVertices(next, from, to)

	child := pool.Alloc()
	child.Parent = n
	child.Left, child.Right = rs.Left, rs.Right
	child.LeftVertex, child.RightVertex = rs.LeftVertex, rs.RightVertex
	child.Edge = entryInNext
	child.NextPolygon = next
	child.Root = childRoot
	child.ColType = colType
	child.G = n.G + geom.Dist(root, childRootPoint)
	return child
}
