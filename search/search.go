package search

import (
	"container/heap"

	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/mesh"
)

// openHeap is the search's priority queue, ordered by F ascending with
// ties broken toward larger G (deeper, closer-to-goal nodes first),
// following the container/heap pattern used throughout this codebase.
type openHeap []*Node

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].G > h[j].G
}
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x any)   { *h = append(*h, x.(*Node)) }
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// Instance is a single-pair best-first search over a mesh, reusable
// across queries via Reset (spec.md §5: one Pool/RootTable per search
// goroutine, reclaimed rather than freed between runs).
type Instance struct {
	Mesh  *mesh.Mesh
	Pool  *Pool
	Roots *RootTable

	open openHeap

	NodesGenerated int
	NodesPushed    int
	NodesPopped    int
}

// NewInstance returns a search instance for m, with pool/root-table
// sizing hints for the expected interval and vertex counts.
func NewInstance(m *mesh.Mesh, slabSize int) *Instance {
	return &Instance{
		Mesh:  m,
		Pool:  NewPool(slabSize),
		Roots: NewRootTable(len(m.Vertices)),
	}
}

// Reset reclaims the node pool and starts a fresh root-pruning epoch,
// readying the instance for the next Run.
func (s *Instance) Reset() {
	s.Pool.Reclaim()
	s.Roots.Reset()
	s.open = s.open[:0]
	s.NodesGenerated, s.NodesPushed, s.NodesPopped = 0, 0, 0
}

// Result is the outcome of a single-pair search. Err is ErrOffMesh when
// start or goal isn't on the mesh; a search that simply finds no path
// between two on-mesh points reports Found=false with a nil Err.
type Result struct {
	Found bool
	Cost  float64
	Path  []geom.Point
	Err   error
}

// Run finds the shortest geodesic path from start to goal, using h as
// the admissible lower bound (heuristic.Zero for an exact best-first
// search, or a goal-aware heuristic for a faster one). Callers
// performing repeat queries on the same mesh should call Reset between
// runs instead of allocating a new Instance.
func (s *Instance) Run(start, goal geom.Point, h Heuristic) Result {
	startLoc := LocatePoint(s.Mesh, start)
	goalLoc := LocatePoint(s.Mesh, goal)
	if startLoc.Type == mesh.NotOnMesh || goalLoc.Type == mesh.NotOnMesh {
		return Result{Err: ErrOffMesh}
	}

	goalPolys := GoalPolygons(goalLoc)
	isDest := func(p int) bool {
		for _, gp := range goalPolys {
			if gp == p {
				return true
			}
		}
		return false
	}

	vertexPoint := func(vid int) geom.Point { return s.Mesh.Vertices[vid].P }

	seeds := Seed(s.Mesh, start, startLoc, s.Pool)
	s.open = s.open[:0]
	heap.Init(&s.open)
	for _, seed := range seeds {
		seed.F = seed.G + h.H(seed, s.Mesh)
		heap.Push(&s.open, seed)
		s.NodesGenerated++
		s.NodesPushed++
	}

	for s.open.Len() > 0 {
		n := heap.Pop(&s.open).(*Node)
		s.NodesPopped++

		if ReachesGoal(n, goal, goalPolys) {
			root := n.RootPoint(start, vertexPoint)
			cost := n.G + FinalDist(n, root, goal)
			return Result{Found: true, Cost: cost, Path: ReconstructPath(n, start, goal, vertexPoint)}
		}

		for _, child := range Expand(n, s.Mesh, start, vertexPoint, s.Pool, h, isDest, s.Roots) {
			s.NodesGenerated++
			heap.Push(&s.open, child)
			s.NodesPushed++
		}
	}
	return Result{}
}

// GoalPolygons returns loc.Poly1, plus loc.Poly2 for a point on an edge
// shared by two polygons; for a vertex only Poly1 is returned, not every
// polygon around it — reused by Run for the single-pair goal and by engine.Engine per kNN
// goal.
func GoalPolygons(loc mesh.PointLocation) []int {
	if loc.Poly2 != mesh.ObstacleSentinel {
		return []int{loc.Poly1, loc.Poly2}
	}
	return []int{loc.Poly1}
}

// ReachesGoal reports whether n.NextPolygon is one of goalPolys — the
// only gate searchinstance.cpp's search() applies (next_poly ==
// end_polygon). The goal need not lie on n's interval [n.Left, n.Right]:
// once the interval's polygon is the goal's polygon, the true path to
// goal may bend through Left or Right before reaching it, which
// FinalRootPoint/FinalDist resolve.
func ReachesGoal(n *Node, goal geom.Point, goalPolys []int) bool {
	for _, gp := range goalPolys {
		if gp == n.NextPolygon {
			return true
		}
	}
	return false
}

// FinalRootPoint resolves the point n's path must pass through on its
// way from root to goal, mirroring searchinstance.cpp's final_root: if
// the root-goal ray swings past Left or Right, the path bends through
// that vertex; otherwise goal is directly visible from root and no
// intermediate point is needed.
func FinalRootPoint(n *Node, root, goal geom.Point) geom.Point {
	rootGoal := goal.Sub(root)
	if rootGoal.Cross(n.Left.Sub(root)) < -geom.Epsilon {
		return n.Left
	}
	if n.Right.Sub(root).Cross(rootGoal) < -geom.Epsilon {
		return n.Right
	}
	return root
}

// FinalDist returns the true remaining distance from root to goal
// through n's interval, routing via FinalRootPoint's resolved pivot when
// goal isn't directly visible from root.
func FinalDist(n *Node, root, goal geom.Point) float64 {
	pivot := FinalRootPoint(n, root, goal)
	if geom.Equal(pivot, root) {
		return geom.Dist(root, goal)
	}
	return geom.Dist(root, pivot) + geom.Dist(pivot, goal)
}

// ReconstructPath walks n's parent chain back to a seed, collecting the
// taut-string vertices (spec.md §6's GetPathPoints): goal, the final
// bend through n's interval if goal isn't directly visible from n's
// root (FinalRootPoint), each node's root point (skipping repeats where
// consecutive nodes share a root), down to start.
func ReconstructPath(n *Node, start, goal geom.Point, vertexPoint func(int) geom.Point) []geom.Point {
	root := n.RootPoint(start, vertexPoint)
	points := []geom.Point{goal}
	if pivot := FinalRootPoint(n, root, goal); !geom.Equal(pivot, root) {
		points = append(points, pivot)
	}
	for cur := n; cur != nil; cur = cur.Parent {
		root := cur.RootPoint(start, vertexPoint)
		if len(points) == 0 || !geom.Equal(points[len(points)-1], root) {
			points = append(points, root)
		}
	}
	if !geom.Equal(points[len(points)-1], start) {
		points = append(points, start)
	}
	// Reverse into start->goal order.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}
