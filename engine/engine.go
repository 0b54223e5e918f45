// Package engine implements the kNN search of spec.md §4.3/§4.4: a
// single best-first loop, shared by the blind, target-heuristic, and
// fence-heuristic variants by parameterizing over a search.Heuristic
// (composition, not inheritance, per spec.md §9's polymorphism note).
package engine

import (
	"container/heap"
	"time"

	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/mesh"
	"github.com/elektrokombinacija/meshknn-research/search"
)

// finalNode is one sealed kNN result: the node whose interval first
// reached goal GID, and the geodesic cost of that path.
type finalNode struct {
	node  *search.Node
	gid   int
	cost  float64
	point geom.Point
}

// engineHeap mirrors search.Instance's internal priority queue (F
// ascending, ties toward larger G) since kNN needs its own Expand/pop
// loop instead of search.Instance.Run's single-goal one.
type engineHeap []*search.Node

func (h engineHeap) Len() int { return len(h) }
func (h engineHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].G > h[j].G
}
func (h engineHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *engineHeap) Push(x any)   { *h = append(*h, x.(*search.Node)) }
func (h *engineHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// Engine runs a single kNN query over a mesh: find the k nearest goals
// (by geodesic distance) to a start point, in increasing-cost order.
// One Engine is reused across repeated Search calls via its own
// Pool/RootTable, reclaimed at the start of each Search.
type Engine struct {
	Mesh      *mesh.Mesh
	Pool      *search.Pool
	Roots     *search.RootTable
	Heuristic search.Heuristic

	K     int
	start geom.Point
	goals map[int]geom.Point

	open       engineHeap
	finalNodes []finalNode

	NodesGenerated     int
	NodesPushed        int
	NodesPopped        int
	NodesPrunedPostPop int
	SuccessorCalls     int
	HeuristicCall      int
	HeuristicMicro     float64

	searchMicro float64
	timedOut    bool
}

// Err reports search.ErrDeadlineExceeded if the last Search call ran out
// of wall-clock budget before finding K goals, else nil — even then,
// whatever goals were already sealed (GetCost/GetGid for k <
// len(finalNodes)) remain valid best-so-far results, per spec.md §4.3's
// "no partial promises of ordering beyond what's sealed" policy.
func (e *Engine) Err() error {
	if e.timedOut {
		return search.ErrDeadlineExceeded
	}
	return nil
}

// NewEngine returns a kNN engine over m, scored by h.
func NewEngine(m *mesh.Mesh, h search.Heuristic, slabSize int) *Engine {
	return &Engine{
		Mesh:      m,
		Pool:      search.NewPool(slabSize),
		Roots:     search.NewRootTable(len(m.Vertices)),
		Heuristic: h,
		K:         1,
	}
}

// SetK sets how many nearest goals Search looks for.
func (e *Engine) SetK(k int) { e.K = k }

// SetStart sets the query's start point.
func (e *Engine) SetStart(p geom.Point) { e.start = p }

// SetGoals sets the candidate goal set, keyed by caller-chosen ids.
func (e *Engine) SetGoals(goals map[int]geom.Point) { e.goals = goals }

func (e *Engine) vertexPoint(vid int) geom.Point { return e.Mesh.Vertices[vid].P }

// H implements search.Heuristic, delegating to e.Heuristic while
// counting calls and accumulating wall time, exposed via HeuristicCall/
// HeuristicMicro for the caller's diagnostics.
func (e *Engine) H(n *search.Node, m *mesh.Mesh) float64 {
	started := time.Now()
	v := e.Heuristic.H(n, m)
	e.HeuristicCall++
	e.HeuristicMicro += float64(time.Since(started).Microseconds())
	return v
}

// OnSeal implements search.Heuristic, delegating to e.Heuristic.
func (e *Engine) OnSeal(gid int) { e.Heuristic.OnSeal(gid) }

// Search runs the kNN best-first search of spec.md §4.4: expand nodes
// in increasing f order; whenever a popped node enters the polygon of
// an unreached goal, push a final node whose f is that goal's exact
// cost, and commit the goal (cost, final node, seal it from the
// heuristic) when that final node is popped. Keep searching until K
// goals are sealed, open empties, or deadline passes (checked on the
// first pop and every 64th pop after it, per spec.md §4.3's
// single-threaded scheduling model).
func (e *Engine) Search(deadline time.Time) {
	started := time.Now()
	e.Pool.Reclaim()
	e.Roots.Reset()
	e.finalNodes = e.finalNodes[:0]
	e.NodesGenerated, e.NodesPushed, e.NodesPopped = 0, 0, 0
	e.NodesPrunedPostPop, e.SuccessorCalls = 0, 0
	e.HeuristicCall, e.HeuristicMicro = 0, 0
	e.timedOut = false

	type goalInfo struct {
		point geom.Point
		loc   mesh.PointLocation
		polys []int
	}
	unreached := make(map[int]*goalInfo, len(e.goals))
	destPolys := make(map[int]bool)
	for gid, p := range e.goals {
		loc := search.LocatePoint(e.Mesh, p)
		polys := search.GoalPolygons(loc)
		unreached[gid] = &goalInfo{point: p, loc: loc, polys: polys}
		for _, pid := range polys {
			destPolys[pid] = true
		}
	}
	isDest := func(pid int) bool { return destPolys[pid] }

	k := e.K
	if k > len(e.goals) {
		k = len(e.goals)
	}

	startLoc := search.LocatePoint(e.Mesh, e.start)
	seeds := search.Seed(e.Mesh, e.start, startLoc, e.Pool)

	e.open = e.open[:0]
	heap.Init(&e.open)
	for _, seed := range seeds {
		seed.F = seed.G + e.H(seed, e.Mesh)
		heap.Push(&e.open, seed)
		e.NodesGenerated++
		e.NodesPushed++
	}

	pending := make(map[*search.Node]finalNode)
	popsSinceDeadlineCheck := 63 // so the first pop checks the deadline
	for e.open.Len() > 0 && len(e.finalNodes) < k {
		popsSinceDeadlineCheck++
		if popsSinceDeadlineCheck >= 64 {
			popsSinceDeadlineCheck = 0
			if time.Now().After(deadline) {
				if len(e.finalNodes) < k {
					e.timedOut = true
				}
				break
			}
		}

		n := heap.Pop(&e.open).(*search.Node)
		e.NodesPopped++

		if fn, ok := pending[n]; ok {
			if _, still := unreached[fn.gid]; still {
				e.finalNodes = append(e.finalNodes, fn)
				e.OnSeal(fn.gid)
				delete(unreached, fn.gid)
			}
			continue
		}
		for gid, gi := range unreached {
			if !search.ReachesGoal(n, gi.point, gi.polys) {
				continue
			}
			root := n.RootPoint(e.start, e.vertexPoint)
			final := e.Pool.Alloc()
			*final = *n
			final.F = n.G + search.FinalDist(n, root, gi.point)
			pending[final] = finalNode{node: final, gid: gid, cost: final.F, point: gi.point}
			heap.Push(&e.open, final)
			e.NodesPushed++
		}
		if len(e.finalNodes) >= k {
			break
		}

		e.SuccessorCalls++
		for _, child := range search.Expand(n, e.Mesh, e.start, e.vertexPoint, e.Pool, e, isDest, e.Roots) {
			e.NodesGenerated++
			heap.Push(&e.open, child)
			e.NodesPushed++
		}
	}

	e.searchMicro = float64(time.Since(started).Microseconds())
}

// GetCost returns the geodesic cost of the k-th (0-indexed) nearest
// goal found, or -1 if fewer than k+1 goals were reached.
func (e *Engine) GetCost(k int) float64 {
	if k < 0 || k >= len(e.finalNodes) {
		return -1
	}
	return e.finalNodes[k].cost
}

// GetGid returns the goal id of the k-th nearest goal found, or -1.
func (e *Engine) GetGid(k int) int {
	if k < 0 || k >= len(e.finalNodes) {
		return -1
	}
	return e.finalNodes[k].gid
}

// GetGoalOrd returns the rank (0-indexed) at which goal gid was sealed,
// or -1 if it was never reached.
func (e *Engine) GetGoalOrd(gid int) int {
	for i, fn := range e.finalNodes {
		if fn.gid == gid {
			return i
		}
	}
	return -1
}

// GetPathPoints returns the taut-string path to the k-th nearest goal.
func (e *Engine) GetPathPoints(k int) []geom.Point {
	if k < 0 || k >= len(e.finalNodes) {
		return nil
	}
	fn := e.finalNodes[k]
	return search.ReconstructPath(fn.node, e.start, fn.point, e.vertexPoint)
}

// GetSearchMicro returns the wall-clock time of the last Search call, in
// microseconds.
func (e *Engine) GetSearchMicro() float64 { return e.searchMicro }
