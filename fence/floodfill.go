package fence

import (
	"container/heap"
	"sort"
	"time"

	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/mesh"
	"github.com/elektrokombinacija/meshknn-research/search"
)

const noVertex = -1

// ffState is one in-flight flood-fill state: the same (apex, left,
// right) interval representation search.Node uses, tagged with the
// goal it originated from and carrying [lb, ub] instead of a single g.
// It is the Go equivalent of knnMeshEdge.h's FloodFillNode, minus the
// col_type bookkeeping — the flood-fill only needs valid bounds, not
// the exact taut path, so it skips the collinear-chain continuation
// search.Expand performs.
type ffState struct {
	apex                    geom.Point
	apexVertex              int
	left, right             geom.Point
	leftVertex, rightVertex int
	poly                    int
	entryEdge               int
	gid                     int
	lb, ub                  float64
}

type ffHeap []*ffState

func (h ffHeap) Len() int { return len(h) }
func (h ffHeap) Less(i, j int) bool {
	if h[i].lb != h[j].lb {
		return h[i].lb < h[j].lb
	}
	return h[i].ub < h[j].ub
}
func (h ffHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *ffHeap) Push(x any)   { *h = append(*h, x.(*ffState)) }
func (h *ffHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

type seenKey struct{ vertex, gid int }

// rootTable is the flood-fill's per-(vertex, goal) analogue of
// search.RootTable: an apex that is a mesh vertex only needs to be
// expanded once per goal at its best [lb], since lb only grows as the
// fill radiates outward and a dominated state's descendants would only
// ever dominate worse dams than the already-recorded one.
type rootTable struct {
	best map[seenKey]float64
}

func newRootTable() *rootTable { return &rootTable{best: make(map[seenKey]float64)} }

func (t *rootTable) shouldPrune(vertex, gid int, lb float64) bool {
	if vertex == noVertex {
		return false
	}
	best, ok := t.best[seenKey{vertex, gid}]
	return ok && best+geom.Epsilon < lb
}

func (t *rootTable) record(vertex, gid int, lb float64) {
	if vertex == noVertex {
		return
	}
	key := seenKey{vertex, gid}
	if best, ok := t.best[key]; !ok || lb < best {
		t.best[key] = lb
	}
}

// BuildDams runs the mesh-edge dam flood-fill of spec.md §4.6: a single
// multi-source best-first search seeded from every goal's containing
// polygon(s) with lb=ub=0, where each polygon crossing deposits a
// candidate Dam on the entered edge's Pareto front for that goal.
// Expansion stops admitting new states once deadline passes, returning
// whatever front has been built so far — the same coarse wall-clock
// deadline policy spec.md §4.4 applies to search, applied here at the
// flood-fill's own per-pop boundary.
func BuildDams(m *mesh.Mesh, goals map[int]geom.Point, deadline time.Time) EdgeDams {
	dams := make(EdgeDams, len(m.Polygons))
	for pid, poly := range m.Polygons {
		dams[pid] = make([][]Dam, poly.NumSides())
	}

	roots := newRootTable()
	var open ffHeap
	heap.Init(&open)

	for gid, p := range goals {
		for _, seed := range seedStates(m, p, gid) {
			if roots.shouldPrune(seed.apexVertex, seed.gid, seed.lb) {
				continue
			}
			roots.record(seed.apexVertex, seed.gid, seed.lb)
			heap.Push(&open, seed)
		}
	}

	popsSinceCheck := 0
	for open.Len() > 0 {
		popsSinceCheck++
		if popsSinceCheck >= 256 {
			popsSinceCheck = 0
			if time.Now().After(deadline) {
				break
			}
		}
		cur := heap.Pop(&open).(*ffState)

		for _, child := range expandState(m, cur) {
			if roots.shouldPrune(child.apexVertex, child.gid, child.lb) {
				continue
			}
			roots.record(child.apexVertex, child.gid, child.lb)

			// admit's domination check only makes sense within one
			// goal's Pareto front (spec.md §4.6); split the edge's
			// mixed-goal dam list before calling it.
			full := dams[child.poly][child.entryEdge]
			sameGoal := make([]Dam, 0, len(full))
			others := make([]Dam, 0, len(full))
			for _, d := range full {
				if d.GID == child.gid {
					sameGoal = append(sameGoal, d)
				} else {
					others = append(others, d)
				}
			}
			updated, admitted := admit(sameGoal, Dam{LB: child.lb, UB: child.ub, GID: child.gid})
			dams[child.poly][child.entryEdge] = append(others, updated...)
			if admitted {
				heap.Push(&open, child)
			}
		}
	}

	for pid := range dams {
		for edge := range dams[pid] {
			sort.Slice(dams[pid][edge], func(i, j int) bool {
				a, b := dams[pid][edge][i], dams[pid][edge][j]
				if a.LB != b.LB {
					return a.LB < b.LB
				}
				return a.UB < b.UB
			})
		}
	}

	return dams
}

// seedStates returns the lazy flood-fill seeds for goal gid at point p:
// one per incident polygon for a point exactly on a shared edge (two) or
// on a non-corner vertex, and a single seed in the located polygon
// otherwise (a corner vertex included), each with a degenerate [p,p] interval and entryEdge -1 so expandState
// walks every side, mirroring search.Seed's LAZY seeding.
func seedStates(m *mesh.Mesh, p geom.Point, gid int) []*ffState {
	loc := search.LocatePoint(m, p)
	mk := func(poly int) *ffState {
		return &ffState{
			apex: p, apexVertex: noVertex,
			left: p, right: p,
			leftVertex: noVertex, rightVertex: noVertex,
			poly: poly, entryEdge: -1,
			gid: gid,
		}
	}
	switch loc.Type {
	case mesh.NotOnMesh:
		return nil
	case mesh.OnEdge:
		return []*ffState{mk(loc.Poly1), mk(loc.Poly2)}
	case mesh.OnNonCornerVertex:
		states := make([]*ffState, 0, len(loc.Polygons))
		for _, poly := range loc.Polygons {
			states = append(states, mk(poly))
		}
		return states
	default:
		if loc.Poly1 == mesh.ObstacleSentinel {
			return nil
		}
		return []*ffState{mk(loc.Poly1)}
	}
}

// expandState walks the far edges of cur's polygon (every side for a
// lazy seed, every side but the entry edge otherwise) and clips each
// against cur's cone.
func expandState(m *mesh.Mesh, cur *ffState) []*ffState {
	poly := m.Polygons[cur.poly]
	sides := poly.NumSides()
	entry, start, count := cur.entryEdge, 1, sides-1
	if entry < 0 {
		entry, start, count = 0, 0, sides
	}
	var out []*ffState
	for k := start; k < start+count; k++ {
		idx := (entry + k) % sides
		rightVID, leftVID := poly.Vertices[idx], poly.Vertices[(idx+1)%sides]
		p0 := m.Vertices[rightVID].P
		p1 := m.Vertices[leftVID].P
		out = append(out, clipFarEdge(m, cur, idx, p0, p1, rightVID, leftVID)...)
	}
	return out
}

// clipFarEdge splits far edge [p0,p1] at the points where the rays
// cur.apex->cur.left and cur.apex->cur.right cross it, classifying each
// resulting sub-segment as left-non-observable / observable /
// right-non-observable relative to cur's cone.
func clipFarEdge(m *mesh.Mesh, cur *ffState, edgeIdx int, p0, p1 geom.Point, rightVID, leftVID int) []*ffState {
	breaks := []float64{0, 1}
	if t, ok := rayParam(cur.apex, cur.left, p0, p1); ok {
		breaks = append(breaks, t)
	}
	if t, ok := rayParam(cur.apex, cur.right, p0, p1); ok {
		breaks = append(breaks, t)
	}
	breaks = sortedUnique(breaks)

	next := m.Polygons[cur.poly].Neighbors[edgeIdx]
	out := make([]*ffState, 0, len(breaks)-1)
	for i := 0; i+1 < len(breaks); i++ {
		ta, tb := breaks[i], breaks[i+1]
		a := lerp(p0, p1, ta)
		b := lerp(p0, p1, tb)
		mid := lerp(p0, p1, (ta+tb)/2)
		kind := classify(cur.apex, cur.left, cur.right, mid)
		if child := buildChild(m, cur, kind, edgeIdx, next, a, b, ta, tb, rightVID, leftVID); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// buildChild resolves one clipped sub-segment into the flood-fill state
// entering the neighboring polygon, or nil if that polygon is an
// obstacle or a one-way polygon (the flood-fill radiates from every
// goal with no fixed destination, so unlike search.Expand it has no
// "is this the destination" test to let a one-way entry through — it
// conservatively never crosses into one, which keeps every dam it does
// produce a sound lower bound at the cost of coverage through one-way
// polygons).
func buildChild(m *mesh.Mesh, cur *ffState, kind int, edgeIdx, next int, a, b geom.Point, ta, tb float64, rightVID, leftVID int) *ffState {
	if next == mesh.ObstacleSentinel {
		return nil
	}
	if m.Polygons[next].IsOneWay {
		return nil
	}

	var pivot geom.Point
	var pivotVertex int
	switch kind {
	case 0:
		pivot, pivotVertex = cur.apex, cur.apexVertex
	case -1:
		pivot, pivotVertex = cur.left, cur.leftVertex
	default:
		pivot, pivotVertex = cur.right, cur.rightVertex
	}

	near, far := a, b
	if geom.Dist(pivot, b) < geom.Dist(pivot, a) {
		near, far = b, a
	}

	rightVertex, leftVertex := noVertex, noVertex
	if ta == 0 {
		rightVertex = rightVID
	}
	if tb == 1 {
		leftVertex = leftVID
	}

	from, to := m.EdgeEndpoints(cur.poly, edgeIdx)
	entryInNext := m.EdgeIndexForVertices(next, from, to)

	return &ffState{
		apex: pivot, apexVertex: pivotVertex,
		left: b, right: a,
		leftVertex: leftVertex, rightVertex: rightVertex,
		poly: next, entryEdge: entryInNext,
		gid: cur.gid,
		lb:  cur.lb + geom.Dist(pivot, near),
		ub:  cur.ub + geom.Dist(pivot, far),
	}
}

// side returns -1/0/+1 for x lying left of, on, or right of ray
// root->pivot.
func side(root, pivot, x geom.Point) int {
	switch geom.OrientationOf(root, pivot, x) {
	case geom.Collinear:
		return 0
	case geom.CounterClockwise:
		return -1
	default:
		return 1
	}
}

// classify returns -1 (left-non-observable), 0 (observable), or +1
// (right-non-observable) for point x against the cone (apex, left,
// right).
func classify(apex, left, right, x geom.Point) int {
	if geom.Equal(left, right) {
		return side(apex, left, x)
	}
	if side(apex, left, x) < 0 {
		return -1
	}
	if side(apex, right, x) > 0 {
		return 1
	}
	return 0
}

func rayParam(root, pivot, p0, p1 geom.Point) (t float64, ok bool) {
	d := pivot.Sub(root)
	denom := d.Cross(p1.Sub(p0))
	if denom > -geom.Epsilon && denom < geom.Epsilon {
		return 0, false
	}
	numer := -d.Cross(p0.Sub(root))
	t = numer / denom
	return t, t > geom.Epsilon && t < 1-geom.Epsilon
}

func lerp(a, b geom.Point, t float64) geom.Point { return a.Add(b.Sub(a).Scale(t)) }

func sortedUnique(ts []float64) []float64 {
	sort.Float64s(ts)
	out := ts[:1]
	for _, t := range ts[1:] {
		if t-out[len(out)-1] > geom.Epsilon {
			out = append(out, t)
		}
	}
	return out
}
