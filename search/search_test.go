package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/heuristic"
	"github.com/elektrokombinacija/meshknn-research/internal/testmesh"
	"github.com/elektrokombinacija/meshknn-research/search"
)

func TestRunUnitSquareStraightLine(t *testing.T) {
	m := testmesh.UnitSquare()
	inst := search.NewInstance(m, 64)

	start := geom.Point{X: 0.1, Y: 0.1}
	goal := geom.Point{X: 0.9, Y: 0.9}
	res := inst.Run(start, goal, heuristic.Zero{})

	assert.True(t, res.Found)
	assert.InDelta(t, geom.Dist(start, goal), res.Cost, 1e-6)
	assert.NoError(t, res.Err)
}

func TestRunLRoomBendsAroundReflexCorner(t *testing.T) {
	m := testmesh.LRoom()
	inst := search.NewInstance(m, 64)

	start := geom.Point{X: 0.1, Y: 0.1}
	goal := geom.Point{X: 0.9, Y: 0.9}
	res := inst.Run(start, goal, heuristic.Zero{})

	assert.True(t, res.Found)
	reflex := geom.Point{X: 0.4, Y: 0.6}
	direct := geom.Dist(start, goal)
	bent := geom.Dist(start, reflex) + geom.Dist(reflex, goal)
	assert.Greater(t, res.Cost, direct)
	assert.InDelta(t, bent, res.Cost, 1e-6)
}

func TestRunOffMeshReportsErrOffMesh(t *testing.T) {
	m := testmesh.UnitSquare()
	inst := search.NewInstance(m, 64)

	res := inst.Run(geom.Point{X: -5, Y: -5}, geom.Point{X: 0.5, Y: 0.5}, heuristic.Zero{})

	assert.False(t, res.Found)
	assert.ErrorIs(t, res.Err, search.ErrOffMesh)
}

func TestResetReclaimsPoolAndRootTable(t *testing.T) {
	m := testmesh.LRoom()
	inst := search.NewInstance(m, 64)

	start := geom.Point{X: 0.1, Y: 0.1}
	goal := geom.Point{X: 0.9, Y: 0.9}
	first := inst.Run(start, goal, heuristic.Zero{})
	assert.Greater(t, inst.Pool.Len(), 0)

	inst.Reset()
	assert.Equal(t, 0, inst.Pool.Len())

	second := inst.Run(start, goal, heuristic.Zero{})
	assert.Equal(t, first.Cost, second.Cost)
}

func TestReachesGoalDoesNotRequireGoalOnInterval(t *testing.T) {
	// The node that crosses LRoom's shared edge (0.4,0.6)-(0.4,1.0) into
	// polygon 1 has NextPolygon==1 (the goal's polygon) even though goal
	// (0.9,0.9) is nowhere near that edge; ReachesGoal must still accept
	// it so the search doesn't dead-end one step short of the goal.
	n := &search.Node{
		NextPolygon: 1,
		Left:        geom.Point{X: 0.4, Y: 0.6},
		Right:       geom.Point{X: 0.4, Y: 1.0},
	}
	goal := geom.Point{X: 0.9, Y: 0.9}
	assert.True(t, search.ReachesGoal(n, goal, []int{1}))
	assert.False(t, search.ReachesGoal(n, goal, []int{0}))
}

func TestFinalRootPointBendsThroughIntervalEndpointWhenGoalIsOffToOneSide(t *testing.T) {
	// Left/Right follow mesh.EdgeLeftRight's convention for LRoom's
	// shared edge (0.4,0.6)-(0.4,1.0): (0.4,1.0) is left, (0.4,0.6) is
	// right. From root (0.1,0.1) toward goal (0.9,0.9), the straight line
	// swings past the right vertex (the reflex corner), so the true path
	// bends through it.
	n := &search.Node{
		Left:  geom.Point{X: 0.4, Y: 1.0},
		Right: geom.Point{X: 0.4, Y: 0.6},
	}
	root := geom.Point{X: 0.1, Y: 0.1}
	goal := geom.Point{X: 0.9, Y: 0.9}

	pivot := search.FinalRootPoint(n, root, goal)
	assert.True(t, geom.Equal(n.Right, pivot))

	want := geom.Dist(root, n.Right) + geom.Dist(n.Right, goal)
	assert.InDelta(t, want, search.FinalDist(n, root, goal), 1e-9)
}

func TestFinalRootPointIsRootWhenGoalIsDirectlyVisible(t *testing.T) {
	// A CCW polygon boundary walking from (1,0) to (1,1) along this edge
	// has its interior (and so the search root) at x<1, matching
	// mesh.EdgeLeftRight's convention: left is the vertex reached second
	// ((1,1)), right is reached first ((1,0)).
	n := &search.Node{
		Left:  geom.Point{X: 1, Y: 1},
		Right: geom.Point{X: 1, Y: 0},
	}
	root := geom.Point{X: 0, Y: 0.5}
	goal := geom.Point{X: 1, Y: 0.5}

	pivot := search.FinalRootPoint(n, root, goal)
	assert.True(t, geom.Equal(root, pivot))
	assert.InDelta(t, geom.Dist(root, goal), search.FinalDist(n, root, goal), 1e-9)
}

func TestRunIsAdmissibleAgainstEuclideanLowerBound(t *testing.T) {
	m := testmesh.LRoom()
	inst := search.NewInstance(m, 64)

	start := geom.Point{X: 0.05, Y: 0.95}
	goal := geom.Point{X: 0.95, Y: 0.65}
	res := inst.Run(start, goal, heuristic.Zero{})

	assert.True(t, res.Found)
	assert.GreaterOrEqual(t, res.Cost, geom.Dist(start, goal)-1e-9)
}
