package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/meshknn-research/engine"
	"github.com/elektrokombinacija/meshknn-research/fence"
	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/heuristic"
	"github.com/elektrokombinacija/meshknn-research/internal/testmesh"
	"github.com/elektrokombinacija/meshknn-research/spatial"
)

func goals() map[int]geom.Point {
	return map[int]geom.Point{
		0: {X: 0.9, Y: 0.9},
		1: {X: 0.3, Y: 0.9},
		2: {X: 0.3, Y: 0.1},
	}
}

func TestEngineFindsKNearestInIncreasingCostOrder(t *testing.T) {
	m := testmesh.LRoom()
	start := geom.Point{X: 0.1, Y: 0.1}

	eng := engine.NewEngine(m, heuristic.Zero{}, 256)
	eng.SetStart(start)
	eng.SetGoals(goals())
	eng.SetK(3)
	eng.Search(time.Now().Add(time.Second))

	assert.NoError(t, eng.Err())
	prev := -1.0
	for k := 0; k < 3; k++ {
		gid := eng.GetGid(k)
		assert.GreaterOrEqual(t, gid, 0)
		cost := eng.GetCost(k)
		assert.GreaterOrEqual(t, cost, prev)
		prev = cost
	}
}

func TestEngineBlindTargetAndFenceAgreeOnSealedCosts(t *testing.T) {
	m := testmesh.LRoom()
	start := geom.Point{X: 0.1, Y: 0.1}
	gs := goals()

	blind := engine.NewEngine(m, heuristic.Zero{}, 256)
	blind.SetStart(start)
	blind.SetGoals(gs)
	blind.SetK(len(gs))
	blind.Search(time.Now().Add(time.Second))

	goalIdx := make(map[spatial.GoalID]geom.Point, len(gs))
	for gid, p := range gs {
		goalIdx[spatial.GoalID(gid)] = p
	}
	target := engine.NewEngine(m, &heuristic.Target{Start: start, Goals: spatial.NewGoalIndex(goalIdx)}, 256)
	target.SetStart(start)
	target.SetGoals(gs)
	target.SetK(len(gs))
	target.Search(time.Now().Add(time.Second))

	dams := fence.BuildDams(m, gs, time.Now().Add(time.Second))
	ids := make([]int, 0, len(gs))
	for gid := range gs {
		ids = append(ids, gid)
	}
	fenceEng := engine.NewEngine(m, heuristic.NewFence(dams, ids), 256)
	fenceEng.SetStart(start)
	fenceEng.SetGoals(gs)
	fenceEng.SetK(len(gs))
	fenceEng.Search(time.Now().Add(time.Second))

	for gid := range gs {
		blindCost := blind.GetCost(blind.GetGoalOrd(gid))
		targetCost := target.GetCost(target.GetGoalOrd(gid))
		fenceCost := fenceEng.GetCost(fenceEng.GetGoalOrd(gid))
		assert.InDelta(t, blindCost, targetCost, 1e-6)
		assert.InDelta(t, blindCost, fenceCost, 1e-6)
	}
}

func TestEngineGetPathPointsStartsAndEndsAtQueryPoints(t *testing.T) {
	m := testmesh.LRoom()
	start := geom.Point{X: 0.1, Y: 0.1}

	eng := engine.NewEngine(m, heuristic.Zero{}, 256)
	eng.SetStart(start)
	eng.SetGoals(goals())
	eng.SetK(1)
	eng.Search(time.Now().Add(time.Second))

	path := eng.GetPathPoints(0)
	assert.NotEmpty(t, path)
	assert.InDelta(t, start.X, path[0].X, 1e-9)
	assert.InDelta(t, start.Y, path[0].Y, 1e-9)
}

func TestEngineUnreachedGoalReportsNegativeOne(t *testing.T) {
	m := testmesh.UnitSquare()
	eng := engine.NewEngine(m, heuristic.Zero{}, 256)
	eng.SetStart(geom.Point{X: 0.1, Y: 0.1})
	eng.SetGoals(map[int]geom.Point{0: {X: 0.5, Y: 0.5}})
	eng.SetK(2) // only one goal exists
	eng.Search(time.Now().Add(time.Second))

	assert.Equal(t, 0, eng.GetGid(0))
	assert.Equal(t, -1, eng.GetGid(1))
	assert.Equal(t, -1.0, eng.GetCost(1))
}
