package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/heuristic"
	"github.com/elektrokombinacija/meshknn-research/search"
	"github.com/elektrokombinacija/meshknn-research/spatial"
)

func TestTargetHIsAdmissibleLowerBound(t *testing.T) {
	goals := map[spatial.GoalID]geom.Point{0: {X: 10, Y: 0}}
	h := &heuristic.Target{Start: geom.Point{X: 0, Y: 0}, Goals: spatial.NewGoalIndex(goals)}

	n := &search.Node{
		Root:       search.RootStart,
		Left:       geom.Point{X: 1, Y: -1},
		Right:      geom.Point{X: 1, Y: 1},
		LeftVertex: search.NoVertex, RightVertex: search.NoVertex,
	}

	est := h.H(n, nil)
	trueDist := geom.Dist(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	assert.LessOrEqual(t, est, trueDist+1e-9)
}

func TestTargetHReturnsInfWhenNoGoalsLeft(t *testing.T) {
	goals := map[spatial.GoalID]geom.Point{0: {X: 10, Y: 0}}
	h := &heuristic.Target{Start: geom.Point{X: 0, Y: 0}, Goals: spatial.NewGoalIndex(goals)}
	h.OnSeal(0)

	n := &search.Node{
		Root:       search.RootStart,
		Left:       geom.Point{X: 1, Y: -1},
		Right:      geom.Point{X: 1, Y: 1},
		LeftVertex: search.NoVertex, RightVertex: search.NoVertex,
	}
	assert.True(t, math.IsInf(h.H(n, nil), 1))
}

func TestTargetHCollinearIntervalUsesNearestEndpoint(t *testing.T) {
	goals := map[spatial.GoalID]geom.Point{0: {X: 5, Y: 0}}
	h := &heuristic.Target{Start: geom.Point{X: 0, Y: 0}, Goals: spatial.NewGoalIndex(goals)}

	n := &search.Node{
		Root:       search.RootStart,
		Left:       geom.Point{X: 2, Y: 0},
		Right:      geom.Point{X: 4, Y: 0},
		LeftVertex: search.NoVertex, RightVertex: search.NoVertex,
	}

	got := h.H(n, nil)
	// pivot is whichever endpoint is nearer the root (l, at distance 2,
	// beats r at distance 4).
	want := geom.Dist(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}) +
		geom.Dist(geom.Point{X: 2, Y: 0}, geom.Point{X: 5, Y: 0})
	assert.InDelta(t, want, got, 1e-9)
}
