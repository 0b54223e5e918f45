package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/meshknn-research/fence"
	"github.com/elektrokombinacija/meshknn-research/heuristic"
	"github.com/elektrokombinacija/meshknn-research/search"
)

func TestFenceHUsesMinLBAmongUnreachedGoals(t *testing.T) {
	dams := fence.EdgeDams{
		{ // polygon 0
			{ // edge 0
				{LB: 3, UB: 5, GID: 1},
				{LB: 1, UB: 9, GID: 2},
			},
		},
	}
	h := heuristic.NewFence(dams, []int{1, 2})

	n := &search.Node{NextPolygon: 0, Edge: 0}
	assert.Equal(t, 1.0, h.H(n, nil))
}

func TestFenceHIgnoresSealedGoals(t *testing.T) {
	dams := fence.EdgeDams{
		{
			{
				{LB: 3, UB: 5, GID: 1},
				{LB: 1, UB: 9, GID: 2},
			},
		},
	}
	h := heuristic.NewFence(dams, []int{1, 2})
	h.OnSeal(2)

	n := &search.Node{NextPolygon: 0, Edge: 0}
	assert.Equal(t, 3.0, h.H(n, nil))
}

func TestFenceHFallsBackToZeroWithoutDamCoverage(t *testing.T) {
	dams := fence.EdgeDams{{{}}}
	h := heuristic.NewFence(dams, []int{1})

	n := &search.Node{NextPolygon: 0, Edge: 0}
	assert.Equal(t, 0.0, h.H(n, nil))
}

func TestFenceHReturnsInfWhenAllGoalsSealed(t *testing.T) {
	dams := fence.EdgeDams{{{}}}
	h := heuristic.NewFence(dams, []int{1})
	h.OnSeal(1)

	n := &search.Node{NextPolygon: 0, Edge: 0}
	assert.True(t, math.IsInf(h.H(n, nil), 1))
}
