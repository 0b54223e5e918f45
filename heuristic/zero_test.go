package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/meshknn-research/heuristic"
	"github.com/elektrokombinacija/meshknn-research/internal/testmesh"
)

func TestZeroAlwaysReturnsZero(t *testing.T) {
	m := testmesh.UnitSquare()
	var z heuristic.Zero

	assert.Equal(t, 0.0, z.H(nil, m))
	z.OnSeal(7) // no-op, must not panic
}
