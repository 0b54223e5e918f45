// Package search implements the interval-propagation ("polyanya")
// single-pair shortest path search over a navigation mesh, and the node
// pool / expansion machinery the kNN engines in package engine build on.
package search

import "github.com/elektrokombinacija/meshknn-research/geom"

// ColType tags a SearchNode whose interval has collapsed to a collinear
// direction: the next expansion must turn at a specific pivot endpoint
// (LAZY generates every side of a fresh polygon instead).
type ColType int

const (
	ColNone ColType = iota
	ColLeft
	ColRight
	ColLazy
)

func (c ColType) String() string {
	switch c {
	case ColLeft:
		return "LEFT"
	case ColRight:
		return "RIGHT"
	case ColLazy:
		return "LAZY"
	default:
		return "NOT"
	}
}

// RootStart is the sentinel Root value meaning "the start point", used
// in place of a mesh vertex id.
const RootStart = -1

// NoVertex is the sentinel LeftVertex/RightVertex value meaning "this
// endpoint is interior to its edge, not at a mesh vertex".
const NoVertex = -1

// Node is the interval-propagation search record of spec.md §3: the
// contiguous sub-segment [Left,Right] of an edge of NextPolygon together
// with the Root from which the shortest path to every point on the
// segment is a straight line.
type Node struct {
	Parent *Node

	Root int // RootStart, or a mesh vertex id

	Left, Right             geom.Point
	LeftVertex, RightVertex int // NoVertex if interior to the edge

	// Edge is the local edge index of NextPolygon through which this
	// interval is entered (spec.md §4.1: "interval ... on edge e of
	// polygon P"); Expand walks NextPolygon's other edges.
	Edge        int
	NextPolygon int

	G, F float64

	ColType ColType
}

// RootPoint resolves n.Root to an actual point, given the search's start
// point and mesh.
func (n *Node) RootPoint(start geom.Point, vertexPoint func(int) geom.Point) geom.Point {
	if n.Root == RootStart {
		return start
	}
	return vertexPoint(n.Root)
}
