package search

import "github.com/elektrokombinacija/meshknn-research/geom"

// SuccessorKind classifies a candidate successor interval against the
// cone (root, Left, Right) of the interval being expanded, per spec.md
// §4.1.
type SuccessorKind int

const (
	// RightNonObservable lies entirely beyond the right boundary ray;
	// the child's root must turn at the parent's right pivot vertex.
	RightNonObservable SuccessorKind = iota
	// Observable lies entirely within the cone: the child's root is
	// unchanged.
	Observable
	// LeftNonObservable lies entirely beyond the left boundary ray; the
	// child's root must turn at the parent's left pivot vertex.
	LeftNonObservable
	// RightCollinear/LeftCollinear mark a successor exactly on a
	// boundary ray, produced only while expanding a degenerate
	// (zero-width, Left==Right) interval.
	RightCollinear
	LeftCollinear
)

func (k SuccessorKind) String() string {
	switch k {
	case RightNonObservable:
		return "RIGHT_NON_OBSERVABLE"
	case Observable:
		return "OBSERVABLE"
	case LeftNonObservable:
		return "LEFT_NON_OBSERVABLE"
	case RightCollinear:
		return "RIGHT_COLLINEAR"
	case LeftCollinear:
		return "LEFT_COLLINEAR"
	default:
		return "UNKNOWN"
	}
}

// rawSuccessor is a candidate interval produced by walking the far edges
// of the polygon being expanded, before succToNode resolves it against
// mesh adjacency (one-way polygons, obstacle edges, the parent's
// collinear state).
type rawSuccessor struct {
	Kind                    SuccessorKind
	Left, Right             geom.Point
	LeftVertex, RightVertex int // NoVertex if clipped off a mesh vertex
	FarEdge                 int // edge index within the polygon being expanded
}

// side classifies a point relative to a boundary ray (root, pivot):
// -1 if it has swept past the ray on the counter-clockwise (left) side,
// +1 on the clockwise (right) side, 0 if collinear with the ray.
func side(root, pivot, x geom.Point) int {
	switch geom.OrientationOf(root, pivot, x) {
	case geom.CounterClockwise:
		return -1
	case geom.Clockwise:
		return 1
	default:
		return 0
	}
}

// beyondLeft reports whether x has swept past the ray (root, left),
// i.e. lies outside the cone on its counter-clockwise boundary.
func beyondLeft(root, left, x geom.Point) bool { return side(root, left, x) < 0 }

// beyondRight reports whether x has swept past the ray (root, right),
// i.e. lies outside the cone on its clockwise boundary.
func beyondRight(root, right, x geom.Point) bool { return side(root, right, x) > 0 }

// classify assigns a point its cone region, given a possibly-degenerate
// interval (left==right collapses the cone to a single ray).
func classify(root, left, right, x geom.Point) SuccessorKind {
	degenerate := geom.Equal(left, right)
	if degenerate {
		switch side(root, left, x) {
		case 0:
			// Exactly on the ray: caller decides Left/Right collinear
			// from sweep order, since a zero-width cone has no interior.
			return Observable
		case -1:
			return LeftNonObservable
		default:
			return RightNonObservable
		}
	}
	if beyondLeft(root, left, x) {
		return LeftNonObservable
	}
	if beyondRight(root, right, x) {
		return RightNonObservable
	}
	return Observable
}

// rayParam finds the parameter t in (0,1) at which segment p0->p1
// crosses the line through root and pivot, or ok=false if the segment
// is parallel to that line (no single crossing).
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
