package search

import "errors"

// Sentinel errors for the taxonomy of spec.md §7: user-facing conditions
// a caller can check with errors.Is, as opposed to internal invariant
// violations (mesh.Mesh.Validate's panics), which are bugs rather than
// input errors and are never wrapped in these.
var (
	// ErrOffMesh is returned when a start or goal point does not lie on
	// the mesh (PointLocation.Type == mesh.NotOnMesh).
	ErrOffMesh = errors.New("search: point is not on the mesh")

	// ErrDeadlineExceeded is returned when a search's wall-clock budget
	// (spec.md §4.3's time_limit_micro) is exhausted before it could
	// finish, whether or not any goals were already sealed.
	ErrDeadlineExceeded = errors.New("search: deadline exceeded")

	// ErrInvariantViolation tags an internal consistency check that, if
	// it ever fires outside of mesh.Mesh.Validate's construction-time
	// panic, indicates a bug in this package rather than bad input.
	ErrInvariantViolation = errors.New("search: internal invariant violation")
)
