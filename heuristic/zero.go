// Package heuristic implements the admissible lower-bound functions the
// search engine can be parameterized over: Zero (the optimality
// baseline), Target (R*-tree-backed, spec.md §4.5) and Fence
// (dam-table-backed, spec.md §4.7).
package heuristic

import (
	"github.com/elektrokombinacija/meshknn-research/mesh"
	"github.com/elektrokombinacija/meshknn-research/search"
)

// Zero never prunes by heuristic: every expansion degrades to pure
// Dijkstra-on-intervals. It exists as the correctness baseline spec.md
// §8 checks every other heuristic's reported costs against.
type Zero struct{}

func (Zero) H(*search.Node, *mesh.Mesh) float64 { return 0 }
func (Zero) OnSeal(int)                         {}
