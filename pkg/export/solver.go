package export

import (
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
)

// Solver consumes a read-only coordinator view to find a route between
// two points. No implementation ships in this module (solvers are an
// explicit Non-goal, spec.md §1); the interface exists so external
// solver implementations have a fixed shape to target, matching
// original_source/src/interface/solve.rs, which the distillation also
// left as an interface-only contract.
type Solver interface {
	Solve(coord coordinator.Coordinator, from, to point.Point) ([]point.Point, error)
}
