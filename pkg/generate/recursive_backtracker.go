package generate

import (
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/rng"
)

// RecursiveBacktracker carves a long-corridor (high "river") maze by
// depth-first walking an explicit stack: push the origin, then
// repeatedly try to carve from the top of the stack to a random
// unvisited neighbour (pushing it on success) or pop when stuck.
// Terminates on an empty stack.
type RecursiveBacktracker struct {
	// Origin, if non-nil, is the starting point. If nil, the coordinate
	// space's canonical first point is used.
	Origin *point.Point
}

// Generate implements Generator.
func (g RecursiveBacktracker) Generate(coord coordinator.Coordinator, r *rng.RNG) {
	points := coord.CoordSpace().Iterate()
	if len(points) == 0 {
		return
	}

	origin := points[0]
	if g.Origin != nil {
		origin = *g.Origin
	}

	coord.MakePassage(origin)
	stack := []point.Point{origin}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next, ok := CarveToUnvisitedNeighbour(coord, r, cur)
		if ok {
			stack = append(stack, next)
			continue
		}
		stack = stack[:len(stack)-1]
	}
}

var _ Generator = RecursiveBacktracker{}
