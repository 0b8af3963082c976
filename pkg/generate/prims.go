package generate

import (
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/rng"
)

// Prims is the frontier-based generator: start from a random point,
// maintain a frontier of unvisited points adjacent to the visited
// region, and repeatedly carve from a random frontier point to one of
// its visited neighbours.
//
// Mark-flag discipline is the critical correctness invariant here: a
// point must appear in the frontier at most once. Marked is set the
// instant a point enters the frontier and cleared the instant it leaves,
// so a point already marked is never re-added.
type Prims struct{}

// Generate implements Generator.
func (Prims) Generate(coord coordinator.Coordinator, r *rng.RNG) {
	sp := coord.CoordSpace()
	if sp.LogicalSize() == 0 {
		return
	}

	start := sp.Choose(r)
	coord.MakePassage(start)

	var frontier []point.Point
	addFrontier := func(p point.Point) {
		for _, q := range GetUnvisitedNeighbours(coord, p) {
			if !coord.IsMarked(q) {
				coord.SetMarked(q, true)
				frontier = append(frontier, q)
			}
		}
	}
	addFrontier(start)

	for len(frontier) > 0 {
		idx := r.Intn(len(frontier))
		p := frontier[idx]
		frontier[idx] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		coord.SetMarked(p, false)

		visited := getVisitedNeighbours(coord, p)
		if len(visited) > 0 {
			chosen := visited[r.Intn(len(visited))]
			coord.MakePassageBetween(p, chosen)
		}

		addFrontier(p)
	}
}

var _ Generator = Prims{}
