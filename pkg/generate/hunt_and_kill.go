package generate

import (
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/rng"
)

// HuntAndKill alternates two phases until every point is visited:
//
//  1. Kill: random-walk from the current point to random unvisited
//     neighbours, carving as it goes, until stuck (no unvisited
//     neighbours remain).
//  2. Hunt: scan points in canonical order for the first unvisited point
//     that has at least one visited neighbour; carve a passage to a
//     random such neighbour, then resume killing from there.
//
// Terminates when a hunt pass finds no eligible point. Every point
// becomes visited exactly once: hunt is exhaustive so it cannot miss an
// eligible point, and kill only ever moves to unvisited points so it
// never revisits one.
type HuntAndKill struct{}

// Generate implements Generator.
func (HuntAndKill) Generate(coord coordinator.Coordinator, r *rng.RNG) {
	points := coord.CoordSpace().Iterate()
	if len(points) == 0 {
		return
	}

	cur := points[0]
	coord.MakePassage(cur)

	for {
		for {
			next, ok := CarveToUnvisitedNeighbour(coord, r, cur)
			if !ok {
				break
			}
			cur = next
		}

		found := false
		for _, p := range points {
			if coord.Get(p).IsFullyVisited() {
				continue
			}
			visited := getVisitedNeighbours(coord, p)
			if len(visited) == 0 {
				continue
			}
			chosen := visited[r.Intn(len(visited))]
			coord.MakePassageBetween(p, chosen)
			cur = p
			found = true
			break
		}
		if !found {
			break
		}
	}
}

var _ Generator = HuntAndKill{}
