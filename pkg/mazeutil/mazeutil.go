// Package mazeutil provides small post-generation utilities that operate
// uniformly across both cell classes via the Coordinator contract.
package mazeutil

import "github.com/latticeforge/mazelib/pkg/coordinator"

// ConvertUnvisitedToWalls walls every point whose cell is not yet fully
// visited. Typically run after a generator that may leave isolated
// points unvisited (none of the five generators in pkg/generate do this
// on a finite, connected coordinate space, but callers composing custom
// generators may need the cleanup).
func ConvertUnvisitedToWalls(coord coordinator.Coordinator) {
	for _, p := range coord.CoordSpace().Iterate() {
		if !coord.Get(p).IsFullyVisited() {
			coord.MakeWall(p)
		}
	}
}

// ConvertUnvisitedToPassages calls MakePassage on every point whose cell
// is not yet fully visited. Provided for symmetry with
// ConvertUnvisitedToWalls. On block cells this writes PASSAGE to the
// point's cell and walls its UNVISITED neighbour cells; on inline cells it
// upgrades the point's UNVISITED edges to WALL and opens no edge.
func ConvertUnvisitedToPassages(coord coordinator.Coordinator) {
	for _, p := range coord.CoordSpace().Iterate() {
		if !coord.Get(p).IsFullyVisited() {
			coord.MakePassage(p)
		}
	}
}

// ConvertUnvisitedToBoundaries marks every point whose cell is not yet
// fully visited as a boundary.
func ConvertUnvisitedToBoundaries(coord coordinator.Coordinator) {
	for _, p := range coord.CoordSpace().Iterate() {
		if !coord.Get(p).IsFullyVisited() {
			coord.MakeBoundary(p)
		}
	}
}
