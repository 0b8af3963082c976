// Package generate implements the classical maze-carving algorithms that
// consume a coordinator's point-level API: n-ary tree, hunt-and-kill,
// recursive backtracker, Prim's, and binary tree.
//
// Every generator accepts its RNG by reference (pkg/rng.RNG) rather than
// reaching for a global source, so that a given (CoordinateSpace,
// Coordinator, RNG seed) always reproduces the same maze.
package generate

import (
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/rng"
)

// Generator carves a complete maze into a coordinator using the supplied
// RNG, running to termination on a finite coordinate space.
type Generator interface {
	Generate(coord coordinator.Coordinator, r *rng.RNG)
}

// GetUnvisitedNeighbours returns the neighbours of p (per the
// coordinator's coordinate space) whose cell is not yet fully visited.
func GetUnvisitedNeighbours(coord coordinator.Coordinator, p point.Point) []point.Point {
	all := coord.CoordSpace().NeighboursOf(p)
	out := make([]point.Point, 0, len(all))
	for _, q := range all {
		if !coord.Get(q).IsFullyVisited() {
			out = append(out, q)
		}
	}
	return out
}

// CarveToUnvisitedNeighbour picks a uniformly random unvisited neighbour
// of p, carves a passage to it, and returns it. Returns (zero, false) if
// p has no unvisited neighbours.
func CarveToUnvisitedNeighbour(coord coordinator.Coordinator, r *rng.RNG, p point.Point) (point.Point, bool) {
	candidates := GetUnvisitedNeighbours(coord, p)
	if len(candidates) == 0 {
		return point.Point{}, false
	}
	q := candidates[r.Intn(len(candidates))]
	coord.MakePassageBetween(p, q)
	return q, true
}

// getVisitedNeighbours returns the neighbours of p whose cell is already
// fully visited — the complement GetUnvisitedNeighbours needs for
// hunt-and-kill's hunt phase and Prim's frontier-carving step.
func getVisitedNeighbours(coord coordinator.Coordinator, p point.Point) []point.Point {
	all := coord.CoordSpace().NeighboursOf(p)
	out := make([]point.Point, 0, len(all))
	for _, q := range all {
		if coord.Get(q).IsFullyVisited() {
			out = append(out, q)
		}
	}
	return out
}
