// Package space defines CoordinateSpace: the abstract, immutable graph of
// logical junctions (Points) a maze is carved over. A CoordinateSpace
// never addresses physical cells; that mapping is the Coordinator's job
// (see pkg/coordinator).
package space

import (
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/rng"
)

// CoordinateSpace is an immutable description of a point graph.
//
// Implementations must satisfy:
//   - LogicalSize() is a finite cached count >= 1.
//   - AreAdjacent is symmetric and irreflexive.
//   - NeighboursOf returns exactly the adjacent points, in a stable order.
//   - Iterate visits every point exactly once in a canonical order, and
//     IterateFrom visits p and every later point once; both return a
//     complete slice rather than a cursor.
type CoordinateSpace interface {
	// LogicalSize is the number of distinct points in the space.
	LogicalSize() int

	// AreAdjacent reports whether p and q are directly connected.
	// Symmetric; false when p equals q.
	AreAdjacent(p, q point.Point) bool

	// NeighboursOf returns the points adjacent to p, in a fixed order.
	NeighboursOf(p point.Point) []point.Point

	// Iterate returns every point in the space's canonical order.
	Iterate() []point.Point

	// IterateFrom returns p followed by every point that succeeds it in
	// canonical order (i.e. canonical iteration order truncated to start
	// at p). It does not wrap around to points preceding p.
	IterateFrom(p point.Point) []point.Point

	// Choose returns a uniformly random point using rng.
	Choose(rng *rng.RNG) point.Point

	// Contains reports whether p addresses a valid point in this space.
	Contains(p point.Point) bool
}
