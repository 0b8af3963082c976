// Package coordinator implements the uniform point-level contract that
// translates point mutations into consistent cell-level buffer writes. It
// is the hardest component in mazelib: two concrete coordinators (block
// cells, inline cells) share an identical API but use very different
// strategies to keep the cell space consistent when points do not map
// 1:1 onto cells (block, scaled) or when cell state is edge-indexed
// (inline).
package coordinator

import (
	"errors"
	"fmt"

	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/space"
)

// Sentinel errors for the programmer-error conditions spec.md §7 names.
// These are still "loud failures" — callers are expected to let them
// propagate or recover()+re-panic in debug tooling, not branch on them in
// steady-state code — but giving them identity lets tests assert on
// failure kind with errors.Is instead of string matching.
var (
	// ErrOutOfBounds is the underlying cause wrapped into a panic value
	// when a point or cell location is out of range.
	ErrOutOfBounds = errors.New("coordinator: location out of bounds")
	// ErrNotAdjacent is the underlying cause wrapped into a panic value
	// when a *_between call is given non-adjacent points.
	ErrNotAdjacent = errors.New("coordinator: points are not adjacent")
	// ErrIdenticalPoints is the underlying cause wrapped into a panic
	// value when a *_between call is given from == to.
	ErrIdenticalPoints = errors.New("coordinator: from and to must differ")
	// ErrBoundaryViolation is the underlying cause wrapped into a panic
	// value when a carve would cross a pre-existing BOUNDARY.
	ErrBoundaryViolation = errors.New("coordinator: cannot carve through a boundary")
)

// Coordinator is the uniform point-level API every cell-class
// implementation exposes. All point arguments must address points valid
// in CoordSpace(); all *Between operations require the two points be
// directly adjacent there.
type Coordinator interface {
	// CoordSpace returns the coordinate space this coordinator maps.
	CoordSpace() space.CoordinateSpace

	// Get returns the cell value addressed by p.
	Get(p point.Point) cell.Value

	// GetConnection reports the connection state between two adjacent
	// points, resolved per cell.Resolve when the cell class keeps more
	// than one authoritative record of the same edge.
	GetConnection(from, to point.Point) cell.ConnectionType

	// IsPassageBetween, IsWallBetween, IsBoundaryBetween,
	// IsUnvisitedBetween are sugar over GetConnection.
	IsPassageBetween(from, to point.Point) bool
	IsWallBetween(from, to point.Point) bool
	IsBoundaryBetween(from, to point.Point) bool
	IsUnvisitedBetween(from, to point.Point) bool

	// MakePassage, MakeWall, MakeBoundary mutate the cell(s) addressed
	// by a single point.
	MakePassage(p point.Point)
	MakeWall(p point.Point)
	MakeBoundary(p point.Point)

	// MakePassageBetween, MakeWallBetween, MakeBoundaryBetween mutate
	// the connection between two adjacent points. Argument order matters
	// only for generator observation order (see MakePassageBetween's
	// enclosing-walls exclusion of the `to` endpoint).
	MakePassageBetween(from, to point.Point)
	MakeWallBetween(from, to point.Point)
	MakeBoundaryBetween(from, to point.Point)

	// IsMarked and SetMarked expose the generator-local scratch flag
	// (cell.Value.Marked) through the point-level API, since Get returns
	// a detached copy of a cell's value and cannot be used to mutate the
	// backing buffer. Prim's frontier algorithm is the primary consumer.
	IsMarked(p point.Point) bool
	SetMarked(p point.Point, marked bool)
}

// assertAdjacent panics with ErrNotAdjacent/ErrIdenticalPoints if from
// and to do not form a valid *_between argument pair. Shared by both
// coordinator implementations.
func assertAdjacent(s space.CoordinateSpace, from, to point.Point) {
	if from.Equal(to) {
		panic(fmt.Errorf("%w: %s", ErrIdenticalPoints, from))
	}
	if !s.AreAdjacent(from, to) {
		panic(fmt.Errorf("%w: %s and %s", ErrNotAdjacent, from, to))
	}
}

// assertInBounds panics with ErrOutOfBounds if p is not a valid point of
// s.
func assertInBounds(s space.CoordinateSpace, p point.Point) {
	if !s.Contains(p) {
		panic(fmt.Errorf("%w: point %s", ErrOutOfBounds, p))
	}
}

// connectionSugar implements the four Is*Between helpers in terms of
// GetConnection; both coordinators embed this via a thin wrapper method
// set rather than duplicating the switch.
func connectionSugar(c Coordinator, from, to point.Point, want cell.ConnectionType) bool {
	return c.GetConnection(from, to) == want
}
