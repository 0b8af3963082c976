package coordinator

import (
	"fmt"

	"github.com/latticeforge/mazelib/pkg/buffer"
	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/space"
)

// InlineCoordinator maps points 1:1 onto a box space's inline cell space,
// where each cell independently records the state of all of its own
// edges. A connection between two adjacent points therefore has two
// authoritative records (one per endpoint); GetConnection resolves
// disagreement via cell.Resolve's priority order.
type InlineCoordinator struct {
	sp  *space.BoxSpace
	dim int
	buf *buffer.SliceBuffer[cell.InlineCellValue]
}

// NewInlineCoordinator constructs a coordinator with one cell per point
// of sp.
func NewInlineCoordinator(sp *space.BoxSpace) *InlineCoordinator {
	dim := len(sp.Dims())
	buf := buffer.NewSliceBuffer(sp.LogicalSize(), func() cell.InlineCellValue {
		return cell.NewInlineCellValue(dim)
	})
	return &InlineCoordinator{sp: sp, dim: dim, buf: buf}
}

// CoordSpace implements Coordinator.
func (c *InlineCoordinator) CoordSpace() space.CoordinateSpace { return c.sp }

// Buffer returns the underlying buffer for exporters/solvers that need
// raw CellID access.
func (c *InlineCoordinator) Buffer() *buffer.SliceBuffer[cell.InlineCellValue] { return c.buf }

// cellID maps a point to its dense CellID: row-major over the space's
// dims, matching the space's own canonical (minor-axis-first) ordering.
func (c *InlineCoordinator) cellID(p point.Point) point.CellID {
	dims := c.sp.Dims()
	id := 0
	stride := 1
	for i, d := range dims {
		id += p.At(i) * stride
		stride *= d
	}
	return point.CellID(id)
}

// Get implements Coordinator.
func (c *InlineCoordinator) Get(p point.Point) cell.Value {
	assertInBounds(c.sp, p)
	v := c.buf.Get(c.cellID(p))
	return &v
}

// sideOf returns the edge side `from` uses to record its edge toward
// `to`: positive (1) iff from[axis] < to[axis].
func sideOf(from, to point.Point, axis int) cell.Side {
	if from.At(axis) < to.At(axis) {
		return cell.SidePos
	}
	return cell.SideNeg
}

// GetConnection implements Coordinator: reads both endpoints' edge
// records for this connection and resolves disagreement by priority.
func (c *InlineCoordinator) GetConnection(from, to point.Point) cell.ConnectionType {
	assertAdjacent(c.sp, from, to)
	axis, _ := diffAxis(c.sp, from, to)

	fromVal := c.buf.Get(c.cellID(from))
	toVal := c.buf.Get(c.cellID(to))

	a := fromVal.Edge(axis, sideOf(from, to, axis)).AsConnection()
	b := toVal.Edge(axis, sideOf(to, from, axis)).AsConnection()
	return cell.Resolve(a, b)
}

// IsPassageBetween implements Coordinator.
func (c *InlineCoordinator) IsPassageBetween(from, to point.Point) bool {
	return connectionSugar(c, from, to, cell.ConnPassage)
}

// IsWallBetween implements Coordinator.
func (c *InlineCoordinator) IsWallBetween(from, to point.Point) bool {
	return connectionSugar(c, from, to, cell.ConnWall)
}

// IsBoundaryBetween implements Coordinator.
func (c *InlineCoordinator) IsBoundaryBetween(from, to point.Point) bool {
	return connectionSugar(c, from, to, cell.ConnBoundary)
}

// IsUnvisitedBetween implements Coordinator.
func (c *InlineCoordinator) IsUnvisitedBetween(from, to point.Point) bool {
	return connectionSugar(c, from, to, cell.ConnUnvisited)
}

// MakePassage implements Coordinator: every UNVISITED edge of p upgrades
// to WALL; PASSAGE/WALL/BOUNDARY edges are untouched.
func (c *InlineCoordinator) MakePassage(p point.Point) {
	assertInBounds(c.sp, p)
	v := c.buf.GetMut(c.cellID(p))
	for axis := 0; axis < c.dim; axis++ {
		for _, side := range [2]cell.Side{cell.SideNeg, cell.SidePos} {
			if v.Edge(axis, side) == cell.EdgeUnvisited {
				v.SetEdge(axis, side, cell.EdgeWall)
			}
		}
	}
}

// setAllEdges sets every edge of p to kind unconditionally, including any
// existing BOUNDARY edge: single-point writes to the mapped cell only,
// with no neighbor upgrade and no overwrite guard.
func (c *InlineCoordinator) setAllEdges(p point.Point, kind cell.EdgeKind) {
	v := c.buf.GetMut(c.cellID(p))
	for axis := 0; axis < c.dim; axis++ {
		for _, side := range [2]cell.Side{cell.SideNeg, cell.SidePos} {
			v.SetEdge(axis, side, kind)
		}
	}
}

// MakeWall implements Coordinator: sets every edge of p to WALL.
func (c *InlineCoordinator) MakeWall(p point.Point) {
	assertInBounds(c.sp, p)
	c.setAllEdges(p, cell.EdgeWall)
}

// MakeBoundary implements Coordinator: sets every edge of p to BOUNDARY.
func (c *InlineCoordinator) MakeBoundary(p point.Point) {
	assertInBounds(c.sp, p)
	c.setAllEdges(p, cell.EdgeBoundary)
}

// setEdgeChecked writes one edge, honoring BOUNDARY dominance.
func setEdgeChecked(p point.Point, v *cell.InlineCellValue, axis int, side cell.Side, kind cell.EdgeKind) {
	if v.Edge(axis, side) == cell.EdgeBoundary && kind != cell.EdgeBoundary {
		panic(fmt.Errorf("%w: at %s axis %d", ErrBoundaryViolation, p, axis))
	}
	v.SetEdge(axis, side, kind)
}

// between implements the three *Between operations: write the shared
// edge on both endpoints, then upgrade any remaining UNVISITED edges of
// both cells to WALL (spec.md §4.2.3's "upgrade any UNVISITED edges of
// both cells" step — this module's resolution of the stated open
// question applies this to every axis, not just the axis of adjacency).
func (c *InlineCoordinator) between(from, to point.Point, kind cell.EdgeKind) {
	assertInBounds(c.sp, from)
	assertInBounds(c.sp, to)
	assertAdjacent(c.sp, from, to)

	axis, _ := diffAxis(c.sp, from, to)

	fromVal := c.buf.GetMut(c.cellID(from))
	setEdgeChecked(from, fromVal, axis, sideOf(from, to, axis), kind)

	toVal := c.buf.GetMut(c.cellID(to))
	setEdgeChecked(to, toVal, axis, sideOf(to, from, axis), kind)

	upgradeRemaining(fromVal)
	upgradeRemaining(toVal)
}

// upgradeRemaining upgrades every UNVISITED edge of v to WALL.
func upgradeRemaining(v *cell.InlineCellValue) {
	for axis := range v.Edges {
		for _, side := range [2]cell.Side{cell.SideNeg, cell.SidePos} {
			if v.Edge(axis, side) == cell.EdgeUnvisited {
				v.SetEdge(axis, side, cell.EdgeWall)
			}
		}
	}
}

// MakePassageBetween implements Coordinator.
func (c *InlineCoordinator) MakePassageBetween(from, to point.Point) {
	c.between(from, to, cell.EdgePassage)
}

// MakeWallBetween implements Coordinator.
func (c *InlineCoordinator) MakeWallBetween(from, to point.Point) {
	c.between(from, to, cell.EdgeWall)
}

// MakeBoundaryBetween implements Coordinator.
func (c *InlineCoordinator) MakeBoundaryBetween(from, to point.Point) {
	c.between(from, to, cell.EdgeBoundary)
}

// IsMarked implements Coordinator.
func (c *InlineCoordinator) IsMarked(p point.Point) bool {
	assertInBounds(c.sp, p)
	return c.buf.Get(c.cellID(p)).Marked()
}

// SetMarked implements Coordinator.
func (c *InlineCoordinator) SetMarked(p point.Point, marked bool) {
	assertInBounds(c.sp, p)
	c.buf.GetMut(c.cellID(p)).SetMarked(marked)
}

var _ Coordinator = (*InlineCoordinator)(nil)
