package coordinator

import (
	"fmt"

	"github.com/latticeforge/mazelib/pkg/buffer"
	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/space"
)

// BlockCoordinator maps points onto a box space's block cell space, where
// walls and passages occupy physically distinct cells. Scale factors
// introduce "spacer" cells between point-mapped cells (only reachable
// through the coordinator, never from the coordinate space); padding adds
// cells on the cell-space edge that no point maps to at all.
type BlockCoordinator struct {
	sp      *space.BoxSpace
	scale   []int
	padding [][2]int
	full    []int // full cell-space dimensions
	strides []int // row-major strides, minor axis first
	buf     *buffer.SliceBuffer[cell.BlockCellValue]
}

// NewBlockCoordinator constructs a coordinator over sp with the given
// per-axis scale factors (cells per point-to-point step) and padding
// (negative-side, positive-side cells added per axis beyond any point's
// mapped cell). scale and padding must each have length sp.Dims()'s
// length. All cell count arithmetic is checked; overflow is a
// constructor-time error, not a panic, since it is analogous to the
// "buffer allocation failure" recoverable-error case of spec.md §7.
func NewBlockCoordinator(sp *space.BoxSpace, scale []int, padding [][2]int) (*BlockCoordinator, error) {
	dims := sp.Dims()
	n := len(dims)
	if len(scale) != n {
		return nil, fmt.Errorf("coordinator: scale has %d axes, space has %d", len(scale), n)
	}
	if len(padding) != n {
		return nil, fmt.Errorf("coordinator: padding has %d axes, space has %d", len(padding), n)
	}
	for i, s := range scale {
		if s <= 0 {
			return nil, fmt.Errorf("coordinator: scale factor on axis %d must be positive, got %d", i, s)
		}
	}

	full := make([]int, n)
	total := 1
	for i := range dims {
		full[i] = (dims[i]-1)*scale[i] + 1 + padding[i][0] + padding[i][1]
		if full[i] <= 0 {
			return nil, fmt.Errorf("coordinator: axis %d full dimension computed non-positive", i)
		}
		next := total * full[i]
		if next/full[i] != total {
			return nil, fmt.Errorf("coordinator: cell count overflow on axis %d", i)
		}
		total = next
	}

	strides := make([]int, n)
	stride := 1
	for i := 0; i < n; i++ {
		strides[i] = stride
		stride *= full[i]
	}

	buf := buffer.NewSliceBuffer(total, cell.NewBlockCellValue)

	return &BlockCoordinator{
		sp:      sp,
		scale:   append([]int(nil), scale...),
		padding: append([][2]int(nil), padding...),
		full:    full,
		strides: strides,
		buf:     buf,
	}, nil
}

// CoordSpace implements Coordinator.
func (c *BlockCoordinator) CoordSpace() space.CoordinateSpace { return c.sp }

// GetFullDimensions returns the physical cell-space dimensions, including
// spacer and padding cells — needed by exporters that walk cell space
// directly (spec.md §6).
func (c *BlockCoordinator) GetFullDimensions() []int {
	out := make([]int, len(c.full))
	copy(out, c.full)
	return out
}

// Buffer returns the underlying buffer for exporters that serialize raw
// cell state by CellID (spec.md §6's schematic-export contract).
func (c *BlockCoordinator) Buffer() *buffer.SliceBuffer[cell.BlockCellValue] { return c.buf }

// CellLoc maps a point to its block cell location: scale then shift by
// the negative-side padding on each axis.
func (c *BlockCoordinator) CellLoc(p point.Point) point.CellLocation {
	coords := make([]int, len(c.full))
	for i := range coords {
		coords[i] = p.At(i)*c.scale[i] + c.padding[i][0]
	}
	return point.NewCellLocation(coords...)
}

func (c *BlockCoordinator) locInBounds(loc point.CellLocation) bool {
	if loc.Dim() != len(c.full) {
		return false
	}
	for i, d := range c.full {
		if loc.At(i) < 0 || loc.At(i) >= d {
			return false
		}
	}
	return true
}

func (c *BlockCoordinator) cellID(loc point.CellLocation) point.CellID {
	if !c.locInBounds(loc) {
		panic(fmt.Errorf("%w: cell location %s", ErrOutOfBounds, loc))
	}
	id := 0
	for i, s := range c.strides {
		id += loc.At(i) * s
	}
	return point.CellID(id)
}

// GetByLocation reads any cell by its physical CellLocation, for
// exporters that walk the full cell space (including spacer and padding
// cells no point maps to).
func (c *BlockCoordinator) GetByLocation(loc point.CellLocation) cell.BlockCellValue {
	return c.buf.Get(c.cellID(loc))
}

// SetByLocation writes any cell by its physical CellLocation. Intended
// for templates (SolidBorderTemplate) that must reach cells no point
// maps to.
func (c *BlockCoordinator) SetByLocation(loc point.CellLocation, v cell.BlockCellValue) {
	c.buf.Set(c.cellID(loc), v)
}

// Get implements Coordinator.
func (c *BlockCoordinator) Get(p point.Point) cell.Value {
	assertInBounds(c.sp, p)
	v := c.buf.Get(c.cellID(c.CellLoc(p)))
	return &v
}

// GetConnection implements Coordinator: a block cell's type directly
// encodes the connection state of the cell it maps, whether that cell is
// the shared cell on the line between two adjacent points, or (with
// scale>1) a chain of spacer cells. The connection is reported by the
// single cell one step from `from`'s cell toward `to`'s cell: with scale>1
// that is the first spacer cell (a *_between call writes every cell on the
// line alike), and with scale 1 it is `to`'s own mapped cell.
func (c *BlockCoordinator) GetConnection(from, to point.Point) cell.ConnectionType {
	assertAdjacent(c.sp, from, to)
	axis, dir := diffAxis(c.sp, from, to)
	locFrom := c.CellLoc(from)
	next := locFrom
	next = withAxis(next, axis, next.At(axis)+dir)
	return c.buf.Get(c.cellID(next)).CellType.AsConnection()
}

// withAxis returns a copy of a CellLocation with one axis replaced. This
// lives here (rather than on CellLocation) because only the coordinator
// needs to build intermediate cell locations.
func withAxis(loc point.CellLocation, axis, v int) point.CellLocation {
	coords := loc.Coords()
	coords[axis] = v
	return point.NewCellLocation(coords...)
}

// diffAxis returns the sole axis on which two adjacent points differ, and
// the signed direction (+1 or -1) from `from` to `to`.
func diffAxis(s space.CoordinateSpace, from, to point.Point) (axis, dir int) {
	for i := 0; i < from.Dim(); i++ {
		d := to.At(i) - from.At(i)
		if d != 0 {
			return i, d
		}
	}
	panic(fmt.Errorf("%w: %s and %s", ErrIdenticalPoints, from, to))
}

// IsPassageBetween implements Coordinator.
func (c *BlockCoordinator) IsPassageBetween(from, to point.Point) bool {
	return connectionSugar(c, from, to, cell.ConnPassage)
}

// IsWallBetween implements Coordinator.
func (c *BlockCoordinator) IsWallBetween(from, to point.Point) bool {
	return connectionSugar(c, from, to, cell.ConnWall)
}

// IsBoundaryBetween implements Coordinator.
func (c *BlockCoordinator) IsBoundaryBetween(from, to point.Point) bool {
	return connectionSugar(c, from, to, cell.ConnBoundary)
}

// IsUnvisitedBetween implements Coordinator.
func (c *BlockCoordinator) IsUnvisitedBetween(from, to point.Point) bool {
	return connectionSugar(c, from, to, cell.ConnUnvisited)
}

// upgradeNeighbors walls off every currently-UNVISITED cell immediately
// axis-adjacent (in cell space, across all axes and both directions) to
// loc.
func (c *BlockCoordinator) upgradeNeighbors(loc point.CellLocation) {
	for axis, d := range c.full {
		for _, dir := range [2]int{-1, 1} {
			v := loc.At(axis) + dir
			if v < 0 || v >= d {
				continue
			}
			n := withAxis(loc, axis, v)
			id := c.cellID(n)
			cv := c.buf.GetMut(id)
			if cv.CellType == cell.Unvisited {
				cv.CellType = cell.Wall
			}
		}
	}
}

func (c *BlockCoordinator) writeSingle(loc point.CellLocation, t cell.CellType) {
	c.buf.GetMut(c.cellID(loc)).CellType = t
}

// writeBetween is writeSingle with a BOUNDARY-overwrite guard, used only
// along the line carved by *_between: carving a passage or wall through an
// existing BOUNDARY cell is the one case spec.md requires to panic.
func (c *BlockCoordinator) writeBetween(loc point.CellLocation, t cell.CellType) {
	id := c.cellID(loc)
	cur := c.buf.GetMut(id)
	if cur.CellType == cell.Boundary && t != cell.Boundary {
		panic(fmt.Errorf("%w: at %s", ErrBoundaryViolation, loc))
	}
	cur.CellType = t
}

// MakePassage implements Coordinator.
func (c *BlockCoordinator) MakePassage(p point.Point) {
	assertInBounds(c.sp, p)
	loc := c.CellLoc(p)
	c.writeSingle(loc, cell.Passage)
	c.upgradeNeighbors(loc)
}

// MakeWall implements Coordinator.
func (c *BlockCoordinator) MakeWall(p point.Point) {
	assertInBounds(c.sp, p)
	c.writeSingle(c.CellLoc(p), cell.Wall)
}

// MakeBoundary implements Coordinator.
func (c *BlockCoordinator) MakeBoundary(p point.Point) {
	assertInBounds(c.sp, p)
	c.writeSingle(c.CellLoc(p), cell.Boundary)
}

// lineLocations returns every cell location along axis a from locFrom up
// to (exclusive of) locTo, in the direction of travel.
func lineLocations(locFrom point.CellLocation, axis, dir, untilExclusive int) []point.CellLocation {
	var out []point.CellLocation
	for v := locFrom.At(axis); v != untilExclusive; v += dir {
		out = append(out, withAxis(locFrom, axis, v))
	}
	return out
}

func (c *BlockCoordinator) between(from, to point.Point, t cell.CellType, enclosingWalls bool) {
	assertInBounds(c.sp, from)
	assertInBounds(c.sp, to)
	assertAdjacent(c.sp, from, to)

	axis, dir := diffAxis(c.sp, from, to)
	locFrom := c.CellLoc(from)
	locTo := c.CellLoc(to)

	lineExclTo := lineLocations(locFrom, axis, dir, locTo.At(axis))
	for _, loc := range lineExclTo {
		c.writeBetween(loc, t)
	}
	c.writeBetween(locTo, t)

	if enclosingWalls {
		// to is deliberately excluded from the neighbor-upgrade pass, so
		// that subsequent carves from to see unvisited neighbors to choose
		// from.
		for _, loc := range lineExclTo {
			c.upgradeNeighbors(loc)
		}
	}
}

// MakePassageBetween implements Coordinator.
func (c *BlockCoordinator) MakePassageBetween(from, to point.Point) {
	c.between(from, to, cell.Passage, true)
}

// MakeWallBetween implements Coordinator.
func (c *BlockCoordinator) MakeWallBetween(from, to point.Point) {
	c.between(from, to, cell.Wall, false)
}

// MakeBoundaryBetween implements Coordinator.
func (c *BlockCoordinator) MakeBoundaryBetween(from, to point.Point) {
	c.between(from, to, cell.Boundary, false)
}

// IsMarked implements Coordinator.
func (c *BlockCoordinator) IsMarked(p point.Point) bool {
	assertInBounds(c.sp, p)
	return c.buf.Get(c.cellID(c.CellLoc(p))).Marked()
}

// SetMarked implements Coordinator.
func (c *BlockCoordinator) SetMarked(p point.Point, marked bool) {
	assertInBounds(c.sp, p)
	c.buf.GetMut(c.cellID(c.CellLoc(p))).SetMarked(marked)
}

var _ Coordinator = (*BlockCoordinator)(nil)
