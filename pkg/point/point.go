// Package point defines the coordinate tuplets used throughout mazelib.
//
// Two distinct value types live here: Point, a logical junction in a
// CoordinateSpace, and CellLocation, an address in the physical cell space
// a Coordinator maintains. They share the same underlying shape (a
// fixed-length tuplet of non-negative integers) but are never
// interchangeable: cell-space coordinates scale and shift independently of
// coordinate-space coordinates once a Coordinator applies scale factors or
// padding. Keeping them as separate named types (rather than a shared
// alias) is deliberate and prevents accidental substitution at compile
// time.
package point

import (
	"fmt"
	"strings"
)

// Point is an opaque logical junction in a box coordinate space: an
// ordered tuplet of non-negative integers, most-minor axis first.
// Equality is structural (see Equal). Point holds a slice and so is not
// comparable with == nor usable as a map key; Key gives a comparable
// stand-in. Points are copyable values, never owned handles.
type Point struct {
	coords []int
}

// New builds a Point from its per-axis coordinates, minor axis first.
func New(coords ...int) Point {
	c := make([]int, len(coords))
	copy(c, coords)
	return Point{coords: c}
}

// Dim returns the number of axes.
func (p Point) Dim() int { return len(p.coords) }

// At returns the coordinate on the given axis.
func (p Point) At(axis int) int { return p.coords[axis] }

// WithAxis returns a copy of p with the given axis set to v.
func (p Point) WithAxis(axis, v int) Point {
	c := make([]int, len(p.coords))
	copy(c, p.coords)
	c[axis] = v
	return Point{coords: c}
}

// Coords returns a defensive copy of the underlying tuplet.
func (p Point) Coords() []int {
	c := make([]int, len(p.coords))
	copy(c, p.coords)
	return c
}

// Equal reports structural equality.
func (p Point) Equal(q Point) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i := range p.coords {
		if p.coords[i] != q.coords[i] {
			return false
		}
	}
	return true
}

// Key returns a comparable value suitable for use as a map key. Go slices
// are not comparable, so callers that need a map keyed by point
// (visited/frontier sets) key on this instead of Point itself.
func (p Point) Key() string {
	var sb strings.Builder
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	return sb.String()
}

// String implements fmt.Stringer for debug output.
func (p Point) String() string {
	return "(" + p.Key() + ")"
}

// CellLocation is an address within the physical cell space a Coordinator
// maintains. Structurally identical to Point (a tuplet of non-negative
// integers) but semantically distinct: as a separate named type, the
// compiler rejects a Point where a CellLocation is expected, and vice
// versa.
type CellLocation struct {
	coords []int
}

// NewCellLocation builds a CellLocation from its per-axis coordinates.
func NewCellLocation(coords ...int) CellLocation {
	c := make([]int, len(coords))
	copy(c, coords)
	return CellLocation{coords: c}
}

// Dim returns the number of axes.
func (c CellLocation) Dim() int { return len(c.coords) }

// At returns the coordinate on the given axis.
func (c CellLocation) At(axis int) int { return c.coords[axis] }

// Coords returns a defensive copy of the underlying tuplet.
func (c CellLocation) Coords() []int {
	out := make([]int, len(c.coords))
	copy(out, c.coords)
	return out
}

// Equal reports structural equality.
func (c CellLocation) Equal(d CellLocation) bool {
	if len(c.coords) != len(d.coords) {
		return false
	}
	for i := range c.coords {
		if c.coords[i] != d.coords[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debug output.
func (c CellLocation) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range c.coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// CellID is the dense non-negative integer index uniquely identifying a
// cell within a Buffer.
type CellID int
