package space

import (
	"errors"
	"fmt"

	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/rng"
)

// ErrZeroDimension is returned when a BoxSpace is constructed with a
// dimension of zero on some axis.
var ErrZeroDimension = errors.New("space: dimension must be non-zero")

// ErrDimensionOverflow is returned when the product of dimensions
// overflows a platform int.
var ErrDimensionOverflow = errors.New("space: dimensions overflow")

// BoxSpace is the N-dimensional rectangular CoordinateSpace: points are
// tuplets in [0, dims[0]) x [0, dims[1]) x ... x [0, dims[N-1]), most-minor
// axis first. Two points are directly adjacent iff they differ by exactly
// 1 on exactly one axis.
type BoxSpace struct {
	dims        []int
	logicalSize int
}

// NewBoxSpace constructs a BoxSpace of the given per-axis extents.
// Rejects any zero dimension and any dimension product that would
// overflow a platform int; both are constructor-time programmer errors
// and are reported, not panicked, since allocation failure downstream is
// itself a recoverable condition (see pkg/coordinator).
func NewBoxSpace(dims ...int) (*BoxSpace, error) {
	if len(dims) == 0 {
		return nil, errors.New("space: at least one dimension is required")
	}
	size := 1
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("%w: axis %d has dimension %d", ErrZeroDimension, i, d)
		}
		next := size * d
		if d != 0 && next/d != size {
			return nil, fmt.Errorf("%w: axis %d", ErrDimensionOverflow, i)
		}
		size = next
	}
	c := make([]int, len(dims))
	copy(c, dims)
	return &BoxSpace{dims: c, logicalSize: size}, nil
}

// Dims returns a defensive copy of the per-axis extents.
func (s *BoxSpace) Dims() []int {
	c := make([]int, len(s.dims))
	copy(c, s.dims)
	return c
}

// LogicalSize implements CoordinateSpace.
func (s *BoxSpace) LogicalSize() int { return s.logicalSize }

// Contains implements CoordinateSpace.
func (s *BoxSpace) Contains(p point.Point) bool {
	if p.Dim() != len(s.dims) {
		return false
	}
	for i, d := range s.dims {
		if p.At(i) < 0 || p.At(i) >= d {
			return false
		}
	}
	return true
}

// AreAdjacent implements CoordinateSpace: true iff exactly one axis
// differs by exactly 1 and all others are equal.
func (s *BoxSpace) AreAdjacent(p, q point.Point) bool {
	if p.Dim() != len(s.dims) || q.Dim() != len(s.dims) {
		return false
	}
	diffAxes := 0
	for i := range s.dims {
		d := p.At(i) - q.At(i)
		if d == 0 {
			continue
		}
		if d != 1 && d != -1 {
			return false
		}
		diffAxes++
	}
	return diffAxes == 1
}

// NeighboursOf implements CoordinateSpace. Negative-side neighbors are
// listed before positive-side neighbors, axes visited minor-to-major —
// one of the fixed orders spec.md accepts.
func (s *BoxSpace) NeighboursOf(p point.Point) []point.Point {
	out := make([]point.Point, 0, 2*len(s.dims))
	for i, d := range s.dims {
		if p.At(i) > 0 {
			out = append(out, p.WithAxis(i, p.At(i)-1))
		}
		if p.At(i)+1 < d {
			out = append(out, p.WithAxis(i, p.At(i)+1))
		}
	}
	return out
}

// Iterate implements CoordinateSpace: lexicographic over axes, most-minor
// axis fastest.
func (s *BoxSpace) Iterate() []point.Point {
	out := make([]point.Point, 0, s.logicalSize)
	coords := make([]int, len(s.dims))
	for {
		out = append(out, point.New(coords...))
		if !s.advance(coords) {
			break
		}
	}
	return out
}

// IterateFrom implements CoordinateSpace.
func (s *BoxSpace) IterateFrom(p point.Point) []point.Point {
	if !s.Contains(p) {
		return nil
	}
	coords := p.Coords()
	out := make([]point.Point, 0, s.logicalSize)
	for {
		out = append(out, point.New(coords...))
		if !s.advance(coords) {
			break
		}
	}
	return out
}

// advance carries coords to the next lexicographic tuplet, minor axis
// first, returning false once the sequence is exhausted.
func (s *BoxSpace) advance(coords []int) bool {
	for i := range coords {
		coords[i]++
		if coords[i] < s.dims[i] {
			return true
		}
		coords[i] = 0
	}
	return false
}

// Choose implements CoordinateSpace: each axis is sampled independently
// and uniformly in [0, dims[i]).
func (s *BoxSpace) Choose(r *rng.RNG) point.Point {
	coords := make([]int, len(s.dims))
	for i, d := range s.dims {
		coords[i] = r.Intn(d)
	}
	return point.New(coords...)
}

var _ CoordinateSpace = (*BoxSpace)(nil)
