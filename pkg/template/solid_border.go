package template

import (
	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/space"
)

// SolidBorderTemplate sets every cell on the cell-space boundary to
// BOUNDARY, not just the points adjacent to the coordinate space's edge.
// With scale>1 or padding>0 a block coordinator's cell-space edge
// contains cells no point ever maps to, so this template specializes on
// the concrete coordinator type rather than walking points: for a
// BlockCoordinator it walks the full physical cell space directly; for
// any other Coordinator (the inline coordinator, whose cell space is 1:1
// with points) it makes the boundary points themselves BOUNDARY.
type SolidBorderTemplate struct{}

// Apply implements Template.
func (SolidBorderTemplate) Apply(coord coordinator.Coordinator) {
	if bc, ok := coord.(*coordinator.BlockCoordinator); ok {
		applyToBlockCellSpace(bc)
		return
	}
	applyToPoints(coord)
}

// applyToBlockCellSpace sets to BOUNDARY every cell whose location has
// some axis coordinate equal to 0 or full[axis]-1.
func applyToBlockCellSpace(bc *coordinator.BlockCoordinator) {
	full := bc.GetFullDimensions()
	coords := make([]int, len(full))
	for {
		if onBoundary(coords, full) {
			bc.SetByLocation(point.NewCellLocation(coords...), cell.BlockCellValue{CellType: cell.Boundary})
		}
		if !advance(coords, full) {
			break
		}
	}
}

// applyToPoints calls MakeBoundary on every point whose coordinate touches the
// coordinate space's edge, for coordinators whose cell space is 1:1 with
// points.
func applyToPoints(coord coordinator.Coordinator) {
	sp, ok := coord.CoordSpace().(*space.BoxSpace)
	if !ok {
		return
	}
	dims := sp.Dims()
	for _, p := range sp.Iterate() {
		if onBoundaryPoint(p, dims) {
			coord.MakeBoundary(p)
		}
	}
}

func onBoundary(coords, full []int) bool {
	for i, v := range coords {
		if v == 0 || v == full[i]-1 {
			return true
		}
	}
	return false
}

func onBoundaryPoint(p point.Point, dims []int) bool {
	for i, d := range dims {
		if p.At(i) == 0 || p.At(i) == d-1 {
			return true
		}
	}
	return false
}

// advance walks coords through every tuplet in [0,full[0]) x ... x
// [0,full[N-1]), minor axis first, returning false once exhausted.
func advance(coords, full []int) bool {
	for i := range coords {
		coords[i]++
		if coords[i] < full[i] {
			return true
		}
		coords[i] = 0
	}
	return false
}

var _ Template = SolidBorderTemplate{}
