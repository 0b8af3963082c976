package template

import (
	"testing"

	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/space"
)

func TestSolidBorderTemplateBlockCoordinator(t *testing.T) {
	sp, err := space.NewBoxSpace(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bc, err := coordinator.NewBlockCoordinator(sp, []int{2, 2}, [][2]int{{1, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	SolidBorderTemplate{}.Apply(bc)

	full := bc.GetFullDimensions()
	for y := 0; y < full[1]; y++ {
		for x := 0; x < full[0]; x++ {
			v := bc.GetByLocation(point.NewCellLocation(x, y))
			onEdge := x == 0 || y == 0 || x == full[0]-1 || y == full[1]-1
			if onEdge && v.CellType != cell.Boundary {
				t.Errorf("edge cell (%d,%d) = %s, want BOUNDARY", x, y, v.CellType)
			}
			if !onEdge && v.CellType == cell.Boundary {
				t.Errorf("interior cell (%d,%d) unexpectedly BOUNDARY", x, y)
			}
		}
	}
}

func TestSolidBorderTemplateInlineCoordinator(t *testing.T) {
	sp, err := space.NewBoxSpace(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ic := coordinator.NewInlineCoordinator(sp)

	SolidBorderTemplate{}.Apply(ic)

	for _, p := range sp.Iterate() {
		onEdge := p.At(0) == 0 || p.At(1) == 0 || p.At(0) == 2 || p.At(1) == 2
		v := ic.Get(p)
		if onEdge && v.IsFullyVisited() == false {
			t.Errorf("edge point %v should have every edge set after SolidBorderTemplate", p)
		}
	}

	// The corner (0,0) must report BOUNDARY toward both its neighbours.
	if got := ic.GetConnection(point.New(0, 0), point.New(1, 0)); got != cell.ConnBoundary {
		t.Errorf("GetConnection((0,0),(1,0)) = %s, want BOUNDARY", got)
	}
}

func TestSolidBorderThenGenerateLeavesBorderIntact(t *testing.T) {
	// MakePassageBetween must never be able to cross a BOUNDARY edge laid
	// down by the template beforehand; a generator running afterward can
	// only carve interior passages.
	sp, err := space.NewBoxSpace(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ic := coordinator.NewInlineCoordinator(sp)
	SolidBorderTemplate{}.Apply(ic)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic carving across a solid border")
		}
	}()
	// (0,0) to (1,0) is a boundary edge on the y=0 edge.
	ic.MakePassageBetween(point.New(0, 0), point.New(1, 0))
}
