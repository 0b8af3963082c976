package coordinator

import (
	"testing"

	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/space"
)

func newInlineCoordForTest(t *testing.T, dims ...int) *InlineCoordinator {
	t.Helper()
	sp, err := space.NewBoxSpace(dims...)
	if err != nil {
		t.Fatalf("unexpected space error: %v", err)
	}
	return NewInlineCoordinator(sp)
}

// TestInlineCoordinatorScenarioD reproduces scenario (d): make a passage,
// read it back, then overwrite it with a boundary.
func TestInlineCoordinatorScenarioD(t *testing.T) {
	ic := newInlineCoordForTest(t, 3, 3)
	from, to := point.New(0, 0), point.New(1, 0)

	ic.MakePassageBetween(from, to)
	if got := ic.GetConnection(from, to); got != cell.ConnPassage {
		t.Fatalf("GetConnection after MakePassageBetween = %s, want PASSAGE", got)
	}

	ic.MakeBoundaryBetween(from, to)
	if got := ic.GetConnection(from, to); got != cell.ConnBoundary {
		t.Fatalf("GetConnection after MakeBoundaryBetween = %s, want BOUNDARY", got)
	}
}

func TestInlineCoordinatorBetweenUpgradesOtherEdges(t *testing.T) {
	ic := newInlineCoordForTest(t, 3, 3)
	center := point.New(1, 1)
	right := point.New(2, 1)

	ic.MakePassageBetween(center, right)

	// Every other edge of `center` (not the adjacency axis/side just
	// carved) must have been upgraded from UNVISITED to WALL. The edges are
	// read from center's own record: GetConnection would resolve them
	// against the still-UNVISITED neighbour records, and UNVISITED outranks
	// WALL.
	cv := ic.buf.Get(ic.cellID(center))
	for _, e := range []struct {
		axis int
		side cell.Side
	}{{0, cell.SideNeg}, {1, cell.SideNeg}, {1, cell.SidePos}} {
		if got := cv.Edge(e.axis, e.side); got != cell.EdgeWall {
			t.Errorf("center edge (axis %d, side %d) = %s, want WALL", e.axis, e.side, got)
		}
	}
}

func TestInlineCoordinatorBoundaryDominatesOverwrite(t *testing.T) {
	ic := newInlineCoordForTest(t, 3, 3)
	from, to := point.New(0, 0), point.New(1, 0)
	ic.MakeBoundaryBetween(from, to)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic overwriting a BOUNDARY edge with PASSAGE")
		}
	}()
	ic.MakePassageBetween(from, to)
}

func TestInlineCoordinatorMakePassageOnlyUpgradesUnvisited(t *testing.T) {
	ic := newInlineCoordForTest(t, 3, 3)
	p := point.New(1, 1)
	right := point.New(2, 1)

	ic.MakePassageBetween(p, right)
	// p's edge toward `right` is now PASSAGE; MakePassage(p) must not
	// clobber it even though MakePassage upgrades UNVISITED edges.
	ic.MakePassage(p)
	if got := ic.GetConnection(p, right); got != cell.ConnPassage {
		t.Fatalf("MakePassage(p) must not downgrade an existing PASSAGE edge, got %s", got)
	}
}

func TestInlineCoordinatorGetConnectionResolvesDisagreement(t *testing.T) {
	ic := newInlineCoordForTest(t, 3, 3)
	from, to := point.New(0, 0), point.New(1, 0)

	// Directly desynchronize the two endpoint records to exercise
	// cell.Resolve's priority order rather than the coordinator's own
	// (always-synchronized) write path.
	fv := ic.buf.GetMut(ic.cellID(from))
	fv.SetEdge(0, cell.SidePos, cell.EdgeWall)
	tv := ic.buf.GetMut(ic.cellID(to))
	tv.SetEdge(0, cell.SideNeg, cell.EdgeBoundary)

	if got := ic.GetConnection(from, to); got != cell.ConnBoundary {
		t.Fatalf("GetConnection with disagreeing endpoints = %s, want BOUNDARY (higher priority)", got)
	}
}

func TestInlineCoordinatorMarkedRoundTrips(t *testing.T) {
	ic := newInlineCoordForTest(t, 2, 2)
	p := point.New(0, 0)
	if ic.IsMarked(p) {
		t.Fatalf("cell should start unmarked")
	}
	ic.SetMarked(p, true)
	if !ic.IsMarked(p) {
		t.Fatalf("SetMarked(true) did not persist")
	}
}
