package space

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/rng"
)

func TestNewBoxSpaceRejectsZeroDimension(t *testing.T) {
	if _, err := NewBoxSpace(3, 0, 2); err == nil {
		t.Fatalf("expected an error for a zero dimension")
	}
}

func TestNewBoxSpaceRejectsEmpty(t *testing.T) {
	if _, err := NewBoxSpace(); err == nil {
		t.Fatalf("expected an error for no dimensions")
	}
}

func TestNewBoxSpaceLogicalSize(t *testing.T) {
	sp, err := NewBoxSpace(3, 4, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.LogicalSize() != 24 {
		t.Fatalf("LogicalSize() = %d, want 24", sp.LogicalSize())
	}
}

func TestBoxSpaceIterateCoversEveryPointExactlyOnce(t *testing.T) {
	sp, err := NewBoxSpace(3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	for _, p := range sp.Iterate() {
		if seen[p.Key()] {
			t.Fatalf("point %v visited twice", p)
		}
		seen[p.Key()] = true
		if !sp.Contains(p) {
			t.Fatalf("iterated point %v not contained in space", p)
		}
	}
	if len(seen) != sp.LogicalSize() {
		t.Fatalf("visited %d points, want %d", len(seen), sp.LogicalSize())
	}
}

func TestBoxSpaceAreAdjacent(t *testing.T) {
	sp, err := NewBoxSpace(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := point.New(1, 1)
	cases := []struct {
		b    point.Point
		want bool
	}{
		{point.New(1, 2), true},
		{point.New(1, 0), true},
		{point.New(2, 1), true},
		{point.New(0, 1), true},
		{point.New(2, 2), false}, // diagonal
		{point.New(1, 1), false}, // identical
	}
	for _, c := range cases {
		if got := sp.AreAdjacent(a, c.b); got != c.want {
			t.Errorf("AreAdjacent(%v, %v) = %v, want %v", a, c.b, got, c.want)
		}
	}
}

func TestBoxSpaceNeighboursOfCorner(t *testing.T) {
	sp, err := NewBoxSpace(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neighbours := sp.NeighboursOf(point.New(0, 0))
	if len(neighbours) != 2 {
		t.Fatalf("corner should have exactly 2 neighbours, got %d", len(neighbours))
	}
	for _, n := range neighbours {
		if !sp.AreAdjacent(point.New(0, 0), n) {
			t.Errorf("reported neighbour %v is not adjacent", n)
		}
	}
}

func TestBoxSpaceIterateFromStartsAtP(t *testing.T) {
	sp, err := NewBoxSpace(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start := point.New(1, 0)
	seq := sp.IterateFrom(start)
	if !seq[0].Equal(start) {
		t.Fatalf("IterateFrom must begin with its argument, got %v", seq[0])
	}
}

func TestBoxSpaceChooseAlwaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dims := rapid.SliceOfN(rapid.IntRange(1, 6), 1, 4).Draw(rt, "dims")
		sp, err := NewBoxSpace(dims...)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		r := rng.New(rapid.Uint64().Draw(rt, "seed"), "choose-test")
		for i := 0; i < 20; i++ {
			p := sp.Choose(r)
			if !sp.Contains(p) {
				rt.Fatalf("Choose produced out-of-bounds point %v for dims %v", p, dims)
			}
		}
	})
}

func TestBoxSpaceAdjacencyIsSymmetricProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dims := rapid.SliceOfN(rapid.IntRange(2, 5), 1, 3).Draw(rt, "dims")
		sp, err := NewBoxSpace(dims...)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		all := sp.Iterate()
		p := all[rapid.IntRange(0, len(all)-1).Draw(rt, "pIdx")]
		q := all[rapid.IntRange(0, len(all)-1).Draw(rt, "qIdx")]
		if sp.AreAdjacent(p, q) != sp.AreAdjacent(q, p) {
			rt.Fatalf("adjacency must be symmetric: %v <-> %v", p, q)
		}
	})
}
