// Package buffer provides the flat, fixed-size, bounds-checked storage a
// Coordinator addresses by CellID. Buffer is opaque to generators — only
// the coordinator ever reaches into it.
package buffer

import (
	"fmt"

	"github.com/latticeforge/mazelib/pkg/point"
)

// Buffer is a fixed-size CellID -> cell value mapping. No resize after
// construction. Out-of-range access panics: bounds are a coordinator
// invariant, not a recoverable runtime condition, and masking a
// programmer error here would risk corrupting some other cell silently.
//
// V is left unconstrained (rather than constrained to cell.Value) because
// cell.Value's SetMarked requires a pointer receiver: GetMut already
// returns *V, so callers mutate through the pointer directly without V
// itself needing to satisfy the interface.
type Buffer[V any] interface {
	// Len is the number of cells this buffer holds.
	Len() int

	// Get returns a copy of the value at id. Panics if id is out of range.
	Get(id point.CellID) V

	// GetMut returns a pointer to the value at id for in-place mutation.
	// Panics if id is out of range.
	GetMut(id point.CellID) *V

	// Set overwrites the value at id. Panics if id is out of range.
	Set(id point.CellID, v V)
}

// SliceBuffer is the reference Buffer implementation: a flat Go slice.
// This is the only storage strategy mazelib ships; alternative strategies
// (fixed arrays, heap vectors, memory-mapped backing) are an orthogonal,
// out-of-scope concern per spec.md §1 — any type satisfying Buffer can
// substitute.
type SliceBuffer[V any] struct {
	cells []V
}

// NewSliceBuffer allocates a buffer of the given cell count, every cell
// holding the value returned by zero (coordinators pass their cell
// class's UNVISITED constructor).
func NewSliceBuffer[V any](count int, zero func() V) *SliceBuffer[V] {
	cells := make([]V, count)
	for i := range cells {
		cells[i] = zero()
	}
	return &SliceBuffer[V]{cells: cells}
}

// Len implements Buffer.
func (b *SliceBuffer[V]) Len() int { return len(b.cells) }

func (b *SliceBuffer[V]) checkBounds(id point.CellID) {
	if int(id) < 0 || int(id) >= len(b.cells) {
		panic(fmt.Sprintf("buffer: CellID %d out of range [0, %d)", id, len(b.cells)))
	}
}

// Get implements Buffer.
func (b *SliceBuffer[V]) Get(id point.CellID) V {
	b.checkBounds(id)
	return b.cells[id]
}

// GetMut implements Buffer.
func (b *SliceBuffer[V]) GetMut(id point.CellID) *V {
	b.checkBounds(id)
	return &b.cells[id]
}

// Set implements Buffer.
func (b *SliceBuffer[V]) Set(id point.CellID, v V) {
	b.checkBounds(id)
	b.cells[id] = v
}

var _ Buffer[int] = (*SliceBuffer[int])(nil)
