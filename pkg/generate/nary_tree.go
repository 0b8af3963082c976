package generate

import (
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/rng"
	"github.com/latticeforge/mazelib/pkg/space"
)

// NaryTree generates a biased but valid spanning tree in O(logical size),
// box coordinate spaces only. For each point in canonical iteration
// order, it picks uniformly among the neighbours reachable by +1 on each
// axis that remain in bounds and carves to it; the opposite-corner point,
// which has no such neighbour, gets an isolated MakePassage instead. This
// is intentional (spec's corner-point note): the enclosing-walls
// invariant then walls the corner in on every side it didn't carve
// through.
type NaryTree struct{}

// Generate implements Generator.
func (NaryTree) Generate(coord coordinator.Coordinator, r *rng.RNG) {
	sp, ok := coord.CoordSpace().(*space.BoxSpace)
	if !ok {
		panic("generate: NaryTree requires a box coordinate space")
	}
	dims := sp.Dims()

	for _, p := range sp.Iterate() {
		var candidates []point.Point
		for axis, d := range dims {
			if p.At(axis)+1 < d {
				candidates = append(candidates, p.WithAxis(axis, p.At(axis)+1))
			}
		}
		if len(candidates) == 0 {
			coord.MakePassage(p)
			continue
		}
		chosen := candidates[r.Intn(len(candidates))]
		coord.MakePassageBetween(p, chosen)
	}
}

var _ Generator = NaryTree{}
