package generate

import (
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/rng"
	"github.com/latticeforge/mazelib/pkg/space"
)

// BinaryTree is the simplest generator: for each point, consider its
// "above" (axis 1, -1) and "left" (axis 0, -1) neighbours, carve to one
// at random; at the origin, where neither is in bounds, just
// MakePassage. 2D box coordinate spaces only; produces a strong diagonal
// bias.
type BinaryTree struct{}

// Generate implements Generator.
func (BinaryTree) Generate(coord coordinator.Coordinator, r *rng.RNG) {
	sp, ok := coord.CoordSpace().(*space.BoxSpace)
	if !ok {
		panic("generate: BinaryTree requires a box coordinate space")
	}
	if len(sp.Dims()) != 2 {
		panic("generate: BinaryTree requires a 2D box coordinate space")
	}

	for _, p := range sp.Iterate() {
		var candidates []point.Point
		if p.At(0) > 0 {
			candidates = append(candidates, p.WithAxis(0, p.At(0)-1))
		}
		if p.At(1) > 0 {
			candidates = append(candidates, p.WithAxis(1, p.At(1)-1))
		}
		if len(candidates) == 0 {
			coord.MakePassage(p)
			continue
		}
		chosen := candidates[r.Intn(len(candidates))]
		coord.MakePassageBetween(p, chosen)
	}
}

var _ Generator = BinaryTree{}
