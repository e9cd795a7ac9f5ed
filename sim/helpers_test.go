package sim

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

// constSource always yields the same value, so Float64 draws are 0 and
// every obstacle spawns against the left margin.
type constSource uint64

func (c constSource) Uint64() uint64 { return uint64(c) }

func fixedRand() *rand.Rand {
	return rand.New(constSource(0))
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func testBody() *PhysicsBody {
	b := NewPhysicsBody(DefaultConfig().Stick)
	b.Reset(cp.Vector{X: 400, Y: 300})
	return b
}
