package mask

import (
	"github.com/csa-go/csa/rng"
	"github.com/csa-go/csa/value"
)

// valueSetRandomMask includes each pair (i, j) in its window
// independently with probability vs.Eval(i, j), the way a
// distance-dependent value set (such as value.Gaussian) becomes a
// connection probability for a random mask.
type valueSetRandomMask struct {
	vs  value.Set
	gen *rng.Generator
}

// RandomValueSet returns a mask including each candidate connection
// independently with probability vs.Eval(i, j), seeded from seed.
func RandomValueSet(vs value.Set, seed rng.Seed) Mask {
	return &valueSetRandomMask{vs: vs, gen: rng.New(seed)}
}

func (m *valueSetRandomMask) BeginIteration(state State) Mask {
	return &valueSetRandomMask{vs: m.vs, gen: rng.Restore(m.gen.Snapshot())}
}

func (m *valueSetRandomMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		for j := low1; j < high1; j++ {
			for i := low0; i < high0; i++ {
				if m.gen.Bernoulli(m.vs.Eval(i, j)) {
					if !yield(i, j) {
						return
					}
				}
			}
		}
	}
}
