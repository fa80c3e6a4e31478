package mask

import "github.com/csa-go/csa/rng"

// constantRandomMask includes each pair (i, j) in its window
// independently with probability p. Re-iterating the same mask object
// reproduces the same connections, since BeginIteration resets the
// stream to the token captured at construction.
type constantRandomMask struct {
	p   float64
	gen *rng.Generator
}

// Random returns a mask including each candidate connection
// independently with probability p, seeded from seed.
func Random(p float64, seed rng.Seed) Mask {
	return &constantRandomMask{p: p, gen: rng.New(seed)}
}

func (m *constantRandomMask) BeginIteration(state State) Mask {
	return &constantRandomMask{p: m.p, gen: rng.Restore(m.gen.Snapshot())}
}

func (m *constantRandomMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		for j := low1; j < high1; j++ {
			for i := low0; i < high0; i++ {
				if m.gen.Bernoulli(m.p) {
					if !yield(i, j) {
						return
					}
				}
			}
		}
	}
}
