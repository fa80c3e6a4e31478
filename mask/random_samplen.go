package mask

import (
	"github.com/csa-go/csa/csaerr"
	"github.com/csa-go/csa/ival"
	"github.com/csa-go/csa/rng"
)

// sampleNMask draws exactly N connections uniformly at random (with
// replacement) from a cross mask's source and target sets, the way
// SampleNRandomMask's startIteration/iterator pair does in the
// source. BeginIteration defers the draw so a partitioned pass (via
// Partition) can redistribute N across partitions first.
type sampleNMask struct {
	cross Finite
	n     int
	seed  rng.Seed
}

// SampleN returns a mask with exactly n connections, drawn uniformly
// at random (with replacement, so a source may connect to the same
// target more than once) from cross's source and target interval
// sets. cross must be a cross mask (the result of Cross) with both
// sets finite, mirroring the source's restriction to a finite
// IntervalSetMask operand.
//
// When iterated through Partition, the draw becomes partition-aware:
// BeginIteration first runs a shared multinomial split of n across
// every partition (weighted by each partition's connection count,
// keyed by the partition's shared seed via rng.ReseedVector so every
// cooperating process derives the same split), then draws this
// partition's own share from a stream decorrelated from the other
// partitions via rng.Rehash. The per-partition shares always sum to
// n.
func SampleN(cross Finite, n int, seed rng.Seed) (Finite, error) {
	if _, _, ok := asCross(cross); !ok {
		return nil, csaerr.E(csaerr.WrongOperandClass, "random(N=...) currently only operates on a cross mask")
	}
	return &sampleNMask{cross: cross, n: n, seed: seed}, nil
}

func (m *sampleNMask) Bounds() (low0, high0, low1, high1 int) {
	return m.cross.Bounds()
}

func (m *sampleNMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return m.BeginIteration(State{}).BoundedIterate(low0, high0, low1, high1)
}

func (m *sampleNMask) BeginIteration(state State) Mask {
	n := m.n
	sub := Mask(m.cross)
	gen := rng.New(m.seed)
	if state.HasPartitions {
		n, sub = partitionedSampleSize(m.cross, m.n, m.seed, "SampleN", state)
		gen = rng.New(m.seed).Rehash(state.Selected)
	}
	set0, set1, ok := asCross(sub)
	if !ok {
		return Explicit(nil)
	}
	sources, err := elements(set0)
	if err != nil || len(sources) == 0 {
		return Explicit(nil)
	}
	targets, err := elements(set1)
	if err != nil || len(targets) == 0 {
		return Explicit(nil)
	}
	perTarget := rng.Multinomial(gen, n, uniformWeights(len(targets)))

	var pairs []Pair
	for t, target := range targets {
		for k := 0; k < perTarget[t]; k++ {
			pairs = append(pairs, Pair{I: sources[gen.UniformInt(len(sources))], J: target})
		}
	}
	return Explicit(pairs)
}

// partitionedSampleSize runs the shared multinomial split of n across
// state.Partitions (weighted by each partition's own connection
// count within cross) and returns this process's share along with its
// own restricted cross submask. name distinguishes SampleN's draw
// from FanIn's/FanOut's when no explicit seed is carried in state, so
// the two operators don't collide on the same default stream.
func partitionedSampleSize(cross Finite, n int, seed rng.Seed, name string, state State) (int, Mask) {
	sizes := make([]float64, len(state.Partitions))
	subs := make([]Mask, len(state.Partitions))
	total := 0.0
	for k, p := range state.Partitions {
		inter, ok := crossIntersect(cross, p)
		if !ok {
			continue
		}
		f, ok := inter.(Finite)
		if !ok {
			continue
		}
		subs[k] = f
		if s0, s1, ok := asCross(f); ok {
			sizes[k] = float64(crossSize(s0, s1))
			total += sizes[k]
		}
	}
	weights := make([]float64, len(sizes))
	if total > 0 {
		for k, s := range sizes {
			weights[k] = s / total
		}
	}
	if state.HasSeed {
		name = state.Seed
	}
	selector := rng.New(seed).ReseedVector(name, 0)
	share := rng.Multinomial(selector, n, weights)[state.Selected]
	sub := subs[state.Selected]
	if sub == nil {
		sub = Explicit(nil)
	}
	return share, sub
}

// crossSize returns the number of connections a cross of set0 and
// set1 contains; 0 if either is infinite.
func crossSize(set0, set1 ival.Set) int {
	n0, err := set0.Len()
	if err != nil {
		return 0
	}
	n1, err := set1.Len()
	if err != nil {
		return 0
	}
	return n0 * n1
}

func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}
	return w
}

// elements materializes every member of s, which must be finite.
func elements(s ival.Set) ([]int, error) {
	if !s.Finite() {
		return nil, csaerr.E(csaerr.InfiniteOperation, "random(N=...) requires a finite set")
	}
	lo, err := s.Min()
	if err != nil {
		return nil, nil
	}
	hi, err := s.Max()
	if err != nil {
		return nil, err
	}
	it, err := ival.BoundedElements(s, lo, hi+1)
	if err != nil {
		return nil, err
	}
	var res []int
	for n := range it {
		res = append(res, n)
	}
	return res, nil
}
