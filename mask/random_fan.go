package mask

import (
	"github.com/csa-go/csa/csaerr"
	"github.com/csa-go/csa/ival"
	"github.com/csa-go/csa/rng"
)

// fanInMask gives every target exactly fanIn incoming connections,
// each source drawn uniformly at random (with replacement) from the
// cross mask's source set, the way FanInRandomMask's
// startIteration/iterator pair does in the source. BeginIteration
// defers the draw so a partitioned pass (via Partition) can
// redistribute each target's fanIn connections across the partitions
// that see that target.
type fanInMask struct {
	cross Finite
	fanIn int
	seed  rng.Seed
}

// FanIn returns a mask where every target has exactly fanIn incoming
// connections, each source drawn uniformly at random (with
// replacement) from cross's source interval set. cross must be a
// cross mask with both sets finite.
//
// When iterated through Partition, each target's fanIn connections
// are redistributed across every partition that contains that target,
// weighted by the partition's own source-set size: BeginIteration
// draws a per-target multinomial split from a stream shared by every
// cooperating process (rng.ReseedVector, keyed by the partition's
// shared seed), then draws this partition's own share of that target
// from a stream decorrelated from the other partitions (rng.Rehash).
func FanIn(cross Finite, fanIn int, seed rng.Seed) (Finite, error) {
	if _, _, ok := asCross(cross); !ok {
		return nil, csaerr.E(csaerr.WrongOperandClass, "random(fanIn=...) currently only operates on a cross mask")
	}
	return &fanInMask{cross: cross, fanIn: fanIn, seed: seed}, nil
}

func (m *fanInMask) Bounds() (low0, high0, low1, high1 int) {
	return m.cross.Bounds()
}

func (m *fanInMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return m.BeginIteration(State{}).BoundedIterate(low0, high0, low1, high1)
}

// partitionCross is a partition's own cross submask, materialized
// once so fanIn's per-target membership and weight lookups don't
// repeat the intersection.
type partitionCross struct {
	set0, set1 ival.Set
	size0      int
	ok         bool
}

func (m *fanInMask) BeginIteration(state State) Mask {
	sub := Mask(m.cross)
	gen := rng.New(m.seed)
	var perTarget func(j int) int

	if state.HasPartitions {
		infos := make([]partitionCross, len(state.Partitions))
		for k, p := range state.Partitions {
			inter, ok := crossIntersect(m.cross, p)
			if !ok {
				continue
			}
			f, ok := inter.(Finite)
			if !ok {
				continue
			}
			s0, s1, ok := asCross(f)
			if !ok {
				continue
			}
			n0, err := s0.Len()
			if err != nil {
				continue
			}
			infos[k] = partitionCross{set0: s0, set1: s1, size0: n0, ok: true}
		}

		name := "FanIn"
		if state.HasSeed {
			name = state.Seed
		}
		selector := rng.New(m.seed).ReseedVector(name, 0)
		selected := state.Selected
		if infos[selected].ok {
			sub = Cross(infos[selected].set0, infos[selected].set1)
		} else {
			sub = Explicit(nil)
		}
		gen = rng.New(m.seed).Rehash(selected)

		perTarget = func(j int) int {
			weights := make([]float64, len(infos))
			total := 0.0
			for k, info := range infos {
				if info.ok && info.set1.Contains(j) {
					weights[k] = float64(info.size0)
					total += weights[k]
				}
			}
			if total > 0 {
				for k := range weights {
					weights[k] /= total
				}
			}
			return rng.Multinomial(selector, m.fanIn, weights)[selected]
		}
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
	if err != nil {
		return Explicit(nil)
	}

	var pairs []Pair
	for _, target := range targets {
		count := m.fanIn
		if perTarget != nil {
			count = perTarget(target)
		}
		for k := 0; k < count; k++ {
			pairs = append(pairs, Pair{I: sources[gen.UniformInt(len(sources))], J: target})
		}
	}
	return Explicit(pairs)
}

// FanOut returns a mask where every source has exactly fanOut outgoing
// connections, implemented as FanIn on the transposed cross mask,
// transposed back.
func FanOut(cross Finite, fanOut int, seed rng.Seed) (Finite, error) {
	transposed, err := Transpose(cross)
	if err != nil {
		return nil, err
	}
	transposedFinite, ok := transposed.(Finite)
	if !ok {
		return nil, csaerr.E(csaerr.WrongOperandClass, "random(fanOut=...) currently only operates on a cross mask")
	}
	result, err := FanIn(transposedFinite, fanOut, seed)
	if err != nil {
		return nil, err
	}
	back, err := Transpose(result)
	if err != nil {
		return nil, err
	}
	backFinite, ok := back.(Finite)
	if !ok {
		return nil, csaerr.E(csaerr.WrongOperandClass, "random(fanOut=...): transposed result lost finiteness")
	}
	return backFinite, nil
}
