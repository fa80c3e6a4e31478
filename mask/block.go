package mask

// blockMask replaces each connection (k, post) of the underlying
// coarse mask with a full M x N block of connections, scaling indices
// by M on the source axis and N on the target axis.
type blockMask struct {
	bm, bn int
	sub    Mask
}

// Block returns a mask that expands each connection of sub into an
// M(bm) x N(bn) block: connection (k, post) in sub becomes every
// (ii, jj) with ii in [bm*k, bm*(k+1)) and jj in [bn*post, bn*(post+1)).
// If sub is Finite, so is the result.
func Block(bm, bn int, sub Mask) Mask {
	bm2 := &blockMask{bm: bm, bn: bn, sub: sub}
	if f, ok := sub.(Finite); ok {
		sl0, sh0, sl1, sh1 := f.Bounds()
		return &finiteBlockMask{blockMask: *bm2, low0: sl0 * bm, high0: sh0 * bm, low1: sl1 * bn, high1: sh1 * bn}
	}
	return bm2
}

func (m *blockMask) BeginIteration(state State) Mask {
	return &blockMask{bm: m.bm, bn: m.bn, sub: m.sub.BeginIteration(state)}
}

func (m *blockMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	coarseLow0, coarseHigh0 := low0/m.bm, ceilDiv(high0, m.bm)
	coarseLow1, coarseHigh1 := low1/m.bn, ceilDiv(high1, m.bn)
	return func(yield func(i, j int) bool) {
		var out []Pair
		for k, post := range m.sub.BoundedIterate(coarseLow0, coarseHigh0, coarseLow1, coarseHigh1) {
			jjLo, jjHi := max(m.bn*post, low1), min(m.bn*(post+1), high1)
			iiLo, iiHi := max(m.bm*k, low0), min(m.bm*(k+1), high0)
			for jj := jjLo; jj < jjHi; jj++ {
				for ii := iiLo; ii < iiHi; ii++ {
					out = append(out, Pair{I: ii, J: jj})
				}
			}
		}
		sortPairs(out)
		for _, p := range out {
			if !yield(p.I, p.J) {
				return
			}
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

type finiteBlockMask struct {
	blockMask
	low0, high0, low1, high1 int
}

func (m *finiteBlockMask) BeginIteration(state State) Mask {
	started := m.blockMask.BeginIteration(state).(*blockMask)
	return &finiteBlockMask{blockMask: *started, low0: m.low0, high0: m.high0, low1: m.low1, high1: m.high1}
}

func (m *finiteBlockMask) Bounds() (low0, high0, low1, high1 int) {
	return m.low0, m.high0, m.low1, m.high1
}
