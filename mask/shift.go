package mask

// Shift returns the mask containing (i+dM, j+dN) for every (i, j) in
// m, dropping any shifted connection that would land at a negative
// index. A cross mask shifts by shifting its operand interval sets
// directly; any other mask is wrapped so that each windowed pass
// requests the corresponding unshifted window from m and shifts the
// result.
func Shift(m Mask, dM, dN int) Mask {
	if set0, set1, ok := asCross(m); ok {
		return Cross(set0.Shift(dM), set1.Shift(dN))
	}
	sm := &shiftedMask{sub: m, dM: dM, dN: dN}
	if f, ok := m.(Finite); ok {
		low0, high0, low1, high1 := f.Bounds()
		low0, high0 = clipShift(low0, high0, dM)
		low1, high1 = clipShift(low1, high1, dN)
		return &finiteShiftedMask{shiftedMask: *sm, low0: low0, high0: high0, low1: low1, high1: high1}
	}
	return sm
}

func clipShift(lo, hi, delta int) (int, int) {
	lo += delta
	hi += delta
	if lo < 0 {
		lo = 0
	}
	return lo, hi
}

type shiftedMask struct {
	sub    Mask
	dM, dN int
}

func (m *shiftedMask) BeginIteration(state State) Mask {
	return &shiftedMask{sub: m.sub.BeginIteration(state), dM: m.dM, dN: m.dN}
}

func (m *shiftedMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	srcLow0, srcHigh0 := max(low0-m.dM, 0), high0-m.dM
	srcLow1, srcHigh1 := max(low1-m.dN, 0), high1-m.dN
	return func(yield func(i, j int) bool) {
		for i, j := range m.sub.BoundedIterate(srcLow0, srcHigh0, srcLow1, srcHigh1) {
			i1, j1 := i+m.dM, j+m.dN
			if i1 >= 0 && j1 >= 0 {
				if !yield(i1, j1) {
					return
				}
			}
		}
	}
}

type finiteShiftedMask struct {
	shiftedMask
	low0, high0, low1, high1 int
}

func (m *finiteShiftedMask) BeginIteration(state State) Mask {
	started := m.shiftedMask.BeginIteration(state).(*shiftedMask)
	return &finiteShiftedMask{shiftedMask: *started, low0: m.low0, high0: m.high0, low1: m.low1, high1: m.high1}
}

func (m *finiteShiftedMask) Bounds() (low0, high0, low1, high1 int) {
	return m.low0, m.high0, m.low1, m.high1
}
