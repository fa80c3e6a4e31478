package mask

// Transpose swaps the source and target axes of m. A cross mask
// transposes by swapping its operand interval sets directly, which
// works even when one side is infinite; any other mask must be
// Finite, and is wrapped so that each windowed pass swaps and re-sorts
// the underlying mask's connections.
func Transpose(m Mask) (Mask, error) {
	if set0, set1, ok := asCross(m); ok {
		return Cross(set1, set0), nil
	}
	sub, err := requireFinite(m, "transpose")
	if err != nil {
		return nil, err
	}
	return &transposedMask{sub: sub}, nil
}

type transposedMask struct {
	sub   Finite
	state State
}

func (m *transposedMask) BeginIteration(state State) Mask {
	ts := state.Transpose()
	started, _ := m.sub.BeginIteration(ts).(Finite)
	if started == nil {
		started = m.sub
	}
	return &transposedMask{sub: started, state: ts}
}

func (m *transposedMask) Bounds() (low0, high0, low1, high1 int) {
	l0, h0, l1, h1 := m.sub.Bounds()
	return l1, h1, l0, h0
}

func (m *transposedMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	pairs := collect(m.sub, low1, high1, low0, high0)
	swapped := make([]Pair, len(pairs))
	for k, p := range pairs {
		swapped[k] = Pair{I: p.J, J: p.I}
	}
	sortPairs(swapped)
	return func(yield func(i, j int) bool) {
		for _, p := range swapped {
			if !yield(p.I, p.J) {
				return
			}
		}
	}
}
