package mask

// explicitMask is a fixed, explicitly enumerated set of connections,
// sorted once at construction time.
type explicitMask struct {
	pairs                    []Pair
	low0, high0, low1, high1 int
}

// Explicit returns a Finite mask containing exactly the given pairs.
func Explicit(pairs []Pair) Finite {
	sorted := append([]Pair(nil), pairs...)
	sortPairs(sorted)
	m := &explicitMask{pairs: sorted}
	if len(sorted) > 0 {
		m.low0, m.high0 = sorted[0].I, sorted[0].I+1
		m.low1, m.high1 = sorted[0].J, sorted[len(sorted)-1].J+1
		for _, p := range sorted {
			if p.I < m.low0 {
				m.low0 = p.I
			}
			if p.I+1 > m.high0 {
				m.high0 = p.I + 1
			}
		}
	}
	return m
}

func (m *explicitMask) BeginIteration(state State) Mask { return m }

func (m *explicitMask) Bounds() (low0, high0, low1, high1 int) {
	return m.low0, m.high0, m.low1, m.high1
}

func (m *explicitMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		for _, p := range m.pairs {
			if p.J < low1 || p.J >= high1 || p.I < low0 || p.I >= high0 {
				continue
			}
			if !yield(p.I, p.J) {
				return
			}
		}
	}
}
