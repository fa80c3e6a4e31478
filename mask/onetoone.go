package mask

// OneToOne is the diagonal mask: connection (i, i) for every i, within
// whatever window it is iterated over.
type OneToOne struct{}

func (OneToOne) BeginIteration(state State) Mask { return OneToOne{} }

func (OneToOne) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		for i := max(low0, low1); i < min(high0, high1); i++ {
			if !yield(i, i) {
				return
			}
		}
	}
}
