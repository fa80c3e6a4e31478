package mask

import "github.com/csa-go/csa/geometry"

// discMask includes (i, j) whenever the two indices are closer than r
// under metric.
type discMask struct {
	r      float64
	metric geometry.Metric
}

// Disc returns a mask connecting every pair of indices within distance
// r of each other under metric.
func Disc(r float64, metric geometry.Metric) Mask {
	return &discMask{r: r, metric: metric}
}

func (m *discMask) BeginIteration(state State) Mask { return m }

func (m *discMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		for j := low1; j < high1; j++ {
			for i := low0; i < high0; i++ {
				if m.metric(i, j) < m.r {
					if !yield(i, j) {
						return
					}
				}
			}
		}
	}
}
