package mask

import "github.com/csa-go/csa/geometry"

// rectangleMask includes (i, j) whenever g0(i) lies strictly inside
// the width x height rectangle centred on g1(j): |dx| < width/2 and
// |dy| < height/2, measured independently on each axis (unlike Disc,
// which uses a single radial metric).
type rectangleMask struct {
	halfWidth, halfHeight float64
	g0, g1                geometry.Geometry2D
}

// Rectangle returns a mask connecting every (i, j) whose placement
// g0(i) lies strictly inside the width x height rectangle centred on
// g1(j), that is within width/2 in X and height/2 in Y of it.
func Rectangle(width, height float64, g0, g1 geometry.Geometry2D) Mask {
	return &rectangleMask{halfWidth: width / 2, halfHeight: height / 2, g0: g0, g1: g1}
}

func (m *rectangleMask) BeginIteration(state State) Mask { return m }

func (m *rectangleMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		for j := low1; j < high1; j++ {
			p1 := m.g1(j)
			for i := low0; i < high0; i++ {
				p0 := m.g0(i)
				dx, dy := p0.X-p1.X, p0.Y-p1.Y
				if abs(dx) < m.halfWidth && abs(dy) < m.halfHeight {
					if !yield(i, j) {
						return
					}
				}
			}
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
