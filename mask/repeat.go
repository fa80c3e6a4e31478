package mask

// repeatMask tiles an M x N template mask across the whole index
// plane: connection (k, post) of the template, defined over
// [0, bm) x [0, bn), recurs at every (iTile*bm + k, jTile*bn + post).
//
// The source's RepeatMask only handles windows whose target extent is
// an exact multiple of N starting at a multiple of N, by its own
// admission ("Not fully implemented"). This version tiles any window,
// by enumerating whichever template tiles the window actually
// overlaps and clipping each to the window, which is the natural
// completion of the same idea.
type repeatMask struct {
	bm, bn int
	sub    Mask
}

// Repeat returns a mask tiling sub's M(bm) x N(bn) connections across
// the whole index plane.
func Repeat(bm, bn int, sub Mask) Mask {
	return &repeatMask{bm: bm, bn: bn, sub: sub}
}

func (m *repeatMask) BeginIteration(state State) Mask {
	return &repeatMask{bm: m.bm, bn: m.bn, sub: m.sub.BeginIteration(state)}
}

func (m *repeatMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		if high0 <= low0 || high1 <= low1 {
			return
		}
		template := collect(m.sub, 0, m.bm, 0, m.bn)
		firstJTile, lastJTile := floorDiv(low1, m.bn), floorDiv(high1-1, m.bn)
		firstITile, lastITile := floorDiv(low0, m.bm), floorDiv(high0-1, m.bm)
		var out []Pair
		for jTile := firstJTile; jTile <= lastJTile; jTile++ {
			for iTile := firstITile; iTile <= lastITile; iTile++ {
				base0, base1 := iTile*m.bm, jTile*m.bn
				for _, p := range template {
					i, j := base0+p.I, base1+p.J
					if i < low0 || i >= high0 || j < low1 || j >= high1 {
						continue
					}
					out = append(out, Pair{I: i, J: j})
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

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
