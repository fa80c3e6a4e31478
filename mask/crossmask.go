package mask

import (
	"github.com/csa-go/csa/csaerr"
	"github.com/csa-go/csa/ival"
)

// crossMask is the cross product of two interval sets: every (i, j)
// with i in set0 and j in set1. Either set may be infinite.
type crossMask struct {
	set0, set1 ival.Set
}

// Cross returns the mask containing every (i, j) with i in set0 and j
// in set1. If both sets are finite, the result also implements
// Finite.
func Cross(set0, set1 ival.Set) Mask {
	cm := crossMask{set0: set0, set1: set1}
	if set0.Finite() && set1.Finite() {
		return &finiteCrossMask{cm}
	}
	return &cm
}

func (m *crossMask) BeginIteration(state State) Mask { return m }

func (m *crossMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		js, err := ival.BoundedElements(m.set1, low1, high1)
		if err != nil {
			panic(err)
		}
		for j := range js {
			is, err := ival.BoundedElements(m.set0, low0, high0)
			if err != nil {
				panic(err)
			}
			for i := range is {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// asCross reports whether m is a Cross mask, returning its operand
// interval sets.
func asCross(m Mask) (set0, set1 ival.Set, ok bool) {
	switch c := m.(type) {
	case *crossMask:
		return c.set0, c.set1, true
	case *finiteCrossMask:
		return c.set0, c.set1, true
	default:
		return nil, nil, false
	}
}

type finiteCrossMask struct {
	crossMask
}

func (m *finiteCrossMask) BeginIteration(state State) Mask { return m }

func (m *finiteCrossMask) Bounds() (low0, high0, low1, high1 int) {
	low0, _ = m.set0.Min()
	hi0, _ := m.set0.Max()
	low1, _ = m.set1.Min()
	hi1, _ := m.set1.Max()
	return low0, hi0 + 1, low1, hi1 + 1
}

// crossIntersect implements IntervalSetMask.intersection: if b is also
// a cross mask, the intersection reduces to intersecting the operand
// interval sets directly; otherwise a is used to bound and filter b
// (ISetBoundedMask).
func crossIntersect(a, b Mask) (Mask, bool) {
	aSet0, aSet1, aOK := asCross(a)
	if !aOK {
		return nil, false
	}
	if bSet0, bSet1, bOK := asCross(b); bOK {
		return Cross(ival.Intersection(aSet0, bSet0), ival.Intersection(aSet1, bSet1)), true
	}
	return boundByIntervalSets(aSet0, aSet1, b), true
}

// crossMultisetSum implements IntervalSetMask.multisetSum for two
// cross masks. When their projections are disjoint on one axis and
// identical on the other, the sum reduces to a single cross of the
// unioned interval sets. When they are disjoint on an axis but differ
// on the other, no single cross equals the sum, so crossMultisetSum
// reports that it does not apply (false) and the caller's generic
// merge handles it. Projections that overlap on both axes are
// rejected, the same way the source refuses them, because a plain
// union of the operand sets would silently double-count the
// connections in the overlap. The bool return reports whether
// crossMultisetSum applies; err is only meaningful when that bool is
// true.
func crossMultisetSum(a, b Mask) (Mask, bool, error) {
	aSet0, aSet1, aOK := asCross(a)
	bSet0, bSet1, bOK := asCross(b)
	if !aOK || !bOK {
		return nil, false, nil
	}
	overlap0, overlap1 := ival.Intersection(aSet0, bSet0), ival.Intersection(aSet1, bSet1)
	same := func(x, y ival.Set) bool {
		return isEmpty(ival.Intersection(x, y.Complement())) && isEmpty(ival.Intersection(y, x.Complement()))
	}
	switch {
	case isEmpty(overlap0) && same(aSet1, bSet1):
		return Cross(ival.Union(aSet0, bSet0), aSet1), true, nil
	case isEmpty(overlap1) && same(aSet0, bSet0):
		return Cross(aSet0, ival.Union(aSet1, bSet1)), true, nil
	case isEmpty(overlap0) || isEmpty(overlap1):
		return nil, false, nil
	}
	return nil, true, csaerr.E(csaerr.OverlappingIntervalSetMaskSum, "sums of overlapping cross masks are not supported")
}

func isEmpty(s ival.Set) bool {
	n, err := s.Len()
	return err == nil && n == 0
}

// boundByIntervalSets restricts sub's windowed iteration to set0 x
// set1, filtering out any connection not a member of both sets. This
// covers ISetBoundedMask's role (intersecting a cross mask with an
// arbitrary mask) without replicating the source's per-interval window
// splitting: filtering the already-windowed result is simpler and
// produces the identical connections.
func boundByIntervalSets(set0, set1 ival.Set, sub Mask) Mask {
	bm := &isetBounded{set0: set0, set1: set1, sub: sub}
	if subFinite, ok := sub.(Finite); ok {
		sl0, sh0, sl1, sh1 := subFinite.Bounds()
		low0, high0 := clip(set0, sl0, sh0)
		low1, high1 := clip(set1, sl1, sh1)
		return &finiteIsetBounded{isetBounded: *bm, low0: low0, high0: high0, low1: low1, high1: high1}
	}
	if set0.Finite() && set1.Finite() {
		low0, high0 := clip(set0, 0, ival.Infinity)
		low1, high1 := clip(set1, 0, ival.Infinity)
		return &finiteIsetBounded{isetBounded: *bm, low0: low0, high0: high0, low1: low1, high1: high1}
	}
	return bm
}

// clip narrows [lo, hi) to set's own extent when set is finite.
func clip(set ival.Set, lo, hi int) (int, int) {
	if !set.Finite() {
		return lo, hi
	}
	setLo, _ := set.Min()
	setHi, _ := set.Max()
	if setLo > lo {
		lo = setLo
	}
	if setHi+1 < hi {
		hi = setHi + 1
	}
	return lo, hi
}

type isetBounded struct {
	set0, set1 ival.Set
	sub        Mask
}

func (m *isetBounded) BeginIteration(state State) Mask {
	return &isetBounded{set0: m.set0, set1: m.set1, sub: m.sub.BeginIteration(state)}
}

func (m *isetBounded) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return func(yield func(i, j int) bool) {
		for i, j := range m.sub.BoundedIterate(low0, high0, low1, high1) {
			if m.set0.Contains(i) && m.set1.Contains(j) {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

type finiteIsetBounded struct {
	isetBounded
	low0, high0, low1, high1 int
}

func (m *finiteIsetBounded) BeginIteration(state State) Mask {
	started := m.isetBounded.BeginIteration(state).(*isetBounded)
	return &finiteIsetBounded{isetBounded: *started, low0: m.low0, high0: m.high0, low1: m.low1, high1: m.high1}
}

func (m *finiteIsetBounded) Bounds() (low0, high0, low1, high1 int) {
	return m.low0, m.high0, m.low1, m.high1
}
