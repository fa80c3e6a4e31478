package mask

import "github.com/csa-go/csa/ival"

// Binary mask combinators. Every one of them, given a window, first
// asks both operands for their connections within that same window,
// then merges the two (already Less-ordered) results with a plain
// two-pointer walk. The source drives the equivalent merge off two
// live generators and StopIteration; materializing each operand's
// windowed connections first is equivalent (a window is always
// finite) and avoids needing a pull-iterator adapter for what is, in
// the end, a bounded merge.

type binaryMask struct {
	a, b Mask
	op   func(a, b []Pair) []Pair
}

func (m *binaryMask) BeginIteration(state State) Mask {
	return &binaryMask{a: m.a.BeginIteration(state), b: m.b.BeginIteration(state), op: m.op}
}

func (m *binaryMask) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	merged := m.op(collect(m.a, low0, high0, low1, high1), collect(m.b, low0, high0, low1, high1))
	return func(yield func(i, j int) bool) {
		for _, p := range merged {
			if !yield(p.I, p.J) {
				return
			}
		}
	}
}

type finiteBinaryMask struct {
	binaryMask
	low0, high0, low1, high1 int
}

func (m *finiteBinaryMask) BeginIteration(state State) Mask {
	started := m.binaryMask.BeginIteration(state).(*binaryMask)
	return &finiteBinaryMask{binaryMask: *started, low0: m.low0, high0: m.high0, low1: m.low1, high1: m.high1}
}

func (m *finiteBinaryMask) Bounds() (low0, high0, low1, high1 int) {
	return m.low0, m.high0, m.low1, m.high1
}

func intersectPairs(a, b []Pair) []Pair {
	var res []Pair
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case Less(a[i], b[j]):
			i++
		case Less(b[j], a[i]):
			j++
		default:
			res = append(res, a[i])
			i++
			j++
		}
	}
	return res
}

func sumPairs(a, b []Pair) []Pair {
	res := make([]Pair, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if Less(b[j], a[i]) {
			res = append(res, b[j])
			j++
		} else {
			res = append(res, a[i])
			i++
		}
	}
	res = append(res, a[i:]...)
	res = append(res, b[j:]...)
	return res
}

func differencePairs(a, b []Pair) []Pair {
	var res []Pair
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && Less(b[j], a[i]) {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			j++
		} else {
			res = append(res, a[i])
		}
		i++
	}
	return res
}

// Intersect returns the connections present in both a and b. The
// result is Finite whenever either operand is (a bounded operand
// bounds the intersection regardless of the other side). Cross-over-
// cross and cross-over-arbitrary operands get the specialized
// interval-set-algebra treatment; everything else falls back to the
// generic windowed merge.
func Intersect(a, b Mask) Mask {
	if m, ok := crossIntersect(a, b); ok {
		return m
	}
	if m, ok := crossIntersect(b, a); ok {
		return m
	}
	bm := binaryMask{a: a, b: b, op: intersectPairs}
	af, aok := a.(Finite)
	bf, bok := b.(Finite)
	switch {
	case aok && bok:
		low0, high0, low1, high1 := boundsIntersect(af, bf)
		return finiteWrap(bm, low0, high0, low1, high1)
	case aok:
		low0, high0, low1, high1 := af.Bounds()
		return finiteWrap(bm, low0, high0, low1, high1)
	case bok:
		low0, high0, low1, high1 := bf.Bounds()
		return finiteWrap(bm, low0, high0, low1, high1)
	default:
		return &bm
	}
}

// MultisetSum returns the concatenation of a's and b's connections
// (duplicates are preserved: this is a sum, not a set union). The
// result is Finite only when both operands are, since an infinite
// operand contributes infinitely many connections regardless of the
// other side. Cross-over-cross operands with disjoint projections get
// the specialized treatment, matching the source's refusal to sum
// overlapping IntervalSetMasks; everything else falls back to the
// generic windowed merge.
func MultisetSum(a, b Mask) (Mask, error) {
	if m, ok, err := crossMultisetSum(a, b); ok {
		return m, err
	}
	bm := binaryMask{a: a, b: b, op: sumPairs}
	af, aok := a.(Finite)
	bf, bok := b.(Finite)
	if aok && bok {
		low0, high0, low1, high1 := boundsUnion(af, bf)
		return finiteWrap(bm, low0, high0, low1, high1), nil
	}
	return &bm, nil
}

// Difference returns a's connections with any (i,j) also present in b
// removed (at most one occurrence per side, since both operands are
// themselves sets of distinct pairs in the mask algebra's common
// case). The result is Finite iff a is: removing points from b never
// unbounds or bounds a on its own.
func Difference(a, b Mask) Mask {
	bm := binaryMask{a: a, b: b, op: differencePairs}
	if af, aok := a.(Finite); aok {
		low0, high0, low1, high1 := af.Bounds()
		return finiteWrap(bm, low0, high0, low1, high1)
	}
	return &bm
}

func finiteWrap(bm binaryMask, low0, high0, low1, high1 int) Mask {
	return &finiteBinaryMask{binaryMask: bm, low0: low0, high0: high0, low1: low1, high1: high1}
}

// Complement returns the connections of the full N x N mask not
// present in m: the source declares this operation (Mask.complement
// calls a MaskComplement class) but never defines that class anywhere
// in its implementation. This completes it as the natural
// universe-relative complement, consistent with this module committing
// Complement to the mask operator set.
func Complement(m Mask) Mask {
	return Difference(Cross(ival.Full(), ival.Full()), m)
}
