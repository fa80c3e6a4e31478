package ival

// intersectTuples is a direct port of the source's tandem-walk
// intersection: both inputs are sorted, disjoint lists of closed
// intervals (a complement operand's list ends in a tuple reaching
// Infinity). The loop always terminates once either list is
// exhausted, which is guaranteed whenever at least one side is
// genuinely finite.
func intersectTuples(a, b []Interval) ([]Interval, int) {
	var res []Interval
	n := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Hi <= b[j].Hi {
			if a[i].Hi >= b[j].Lo {
				lower := max(a[i].Lo, b[j].Lo)
				res = append(res, Interval{lower, a[i].Hi})
				n += 1 + a[i].Hi - lower
			}
			i++
		} else {
			if b[j].Hi >= a[i].Lo {
				lower := max(a[i].Lo, b[j].Lo)
				res = append(res, Interval{lower, b[j].Hi})
				n += 1 + b[j].Hi - lower
			}
			j++
		}
	}
	return res, n
}

// mergeSorted merges two sorted, internally-disjoint interval lists
// into one sorted list (not yet coalesced).
func mergeSorted(a, b []Interval) []Interval {
	res := make([]Interval, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Lo <= b[j].Lo {
			res = append(res, a[i])
			i++
		} else {
			res = append(res, b[j])
			j++
		}
	}
	res = append(res, a[i:]...)
	res = append(res, b[j:]...)
	return res
}

// coalesce merges touching or overlapping intervals in a sorted list.
// Unlike the strict coercion New performs on constructor input, this
// never rejects overlap: it is used for unions, where overlap between
// the two operands' own interval lists is routine.
func coalesce(sorted []Interval) ([]Interval, int) {
	if len(sorted) == 0 {
		return nil, 0
	}
	res := make([]Interval, 0, len(sorted))
	n := 0
	lo, hi := sorted[0].Lo, sorted[0].Hi
	for _, iv := range sorted[1:] {
		if iv.Lo <= hi+1 {
			if iv.Hi > hi {
				hi = iv.Hi
			}
			continue
		}
		res = append(res, Interval{lo, hi})
		n += 1 + hi - lo
		lo, hi = iv.Lo, iv.Hi
	}
	res = append(res, Interval{lo, hi})
	n += 1 + hi - lo
	return res, n
}

func finiteUnion(a, b *finiteSet) *finiteSet {
	if len(a.intervals) == 0 {
		return b
	}
	if len(b.intervals) == 0 {
		return a
	}
	res, n := coalesce(mergeSorted(a.intervals, b.intervals))
	return &finiteSet{intervals: res, n: n}
}

// Intersection returns the intersection of a and b.
func Intersection(a, b Set) Set {
	if !a.Finite() && !b.Finite() {
		// De Morgan: a∩b = ~(~a ∪ ~b). Both complements are finite,
		// so this reduces to a plain finite union.
		ca, cb := a.Complement().(*finiteSet), b.Complement().(*finiteSet)
		return finiteUnion(ca, cb).Complement()
	}
	res, n := intersectTuples(a.rawTuples(), b.rawTuples())
	return &finiteSet{intervals: res, n: n}
}

// Union returns the union of a and b.
func Union(a, b Set) Set {
	if a.Finite() && b.Finite() {
		return finiteUnion(a.(*finiteSet), b.(*finiteSet))
	}
	// At least one operand is infinite: a∪b = ~(~a ∩ ~b). At least one
	// of ~a, ~b is then finite, so this Intersection call never hits
	// the both-infinite branch above.
	return Intersection(a.Complement(), b.Complement()).Complement()
}

func (s *finiteSet) Intersection(other Set) Set { return Intersection(s, other) }
func (s *finiteSet) Union(other Set) Set        { return Union(s, other) }

func (s *complementSet) Intersection(other Set) Set { return Intersection(s, other) }
func (s *complementSet) Union(other Set) Set        { return Union(s, other) }
