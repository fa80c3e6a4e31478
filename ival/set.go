package ival

import (
	"sort"

	"github.com/csa-go/csa/csaerr"
)

// Set is an interval set: either finite or the complement of a finite
// set. The unexported rawTuples method seals the interface to this
// package's two concrete representations, which is what lets
// Intersection and Union dispatch on concrete type internally while
// still presenting a single abstract Set to callers.
type Set interface {
	// Finite reports whether the set has finitely many elements.
	Finite() bool
	// Contains reports whether n is a member of the set.
	Contains(n int) bool
	// Min returns the smallest element.
	Min() (int, error)
	// Max returns the largest element. Errors with InfiniteOperation
	// if the set is infinite.
	Max() (int, error)
	// Len returns the number of elements. Errors with
	// InfiniteOperation if the set is infinite.
	Len() (int, error)
	// Count returns the number of elements in the half-open range
	// [lo, hi).
	Count(lo, hi int) int
	// Intersection returns the set intersection of s and other.
	Intersection(other Set) Set
	// Union returns the set union of s and other.
	Union(other Set) Set
	// Complement returns ℤ≥0 minus s.
	Complement() Set
	// Shift returns {n + delta : n in s, n + delta >= 0}.
	Shift(delta int) Set
	// SkipIntervals detects a stride across a set made only of
	// singletons. It returns (stride, runs), where stride is the gap
	// between the first two elements and each run [first, last] is a
	// progression of elements stride apart; a new run may start only
	// at a multiple of stride. It returns (1, original intervals) when
	// the set has fewer than two intervals, contains a non-singleton
	// interval, or breaks the stride at a non-multiple.
	SkipIntervals() (int, []Interval)
	// Intervals returns an iterator over the set's closed intervals,
	// in ascending order.
	Intervals() func(yield func(lo, hi int) bool)
	// BoundedIntervals returns an iterator over the elements in the
	// half-open range [lo, hi). Errors with InfiniteOperation if the
	// set is infinite.
	BoundedIntervals(lo, hi int) (func(yield func(n int) bool), error)

	rawTuples() []Interval
}

type finiteSet struct {
	intervals []Interval
	n         int
}

type complementSet struct {
	// excluded holds the finite set of points not in this set.
	excluded []Interval
	n        int
}

// New builds a finite Set from a mix of individual points and
// intervals. Intervals that touch (hi+1 == lo') are merged; intervals
// that overlap are rejected.
func New(parts ...Interval) (Set, error) {
	sorted := append([]Interval(nil), parts...)
	for _, iv := range sorted {
		if err := validateInterval(iv); err != nil {
			return nil, err
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	if len(sorted) == 0 {
		return &finiteSet{}, nil
	}

	res := make([]Interval, 0, len(sorted))
	n := 0
	lo, hi := sorted[0].Lo, sorted[0].Hi
	for _, iv := range sorted[1:] {
		if iv.Lo <= hi {
			return nil, csaerr.E(csaerr.OverlappingIntervals, "intervals overlap")
		}
		if iv.Lo-hi == 1 {
			hi = iv.Hi
		} else {
			res = append(res, Interval{lo, hi})
			n += 1 + hi - lo
			lo, hi = iv.Lo, iv.Hi
		}
	}
	res = append(res, Interval{lo, hi})
	n += 1 + hi - lo

	return &finiteSet{intervals: res, n: n}, nil
}

// Empty returns the empty interval set.
func Empty() Set {
	return &finiteSet{}
}

// Full returns ℤ≥0, the unbounded interval set.
func Full() Set {
	return &complementSet{}
}

func (s *finiteSet) Finite() bool { return true }

func (s *finiteSet) Contains(n int) bool {
	for _, iv := range s.intervals {
		if n > iv.Hi {
			continue
		}
		return n >= iv.Lo
	}
	return false
}

func (s *finiteSet) Min() (int, error) {
	if len(s.intervals) == 0 {
		return 0, csaerr.E(csaerr.Other, "interval set is empty")
	}
	return s.intervals[0].Lo, nil
}

func (s *finiteSet) Max() (int, error) {
	if len(s.intervals) == 0 {
		return 0, csaerr.E(csaerr.Other, "interval set is empty")
	}
	return s.intervals[len(s.intervals)-1].Hi, nil
}

func (s *finiteSet) Len() (int, error) {
	return s.n, nil
}

func (s *finiteSet) Count(lo, hi int) int {
	c := 0
	for _, iv := range s.intervals {
		if iv.Hi < lo {
			continue
		}
		if iv.Lo >= hi {
			break
		}
		c += min(iv.Hi+1, hi) - max(lo, iv.Lo)
	}
	return c
}

func (s *finiteSet) Shift(delta int) Set {
	if len(s.intervals) == 0 || delta == 0 {
		return s
	}
	res := make([]Interval, 0, len(s.intervals))
	n := s.n
	for _, iv := range s.intervals {
		lo, hi := iv.Lo+delta, iv.Hi+delta
		switch {
		case lo >= 0:
			res = append(res, Interval{lo, hi})
		case hi >= 0:
			res = append(res, Interval{0, hi})
			n += lo
		default:
			n -= iv.size()
		}
	}
	return &finiteSet{intervals: res, n: n}
}

func (s *finiteSet) SkipIntervals() (int, []Interval) {
	return skipIntervals(s.intervals)
}

func (s *finiteSet) Complement() Set {
	return &complementSet{excluded: s.intervals, n: s.n}
}

func (s *finiteSet) rawTuples() []Interval { return s.intervals }

func skipIntervals(intervals []Interval) (int, []Interval) {
	if len(intervals) <= 1 || intervals[0].Lo != intervals[0].Hi {
		return 1, intervals
	}
	skip := intervals[1].Lo - intervals[0].Lo
	var res []Interval
	start, last := intervals[0].Lo, intervals[0].Lo
	for _, iv := range intervals[1:] {
		if iv.Lo != iv.Hi {
			return 1, intervals
		}
		if iv.Lo != last+skip {
			if iv.Lo%skip != 0 {
				return 1, intervals
			}
			res = append(res, Interval{start, last})
			start = iv.Lo
		}
		last = iv.Lo
	}
	res = append(res, Interval{start, last})
	return skip, res
}

func (s *complementSet) Finite() bool { return false }

func (s *complementSet) Contains(n int) bool {
	for _, iv := range s.excluded {
		if n > iv.Hi {
			continue
		}
		return n < iv.Lo
	}
	return true
}

func (s *complementSet) Min() (int, error) {
	if len(s.excluded) == 0 || s.excluded[0].Lo > 0 {
		return 0, nil
	}
	return s.excluded[0].Hi + 1, nil
}

func (s *complementSet) Max() (int, error) {
	return 0, csaerr.E(csaerr.InfiniteOperation, "the maximum of an unbounded interval set is infinite")
}

func (s *complementSet) Len() (int, error) {
	return 0, csaerr.E(csaerr.InfiniteOperation, "the length of an unbounded interval set is infinite")
}

func (s *complementSet) Count(lo, hi int) int {
	c := 0
	prev := lo
	for _, iv := range s.excluded {
		if iv.Hi < lo {
			continue
		}
		if iv.Lo >= hi {
			prev = hi
			break
		}
		c += max(iv.Lo, prev) - prev
		prev = iv.Hi + 1
	}
	if prev < hi {
		c += hi - prev
	}
	return c
}

func (s *complementSet) Shift(delta int) Set {
	if delta == 0 {
		return s
	}
	shifted, _ := (&finiteSet{intervals: s.excluded, n: s.n}).Shift(delta).(*finiteSet)
	excluded, n := shifted.intervals, shifted.n
	if delta > 0 {
		// Indices below delta are not the image of any member of s.
		excluded = append([]Interval{{0, delta - 1}}, excluded...)
		n += delta
		if len(excluded) > 1 && excluded[1].Lo == delta {
			excluded = append([]Interval{{0, excluded[1].Hi}}, excluded[2:]...)
		}
	}
	return &complementSet{excluded: excluded, n: n}
}

func (s *complementSet) SkipIntervals() (int, []Interval) {
	return 1, s.rawTuples()
}

func (s *complementSet) Complement() Set {
	return &finiteSet{intervals: s.excluded, n: s.n}
}

// rawTuples materializes the gaps between excluded intervals,
// terminated by a tuple reaching Infinity, mirroring the Python
// source's ComplementaryIntervalSet.intervalIterator.
func (s *complementSet) rawTuples() []Interval {
	res := make([]Interval, 0, len(s.excluded)+1)
	start := 0
	for _, iv := range s.excluded {
		if iv.Lo > 0 {
			res = append(res, Interval{start, iv.Lo - 1})
		}
		start = iv.Hi + 1
	}
	res = append(res, Interval{start, Infinity})
	return res
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
