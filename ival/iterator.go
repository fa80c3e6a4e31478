package ival

import "github.com/csa-go/csa/csaerr"

// Intervals returns an iterator over s's constituent closed
// intervals, in ascending order. For an infinite set the final
// interval reaches Infinity.
func (s *finiteSet) Intervals() func(yield func(lo, hi int) bool) {
	return intervalsOver(s.intervals)
}

func (s *complementSet) Intervals() func(yield func(lo, hi int) bool) {
	return intervalsOver(s.rawTuples())
}

func intervalsOver(intervals []Interval) func(yield func(lo, hi int) bool) {
	return func(yield func(lo, hi int) bool) {
		for _, iv := range intervals {
			if !yield(iv.Lo, iv.Hi) {
				return
			}
		}
	}
}

// BoundedIntervals returns an iterator over the individual elements
// of s that fall in the half-open range [lo, hi). It errors with
// InfiniteOperation for an infinite set, which has no such
// enumeration.
func (s *finiteSet) BoundedIntervals(lo, hi int) (func(yield func(n int) bool), error) {
	return boundedOver(s.intervals, lo, hi), nil
}

func (s *complementSet) BoundedIntervals(lo, hi int) (func(yield func(n int) bool), error) {
	return nil, csaerr.E(csaerr.InfiniteOperation, "can't enumerate elements of an unbounded interval set")
}

// BoundedElements returns an iterator over the elements of s that fall
// in [lo, hi), dispatching to the concrete type's own BoundedIntervals.
// mask's finite window iteration uses this to walk the member indices
// of an arbitrary interval set without needing to know its
// representation.
func BoundedElements(s Set, lo, hi int) (func(yield func(n int) bool), error) {
	switch t := s.(type) {
	case *finiteSet:
		return t.BoundedIntervals(lo, hi)
	case *complementSet:
		return t.BoundedIntervals(lo, hi)
	default:
		return nil, csaerr.E(csaerr.Other, "unknown interval set representation")
	}
}

func boundedOver(intervals []Interval, lo, hi int) func(yield func(n int) bool) {
	return func(yield func(n int) bool) {
		i := 0
		for i < len(intervals) && intervals[i].Hi < lo {
			i++
		}
		for ; i < len(intervals) && intervals[i].Lo < hi; i++ {
			start, end := max(lo, intervals[i].Lo), min(intervals[i].Hi+1, hi)
			for e := start; e < end; e++ {
				if !yield(e) {
					return
				}
			}
		}
	}
}
