// Package ival implements interval sets: ordered, disjoint sets of
// non-negative integers represented as closed intervals. A Set is
// either finite (a list of closed intervals) or the complement of a
// finite set (conceptually ℤ≥0 minus a finite list of holes). Both
// variants share the same algebra: Intersection, Union, Complement,
// Shift, and membership/count queries.
package ival

import (
	"math"

	"github.com/csa-go/csa/csaerr"
)

// Infinity stands in for an unbounded upper endpoint, the way
// sys.maxsize-1 does in the source this package is ported from. It is
// large enough that ordinary arithmetic on real interval endpoints
// never approaches it, but finite enough that the host's native int
// arithmetic operates on it without overflow.
const Infinity = math.MaxInt64/2 - 1

// Interval is a closed interval [Lo, Hi] of non-negative integers.
type Interval struct {
	Lo, Hi int
}

// Single returns the one-point interval {n}.
func Single(n int) Interval {
	return Interval{n, n}
}

// Span returns the closed interval [lo, hi].
func Span(lo, hi int) Interval {
	return Interval{lo, hi}
}

func (iv Interval) size() int {
	return 1 + iv.Hi - iv.Lo
}

func validateInterval(iv Interval) error {
	if iv.Lo > iv.Hi {
		return csaerr.E(csaerr.MalformedInterval, "interval has lo > hi")
	}
	if iv.Lo < 0 {
		return csaerr.E(csaerr.NegativeIndex, "only non-negative values are allowed")
	}
	return nil
}
