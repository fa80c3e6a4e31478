package ival_test

import (
	"testing"

	"github.com/csa-go/csa/csaerr"
	"github.com/csa-go/csa/ival"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMergesTouchingIntervals(t *testing.T) {
	s, err := ival.New(ival.Span(0, 2), ival.Span(3, 5), ival.Single(9))
	require.NoError(t, err)
	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(6))
}

func TestNewRejectsOverlap(t *testing.T) {
	_, err := ival.New(ival.Span(0, 5), ival.Span(3, 8))
	require.Error(t, err)
	assert.True(t, csaerr.Is(csaerr.OverlappingIntervals, err))
}

func TestNewRejectsMalformed(t *testing.T) {
	_, err := ival.New(ival.Span(5, 3))
	require.Error(t, err)
	assert.True(t, csaerr.Is(csaerr.MalformedInterval, err))
}

func TestNewRejectsNegative(t *testing.T) {
	_, err := ival.New(ival.Span(-1, 3))
	require.Error(t, err)
	assert.True(t, csaerr.Is(csaerr.NegativeIndex, err))
}

func TestComplementRoundTrips(t *testing.T) {
	s, err := ival.New(ival.Span(2, 5))
	require.NoError(t, err)
	c := s.Complement()
	assert.False(t, c.Finite())
	assert.False(t, c.Contains(3))
	assert.True(t, c.Contains(0))
	assert.True(t, c.Contains(100))

	back := c.Complement()
	assert.True(t, back.Finite())
	n, err := back.Len()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestFullIsUnbounded(t *testing.T) {
	f := ival.Full()
	assert.False(t, f.Finite())
	_, err := f.Max()
	assert.True(t, csaerr.Is(csaerr.InfiniteOperation, err))
	_, err = f.Len()
	assert.True(t, csaerr.Is(csaerr.InfiniteOperation, err))
	_, err = f.BoundedIntervals(0, 10)
	assert.True(t, csaerr.Is(csaerr.InfiniteOperation, err))
}

func TestIntersectionFiniteFinite(t *testing.T) {
	a, _ := ival.New(ival.Span(0, 10))
	b, _ := ival.New(ival.Span(5, 20))
	r := a.Intersection(b)
	n, _ := r.Len()
	assert.Equal(t, 6, n)
	lo, _ := r.Min()
	hi, _ := r.Max()
	assert.Equal(t, 5, lo)
	assert.Equal(t, 10, hi)
}

func TestIntersectionFiniteInfinite(t *testing.T) {
	a, _ := ival.New(ival.Span(0, 10))
	excl, _ := ival.New(ival.Single(3))
	c := excl.Complement()
	r := a.Intersection(c)
	assert.True(t, r.Finite())
	assert.False(t, r.Contains(3))
	assert.True(t, r.Contains(4))
	n, _ := r.Len()
	assert.Equal(t, 10, n)
}

func TestIntersectionInfiniteInfinite(t *testing.T) {
	excl1, _ := ival.New(ival.Single(3))
	excl2, _ := ival.New(ival.Single(7))
	r := excl1.Complement().Intersection(excl2.Complement())
	assert.False(t, r.Finite())
	assert.False(t, r.Contains(3))
	assert.False(t, r.Contains(7))
	assert.True(t, r.Contains(4))
}

func TestUnionFiniteFinite(t *testing.T) {
	a, _ := ival.New(ival.Span(0, 2))
	b, _ := ival.New(ival.Span(5, 8))
	r := a.Union(b)
	n, _ := r.Len()
	assert.Equal(t, 7, n)
}

func TestUnionOverlapping(t *testing.T) {
	a, _ := ival.New(ival.Span(0, 5))
	b, _ := ival.New(ival.Span(3, 10))
	r := a.Union(b)
	n, _ := r.Len()
	assert.Equal(t, 11, n)
	lo, _ := r.Min()
	hi, _ := r.Max()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 10, hi)
}

func TestUnionWithInfinite(t *testing.T) {
	a, _ := ival.New(ival.Span(0, 5))
	r := a.Union(ival.Full())
	assert.False(t, r.Finite())
	assert.True(t, r.Contains(1000))
}

func TestShift(t *testing.T) {
	s, _ := ival.New(ival.Span(0, 5), ival.Span(10, 12))
	shifted := s.Shift(3)
	assert.True(t, shifted.Contains(3))
	assert.True(t, shifted.Contains(15))
	assert.False(t, shifted.Contains(2))

	down := s.Shift(-3)
	assert.True(t, down.Contains(0))
	n, _ := down.Len()
	assert.Equal(t, 6, n)
}

func TestCount(t *testing.T) {
	s, _ := ival.New(ival.Span(2, 5), ival.Span(10, 12))
	assert.Equal(t, 4, s.Count(0, 6))
	assert.Equal(t, 3, s.Count(4, 11))

	c := s.Complement()
	assert.Equal(t, 2, c.Count(0, 6))
	assert.Equal(t, 20-7, c.Count(0, 20))
}

func TestSkipIntervalsDetectsStride(t *testing.T) {
	s, _ := ival.New(ival.Single(0), ival.Single(2), ival.Single(4), ival.Single(6))
	skip, intervals := s.SkipIntervals()
	assert.Equal(t, 2, skip)
	require.Len(t, intervals, 1)
	assert.Equal(t, ival.Span(0, 6), intervals[0])
}

func TestSkipIntervalsNoStride(t *testing.T) {
	s, _ := ival.New(ival.Span(0, 3))
	skip, intervals := s.SkipIntervals()
	assert.Equal(t, 1, skip)
	require.Len(t, intervals, 1)
	assert.Equal(t, ival.Span(0, 3), intervals[0])
}

func TestIntervalsIterator(t *testing.T) {
	s, _ := ival.New(ival.Span(0, 2), ival.Span(5, 6))
	var got []ival.Interval
	for lo, hi := range s.Intervals() {
		got = append(got, ival.Span(lo, hi))
	}
	assert.Equal(t, []ival.Interval{{0, 2}, {5, 6}}, got)
}

func TestBoundedIntervals(t *testing.T) {
	s, _ := ival.New(ival.Span(0, 2), ival.Span(5, 8))
	it, err := s.BoundedIntervals(2, 7)
	require.NoError(t, err)
	var got []int
	for n := range it {
		got = append(got, n)
	}
	assert.Equal(t, []int{2, 5, 6}, got)
}
