package connset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csa-go/csa/connset"
	"github.com/csa-go/csa/ival"
	"github.com/csa-go/csa/mask"
	"github.com/csa-go/csa/value"
)

func span(t *testing.T, lo, hi int) ival.Set {
	t.Helper()
	s, err := ival.New(ival.Span(lo, hi))
	require.NoError(t, err)
	return s
}

func TestNewEvaluatesEveryArity(t *testing.T) {
	m := mask.Cross(span(t, 0, 1), span(t, 0, 0))
	c := connset.New(m, value.Quoted(2), value.Generic(func(i, j int) float64 { return float64(i + j) }))
	f, ok := c.(connset.Finite)
	require.True(t, ok)
	var got []connset.Conn
	for conn := range connset.Pairs(f) {
		got = append(got, conn)
	}
	want := []connset.Conn{
		{I: 0, J: 0, Values: []float64{2, 0}},
		{I: 1, J: 0, Values: []float64{2, 1}},
	}
	assert.Equal(t, want, got)
}

func TestIntersectKeepsValuesNarrowsMask(t *testing.T) {
	base := connset.New(mask.Cross(span(t, 0, 5), span(t, 0, 5)), value.Quoted(1))
	narrowed := connset.Intersect(base, mask.Cross(span(t, 3, 8), span(t, 3, 8)))
	f := narrowed.(connset.Finite)
	var count int
	for conn := range connset.Pairs(f) {
		count++
		assert.Equal(t, []float64{1}, conn.Values)
	}
	assert.Equal(t, 9, count)
}

func TestMultisetSumRejectsArityMismatch(t *testing.T) {
	a := connset.New(mask.Cross(span(t, 0, 1), span(t, 0, 1)), value.Quoted(1))
	b := connset.New(mask.Cross(span(t, 0, 1), span(t, 0, 1)), value.Quoted(1), value.Quoted(2))
	_, err := connset.MultisetSum(a, b)
	assert.Error(t, err)
}

func TestIntersectionKeepsSharedConnectionsOnly(t *testing.T) {
	a := connset.New(mask.Explicit([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}}), value.Quoted(1))
	b := connset.New(mask.Explicit([]mask.Pair{{I: 1, J: 0}}), value.Quoted(9))
	r, err := connset.Intersection(a, b)
	require.NoError(t, err)
	f := r.(connset.Finite)
	var got []connset.Conn
	for conn := range connset.Pairs(f) {
		got = append(got, conn)
	}
	assert.Equal(t, []connset.Conn{{I: 1, J: 0, Values: []float64{1}}}, got)
}

func TestTabulateWritesOneLinePerConnection(t *testing.T) {
	c := connset.New(mask.Explicit([]mask.Pair{{I: 0, J: 1}, {I: 2, J: 1}}), value.Quoted(0.5))
	f := c.(connset.Finite)
	var buf strings.Builder
	require.NoError(t, connset.Tabulate(&buf, f))
	assert.Equal(t, "0\t1\t0.5\n2\t1\t0.5\n", buf.String())
}

func TestPartitionKeepsValuesNarrowsMask(t *testing.T) {
	whole := connset.New(mask.Cross(span(t, 0, 99), span(t, 0, 9)), value.Quoted(3))
	partitions := []mask.Mask{
		mask.Cross(span(t, 0, 99), span(t, 0, 4)),
		mask.Cross(span(t, 0, 99), span(t, 5, 9)),
	}
	part := connset.Partition(whole, partitions, 0, "seed")
	f, ok := part.(connset.Finite)
	require.True(t, ok)
	for conn := range connset.Pairs(f) {
		assert.LessOrEqual(t, conn.J, 4)
		assert.Equal(t, []float64{3}, conn.Values)
	}
}
