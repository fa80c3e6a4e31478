package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csa-go/csa/geometry"
	"github.com/csa-go/csa/ival"
	"github.com/csa-go/csa/mask"
	"github.com/csa-go/csa/rng"
)

func ivalSpan(t *testing.T, lo, hi int) ival.Set {
	t.Helper()
	s, err := ival.New(ival.Span(lo, hi))
	require.NoError(t, err)
	return s
}

func collectWindow(m mask.Mask, low0, high0, low1, high1 int) []mask.Pair {
	var got []mask.Pair
	for i, j := range m.BeginIteration(mask.State{}).BoundedIterate(low0, high0, low1, high1) {
		got = append(got, mask.Pair{I: i, J: j})
	}
	return got
}

func collectAll(t *testing.T, m mask.Mask) []mask.Pair {
	t.Helper()
	f, ok := m.(mask.Finite)
	require.True(t, ok, "expected a finite mask")
	var got []mask.Pair
	for i, j := range mask.Pairs(f) {
		got = append(got, mask.Pair{I: i, J: j})
	}
	return got
}

func TestCrossYieldsFullProductInPostOrder(t *testing.T) {
	sources := ivalSpan(t, 0, 2)
	targets := ivalSpan(t, 10, 11)
	got := collectAll(t, mask.Cross(sources, targets))
	want := []mask.Pair{
		{I: 0, J: 10}, {I: 1, J: 10}, {I: 2, J: 10},
		{I: 0, J: 11}, {I: 1, J: 11}, {I: 2, J: 11},
	}
	assert.Equal(t, want, got)
}

func TestCrossIntersectReducesToIntervalIntersection(t *testing.T) {
	a := mask.Cross(ivalSpan(t, 0, 5), ivalSpan(t, 0, 5))
	b := mask.Cross(ivalSpan(t, 3, 8), ivalSpan(t, 3, 8))
	got := collectAll(t, mask.Intersect(a, b))
	want := []mask.Pair{{I: 3, J: 3}, {I: 4, J: 3}, {I: 5, J: 3}, {I: 3, J: 4}, {I: 4, J: 4}, {I: 5, J: 4}, {I: 3, J: 5}, {I: 4, J: 5}, {I: 5, J: 5}}
	assert.Equal(t, want, got)
}

func TestMultisetSumOfDisjointCrossMasks(t *testing.T) {
	a := mask.Cross(ivalSpan(t, 0, 1), ivalSpan(t, 0, 1))
	b := mask.Cross(ivalSpan(t, 2, 3), ivalSpan(t, 0, 1))
	sum, err := mask.MultisetSum(a, b)
	require.NoError(t, err)
	got := collectAll(t, sum)
	assert.Len(t, got, 8)
}

func TestMultisetSumOfOverlappingCrossMasksErrors(t *testing.T) {
	a := mask.Cross(ivalSpan(t, 0, 5), ivalSpan(t, 0, 5))
	b := mask.Cross(ivalSpan(t, 3, 8), ivalSpan(t, 0, 5))
	_, err := mask.MultisetSum(a, b)
	assert.Error(t, err)
}

func TestIntersectIsFiniteWhenEitherOperandIs(t *testing.T) {
	infinite := mask.OneToOne{}
	finite := mask.Explicit([]mask.Pair{{I: 3, J: 3}, {I: 100, J: 100}})
	_, ok := mask.Intersect(infinite, finite).(mask.Finite)
	assert.True(t, ok, "intersecting an unbounded mask with a bounded one must still be bounded")
	_, ok = mask.Intersect(finite, infinite).(mask.Finite)
	assert.True(t, ok, "operand order must not affect finiteness")
}

func TestMultisetSumIsOnlyFiniteWhenBothOperandsAre(t *testing.T) {
	infinite := mask.OneToOne{}
	finite := mask.Explicit([]mask.Pair{{I: 3, J: 3}})
	sum, err := mask.MultisetSum(infinite, finite)
	require.NoError(t, err)
	_, ok := sum.(mask.Finite)
	assert.False(t, ok, "summing in an unbounded operand must leave the result unbounded")
}

func TestDifferenceRemovesSharedConnections(t *testing.T) {
	a := mask.Explicit([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}, {I: 0, J: 1}})
	b := mask.Explicit([]mask.Pair{{I: 1, J: 0}})
	got := collectAll(t, mask.Difference(a, b))
	assert.Equal(t, []mask.Pair{{I: 0, J: 0}, {I: 0, J: 1}}, got)
}

func TestComplementIsUniverseMinusMask(t *testing.T) {
	m := mask.Cross(ivalSpan(t, 0, 0), ivalSpan(t, 0, 0))
	comp := mask.Complement(m)
	got := collectWindow(comp, 0, 2, 0, 2)
	want := []mask.Pair{{I: 0, J: 1}, {I: 1, J: 1}, {I: 1, J: 0}}
	assert.ElementsMatch(t, want, got)
}

func TestOneToOneIsDiagonal(t *testing.T) {
	got := collectWindow(mask.OneToOne{}, 0, 3, 0, 3)
	assert.Equal(t, []mask.Pair{{I: 0, J: 0}, {I: 1, J: 1}, {I: 2, J: 2}}, got)
}

func TestExplicitSortsAndBounds(t *testing.T) {
	e := mask.Explicit([]mask.Pair{{I: 5, J: 1}, {I: 0, J: 0}, {I: 2, J: 1}})
	low0, high0, low1, high1 := e.Bounds()
	assert.Equal(t, 0, low0)
	assert.Equal(t, 6, high0)
	assert.Equal(t, 0, low1)
	assert.Equal(t, 2, high1)
	got := collectAll(t, e)
	assert.Equal(t, []mask.Pair{{I: 0, J: 0}, {I: 2, J: 1}, {I: 5, J: 1}}, got)
}

func TestTransposeSwapsAxes(t *testing.T) {
	m := mask.Explicit([]mask.Pair{{I: 0, J: 1}, {I: 2, J: 3}})
	tr, err := mask.Transpose(m)
	require.NoError(t, err)
	got := collectAll(t, tr)
	assert.Equal(t, []mask.Pair{{I: 1, J: 0}, {I: 3, J: 2}}, got)
}

func TestShiftTranslatesConnections(t *testing.T) {
	m := mask.Explicit([]mask.Pair{{I: 1, J: 1}})
	shifted := mask.Shift(m, 2, 3)
	got := collectAll(t, shifted.(mask.Finite))
	assert.Equal(t, []mask.Pair{{I: 3, J: 4}}, got)
}

func TestFixPinsARandomMaskToOneRealization(t *testing.T) {
	cross := mask.Cross(ivalSpan(t, 0, 20), ivalSpan(t, 0, 20)).(mask.Finite)
	random := mask.Intersect(mask.Random(0.5, rng.Seed(7)), cross).(mask.Finite)
	fixed := mask.Fix(random)
	first := collectAll(t, fixed)
	second := collectAll(t, fixed)
	assert.Equal(t, first, second)
}

func TestRandomIsDeterministicAcrossPasses(t *testing.T) {
	cross := mask.Cross(ivalSpan(t, 0, 10), ivalSpan(t, 0, 10)).(mask.Finite)
	r := mask.Intersect(mask.Random(0.3, rng.Seed(42)), cross)
	first := collectAll(t, r.(mask.Finite))
	second := collectAll(t, r.(mask.Finite))
	assert.Equal(t, first, second)
}

func TestBlockExpandsEachConnectionIntoATile(t *testing.T) {
	sub := mask.Explicit([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}})
	b := mask.Block(2, 2, sub)
	got := collectAll(t, b.(mask.Finite))
	want := []mask.Pair{
		{I: 0, J: 0}, {I: 1, J: 0}, {I: 2, J: 0}, {I: 3, J: 0},
		{I: 0, J: 1}, {I: 1, J: 1}, {I: 2, J: 1}, {I: 3, J: 1},
	}
	assert.Equal(t, want, got)
	for i := 1; i < len(got); i++ {
		assert.True(t, mask.Less(got[i-1], got[i]) || got[i-1] == got[i], "block output must be in post order")
	}
}

func TestRepeatTilesBeyondTheTemplate(t *testing.T) {
	template := mask.Explicit([]mask.Pair{{I: 0, J: 0}})
	r := mask.Repeat(2, 2, template)
	got := collectWindow(r, 0, 6, 0, 6)
	want := []mask.Pair{
		{I: 0, J: 0}, {I: 2, J: 0}, {I: 4, J: 0},
		{I: 0, J: 2}, {I: 2, J: 2}, {I: 4, J: 2},
		{I: 0, J: 4}, {I: 2, J: 4}, {I: 4, J: 4},
	}
	assert.Equal(t, want, got)
}

func TestPartitionRestrictsToSelectedSlice(t *testing.T) {
	whole := mask.Cross(ivalSpan(t, 0, 9), ivalSpan(t, 0, 9)).(mask.Finite)
	partitions := []mask.Mask{
		mask.Cross(ival.Full(), ivalSpan(t, 0, 4)),
		mask.Cross(ival.Full(), ivalSpan(t, 5, 9)),
	}
	part0 := mask.Partition(whole, partitions, 0, "seed").(mask.Finite)
	part1 := mask.Partition(whole, partitions, 1, "seed").(mask.Finite)
	got0 := collectAll(t, part0)
	got1 := collectAll(t, part1)
	assert.Len(t, got0, 50)
	assert.Len(t, got1, 50)
	for _, p := range got0 {
		assert.LessOrEqual(t, p.J, 4)
	}
	for _, p := range got1 {
		assert.GreaterOrEqual(t, p.J, 5)
	}
}

func TestSampleNRedistributesAcrossPartitionsConsistently(t *testing.T) {
	cross := mask.Cross(ivalSpan(t, 0, 19), ivalSpan(t, 0, 19)).(mask.Finite)
	sampled, err := mask.SampleN(cross, 30, rng.Seed(11))
	require.NoError(t, err)

	partitions := []mask.Mask{
		mask.Cross(ival.Full(), ivalSpan(t, 0, 9)),
		mask.Cross(ival.Full(), ivalSpan(t, 10, 19)),
	}
	part0 := mask.Partition(sampled, partitions, 0, "shared-seed").(mask.Finite)
	part1 := mask.Partition(sampled, partitions, 1, "shared-seed").(mask.Finite)

	got0 := collectAll(t, part0)
	got1 := collectAll(t, part1)

	// Partition shares always sum to N, whatever the split.
	assert.Equal(t, 30, len(got0)+len(got1))

	for _, p := range got0 {
		assert.LessOrEqual(t, p.J, 9)
	}
	for _, p := range got1 {
		assert.GreaterOrEqual(t, p.J, 10)
	}

	// Repeating the split with the same shared seed reproduces the
	// same per-partition share, the way cooperating processes that
	// never communicate still agree on how many connections land in
	// each partition.
	again0 := collectAll(t, mask.Partition(sampled, partitions, 0, "shared-seed").(mask.Finite))
	assert.Equal(t, got0, again0)
}

func TestDiscConnectsWithinRadius(t *testing.T) {
	grid := geometry.Grid2D(4, 4, 4, 0, 0)
	metric := geometry.EuclidMetric2D(grid, nil)
	d := mask.Disc(1.5, metric)
	got := collectWindow(d, 0, 1, 0, 16)
	assert.Contains(t, got, mask.Pair{I: 0, J: 0})
	assert.NotContains(t, got, mask.Pair{I: 0, J: 15})
}
