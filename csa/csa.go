// Package csa is the connection-set algebra's public facade: the
// small set of constructors and operators a user composes to build up
// a connection set, named after the algebra's own vocabulary rather
// than the internal package layout.
package csa

import (
	"io"

	"github.com/csa-go/csa/connset"
	"github.com/csa-go/csa/csaerr"
	"github.com/csa-go/csa/geometry"
	"github.com/csa-go/csa/ival"
	"github.com/csa-go/csa/mask"
	"github.com/csa-go/csa/rng"
	"github.com/csa-go/csa/value"
)

// ConnectionSet is a mask paired with per-arity value sets.
type ConnectionSet = connset.CSet

// N is the unbounded interval set, ℤ≥0.
var N = ival.Full()

// Empty is the mask with no connections.
var Empty mask.Mask = mask.Cross(ival.Empty(), ival.Empty())

// Full is the mask connecting every pair of non-negative indices.
var Full mask.Mask = mask.Cross(ival.Full(), ival.Full())

// OneToOne is the diagonal mask.
var OneToOne mask.Mask = mask.OneToOne{}

// Transpose swaps the source and target axes of m.
func Transpose(m mask.Mask) (mask.Mask, error) { return mask.Transpose(m) }

// Fix materializes m's connections once and replays that realization
// on every later iteration pass.
func Fix(m mask.Finite) mask.Finite { return mask.Fix(m) }

// CSet wraps m with the given per-arity value sets.
func CSet(m mask.Mask, vs ...value.Set) ConnectionSet { return connset.New(m, vs...) }

// Mask returns c's underlying mask.
func Mask(c ConnectionSet) mask.Mask { return c.Mask() }

// Value returns c's k'th value set.
func Value(c ConnectionSet, k int) value.Set { return c.Values()[k] }

// Arity returns the number of value sets attached to c.
func Arity(c ConnectionSet) int { return len(c.Values()) }

// VSet coerces v into a value set: a value.Set is returned unchanged,
// a float64 becomes a constant, and a func(int, int) float64 becomes
// a Generic value set.
func VSet(v interface{}) value.Set {
	switch x := v.(type) {
	case value.Set:
		return x
	case float64:
		return value.Const(x)
	case func(i, j int) float64:
		return value.Generic(x)
	default:
		panic("csa.VSet: unsupported value type")
	}
}

// Ival returns the interval set {lo, lo+1, ..., hi}.
func Ival(lo, hi int) (ival.Set, error) { return ival.New(ival.Span(lo, hi)) }

// Cross returns the mask containing every (i, j) with i in set0 and j
// in set1.
func Cross(set0, set1 ival.Set) mask.Mask { return mask.Cross(set0, set1) }

// Random returns a mask including each candidate connection
// independently with probability p.
func Random(p float64, seed rng.Seed) mask.Mask { return mask.Random(p, seed) }

// RandomValueSet returns a mask including each candidate connection
// independently with probability vs.Eval(i, j).
func RandomValueSet(vs value.Set, seed rng.Seed) mask.Mask {
	return mask.RandomValueSet(vs, seed)
}

// RandomN returns a mask with exactly n connections sampled from
// cross's source and target sets.
func RandomN(cross mask.Finite, n int, seed rng.Seed) (mask.Finite, error) {
	return mask.SampleN(cross, n, seed)
}

// RandomFanIn returns a mask where every target has exactly fanIn
// incoming connections sampled from cross's source set.
func RandomFanIn(cross mask.Finite, fanIn int, seed rng.Seed) (mask.Finite, error) {
	return mask.FanIn(cross, fanIn, seed)
}

// RandomFanOut returns a mask where every source has exactly fanOut
// outgoing connections to cross's target set.
func RandomFanOut(cross mask.Finite, fanOut int, seed rng.Seed) (mask.Finite, error) {
	return mask.FanOut(cross, fanOut, seed)
}

// Disc returns a mask connecting every pair of indices within
// distance r of each other under metric.
func Disc(r float64, metric geometry.Metric) mask.Mask { return mask.Disc(r, metric) }

// Rectangle returns a mask connecting every (i, j) whose placement
// g0(i) lies strictly inside the width x height rectangle centred on
// g1(j).
func Rectangle(width, height float64, g0, g1 geometry.Geometry2D) mask.Mask {
	return mask.Rectangle(width, height, g0, g1)
}

// Gaussian returns a value set weighting (i, j) by a Gaussian falloff
// of metric(i, j).
func Gaussian(sigma, cutoff float64, metric geometry.Metric) value.Set {
	return value.Gaussian(sigma, cutoff, metric)
}

// Block expands each connection of sub into an M x N block.
func Block(bm, bn int, sub mask.Mask) mask.Mask { return mask.Block(bm, bn, sub) }

// Repeat tiles sub's M x N connections across the whole index plane.
func Repeat(bm, bn int, sub mask.Mask) mask.Mask { return mask.Repeat(bm, bn, sub) }

// Shift returns the mask containing (i+dM, j+dN) for every (i, j) in
// m.
func Shift(m mask.Mask, dM, dN int) mask.Mask { return mask.Shift(m, dM, dN) }

// Intersect restricts c to the connections whose (i, j) also belongs
// to m.
func Intersect(c ConnectionSet, m mask.Mask) ConnectionSet { return connset.Intersect(c, m) }

// Difference removes from c any connection whose (i, j) also belongs
// to m.
func Difference(c ConnectionSet, m mask.Mask) ConnectionSet { return connset.Difference(c, m) }

// Sum concatenates a and b's connections (duplicates preserved).
func Sum(a, b ConnectionSet) (ConnectionSet, error) { return connset.MultisetSum(a, b) }

// PartitionMask returns the slice of m assigned to process `selected`
// out of partitions.
func PartitionMask(m mask.Mask, partitions []mask.Mask, selected int, seed string) mask.Mask {
	return mask.Partition(m, partitions, selected, seed)
}

// PartitionCSet returns the slice of c assigned to process `selected`
// out of partitions.
func PartitionCSet(c ConnectionSet, partitions []mask.Mask, selected int, seed string) ConnectionSet {
	return connset.Partition(c, partitions, selected, seed)
}

// Tabulate writes every connection of c, one per line, to w.
func Tabulate(c ConnectionSet, w io.Writer) error {
	f, ok := c.(connset.Finite)
	if !ok {
		return csaerr.E(csaerr.InfiniteOperation, "tabulate requires a finite connection set")
	}
	return connset.Tabulate(w, f)
}
