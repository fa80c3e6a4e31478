// Package mask implements masks: lazy, windowed sets of (source,
// target) index pairs. A mask never materializes its full connection
// set; callers iterate it through a bounded window, the same way a
// partitioned simulation only ever asks "which connections touch this
// slice of sources and targets". Random masks restore their streams at
// the start of every iteration pass (BeginIteration) so that
// re-iterating the same window reproduces the same connections.
package mask

import (
	"sort"

	"github.com/csa-go/csa/csaerr"
	"github.com/csa-go/csa/log"
)

// Pair is a single (source, target) connection.
type Pair struct {
	I, J int
}

// Less orders pairs the way every mask in this package iterates them:
// by target first, then by source. Binary mask algorithms that merge
// two operands' connections rely on both sides producing pairs in
// this order.
func Less(a, b Pair) bool {
	if a.J != b.J {
		return a.J < b.J
	}
	return a.I < b.I
}

// State carries the partition context a partitioned random mask's
// iteration needs: which partition this process is responsible for,
// out of how many, and a seed shared by every cooperating process so
// they all draw the same partition-selection numbers. A zero State
// (HasPartitions false) means "not partitioned": the mask is being
// iterated whole.
type State struct {
	Partitions    []Mask
	Selected      int
	Seed          string
	HasSeed       bool
	HasPartitions bool
}

// Transpose returns the state unchanged: its Partitions are passed on
// as they are, not transposed.
func (s State) Transpose() State {
	return s
}

// Mask is a lazy set of connections. Every mask can be iterated within
// an arbitrary rectangular window; whether the whole mask is finite is
// a separate capability (Finite).
type Mask interface {
	// BeginIteration returns a mask ready to serve a fresh iteration
	// pass: random masks reset their stream here, stateless masks
	// return themselves unchanged. state carries partition context;
	// pass State{} for an unpartitioned pass.
	BeginIteration(state State) Mask

	// BoundedIterate yields every connection (i, j) with i in
	// [low0, high0) and j in [low1, high1), in Less order.
	BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool)
}

// Finite is a Mask known to have finite bounds: its connections all
// lie within a bounded rectangle, so it can be iterated without a
// caller-supplied window.
type Finite interface {
	Mask
	// Bounds returns a rectangle containing every connection (not
	// necessarily the smallest one): low0/high0 bound the source
	// index, low1/high1 the target index, all half-open.
	Bounds() (low0, high0, low1, high1 int)
}

// IsFinite reports whether m also implements Finite.
func IsFinite(m Mask) (Finite, bool) {
	f, ok := m.(Finite)
	return f, ok
}

// Pairs iterates every connection of a Finite mask over its own
// bounds, beginning a fresh pass first. It is the whole-mask
// convenience for callers that iterate a bare mask without a window
// (the mask tests, among others) instead of computing bounds and
// calling BoundedIterate directly.
func Pairs(m Finite) func(yield func(i, j int) bool) {
	low0, high0, low1, high1 := m.Bounds()
	csalog.Window(low0, high0, low1, high1)
	started := m.BeginIteration(State{})
	sf, ok := started.(Finite)
	if !ok {
		sf = m
	}
	return sf.BoundedIterate(low0, high0, low1, high1)
}

// collect drains a windowed pass into a sorted Pair slice, the shape
// every binary mask algorithm in this package merges over.
func collect(m Mask, low0, high0, low1, high1 int) []Pair {
	var res []Pair
	for i, j := range m.BoundedIterate(low0, high0, low1, high1) {
		res = append(res, Pair{i, j})
	}
	return res
}

func boundsIntersect(a, b Finite) (low0, high0, low1, high1 int) {
	al0, ah0, al1, ah1 := a.Bounds()
	bl0, bh0, bl1, bh1 := b.Bounds()
	return max(al0, bl0), min(ah0, bh0), max(al1, bl1), min(ah1, bh1)
}

func boundsUnion(a, b Finite) (low0, high0, low1, high1 int) {
	al0, ah0, al1, ah1 := a.Bounds()
	bl0, bh0, bl1, bh1 := b.Bounds()
	return min(al0, bl0), max(ah0, bh0), min(al1, bl1), max(ah1, bh1)
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

func requireFinite(m Mask, op string) (Finite, error) {
	f, ok := m.(Finite)
	if !ok {
		return nil, csaerr.E(csaerr.WrongOperandClass, op+" requires a finite mask")
	}
	return f, nil
}

// sortPairs sorts s in place in Less order.
func sortPairs(s []Pair) {
	sort.Slice(s, func(i, j int) bool { return Less(s[i], s[j]) })
}
