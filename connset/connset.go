// Package connset implements connection sets: a mask paired with one
// value set per arity position, attaching a weight, delay, or other
// per-connection scalar to every connection the mask yields. A
// connection set is iterated the same way a mask is, windowed and
// lazy, with each connection additionally carrying its evaluated
// values.
package connset

import (
	"github.com/csa-go/csa/csaerr"
	"github.com/csa-go/csa/mask"
	"github.com/csa-go/csa/value"
)

// Conn is one connection together with its evaluated values, in
// arity order.
type Conn struct {
	I, J   int
	Values []float64
}

// CSet is a lazy, windowed connection set.
type CSet interface {
	// Mask returns the underlying connection mask.
	Mask() mask.Mask
	// Values returns the value set attached to each arity position.
	Values() []value.Set
	// BeginIteration resets any random state for a fresh pass, the
	// same way mask.Mask.BeginIteration does.
	BeginIteration(state mask.State) CSet
	// BoundedIterate yields every connection within the window.
	BoundedIterate(low0, high0, low1, high1 int) func(yield func(Conn) bool)
}

// Finite is a CSet whose mask is finite.
type Finite interface {
	CSet
	Bounds() (low0, high0, low1, high1 int)
}

// New wraps m with the given per-arity value sets.
func New(m mask.Mask, values ...value.Set) CSet {
	b := &baseCSet{m: m, values: values}
	if f, ok := m.(mask.Finite); ok {
		return &finiteCSet{baseCSet: *b, f: f}
	}
	return b
}

type baseCSet struct {
	m      mask.Mask
	values []value.Set
}

func (c *baseCSet) Mask() mask.Mask      { return c.m }
func (c *baseCSet) Values() []value.Set { return c.values }

func (c *baseCSet) BeginIteration(state mask.State) CSet {
	return &baseCSet{m: c.m.BeginIteration(state), values: c.values}
}

func (c *baseCSet) BoundedIterate(low0, high0, low1, high1 int) func(yield func(Conn) bool) {
	return func(yield func(Conn) bool) {
		for i, j := range c.m.BoundedIterate(low0, high0, low1, high1) {
			if !yield(evalConn(c.values, i, j)) {
				return
			}
		}
	}
}

type finiteCSet struct {
	baseCSet
	f mask.Finite
}

func (c *finiteCSet) BeginIteration(state mask.State) CSet {
	started := c.baseCSet.BeginIteration(state).(*baseCSet)
	f, _ := started.m.(mask.Finite)
	if f == nil {
		f = c.f
	}
	return &finiteCSet{baseCSet: *started, f: f}
}

func (c *finiteCSet) Bounds() (low0, high0, low1, high1 int) {
	return c.f.Bounds()
}

func evalConn(values []value.Set, i, j int) Conn {
	vals := make([]float64, len(values))
	for k, v := range values {
		vals[k] = v.Eval(i, j)
	}
	return Conn{I: i, J: j, Values: vals}
}

// Pairs iterates every connection of a Finite connection set over its
// own bounds, beginning a fresh pass first.
func Pairs(c Finite) func(yield func(Conn) bool) {
	low0, high0, low1, high1 := c.Bounds()
	started := c.BeginIteration(mask.State{})
	sf, ok := started.(Finite)
	if !ok {
		sf = c
	}
	return sf.BoundedIterate(low0, high0, low1, high1)
}

func collectConns(c CSet, low0, high0, low1, high1 int) []Conn {
	var res []Conn
	for conn := range c.BoundedIterate(low0, high0, low1, high1) {
		res = append(res, conn)
	}
	return res
}

// Intersect restricts c to the connections whose (i, j) also belongs
// to m, keeping c's own value sets (SubCSet in the source).
func Intersect(c CSet, m mask.Mask) CSet {
	return New(mask.Intersect(c.Mask(), m), c.Values()...)
}

// Difference removes from c any connection whose (i, j) also belongs
// to m, keeping c's own value sets.
func Difference(c CSet, m mask.Mask) CSet {
	return New(mask.Difference(c.Mask(), m), c.Values()...)
}

// MultisetSum concatenates a and b's connections (duplicates
// preserved), requiring matching arity. Each resulting connection
// keeps the value set of whichever operand it came from.
func MultisetSum(a, b CSet) (CSet, error) {
	if len(a.Values()) != len(b.Values()) {
		return nil, csaerr.E(csaerr.ArityMismatch, "binary operation on connection-sets with different arity")
	}
	combinedMask, err := mask.MultisetSum(a.Mask(), b.Mask())
	if err != nil {
		return nil, err
	}
	bm := &binaryCSet{a: a, b: b, mask: combinedMask, op: sumConns}
	if f, ok := combinedMask.(mask.Finite); ok {
		return &finiteBinaryCSet{binaryCSet: *bm, f: f}, nil
	}
	return bm, nil
}

// Intersection returns the connections present in both a and b,
// keeping a's values for each. Arities must match.
func Intersection(a, b CSet) (CSet, error) {
	if len(a.Values()) != len(b.Values()) {
		return nil, csaerr.E(csaerr.ArityMismatch, "binary operation on connection-sets with different arity")
	}
	combinedMask := mask.Intersect(a.Mask(), b.Mask())
	bm := &binaryCSet{a: a, b: b, mask: combinedMask, op: intersectConns}
	if f, ok := combinedMask.(mask.Finite); ok {
		return &finiteBinaryCSet{binaryCSet: *bm, f: f}, nil
	}
	return bm, nil
}

type binaryCSet struct {
	a, b CSet
	mask mask.Mask
	op   func(a, b []Conn) []Conn
}

func (c *binaryCSet) Mask() mask.Mask      { return c.mask }
func (c *binaryCSet) Values() []value.Set { return c.a.Values() }

func (c *binaryCSet) BeginIteration(state mask.State) CSet {
	return &binaryCSet{a: c.a.BeginIteration(state), b: c.b.BeginIteration(state), mask: c.mask.BeginIteration(state), op: c.op}
}

func (c *binaryCSet) BoundedIterate(low0, high0, low1, high1 int) func(yield func(Conn) bool) {
	merged := c.op(collectConns(c.a, low0, high0, low1, high1), collectConns(c.b, low0, high0, low1, high1))
	return func(yield func(Conn) bool) {
		for _, conn := range merged {
			if !yield(conn) {
				return
			}
		}
	}
}

type finiteBinaryCSet struct {
	binaryCSet
	f mask.Finite
}

func (c *finiteBinaryCSet) Bounds() (low0, high0, low1, high1 int) { return c.f.Bounds() }

func less(a, b Conn) bool {
	if a.J != b.J {
		return a.J < b.J
	}
	return a.I < b.I
}

func sumConns(a, b []Conn) []Conn {
	res := make([]Conn, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
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

func intersectConns(a, b []Conn) []Conn {
	var res []Conn
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(a[i], b[j]):
			i++
		case less(b[j], a[i]):
			j++
		default:
			res = append(res, a[i])
			i++
			j++
		}
	}
	return res
}
