// Package value implements value sets: lazy scalar functions over
// connection pairs (i,j) used to attach weights, delays, or other
// per-connection numbers to a connection set. A value set is always
// one of three variants — a constant (Quoted), an arbitrary closure
// (Generic), or an affine combination of a constant and a closure
// (Affine) — combined under addition, multiplication, and negation
// with automatic canonicalization to the simplest variant.
package value

// Set evaluates to a scalar for a given connection pair.
type Set interface {
	Eval(i, j int) float64
}

// Quoted is a value set that is the same constant for every pair.
type Quoted float64

func (q Quoted) Eval(i, j int) float64 { return float64(q) }

// Const wraps a plain scalar as a value set.
func Const(c float64) Set { return Quoted(c) }

// Generic is a value set defined by an arbitrary function of the
// pair.
type Generic func(i, j int) float64

func (g Generic) Eval(i, j int) float64 { return g(i, j) }

// Affine is a value set of the form Const + Coeff*Base(i,j).
type Affine struct {
	Const, Coeff float64
	Base         Set
}

func (a Affine) Eval(i, j int) float64 { return a.Const + a.Coeff*a.Base.Eval(i, j) }

// maybeAffine canonicalizes a constant/coefficient/base triple to the
// simplest variant that represents it: a zero coefficient collapses
// to a constant, and an identity affine transform (0 + 1*base)
// collapses to the base itself.
func maybeAffine(constant, coeff float64, base Set) Set {
	switch {
	case coeff == 0:
		return Quoted(constant)
	case constant == 0 && coeff == 1:
		return base
	default:
		return Affine{Const: constant, Coeff: coeff, Base: base}
	}
}

// Neg returns -v.
func Neg(v Set) Set {
	switch x := v.(type) {
	case Quoted:
		return Quoted(-x)
	case Affine:
		return maybeAffine(-x.Const, -x.Coeff, x.Base)
	default:
		return Generic(func(i, j int) float64 { return -v.Eval(i, j) })
	}
}

// Add returns a+b, canonicalizing the result the way maybeAffine
// does for raw constructions.
func Add(a, b Set) Set {
	switch x := a.(type) {
	case Quoted:
		switch y := b.(type) {
		case Quoted:
			return Quoted(x + y)
		case Affine:
			return Add(b, a)
		default:
			return maybeAffine(float64(x), 1.0, b)
		}
	case Generic:
		switch b.(type) {
		case Quoted, Affine:
			return Add(b, a)
		case Generic:
			y := b.(Generic)
			return Generic(func(i, j int) float64 { return x(i, j) + y(i, j) })
		default:
			return Generic(func(i, j int) float64 { return x(i, j) + b.Eval(i, j) })
		}
	case Affine:
		switch y := b.(type) {
		case Quoted:
			return maybeAffine(x.Const+float64(y), x.Coeff, x.Base)
		case Affine:
			f := Generic(func(i, j int) float64 {
				return x.Coeff*x.Base.Eval(i, j) + y.Coeff*y.Base.Eval(i, j)
			})
			return maybeAffine(x.Const+y.Const, 1.0, f)
		default:
			// The source leaves Affine+Generic undefined (its
			// __add__ only special-cases Quoted and Affine
			// operands). Fall back to a plain sum, the same
			// canonicalization every other variant pair uses.
			return Generic(func(i, j int) float64 { return x.Eval(i, j) + b.Eval(i, j) })
		}
	default:
		switch b.(type) {
		case Quoted, Affine:
			return Add(b, a)
		default:
			return Generic(func(i, j int) float64 { return a.Eval(i, j) + b.Eval(i, j) })
		}
	}
}

// Sub returns a-b.
func Sub(a, b Set) Set {
	return Add(a, Neg(b))
}

// Mul returns a*b.
func Mul(a, b Set) Set {
	switch x := a.(type) {
	case Quoted:
		switch y := b.(type) {
		case Quoted:
			return Quoted(x * y)
		case Affine:
			return Mul(b, a)
		default:
			return maybeAffine(0.0, float64(x), b)
		}
	case Generic:
		switch b.(type) {
		case Quoted, Affine:
			return Mul(b, a)
		case Generic:
			y := b.(Generic)
			return Generic(func(i, j int) float64 { return x(i, j) * y(i, j) })
		default:
			return Generic(func(i, j int) float64 { return x(i, j) * b.Eval(i, j) })
		}
	case Affine:
		switch y := b.(type) {
		case Quoted:
			return maybeAffine(x.Const*float64(y), x.Coeff*float64(y), x.Base)
		case Affine:
			f := Generic(func(i, j int) float64 {
				return y.Const*x.Coeff*x.Base.Eval(i, j) +
					x.Const*y.Coeff*y.Base.Eval(i, j) +
					x.Coeff*y.Coeff*x.Base.Eval(i, j)*y.Base.Eval(i, j)
			})
			return maybeAffine(x.Const*y.Const, 1.0, f)
		default:
			return Generic(func(i, j int) float64 { return x.Eval(i, j) * b.Eval(i, j) })
		}
	default:
		switch b.(type) {
		case Quoted, Affine:
			return Mul(b, a)
		default:
			return Generic(func(i, j int) float64 { return a.Eval(i, j) * b.Eval(i, j) })
		}
	}
}
