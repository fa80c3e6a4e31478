package value_test

import (
	"testing"

	"github.com/csa-go/csa/value"
	"github.com/stretchr/testify/assert"
)

func TestQuotedEval(t *testing.T) {
	q := value.Quoted(3.5)
	assert.Equal(t, 3.5, q.Eval(1, 2))
}

func TestAddQuotedQuoted(t *testing.T) {
	r := value.Add(value.Quoted(2), value.Quoted(3))
	assert.Equal(t, value.Quoted(5), r)
}

func TestAddCanonicalizesIdentity(t *testing.T) {
	g := value.Generic(func(i, j int) float64 { return float64(i + j) })
	r := value.Add(value.Quoted(0), g)
	assert.Equal(t, g.Eval(2, 3), r.Eval(2, 3))
}

func TestMulQuotedGenericProducesAffine(t *testing.T) {
	g := value.Generic(func(i, j int) float64 { return float64(i + j) })
	r := value.Mul(value.Quoted(2), g)
	aff, ok := r.(value.Affine)
	if assert.True(t, ok) {
		assert.Equal(t, 0.0, aff.Const)
		assert.Equal(t, 2.0, aff.Coeff)
	}
	assert.Equal(t, 10.0, r.Eval(2, 3))
}

func TestNegAffine(t *testing.T) {
	g := value.Generic(func(i, j int) float64 { return 1.0 })
	aff := value.Affine{Const: 1, Coeff: 2, Base: g}
	neg := value.Neg(aff)
	assert.Equal(t, -3.0, neg.Eval(0, 0))
}

func TestSubUsesNegAndAdd(t *testing.T) {
	r := value.Sub(value.Quoted(5), value.Quoted(2))
	assert.Equal(t, value.Quoted(3), r)
}

func TestAffinePlusAffineCombinesConsts(t *testing.T) {
	base := value.Generic(func(i, j int) float64 { return 1.0 })
	a := value.Affine{Const: 1, Coeff: 2, Base: base}
	b := value.Affine{Const: 3, Coeff: 4, Base: base}
	r := value.Add(a, b)
	aff, ok := r.(value.Affine)
	if assert.True(t, ok) {
		assert.Equal(t, 4.0, aff.Const)
	}
}
