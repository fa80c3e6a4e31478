package geometry_test

import (
	"math"
	"testing"

	"github.com/csa-go/csa/geometry"
	"github.com/stretchr/testify/assert"
)

func TestGrid2DPlacesIndicesOnALattice(t *testing.T) {
	g := geometry.Grid2D(4, 1.0, 1.0, 0, 0)
	p0 := g(0)
	p1 := g(1)
	p4 := g(4)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0}, p0)
	assert.InDelta(t, 0.25, p1.X, 1e-9)
	assert.InDelta(t, 0.0, p1.Y, 1e-9)
	assert.InDelta(t, 0.25, p4.Y, 1e-9)
}

func TestEuclidMetric2DDefaultsSecondGeometry(t *testing.T) {
	g := geometry.Grid2D(4, 1.0, 1.0, 0, 0)
	m := geometry.EuclidMetric2D(g, nil)
	assert.Equal(t, 0.0, m(2, 2))
	assert.True(t, m(0, 1) > 0)
}

func TestEuclidToroidDistanceWraps(t *testing.T) {
	d := geometry.EuclidToroidDistance2D(
		geometry.Point2D{X: 0.05, Y: 0}, geometry.Point2D{X: 0.95, Y: 0}, 1.0, 1.0)
	assert.InDelta(t, 0.1, d, 1e-9)
}

func TestRandom2DIsDeterministic(t *testing.T) {
	a := geometry.Random2D(10, 1, 1, 5)
	b := geometry.Random2D(10, 1, 1, 5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a(i), b(i))
	}
}

func TestEuclidDistance3D(t *testing.T) {
	d := geometry.EuclidDistance3D(geometry.Point3D{}, geometry.Point3D{X: 3, Y: 4, Z: 0})
	assert.InDelta(t, 5.0, d, 1e-9)
	assert.False(t, math.IsNaN(d))
}
