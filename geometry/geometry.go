// Package geometry provides small helpers for placing indices in
// space and measuring distance between them, the input random masks
// built on a Metric (disc, rectangle, Gaussian) need. It deliberately
// stays small: the source's plotting and NineML export helpers have
// no analogue here, since this module's scope is the algebra, not
// visualization or network-description interchange.
package geometry

import (
	"math"

	"github.com/csa-go/csa/rng"
)

// Point2D is a point in the plane.
type Point2D struct{ X, Y float64 }

// Point3D is a point in space.
type Point3D struct{ X, Y, Z float64 }

// Geometry2D places an index at a point in the plane.
type Geometry2D func(i int) Point2D

// Geometry3D places an index at a point in space.
type Geometry3D func(i int) Point3D

// Metric measures the distance (or any other pairwise scalar) between
// two indices. mask.Disc and value.Gaussian consume a Metric;
// mask.Rectangle takes two Geometry2D placements instead.
type Metric func(i, j int) float64

// Grid2D lays out width*width indices (row-major, wrapping every
// width entries) on an xScale-by-yScale rectangle anchored at
// (x0, y0).
func Grid2D(width int, xScale, yScale, x0, y0 float64) Geometry2D {
	xs, ys := xScale/float64(width), yScale/float64(width)
	return func(i int) Point2D {
		return Point2D{
			X: x0 + xs*float64(i%width),
			Y: y0 + ys*float64(i/width),
		}
	}
}

// Random2D scatters n indices uniformly at random over an
// xScale-by-yScale rectangle, deterministically from seed.
func Random2D(n int, xScale, yScale float64, seed rng.Seed) Geometry2D {
	g := rng.New(seed)
	coords := make([]Point2D, n)
	for i := range coords {
		coords[i] = Point2D{X: xScale * g.Uniform01(), Y: yScale * g.Uniform01()}
	}
	return func(i int) Point2D { return coords[i] }
}

// EuclidDistance2D returns the straight-line distance between p1 and
// p2.
func EuclidDistance2D(p1, p2 Point2D) float64 {
	dx, dy := p1.X-p2.X, p1.Y-p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// EuclidMetric2D returns the Euclidean distance metric between
// indices placed by g1 and g2. If g2 is nil, g1 is used for both
// sides.
func EuclidMetric2D(g1, g2 Geometry2D) Metric {
	if g2 == nil {
		g2 = g1
	}
	return func(i, j int) float64 { return EuclidDistance2D(g1(i), g2(j)) }
}

// EuclidToroidDistance2D returns the distance between p1 and p2 on a
// torus of circumference xScale (in X) and yScale (in Y): the short
// way around, in each dimension independently.
func EuclidToroidDistance2D(p1, p2 Point2D, xScale, yScale float64) float64 {
	dx, dy := math.Abs(p1.X-p2.X), math.Abs(p1.Y-p2.Y)
	if dx >= xScale/2 {
		dx = xScale - dx
	}
	if dy >= yScale/2 {
		dy = yScale - dy
	}
	return math.Sqrt(dx*dx + dy*dy)
}

// EuclidToroidMetric2D is the toroidal counterpart of EuclidMetric2D.
func EuclidToroidMetric2D(g1, g2 Geometry2D, xScale, yScale float64) Metric {
	if g2 == nil {
		g2 = g1
	}
	return func(i, j int) float64 { return EuclidToroidDistance2D(g1(i), g2(j), xScale, yScale) }
}

// Grid3D is the three-dimensional counterpart of Grid2D.
func Grid3D(width int, xScale, yScale, zScale, x0, y0, z0 float64) Geometry3D {
	xs, ys, zs := xScale/float64(width), yScale/float64(width), zScale/float64(width)
	return func(i int) Point3D {
		return Point3D{
			X: x0 + xs*float64(i%width),
			Y: y0 + ys*float64((i%(width*width))/width),
			Z: z0 + zs*float64(i/(width*width)),
		}
	}
}

// Random3D is the three-dimensional counterpart of Random2D.
func Random3D(n int, xScale, yScale, zScale float64, seed rng.Seed) Geometry3D {
	g := rng.New(seed)
	coords := make([]Point3D, n)
	for i := range coords {
		coords[i] = Point3D{
			X: xScale * g.Uniform01(),
			Y: yScale * g.Uniform01(),
			Z: zScale * g.Uniform01(),
		}
	}
	return func(i int) Point3D { return coords[i] }
}

// EuclidDistance3D returns the straight-line distance between p1 and
// p2.
func EuclidDistance3D(p1, p2 Point3D) float64 {
	dx, dy, dz := p1.X-p2.X, p1.Y-p2.Y, p1.Z-p2.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// EuclidMetric3D is the three-dimensional counterpart of
// EuclidMetric2D.
func EuclidMetric3D(g1, g2 Geometry3D) Metric {
	if g2 == nil {
		g2 = g1
	}
	return func(i, j int) float64 { return EuclidDistance3D(g1(i), g2(j)) }
}
