package tristrip

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
// Useful for determining triangle orientation.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// StripPoint returns the k-th vertex of a strip buffer as a Point.
// The buffer layout is the one written by [Circle] and [CircleFolded]:
// vertex k occupies pts[2k] and pts[2k+1].
func StripPoint[F Float](pts []F, k int) Point {
	return Point{X: float64(pts[2*k]), Y: float64(pts[2*k+1])}
}
