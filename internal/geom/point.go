// Package geom provides the plane geometry primitives used by the
// fractal generators.
package geom

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Points are plain values; every
// operation returns a fresh Point and never mutates its receiver.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Advance returns the point reached by moving dist units from p in the
// direction angleDeg, measured in degrees counterclockwise from the
// positive x axis.
func (p Point) Advance(dist, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180.0
	return Point{
		X: p.X + dist*math.Cos(rad),
		Y: p.Y + dist*math.Sin(rad),
	}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Near reports whether p and o coincide within tol in both coordinates.
func (p Point) Near(o Point, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol
}
