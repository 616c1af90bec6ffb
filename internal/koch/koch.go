// Package koch generates Koch-curve fractal polylines.
//
// A curve of order n is built by recursively replacing every segment
// with four segments of a third of its length, turning +60° after the
// first third and −60° after the second. The generators here are pure
// functions: no shared state, deterministic output, safe to call from
// any number of goroutines.
package koch

import (
	"math"

	"github.com/pamelaitzel/copo-koch/internal/geom"
)

// MaxOrder is the highest recursion order the generators accept. An
// order-n curve has 4^n+1 points, so this bounds both output size and
// recursion depth regardless of what callers pass in.
const MaxOrder = 10

// PointCount returns the number of points in a curve of the given
// order: 4^order + 1.
func PointCount(order int) int {
	return 1<<(2*uint(order)) + 1
}

// Curve returns the order-n Koch curve starting at start, spanning
// length units in the direction angleDeg (degrees, counterclockwise
// from the positive x axis).
//
// The result has exactly PointCount(order) points. Its first point is
// start and its last point is start.Advance(length, angleDeg); seam
// points shared by adjacent sub-curves appear exactly once.
func Curve(order int, length float64, start geom.Point, angleDeg float64) ([]geom.Point, error) {
	if err := checkArgs(order, length, angleDeg); err != nil {
		return nil, err
	}
	pts := make([]geom.Point, 1, PointCount(order))
	pts[0] = start
	return extend(pts, order, length, start, angleDeg), nil
}

// extend appends every point of the order-n curve except its start, so
// that concatenating legs never duplicates a seam point.
func extend(pts []geom.Point, order int, length float64, start geom.Point, angleDeg float64) []geom.Point {
	if order == 0 {
		return append(pts, start.Advance(length, angleDeg))
	}

	seg := length / 3.0
	a := start
	b := a.Advance(seg, angleDeg)
	c := b.Advance(seg, angleDeg+60)
	d := c.Advance(seg, angleDeg-60)

	pts = extend(pts, order-1, seg, a, angleDeg)
	pts = extend(pts, order-1, seg, b, angleDeg+60)
	pts = extend(pts, order-1, seg, c, angleDeg-60)
	pts = extend(pts, order-1, seg, d, angleDeg)
	return pts
}

// TwoSides returns two Koch curves forming a two-sided angle: the left
// side runs from (-length/2, 0) heading 0° and the right side from the
// origin heading 60°. The sides are independent polylines and are not
// merged.
func TwoSides(order int, length float64) (left, right []geom.Point, err error) {
	left, err = Curve(order, length, geom.Pt(-length/2.0, 0), 0)
	if err != nil {
		return nil, nil, err
	}
	right, err = Curve(order, length, geom.Pt(0, 0), 60)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// Snowflake returns the three Koch curves tracing the edges of an
// equilateral triangle of side length, in drawing order. The endpoint
// of each side coincides with the start of the next (mod 3) up to
// floating-point error, so the three sides form a closed boundary.
func Snowflake(order int, length float64) ([3][]geom.Point, error) {
	h := math.Sqrt(3) / 2.0 * length
	starts := [3]geom.Point{
		geom.Pt(-length/2.0, 0),
		geom.Pt(length/2.0, 0),
		geom.Pt(0, h),
	}
	angles := [3]float64{0, 120, -120}

	var sides [3][]geom.Point
	for i := range sides {
		side, err := Curve(order, length, starts[i], angles[i])
		if err != nil {
			return [3][]geom.Point{}, err
		}
		sides[i] = side
	}
	return sides, nil
}

func checkArgs(order int, length, angleDeg float64) error {
	switch {
	case order < 0:
		return ErrOrderNegative
	case order > MaxOrder:
		return ErrOrderTooHigh
	case length <= 0 || math.IsInf(length, 0) || math.IsNaN(length):
		return ErrLengthNotPositive
	case math.IsInf(angleDeg, 0) || math.IsNaN(angleDeg):
		return ErrAngleNotFinite
	}
	return nil
}
