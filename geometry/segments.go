package geometry

import "math"

// OnSegment reports whether p is collinear with the segment AB and lies
// within its bounding interval, both checks done within eps.
func OnSegment(p, a, b Coords, eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	ab := sub(b, a)
	ap := sub(p, a)
	length := math.Hypot(ab.X(), ab.Y())
	if length < eps {
		// Degenerate segment: p is "on" it only if it coincides with a.
		return Equal(p, a, eps)
	}
	// Collinearity: perpendicular distance from p to the infinite line AB.
	perp := math.Abs(cross(ab, ap)) / length
	if perp >= eps {
		return false
	}
	// Bounding-interval check via the projection parameter t in [0,1].
	t := dot(ab, ap) / (length * length)
	return t >= -eps/length && t <= 1+eps/length
}

// SegmentCrossesLine reports whether C and D lie strictly on opposite sides
// of the infinite line through A and B, i.e. the sign of
// (AB x AD) . (AB x AC) is negative. Degenerate (exactly collinear) touches
// are treated as non-crossing because the inequality is strict.
func SegmentCrossesLine(a, b, c, d Coords) bool {
	ab := sub(b, a)
	ac := sub(c, a)
	ad := sub(d, a)
	crossAC := cross(ab, ac)
	crossAD := cross(ab, ad)
	return crossAC*crossAD < 0
}

// SegmentCrossesSegment reports whether segment AB properly crosses segment
// CD: both directional tests (AB against CD, and CD against AB) must hold.
func SegmentCrossesSegment(a, b, c, d Coords) bool {
	return SegmentCrossesLine(a, b, c, d) && SegmentCrossesLine(c, d, a, b)
}
