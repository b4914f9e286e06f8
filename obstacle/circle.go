package obstacle

import (
	"math"

	"avoidance-planner/geometry"
)

// Circle is a center + radius obstacle whose bounding box is approximated
// by N equally-spaced samples of the inflated circle.
type Circle struct {
	center  geometry.Pose
	radius  float64
	margin  float64
	samples int
	enabled bool
	bbox    BoundingBox
}

// NewCircle builds a Circle obstacle. samples <= 0 falls back to
// DefaultCircleSamples.
func NewCircle(center geometry.Pose, radius, margin float64, samples int) *Circle {
	if samples <= 0 {
		samples = DefaultCircleSamples
	}
	if margin < 0 {
		margin = 0
	}
	c := &Circle{
		center:  center,
		radius:  radius,
		margin:  margin,
		samples: samples,
		enabled: true,
	}
	c.bbox = circleRing(center.Coords, radius*(1+margin), samples)
	return c
}

// circleRing samples N equally-spaced points of a circle of the given
// radius around center, starting at angle 0 and going CCW.
func circleRing(center geometry.Coords, radius float64, n int) BoundingBox {
	ring := make(BoundingBox, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = geometry.Coords{
			center.X() + radius*math.Cos(theta),
			center.Y() + radius*math.Sin(theta),
		}
	}
	return ring
}

func (c *Circle) Center() geometry.Pose   { return c.center }
func (c *Circle) Radius() float64         { return c.radius }
func (c *Circle) Enabled() bool           { return c.enabled }
func (c *Circle) SetEnabled(e bool)       { c.enabled = e }
func (c *Circle) Margin() float64         { return c.margin }
func (c *Circle) BoundingBox() BoundingBox { return c.bbox }

// Contains reports whether p lies within (or on) the circle.
func (c *Circle) Contains(p geometry.Coords) bool {
	return geometry.Distance(c.center.Coords, p) <= c.radius
}

// CrossesSegment reports whether AB crosses the circle: either endpoint is
// inside, or the perpendicular distance from center to line AB is <=
// radius and the foot of that perpendicular lies within the segment.
func (c *Circle) CrossesSegment(a, b geometry.Coords) bool {
	if c.Contains(a) || c.Contains(b) {
		return true
	}

	ab := geometry.Coords{b.X() - a.X(), b.Y() - a.Y()}
	ac := geometry.Coords{c.center.X() - a.X(), c.center.Y() - a.Y()}
	bc := geometry.Coords{c.center.X() - b.X(), c.center.Y() - b.Y()}
	negAB := geometry.Coords{-ab.X(), -ab.Y()}

	abLen := math.Hypot(ab.X(), ab.Y())
	if abLen == 0 {
		return false
	}

	// Perpendicular distance from center to the infinite line AB.
	cross := ab.X()*ac.Y() - ab.Y()*ac.X()
	perpDist := math.Abs(cross) / abLen
	if perpDist > c.radius {
		return false
	}

	dotABAC := ab.X()*ac.X() + ab.Y()*ac.Y()
	dotNegABBC := negAB.X()*bc.X() + negAB.Y()*bc.Y()
	return dotABAC >= 0 && dotNegABBC >= 0
}

// NearestBoundaryPoint projects p onto the inflated circle.
func (c *Circle) NearestBoundaryPoint(p geometry.Coords) geometry.Coords {
	d := geometry.Distance(c.center.Coords, p)
	if d == 0 {
		// p coincides with the center: any direction works, pick +X.
		return geometry.Coords{c.center.X() + c.radius*(1+c.margin), c.center.Y()}
	}
	scale := c.radius * (1 + c.margin) / d
	return geometry.Coords{
		c.center.X() + (p.X()-c.center.X())*scale,
		c.center.Y() + (p.Y()-c.center.Y())*scale,
	}
}
