// Package obstacle implements the capability set and concrete variants
// (Polygon, Rectangle, Circle) the planner uses to reason about the
// playing field: containment, segment-crossing, nearest-boundary-point,
// and inflated bounding boxes.
package obstacle

import (
	"github.com/paulmach/orb"

	"avoidance-planner/geometry"
)

// DefaultMargin is the default bounding-box inflation margin (+20%).
const DefaultMargin = 0.2

// DefaultCircleSamples is the default vertex count used to approximate a
// circle's inflated bounding box.
const DefaultCircleSamples = 8

// BoundingBox is the ordered ring of Coords produced by inflating an
// obstacle's shape outward from its center, CCW, same winding as Polygon.
type BoundingBox = orb.Ring

// Obstacle is the capability set every concrete variant exposes. The
// planner only ever calls these methods; the concrete variant is erased.
type Obstacle interface {
	Center() geometry.Pose
	Radius() float64
	Enabled() bool
	SetEnabled(bool)
	Margin() float64
	Contains(p geometry.Coords) bool
	CrossesSegment(a, b geometry.Coords) bool
	NearestBoundaryPoint(p geometry.Coords) geometry.Coords
	BoundingBox() BoundingBox
}
