package obstacle

import (
	"math"

	"avoidance-planner/geometry"
)

// Rectangle is an axis-aligned-in-local-frame obstacle given by a center
// Pose (including rotation) and side lengths. It is stored as a Polygon of
// 4 vertices; its radius equals half the rectangle's diagonal, which is
// exactly the Polygon-derived max-vertex-distance-from-centroid radius.
type Rectangle struct {
	*Polygon
	Lx, Ly float64
}

// NewRectangle builds the 4 CCW vertices of a rectangle centered at
// center.Coords with orientation center.O (degrees) and side lengths
// (lx, ly), then derives a Polygon from them.
func NewRectangle(center geometry.Pose, lx, ly, margin float64) (*Rectangle, error) {
	theta := center.O * math.Pi / 180
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	hx, hy := lx/2, ly/2
	cx, cy := center.X(), center.Y()

	local := [4][2]float64{
		{-hx, -hy},
		{hx, -hy},
		{hx, hy},
		{-hx, hy},
	}
	vertices := make([]geometry.Coords, 4)
	for i, l := range local {
		vertices[i] = geometry.Coords{
			cx + l[0]*cosT - l[1]*sinT,
			cy + l[0]*sinT + l[1]*cosT,
		}
	}

	poly, err := NewPolygon(vertices, margin)
	if err != nil {
		return nil, err
	}
	return &Rectangle{Polygon: poly, Lx: lx, Ly: ly}, nil
}
