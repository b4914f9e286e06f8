package obstacle

import (
	"fmt"

	"avoidance-planner/errs"
	"avoidance-planner/geometry"
)

// Polygon is an explicit CCW vertex ring (right-handed, y-up). Center and
// radius are derived from the vertices rather than supplied by the caller.
type Polygon struct {
	vertices []geometry.Coords
	center   geometry.Pose
	radius   float64
	margin   float64
	enabled  bool
	bbox     BoundingBox
}

// NewPolygon builds a Polygon from a CCW vertex ring of at least 3
// vertices, deriving its centroid (signed-area weighted), radius (max
// vertex distance from centroid), and inflated bounding box.
func NewPolygon(vertices []geometry.Coords, margin float64) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, errs.New(errs.DegeneratePolygon,
			fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(vertices)))
	}
	if margin < 0 {
		margin = 0
	}

	verts := make([]geometry.Coords, len(vertices))
	copy(verts, vertices)

	center := centroid(verts)
	radius := 0.0
	for _, v := range verts {
		if d := geometry.Distance(center, v); d > radius {
			radius = d
		}
	}

	p := &Polygon{
		vertices: verts,
		center:   geometry.Pose{Coords: center},
		radius:   radius,
		margin:   margin,
		enabled:  true,
	}
	p.bbox = inflateFromCenter(verts, center, margin)
	return p, nil
}

// centroid computes the signed-area weighted centroid of a CCW ring.
// Cx and Cy are accumulated independently so neither overwrites the other
// (a bug present in one variant of the original source, which set the
// center's X component twice instead of setting X then Y).
func centroid(vertices []geometry.Coords) geometry.Coords {
	n := len(vertices)
	var area, cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := vertices[i].X(), vertices[i].Y()
		xj, yj := vertices[j].X(), vertices[j].Y()
		cross := xi*yj - xj*yi
		area += cross
		cx += (xi + xj) * cross
		cy += (yi + yj) * cross
	}
	area *= 0.5
	if area == 0 {
		// Degenerate (zero-area) ring: fall back to the vertex average.
		var sx, sy float64
		for _, v := range vertices {
			sx += v.X()
			sy += v.Y()
		}
		return geometry.Coords{sx / float64(n), sy / float64(n)}
	}
	cx /= 6 * area
	cy /= 6 * area
	return geometry.Coords{cx, cy}
}

// inflateFromCenter moves each vertex outward from center by (1+margin).
func inflateFromCenter(vertices []geometry.Coords, center geometry.Coords, margin float64) BoundingBox {
	ring := make(BoundingBox, len(vertices))
	scale := 1 + margin
	for i, v := range vertices {
		ring[i] = geometry.Coords{
			center.X() + (v.X()-center.X())*scale,
			center.Y() + (v.Y()-center.Y())*scale,
		}
	}
	return ring
}

func (p *Polygon) Center() geometry.Pose { return p.center }
func (p *Polygon) Radius() float64       { return p.radius }
func (p *Polygon) Enabled() bool         { return p.enabled }
func (p *Polygon) SetEnabled(e bool)     { p.enabled = e }
func (p *Polygon) Margin() float64       { return p.margin }
func (p *Polygon) BoundingBox() BoundingBox {
	return p.bbox
}

// Vertices returns the polygon's own (non-inflated) vertex ring.
func (p *Polygon) Vertices() []geometry.Coords {
	return p.vertices
}

// Contains reports whether p is strictly inside the polygon: every edge's
// cross product with (point - edge-start) must be strictly positive.
// Boundary points and vertices count as outside.
func (poly *Polygon) Contains(p geometry.Coords) bool {
	n := len(poly.vertices)
	for i := 0; i < n; i++ {
		v0 := poly.vertices[i]
		v1 := poly.vertices[(i+1)%n]
		edge := geometry.Coords{v1.X() - v0.X(), v1.Y() - v0.Y()}
		rel := geometry.Coords{p.X() - v0.X(), p.Y() - v0.Y()}
		cross := edge.X()*rel.Y() - edge.Y()*rel.X()
		if cross <= 0 {
			return false
		}
	}
	return true
}

// CrossesSegment reports whether AB crosses the polygon boundary: an edge
// crosses AB as a segment, or A and B coincide with two non-adjacent
// polygon vertices, or some polygon vertex other than A or B lies on AB.
// A segment that merely starts or ends at a polygon vertex is therefore
// not blocked by that vertex alone.
func (poly *Polygon) CrossesSegment(a, b geometry.Coords) bool {
	n := len(poly.vertices)

	for i := 0; i < n; i++ {
		v0 := poly.vertices[i]
		v1 := poly.vertices[(i+1)%n]
		if geometry.SegmentCrossesSegment(v0, v1, a, b) {
			return true
		}
	}

	idxA, idxB := -1, -1
	for i, v := range poly.vertices {
		if geometry.Equal(v, a, geometry.DefaultEpsilon) {
			idxA = i
		}
		if geometry.Equal(v, b, geometry.DefaultEpsilon) {
			idxB = i
		}
	}
	if idxA != -1 && idxB != -1 {
		adjacent := idxA == idxB ||
			(idxA+1)%n == idxB ||
			(idxB+1)%n == idxA
		if !adjacent {
			return true
		}
	}

	for i, v := range poly.vertices {
		if i == idxA || i == idxB {
			continue
		}
		if geometry.OnSegment(v, a, b, geometry.DefaultEpsilon) {
			return true
		}
	}

	return false
}

// NearestBoundaryPoint returns the polygon vertex closest to p. This is an
// approximation, acceptable because it is only used to snap a start pose
// that lies inside the obstacle.
func (poly *Polygon) NearestBoundaryPoint(p geometry.Coords) geometry.Coords {
	best := poly.vertices[0]
	bestDist := geometry.Distance(p, best)
	for _, v := range poly.vertices[1:] {
		if d := geometry.Distance(p, v); d < bestDist {
			bestDist = d
			best = v
		}
	}
	return best
}
