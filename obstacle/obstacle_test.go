package obstacle_test

import (
	"testing"

	"avoidance-planner/geometry"
	"avoidance-planner/obstacle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(cx, cy, half, margin float64) *obstacle.Polygon {
	p, _ := obstacle.NewPolygon([]geometry.Coords{
		{cx - half, cy - half},
		{cx + half, cy - half},
		{cx + half, cy + half},
		{cx - half, cy + half},
	}, margin)
	return p
}

func TestNewPolygonRejectsDegenerate(t *testing.T) {
	_, err := obstacle.NewPolygon([]geometry.Coords{{0, 0}, {1, 1}}, 0)
	require.Error(t, err)
}

func TestPolygonCentroidAndContains(t *testing.T) {
	p := square(100, 100, 50, 0)
	assert.InDelta(t, 100.0, p.Center().X(), 1e-6)
	assert.InDelta(t, 100.0, p.Center().Y(), 1e-6)
	assert.True(t, p.Contains(geometry.Coords{100, 100}))
	assert.False(t, p.Contains(geometry.Coords{150, 100})) // boundary
	assert.False(t, p.Contains(geometry.Coords{200, 100})) // outside
}

func TestPolygonBoundingBoxLiesOutside(t *testing.T) {
	p := square(0, 0, 100, 0.2)
	for _, v := range p.BoundingBox() {
		assert.False(t, p.Contains(v))
	}
}

func TestRectangleRadiusMatchesDiagonal(t *testing.T) {
	rect, err := obstacle.NewRectangle(geometry.Pose{Coords: geometry.Coords{1500, 1000}}, 400, 400, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 282.842712, rect.Radius(), 1e-2*rect.Radius())
}

func TestRectangleInflatedCorners(t *testing.T) {
	rect, err := obstacle.NewRectangle(geometry.Pose{Coords: geometry.Coords{1500, 1000}}, 400, 400, 0.2)
	require.NoError(t, err)
	foundY := map[int]bool{}
	for _, v := range rect.BoundingBox() {
		foundY[int(v.Y()+0.5)] = true
	}
	assert.True(t, foundY[760] || foundY[759] || foundY[761])
	assert.True(t, foundY[1240] || foundY[1239] || foundY[1241])
}

func TestCircleContainsAndCrosses(t *testing.T) {
	c := obstacle.NewCircle(geometry.Pose{Coords: geometry.Coords{1500, 1000}}, 300, 0.2, 8)
	assert.True(t, c.Contains(geometry.Coords{1500, 1000}))
	assert.False(t, c.Contains(geometry.Coords{2000, 1000}))
	assert.True(t, c.CrossesSegment(geometry.Coords{100, 1000}, geometry.Coords{2900, 1000}))
	assert.False(t, c.CrossesSegment(geometry.Coords{100, 1900}, geometry.Coords{2900, 1900}))
}

func TestCircleNearestBoundaryPoint(t *testing.T) {
	c := obstacle.NewCircle(geometry.Pose{Coords: geometry.Coords{0, 0}}, 100, 0, 8)
	p := c.NearestBoundaryPoint(geometry.Coords{50, 0})
	assert.InDelta(t, 100.0, geometry.Distance(geometry.Coords{0, 0}, p), 1e-6)
}

func TestPolygonCrossesSegmentThroughInterior(t *testing.T) {
	p := square(1500, 1000, 200, 0)
	assert.True(t, p.CrossesSegment(geometry.Coords{1000, 1000}, geometry.Coords{2000, 1000}))
	assert.False(t, p.CrossesSegment(geometry.Coords{0, 0}, geometry.Coords{0, 2000}))
}

func TestEnabledIsSoftDelete(t *testing.T) {
	p := square(0, 0, 10, 0)
	p.SetEnabled(false)
	assert.False(t, p.Enabled())
}

func TestLoadRingsFromGeoJSON(t *testing.T) {
	// The first polygon has an extra vertex (100.01, 50) sitting almost
	// exactly on the edge between (100, 0) and (100, 100).
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"properties": {},
				"geometry": {
					"type": "Polygon",
					"coordinates": [[[0, 0], [100, 0], [100.01, 50], [100, 100], [0, 100], [0, 0]]]
				}
			},
			{
				"type": "Feature",
				"properties": {},
				"geometry": {
					"type": "MultiPolygon",
					"coordinates": [[[[200, 200], [300, 200], [300, 300], [200, 300], [200, 200]]]]
				}
			}
		]
	}`)

	rings, err := obstacle.LoadRingsFromGeoJSON(data, 0)
	require.NoError(t, err)
	require.Len(t, rings, 2)
	assert.Len(t, rings[0], 5, "GeoJSON's repeated closing vertex should be dropped, the rest kept")
	assert.Len(t, rings[1], 4)

	simplified, err := obstacle.LoadRingsFromGeoJSON(data, 1.0)
	require.NoError(t, err)
	require.Len(t, simplified, 2)
	assert.Len(t, simplified[0], 4, "nearly-collinear vertex should be simplified away")
	assert.Len(t, simplified[1], 4, "a plain rectangle has no redundant vertex to drop")

	poly, err := obstacle.NewPolygon(simplified[0], obstacle.DefaultMargin)
	require.NoError(t, err)
	assert.True(t, poly.Contains(geometry.Coords{50, 50}))
}
