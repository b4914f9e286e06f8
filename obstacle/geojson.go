package obstacle

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"avoidance-planner/geometry"
)

// LoadRingsFromGeoJSON extracts the outer ring of every Polygon/
// MultiPolygon feature in a GeoJSON FeatureCollection.
// simplifyEpsilon, if > 0, runs geometry.SimplifyRing on each ring before
// returning it, the way a traced obstacle boundary would need cleaning up
// before becoming an obstacle.Polygon.
func LoadRingsFromGeoJSON(data []byte, simplifyEpsilon float64) ([][]geometry.Coords, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing GeoJSON feature collection: %w", err)
	}

	var rings [][]geometry.Coords
	for _, feature := range fc.Features {
		for _, ring := range outerRings(feature.Geometry) {
			verts := make([]geometry.Coords, len(ring))
			copy(verts, ring)
			verts = dropClosingDuplicate(verts)
			if simplifyEpsilon > 0 {
				verts = geometry.SimplifyRing(verts, simplifyEpsilon)
			}
			rings = append(rings, verts)
		}
	}
	return rings, nil
}

// dropClosingDuplicate removes a GeoJSON ring's repeated closing vertex,
// since every consumer here (SimplifyRing, NewPolygon) treats a ring as
// an implicitly-closed sequence of distinct vertices.
func dropClosingDuplicate(verts []geometry.Coords) []geometry.Coords {
	if len(verts) < 2 {
		return verts
	}
	if geometry.Equal(verts[0], verts[len(verts)-1], geometry.DefaultEpsilon) {
		return verts[:len(verts)-1]
	}
	return verts
}

func outerRings(geom orb.Geometry) []orb.Ring {
	switch g := geom.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return nil
		}
		return []orb.Ring{g[0]}
	case orb.MultiPolygon:
		rings := make([]orb.Ring, 0, len(g))
		for _, poly := range g {
			if len(poly) > 0 {
				rings = append(rings, poly[0])
			}
		}
		return rings
	default:
		return nil
	}
}
