package graph

import (
	"avoidance-planner/geometry"
	"avoidance-planner/obstacle"
	"avoidance-planner/registry"
)

// SelectCandidates produces the candidate-vertex set for a plan request:
// start and finish seed indices 0 and 1, followed by every enabled
// obstacle's inflated bounding-box vertex that lies inside borders and
// inside no *other* enabled obstacle. Duplicates and epsilon-coincident
// points are kept; the shortest-path search collapses parallel edges to
// the same weight, so they are harmless.
func SelectCandidates(
	start, finish geometry.Coords,
	borders *obstacle.Polygon,
	obstacles []obstacle.Obstacle,
	index *registry.SpatialIndex,
) []geometry.Coords {
	candidates := []geometry.Coords{start, finish}

	for _, o := range obstacles {
		if !o.Enabled() {
			continue
		}
		if !borders.Contains(o.Center().Coords) {
			continue
		}

		for _, p := range o.BoundingBox() {
			if !borders.Contains(p) {
				continue
			}
			if containedByOther(p, o, obstacles, index) {
				continue
			}
			candidates = append(candidates, p)
		}
	}

	return candidates
}

// containedByOther reports whether p lies inside any enabled obstacle
// other than o. The spatial index narrows the search to obstacles whose
// bounding box actually covers p; when the index has nothing to offer
// (not built, or holding no obstacles) the full obstacle list is scanned
// instead, so the result never depends on the index being present.
func containedByOther(p geometry.Coords, o obstacle.Obstacle, obstacles []obstacle.Obstacle, index *registry.SpatialIndex) bool {
	candidates, ok := index.Query(p.X(), p.Y(), p.X(), p.Y())
	if !ok {
		candidates = obstacles
	}
	for _, other := range candidates {
		if other == o || !other.Enabled() {
			continue
		}
		if other.Contains(p) {
			return true
		}
	}
	return false
}
