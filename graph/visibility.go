package graph

import (
	"avoidance-planner/geometry"
	"avoidance-planner/obstacle"
	"avoidance-planner/registry"
)

// Build constructs the weighted, symmetric visibility graph over the given
// candidate vertices: edge (i, j) exists iff no enabled obstacle's
// CrossesSegment(vertex_i, vertex_j) returns true. Edge weight is
// Euclidean distance. Complexity is O(V^2 * O); acceptable because V is
// O(tens) in the target application.
func Build(vertices []geometry.Coords, obstacles []obstacle.Obstacle, index *registry.SpatialIndex) *Graph {
	g := newGraph(vertices)

	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			a, b := vertices[i], vertices[j]
			if !blocked(a, b, obstacles, index) {
				g.addEdge(i, j, geometry.Distance(a, b))
			}
		}
	}

	return g
}

func blocked(a, b geometry.Coords, obstacles []obstacle.Obstacle, index *registry.SpatialIndex) bool {
	minX, maxX := a.X(), b.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y(), b.Y()
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	candidates, ok := index.Query(minX, minY, maxX, maxY)
	if !ok {
		candidates = obstacles
	}

	for _, o := range candidates {
		if !o.Enabled() {
			continue
		}
		if o.CrossesSegment(a, b) {
			return true
		}
	}
	return false
}
