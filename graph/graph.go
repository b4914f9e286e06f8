// Package graph builds the visibility graph over candidate waypoints and
// searches it for the shortest collision-free path.
package graph

import "avoidance-planner/geometry"

// Graph is a weighted, symmetric adjacency structure over candidate
// vertices. Vertex 0 is always the start, vertex 1 is always the finish.
type Graph struct {
	Vertices []geometry.Coords
	Edges    map[int]map[int]float64
}

func newGraph(vertices []geometry.Coords) *Graph {
	edges := make(map[int]map[int]float64, len(vertices))
	for i := range vertices {
		edges[i] = make(map[int]float64)
	}
	return &Graph{Vertices: vertices, Edges: edges}
}

func (g *Graph) addEdge(i, j int, weight float64) {
	g.Edges[i][j] = weight
	g.Edges[j][i] = weight
}
