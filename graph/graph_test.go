package graph_test

import (
	"testing"

	"avoidance-planner/geometry"
	"avoidance-planner/graph"
	"avoidance-planner/obstacle"
	"avoidance-planner/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphIsSymmetric(t *testing.T) {
	vertices := []geometry.Coords{{0, 0}, {100, 100}, {50, 0}}
	index := registry.NewSpatialIndex(nil)
	g := graph.Build(vertices, nil, index)

	for i, neighbors := range g.Edges {
		for j, w := range neighbors {
			assert.InDelta(t, w, g.Edges[j][i], 1e-9)
		}
	}
}

func TestShortestPathExcludesStartIncludesFinish(t *testing.T) {
	vertices := []geometry.Coords{{0, 0}, {10, 0}, {5, 0}}
	index := registry.NewSpatialIndex(nil)
	g := graph.Build(vertices, nil, index)

	path, err := graph.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, 1, path[len(path)-1])
	for _, idx := range path {
		assert.NotEqual(t, 0, idx)
	}
}

func TestShortestPathStartIsolated(t *testing.T) {
	vertices := []geometry.Coords{{0, 0}, {10, 0}}
	g := &graph.Graph{Vertices: vertices, Edges: map[int]map[int]float64{0: {}, 1: {}}}
	_, err := graph.ShortestPath(g, 0, 1)
	require.Error(t, err)
}

func TestShortestPathNoPath(t *testing.T) {
	vertices := []geometry.Coords{{0, 0}, {10, 0}, {20, 0}}
	g := &graph.Graph{Vertices: vertices, Edges: map[int]map[int]float64{
		0: {2: 20},
		2: {0: 20},
		1: {},
	}}
	_, err := graph.ShortestPath(g, 0, 1)
	require.Error(t, err)
}

func TestSelectCandidatesLieOutsideObstacle(t *testing.T) {
	borders, err := obstacle.NewPolygon([]geometry.Coords{
		{0, 0}, {3000, 0}, {3000, 2000}, {0, 2000},
	}, 0)
	require.NoError(t, err)

	rect, err := obstacle.NewRectangle(geometry.Pose{Coords: geometry.Coords{1500, 1000}}, 400, 400, 0.2)
	require.NoError(t, err)

	obstacles := []obstacle.Obstacle{rect}
	index := registry.NewSpatialIndex(obstacles)
	candidates := graph.SelectCandidates(
		geometry.Coords{100, 1000}, geometry.Coords{2900, 1000},
		borders, obstacles, index,
	)

	// Every candidate must lie outside the rectangle's own footprint.
	for _, c := range candidates {
		assert.False(t, rect.Contains(c))
	}
	assert.GreaterOrEqual(t, len(candidates), 2)
}
