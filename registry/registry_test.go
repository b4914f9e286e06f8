package registry_test

import (
	"sync"
	"testing"

	"avoidance-planner/geometry"
	"avoidance-planner/obstacle"
	"avoidance-planner/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func borders(t *testing.T) *obstacle.Polygon {
	t.Helper()
	p, err := obstacle.NewPolygon([]geometry.Coords{
		{0, 0}, {3000, 0}, {3000, 2000}, {0, 2000},
	}, 0)
	require.NoError(t, err)
	return p
}

func TestDynamicAddRemoveClear(t *testing.T) {
	reg := registry.New(borders(t))
	c := obstacle.NewCircle(geometry.Pose{Coords: geometry.Coords{100, 100}}, 10, 0, 8)

	reg.AddDynamic(c)
	assert.Len(t, reg.DynamicSnapshot(), 1)

	assert.True(t, reg.RemoveDynamic(c))
	assert.Len(t, reg.DynamicSnapshot(), 0)

	reg.AddDynamic(c)
	reg.ClearDynamic()
	assert.Len(t, reg.DynamicSnapshot(), 0)
}

func TestSnapshotChainsFixedAndDynamic(t *testing.T) {
	reg := registry.New(borders(t))
	fixed := obstacle.NewCircle(geometry.Pose{Coords: geometry.Coords{10, 10}}, 5, 0, 8)
	dyn := obstacle.NewCircle(geometry.Pose{Coords: geometry.Coords{20, 20}}, 5, 0, 8)
	reg.AddFixed(fixed)
	reg.AddDynamic(dyn)

	snap := reg.Snapshot()
	assert.Len(t, snap, 2)
}

func TestConcurrentDynamicMutationIsSafe(t *testing.T) {
	reg := registry.New(borders(t))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := obstacle.NewCircle(geometry.Pose{Coords: geometry.Coords{float64(i), 0}}, 5, 0, 8)
			reg.AddDynamic(c)
			_ = reg.Snapshot()
			reg.RemoveDynamic(c)
		}(i)
	}
	wg.Wait()
	assert.Len(t, reg.DynamicSnapshot(), 0)
}

func TestSpatialIndexQueryFindsObstacle(t *testing.T) {
	c := obstacle.NewCircle(geometry.Pose{Coords: geometry.Coords{1500, 1000}}, 300, 0.2, 8)
	idx := registry.NewSpatialIndex([]obstacle.Obstacle{c})

	hits, ok := idx.Query(1400, 900, 1600, 1100)
	require.True(t, ok)
	assert.Len(t, hits, 1)

	hits, ok = idx.Query(0, 0, 10, 10)
	require.True(t, ok)
	assert.Len(t, hits, 0)
}
