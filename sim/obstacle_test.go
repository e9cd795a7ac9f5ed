package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickthruster/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObstacleSpawnCadence(t *testing.T) {
	f := NewObstacleField(ecs.NewWorld(), seededRand(1), 50, -20)

	for tick := 0; tick < 450; tick++ {
		before := f.Len()
		f.Tick(100, 2, 800)
		spawned := f.Len() - before
		if tick%100 == 0 {
			require.Equal(t, 1, spawned, "tick %d", tick)
		} else {
			require.Equal(t, 0, spawned, "tick %d", tick)
		}
	}
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 450, f.Ticks())
}

func TestObstacleFallsFromSpawnHeight(t *testing.T) {
	f := NewObstacleField(ecs.NewWorld(), fixedRand(), 50, -20)

	f.Tick(100, 2, 800)
	require.Equal(t, 1, f.Len())
	first := collect(f)[0]
	assert.Equal(t, cp.Vector{X: 50, Y: -18}, first.Pos)

	for i := 0; i < 9; i++ {
		f.Tick(100, 2, 800)
	}
	assert.Equal(t, 0.0, collect(f)[0].Pos.Y)
}

func TestObstacleSpawnRange(t *testing.T) {
	f := NewObstacleField(ecs.NewWorld(), seededRand(42), 50, -20)
	for i := 0; i < 1000; i++ {
		f.Tick(1, 0, 800)
	}
	require.Equal(t, 1000, f.Len())
	for o := range f.All() {
		require.GreaterOrEqual(t, o.Pos.X, 50.0)
		require.LessOrEqual(t, o.Pos.X, 750.0)
		require.Equal(t, -20.0, o.Pos.Y)
	}
}

func TestObstaclePrune(t *testing.T) {
	world := ecs.NewWorld()
	f := NewObstacleField(world, fixedRand(), 50, -20)
	for _, y := range []float64{10, 700, 659, 661} {
		f.add(cp.Vector{X: 100, Y: y})
	}

	removed := f.Prune(660)

	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, world.Len(), "pruned entities are destroyed")
	ys := make([]float64, 0, f.Len())
	for o := range f.All() {
		ys = append(ys, o.Pos.Y)
	}
	assert.ElementsMatch(t, []float64{10, 659}, ys)
}

func TestObstacleClear(t *testing.T) {
	world := ecs.NewWorld()
	f := NewObstacleField(world, fixedRand(), 50, -20)
	for i := 0; i < 250; i++ {
		f.Tick(100, 2, 800)
	}
	require.Equal(t, 3, f.Len())

	f.Clear()
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, 0, world.Len())
	assert.Equal(t, 0, f.Ticks())

	f.Tick(100, 2, 800)
	assert.Equal(t, 1, f.Len(), "cadence restarts at tick 0")
}

func TestObstacleAllStopsEarly(t *testing.T) {
	f := NewObstacleField(ecs.NewWorld(), fixedRand(), 50, -20)
	for i := 0; i < 5; i++ {
		f.Tick(1, 1, 800)
	}

	seen := 0
	for range f.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func collect(f *ObstacleField) []Obstacle {
	var out []Obstacle
	for o := range f.All() {
		out = append(out, o)
	}
	return out
}
