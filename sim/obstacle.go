package sim

import (
	"iter"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickthruster/ecs"
)

// Obstacle is a falling circle. Its radius is fixed by the session config.
type Obstacle struct {
	Pos cp.Vector
}

// ObstacleComponent keys obstacle storage in the session world.
var ObstacleComponent = ecs.NewComponentKind[Obstacle]()

// ObstacleField spawns obstacles on a fixed cadence and moves them down.
// Each obstacle is an entity in the world the field was built with.
type ObstacleField struct {
	// SpawnMargin keeps spawns at least this far from the side walls.
	SpawnMargin float64
	// SpawnY is where new obstacles start, usually just above the screen.
	SpawnY float64

	ticks int
	rng   *rand.Rand
	world *ecs.World
}

func NewObstacleField(world *ecs.World, rng *rand.Rand, margin, spawnY float64) *ObstacleField {
	return &ObstacleField{
		SpawnMargin: margin,
		SpawnY:      spawnY,
		rng:         rng,
		world:       world,
	}
}

// Tick spawns one obstacle when the internal counter is a multiple of
// interval, then moves every obstacle, including a fresh one, down by
// fallSpeed.
func (f *ObstacleField) Tick(interval int, fallSpeed, width float64) {
	if interval > 0 && f.ticks%interval == 0 {
		f.spawn(width)
	}
	f.ticks++

	ecs.ForEach(f.world, ObstacleComponent, func(_ ecs.Entity, o *Obstacle) {
		o.Pos.Y += fallSpeed
	})
}

func (f *ObstacleField) spawn(width float64) {
	span := max(width-2*f.SpawnMargin, 0)
	x := f.SpawnMargin + f.rng.Float64()*span
	f.add(cp.Vector{X: x, Y: f.SpawnY})
}

func (f *ObstacleField) add(pos cp.Vector) ecs.Entity {
	e := f.world.CreateEntity()
	// e is fresh and the kind is package-level, so Add cannot fail.
	_ = ecs.Add(f.world, e, ObstacleComponent, Obstacle{Pos: pos})
	return e
}

// Prune destroys obstacles whose center is below limitY and returns how
// many were removed.
func (f *ObstacleField) Prune(limitY float64) int {
	return ecs.DestroyWhere(f.world, ObstacleComponent, func(o *Obstacle) bool {
		return o.Pos.Y > limitY
	})
}

// Clear destroys every obstacle and restarts the spawn cadence.
func (f *ObstacleField) Clear() {
	ecs.DestroyWhere(f.world, ObstacleComponent, func(*Obstacle) bool { return true })
	f.ticks = 0
}

// All yields obstacles in storage order, which is not spawn order once
// any have been pruned.
func (f *ObstacleField) All() iter.Seq[Obstacle] {
	return func(yield func(Obstacle) bool) {
		for _, o := range ecs.All(f.world, ObstacleComponent) {
			if !yield(*o) {
				return
			}
		}
	}
}

func (f *ObstacleField) Len() int {
	return ecs.Count(f.world, ObstacleComponent)
}

// Ticks is the number of Tick calls since the last Clear.
func (f *ObstacleField) Ticks() int {
	return f.ticks
}
