package sim

import (
	"github.com/milk9111/stickthruster/common"
	"github.com/milk9111/stickthruster/prefabs"
)

// Config is the session's view of the tuning spec.
type Config struct {
	Width  float64
	Height float64

	Stick     BodyParams
	StickLen  float64
	Thickness float64
	ArrowOff  float64
	ArrowSize float64

	Obstacles ObstacleParams

	StarCount  int
	StarRadius float64

	Text prefabs.TextSpec
}

// ObstacleParams drives spawning, motion and pruning of obstacles.
type ObstacleParams struct {
	Radius        float64
	FallSpeed     float64
	SpawnInterval int
	SpawnMargin   float64
	SpawnY        float64
	// PruneMargin is extra distance past collision reach below the screen
	// at which an obstacle is dropped. Negative disables pruning.
	PruneMargin   float64
}

func ConfigFromTuning(spec prefabs.TuningSpec) Config {
	return Config{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
		Stick: BodyParams{
			Torque:           spec.Stick.Torque,
			Thrust:           spec.Stick.Thrust,
			RotationFriction: spec.Stick.RotationFriction,
			Friction:         spec.Stick.Friction,
		},
		StickLen:  spec.Stick.Length,
		Thickness: spec.Stick.Thickness,
		ArrowOff:  spec.Stick.ArrowOffset,
		ArrowSize: spec.Stick.ArrowSize,
		Obstacles: ObstacleParams{
			Radius:        spec.Obstacles.Radius,
			FallSpeed:     spec.Obstacles.Speed,
			SpawnInterval: spec.Obstacles.SpawnInterval,
			SpawnMargin:   spec.Obstacles.SpawnMargin,
			SpawnY:        spec.Obstacles.SpawnY,
			PruneMargin:   spec.Obstacles.PruneMargin,
		},
		StarCount:  spec.Stars.Count,
		StarRadius: spec.Stars.Radius,
		Text:       spec.Text,
	}
}

func DefaultConfig() Config {
	return ConfigFromTuning(prefabs.DefaultTuning())
}

// HalfLength is the distance from the stick's center to either tip.
func (c Config) HalfLength() float64 {
	return c.StickLen / 2
}
