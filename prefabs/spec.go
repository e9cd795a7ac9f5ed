package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes the named prefab over base. Keys absent from the file
// keep base's values.
func LoadSpec[T any](filename string, base T) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := DecodeSpec(data, base)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func DecodeSpec[T any](data []byte, base T) (T, error) {
	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// TuningSpec holds every gameplay number the session reads. Files are
// decoded over DefaultTuning, so an explicit zero is kept.
type TuningSpec struct {
	Stick     StickSpec    `yaml:"stick"`
	Obstacles ObstacleSpec `yaml:"obstacles"`
	Stars     StarSpec     `yaml:"stars"`
	Text      TextSpec     `yaml:"text"`
	Palette   PaletteSpec  `yaml:"palette"`
}

type StickSpec struct {
	Length           float64 `yaml:"length"`
	Thickness        float64 `yaml:"thickness"`
	Torque           float64 `yaml:"torque"`
	Thrust           float64 `yaml:"thrust"`
	RotationFriction float64 `yaml:"rotation_friction"`
	Friction         float64 `yaml:"friction"`
	ArrowOffset      float64 `yaml:"arrow_offset"`
	ArrowSize        float64 `yaml:"arrow_size"`
}

type ObstacleSpec struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"`
	SpawnMargin   float64 `yaml:"spawn_margin"`
	SpawnY        float64 `yaml:"spawn_y"`
	PruneMargin   float64 `yaml:"prune_margin"`
}

type StarSpec struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
}

type TextSpec struct {
	Title      string  `yaml:"title"`
	TitleSize  float64 `yaml:"title_size"`
	Prompt     string  `yaml:"prompt"`
	PromptSize float64 `yaml:"prompt_size"`
	ScoreSize  float64 `yaml:"score_size"`
	GameOver   string  `yaml:"game_over"`
}

// PaletteSpec colors are optional; nil entries are left to the renderer.
type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Star       *YAMLColor `yaml:"star"`
	Stick      *YAMLColor `yaml:"stick"`
	Arrow      *YAMLColor `yaml:"arrow"`
	Obstacle   *YAMLColor `yaml:"obstacle"`
	Text       *YAMLColor `yaml:"text"`
	Prompt     *YAMLColor `yaml:"prompt"`
}

// LoadTuning loads and validates the named tuning spec.
func LoadTuning(name string) (TuningSpec, error) {
	spec, err := LoadSpec(name, DefaultTuning())
	if err != nil {
		return TuningSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return TuningSpec{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// DecodeTuning decodes data over the defaults and validates the result.
func DecodeTuning(data []byte) (TuningSpec, error) {
	spec, err := DecodeSpec(data, DefaultTuning())
	if err != nil {
		return TuningSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return TuningSpec{}, err
	}
	return spec, nil
}

// DefaultTuning returns the built-in numbers without touching the disk.
func DefaultTuning() TuningSpec {
	return TuningSpec{
		Stick: StickSpec{
			Length:           100,
			Thickness:        10,
			Torque:           0.5,
			Thrust:           0.3,
			RotationFriction: 0.95,
			Friction:         0.98,
			ArrowOffset:      15,
			ArrowSize:        5,
		},
		Obstacles: ObstacleSpec{
			Radius:        20,
			Speed:         2,
			SpawnInterval: 100,
			SpawnMargin:   50,
			SpawnY:        -20,
			PruneMargin:   40,
		},
		Stars: StarSpec{Count: 50, Radius: 2},
		Text: TextSpec{
			Title:      "Stick Thruster",
			TitleSize:  40,
			Prompt:     "Press ENTER to Start",
			PromptSize: 30,
			ScoreSize:  36,
			GameOver:   "Game Over",
		},
	}
}

var (
	ErrStickLength   = errors.New("stick.length must be positive")
	ErrSpawnInterval = errors.New("obstacles.spawn_interval must be positive")
	ErrNegative      = errors.New("must not be negative")
)

// Validate rejects numbers the session cannot run with. Zero is allowed
// wherever it still means something, such as zero friction or speed.
func (s TuningSpec) Validate() error {
	var errs []error
	if s.Stick.Length <= 0 {
		errs = append(errs, ErrStickLength)
	}
	if s.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, ErrSpawnInterval)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"stick.thickness", s.Stick.Thickness},
		{"obstacles.radius", s.Obstacles.Radius},
		{"obstacles.spawn_margin", s.Obstacles.SpawnMargin},
		{"stars.count", float64(s.Stars.Count)},
		{"stars.radius", s.Stars.Radius},
	} {
		if f.v < 0 {
			errs = append(errs, fmt.Errorf("%s %w", f.name, ErrNegative))
		}
	}
	return errors.Join(errs...)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
