package render

import (
	"image/color"

	"github.com/milk9111/stickthruster/prefabs"
	"github.com/milk9111/stickthruster/sim"
	"golang.org/x/image/colornames"
)

type Palette struct {
	Background color.Color
	Star       color.Color
	Stick      color.Color
	Arrow      color.Color
	Obstacle   color.Color
	Text       color.Color
	Prompt     color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: colornames.Black,
		Star:       colornames.White,
		Stick:      colornames.White,
		Arrow:      colornames.Yellow,
		Obstacle:   color.RGBA{R: 255, G: 50, B: 50, A: 255},
		Text:       colornames.White,
		Prompt:     color.RGBA{R: 50, G: 255, B: 50, A: 255},
	}
}

// PaletteFromSpec overlays the colors set in spec onto the defaults.
func PaletteFromSpec(spec prefabs.PaletteSpec) Palette {
	p := DefaultPalette()
	pick(&p.Background, spec.Background)
	pick(&p.Star, spec.Star)
	pick(&p.Stick, spec.Stick)
	pick(&p.Arrow, spec.Arrow)
	pick(&p.Obstacle, spec.Obstacle)
	pick(&p.Text, spec.Text)
	pick(&p.Prompt, spec.Prompt)
	return p
}

func pick(dst *color.Color, c *prefabs.YAMLColor) {
	if c != nil && c.Color != nil {
		*dst = c.Color
	}
}

// LabelColor maps a label role to its palette entry.
func (p Palette) LabelColor(role sim.LabelRole) color.Color {
	if role == sim.RolePrompt {
		return p.Prompt
	}
	return p.Text
}
