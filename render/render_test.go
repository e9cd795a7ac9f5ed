package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/stickthruster/prefabs"
	"github.com/milk9111/stickthruster/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestPaletteFromSpec(t *testing.T) {
	spec := prefabs.PaletteSpec{
		Obstacle: &prefabs.YAMLColor{Color: color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
		Prompt:   &prefabs.YAMLColor{},
	}

	p := PaletteFromSpec(spec)

	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, p.Obstacle)
	assert.Equal(t, DefaultPalette().Prompt, p.Prompt, "empty color keeps default")
	assert.Equal(t, colornames.Black, p.Background)
}

func TestPaletteFromEmbeddedTuning(t *testing.T) {
	spec, err := prefabs.LoadTuning(prefabs.TuningFile)
	require.NoError(t, err)

	p := PaletteFromSpec(spec.Palette)
	r, g, b, a := p.Arrow.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0, 0xffff}, [4]uint32{r, g, b, a})
}

func TestLabelColor(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.Prompt, p.LabelColor(sim.RolePrompt))
	assert.Equal(t, p.Text, p.LabelColor(sim.RoleTitle))
	assert.Equal(t, p.Text, p.LabelColor(sim.RoleHUD))
}

func TestTriangleVertices(t *testing.T) {
	tri := sim.Triangle{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 60}}

	vs, is := triangleVertices(tri, color.RGBA{R: 255, A: 255})

	require.Len(t, vs, 3)
	assert.Equal(t, []uint16{0, 1, 2}, is)
	for i, p := range tri {
		assert.Equal(t, float32(p.X), vs[i].DstX)
		assert.Equal(t, float32(p.Y), vs[i].DstY)
		assert.Equal(t, float32(1), vs[i].ColorR)
		assert.Equal(t, float32(0), vs[i].ColorG)
		assert.Equal(t, float32(1), vs[i].ColorA)
	}
}

func TestFacesAreCachedPerSize(t *testing.T) {
	faces, err := NewFaces()
	require.NoError(t, err)

	a := faces.Face(36)
	assert.Same(t, a, faces.Face(36))
	assert.NotSame(t, a, faces.Face(30))
	assert.Same(t, a, faces.Face(0), "non-positive size falls back to the default")
	assert.InDelta(t, 36*fontScale, a.Size, 1e-9)
}
