package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickthruster/sim"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer draws a sim.Frame. It holds no game state of its own.
type Renderer struct {
	palette Palette
	faces   *Faces
	summary *SummaryPanel
}

func NewRenderer(palette Palette) (*Renderer, error) {
	faces, err := NewFaces()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		palette: palette,
		faces:   faces,
		summary: NewSummaryPanel(faces, palette),
	}, nil
}

func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
}

// Update feeds the UI layer. Call it from Game.Update with the latest frame.
func (r *Renderer) Update(f sim.Frame) {
	if f.Summary == nil {
		return
	}
	r.summary.Set(*f.Summary)
	r.summary.Update()
}

func (r *Renderer) Draw(screen *ebiten.Image, f sim.Frame) {
	screen.Fill(r.palette.Background)

	for _, star := range f.Stars {
		r.fillCircle(screen, star, r.palette.Star)
	}

	if f.Stick != nil {
		s := f.Stick
		vector.StrokeLine(screen,
			float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y),
			float32(s.Thickness), r.palette.Stick, true)
	}

	if f.Arrow != nil {
		vs, is := triangleVertices(*f.Arrow, r.palette.Arrow)
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		screen.DrawTriangles(vs, is, whiteSubImage, op)
	}

	for _, o := range f.Obstacles {
		r.fillCircle(screen, o, r.palette.Obstacle)
	}

	for _, l := range f.Labels {
		r.drawLabel(screen, l)
	}

	if f.Summary != nil {
		r.summary.Draw(screen)
	}
}

func (r *Renderer) fillCircle(screen *ebiten.Image, c sim.Circle, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), clr, true)
}

func (r *Renderer) drawLabel(screen *ebiten.Image, l sim.Label) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.Pos.X, l.Pos.Y)
	op.ColorScale.ScaleWithColor(r.palette.LabelColor(l.Role))
	text.Draw(screen, l.Text, r.faces.Face(l.Size), op)
}

func triangleVertices(t sim.Triangle, clr color.Color) ([]ebiten.Vertex, []uint16) {
	cr, cg, cb, ca := clr.RGBA()
	vs := make([]ebiten.Vertex, 0, len(t))
	for _, p := range t {
		vs = append(vs, vertex(p, cr, cg, cb, ca))
	}
	return vs, []uint16{0, 1, 2}
}

func vertex(p cp.Vector, r, g, b, a uint32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(r) / 0xffff,
		ColorG: float32(g) / 0xffff,
		ColorB: float32(b) / 0xffff,
		ColorA: float32(a) / 0xffff,
	}
}
