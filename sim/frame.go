package sim

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickthruster/common"
)

// LabelRole tells the renderer which palette entry a label uses.
type LabelRole int

const (
	RoleTitle LabelRole = iota
	RolePrompt
	RoleHUD
)

type Label struct {
	Text string
	Pos  cp.Vector
	Size float64
	Role LabelRole
}

type Segment struct {
	A, B      cp.Vector
	Thickness float64
}

type Circle struct {
	Center cp.Vector
	Radius float64
}

type Triangle [3]cp.Vector

// Summary is shown over the frozen playfield once the round is over.
type Summary struct {
	Title string
	Score int
}

// Frame is everything the renderer needs to draw one tick. The background
// is always cleared first.
type Frame struct {
	State     State
	Labels    []Label
	Stars     []Circle
	Stick     *Segment
	Arrow     *Triangle
	Obstacles []Circle
	Summary   *Summary
}

// Frame describes the current state as draw primitives.
func (s *Session) Frame() Frame {
	f := Frame{State: s.state}
	if s.state == StateMenu {
		f.Labels = s.menuLabels()
		return f
	}

	stars := s.Stars()
	f.Stars = make([]Circle, len(stars))
	for i, p := range stars {
		f.Stars[i] = Circle{Center: p, Radius: s.cfg.StarRadius}
	}

	half := s.cfg.HalfLength()
	a, b := s.body.Endpoints(half)
	f.Stick = &Segment{A: a, B: b, Thickness: s.cfg.Thickness}
	arrow := s.arrow(half)
	f.Arrow = &arrow

	f.Obstacles = make([]Circle, 0, s.field.Len())
	for o := range s.field.All() {
		f.Obstacles = append(f.Obstacles, Circle{Center: o.Pos, Radius: s.cfg.Obstacles.Radius})
	}

	f.Labels = []Label{{
		Text: fmt.Sprintf("Score: %d", s.score),
		Pos:  cp.Vector{X: 10, Y: 10},
		Size: s.cfg.Text.ScoreSize,
		Role: RoleHUD,
	}}

	if s.state == StateGameOver {
		f.Summary = &Summary{Title: s.cfg.Text.GameOver, Score: s.score}
	}
	return f
}

func (s *Session) menuLabels() []Label {
	w, h := s.cfg.Width, s.cfg.Height
	return []Label{
		{
			Text: s.cfg.Text.Title,
			Pos:  cp.Vector{X: w/2 - 100, Y: h / 3},
			Size: s.cfg.Text.TitleSize,
			Role: RoleTitle,
		},
		{
			Text: s.cfg.Text.Prompt,
			Pos:  cp.Vector{X: w/2 - 120, Y: h / 2},
			Size: s.cfg.Text.PromptSize,
			Role: RolePrompt,
		},
	}
}

// arrow is a small triangle just past the leading tip of the stick.
func (s *Session) arrow(half float64) Triangle {
	tip := s.body.Pos.Add(s.body.Orientation().Mult(half + s.cfg.ArrowOff))
	wing := func(offset float64) cp.Vector {
		dir := cp.ForAngle(common.Radians(s.body.Angle + offset))
		return tip.Sub(dir.Mult(s.cfg.ArrowSize))
	}
	return Triangle{tip, wing(-135), wing(135)}
}
