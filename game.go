package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/stickthruster/common"
	"github.com/milk9111/stickthruster/prefabs"
	"github.com/milk9111/stickthruster/render"
	"github.com/milk9111/stickthruster/sim"
	"go.uber.org/zap"
)

type Game struct {
	frames int
	debug  bool

	input    *Input
	session  *sim.Session
	renderer *render.Renderer
	reloader *prefabs.Reloader
	frame    sim.Frame

	log *zap.Logger
}

// NewGame wires a session to the renderer. reloader may be nil.
func NewGame(tuning prefabs.TuningSpec, session *sim.Session, reloader *prefabs.Reloader, log *zap.Logger, debug bool) (*Game, error) {
	renderer, err := render.NewRenderer(render.PaletteFromSpec(tuning.Palette))
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Game{
		debug:    debug,
		input:    NewInput(),
		session:  session,
		renderer: renderer,
		reloader: reloader,
		frame:    session.Frame(),
		log:      log,
	}, nil
}

func (g *Game) Update() error {
	g.frames++

	g.reload()

	if err := g.session.Update(g.input.Poll()); err != nil {
		if errors.Is(err, sim.ErrQuit) {
			g.log.Info("quit", zap.String("state", g.session.State().String()), zap.Int("score", g.session.Score()))
			return ebiten.Termination
		}
		return err
	}

	g.frame = g.session.Frame()
	g.renderer.Update(g.frame)
	return nil
}

func (g *Game) reload() {
	spec, changed, err := g.reloader.Poll()
	if err != nil {
		g.log.Warn("tuning reload failed, keeping current values", zap.Error(err))
		return
	}
	if !changed {
		return
	}
	g.session.SetConfig(sim.ConfigFromTuning(spec))
	g.renderer.SetPalette(render.PaletteFromSpec(spec.Palette))
	g.log.Info("tuning reloaded", zap.Int("frame", g.frames))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.frame)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.2f  FPS: %.2f  obstacles: %d  state: %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.session.Field().Len(), g.session.State()),
			0, common.BaseHeight-16)
	}
}

func (g *Game) Close() error {
	return g.reloader.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
