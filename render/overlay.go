package render

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stickthruster/common"
	"github.com/milk9111/stickthruster/sim"
)

// SummaryPanel is the centered game-over box drawn over the frozen field.
type SummaryPanel struct {
	ui    *ebitenui.UI
	title *widget.Text
	score *widget.Text
	shown sim.Summary
}

func NewSummaryPanel(faces *Faces, palette Palette) *SummaryPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	var titleFace ebtext.Face = faces.Face(40)
	var scoreFace ebtext.Face = faces.Face(30)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("", &titleFace, palette.Text),
		widget.TextOpts.WidgetOpts(centered),
	)
	score := widget.NewText(
		widget.TextOpts.Text("", &scoreFace, palette.Prompt),
		widget.TextOpts.WidgetOpts(centered),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(score)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &SummaryPanel{
		ui:    &ebitenui.UI{Container: root},
		title: title,
		score: score,
	}
}

func (p *SummaryPanel) Set(s sim.Summary) {
	if s == p.shown && p.title.Label != "" {
		return
	}
	p.shown = s
	p.title.Label = s.Title
	p.score.Label = fmt.Sprintf("Final score: %d", s.Score)
}

func (p *SummaryPanel) Update() {
	p.ui.Update()
}

func (p *SummaryPanel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}
