package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/stickthruster/sim"
)

const triggerDeadzone = 0.3

// Input polls keyboard, the first gamepad and the window close button.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Poll reads one tick of input. Start is edge-triggered, the thrusters are
// held states.
func (i *Input) Poll() sim.Input {
	in := sim.Input{
		Quit:    ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Start:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Reverse: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return in
	}
	id := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return in
	}

	// Shoulder buttons or triggers fire the thrusters.
	in.Left = in.Left ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft) ||
		ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft) > triggerDeadzone
	in.Right = in.Right ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight) ||
		ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight) > triggerDeadzone
	in.Reverse = in.Reverse ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
	in.Start = in.Start ||
		inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) ||
		inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)

	return in
}
