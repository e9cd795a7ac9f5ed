package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuFrame(t *testing.T) {
	s := newTestSession(t)
	f := s.Frame()

	assert.Equal(t, StateMenu, f.State)
	require.Len(t, f.Labels, 2)
	assert.Equal(t, Label{Text: "Stick Thruster", Pos: cp.Vector{X: 300, Y: 200}, Size: 40, Role: RoleTitle}, f.Labels[0])
	assert.Equal(t, Label{Text: "Press ENTER to Start", Pos: cp.Vector{X: 280, Y: 300}, Size: 30, Role: RolePrompt}, f.Labels[1])
	assert.Nil(t, f.Stick)
	assert.Nil(t, f.Arrow)
	assert.Empty(t, f.Stars)
	assert.Nil(t, f.Summary)
}

func TestPlayingFrame(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Update(Input{Start: true}))
	require.NoError(t, s.Update(Input{}))

	f := s.Frame()

	assert.Equal(t, StatePlaying, f.State)
	assert.Len(t, f.Stars, 50)
	for _, star := range f.Stars {
		assert.Equal(t, 2.0, star.Radius)
	}

	require.NotNil(t, f.Stick)
	assert.Equal(t, 10.0, f.Stick.Thickness)
	assert.InDelta(t, 450, f.Stick.A.X, 1e-9)
	assert.InDelta(t, 350, f.Stick.B.X, 1e-9)
	assert.InDelta(t, 300, f.Stick.A.Y, 1e-9)

	require.NotNil(t, f.Arrow)
	assert.InDelta(t, 465, f.Arrow[0].X, 1e-9)
	assert.InDelta(t, 300, f.Arrow[0].Y, 1e-9)
	for _, wing := range f.Arrow[1:] {
		assert.InDelta(t, 5, wing.Distance(f.Arrow[0]), 1e-9)
		assert.Greater(t, wing.X, f.Arrow[0].X, "wings flare out past the tip along +X")
	}

	require.Len(t, f.Obstacles, 1)
	assert.Equal(t, Circle{Center: cp.Vector{X: 50, Y: -18}, Radius: 20}, f.Obstacles[0])

	require.Len(t, f.Labels, 1)
	assert.Equal(t, "Score: 1", f.Labels[0].Text)
	assert.Equal(t, cp.Vector{X: 10, Y: 10}, f.Labels[0].Pos)
	assert.Equal(t, RoleHUD, f.Labels[0].Role)
	assert.Nil(t, f.Summary)
}

func TestGameOverFrame(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Update(Input{Start: true}))
	tickN(t, s, 7, Input{})
	s.field.add(s.Body().Pos)
	require.NoError(t, s.Update(Input{}))
	require.Equal(t, StateGameOver, s.State())

	f := s.Frame()

	require.NotNil(t, f.Summary)
	assert.Equal(t, Summary{Title: "Game Over", Score: 7}, *f.Summary)
	assert.NotNil(t, f.Stick)
	assert.Len(t, f.Obstacles, 2)
}
