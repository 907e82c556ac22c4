package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsState is the run-control surface the panel edits. The caller owns
// the values; Draw returns the (possibly changed) copy.
type ControlsState struct {
	Paused         bool
	StepsPerUpdate int
	ShowBattleLog  bool
	ShowHallOfFame bool
}

// ControlsPanel renders pause and speed controls with raygui widgets.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a controls panel anchored at (x, y).
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the panel.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Draw renders the controls and returns the updated state plus the Y below
// the panel.
func (c *ControlsPanel) Draw(state ControlsState) (ControlsState, int32) {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	height := lineHeight*2 + padding*2 + 70
	r.DrawPanel(c.x, c.y, c.width, height)

	x := float32(c.x + padding)
	y := float32(c.y + padding)
	innerW := float32(c.width - padding*2)

	pauseLabel := "Pause"
	if state.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 80, Height: 24}, pauseLabel) {
		state.Paused = !state.Paused
	}
	if gui.Button(rl.Rectangle{X: x + 88, Y: y, Width: 60, Height: 24}, "Log") {
		state.ShowBattleLog = !state.ShowBattleLog
	}
	if gui.Button(rl.Rectangle{X: x + 156, Y: y, Width: 60, Height: 24}, "Fame") {
		state.ShowHallOfFame = !state.ShowHallOfFame
	}
	y += 32

	rl.DrawText("Ticks per frame", int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += float32(lineHeight)
	steps := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: innerW - 40, Height: 18},
		"1", "10",
		float32(state.StepsPerUpdate), 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%dx", state.StepsPerUpdate), int32(x+innerW-30), int32(y+2), r.Theme.FontSize, r.Theme.ValueColor)
	state.StepsPerUpdate = int(steps + 0.5)
	if state.StepsPerUpdate < 1 {
		state.StepsPerUpdate = 1
	}

	return state, c.y + height + 6
}
