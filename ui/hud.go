package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD shows per frame.
type HUDData struct {
	Title          string
	Tick           int64
	Pixels         int
	PopCounts      []int
	DistinctCodes  int
	StepsPerUpdate int
	FPS            int32
	Paused         bool
}

// HUD renders the run summary at the top of the sidebar.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a HUD anchored at (x, y).
func NewHUD(x, y, width int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the HUD.
func (h *HUD) SetPosition(x, y int32) {
	h.x = x
	h.y = y
}

// Draw renders the HUD and returns the Y below it.
func (h *HUD) Draw(data HUDData) int32 {
	r := h.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	height := lineHeight*4 + int32(len(data.PopCounts))*lineHeight + padding*2 + 8
	r.DrawPanel(h.x, h.y, h.width, height)

	x := h.x + padding
	y := h.y + padding

	rl.DrawText(data.Title, x, y, 18, rl.White)
	y += lineHeight + 8

	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d", data.Tick))
	y = r.DrawLabelValue(x, y, "Pixels", fmt.Sprintf("%d (%d codes)", data.Pixels, data.DistinctCodes))
	for i, n := range data.PopCounts {
		y = r.DrawLabelValue(x, y, fmt.Sprintf("Pop %d", i), fmt.Sprintf("%d", n))
	}

	status := fmt.Sprintf("Running %dx | FPS %d", data.StepsPerUpdate, data.FPS)
	statusColor := r.Theme.LabelColor
	if data.Paused {
		status = "PAUSED"
		statusColor = rl.Yellow
	}
	rl.DrawText(status, x, y, r.Theme.FontSize, statusColor)

	return h.y + height + 6
}

// DrawKeys renders the key legend at the bottom of the screen.
func DrawKeys(screenHeight int32) {
	rl.DrawText("space pause | , . speed | arrows pan | wheel zoom | home reset | hover inspect",
		10, screenHeight-22, 12, rl.Gray)
}
