package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/telemetry"
)

// HallOfFamePanel ranks gene codes by duel victories.
type HallOfFamePanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewHallOfFamePanel creates a hall of fame panel anchored at (x, y).
func NewHallOfFamePanel(x, y, width int32) *HallOfFamePanel {
	return &HallOfFamePanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition moves the panel.
func (p *HallOfFamePanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Toggle switches panel visibility and reports the new state.
func (p *HallOfFamePanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the panel is shown.
func (p *HallOfFamePanel) Visible() bool {
	return p.visible
}

// Draw renders the leaderboard and returns the Y below the panel.
func (p *HallOfFamePanel) Draw(top []telemetry.CodeRecord) int32 {
	if !p.visible {
		return p.y
	}

	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	height := int32(len(top))*lineHeight + lineHeight + padding*2 + 4
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	y := p.y + padding
	y = r.DrawSectionHeader(x, y, "Hall of Fame")
	y += 4

	for i, rec := range top {
		line := fmt.Sprintf("%d. %-11s %dW %dL", i+1, fitCode(rec.Code, 11), rec.Wins, rec.Losses)
		color := r.Theme.ValueColor
		if i > 0 {
			color = r.Theme.LabelColor
		}
		rl.DrawText(line, x, y, r.Theme.FontSize, color)
		y += lineHeight
	}

	return p.y + height + 6
}
