package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/telemetry"
)

// BattleLogPanel lists the most recent duels, newest first.
type BattleLogPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewBattleLogPanel creates a battle log panel anchored at (x, y).
func NewBattleLogPanel(x, y, width int32) *BattleLogPanel {
	return &BattleLogPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition moves the panel.
func (p *BattleLogPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Toggle switches panel visibility and reports the new state.
func (p *BattleLogPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the panel is shown.
func (p *BattleLogPanel) Visible() bool {
	return p.visible
}

// Draw renders the duel list and returns the Y below the panel.
func (p *BattleLogPanel) Draw(records []telemetry.DuelRecord) int32 {
	if !p.visible {
		return p.y
	}

	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	height := int32(len(records))*lineHeight + lineHeight + padding*2 + 4
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	y := p.y + padding
	y = r.DrawSectionHeader(x, y, "Battle Log")
	y += 4

	for _, rec := range records {
		winner := fitCode(rec.WinnerCode, 11)
		loser := fitCode(rec.LoserCode, 11)
		rl.DrawText(winner, x, y, r.Theme.FontSize, r.Theme.WinnerColor)
		w := rl.MeasureText(winner, r.Theme.FontSize)
		rl.DrawText(" beats ", x+w, y, r.Theme.FontSize, r.Theme.LabelColor)
		w += rl.MeasureText(" beats ", r.Theme.FontSize)
		rl.DrawText(loser, x+w, y, r.Theme.FontSize, r.Theme.LoserColor)
		y += lineHeight
	}

	return p.y + height + 6
}

// fitCode truncates long gene codes so lines stay inside the panel.
func fitCode(code string, max int) string {
	if len(code) <= max {
		return code
	}
	return code[:max-1] + "~"
}
