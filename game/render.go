package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/ui"
)

// Draw renders one frame: dish on the left, panels in the sidebar.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 9, B: 12, A: 255})

	g.dish.DrawBackdrop(g.cam)
	popCounts, distinct := g.drawPixels()
	g.dish.DrawGridLines(g.cam)
	if info, ok := g.insp.Hovered(); ok {
		g.dish.HighlightCell(g.cam, info.X, info.Y)
	}

	g.drawSidebar(popCounts, distinct)

	mouse := rl.GetMousePosition()
	g.insp.Draw(mouse.X, mouse.Y)
	ui.DrawKeys(int32(g.screenH))

	rl.EndDrawing()
}

// drawPixels draws every live pixel and tallies the per-population counts
// and distinct code count shown in the HUD.
func (g *Game) drawPixels() ([]int, int) {
	cfg := config.Cfg()
	popCounts := make([]int, cfg.Seed.Populations)
	codes := make(map[string]struct{}, 64)

	g.renderIDs = g.state.IDs(g.renderIDs[:0])
	for _, id := range g.renderIDs {
		e, ok := g.state.Entity(id)
		if !ok {
			continue
		}
		pos := g.state.Pos.Get(e)
		geno := g.state.Geno.Get(e)
		pix := g.state.Pix.Get(e)

		g.dish.DrawCell(g.cam, pos.X, pos.Y, geno.Color)
		if int(pix.Population) < len(popCounts) {
			popCounts[pix.Population]++
		}
		codes[geno.Code] = struct{}{}
	}
	return popCounts, len(codes)
}

// drawSidebar stacks the HUD, controls, battle log, and hall of fame.
func (g *Game) drawSidebar(popCounts []int, distinct int) {
	y := g.hud.Draw(ui.HUDData{
		Title:          "petri",
		Tick:           g.tick,
		Pixels:         g.state.Count(),
		PopCounts:      popCounts,
		DistinctCodes:  distinct,
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
	})

	sidebarX := int32(g.screenW-float32(config.Cfg().Screen.SidebarWidth)) + 10

	g.controls.SetPosition(sidebarX, y)
	state, y := g.controls.Draw(ui.ControlsState{
		Paused:         g.paused,
		StepsPerUpdate: g.stepsPerUpdate,
		ShowBattleLog:  g.battlePanel.Visible(),
		ShowHallOfFame: g.famePanel.Visible(),
	})
	g.paused = state.Paused
	g.stepsPerUpdate = state.StepsPerUpdate
	if state.ShowBattleLog != g.battlePanel.Visible() {
		g.battlePanel.Toggle()
	}
	if state.ShowHallOfFame != g.famePanel.Visible() {
		g.famePanel.Toggle()
	}

	g.battlePanel.SetPosition(sidebarX, y)
	y = g.battlePanel.Draw(g.battleLog.Recent())

	g.famePanel.SetPosition(sidebarX, y)
	g.famePanel.Draw(g.hallOfFame.Top())
}
