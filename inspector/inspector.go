// Package inspector shows the contents of the grid cell under the cursor.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/camera"
	"github.com/pthm-cable/petri/genes"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
	"github.com/pthm-cable/petri/ui"
)

// CellInfo is one inspected cell. Empty cells carry only coordinates.
type CellInfo struct {
	X, Y  int
	Empty bool

	ID         uint64
	Population uint8
	Code       string
	Color      genes.RGB
	HP, MaxHP  int

	// Lifetime record, zero when untracked
	Age      int64
	Kills    int
	Children int
}

// Inspector resolves the hovered cell and draws its panel.
type Inspector struct {
	renderer *ui.Renderer

	screenW, screenH int32

	hovering bool
	info     CellInfo
}

// NewInspector creates an inspector for the given screen size.
func NewInspector(screenW, screenH int32) *Inspector {
	return &Inspector{
		renderer: ui.NewRenderer(),
		screenW:  screenW,
		screenH:  screenH,
	}
}

// Resize updates the screen dimensions used for panel placement.
func (in *Inspector) Resize(screenW, screenH int32) {
	in.screenW = screenW
	in.screenH = screenH
}

// Update resolves the cell under the mouse. Off-dish positions clear the
// hover state.
func (in *Inspector) Update(mouseX, mouseY float32, cam *camera.Camera, cellSize float32,
	s *systems.State, lifetimes *telemetry.LifetimeTracker, tick int64) {

	cx, cy, ok := cam.CellAt(mouseX, mouseY, cellSize)
	if !ok {
		in.hovering = false
		return
	}
	in.hovering = true
	in.info = inspectCell(s, lifetimes, tick, cx, cy)
}

// inspectCell reads one cell from the simulation state.
func inspectCell(s *systems.State, lifetimes *telemetry.LifetimeTracker, tick int64, cx, cy int) CellInfo {
	info := CellInfo{X: cx, Y: cy, Empty: true}

	id := s.Grid.At(cx, cy)
	if id == 0 {
		return info
	}
	e, ok := s.Entity(id)
	if !ok {
		return info
	}

	geno := s.Geno.Get(e)
	vit := s.Vit.Get(e)
	pix := s.Pix.Get(e)

	info.Empty = false
	info.ID = id
	info.Population = pix.Population
	info.Code = geno.Code
	info.Color = geno.Color
	info.HP = vit.HP
	info.MaxHP = vit.MaxHP

	if ls := lifetimes.Get(id); ls != nil {
		info.Age = tick - ls.BirthTick
		info.Kills = ls.Kills
		info.Children = ls.Children
	}
	return info
}

// Hovered returns the current cell info, ok=false when the cursor is off
// the dish.
func (in *Inspector) Hovered() (CellInfo, bool) {
	return in.info, in.hovering
}

// Draw renders the hover panel next to the cursor.
func (in *Inspector) Draw(mouseX, mouseY float32) {
	if !in.hovering {
		return
	}

	r := in.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	width := int32(190)
	height := lineHeight + padding*2
	if !in.info.Empty {
		height += lineHeight*5 + 4
	}

	// Keep the panel on screen, flipping across the cursor when cramped.
	x := int32(mouseX) + 16
	y := int32(mouseY) + 16
	if x+width > in.screenW {
		x = int32(mouseX) - width - 8
	}
	if y+height > in.screenH {
		y = int32(mouseY) - height - 8
	}

	r.DrawPanel(x, y, width, height)
	px := x + padding
	py := y + padding

	py = r.DrawLabelValue(px, py, "Cell", fmt.Sprintf("(%d, %d)", in.info.X, in.info.Y))
	if in.info.Empty {
		return
	}

	c := in.info.Color
	py = r.DrawColorSwatch(px, py, fmt.Sprintf("Pixel %d", in.info.ID),
		rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
	py = r.DrawLabelValue(px, py, "Code", in.info.Code)
	py = r.DrawHPBar(px, py, "HP", in.info.HP, in.info.MaxHP, width-padding*2)
	r.DrawLabelValue(px, py, "Pop", fmt.Sprintf("%d | age %d | %dK %dC",
		in.info.Population, in.info.Age, in.info.Kills, in.info.Children))
}
