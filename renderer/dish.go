// Package renderer draws the dish: backdrop, pixels, and grid lines.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/camera"
	"github.com/pthm-cable/petri/genes"
)

// gridLineZoom is the zoom level past which cell boundaries get visible.
const gridLineZoom = 3.0

// DishRenderer draws the square dish through a camera.
type DishRenderer struct {
	side     int
	cellSize float32

	backdrop rl.Color
	rim      rl.Color
	gridLine rl.Color
}

// NewDishRenderer creates a renderer for a side x side grid of cells.
func NewDishRenderer(side int, cellSize float32) *DishRenderer {
	return &DishRenderer{
		side:     side,
		cellSize: cellSize,
		backdrop: rl.Color{R: 12, G: 14, B: 18, A: 255},
		rim:      rl.Color{R: 70, G: 80, B: 95, A: 255},
		gridLine: rl.Color{R: 30, G: 34, B: 42, A: 255},
	}
}

// DrawBackdrop fills the dish area and its rim.
func (d *DishRenderer) DrawBackdrop(cam *camera.Camera) {
	size := float32(d.side) * d.cellSize
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(size, size)

	rl.DrawRectangle(int32(x0), int32(y0), int32(x1-x0), int32(y1-y0), d.backdrop)
	rl.DrawRectangleLines(int32(x0)-1, int32(y0)-1, int32(x1-x0)+2, int32(y1-y0)+2, d.rim)
}

// DrawCell draws one pixel's cell.
func (d *DishRenderer) DrawCell(cam *camera.Camera, cx, cy int, c genes.RGB) {
	wx := float32(cx) * d.cellSize
	wy := float32(cy) * d.cellSize
	if !cam.Visible(wx, wy, d.cellSize) {
		return
	}

	sx, sy := cam.WorldToScreen(wx, wy)
	size := d.cellSize * cam.Zoom
	// At least one screen pixel, or distant cells vanish entirely.
	if size < 1 {
		size = 1
	}
	rl.DrawRectangle(int32(sx), int32(sy), int32(size), int32(size), rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
}

// DrawGridLines overlays cell boundaries once zoomed in far enough to make
// individual cells legible.
func (d *DishRenderer) DrawGridLines(cam *camera.Camera) {
	if cam.Zoom < gridLineZoom {
		return
	}

	size := float32(d.side) * d.cellSize
	for i := 0; i <= d.side; i++ {
		w := float32(i) * d.cellSize
		x0, y0 := cam.WorldToScreen(w, 0)
		x1, y1 := cam.WorldToScreen(w, size)
		rl.DrawLine(int32(x0), int32(y0), int32(x1), int32(y1), d.gridLine)

		x0, y0 = cam.WorldToScreen(0, w)
		x1, y1 = cam.WorldToScreen(size, w)
		rl.DrawLine(int32(x0), int32(y0), int32(x1), int32(y1), d.gridLine)
	}
}

// HighlightCell outlines the hovered cell.
func (d *DishRenderer) HighlightCell(cam *camera.Camera, cx, cy int) {
	wx := float32(cx) * d.cellSize
	wy := float32(cy) * d.cellSize
	sx, sy := cam.WorldToScreen(wx, wy)
	size := d.cellSize * cam.Zoom
	rl.DrawRectangleLines(int32(sx)-1, int32(sy)-1, int32(size)+2, int32(size)+2, rl.White)
}
