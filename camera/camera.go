// Package camera provides the 2D viewport over the dish.
package camera

// Camera maps between screen pixels and dish pixels. The dish is a flat
// bounded square, so panning clamps at the edges instead of wrapping.
type Camera struct {
	// Position is the camera center in dish coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen area showing the dish)
	ViewportW, ViewportH float32

	// Dish dimensions in pixels
	DishW, DishH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the dish. The minimum zoom keeps the
// whole dish within reach of the viewport; below it panning could never
// fill the screen.
func New(viewportW, viewportH, dishW, dishH float32) *Camera {
	c := &Camera{
		X:         dishW / 2,
		Y:         dishH / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		DishW:     dishW,
		DishH:     dishH,
		MaxZoom:   8.0,
	}
	c.MinZoom = fitZoom(viewportW, viewportH, dishW, dishH)
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampCenter()
	return c
}

// WorldToScreen converts dish coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to dish coordinates. Points
// outside the dish come back unclamped; callers decide what off-dish means.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// CellAt maps a screen point to a grid cell given the rendered cell size.
// ok is false when the point falls outside the dish.
func (c *Camera) CellAt(sx, sy, cellSize float32) (cx, cy int, ok bool) {
	wx, wy := c.ScreenToWorld(sx, sy)
	if wx < 0 || wx >= c.DishW || wy < 0 || wy >= c.DishH {
		return 0, 0, false
	}
	return int(wx / cellSize), int(wy / cellSize), true
}

// Visible reports whether any part of the axis-aligned rectangle at
// (wx, wy) with the given size reaches the viewport.
func (c *Camera) Visible(wx, wy, size float32) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	s := size * c.Zoom
	return sx+s >= 0 && sx <= c.ViewportW && sy+s >= 0 && sy <= c.ViewportH
}

// Resize updates viewport dimensions and re-clamps zoom and position.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = fitZoom(viewportW, viewportH, c.DishW, c.DishH)
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampCenter()
}

// Pan moves the camera by the given delta in screen pixels, clamped so the
// view never drifts past the dish edges.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampCenter()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset recenters the camera at the fit-everything zoom.
func (c *Camera) Reset() {
	c.Zoom = c.MinZoom
	c.X = c.DishW / 2
	c.Y = c.DishH / 2
	c.clampCenter()
}

// clampCenter keeps the visible area inside the dish on each axis. When
// the dish is narrower than the view the center locks to the dish middle.
func (c *Camera) clampCenter() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	if halfW*2 >= c.DishW {
		c.X = c.DishW / 2
	} else {
		c.X = clamp(c.X, halfW, c.DishW-halfW)
	}
	if halfH*2 >= c.DishH {
		c.Y = c.DishH / 2
	} else {
		c.Y = clamp(c.Y, halfH, c.DishH-halfH)
	}
}

// fitZoom is the zoom that just fits the dish into the viewport.
func fitZoom(viewportW, viewportH, dishW, dishH float32) float32 {
	zx := viewportW / dishW
	zy := viewportH / dishH
	if zy < zx {
		return zy
	}
	return zx
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
