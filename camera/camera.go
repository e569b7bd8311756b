// Package camera provides a 2D camera for zooming and panning over the board.
package camera

// Camera maps board coordinates (pixels of the board drawn at zoom 1) to a
// screen viewport. The board is bounded: the view is kept inside it.
type Camera struct {
	// Position is the camera center in board coordinates
	X, Y float32

	// Zoom level (1.0 = whole board fits the viewport)
	Zoom float32

	// Viewport rectangle on screen
	OriginX, OriginY     float32
	ViewportW, ViewportH float32

	// Board extent at zoom 1
	BoardW, BoardH float32

	MinZoom, MaxZoom float32
}

// New creates a camera showing the whole board in a viewport of the same size.
func New(originX, originY, viewportW, viewportH float32) *Camera {
	return &Camera{
		X:         viewportW / 2,
		Y:         viewportH / 2,
		Zoom:      1.0,
		OriginX:   originX,
		OriginY:   originY,
		ViewportW: viewportW,
		ViewportH: viewportH,
		BoardW:    viewportW,
		BoardH:    viewportH,
		MinZoom:   1.0,
		MaxZoom:   8.0,
	}
}

// WorldToScreen converts board coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.OriginX + c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.OriginY + c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to board coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.OriginX-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.OriginY-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// InViewport reports whether a screen point lies inside the viewport.
func (c *Camera) InViewport(sx, sy float32) bool {
	return sx >= c.OriginX && sy >= c.OriginY &&
		sx < c.OriginX+c.ViewportW && sy < c.OriginY+c.ViewportH
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Pan moves the camera by the given delta in screen pixels.
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

// ZoomAt zooms by factor while keeping the board point under (sx, sy) fixed.
func (c *Camera) ZoomAt(sx, sy, factor float32) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = clamp(c.Zoom*factor, c.MinZoom, c.MaxZoom)
	c.X = wx - (sx-c.OriginX-c.ViewportW/2)/c.Zoom
	c.Y = wy - (sy-c.OriginY-c.ViewportH/2)/c.Zoom
	c.clampCenter()
}

// Reset returns the camera to the whole-board view.
func (c *Camera) Reset() {
	c.X = c.BoardW / 2
	c.Y = c.BoardH / 2
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the board-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// clampCenter keeps the visible area inside the board.
func (c *Camera) clampCenter() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	c.X = clamp(c.X, halfW, c.BoardW-halfW)
	c.Y = clamp(c.Y, halfH, c.BoardH-halfH)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range. An empty range yields its midpoint.
func clamp(x, min, max float32) float32 {
	if min > max {
		return (min + max) / 2
	}
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
