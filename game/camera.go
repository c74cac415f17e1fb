package game

import "arenasurvivor/geom"

// Camera is the viewport into the world. The world is y-up and the screen is
// y-down, so the camera flips the vertical axis.
type Camera struct {
	X, Y   float64 // Camera center in world coordinates
	Zoom   float64 // Screen pixels per world unit
	Width  float64 // Viewport width in pixels
	Height float64 // Viewport height in pixels
}

// NewCamera creates a camera centered on the world origin.
func NewCamera(width, height, zoom float64) *Camera {
	return &Camera{
		Zoom:   zoom,
		Width:  width,
		Height: height,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p geom.Vec2) (float64, float64) {
	sx := (p.X-c.X)*c.Zoom + c.Width/2
	sy := -(p.Y-c.Y)*c.Zoom + c.Height/2
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) geom.Vec2 {
	return geom.V(
		(sx-c.Width/2)/c.Zoom+c.X,
		-(sy-c.Height/2)/c.Zoom+c.Y,
	)
}

// ScreenRect returns the on-screen rectangle of a world box as its top-left
// corner and size.
func (c *Camera) ScreenRect(b geom.AABB) (x, y, w, h float64) {
	x, y = c.WorldToScreen(geom.V(b.X, b.Top()))
	return x, y, b.W * c.Zoom, b.H * c.Zoom
}

// View is the world rectangle currently on screen.
func (c *Camera) View() geom.AABB {
	return geom.Centered(geom.V(c.X, c.Y), c.Width/c.Zoom, c.Height/c.Zoom)
}

// Visible reports whether b is at least partly on screen.
func (c *Camera) Visible(b geom.AABB) bool {
	return c.View().Overlaps(b)
}

// Follow moves the camera a fraction of the way toward target.
func (c *Camera) Follow(target geom.Vec2, lerp float64) {
	c.X += (target.X - c.X) * lerp
	c.Y += (target.Y - c.Y) * lerp
}

// CenterOn snaps the camera to target.
func (c *Camera) CenterOn(target geom.Vec2) {
	c.X, c.Y = target.X, target.Y
}
