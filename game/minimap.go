package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenasurvivor/geom"
	"arenasurvivor/sim"
)

const minimapMargin = 12.0

var (
	colorMinimapBackdrop = color.RGBA{0, 0, 0, 170}
	colorMinimapView     = color.RGBA{255, 255, 255, 120}
)

// Minimap draws the whole arena scaled into a square in the bottom-right
// corner of the screen.
type Minimap struct {
	size float64
}

// NewMinimap creates a minimap of the given side in pixels.
func NewMinimap(size float64) *Minimap {
	return &Minimap{size: size}
}

// Render draws obstacles, enemies, the player and the camera view. Actors
// outside the arena are clamped to its edge.
func (m *Minimap) Render(screen *ebiten.Image, s *sim.Session, view geom.AABB, screenW, screenH float64) {
	arena := s.Config().Arena
	scale := m.size / max(arena.Width, arena.Height)
	ox := screenW - m.size - minimapMargin
	oy := screenH - m.size - minimapMargin

	// toMap converts a world point to minimap pixels, flipping y.
	toMap := func(p geom.Vec2) (float32, float32) {
		x := max(0, min(p.X, arena.Width))
		y := max(0, min(p.Y, arena.Height))
		return float32(ox + x*scale), float32(oy + (arena.Height-y)*scale)
	}
	rect := func(b geom.AABB, clr color.Color, filled bool) {
		x, y := toMap(geom.V(b.X, b.Top()))
		x1, y1 := toMap(geom.V(b.Right(), b.Y))
		w, h := x1-x, y1-y
		if filled {
			vector.DrawFilledRect(screen, x, y, w, h, clr, false)
		} else {
			vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
		}
	}

	vector.DrawFilledRect(screen, float32(ox), float32(oy),
		float32(arena.Width*scale), float32(arena.Height*scale), colorMinimapBackdrop, false)

	for _, ob := range s.Obstacles() {
		if ob.Collidable {
			rect(ob.Box, ColorFor(RoleWall), true)
		}
	}
	for _, e := range s.Enemies() {
		x, y := toMap(e.Position())
		radius := float32(2)
		role := RoleGrunt
		if e.Kind() == sim.KindBoss {
			radius, role = 4, RoleBoss
		}
		vector.DrawFilledCircle(screen, x, y, radius, ColorFor(role), true)
	}
	px, py := toMap(s.Player().Position())
	vector.DrawFilledCircle(screen, px, py, 3, ColorFor(RolePlayer), true)

	rect(view, colorMinimapView, false)
}
