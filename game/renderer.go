package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenasurvivor/geom"
	"arenasurvivor/sim"
)

// blinkRate is how many times per second a hit player toggles visibility.
const blinkRate = 12.0

// Renderer draws the world through a camera. Actors without a sprite are
// drawn as flat rectangles.
type Renderer struct {
	camera  *Camera
	sprites *Sprites
}

// NewRenderer creates a renderer for camera. sprites may be nil.
func NewRenderer(camera *Camera, sprites *Sprites) *Renderer {
	if sprites == nil {
		sprites = &Sprites{}
	}
	return &Renderer{camera: camera, sprites: sprites}
}

// Render draws the arena, obstacles, arrows, enemies and the player.
func (r *Renderer) Render(screen *ebiten.Image, s *sim.Session, debug DebugState) {
	cfg := s.Config()
	r.fillBox(screen, geom.AABB{W: cfg.Arena.Width, H: cfg.Arena.Height}, colorArenaFloor)

	for _, ob := range s.Obstacles() {
		if !r.camera.Visible(ob.Box) {
			continue
		}
		role := RoleDecor
		if ob.Collidable {
			role = RoleWall
		}
		r.fillBox(screen, ob.Box, ColorFor(role))
		if debug.ShowHitboxes && ob.Collidable {
			r.strokeBox(screen, ob.Box, ColorFor(RoleHitbox))
		}
	}

	for _, a := range s.Arrows() {
		r.renderArrow(screen, a)
		if debug.ShowHitboxes {
			r.strokeBox(screen, a.Bounds(), ColorFor(RoleHitbox))
		}
	}

	for _, e := range s.Enemies() {
		if !r.camera.Visible(e.Bounds()) {
			continue
		}
		r.renderEnemy(screen, e, cfg.Boss)
		if debug.ShowHitboxes {
			r.strokeBox(screen, e.Bounds(), ColorFor(RoleHitbox))
		}
	}

	p := s.Player()
	r.renderPlayer(screen, p, cfg.Player)
	if debug.ShowHitboxes {
		r.strokeBox(screen, p.Bounds(), ColorFor(RoleHitbox))
		r.strokeCircle(screen, p.Position(), cfg.Player.MeleeRange, ColorFor(RoleSwing))
	}
}

func (r *Renderer) renderPlayer(screen *ebiten.Image, p *sim.Player, cfg sim.PlayerConfig) {
	if hit, t := p.Hit(); hit && int(t*blinkRate)%2 == 1 {
		return
	}
	alpha := 1.0
	if !p.Alive() {
		alpha = 0.4
	}
	r.drawBody(screen, r.sprites.Player, p.Bounds(), ColorFor(RolePlayer), alpha)

	// Facing marker, extended to the full reach while swinging
	dir := directionVector(p.State().Facing())
	reach := cfg.Size / 2
	width := float32(2)
	if p.Attacking() {
		reach = cfg.MeleeRange
		width = 4
	}
	r.line(screen, p.Position(), p.Position().Add(dir.Scale(reach)), width, ColorFor(RoleSwing))
}

func (r *Renderer) renderEnemy(screen *ebiten.Image, e *sim.Enemy, boss sim.BossConfig) {
	var (
		clr    color.RGBA
		sprite *ebiten.Image
		windup float64
	)
	alpha := 1.0
	switch e.Kind() {
	case sim.KindBoss:
		clr, sprite = ColorFor(RoleBoss), r.sprites.Boss
		switch e.Phase() {
		case sim.BossAttacking:
			// The wind-up glow grows until the strike lands
			windup = 1
			if boss.AttackDuration > 0 {
				windup = min(e.PhaseTime()/boss.AttackDuration, 1)
			}
		case sim.BossDying:
			alpha = 1 - e.DeathProgress()
		}
	default:
		clr, sprite = ColorFor(RoleGrunt), r.sprites.Grunt
		if e.Dying() || e.Health() <= 0 {
			alpha = 1 - e.DeathProgress()
		}
	}
	r.drawBody(screen, sprite, e.Bounds(), clr, alpha)
	if windup > 0 {
		r.fillBox(screen, e.Bounds(), fade(ColorFor(RoleBossWindup), windup*0.5))
	}

	if f := e.Facing(); !f.IsZero() {
		b := e.Bounds()
		r.line(screen, e.Position(), e.Position().Add(f.Scale(b.W*0.6)), 2, fade(clr, 0.8*alpha))
	}

	if e.Health() > 0 && e.Health() < e.MaxHealth() {
		b := e.Bounds()
		x, y, w, _ := r.camera.ScreenRect(b)
		frac := e.HealthFraction()
		vector.DrawFilledRect(screen, float32(x), float32(y-6), float32(w), 3, colorBarBack, false)
		vector.DrawFilledRect(screen, float32(x), float32(y-6), float32(w*frac), 3, healthColor(frac), false)
	}
}

func (r *Renderer) renderArrow(screen *ebiten.Image, a *sim.Arrow) {
	tail := a.Position().Sub(a.Velocity().Normalize().Scale(a.Bounds().W / 2))
	r.line(screen, tail, a.Position(), 2, ColorFor(RoleArrow))
}

// drawBody draws an actor's sprite stretched over box, or a flat box of clr
// when there is no sprite, at the given opacity.
func (r *Renderer) drawBody(screen *ebiten.Image, sprite *ebiten.Image, box geom.AABB, clr color.RGBA, alpha float64) {
	if sprite == nil {
		r.fillBox(screen, box, fade(clr, alpha))
		return
	}
	x, y, w, h := r.camera.ScreenRect(box)
	bounds := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

func (r *Renderer) fillBox(screen *ebiten.Image, b geom.AABB, clr color.Color) {
	x, y, w, h := r.camera.ScreenRect(b)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (r *Renderer) strokeBox(screen *ebiten.Image, b geom.AABB, clr color.Color) {
	x, y, w, h := r.camera.ScreenRect(b)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

func (r *Renderer) strokeCircle(screen *ebiten.Image, center geom.Vec2, radius float64, clr color.Color) {
	x, y := r.camera.WorldToScreen(center)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius*r.camera.Zoom), 1, clr, true)
}

func (r *Renderer) line(screen *ebiten.Image, from, to geom.Vec2, width float32, clr color.Color) {
	x0, y0 := r.camera.WorldToScreen(from)
	x1, y1 := r.camera.WorldToScreen(to)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

// directionVector maps a facing to a world-space unit vector.
func directionVector(d sim.Direction) geom.Vec2 {
	switch d {
	case sim.DirUp:
		return geom.V(0, 1)
	case sim.DirDown:
		return geom.V(0, -1)
	case sim.DirLeft:
		return geom.V(-1, 0)
	case sim.DirRight:
		return geom.V(1, 0)
	default:
		return geom.Vec2{}
	}
}
