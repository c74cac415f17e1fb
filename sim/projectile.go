package sim

import "arenasurvivor/geom"

// Arrow is a straight-flying projectile that damages the player once.
type Arrow struct {
	id     EntityID
	pos    geom.Vec2
	vel    geom.Vec2
	box    geom.AABB
	age    float64
	damage int
	active bool
	cfg    ArrowConfig
}

// NewArrowToward launches an arrow from start at the configured speed toward
// target. Coincident points produce a motionless arrow that expires with its
// lifetime.
func NewArrowToward(id EntityID, start, target geom.Vec2, damage int, cfg ArrowConfig) *Arrow {
	vel := target.Sub(start).Normalize().Scale(cfg.Speed)
	return NewArrow(id, start, vel, damage, cfg)
}

// NewArrow launches an arrow from start with an explicit velocity.
func NewArrow(id EntityID, start, vel geom.Vec2, damage int, cfg ArrowConfig) *Arrow {
	return &Arrow{
		id:     id,
		pos:    start,
		vel:    vel,
		box:    geom.Centered(start, cfg.Size, cfg.Size),
		damage: damage,
		active: true,
		cfg:    cfg,
	}
}

func (a *Arrow) ID() EntityID { return a.id }
func (a *Arrow) Position() geom.Vec2 { return a.pos }
func (a *Arrow) Velocity() geom.Vec2 { return a.vel }
func (a *Arrow) Bounds() geom.AABB { return a.box }

// Active reports whether the arrow is still in flight.
func (a *Arrow) Active() bool { return a.active }

// Update moves the arrow and retires it once it leaves the culling bounds or
// outlives its lifetime.
func (a *Arrow) Update(dt float64) {
	if !a.active {
		return
	}
	a.age += dt
	a.pos = a.pos.Add(a.vel.Scale(dt))
	a.box = geom.Centered(a.pos, a.cfg.Size, a.cfg.Size)

	b := a.cfg.Bounds
	if a.pos.X < b.X || a.pos.Y < b.Y || a.pos.X > b.Right() || a.pos.Y > b.Top() {
		a.active = false
		return
	}
	if a.age >= a.cfg.MaxLifetime {
		a.active = false
	}
}

// CheckCollision damages t if the arrow overlaps it. An arrow hits at most
// once: it deactivates on contact even if t ignored the damage. damaged
// reports whether t accepted the damage.
func (a *Arrow) CheckCollision(t Target) (hit, damaged bool) {
	if !a.active || !a.box.Overlaps(t.Bounds()) {
		return false, false
	}
	a.active = false
	return true, t.TakeDamage(a.damage)
}

// Damage is what the arrow deals on contact.
func (a *Arrow) Damage() int { return a.damage }
