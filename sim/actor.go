package sim

import "arenasurvivor/geom"

// EntityID identifies an actor within one session. IDs are handed out by the
// session that owns the actor, so two sessions never share a counter.
type EntityID uint64

// InvalidEntityID is never assigned to an actor.
const InvalidEntityID EntityID = 0

// idSource hands out increasing entity IDs.
type idSource struct {
	next EntityID
}

func (s *idSource) generate() EntityID {
	s.next++
	return s.next
}

// Actor is the contract shared by the player and every enemy kind.
type Actor interface {
	ID() EntityID
	Position() geom.Vec2
	Bounds() geom.AABB
	Health() int
	Alive() bool
	Update(dt float64)
	OnMelee(damage int)
}

// Collider is what the collision engine needs to push an actor around.
type Collider interface {
	Position() geom.Vec2
	SetPosition(p geom.Vec2)
	Bounds() geom.AABB
}

// velocityStopper is implemented by colliders that carry velocity. sign is the
// direction (+1/-1) of motion that points into the obstacle.
type velocityStopper interface {
	StopVelocity(horizontal bool, sign float64)
}

// Target is anything an enemy or projectile can damage.
type Target interface {
	Position() geom.Vec2
	Bounds() geom.AABB
	TakeDamage(amount int) bool
}

// Body is the record every actor embeds: identity, a centered hitbox and
// health. The box is recomputed on every position change.
type Body struct {
	id        EntityID
	pos       geom.Vec2
	w, h      float64
	box       geom.AABB
	health    int
	maxHealth int
}

func newBody(id EntityID, pos geom.Vec2, w, h float64, health int) Body {
	return Body{
		id:        id,
		pos:       pos,
		w:         w,
		h:         h,
		box:       geom.Centered(pos, w, h),
		health:    health,
		maxHealth: health,
	}
}

func (b *Body) ID() EntityID { return b.id }
func (b *Body) Position() geom.Vec2 { return b.pos }
func (b *Body) Bounds() geom.AABB { return b.box }
func (b *Body) Health() int { return b.health }
func (b *Body) MaxHealth() int { return b.maxHealth }
func (b *Body) DistanceTo(p geom.Vec2) float64 { return b.pos.Dist(p) }

// SetPosition moves the body and re-centers its hitbox.
func (b *Body) SetPosition(p geom.Vec2) {
	b.pos = p
	b.box = geom.Centered(p, b.w, b.h)
}

// subtractHealth removes amount and clamps at zero. It reports whether the
// body reached zero with this call.
func (b *Body) subtractHealth(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	b.health -= amount
	if b.health <= 0 {
		b.health = 0
		return true
	}
	return false
}
