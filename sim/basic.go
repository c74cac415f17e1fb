package sim

import "arenasurvivor/geom"

// cooldownEpsilon absorbs rounding in summed frame deltas.
const cooldownEpsilon = 1e-9

// NewBasicEnemy creates a grunt at pos.
func NewBasicEnemy(id EntityID, pos geom.Vec2, cfg BasicEnemyConfig) *Enemy {
	return &Enemy{
		Body:  newBody(id, pos, cfg.Size, cfg.Size, cfg.Health),
		kind:  KindBasic,
		basic: cfg,
	}
}

func basicAlive(e *Enemy) bool {
	return e.health > 0
}

// updateBasic chases the target, sidesteps the first crowding neighbor and
// hits whenever the in-range cooldown elapses. A dead grunt only advances its
// death animation.
func updateBasic(e *Enemy, dt float64, f Field) {
	if e.health <= 0 {
		if e.dying {
			e.deathTimer += dt
		}
		return
	}

	target := f.Target()
	dir := e.chase(target)
	step := e.basic.Speed * dt
	next := e.pos.Add(dir.Scale(step))

	for _, other := range f.Enemies() {
		if other == e || !other.Alive() {
			continue
		}
		if next.Dist(other.pos) < e.basic.SeparationRadius {
			away := other.pos.Sub(e.pos).Normalize().Scale(-1)
			dir = dir.Add(away).Normalize()
			next = e.pos.Add(dir.Scale(step))
			break
		}
	}

	if !dir.IsZero() {
		e.facing = dir
	}
	e.SetPosition(next)

	// The cooldown only accumulates while the target is in reach
	if e.pos.Dist(target.Position()) > e.basic.AttackRadius {
		return
	}
	e.attackAccum += dt
	if e.attackAccum < e.basic.AttackCooldown-cooldownEpsilon {
		return
	}
	// Carry the overshoot so the cadence does not drift with the frame rate
	e.attackAccum = max(e.attackAccum-e.basic.AttackCooldown, 0)
	if target.TakeDamage(e.basic.ContactDamage) {
		f.Emit(Event{Kind: EventPlayerHurt, Source: e.id, Enemy: e.kind, Pos: target.Position(), Amount: e.basic.ContactDamage})
	}
}

func damageBasic(e *Enemy, amount int) bool {
	if e.health <= 0 {
		return false
	}
	if e.subtractHealth(amount) {
		e.dying = true
		e.deathTimer = 0
	}
	return true
}
