package sim

import "arenasurvivor/geom"

// EnemyKind is the closed set of enemy variants.
type EnemyKind int

const (
	KindBasic EnemyKind = iota // Melee grunt that chases and swarms the player
	KindBoss                   // Slow, heavy hitter summoned by the director
	kindCount
)

func (k EnemyKind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Field is the part of the session an enemy sees while it updates.
type Field interface {
	// Target is the actor enemies chase and damage.
	Target() Target

	// Enemies is the live roster in list order, including the caller.
	Enemies() []*Enemy

	// Emit forwards a combat event to the session's sinks.
	Emit(ev Event)
}

// behavior is the per-kind dispatch row. Every kind fills every column.
type behavior struct {
	update     func(e *Enemy, dt float64, f Field)
	takeDamage func(e *Enemy, amount int) bool
	alive      func(e *Enemy) bool
}

// behaviors is filled in init because the update functions dispatch back
// through Enemy methods that read it.
var behaviors [kindCount]behavior

func init() {
	behaviors = [kindCount]behavior{
		KindBasic: {update: updateBasic, takeDamage: damageBasic, alive: basicAlive},
		KindBoss:  {update: updateBoss, takeDamage: damageBoss, alive: bossAlive},
	}
}

// Enemy is the shared record for every enemy kind. Fields that only one kind
// uses are grouped and left zero for the other.
type Enemy struct {
	Body

	kind   EnemyKind
	facing geom.Vec2

	// dying is set when health reaches zero. deathTimer measures the death
	// animation from that moment.
	dying      bool
	deathTimer float64

	// BasicEnemy
	basic       BasicEnemyConfig
	attackAccum float64

	// FinalBoss
	boss        BossConfig
	phase       BossPhase
	phaseTimer  float64
	attackTimer float64
	cooldown    float64
}

func (e *Enemy) Kind() EnemyKind { return e.kind }

// Facing is the unit direction the enemy last moved or looked in.
func (e *Enemy) Facing() geom.Vec2 { return e.facing }

// Dying reports whether the death animation is running.
func (e *Enemy) Dying() bool { return e.dying }

// Alive reports whether the enemy should stay in the session roster.
func (e *Enemy) Alive() bool {
	return behaviors[e.kind].alive(e)
}

// Update runs the kind's behavior for dt seconds.
func (e *Enemy) Update(dt float64, f Field) {
	behaviors[e.kind].update(e, dt, f)
}

// TakeDamage applies amount through the kind's damage rule and reports
// whether it was accepted.
func (e *Enemy) TakeDamage(amount int) bool {
	return behaviors[e.kind].takeDamage(e, amount)
}

// OnMelee applies a melee hit.
func (e *Enemy) OnMelee(damage int) {
	e.TakeDamage(damage)
}

// HealthFraction is health over max health, for health bars.
func (e *Enemy) HealthFraction() float64 {
	if e.maxHealth <= 0 {
		return 0
	}
	return float64(e.health) / float64(e.maxHealth)
}

// DeathProgress is how far the death animation has run, from 0 to 1.
func (e *Enemy) DeathProgress() float64 {
	if !e.dying && e.health > 0 {
		return 0
	}
	total := e.basic.DeathDuration
	if e.kind == KindBoss {
		total = e.boss.DeathDuration
	}
	if total <= 0 {
		return 1
	}
	return min(e.deathTimer/total, 1)
}

// chase returns the unit direction from the enemy to the target.
func (e *Enemy) chase(t Target) geom.Vec2 {
	return t.Position().Sub(e.pos).Normalize()
}
