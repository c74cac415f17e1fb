package sim

import "arenasurvivor/geom"

// BossPhase is the final boss state machine.
type BossPhase int

const (
	BossApproach BossPhase = iota
	BossAttacking
	BossDying
)

func (p BossPhase) String() string {
	switch p {
	case BossApproach:
		return "APPROACH"
	case BossAttacking:
		return "ATTACKING"
	case BossDying:
		return "DYING"
	default:
		return "UNKNOWN"
	}
}

// NewFinalBoss creates the boss at pos, ready to strike on first contact.
func NewFinalBoss(id EntityID, pos geom.Vec2, cfg BossConfig) *Enemy {
	return &Enemy{
		Body:  newBody(id, pos, cfg.Size, cfg.Size, cfg.Health),
		kind:  KindBoss,
		boss:  cfg,
		phase: BossApproach,
	}
}

// Phase returns the boss phase. It is always BossApproach for other kinds.
func (e *Enemy) Phase() BossPhase { return e.phase }

// PhaseTime is how long the current phase has lasted.
func (e *Enemy) PhaseTime() float64 { return e.phaseTimer }

// bossAlive keeps the boss in the roster until its death animation is over.
func bossAlive(e *Enemy) bool {
	return e.health > 0 || e.dying
}

func (e *Enemy) enterPhase(p BossPhase) {
	e.phase = p
	e.phaseTimer = 0
	e.attackTimer = 0
}

func updateBoss(e *Enemy, dt float64, f Field) {
	e.phaseTimer += dt
	e.cooldown = max(e.cooldown-dt, 0)

	if e.phase == BossDying {
		if e.dying {
			e.deathTimer += dt
			if e.deathTimer >= e.boss.DeathDuration {
				e.dying = false
			}
		}
		return
	}

	target := f.Target()
	if dir := e.chase(target); !dir.IsZero() {
		e.facing = dir
	}

	// Movement stops for the wind-up
	if e.phase == BossApproach {
		e.SetPosition(e.pos.Add(e.facing.Scale(e.boss.Speed * dt)))
	}
	dist := e.pos.Dist(target.Position())

	switch e.phase {
	case BossAttacking:
		e.attackTimer += dt
		if e.attackTimer < e.boss.AttackDuration {
			return
		}
		if dist <= e.boss.StrikeRange && target.TakeDamage(e.boss.StrikeDamage) {
			f.Emit(Event{Kind: EventPlayerHurt, Source: e.id, Enemy: e.kind, Pos: target.Position(), Amount: e.boss.StrikeDamage})
		}
		e.enterPhase(BossApproach)
	case BossApproach:
		if dist <= e.boss.StrikeRange && e.cooldown <= 0 {
			e.enterPhase(BossAttacking)
			e.cooldown = e.boss.AttackInterval
			f.Emit(Event{Kind: EventBossWindup, Source: e.id, Enemy: e.kind, Pos: e.pos})
		}
	}
}

func damageBoss(e *Enemy, amount int) bool {
	if e.phase == BossDying || e.health <= 0 {
		return false
	}
	if e.subtractHealth(amount) {
		e.enterPhase(BossDying)
		e.dying = true
		e.deathTimer = 0
	}
	return true
}
