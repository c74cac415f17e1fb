package sim

import "arenasurvivor/geom"

// Player is the user-controlled actor. Movement is velocity based: held
// intents accelerate it, friction slows it once every intent is released.
type Player struct {
	Body

	cfg   PlayerConfig
	arena ArenaConfig

	vel     geom.Vec2
	intents [DirRight + 1]bool
	state   PlayerState

	attacking   bool
	attackTimer float64

	hit      bool
	hitTimer float64

	// lastIdle is the facing restored when movement stops, lastMove the
	// direction of the most recent movement intent.
	lastIdle Direction
	lastMove Direction
}

// NewPlayer creates a player at pos facing the camera.
func NewPlayer(id EntityID, pos geom.Vec2, cfg PlayerConfig, arena ArenaConfig) *Player {
	return &Player{
		Body:  newBody(id, pos, cfg.Size, cfg.Size, cfg.Health),
		cfg:   cfg,
		arena: arena,
		state: IdleFront,
	}
}

func (p *Player) Velocity() geom.Vec2 { return p.vel }
func (p *Player) State() PlayerState { return p.state }
func (p *Player) Attacking() bool { return p.attacking }

// Alive reports whether the player still has health.
func (p *Player) Alive() bool { return p.health > 0 }

// Hit reports whether the post-damage invulnerability window is open, and
// how long it has been open.
func (p *Player) Hit() (bool, float64) { return p.hit, p.hitTimer }

// Intent reports whether the movement intent d is held.
func (p *Player) Intent(d Direction) bool {
	if d <= DirNone || d > DirRight {
		return false
	}
	return p.intents[d]
}

func (p *Player) anyIntent() bool {
	for _, d := range movementOrder {
		if p.intents[d] {
			return true
		}
	}
	return false
}

func (p *Player) heldDirection() Direction {
	for _, d := range movementOrder {
		if p.intents[d] {
			return d
		}
	}
	return DirNone
}

// ApplyMovementIntent holds intent d for this tick and accelerates along it.
// Holding a direction releases its opposite.
func (p *Player) ApplyMovementIntent(d Direction, dt float64) {
	if !p.Alive() || d == DirNone {
		return
	}
	p.intents[d] = true
	p.intents[d.Opposite()] = false

	step := p.cfg.Speed * p.cfg.Acceleration * dt
	switch d {
	case DirUp:
		p.vel.Y = min(p.vel.Y+step, p.cfg.MaxSpeed)
	case DirDown:
		p.vel.Y = max(p.vel.Y-step, -p.cfg.MaxSpeed)
	case DirRight:
		p.vel.X = min(p.vel.X+step, p.cfg.MaxSpeed)
	case DirLeft:
		p.vel.X = max(p.vel.X-step, -p.cfg.MaxSpeed)
	}

	if !p.attacking {
		p.state = walkState(d)
		p.lastIdle = d
		p.lastMove = d
	}
}

// ClearIntent releases intent d.
func (p *Player) ClearIntent(d Direction) {
	if d <= DirNone || d > DirRight {
		return
	}
	p.intents[d] = false
	p.deriveState()
}

// ClearAllIntents releases every movement intent.
func (p *Player) ClearAllIntents() {
	p.intents = [DirRight + 1]bool{}
	p.deriveState()
}

// deriveState picks the walk state of a still-held intent, or the idle state
// of the last facing. Attacks and death keep their state.
func (p *Player) deriveState() {
	if p.attacking || p.state == Die {
		return
	}
	if d := p.heldDirection(); d != DirNone {
		p.state = walkState(d)
		p.lastIdle = d
		p.lastMove = d
		return
	}
	p.state = idleState(p.lastIdle)
}

// Update advances timers and integrates motion by dt seconds.
func (p *Player) Update(dt float64) {
	if p.state == Die {
		return
	}

	if p.hit {
		p.hitTimer += dt
		if p.hitTimer >= p.cfg.HitFlashDuration {
			p.hit = false
			p.hitTimer = 0
		}
	}

	pos := p.pos.Add(p.vel.Scale(dt))

	if !p.anyIntent() {
		p.vel = p.vel.Scale(p.cfg.Friction)
		if p.vel.Len() < p.cfg.StopThreshold {
			p.vel = geom.Vec2{}
		}
	}

	// Keep the whole hitbox inside the arena
	halfW, halfH := p.w/2, p.h/2
	pos.X = clamp(pos.X, halfW, p.arena.Width-halfW)
	pos.Y = clamp(pos.Y, halfH, p.arena.Height-halfH)
	p.SetPosition(pos)

	if p.attacking {
		p.attackTimer += dt
		if p.attackTimer >= p.cfg.AttackDuration() {
			p.attacking = false
			p.attackTimer = 0
			p.deriveState()
		}
	}
}

// Attack starts a swing facing the held intent, else the last movement
// direction, else the last idle facing. It returns false while a swing is in
// progress or the player is dead.
func (p *Player) Attack() bool {
	if !p.Alive() || p.attacking {
		return false
	}
	dir := p.heldDirection()
	if dir == DirNone {
		dir = p.lastMove
	}
	if dir == DirNone {
		dir = p.lastIdle
	}
	if dir == DirNone {
		dir = DirDown
	}
	p.state = attackState(dir)
	p.attacking = true
	p.attackTimer = 0
	return true
}

// TakeDamage subtracts amount unless the hit window is open or the player is
// already dead. It reports whether the damage was applied.
func (p *Player) TakeDamage(amount int) bool {
	if p.hit || p.health <= 0 {
		return false
	}
	died := p.subtractHealth(amount)
	p.hit = true
	p.hitTimer = 0
	if died {
		p.die()
	}
	return true
}

// OnMelee applies melee damage through TakeDamage.
func (p *Player) OnMelee(damage int) {
	p.TakeDamage(damage)
}

func (p *Player) die() {
	p.intents = [DirRight + 1]bool{}
	p.attacking = false
	p.attackTimer = 0
	p.vel = geom.Vec2{}
	p.state = Die
}

// StopVelocity zeroes the velocity component on the given axis when it points
// in direction sign.
func (p *Player) StopVelocity(horizontal bool, sign float64) {
	if horizontal {
		if p.vel.X*sign > 0 {
			p.vel.X = 0
		}
		return
	}
	if p.vel.Y*sign > 0 {
		p.vel.Y = 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return max(lo, min(v, hi))
}
