package sim

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"arenasurvivor/geom"
)

// Input is the intent sampled by the host for one tick. Attack is an edge:
// the host sets it only on the tick the button went down.
type Input struct {
	Up, Down, Left, Right bool
	Attack                bool
}

// Held reports whether the movement key for d is down.
func (in Input) Held(d Direction) bool {
	switch d {
	case DirUp:
		return in.Up
	case DirDown:
		return in.Down
	case DirLeft:
		return in.Left
	case DirRight:
		return in.Right
	default:
		return false
	}
}

// Outcome is the session's terminal state, if any.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomePlayerDead
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerDead:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	default:
		return "running"
	}
}

// Option customizes a Session at construction.
type Option func(*Session)

// WithLogger sets the logger. The session adds its ID as a field.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithEvents sets the sink that receives combat events.
func WithEvents(sink EventSink) Option {
	return func(s *Session) {
		if sink != nil {
			s.events = sink
		}
	}
}

// WithSpawn places the player at pos instead of the arena center.
func WithSpawn(pos geom.Vec2) Option {
	return func(s *Session) { s.spawn = pos }
}

// WithRand replaces the random source seeded from the director config.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// Session owns every actor of one play-through and advances them in a fixed
// order each tick. It is not safe for concurrent use; separate sessions are
// independent.
type Session struct {
	ID uuid.UUID

	cfg    Config
	log    zerolog.Logger
	events EventSink
	rng    *rand.Rand
	ids    idSource
	spawn  geom.Vec2

	player  *Player
	enemies []*Enemy
	boss    *Enemy
	arrows  []*Arrow

	collisions *CollisionSystem
	director   *Director

	attackCooldown float64
	elapsed        float64
	ticks          uint64
	outcome        Outcome
}

// NewSession validates cfg and builds a session over a fixed obstacle set,
// spawning the player and the director's initial grunts.
func NewSession(cfg Config, obstacles []Obstacle, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		ID:     uuid.New(),
		cfg:    cfg,
		log:    zerolog.Nop(),
		events: nopSink{},
		spawn:  geom.V(cfg.Arena.Width/2, cfg.Arena.Height/2),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(cfg.Director.Seed))
	}
	s.log = s.log.With().Str("session", s.ID.String()).Logger()

	s.collisions = NewCollisionSystem(obstacles, cfg.Combat.ResolveBuffer)
	s.player = NewPlayer(s.ids.generate(), s.spawn, cfg.Player, cfg.Arena)
	s.director = NewDirector(cfg.Director, s.rng, s.log)
	s.director.Start(s)

	s.log.Info().
		Int("obstacles", len(obstacles)).
		Int("enemies", len(s.enemies)).
		Float64("spawn_x", s.spawn.X).
		Float64("spawn_y", s.spawn.Y).
		Msg("session started")
	return s, nil
}

func (s *Session) Config() Config { return s.cfg }
func (s *Session) Player() *Player { return s.player }
func (s *Session) Arrows() []*Arrow { return s.arrows }
func (s *Session) Obstacles() []Obstacle { return s.collisions.Obstacles() }
func (s *Session) Director() *Director { return s.director }
func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) Elapsed() float64 { return s.elapsed }
func (s *Session) Ticks() uint64 { return s.ticks }
func (s *Session) AttackCooldown() float64 { return s.attackCooldown }

// Enemies is the live roster in update order. Callers must not modify it.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Boss returns the boss while it is in the roster, nil otherwise.
func (s *Session) Boss() *Enemy { return s.boss }

// Target is the actor enemies chase.
func (s *Session) Target() Target { return s.player }

// Emit forwards ev to the event sink.
func (s *Session) Emit(ev Event) { s.events.Notify(ev) }

// Step advances the session by dt seconds. Once an outcome is reached the
// session is frozen and Step does nothing.
func (s *Session) Step(dt float64, in Input) {
	if s.outcome != OutcomeRunning || dt <= 0 {
		return
	}
	s.ticks++
	s.elapsed += dt

	s.stepPlayer(dt, in)
	s.stepEnemies(dt)
	s.stepArrows(dt)
	s.removeDead()
	s.director.Update(dt, s)
	s.evaluateOutcome()
}

func (s *Session) stepPlayer(dt float64, in Input) {
	s.attackCooldown = max(s.attackCooldown-dt, 0)
	p := s.player

	if p.Alive() {
		if push, stuck := s.collisions.Unstuck(p); stuck {
			s.log.Debug().Float64("dx", push.X).Float64("dy", push.Y).Msg("player unstuck")
		}
		for _, d := range movementOrder {
			if in.Held(d) {
				p.ApplyMovementIntent(d, dt)
			} else if p.Intent(d) {
				p.ClearIntent(d)
			}
		}
	}

	p.Update(dt)
	if p.Alive() {
		s.collisions.Resolve(p)
	}

	if in.Attack && s.attackCooldown <= 0 {
		s.meleeAttack()
	}
}

// meleeAttack swings the sword and damages every live enemy within reach.
func (s *Session) meleeAttack() {
	p := s.player
	if !p.Attack() {
		return
	}
	s.attackCooldown = s.cfg.Player.MeleeCooldown
	s.Emit(Event{Kind: EventAttackIssued, Source: p.id, Pos: p.pos})

	damage := s.cfg.Combat.MeleeDamage
	for _, e := range s.enemies {
		if !e.Alive() || e.DistanceTo(p.pos) > s.cfg.Player.MeleeRange {
			continue
		}
		if e.TakeDamage(damage) {
			s.Emit(Event{Kind: EventHitLanded, Source: e.id, Enemy: e.kind, Pos: e.pos, Amount: damage})
		}
	}
}

func (s *Session) stepEnemies(dt float64) {
	for _, e := range s.enemies {
		e.Update(dt, s)
		if !e.Alive() {
			continue
		}
		if e.kind == KindBoss && s.cfg.Boss.IgnoreObstacles {
			continue
		}
		s.collisions.Resolve(e)
	}
}

func (s *Session) stepArrows(dt float64) {
	live := s.arrows[:0]
	for _, a := range s.arrows {
		a.Update(dt)
		if hit, damaged := a.CheckCollision(s.player); hit && damaged {
			s.Emit(Event{Kind: EventPlayerHurt, Source: a.id, Pos: s.player.pos, Amount: a.damage})
		}
		if a.Active() {
			live = append(live, a)
		}
	}
	clear(s.arrows[len(live):])
	s.arrows = live
}

// removeDead compacts the roster and tallies every enemy that left it.
func (s *Session) removeDead() {
	live := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Alive() {
			live = append(live, e)
			continue
		}
		s.director.RecordDeath(e.kind)
		switch e.kind {
		case KindBoss:
			s.boss = nil
			s.Emit(Event{Kind: EventBossDefeated, Source: e.id, Enemy: e.kind, Pos: e.pos})
			s.log.Info().Float64("elapsed", s.elapsed).Msg("boss defeated")
		default:
			s.Emit(Event{Kind: EventEnemyKilled, Source: e.id, Enemy: e.kind, Pos: e.pos})
		}
	}
	clear(s.enemies[len(live):])
	s.enemies = live
}

func (s *Session) evaluateOutcome() {
	switch {
	case !s.player.Alive():
		s.outcome = OutcomePlayerDead
		s.Emit(Event{Kind: EventPlayerDied, Source: s.player.id, Pos: s.player.pos})
	case s.director.BossDefeated():
		s.outcome = OutcomeVictory
	default:
		return
	}
	s.log.Info().
		Str("outcome", s.outcome.String()).
		Int("kills", s.director.Kills()).
		Float64("elapsed", s.elapsed).
		Uint64("ticks", s.ticks).
		Msg("session ended")
}

// PlayerPosition implements Host.
func (s *Session) PlayerPosition() geom.Vec2 { return s.player.pos }

// LiveEnemies implements Host.
func (s *Session) LiveEnemies() int { return len(s.enemies) }

// Blocked implements Host.
func (s *Session) Blocked(box geom.AABB) bool { return s.collisions.Blocked(box) }

// SpawnEnemy adds an enemy of kind at pos to the end of the roster.
func (s *Session) SpawnEnemy(kind EnemyKind, pos geom.Vec2) {
	var e *Enemy
	switch kind {
	case KindBoss:
		e = NewFinalBoss(s.ids.generate(), pos, s.cfg.Boss)
		s.boss = e
		s.Emit(Event{Kind: EventBossSpawned, Source: e.id, Enemy: kind, Pos: pos})
	default:
		e = NewBasicEnemy(s.ids.generate(), pos, s.cfg.Basic)
	}
	s.enemies = append(s.enemies, e)
	s.log.Debug().Str("kind", kind.String()).Uint64("id", uint64(e.id)).
		Float64("x", pos.X).Float64("y", pos.Y).Msg("enemy spawned")
}

// FireArrow launches an arrow from one point toward another.
func (s *Session) FireArrow(from, to geom.Vec2) {
	a := NewArrowToward(s.ids.generate(), from, to, s.cfg.Combat.ArrowDamage, s.cfg.Arrow)
	s.arrows = append(s.arrows, a)
	s.Emit(Event{Kind: EventArrowFired, Source: a.id, Pos: from})
}
