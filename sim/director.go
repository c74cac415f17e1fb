package sim

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"arenasurvivor/geom"
)

// Host is what the director needs from the session it paces.
type Host interface {
	PlayerPosition() geom.Vec2
	LiveEnemies() int

	// Blocked reports whether box overlaps a collidable obstacle.
	Blocked(box geom.AABB) bool

	SpawnEnemy(kind EnemyKind, pos geom.Vec2)
	FireArrow(from, to geom.Vec2)
}

// Objective is the current goal shown to the player.
type Objective int

const (
	ObjectiveClearBasics Objective = iota
	ObjectiveDefeatBoss
	ObjectiveComplete
)

func (o Objective) String() string {
	switch o {
	case ObjectiveClearBasics:
		return "clear_basics"
	case ObjectiveDefeatBoss:
		return "defeat_boss"
	default:
		return "complete"
	}
}

// Director paces the encounter: it spawns grunts on the view perimeter,
// counts kills, summons the boss once and reports objective progress.
type Director struct {
	cfg DirectorConfig
	rng *rand.Rand
	log zerolog.Logger

	spawnTimer float64
	arrowTimer float64

	kills        int
	bossSpawned  bool
	bossDefeated bool
}

// NewDirector creates a director drawing from rng.
func NewDirector(cfg DirectorConfig, rng *rand.Rand, log zerolog.Logger) *Director {
	return &Director{cfg: cfg, rng: rng, log: log}
}

// Kills is the number of grunts removed so far.
func (d *Director) Kills() int { return d.kills }
func (d *Director) BossSpawned() bool { return d.bossSpawned }
func (d *Director) BossDefeated() bool { return d.bossDefeated }

// KillThreshold is the grunt kill count that summons the boss.
func (d *Director) KillThreshold() int { return d.cfg.BossKillThreshold }

// Objective reports which stage of the encounter is running.
func (d *Director) Objective() Objective {
	switch {
	case d.bossDefeated:
		return ObjectiveComplete
	case d.bossSpawned:
		return ObjectiveDefeatBoss
	default:
		return ObjectiveClearBasics
	}
}

// Progress is the fraction of the current objective completed, in [0, 1].
func (d *Director) Progress() float64 {
	switch d.Objective() {
	case ObjectiveComplete:
		return 1
	case ObjectiveDefeatBoss:
		return 0
	default:
		if d.cfg.BossKillThreshold <= 0 {
			return 1
		}
		return min(float64(d.kills)/float64(d.cfg.BossKillThreshold), 1)
	}
}

// Start populates the arena with the initial grunts.
func (d *Director) Start(h Host) {
	center := h.PlayerPosition()
	for i := 0; i < d.cfg.InitialEnemies; i++ {
		h.SpawnEnemy(KindBasic, d.spawnPoint(center))
	}
}

// RecordDeath tallies a removed enemy.
func (d *Director) RecordDeath(kind EnemyKind) {
	switch kind {
	case KindBasic:
		d.kills++
		d.log.Debug().Int("kills", d.kills).Msg("grunt killed")
	case KindBoss:
		d.bossDefeated = true
	}
}

// Update advances the spawn clocks by dt and spawns into h.
func (d *Director) Update(dt float64, h Host) {
	if !d.bossSpawned {
		d.spawnTimer += dt
		if d.spawnTimer >= d.cfg.SpawnInterval && h.LiveEnemies() < d.cfg.MaxEnemies {
			h.SpawnEnemy(KindBasic, d.spawnPoint(h.PlayerPosition()))
			d.spawnTimer = 0
		}

		if d.kills >= d.cfg.BossKillThreshold {
			pos := d.placeBoss(h)
			h.SpawnEnemy(KindBoss, pos)
			d.bossSpawned = true
			d.log.Info().Int("kills", d.kills).Float64("x", pos.X).Float64("y", pos.Y).Msg("boss summoned")
		}
	}

	if d.cfg.ArrowInterval > 0 && !d.bossDefeated {
		d.arrowTimer += dt
		if d.arrowTimer >= d.cfg.ArrowInterval {
			d.arrowTimer = 0
			player := h.PlayerPosition()
			h.FireArrow(d.spawnPoint(player), player)
		}
	}
}

// spawnPoint picks a uniform point on one of the four bands just outside the
// view rectangle centered on center.
func (d *Director) spawnPoint(center geom.Vec2) geom.Vec2 {
	hw, hh := d.cfg.ViewWidth/2, d.cfg.ViewHeight/2
	dist := d.cfg.SpawnDistance

	switch d.rng.Intn(4) {
	case 0: // top
		return geom.V(center.X-hw+d.rng.Float64()*2*hw, center.Y+hh+dist)
	case 1: // right
		return geom.V(center.X+hw+dist, center.Y-hh+d.rng.Float64()*2*hh)
	case 2: // bottom
		return geom.V(center.X-hw+d.rng.Float64()*2*hw, center.Y-hh-dist)
	default: // left
		return geom.V(center.X-hw-dist, center.Y-hh+d.rng.Float64()*2*hh)
	}
}

// placeBoss probes random points on a circle around the player for a clear
// spot, falling back to a fixed offset when every attempt is blocked.
func (d *Director) placeBoss(h Host) geom.Vec2 {
	player := h.PlayerPosition()
	probe := d.cfg.BossProbeSize
	for i := 0; i < d.cfg.BossPlacementAttempts; i++ {
		angle := d.rng.Float64() * 2 * math.Pi
		candidate := player.Add(geom.FromAngle(angle).Scale(d.cfg.BossSpawnRadius))
		if !h.Blocked(geom.Centered(candidate, probe, probe)) {
			return candidate
		}
		d.log.Debug().Int("attempt", i+1).Msg("boss placement blocked")
	}
	return player.Add(d.cfg.BossFallbackOffset)
}
