package sim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"arenasurvivor/geom"
)

// Config holds every tuning constant of a session. Durations are seconds,
// distances are world units, speeds are world units per second.
type Config struct {
	Arena    ArenaConfig      `yaml:"arena"`
	Player   PlayerConfig     `yaml:"player"`
	Basic    BasicEnemyConfig `yaml:"basic_enemy"`
	Boss     BossConfig       `yaml:"boss"`
	Arrow    ArrowConfig      `yaml:"arrow"`
	Director DirectorConfig   `yaml:"director"`
	Combat   CombatConfig     `yaml:"combat"`
}

// ArenaConfig describes the playable rectangle anchored at the origin.
type ArenaConfig struct {
	// Width of the arena in world units
	Width float64 `yaml:"width"`

	// Height of the arena in world units
	Height float64 `yaml:"height"`
}

// PlayerConfig holds the player controller tuning.
type PlayerConfig struct {
	// Size is the side of the square hitbox centered on the player
	Size float64 `yaml:"size"`

	Health int `yaml:"health"`

	// Speed scales the per-tick velocity change (Speed * Acceleration * dt)
	Speed float64 `yaml:"speed"`

	// Acceleration multiplies Speed when an intent is held
	Acceleration float64 `yaml:"acceleration"`

	// MaxSpeed clamps each velocity component
	MaxSpeed float64 `yaml:"max_speed"`

	// Friction is the per-tick velocity multiplier applied with no intent held
	Friction float64 `yaml:"friction"`

	// StopThreshold is the speed below which velocity snaps to zero
	StopThreshold float64 `yaml:"stop_threshold"`

	// HitFlashDuration is the invulnerability window after taking damage
	HitFlashDuration float64 `yaml:"hit_flash_duration"`

	// AttackFrames and FrameDuration define the attack lock (frames * duration)
	AttackFrames  int     `yaml:"attack_frames"`
	FrameDuration float64 `yaml:"frame_duration"`

	// MeleeRange is the reach of the sword sweep measured center to center
	MeleeRange float64 `yaml:"melee_range"`

	// MeleeCooldown gates how often the attack input is honored
	MeleeCooldown float64 `yaml:"melee_cooldown"`
}

// AttackDuration returns how long an attack locks the player.
func (c PlayerConfig) AttackDuration() float64 {
	return float64(c.AttackFrames) * c.FrameDuration
}

// BasicEnemyConfig holds the grunt tuning.
type BasicEnemyConfig struct {
	Size   float64 `yaml:"size"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`

	// ContactDamage is dealt each time the attack cooldown elapses in range
	ContactDamage int `yaml:"contact_damage"`

	// AttackRadius is the center distance at which the grunt can hit
	AttackRadius float64 `yaml:"attack_radius"`

	// AttackCooldown is the in-range time between hits
	AttackCooldown float64 `yaml:"attack_cooldown"`

	// SeparationRadius keeps grunts from stacking on each other
	SeparationRadius float64 `yaml:"separation_radius"`

	// DeathDuration is how long the death animation plays
	DeathDuration float64 `yaml:"death_duration"`
}

// BossConfig holds the final boss tuning.
type BossConfig struct {
	Size   float64 `yaml:"size"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`

	StrikeDamage int     `yaml:"strike_damage"`
	StrikeRange  float64 `yaml:"strike_range"`

	// AttackInterval is the cooldown armed when a strike starts
	AttackInterval float64 `yaml:"attack_interval"`

	// AttackDuration is the wind-up before the strike lands
	AttackDuration float64 `yaml:"attack_duration"`

	// DeathDuration is the dying phase before the boss is removable
	DeathDuration float64 `yaml:"death_duration"`

	// IgnoreObstacles lets the boss walk through obstacles
	IgnoreObstacles bool `yaml:"ignore_obstacles"`
}

// ArrowConfig holds projectile tuning.
type ArrowConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`

	// Bounds is the rectangle outside which arrows are culled
	Bounds geom.AABB `yaml:"bounds"`

	// MaxLifetime culls arrows that never leave Bounds
	MaxLifetime float64 `yaml:"max_lifetime"`
}

// DirectorConfig holds the encounter pacing.
type DirectorConfig struct {
	// Seed feeds the director's random source
	Seed int64 `yaml:"seed"`

	InitialEnemies int     `yaml:"initial_enemies"`
	SpawnInterval  float64 `yaml:"spawn_interval"`
	MaxEnemies     int     `yaml:"max_enemies"`

	// SpawnDistance pushes spawn bands outward from the view edges
	SpawnDistance float64 `yaml:"spawn_distance"`

	// ViewWidth and ViewHeight are the visible rectangle centered on the player
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`

	// BossKillThreshold is the grunt kill count that summons the boss
	BossKillThreshold     int       `yaml:"boss_kill_threshold"`
	BossSpawnRadius       float64   `yaml:"boss_spawn_radius"`
	BossPlacementAttempts int       `yaml:"boss_placement_attempts"`
	BossProbeSize         float64   `yaml:"boss_probe_size"`
	BossFallbackOffset    geom.Vec2 `yaml:"boss_fallback_offset"`

	// ArrowInterval is the time between arrow volleys, 0 disables them
	ArrowInterval float64 `yaml:"arrow_interval"`
}

// CombatConfig holds damage per source that is not owned by an enemy kind.
type CombatConfig struct {
	MeleeDamage int `yaml:"melee_damage"`
	ArrowDamage int `yaml:"arrow_damage"`

	// ResolveBuffer is added to every obstacle push-out
	ResolveBuffer float64 `yaml:"resolve_buffer"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  1600,
			Height: 1600,
		},
		Player: PlayerConfig{
			Size:             32,
			Health:           100,
			Speed:            100,
			Acceleration:     5,
			MaxSpeed:         100,
			Friction:         0.85,
			StopThreshold:    1,
			HitFlashDuration: 1.0,
			AttackFrames:     3,
			FrameDuration:    0.15,
			MeleeRange:       40,
			MeleeCooldown:    0.5,
		},
		Basic: BasicEnemyConfig{
			Size:             30,
			Health:           30,
			Speed:            100,
			ContactDamage:    5,
			AttackRadius:     50,
			AttackCooldown:   1.0,
			SeparationRadius: 20,
			DeathDuration:    0.6,
		},
		Boss: BossConfig{
			Size:            300,
			Health:          500,
			Speed:           30,
			StrikeDamage:    30,
			StrikeRange:     60,
			AttackInterval:  4.0,
			AttackDuration:  1.2, // 6 frames at 0.2s
			DeathDuration:   2.0,
			IgnoreObstacles: true,
		},
		Arrow: ArrowConfig{
			Size:        32,
			Speed:       250,
			Bounds:      geom.AABB{X: 0, Y: 0, W: 2000, H: 2000},
			MaxLifetime: 10,
		},
		Director: DirectorConfig{
			Seed:                  1,
			InitialEnemies:        5,
			SpawnInterval:         3.0,
			MaxEnemies:            20,
			SpawnDistance:         150,
			ViewWidth:             640,
			ViewHeight:            360,
			BossKillThreshold:     20,
			BossSpawnRadius:       200,
			BossPlacementAttempts: 10,
			BossProbeSize:         150,
			BossFallbackOffset:    geom.V(150, 150),
			ArrowInterval:         5.0,
		},
		Combat: CombatConfig{
			MeleeDamage:   50,
			ArrowDamage:   10,
			ResolveBuffer: 0.5,
		},
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig. Keys absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every field that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)

	positive("player.size", c.Player.Size)
	positive("player.health", float64(c.Player.Health))
	positive("player.max_speed", c.Player.MaxSpeed)
	positive("player.frame_duration", c.Player.FrameDuration)
	positive("player.attack_frames", float64(c.Player.AttackFrames))
	if c.Player.Friction <= 0 || c.Player.Friction >= 1 {
		errs = append(errs, fmt.Errorf("player.friction must be in (0, 1), got %v", c.Player.Friction))
	}
	if c.Player.Size > c.Arena.Width || c.Player.Size > c.Arena.Height {
		errs = append(errs, errors.New("player.size does not fit in the arena"))
	}

	positive("basic_enemy.size", c.Basic.Size)
	positive("basic_enemy.health", float64(c.Basic.Health))
	positive("basic_enemy.attack_cooldown", c.Basic.AttackCooldown)

	positive("boss.size", c.Boss.Size)
	positive("boss.health", float64(c.Boss.Health))
	positive("boss.attack_duration", c.Boss.AttackDuration)
	positive("boss.death_duration", c.Boss.DeathDuration)

	positive("arrow.size", c.Arrow.Size)
	positive("arrow.max_lifetime", c.Arrow.MaxLifetime)

	positive("director.spawn_interval", c.Director.SpawnInterval)
	positive("director.boss_kill_threshold", float64(c.Director.BossKillThreshold))
	if c.Director.MaxEnemies < 0 || c.Director.InitialEnemies < 0 {
		errs = append(errs, errors.New("director enemy counts must not be negative"))
	}
	if c.Director.ArrowInterval < 0 {
		errs = append(errs, fmt.Errorf("director.arrow_interval must not be negative, got %v", c.Director.ArrowInterval))
	}

	if c.Combat.ResolveBuffer < 0 {
		errs = append(errs, fmt.Errorf("combat.resolve_buffer must not be negative, got %v", c.Combat.ResolveBuffer))
	}
	return errors.Join(errs...)
}
