package sim

import (
	"math/rand"

	"arenasurvivor/geom"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// quietConfig is the default tuning without background spawns or volleys,
// so tests control every actor.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Director.InitialEnemies = 0
	cfg.Director.SpawnInterval = 1e9
	cfg.Director.ArrowInterval = 0
	return cfg
}

// fakeTarget records every damage attempt.
type fakeTarget struct {
	pos     geom.Vec2
	hits    int
	damage  int
	refuses bool
}

func (t *fakeTarget) Position() geom.Vec2 { return t.pos }
func (t *fakeTarget) Bounds() geom.AABB { return geom.Centered(t.pos, 32, 32) }

func (t *fakeTarget) TakeDamage(amount int) bool {
	t.hits++
	if t.refuses {
		return false
	}
	t.damage += amount
	return true
}

// fakeField is a minimal enemy update context.
type fakeField struct {
	target  *fakeTarget
	enemies []*Enemy
	events  []Event
}

func (f *fakeField) Target() Target { return f.target }
func (f *fakeField) Enemies() []*Enemy { return f.enemies }
func (f *fakeField) Emit(ev Event) { f.events = append(f.events, ev) }

func (f *fakeField) count(kind EventKind) int {
	n := 0
	for _, ev := range f.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// fakeHost records director spawns.
type fakeHost struct {
	player  geom.Vec2
	live    int
	blocked func(geom.AABB) bool
	spawns  []spawnRecord
	arrows  int
}

type spawnRecord struct {
	kind EnemyKind
	pos  geom.Vec2
}

func (h *fakeHost) PlayerPosition() geom.Vec2 { return h.player }
func (h *fakeHost) LiveEnemies() int { return h.live }

func (h *fakeHost) Blocked(box geom.AABB) bool {
	if h.blocked == nil {
		return false
	}
	return h.blocked(box)
}

func (h *fakeHost) SpawnEnemy(kind EnemyKind, pos geom.Vec2) {
	h.spawns = append(h.spawns, spawnRecord{kind: kind, pos: pos})
	h.live++
}

func (h *fakeHost) FireArrow(from, to geom.Vec2) { h.arrows++ }

func (h *fakeHost) countKind(kind EnemyKind) int {
	n := 0
	for _, s := range h.spawns {
		if s.kind == kind {
			n++
		}
	}
	return n
}
