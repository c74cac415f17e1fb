package sim

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenasurvivor/geom"
)

func newTestDirector(mutate func(cfg *DirectorConfig)) *Director {
	cfg := quietConfig().Director
	if mutate != nil {
		mutate(&cfg)
	}
	return NewDirector(cfg, testRNG(), zerolog.Nop())
}

func TestDirectorBossThreshold(t *testing.T) {
	d := newTestDirector(nil)
	h := &fakeHost{player: geom.V(800, 800)}

	for i := 0; i < 19; i++ {
		d.RecordDeath(KindBasic)
	}
	d.Update(0.016, h)
	assert.Zero(t, h.countKind(KindBoss))
	assert.False(t, d.BossSpawned())

	d.RecordDeath(KindBasic)
	d.Update(0.016, h)
	assert.Equal(t, 1, h.countKind(KindBoss))
	assert.True(t, d.BossSpawned())
	assert.Equal(t, ObjectiveDefeatBoss, d.Objective())

	d.Update(0.016, h)
	assert.Equal(t, 1, h.countKind(KindBoss), "the boss is summoned once")
}

func TestDirectorProgress(t *testing.T) {
	d := newTestDirector(nil)
	assert.Equal(t, 0.0, d.Progress())

	for i := 0; i < 10; i++ {
		d.RecordDeath(KindBasic)
	}
	assert.Equal(t, 0.5, d.Progress())

	for i := 0; i < 15; i++ {
		d.RecordDeath(KindBasic)
	}
	assert.Equal(t, 25, d.Kills())
	assert.Equal(t, 1.0, d.Progress())

	h := &fakeHost{player: geom.V(800, 800)}
	d.Update(0.016, h)
	assert.Equal(t, 0.0, d.Progress(), "boss stage starts empty")

	d.RecordDeath(KindBoss)
	assert.Equal(t, 1.0, d.Progress())
	assert.Equal(t, ObjectiveComplete, d.Objective())
	assert.True(t, d.BossDefeated())
}

func TestDirectorSpawnCadence(t *testing.T) {
	d := newTestDirector(func(cfg *DirectorConfig) { cfg.SpawnInterval = 3 })
	h := &fakeHost{player: geom.V(800, 800)}

	for i := 0; i < 5; i++ {
		d.Update(0.5, h)
	}
	assert.Empty(t, h.spawns)

	d.Update(0.5, h)
	require.Len(t, h.spawns, 1)
	assert.Equal(t, KindBasic, h.spawns[0].kind)

	t.Run("no spawn at the cap", func(t *testing.T) {
		d := newTestDirector(func(cfg *DirectorConfig) { cfg.SpawnInterval = 3 })
		h := &fakeHost{player: geom.V(800, 800), live: 20}
		for i := 0; i < 10; i++ {
			d.Update(0.5, h)
		}
		assert.Empty(t, h.spawns)

		// A freed slot is filled on the next tick
		h.live = 19
		d.Update(0.5, h)
		assert.Len(t, h.spawns, 1)
	})

	t.Run("grunts stop after the boss", func(t *testing.T) {
		d := newTestDirector(func(cfg *DirectorConfig) { cfg.SpawnInterval = 3 })
		h := &fakeHost{player: geom.V(800, 800)}
		for i := 0; i < 20; i++ {
			d.RecordDeath(KindBasic)
		}
		for i := 0; i < 20; i++ {
			d.Update(0.5, h)
		}
		assert.Zero(t, h.countKind(KindBasic))
		assert.Equal(t, 1, h.countKind(KindBoss))
	})
}

func TestDirectorSpawnBands(t *testing.T) {
	d := newTestDirector(nil)
	center := geom.V(800, 800)
	hw, hh, dist := 320.0, 180.0, 150.0

	onBand := func(p geom.Vec2) bool {
		withinX := p.X >= center.X-hw && p.X <= center.X+hw
		withinY := p.Y >= center.Y-hh && p.Y <= center.Y+hh
		switch {
		case math.Abs(p.Y-(center.Y+hh+dist)) < 1e-9, math.Abs(p.Y-(center.Y-hh-dist)) < 1e-9:
			return withinX
		case math.Abs(p.X-(center.X+hw+dist)) < 1e-9, math.Abs(p.X-(center.X-hw-dist)) < 1e-9:
			return withinY
		}
		return false
	}

	for i := 0; i < 200; i++ {
		p := d.spawnPoint(center)
		require.True(t, onBand(p), "point %v is not on a spawn band", p)
	}
}

func TestDirectorStartSpawnsInitialEnemies(t *testing.T) {
	d := newTestDirector(func(cfg *DirectorConfig) { cfg.InitialEnemies = 5 })
	h := &fakeHost{player: geom.V(800, 800)}
	d.Start(h)
	assert.Equal(t, 5, h.countKind(KindBasic))
}

func TestDirectorBossPlacement(t *testing.T) {
	t.Run("clear ground", func(t *testing.T) {
		d := newTestDirector(nil)
		h := &fakeHost{player: geom.V(800, 800)}
		pos := d.placeBoss(h)
		assert.InDelta(t, 200.0, pos.Dist(h.player), 1e-9)
	})

	t.Run("every probe blocked falls back", func(t *testing.T) {
		d := newTestDirector(nil)
		probes := 0
		h := &fakeHost{
			player: geom.V(800, 800),
			blocked: func(box geom.AABB) bool {
				probes++
				assert.Equal(t, 150.0, box.W)
				return true
			},
		}
		assert.Equal(t, geom.V(950, 950), d.placeBoss(h))
		assert.Equal(t, 10, probes)
	})

	t.Run("first clear probe wins", func(t *testing.T) {
		d := newTestDirector(nil)
		probes := 0
		h := &fakeHost{
			player: geom.V(800, 800),
			blocked: func(geom.AABB) bool {
				probes++
				return probes < 3
			},
		}
		pos := d.placeBoss(h)
		assert.Equal(t, 3, probes)
		assert.InDelta(t, 200.0, pos.Dist(h.player), 1e-9)
	})
}

func TestDirectorArrowVolleys(t *testing.T) {
	d := newTestDirector(func(cfg *DirectorConfig) { cfg.ArrowInterval = 5 })
	h := &fakeHost{player: geom.V(800, 800)}

	for i := 0; i < 4; i++ {
		d.Update(1, h)
	}
	assert.Zero(t, h.arrows)
	d.Update(1, h)
	assert.Equal(t, 1, h.arrows)

	d.RecordDeath(KindBoss)
	for i := 0; i < 10; i++ {
		d.Update(1, h)
	}
	assert.Equal(t, 1, h.arrows, "volleys stop once the boss is down")
}
