package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenasurvivor/geom"
)

func newTestGrunt(id EntityID, pos geom.Vec2) *Enemy {
	return NewBasicEnemy(id, pos, DefaultConfig().Basic)
}

func testBossConfig() BossConfig {
	cfg := DefaultConfig().Boss
	cfg.AttackDuration = 1.0
	return cfg
}

func TestBehaviorTableIsComplete(t *testing.T) {
	for kind := EnemyKind(0); kind < kindCount; kind++ {
		b := behaviors[kind]
		assert.NotNil(t, b.update, kind.String())
		assert.NotNil(t, b.takeDamage, kind.String())
		assert.NotNil(t, b.alive, kind.String())
	}
}

func TestBasicEnemyChases(t *testing.T) {
	e := newTestGrunt(1, geom.V(0, 0))
	f := &fakeField{target: &fakeTarget{pos: geom.V(300, 0)}}
	f.enemies = []*Enemy{e}

	e.Update(0.5, f)
	assert.InDelta(t, 50.0, e.Position().X, 1e-9)
	assert.InDelta(t, 0.0, e.Position().Y, 1e-9)
	assert.Equal(t, geom.V(1, 0), e.Facing())
	assert.Equal(t, geom.Centered(e.Position(), 30, 30), e.Bounds())
}

func TestBasicEnemyNeverAttacksOutOfRange(t *testing.T) {
	e := newTestGrunt(1, geom.V(0, 0))
	target := &fakeTarget{pos: geom.V(200, 0)}
	f := &fakeField{target: target, enemies: []*Enemy{e}}

	for i := 0; i < 10; i++ {
		e.Update(0.1, f)
	}
	assert.Greater(t, e.Position().Dist(target.pos), 50.0)
	assert.Zero(t, target.hits)
}

func TestBasicEnemyAttackCooldown(t *testing.T) {
	e := newTestGrunt(1, geom.V(100, 100))
	target := &fakeTarget{pos: geom.V(100, 100)}
	f := &fakeField{target: target, enemies: []*Enemy{e}}

	// 3 seconds in range with a 1 second cooldown
	for i := 0; i < 12; i++ {
		e.Update(0.25, f)
	}
	assert.Equal(t, 3, target.hits)
	assert.Equal(t, 15, target.damage)
	assert.Equal(t, 3, f.count(EventPlayerHurt))
}

func TestBasicEnemyAttackCadenceAcrossFrameRates(t *testing.T) {
	for _, hz := range []int{30, 60, 120, 144} {
		t.Run(fmt.Sprintf("%dhz", hz), func(t *testing.T) {
			e := newTestGrunt(1, geom.V(100, 100))
			target := &fakeTarget{pos: geom.V(100, 100)}
			f := &fakeField{target: target, enemies: []*Enemy{e}}

			dt := 1 / float64(hz)
			for i := 0; i < 3*hz; i++ {
				e.Update(dt, f)
			}
			assert.Equal(t, 3, target.hits)
		})
	}
}

func TestBasicEnemyIgnoresDeadNeighbor(t *testing.T) {
	e := newTestGrunt(1, geom.V(0, 0))
	dead := newTestGrunt(2, geom.V(55, 0))
	require.True(t, dead.TakeDamage(dead.Health()))
	f := &fakeField{target: &fakeTarget{pos: geom.V(300, 0)}, enemies: []*Enemy{e, dead}}

	e.Update(0.5, f)
	assert.InDelta(t, 50.0, e.Position().X, 1e-9)
	assert.InDelta(t, 0.0, e.Position().Y, 1e-9)
}

func TestBasicEnemyRefusedHitEmitsNothing(t *testing.T) {
	e := newTestGrunt(1, geom.V(0, 0))
	target := &fakeTarget{pos: geom.V(0, 0), refuses: true}
	f := &fakeField{target: target, enemies: []*Enemy{e}}

	for i := 0; i < 4; i++ {
		e.Update(0.25, f)
	}
	assert.Equal(t, 1, target.hits)
	assert.Zero(t, f.count(EventPlayerHurt))
}

func TestBasicEnemySeparation(t *testing.T) {
	a := newTestGrunt(1, geom.V(0, 0))
	b := newTestGrunt(2, geom.V(10, 5))
	f := &fakeField{target: &fakeTarget{pos: geom.V(100, 0)}, enemies: []*Enemy{a, b}}

	a.Update(0.1, f)
	assert.Less(t, a.Position().Y, 0.0, "grunt should sidestep its neighbor")
	assert.InDelta(t, 10.0, a.Position().Len(), 1e-9)

	t.Run("dead neighbors are ignored", func(t *testing.T) {
		a := newTestGrunt(1, geom.V(0, 0))
		b := newTestGrunt(2, geom.V(10, 5))
		b.TakeDamage(100)
		f := &fakeField{target: &fakeTarget{pos: geom.V(100, 0)}, enemies: []*Enemy{a, b}}

		a.Update(0.1, f)
		assert.InDelta(t, 0.0, a.Position().Y, 1e-9)
	})
}

func TestBasicEnemyDeath(t *testing.T) {
	e := newTestGrunt(1, geom.V(0, 0))
	require.True(t, e.TakeDamage(20))
	assert.Equal(t, 10, e.Health())
	assert.True(t, e.Alive())

	require.True(t, e.TakeDamage(20))
	assert.Equal(t, 0, e.Health())
	assert.False(t, e.Alive())
	assert.True(t, e.Dying())
	assert.False(t, e.TakeDamage(5))

	target := &fakeTarget{pos: geom.V(0, 0)}
	f := &fakeField{target: target, enemies: []*Enemy{e}}
	e.Update(0.3, f)
	assert.InDelta(t, 0.5, e.DeathProgress(), 1e-9)
	assert.Equal(t, geom.V(0, 0), e.Position())

	e.Update(1, f)
	assert.Equal(t, 1.0, e.DeathProgress())
	assert.Zero(t, target.hits)
}

func TestEnemyOnMelee(t *testing.T) {
	e := newTestGrunt(1, geom.V(0, 0))
	e.OnMelee(15)
	assert.Equal(t, 15, e.Health())
	assert.Equal(t, 0.5, e.HealthFraction())
}

func TestBossApproach(t *testing.T) {
	e := NewFinalBoss(1, geom.V(0, 0), testBossConfig())
	f := &fakeField{target: &fakeTarget{pos: geom.V(500, 0)}, enemies: []*Enemy{e}}

	e.Update(1, f)
	assert.InDelta(t, 30.0, e.Position().X, 1e-9)
	assert.Equal(t, BossApproach, e.Phase())
	assert.Equal(t, 300.0, e.Bounds().W)
}

func TestBossStrikeCycle(t *testing.T) {
	e := NewFinalBoss(1, geom.V(0, 0), testBossConfig())
	target := &fakeTarget{pos: geom.V(0, 0)}
	f := &fakeField{target: target, enemies: []*Enemy{e}}

	e.Update(0.25, f)
	require.Equal(t, BossAttacking, e.Phase())
	assert.Equal(t, 1, f.count(EventBossWindup))

	for i := 0; i < 3; i++ {
		e.Update(0.25, f)
		assert.Equal(t, BossAttacking, e.Phase())
	}
	assert.Zero(t, target.hits)

	e.Update(0.25, f)
	assert.Equal(t, BossApproach, e.Phase())
	assert.Equal(t, 1, target.hits)
	assert.Equal(t, 30, target.damage)

	// Cooldown was armed at wind-up: 4s minus the 1s already spent
	for i := 0; i < 11; i++ {
		e.Update(0.25, f)
		assert.Equal(t, BossApproach, e.Phase())
	}
	e.Update(0.25, f)
	assert.Equal(t, BossAttacking, e.Phase())
}

func TestBossStrikeMissesWhenTargetEscapes(t *testing.T) {
	e := NewFinalBoss(1, geom.V(0, 0), testBossConfig())
	target := &fakeTarget{pos: geom.V(10, 0)}
	f := &fakeField{target: target, enemies: []*Enemy{e}}

	e.Update(0.25, f)
	require.Equal(t, BossAttacking, e.Phase())

	target.pos = geom.V(400, 0)
	for i := 0; i < 4; i++ {
		e.Update(0.25, f)
	}
	assert.Equal(t, BossApproach, e.Phase())
	assert.Zero(t, target.hits)
}

func TestBossDeath(t *testing.T) {
	e := NewFinalBoss(1, geom.V(0, 0), testBossConfig())
	require.True(t, e.TakeDamage(125))
	assert.Equal(t, 0.75, e.HealthFraction())

	require.True(t, e.TakeDamage(1000))
	assert.Equal(t, 0, e.Health())
	assert.Equal(t, BossDying, e.Phase())
	assert.True(t, e.Alive(), "boss stays in the roster while dying")
	assert.False(t, e.TakeDamage(10))

	target := &fakeTarget{pos: geom.V(0, 0)}
	f := &fakeField{target: target, enemies: []*Enemy{e}}
	for i := 0; i < 3; i++ {
		e.Update(0.5, f)
		assert.True(t, e.Alive())
	}
	e.Update(0.5, f)
	assert.False(t, e.Alive())
	assert.Equal(t, 1.0, e.DeathProgress())
	assert.Zero(t, target.hits)
}

func TestEnemyKindString(t *testing.T) {
	assert.Equal(t, "basic", KindBasic.String())
	assert.Equal(t, "boss", KindBoss.String())
	assert.Equal(t, "DYING", BossDying.String())
}
