package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenasurvivor/geom"
	"arenasurvivor/sim"
)

// Particle is a single spark in world space.
type Particle struct {
	pos      geom.Vec2
	vel      geom.Vec2
	age      float64 // age in seconds
	lifetime float64 // total lifetime in seconds
	color    color.RGBA
	size     float64
	drag     float64 // fraction of velocity kept per second
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// Burst describes the sparks thrown by one event.
type Burst struct {
	Count       int
	VelocityMin float64
	VelocityMax float64
	LifetimeMin float64
	LifetimeMax float64
	SizeMin     float64
	SizeMax     float64
	Color       color.RGBA
	Drag        float64 // fraction of velocity kept per second
}

var bursts = map[sim.EventKind]Burst{
	sim.EventHitLanded:    {Count: 8, VelocityMin: 40, VelocityMax: 120, LifetimeMin: 0.15, LifetimeMax: 0.35, SizeMin: 1, SizeMax: 2.5, Color: color.RGBA{255, 230, 150, 255}, Drag: 0.1},
	sim.EventEnemyKilled:  {Count: 16, VelocityMin: 30, VelocityMax: 90, LifetimeMin: 0.3, LifetimeMax: 0.6, SizeMin: 1.5, SizeMax: 3, Color: color.RGBA{200, 60, 60, 255}, Drag: 0.2},
	sim.EventPlayerHurt:   {Count: 10, VelocityMin: 50, VelocityMax: 110, LifetimeMin: 0.2, LifetimeMax: 0.4, SizeMin: 1, SizeMax: 2.5, Color: color.RGBA{255, 80, 80, 255}, Drag: 0.1},
	sim.EventBossWindup:   {Count: 12, VelocityMin: 10, VelocityMax: 40, LifetimeMin: 0.5, LifetimeMax: 1.0, SizeMin: 2, SizeMax: 4, Color: color.RGBA{255, 140, 0, 255}, Drag: 0.5},
	sim.EventBossDefeated: {Count: 60, VelocityMin: 40, VelocityMax: 200, LifetimeMin: 0.8, LifetimeMax: 1.6, SizeMin: 2, SizeMax: 5, Color: color.RGBA{190, 90, 220, 255}, Drag: 0.3},
}

// Effects is an event sink that turns combat events into particle bursts.
type Effects struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewEffects creates an effect system holding at most maxParticles sparks.
// It uses its own random source so effects never disturb the simulation.
func NewEffects(maxParticles int, seed int64) *Effects {
	return &Effects{
		particles:    make([]Particle, 0, maxParticles),
		maxParticles: maxParticles,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Notify implements sim.EventSink.
func (fx *Effects) Notify(ev sim.Event) {
	if b, ok := bursts[ev.Kind]; ok {
		fx.Emit(ev.Pos, b)
	}
}

// Emit throws a burst of sparks from pos in every direction.
func (fx *Effects) Emit(pos geom.Vec2, b Burst) {
	for i := 0; i < b.Count && len(fx.particles) < fx.maxParticles; i++ {
		angle := fx.rng.Float64() * 2 * math.Pi
		speed := b.VelocityMin + fx.rng.Float64()*(b.VelocityMax-b.VelocityMin)
		fx.particles = append(fx.particles, Particle{
			pos:      pos,
			vel:      geom.FromAngle(angle).Scale(speed),
			lifetime: b.LifetimeMin + fx.rng.Float64()*(b.LifetimeMax-b.LifetimeMin),
			color:    b.Color,
			size:     b.SizeMin + fx.rng.Float64()*(b.SizeMax-b.SizeMin),
			drag:     b.Drag,
		})
	}
}

// Update ages and moves every particle, dropping dead ones.
func (fx *Effects) Update(dt float64) {
	live := fx.particles[:0]
	for _, p := range fx.particles {
		p.age += dt
		if !p.IsAlive() {
			continue
		}
		p.pos = p.pos.Add(p.vel.Scale(dt))
		p.vel = p.vel.Scale(math.Pow(p.drag, dt))
		live = append(live, p)
	}
	fx.particles = live
}

// Clear drops every particle.
func (fx *Effects) Clear() {
	fx.particles = fx.particles[:0]
}

// Len is the number of live particles.
func (fx *Effects) Len() int { return len(fx.particles) }

// Draw renders every particle, fading it out over its lifetime.
func (fx *Effects) Draw(screen *ebiten.Image, camera *Camera) {
	for _, p := range fx.particles {
		x, y := camera.WorldToScreen(p.pos)
		ageAlpha := math.Max(0, math.Min(1, 1-p.age/p.lifetime))
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.size*camera.Zoom), fade(p.color, ageAlpha), true)
	}
}
