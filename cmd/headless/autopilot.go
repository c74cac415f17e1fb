package main

import (
	"math"

	"arenasurvivor/geom"
	"arenasurvivor/sim"
)

// axisSlack is how far off an axis the target may be before the autopilot
// steers along it.
const axisSlack = 4.0

// Autopilot plays a session: it walks toward the nearest live enemy and
// swings once it is within reach.
type Autopilot struct {
	// Reach is the distance at which the autopilot swings
	Reach float64

	swung bool
}

// NewAutopilot swings a little inside meleeRange so the target is still in
// reach when the swing lands.
func NewAutopilot(meleeRange float64) *Autopilot {
	return &Autopilot{Reach: meleeRange * 0.9}
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next(s *sim.Session) sim.Input {
	var in sim.Input
	p := s.Player()
	if !p.Alive() {
		return in
	}

	target, dist, ok := nearestEnemy(p.Position(), s.Enemies())
	if !ok {
		a.swung = false
		return in
	}

	if dist > a.Reach {
		delta := target.Sub(p.Position())
		in.Right = delta.X > axisSlack
		in.Left = delta.X < -axisSlack
		in.Up = delta.Y > axisSlack
		in.Down = delta.Y < -axisSlack
	}

	// Attack is an edge: release for a tick after every swing
	if dist <= a.Reach && !a.swung && s.AttackCooldown() <= 0 && !p.Attacking() {
		in.Attack = true
		a.swung = true
	} else {
		a.swung = false
	}
	return in
}

// nearestEnemy returns the position of the closest enemy that can still be
// damaged.
func nearestEnemy(from geom.Vec2, enemies []*sim.Enemy) (geom.Vec2, float64, bool) {
	best := math.Inf(1)
	var pos geom.Vec2
	for _, e := range enemies {
		if e.Health() <= 0 {
			continue
		}
		if d := e.DistanceTo(from); d < best {
			best, pos = d, e.Position()
		}
	}
	return pos, best, !math.IsInf(best, 1)
}
