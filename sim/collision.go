package sim

import "arenasurvivor/geom"

// Obstacle is a static rectangle. Only collidable obstacles block actors.
type Obstacle struct {
	Name       string
	Box        geom.AABB
	Collidable bool
}

// Resolve pushes c out of the first collidable obstacle it overlaps, along the
// axis of least penetration plus buffer. Velocity pointing back into the
// obstacle on that axis is zeroed when c carries velocity. At most one
// obstacle is handled per call; the result reports whether one was.
func Resolve(c Collider, obstacles []Obstacle, buffer float64) bool {
	box := c.Bounds()
	for _, ob := range obstacles {
		if !ob.Collidable || !box.Overlaps(ob.Box) {
			continue
		}

		center := c.Position()
		o := ob.Box

		// Penetration is measured against the obstacle side the center faces
		var overlapX, overlapY float64
		leftOfObstacle := center.X < o.X
		belowObstacle := center.Y < o.Y
		if leftOfObstacle {
			overlapX = box.Right() - o.X
		} else {
			overlapX = o.Right() - box.X
		}
		if belowObstacle {
			overlapY = box.Top() - o.Y
		} else {
			overlapY = o.Top() - box.Y
		}
		overlapX += buffer
		overlapY += buffer

		pos := center
		stopper, hasVelocity := c.(velocityStopper)
		if overlapX < overlapY {
			sign := 1.0
			if leftOfObstacle {
				sign = -1.0
			}
			pos.X += sign * overlapX
			if hasVelocity {
				stopper.StopVelocity(true, -sign)
			}
		} else {
			sign := 1.0
			if belowObstacle {
				sign = -1.0
			}
			pos.Y += sign * overlapY
			if hasVelocity {
				stopper.StopVelocity(false, -sign)
			}
		}
		c.SetPosition(pos)
		return true
	}
	return false
}

// Unstuck frees c when it starts a tick already inside a collidable obstacle.
// It compares the four edge distances and pushes by the smallest one plus
// buffer, preferring left, right, down, up on ties. It returns the applied
// push and whether c was stuck.
func Unstuck(c Collider, obstacles []Obstacle, buffer float64) (geom.Vec2, bool) {
	box := c.Bounds()
	for _, ob := range obstacles {
		if !ob.Collidable || !box.Overlaps(ob.Box) {
			continue
		}
		o := ob.Box

		candidates := [...]struct {
			dist float64
			dir  geom.Vec2
		}{
			{box.Right() - o.X, geom.V(-1, 0)},
			{o.Right() - box.X, geom.V(1, 0)},
			{box.Top() - o.Y, geom.V(0, -1)},
			{o.Top() - box.Y, geom.V(0, 1)},
		}
		best := candidates[0]
		for _, cand := range candidates[1:] {
			if cand.dist < best.dist {
				best = cand
			}
		}

		push := best.dir.Scale(best.dist + buffer)
		c.SetPosition(c.Position().Add(push))
		return push, true
	}
	return geom.Vec2{}, false
}

// CollisionSystem binds the obstacle set of a session to its resolve buffer.
type CollisionSystem struct {
	obstacles []Obstacle
	buffer    float64
}

// NewCollisionSystem creates a collision system over a fixed obstacle set.
func NewCollisionSystem(obstacles []Obstacle, buffer float64) *CollisionSystem {
	return &CollisionSystem{obstacles: obstacles, buffer: buffer}
}

// Obstacles returns the obstacle set. Callers must not modify it.
func (cs *CollisionSystem) Obstacles() []Obstacle { return cs.obstacles }

// Resolve runs Resolve against the system's obstacles.
func (cs *CollisionSystem) Resolve(c Collider) bool {
	return Resolve(c, cs.obstacles, cs.buffer)
}

// Unstuck runs Unstuck against the system's obstacles.
func (cs *CollisionSystem) Unstuck(c Collider) (geom.Vec2, bool) {
	return Unstuck(c, cs.obstacles, cs.buffer)
}

// Blocked reports whether box overlaps any collidable obstacle.
func (cs *CollisionSystem) Blocked(box geom.AABB) bool {
	for _, ob := range cs.obstacles {
		if ob.Collidable && box.Overlaps(ob.Box) {
			return true
		}
	}
	return false
}
