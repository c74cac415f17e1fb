package geom

// AABB is an axis-aligned rectangle with X/Y at its minimum corner.
type AABB struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"width"`
	H float64 `yaml:"height"`
}

// Centered returns a w*h box whose center is c.
func Centered(c Vec2, w, h float64) AABB {
	return AABB{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the maximum X edge.
func (b AABB) Right() float64 { return b.X + b.W }

// Top returns the maximum Y edge.
func (b AABB) Top() float64 { return b.Y + b.H }

// Center returns the midpoint of the box.
func (b AABB) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Translate returns the box moved by d.
func (b AABB) Translate(d Vec2) AABB {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Contains reports whether p lies inside the box (edges included).
func (b AABB) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Top()
}

// Overlaps reports whether the interiors of b and o intersect. Boxes that only
// share an edge do not overlap. The test is symmetric.
func (b AABB) Overlaps(o AABB) bool {
	return b.X < o.Right() && b.Right() > o.X &&
		b.Y < o.Top() && b.Top() > o.Y
}

// Penetration returns how far b reaches into o along each axis, taking the
// shallower side per axis. Both results are zero when the boxes do not overlap.
func (b AABB) Penetration(o AABB) (px, py float64) {
	if !b.Overlaps(o) {
		return 0, 0
	}
	px = min(b.Right()-o.X, o.Right()-b.X)
	py = min(b.Top()-o.Y, o.Top()-b.Y)
	return max(px, 0), max(py, 0)
}
