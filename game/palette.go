package game

import "image/color"

// Role is what a drawn shape represents.
type Role int

const (
	RolePlayer Role = iota
	RoleGrunt
	RoleBoss
	RoleBossWindup
	RoleArrow
	RoleWall
	RoleDecor
	RoleHitbox
	RoleSwing
)

// Palette maps every role to its color.
var Palette = map[Role]color.RGBA{
	RolePlayer:     {80, 200, 120, 255},
	RoleGrunt:      {200, 60, 60, 255},
	RoleBoss:       {150, 40, 170, 255},
	RoleBossWindup: {255, 140, 0, 255},
	RoleArrow:      {230, 220, 120, 255},
	RoleWall:       {110, 100, 90, 255},
	RoleDecor:      {60, 90, 60, 255},
	RoleHitbox:     {255, 255, 0, 200},
	RoleSwing:      {240, 240, 255, 200},
}

var (
	colorBackground = color.RGBA{24, 28, 24, 255}
	colorArenaFloor = color.RGBA{44, 52, 40, 255}
	colorBarBack    = color.RGBA{40, 20, 20, 220}
	colorText       = color.RGBA{230, 230, 230, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 160}
)

// ColorFor returns the color of role, magenta when it has none.
func ColorFor(role Role) color.RGBA {
	if c, ok := Palette[role]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255}
}

// healthColor grades a health fraction green, orange, then red.
func healthColor(frac float64) color.RGBA {
	switch {
	case frac > 0.6:
		return color.RGBA{60, 200, 80, 255}
	case frac > 0.3:
		return color.RGBA{240, 160, 40, 255}
	default:
		return color.RGBA{220, 50, 50, 255}
	}
}

// fade scales a color's alpha by f in [0, 1].
func fade(c color.RGBA, f float64) color.RGBA {
	f = max(0, min(f, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
