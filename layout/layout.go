// Package layout loads arena layouts: the arena size, the player spawn point
// and the static objects placed in it.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"arenasurvivor/geom"
	"arenasurvivor/sim"
)

//go:embed default.yaml
var defaultLayout []byte

// Object is one placed rectangle as authored in the layout file.
type Object struct {
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Box returns the object's rectangle.
func (o Object) Box() geom.AABB {
	return geom.AABB{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Blocks reports whether the object is an obstacle: its name mentions a wall
// or an obstacle, its type is "obstacle", or it carries neither name nor type.
// Everything else is decoration.
func (o Object) Blocks() bool {
	switch {
	case strings.Contains(o.Name, "Wall"), strings.Contains(o.Name, "Obstacle"):
		return true
	case o.Type == "obstacle":
		return true
	default:
		return o.Name == "" && o.Type == ""
	}
}

// Arena is a parsed layout.
type Arena struct {
	Width   float64   `yaml:"width"`
	Height  float64   `yaml:"height"`
	Spawn   geom.Vec2 `yaml:"spawn"`
	Objects []Object  `yaml:"objects"`
}

// Default returns the embedded stock arena.
func Default() (Arena, error) {
	a, err := Parse(defaultLayout)
	if err != nil {
		return Arena{}, fmt.Errorf("default layout: %w", err)
	}
	return a, nil
}

// Load reads and validates a layout file.
func Load(path string) (Arena, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Arena{}, fmt.Errorf("read layout %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return Arena{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return a, nil
}

// Parse decodes and validates layout YAML.
func Parse(data []byte) (Arena, error) {
	var a Arena
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Arena{}, fmt.Errorf("parse: %w", err)
	}
	if err := a.Validate(); err != nil {
		return Arena{}, err
	}
	return a, nil
}

// Validate checks the arena dimensions, the spawn point and every object.
func (a Arena) Validate() error {
	var errs []error
	if a.Width <= 0 || a.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", a.Width, a.Height))
	}
	bounds := geom.AABB{W: a.Width, H: a.Height}
	if !bounds.Contains(a.Spawn) {
		errs = append(errs, fmt.Errorf("spawn %v is outside the arena", a.Spawn))
	}
	for i, o := range a.Objects {
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Errorf("object %d (%q) has non-positive size", i, o.Name))
		}
	}
	return errors.Join(errs...)
}

// Obstacles converts every object into a simulation obstacle. Decorative
// objects are kept but do not collide.
func (a Arena) Obstacles() []sim.Obstacle {
	obstacles := make([]sim.Obstacle, 0, len(a.Objects))
	for _, o := range a.Objects {
		obstacles = append(obstacles, sim.Obstacle{
			Name:       o.Name,
			Box:        o.Box(),
			Collidable: o.Blocks(),
		})
	}
	return obstacles
}

// Apply sizes cfg's arena to the layout.
func (a Arena) Apply(cfg *sim.Config) {
	cfg.Arena.Width = a.Width
	cfg.Arena.Height = a.Height
}

// Open loads the layout at path, or the stock arena when path is empty.
func Open(path string) (Arena, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
