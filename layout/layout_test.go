package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenasurvivor/geom"
	"arenasurvivor/sim"
)

func TestObjectBlocks(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want bool
	}{
		{"wall by name", Object{Name: "Wall-North"}, true},
		{"obstacle by name", Object{Name: "Obstacle-Rock"}, true},
		{"obstacle by type", Object{Name: "Crate", Type: "obstacle"}, true},
		{"anonymous", Object{}, true},
		{"decor type", Object{Name: "Flowerbed", Type: "decor"}, false},
		{"named decoration", Object{Name: "Puddle"}, false},
		{"type without name", Object{Type: "decor"}, false},
		{"name match is case sensitive", Object{Name: "wall"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.obj.Blocks())
		})
	}
}

func TestDefault(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 1600.0, a.Width)
	assert.Equal(t, 1600.0, a.Height)
	assert.Equal(t, geom.V(800, 800), a.Spawn)
	require.NotEmpty(t, a.Objects)

	obstacles := a.Obstacles()
	require.Len(t, obstacles, len(a.Objects))

	var collidable, decor int
	for _, o := range obstacles {
		if o.Collidable {
			collidable++
		} else {
			decor++
		}
	}
	assert.Positive(t, collidable)
	assert.Positive(t, decor)

	cfg := sim.DefaultConfig()
	spawnBox := geom.Centered(a.Spawn, cfg.Player.Size, cfg.Player.Size)
	cs := sim.NewCollisionSystem(obstacles, cfg.Combat.ResolveBuffer)
	assert.False(t, cs.Blocked(spawnBox), "player must not spawn inside an obstacle")
}

func TestDefaultStartsSession(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)

	cfg := sim.DefaultConfig()
	a.Apply(&cfg)
	s, err := sim.NewSession(cfg, a.Obstacles(), sim.WithSpawn(a.Spawn))
	require.NoError(t, err)
	assert.Equal(t, a.Spawn, s.Player().Position())
	assert.Len(t, s.Obstacles(), len(a.Objects))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed", "width: [1600", "parse"},
		{"zero size", "width: 0\nheight: 100\nspawn: {x: 1, y: 1}", "arena size"},
		{"spawn outside", "width: 100\nheight: 100\nspawn: {x: 150, y: 50}", "spawn"},
		{
			"bad object",
			"width: 100\nheight: 100\nspawn: {x: 50, y: 50}\nobjects:\n  - {name: Wall, x: 0, y: 0, width: 0, height: 10}",
			"object 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	data := `
width: 400
height: 300
spawn: {x: 200, y: 150}
objects:
  - {name: Wall-East, x: 380, y: 0, width: 20, height: 300}
  - {name: Rug, type: decor, x: 100, y: 100, width: 40, height: 40}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	a, err := Load(path)
	require.NoError(t, err)
	obstacles := a.Obstacles()
	require.Len(t, obstacles, 2)
	assert.Equal(t, sim.Obstacle{Name: "Wall-East", Box: geom.AABB{X: 380, W: 20, H: 300}, Collidable: true}, obstacles[0])
	assert.False(t, obstacles[1].Collidable)

	cfg := sim.DefaultConfig()
	a.Apply(&cfg)
	assert.Equal(t, 400.0, cfg.Arena.Width)
	assert.Equal(t, 300.0, cfg.Arena.Height)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	a, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, def, a)

	_, err = Open(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
