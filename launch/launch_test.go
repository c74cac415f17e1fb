package launch

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	const key = "ARENA_LAUNCH_TEST_KEY"
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	// A missing file is fine
	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadEnvMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(path, []byte("KEY='unterminated\n"), 0o644))
	assert.Error(t, LoadEnv(path))
}

func TestRegisterDefaultsFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, "tuning.yaml")
	t.Setenv(EnvLayout, "")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvDebug, "true")

	var o Options
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	o.Register(flags)
	require.NoError(t, flags.Parse(nil))
	assert.Equal(t, Options{ConfigPath: "tuning.yaml", Seed: 42, Debug: true}, o)

	require.NoError(t, flags.Parse([]string{"-seed", "7", "-layout", "arena.yaml"}))
	assert.Equal(t, int64(7), o.Seed)
	assert.Equal(t, "arena.yaml", o.LayoutPath)
}

func TestOptionsLoadDefaults(t *testing.T) {
	cfg, arena, err := Options{}.Load()
	require.NoError(t, err)
	assert.Equal(t, arena.Width, cfg.Arena.Width)
	assert.Equal(t, arena.Height, cfg.Arena.Height)
	assert.Equal(t, int64(1), cfg.Director.Seed)
	assert.NotEmpty(t, arena.Objects)
}

func TestOptionsLoadFiles(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tuning.yaml")
	layoutPath := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("director:\n  boss_kill_threshold: 5\n"), 0o644))
	require.NoError(t, os.WriteFile(layoutPath, []byte("width: 800\nheight: 600\nspawn: {x: 400, y: 300}\n"), 0o644))

	cfg, arena, err := Options{ConfigPath: cfgPath, LayoutPath: layoutPath, Seed: 99}.Load()
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Arena.Width)
	assert.Equal(t, 600.0, cfg.Arena.Height)
	assert.Equal(t, int64(99), cfg.Director.Seed)
	assert.Empty(t, arena.Objects)
}

func TestOptionsLoadErrors(t *testing.T) {
	_, _, err := Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = Options{LayoutPath: filepath.Join(t.TempDir(), "missing.yaml")}.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	verbose := NewLogger(&buf, true)
	verbose.Debug().Msg("verbose")
	assert.Contains(t, buf.String(), "verbose")
}
