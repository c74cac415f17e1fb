// Package launch holds the command-line plumbing shared by the windowed game
// and the headless runner.
package launch

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"arenasurvivor/layout"
	"arenasurvivor/sim"
)

// Environment variables that supply flag defaults. A .env file in the working
// directory is read first when present.
const (
	EnvConfig = "ARENA_CONFIG"
	EnvLayout = "ARENA_LAYOUT"
	EnvSeed   = "ARENA_SEED"
	EnvDebug  = "ARENA_DEBUG"
)

// Options are the inputs every entry point accepts.
type Options struct {
	ConfigPath string
	LayoutPath string
	Seed       int64 // 0 keeps the configured seed
	Debug      bool
}

// LoadEnv reads the given env files, or .env when none are given, without
// overriding variables already set. Missing files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env %s: %w", f, err)
		}
	}
	return nil
}

// Register binds the options to flags with defaults taken from the environment.
func (o *Options) Register(flags *flag.FlagSet) {
	seed, _ := strconv.ParseInt(os.Getenv(EnvSeed), 10, 64)
	debug, _ := strconv.ParseBool(os.Getenv(EnvDebug))

	flags.StringVar(&o.ConfigPath, "config", os.Getenv(EnvConfig), "YAML tuning file (defaults built in)")
	flags.StringVar(&o.LayoutPath, "layout", os.Getenv(EnvLayout), "YAML arena layout (stock arena when empty)")
	flags.Int64Var(&o.Seed, "seed", seed, "random seed override, 0 keeps the configured seed")
	flags.BoolVar(&o.Debug, "debug", debug, "log every combat event")
}

// Load resolves the simulation config and arena. The arena size overrides the
// configured one.
func (o Options) Load() (sim.Config, layout.Arena, error) {
	cfg := sim.DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = sim.LoadConfig(o.ConfigPath); err != nil {
			return sim.Config{}, layout.Arena{}, err
		}
	}
	if o.Seed != 0 {
		cfg.Director.Seed = o.Seed
	}

	arena, err := layout.Open(o.LayoutPath)
	if err != nil {
		return sim.Config{}, layout.Arena{}, err
	}
	arena.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, layout.Arena{}, fmt.Errorf("config with layout: %w", err)
	}
	return cfg, arena, nil
}

// NewLogger returns a human-readable logger on w at info level, or debug
// when debug is set.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
