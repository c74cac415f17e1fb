package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"arenasurvivor/layout"
	"arenasurvivor/sim"
)

// Result summarizes one headless session.
type Result struct {
	Session      string
	Seed         int64
	Outcome      sim.Outcome
	Elapsed      float64
	Ticks        uint64
	Kills        int
	BossSpawned  bool
	PlayerHealth int
}

func (r Result) String() string {
	return fmt.Sprintf("session=%s seed=%d outcome=%s elapsed=%.2fs ticks=%d kills=%d boss=%t health=%d",
		r.Session, r.Seed, r.Outcome, r.Elapsed, r.Ticks, r.Kills, r.BossSpawned, r.PlayerHealth)
}

// RunOptions bound a headless run.
type RunOptions struct {
	Duration float64 // simulated seconds before giving up
	Step     float64 // fixed tick length in seconds
}

// checkEvery is how many ticks pass between context checks.
const checkEvery = 600

// Run plays one session under the autopilot until it ends, the simulated
// duration runs out or ctx is cancelled.
func Run(ctx context.Context, cfg sim.Config, arena layout.Arena, opts RunOptions, log zerolog.Logger, events sim.EventSink) (Result, error) {
	if opts.Step <= 0 || opts.Duration <= 0 {
		return Result{}, fmt.Errorf("run: step and duration must be positive, got %v and %v", opts.Step, opts.Duration)
	}
	arena.Apply(&cfg)
	s, err := sim.NewSession(cfg, arena.Obstacles(),
		sim.WithLogger(log),
		sim.WithEvents(events),
		sim.WithSpawn(arena.Spawn),
	)
	if err != nil {
		return Result{}, err
	}

	pilot := NewAutopilot(cfg.Player.MeleeRange)
	for i := 0; s.Outcome() == sim.OutcomeRunning && s.Elapsed() < opts.Duration; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("session %s: %w", s.ID, err)
			}
		}
		s.Step(opts.Step, pilot.Next(s))
	}

	return Result{
		Session:      s.ID.String(),
		Seed:         cfg.Director.Seed,
		Outcome:      s.Outcome(),
		Elapsed:      s.Elapsed(),
		Ticks:        s.Ticks(),
		Kills:        s.Director().Kills(),
		BossSpawned:  s.Director().BossSpawned(),
		PlayerHealth: s.Player().Health(),
	}, nil
}
