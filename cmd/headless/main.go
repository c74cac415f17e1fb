// Command headless plays sessions without a window, driving the player with
// a simple autopilot, and prints one summary line per session.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"arenasurvivor/launch"
	"arenasurvivor/sim"
)

func main() {
	bootLog := launch.NewLogger(os.Stderr, false)
	if err := launch.LoadEnv(); err != nil {
		bootLog.Fatal().Err(err).Msg("environment")
	}

	var opts launch.Options
	opts.Register(flag.CommandLine)
	duration := flag.Float64("duration", 300, "simulated seconds per session")
	step := flag.Float64("dt", 1.0/60, "tick length in seconds")
	runs := flag.Int("runs", 1, "sessions to play, each with the next seed")
	parallel := flag.Int("parallel", 4, "sessions simulated at once")
	flag.Parse()

	log := launch.NewLogger(os.Stderr, opts.Debug)
	cfg, arena, err := opts.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load")
	}
	if *runs < 1 {
		log.Fatal().Int("runs", *runs).Msg("runs must be at least 1")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]Result, *runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*parallel, 1))
	for i := range results {
		i := i
		runCfg := cfg
		runCfg.Director.Seed += int64(i)
		g.Go(func() error {
			r, err := Run(ctx, runCfg, arena, RunOptions{Duration: *duration, Step: *step}, log,
				sim.LogSink{Logger: log})
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("headless run failed")
	}

	victories := 0
	for _, r := range results {
		fmt.Println(r)
		if r.Outcome == sim.OutcomeVictory {
			victories++
		}
	}
	log.Info().Int("runs", len(results)).Int("victories", victories).Msg("done")
}
