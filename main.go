package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"arenasurvivor/audio"
	"arenasurvivor/game"
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
	mute := flag.Bool("mute", false, "disable sound")
	profileDir := flag.String("profile", "", "capture CPU profiles into this directory on frame rate drops")
	flag.Parse()

	log := launch.NewLogger(os.Stderr, opts.Debug)
	simCfg, arena, err := opts.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load")
	}

	sounds := audio.NewSoundManager(log)
	if !*mute {
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		}
		defer sounds.Cleanup()
	}
	events := sim.Sinks{sounds, sim.LogSink{Logger: log}}

	config := game.DefaultConfig()
	g, err := game.NewGame(config, simCfg, arena, log, events)
	if err != nil {
		log.Fatal().Err(err).Msg("new game")
	}
	if *profileDir != "" {
		profiler, err := game.NewProfiler(*profileDir, 45, log)
		if err != nil {
			log.Fatal().Err(err).Msg("profiler")
		}
		g.SetProfiler(profiler)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Survivor")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
