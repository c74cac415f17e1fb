// Package game runs a simulation session inside an ebiten window: it samples
// input, steps the session with the frame delta and draws the result.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"arenasurvivor/layout"
	"arenasurvivor/sim"
)

// Game implements ebiten.Game around one sim.Session at a time.
type Game struct {
	config   Config
	simCfg   sim.Config
	arena    layout.Arena
	log      zerolog.Logger
	events   sim.EventSink
	session  *sim.Session
	camera   *Camera
	renderer *Renderer
	minimap  *Minimap
	effects  *Effects
	profiler *Profiler
	debug    DebugState

	paused   bool
	endTimer float64
	restarts int

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame starts the first session on arena.
func NewGame(config Config, simCfg sim.Config, arena layout.Arena, log zerolog.Logger, events sim.EventSink) (*Game, error) {
	camera := NewCamera(float64(config.ScreenWidth), float64(config.ScreenHeight), config.Zoom)
	sprites, err := LoadSprites(simCfg, config.Zoom)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		config:   config,
		simCfg:   simCfg,
		arena:    arena,
		log:      log,
		events:   events,
		camera:   camera,
		renderer: NewRenderer(camera, sprites),
		minimap:  NewMinimap(config.MinimapSize),
		effects:  NewEffects(config.MaxParticles, simCfg.Director.Seed),
	}
	if err := g.startSession(); err != nil {
		return nil, err
	}
	return g, nil
}

// SetProfiler enables frame rate drop profiling.
func (g *Game) SetProfiler(p *Profiler) { g.profiler = p }

// Session returns the running session.
func (g *Game) Session() *sim.Session { return g.session }

// startSession replaces the session with a fresh one. Each restart advances
// the seed so spawns differ between attempts.
func (g *Game) startSession() error {
	cfg := g.simCfg
	cfg.Director.Seed += int64(g.restarts)
	g.arena.Apply(&cfg)

	s, err := sim.NewSession(cfg, g.arena.Obstacles(),
		sim.WithLogger(g.log),
		sim.WithEvents(sim.Sinks{g.effects, g.events}),
		sim.WithSpawn(g.arena.Spawn),
	)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	g.session = s
	g.effects.Clear()
	g.paused = false
	g.endTimer = 0
	g.camera.CenterOn(s.Player().Position())
	g.lastUpdateTime = time.Now()
	return nil
}

// Update advances the game by the wall-clock time since the last frame.
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	if g.profiler != nil {
		g.profiler.Observe(deltaTime, func() string {
			return fmt.Sprintf("enemies%d-arrows%d", len(g.session.Enemies()), len(g.session.Arrows()))
		})
	}

	// Clamp delta time to prevent large jumps
	if deltaTime > g.config.MaxFrameDelta {
		deltaTime = g.config.MaxFrameDelta
	}

	controls := ReadControls()
	if controls.ToggleCoords {
		g.debug.ShowCoords = !g.debug.ShowCoords
	}
	if controls.ToggleHitboxes {
		g.debug.ShowHitboxes = !g.debug.ShowHitboxes
	}
	if controls.ToggleFPS {
		g.debug.ShowFPS = !g.debug.ShowFPS
	}

	if g.session.Outcome() != sim.OutcomeRunning {
		g.endTimer += deltaTime
		g.effects.Update(deltaTime)
		if controls.Restart && g.endScreenShown() {
			g.restarts++
			g.log.Info().Int("restarts", g.restarts).Msg("restarting")
			return g.startSession()
		}
		return nil
	}

	if controls.TogglePause {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.effects.Update(deltaTime)
	g.session.Step(deltaTime, ReadInput())
	g.camera.Follow(g.session.Player().Position(), g.config.CameraLerp)
	return nil
}

func (g *Game) endScreenShown() bool {
	return g.session.Outcome() != sim.OutcomeRunning && g.endTimer >= g.config.EndScreenDelay
}

// Draw renders the world, the HUD and any overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := float64(g.config.ScreenWidth), float64(g.config.ScreenHeight)
	screen.Fill(colorBackground)

	g.renderer.Render(screen, g.session, g.debug)
	g.effects.Draw(screen, g.camera)
	g.minimap.Render(screen, g.session, g.camera.View(), w, h)
	renderHUD(screen, g.session, g.debug, w)

	switch {
	case g.endScreenShown() && g.session.Outcome() == sim.OutcomeVictory:
		renderOverlay(screen, "VICTORY", "Press R to play again", w, h)
	case g.endScreenShown():
		renderOverlay(screen, "YOU DIED", "Press R to try again", w, h)
	case g.paused:
		renderOverlay(screen, "PAUSED", "Press Esc to resume", w, h)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
