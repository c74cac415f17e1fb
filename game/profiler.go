package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrProfilerBusy is returned when a capture is running or cooling down.
var ErrProfilerBusy = errors.New("profiler busy")

// Profiler captures a short CPU profile when the frame rate drops.
type Profiler struct {
	mu          sync.Mutex
	dir         string
	duration    time.Duration
	cooldown    time.Duration
	threshold   float64
	isProfiling bool
	lastCapture time.Time
	log         zerolog.Logger

	// frame rate sampling
	fps          float64
	frames       int
	sampleTimer  float64
	warmup       float64
	sinceStarted float64
}

// NewProfiler writes profiles under dir, creating it if needed. A capture is
// triggered when the sampled frame rate falls below threshold.
func NewProfiler(dir string, threshold float64, log zerolog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir %s: %w", dir, err)
	}
	return &Profiler{
		dir:       dir,
		duration:  5 * time.Second,
		cooldown:  30 * time.Second,
		threshold: threshold,
		warmup:    3,
		log:       log.With().Str("component", "profiler").Logger(),
	}, nil
}

// Observe records one frame of dt seconds and starts a capture when the frame
// rate sampled over the last half second is below the threshold. Startup
// frames are ignored.
func (p *Profiler) Observe(dt float64, reason func() string) {
	p.sinceStarted += dt
	p.sampleTimer += dt
	p.frames++
	if p.sampleTimer < 0.5 {
		return
	}
	p.fps = float64(p.frames) / p.sampleTimer
	p.frames, p.sampleTimer = 0, 0

	if p.sinceStarted < p.warmup || p.fps >= p.threshold {
		return
	}
	err := p.Capture(fmt.Sprintf("fps%.0f-%s", p.fps, reason()))
	if err != nil && !errors.Is(err, ErrProfilerBusy) {
		p.log.Error().Err(err).Msg("profile capture failed")
	}
}

// Capture starts a CPU profile in the background. It returns ErrProfilerBusy
// while another capture runs or the cooldown has not elapsed.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling || time.Since(p.lastCapture) < p.cooldown {
		return ErrProfilerBusy
	}

	path := filepath.Join(p.dir, fmt.Sprintf("fps-drop-%s-%s.cpu.prof", time.Now().Format("20060102-150405"), reason))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return fmt.Errorf("start cpu profile: %w", err)
	}
	p.isProfiling = true
	p.lastCapture = time.Now()
	p.log.Warn().Float64("fps", p.fps).Str("path", path).Msg("frame rate drop, capturing profile")

	go func() {
		time.Sleep(p.duration)
		pprof.StopCPUProfile()
		if err := file.Close(); err != nil {
			p.log.Error().Err(err).Msg("close profile")
		}

		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
		p.log.Info().Str("path", path).Msg("profile saved")
	}()
	return nil
}
