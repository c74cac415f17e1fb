// Package audio turns combat events into short synthesized cues.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"arenasurvivor/sim"
)

const sampleRate = beep.SampleRate(44100)

// Cue describes a sound as a sequence of notes of equal length.
type Cue struct {
	Notes   []float64
	Note    time.Duration
	Wave    Wave
	Attack  time.Duration
	Release time.Duration
	Volume  float64
}

// Length is the total play time of the cue.
func (c Cue) Length() time.Duration {
	return time.Duration(len(c.Notes)) * c.Note
}

// Streamer renders the cue at rate.
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(c.Notes))
	for _, freq := range c.Notes {
		osc := NewOscillator(freq, c.Note, c.Wave, rate)
		notes = append(notes, NewEnvelope(osc, c.Note, c.Attack, c.Release, rate))
	}
	return newVolume(beep.Seq(notes...), c.Volume)
}

var cues = map[sim.EventKind]Cue{
	sim.EventAttackIssued: {Notes: []float64{0}, Note: 90 * time.Millisecond, Wave: WaveNoise, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond, Volume: 0.15},
	sim.EventHitLanded:    {Notes: []float64{330}, Note: 70 * time.Millisecond, Wave: WaveSquare, Attack: 2 * time.Millisecond, Release: 50 * time.Millisecond, Volume: 0.2},
	sim.EventPlayerHurt:   {Notes: []float64{110}, Note: 150 * time.Millisecond, Wave: WaveSaw, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond, Volume: 0.25},
	sim.EventPlayerDied:   {Notes: []float64{392, 311, 247, 196}, Note: 220 * time.Millisecond, Wave: WaveSaw, Attack: 10 * time.Millisecond, Release: 120 * time.Millisecond, Volume: 0.3},
	sim.EventEnemyKilled:  {Notes: []float64{660, 880}, Note: 60 * time.Millisecond, Wave: WaveSine, Attack: 2 * time.Millisecond, Release: 40 * time.Millisecond, Volume: 0.25},
	sim.EventBossSpawned:  {Notes: []float64{82, 87, 82}, Note: 350 * time.Millisecond, Wave: WaveSaw, Attack: 40 * time.Millisecond, Release: 150 * time.Millisecond, Volume: 0.35},
	sim.EventBossWindup:   {Notes: []float64{147}, Note: 400 * time.Millisecond, Wave: WaveSquare, Attack: 300 * time.Millisecond, Release: 50 * time.Millisecond, Volume: 0.15},
	sim.EventBossDefeated: {Notes: []float64{523, 659, 784, 1047}, Note: 180 * time.Millisecond, Wave: WaveSine, Attack: 10 * time.Millisecond, Release: 90 * time.Millisecond, Volume: 0.3},
	sim.EventArrowFired:   {Notes: []float64{1200}, Note: 50 * time.Millisecond, Wave: WaveSine, Attack: 2 * time.Millisecond, Release: 45 * time.Millisecond, Volume: 0.1},
}

// CueFor returns the cue played for kind, if any.
func CueFor(kind sim.EventKind) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// SoundManager plays a cue for every event it is notified of. It is an
// event sink; until Initialize succeeds, and while muted, it drops events.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	log         zerolog.Logger
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager. No device is opened yet.
func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   log.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", int(sampleRate)).Msg("audio initialized")
	return nil
}

// SetMuted silences or restores cues.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Notify implements sim.EventSink.
func (sm *SoundManager) Notify(ev sim.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	cue, ok := cues[ev.Kind]
	if !ok {
		return
	}
	s := cue.Streamer(sampleRate)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup drops every playing cue.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
