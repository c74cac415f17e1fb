package sim

import (
	"github.com/rs/zerolog"

	"arenasurvivor/geom"
)

// EventKind names something the audio or presentation layer may react to.
type EventKind int

const (
	EventAttackIssued EventKind = iota // Player started a swing
	EventHitLanded                     // Player melee damaged an enemy
	EventPlayerHurt                    // An enemy or arrow damaged the player
	EventPlayerDied
	EventEnemyKilled
	EventBossSpawned
	EventBossWindup // Boss started a strike
	EventBossDefeated
	EventArrowFired
)

var eventKindNames = [...]string{
	EventAttackIssued: "attack_issued",
	EventHitLanded:    "hit_landed",
	EventPlayerHurt:   "player_hurt",
	EventPlayerDied:   "player_died",
	EventEnemyKilled:  "enemy_killed",
	EventBossSpawned:  "boss_spawned",
	EventBossWindup:   "boss_windup",
	EventBossDefeated: "boss_defeated",
	EventArrowFired:   "arrow_fired",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is a fire-and-forget notification emitted during a tick.
type Event struct {
	Kind   EventKind
	Source EntityID
	Enemy  EnemyKind
	Pos    geom.Vec2
	Amount int
}

// EventSink receives events. Implementations must not block the tick.
type EventSink interface {
	Notify(ev Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ev Event)

func (f EventSinkFunc) Notify(ev Event) { f(ev) }

// Sinks fans an event out to every sink in order.
type Sinks []EventSink

func (s Sinks) Notify(ev Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Notify(ev)
		}
	}
}

type nopSink struct{}

func (nopSink) Notify(Event) {}

// LogSink writes every event to a logger at debug level.
type LogSink struct {
	Logger zerolog.Logger
}

func (l LogSink) Notify(ev Event) {
	l.Logger.Debug().
		Str("event", ev.Kind.String()).
		Uint64("source", uint64(ev.Source)).
		Str("enemy", ev.Enemy.String()).
		Float64("x", ev.Pos.X).
		Float64("y", ev.Pos.Y).
		Int("amount", ev.Amount).
		Msg("event")
}
