package components

import (
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/yohamta/donburi"
)

type EventKind int

const (
	EventTileDug EventKind = iota
	EventEnemyKilled
	EventPlayerLostLife
	EventRockSquashed
	EventRockLanded
	EventRockShaking
	EventHarpoonFired
	EventHarpoonHit
	EventHarpoonMissed
	EventPump
	EventEnemyEscaped
	EventGhostStarted
	EventGhostEnded
)

func (k EventKind) String() string {
	return [...]string{
		"tile_dug", "enemy_killed", "player_lost_life", "rock_squashed", "rock_landed",
		"rock_shaking", "harpoon_fired", "harpoon_hit", "harpoon_missed", "pump",
		"enemy_escaped", "ghost_started", "ghost_ended",
	}[k]
}

// Event is a discrete simulation outcome for scoring and audio layers.
type Event struct {
	Kind   EventKind
	X, Y   float64 // pixel position where it happened
	Code   tilegrid.Code
	Score  int
	Method KillMethod
	Entity donburi.Entity
}

// EventQueueData collects events raised during a frame (singleton component).
type EventQueueData struct {
	Pending []Event
}

var Events = donburi.NewComponentType[EventQueueData]()
