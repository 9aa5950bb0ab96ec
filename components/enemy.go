package components

import "github.com/yohamta/donburi"

type EnemyStatus int

const (
	EnemyNormal EnemyStatus = iota
	EnemyGhost
)

// KillMethod records how an enemy died, for scoring.
type KillMethod int

const (
	KillNone KillMethod = iota
	KillInflation
	KillRock
	KillContact // player touched a free enemy
)

func (m KillMethod) String() string {
	switch m {
	case KillInflation:
		return "inflation"
	case KillRock:
		return "rock"
	case KillContact:
		return "contact"
	}
	return "none"
}

type EnemyData struct {
	Kind      string // "pooka"
	Alive     bool
	Health    int
	PumpState int // 0..MaxPump, the enemy is frozen while > 0
	Status    EnemyStatus
	KilledBy  KillMethod
	KillScore int

	HarpoonStuck bool
	DeflateTimer float64
	RegenTimer   float64 // seconds since last pump

	// AI pacing
	MoveTimer      float64
	MoveDelay      float64
	StuckTimer     float64
	GhostModeDelay float64

	GhostTargetX, GhostTargetY int // cell, valid while Status == EnemyGhost
}

var Enemy = donburi.NewComponentType[EnemyData]()

// Free reports whether the AI may move the enemy.
func (e *EnemyData) Free() bool {
	return e.Alive && e.Health > 0 && e.PumpState == 0 && !e.HarpoonStuck
}

// Lethal reports whether touching the enemy defeats the player.
func (e *EnemyData) Lethal() bool {
	return e.Alive && e.PumpState == 0 && !e.HarpoonStuck
}
