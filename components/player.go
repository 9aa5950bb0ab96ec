package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Lives  int
	Score  int
	Health int // 0 means defeated

	// CreateTunnels is off while a scripted walk is in progress.
	CreateTunnels bool
	Script        [][2]int // remaining waypoint cells of a scripted walk

	FacingX, FacingY int     // last movement direction, defaults to right
	Immobilized      float64 // seconds left

	SpawnCellX, SpawnCellY int
}

var Player = donburi.NewComponentType[PlayerData]()

// Alive reports whether the player can still act this stage.
func (p *PlayerData) Alive() bool {
	return p.Health > 0
}
