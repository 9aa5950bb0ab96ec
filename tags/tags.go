package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Pooka  = donburi.NewTag().SetName("Pooka")
	Rock   = donburi.NewTag().SetName("Rock")
)

// Resolv tags for collision queries
const (
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvRock    = "Rock"
	ResolvHarpoon = "Harpoon"
)
