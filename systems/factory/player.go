package factory

import (
	"github.com/automoto/digdug/archetypes"
	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player centered on cell (cx, cy), facing right.
func CreatePlayer(w donburi.World, cx, cy int) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	x, y := cellCenter(cx, cy)
	components.Actor.SetValue(player, components.ActorData{
		X: x, Y: y,
		TargetX: x, TargetY: y,
		Speed: cfg.Player.Speed,
	})
	components.Player.SetValue(player, components.PlayerData{
		Lives:         cfg.Player.StartingLives,
		Health:        cfg.Player.Health,
		CreateTunnels: true,
		FacingX:       1,
		SpawnCellX:    cx,
		SpawnCellY:    cy,
	})
	addObject(w, player, x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)

	probe := resolv.NewObject(x, y, 0, 0, tags.ResolvHarpoon)
	probe.Data = player
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(probe)
	}
	components.Harpoon.SetValue(player, components.HarpoonData{
		State:  components.HarpoonIdle,
		DirX:   1,
		Target: donburi.Null,
		Probe:  probe,
	})

	return player
}

func cellCenter(cx, cy int) (float64, float64) {
	ts := float64(cfg.Grid.TileSize)
	return float64(cx)*ts + ts/2, float64(cy)*ts + ts/2
}
