package factory

import (
	"github.com/automoto/digdug/archetypes"
	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/automoto/digdug/tags"
	"github.com/yohamta/donburi"
)

// CreateRock spawns a resting rock on cell (cx, cy) and marks the cell as
// Bedrock so enemies path around it.
func CreateRock(w donburi.World, grid *tilegrid.Grid, cx, cy int, texture tilegrid.Code) *donburi.Entry {
	rock := archetypes.Rock.Spawn(w)

	x, y := cellCenter(cx, cy)
	components.Actor.SetValue(rock, components.ActorData{
		X: x, Y: y,
		TargetX: x, TargetY: y,
		Speed: cfg.Rock.FallSpeed,
	})
	components.Rock.SetValue(rock, components.RockData{
		State:         components.RockResting,
		Alpha:         1,
		TextureSource: texture,
	})
	ts := float64(cfg.Grid.TileSize)
	addObject(w, rock, x, y, ts, ts, tags.ResolvRock)

	if grid != nil {
		grid.SetTileCell(cx, cy, tilegrid.Bedrock)
	}
	return rock
}
