package factory

import (
	"github.com/automoto/digdug/archetypes"
	"github.com/automoto/digdug/components"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/yohamta/donburi"
)

// CreateLevel adds the level singleton, or replaces its grid if one exists.
func CreateLevel(w donburi.World, name string, grid *tilegrid.Grid) *donburi.Entry {
	if level, ok := components.Level.First(w); ok {
		data := components.Level.Get(level)
		data.Name = name
		data.Grid = grid
		data.Stage++
		return level
	}
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Name:  name,
		Grid:  grid,
		Stage: 1,
	})
	return level
}
