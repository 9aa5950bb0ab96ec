package components

import (
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding the stage's tile grid.
type LevelData struct {
	Name  string
	Grid  *tilegrid.Grid
	Stage int
}

var Level = donburi.NewComponentType[LevelData]()
