// Package leveldata parses Tiled stage maps into tile codes and spawn lists.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

import "github.com/automoto/digdug/shared/tilegrid"

// Level is everything a simulation needs to start a stage.
type Level struct {
	Name          string
	Width, Height int // cells
	TileSize      int
	Tiles         []tilegrid.Code // row-major

	Player  CellSpawn
	Enemies []EnemySpawn
	Rocks   []RockSpawn
}

// CellSpawn is a spawn position in cells.
type CellSpawn struct {
	CellX, CellY int
}

// EnemySpawn is an enemy kind and where it starts.
type EnemySpawn struct {
	Kind string
	CellSpawn
}

// RockSpawn is a rock position plus the dirt variant it is drawn from.
type RockSpawn struct {
	CellSpawn
	Texture tilegrid.Code
}

// Grid builds a fresh tile grid from the level's codes.
func (l *Level) Grid() *tilegrid.Grid {
	return tilegrid.FromCodes(l.Width, l.Height, l.TileSize, l.Tiles)
}
