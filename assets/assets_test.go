package assets

import (
	"testing"

	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevelLoads(t *testing.T) {
	level, err := LoadLevel(DefaultLevel)
	require.NoError(t, err)

	assert.Equal(t, 14, level.Width)
	assert.Equal(t, 15, level.Height)
	assert.Len(t, level.Enemies, 3)
	assert.Len(t, level.Rocks, 3)

	g := level.Grid()
	assert.Equal(t, tilegrid.Empty, g.TileAtCell(level.Player.CellX, level.Player.CellY))
	for _, e := range level.Enemies {
		assert.Equal(t, tilegrid.Empty, g.TileAtCell(e.CellX, e.CellY), "enemy spawns in a tunnel")
	}
	for _, r := range level.Rocks {
		assert.True(t, tilegrid.IsSoft(g.TileAtCell(r.CellX, r.CellY+1)), "rock rests on dirt")
	}
}

func TestLoadLevels(t *testing.T) {
	levels, names, err := LoadLevels()
	require.NoError(t, err)
	assert.Contains(t, names, DefaultLevel)
	assert.NotNil(t, levels[DefaultLevel])
}
