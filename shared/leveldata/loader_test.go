package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSmallStage(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", level.Name)
	assert.Equal(t, 5, level.Width)
	assert.Equal(t, 4, level.Height)
	assert.Equal(t, 16, level.TileSize)

	e, s := tilegrid.Empty, tilegrid.Surface
	a, b, d := tilegrid.SoftA, tilegrid.SoftB, tilegrid.SoftD
	assert.Equal(t, []tilegrid.Code{
		s, s, s, s, s,
		a, e, e, b, e,
		e, e, d, e, a,
		d, d, d, d, d,
	}, level.Tiles)

	assert.Equal(t, CellSpawn{CellX: 1, CellY: 1}, level.Player)
	assert.Equal(t, []EnemySpawn{
		{Kind: "pooka", CellSpawn: CellSpawn{CellX: 2, CellY: 1}},
		{Kind: "pooka", CellSpawn: CellSpawn{CellX: 3, CellY: 2}},
	}, level.Enemies)
	assert.Equal(t, []RockSpawn{
		{CellSpawn: CellSpawn{CellX: 4, CellY: 1}, Texture: tilegrid.Surface},
		{CellSpawn: CellSpawn{CellX: 0, CellY: 2}, Texture: tilegrid.Empty},
	}, level.Rocks)

	g := level.Grid()
	assert.Equal(t, tilegrid.SoftB, g.TileAtCell(3, 1))
	assert.Equal(t, tilegrid.Invalid, g.TileAtCell(5, 0))
}

func TestLoadRequiresPlayer(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "noplayer.tmx")
	assert.ErrorContains(t, err, "no player spawn")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "missing.tmx")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	_, _, err := LoadAll(os.DirFS("testdata"), ".")
	// noplayer.tmx is in the same directory and must fail the batch
	assert.Error(t, err)

	_, _, err = LoadAll(os.DirFS("testdata"), "nowhere")
	assert.ErrorContains(t, err, "no .tmx files")
}
