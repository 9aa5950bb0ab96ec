package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/lafriks/go-tiled"
)

// Layer and object group names the loader reads.
const (
	TileLayer   = "dirt"
	SpawnLayer  = "spawns"
	SpawnPlayer = "player"
	SpawnRock   = "rock"
)

// Load parses a TMX stage. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: levelMap.TileWidth,
		Tiles:    make([]tilegrid.Code, levelMap.Width*levelMap.Height),
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		for i, tile := range layer.Tiles {
			if i >= len(level.Tiles) {
				break
			}
			level.Tiles[i] = tileCode(tile)
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q tile layer", tmxPath, TileLayer)
	}

	hasPlayer := false
	ts := float64(level.TileSize)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnLayer {
			continue
		}
		for _, o := range og.Objects {
			cell := CellSpawn{
				CellX: int(math.Floor(o.X / ts)),
				CellY: int(math.Floor(o.Y / ts)),
			}
			switch strings.ToLower(o.Name) {
			case SpawnPlayer:
				level.Player = cell
				hasPlayer = true
			case SpawnRock:
				level.Rocks = append(level.Rocks, RockSpawn{
					CellSpawn: cell,
					Texture:   level.textureRightOf(cell),
				})
			case "":
				return nil, fmt.Errorf("load TMX %s: unnamed spawn object %d", tmxPath, o.ID)
			default:
				level.Enemies = append(level.Enemies, EnemySpawn{
					Kind:      strings.ToLower(o.Name),
					CellSpawn: cell,
				})
			}
		}
	}
	if !hasPlayer {
		return nil, fmt.Errorf("load TMX %s: no player spawn", tmxPath)
	}

	// Spawn order is part of determinism: sort by row, then column.
	sort.SliceStable(level.Enemies, func(i, j int) bool {
		return cellLess(level.Enemies[i].CellSpawn, level.Enemies[j].CellSpawn)
	})
	sort.SliceStable(level.Rocks, func(i, j int) bool {
		return cellLess(level.Rocks[i].CellSpawn, level.Rocks[j].CellSpawn)
	})

	return level, nil
}

// tileCode reads the tile's "code" property, falling back to the local tile
// ID plus one so a bare tileset maps surface, soft A..D and bedrock in order.
func tileCode(tile *tiled.LayerTile) tilegrid.Code {
	if tile == nil || tile.IsNil() {
		return tilegrid.Empty
	}
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			for _, prop := range tilesetTile.Properties {
				if prop.Name == "code" {
					return tilegrid.Code(tilesetTile.Properties.GetInt("code"))
				}
			}
		}
	}
	return tilegrid.Code(tile.ID + 1)
}

// textureRightOf returns the code of the cell right of c, or Surface at the edge.
func (l *Level) textureRightOf(c CellSpawn) tilegrid.Code {
	x := c.CellX + 1
	if x >= l.Width || c.CellY < 0 || c.CellY >= l.Height {
		return tilegrid.Surface
	}
	return l.Tiles[c.CellY*l.Width+x]
}

func cellLess(a, b CellSpawn) bool {
	if a.CellY != b.CellY {
		return a.CellY < b.CellY
	}
	return a.CellX < b.CellX
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
