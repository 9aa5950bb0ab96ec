package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/digdug/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the stage the game starts on.
const DefaultLevel = "stage1"

// LevelFS returns the embedded stage directory.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded stage, sorted by name.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	levels, names, err := leveldata.LoadAll(assetFS, "levels")
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded levels: %w", err)
	}
	return levels, names, nil
}

// LoadLevel parses one embedded stage by name.
func LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.Load(assetFS, "levels/"+name+".tmx")
}
