package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk settings document. Each section points at the live
// package-level value, so keys missing from the file keep their defaults.
type File struct {
	Grid      *GridConfig      `yaml:"grid"`
	Player    *PlayerConfig    `yaml:"player"`
	Harpoon   *HarpoonConfig   `yaml:"harpoon"`
	Enemy     *EnemyConfig     `yaml:"enemy"`
	Rock      *RockConfig      `yaml:"rock"`
	Score     *ScoreConfig     `yaml:"score"`
	Directory *DirectoryConfig `yaml:"directory"`
	Loop      *LoopConfig      `yaml:"loop"`
}

func live() *File {
	return &File{
		Grid:      &Grid,
		Player:    &Player,
		Harpoon:   &Harpoon,
		Enemy:     &Enemy,
		Rock:      &Rock,
		Score:     &Score,
		Directory: &Directory,
		Loop:      &Loop,
	}
}

// LoadOverrides merges the YAML settings file at path over the current values.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides merges a YAML settings document over the current values.
func ApplyOverrides(data []byte) error {
	if err := yaml.Unmarshal(data, live()); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	if Grid.TileSize <= 0 || Grid.Width <= 0 || Grid.Height <= 0 {
		return fmt.Errorf("invalid grid %dx%d tile %d", Grid.Width, Grid.Height, Grid.TileSize)
	}
	if Enemy.MaxPump <= 0 {
		return fmt.Errorf("enemy max_pump must be positive, got %d", Enemy.MaxPump)
	}
	return nil
}

// Dump renders the current values as YAML.
func Dump() ([]byte, error) {
	out, err := yaml.Marshal(live())
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return out, nil
}
