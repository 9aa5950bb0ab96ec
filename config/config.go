package config

import "image/color"

// GridConfig contains tile grid dimensions
type GridConfig struct {
	TileSize int `yaml:"tile_size"`
	Width    int `yaml:"width"`  // cells
	Height   int `yaml:"height"` // cells
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed         float64 `yaml:"speed"` // px per second
	StartingLives int     `yaml:"starting_lives"`
	Health        int     `yaml:"health"`

	// Collision box, centered on the tile
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// HarpoonConfig contains harpoon projectile configuration
type HarpoonConfig struct {
	MaxLength          float64 `yaml:"max_length"`
	ExtendSpeed        float64 `yaml:"extend_speed"`    // px per second
	ProbeThickness     float64 `yaml:"probe_thickness"` // width of the probe across the travel axis
	ImmobilizeDuration float64 `yaml:"immobilize_duration"`
}

// EnemyConfig contains Pooka configuration
type EnemyConfig struct {
	Speed      float64 `yaml:"speed"`
	GhostSpeed float64 `yaml:"ghost_speed"`
	MaxPump    int     `yaml:"max_pump"`
	MaxHealth  int     `yaml:"max_health"`

	DeflateInterval float64 `yaml:"deflate_interval"` // seconds per pump level lost
	RegenDelay      float64 `yaml:"regen_delay"`      // undamaged time before regeneration starts
	RegenInterval   float64 `yaml:"regen_interval"`

	// Hop pacing: first decision after InitialMoveDelay, then MinMoveDelay + U(0, MoveDelayJitter)
	InitialMoveDelay float64 `yaml:"initial_move_delay"`
	MinMoveDelay     float64 `yaml:"min_move_delay"`
	MoveDelayJitter  float64 `yaml:"move_delay_jitter"`

	// Ghost threshold: MinGhostDelay + U(0, GhostDelayJitter)
	MinGhostDelay    float64 `yaml:"min_ghost_delay"`
	GhostDelayJitter float64 `yaml:"ghost_delay_jitter"`
	GhostSearchRange int     `yaml:"ghost_search_range"` // ring radius cap, in cells

	KillScore       int     `yaml:"kill_score"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// RockConfig contains falling rock configuration
type RockConfig struct {
	FallDelay       float64 `yaml:"fall_delay"`
	FallSpeed       float64 `yaml:"fall_speed"`
	DestroyDuration float64 `yaml:"destroy_duration"`
	ShakeAmplitude  float64 `yaml:"shake_amplitude"`
	ShakeSpeed      float64 `yaml:"shake_speed"`
	KillMultiplier  int     `yaml:"kill_multiplier"`
}

// ScoreConfig contains scoring values
type ScoreConfig struct {
	SoftA            int `yaml:"soft_a"`
	SoftB            int `yaml:"soft_b"`
	SoftC            int `yaml:"soft_c"`
	SoftD            int `yaml:"soft_d"`
	InitialHighScore int `yaml:"initial_high_score"`
}

// DirectoryConfig contains entity collection limits
type DirectoryConfig struct {
	MaxEnemies int `yaml:"max_enemies"`
}

// LoopConfig contains the headless tick loop settings
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// UIConfig contains the debug renderer palette
type UIConfig struct {
	Scale       int
	Surface     color.RGBA
	Bedrock     color.RGBA
	Dirt        [4]color.RGBA
	PlayerColor color.RGBA
	EnemyColor  color.RGBA
	GhostColor  color.RGBA
	RockColor   color.RGBA
	Harpoon     color.RGBA
	TextColor   color.RGBA
}

// Global configuration instances
var Grid GridConfig
var Player PlayerConfig
var Harpoon HarpoonConfig
var Enemy EnemyConfig
var Rock RockConfig
var Score ScoreConfig
var Directory DirectoryConfig
var Loop LoopConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray      = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration section to its defaults.
func Reset() {
	Grid = GridConfig{
		TileSize: 16,
		Width:    14,
		Height:   15,
	}

	Player = PlayerConfig{
		Speed:           35,
		StartingLives:   3,
		Health:          1,
		CollisionWidth:  16,
		CollisionHeight: 16,
	}

	Harpoon = HarpoonConfig{
		MaxLength:          32,
		ExtendSpeed:        160,
		ProbeThickness:     4,
		ImmobilizeDuration: 0.5,
	}

	Enemy = EnemyConfig{
		Speed:      35,
		GhostSpeed: 25,
		MaxPump:    4,
		MaxHealth:  4,

		DeflateInterval: 1.0,
		RegenDelay:      3.0,
		RegenInterval:   1.0,

		InitialMoveDelay: 1.0,
		MinMoveDelay:     0.3,
		MoveDelayJitter:  0.7,

		MinGhostDelay:    5.0,
		GhostDelayJitter: 5.0,
		GhostSearchRange: 16,

		KillScore:       200,
		CollisionWidth:  16,
		CollisionHeight: 16,
	}

	Rock = RockConfig{
		FallDelay:       1.0,
		FallSpeed:       75,
		DestroyDuration: 0.6,
		ShakeAmplitude:  1.0,
		ShakeSpeed:      15,
		KillMultiplier:  2,
	}

	Score = ScoreConfig{
		SoftA:            10,
		SoftB:            20,
		SoftC:            30,
		SoftD:            40,
		InitialHighScore: 1000,
	}

	Directory = DirectoryConfig{
		MaxEnemies: 10,
	}

	Loop = LoopConfig{
		TickRate: 60,
	}

	UI = UIConfig{
		Scale:   3,
		Surface: color.RGBA{R: 40, G: 40, B: 90, A: 255},
		Bedrock: Gray,
		Dirt: [4]color.RGBA{
			{R: 222, G: 182, B: 0, A: 255},
			{R: 222, G: 121, B: 0, A: 255},
			{R: 189, G: 65, B: 0, A: 255},
			{R: 148, G: 32, B: 0, A: 255},
		},
		PlayerColor: White,
		EnemyColor:  Red,
		GhostColor:  color.RGBA{R: 255, G: 120, B: 120, A: 140},
		RockColor:   color.RGBA{R: 150, G: 120, B: 90, A: 255},
		Harpoon:     LightBlue,
		TextColor:   Yellow,
	}
}

// WorldWidth returns the grid width in pixels.
func WorldWidth() int {
	return Grid.Width * Grid.TileSize
}

// WorldHeight returns the grid height in pixels.
func WorldHeight() int {
	return Grid.Height * Grid.TileSize
}
