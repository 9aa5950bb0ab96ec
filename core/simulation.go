// Package core steps the grid simulation one frame at a time and reports
// what happened to scoring, audio and rendering layers.
package core

import (
	"fmt"
	"math/rand"

	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/leveldata"
	"github.com/automoto/digdug/systems"
	"github.com/automoto/digdug/systems/factory"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

// Sink consumes simulation events.
type Sink interface {
	Handle(ev components.Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ev components.Event)

func (f SinkFunc) Handle(ev components.Event) { f(ev) }

// Simulation owns one world: the grid, the player, enemies and rocks.
type Simulation struct {
	world donburi.World
	rng   gamemath.Rand
	log   zerolog.Logger
	sinks []Sink
	level *leveldata.Level
	frame uint64
}

type Option func(*Simulation)

// WithLogger sets the simulation logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// WithRand sets the random source used for enemy pacing and wandering.
func WithRand(r gamemath.Rand) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithSink adds an event consumer.
func WithSink(sink Sink) Option {
	return func(s *Simulation) { s.sinks = append(s.sinks, sink) }
}

// New builds a simulation and loads level into it.
func New(level *leveldata.Level, opts ...Option) (*Simulation, error) {
	s := &Simulation{
		world: donburi.NewWorld(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}
	if level == nil {
		return nil, fmt.Errorf("new simulation: nil level")
	}
	if err := s.load(level); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	return s, nil
}

func (s *Simulation) load(level *leveldata.Level) error {
	if level.TileSize != cfg.Grid.TileSize {
		return fmt.Errorf("level %s tile size %d, configured %d", level.Name, level.TileSize, cfg.Grid.TileSize)
	}
	s.level = level

	factory.CreateSpace(s.world, level.Width*level.TileSize, level.Height*level.TileSize, level.TileSize)
	factory.CreateEventQueue(s.world)
	grid := level.Grid()
	factory.CreateLevel(s.world, level.Name, grid)
	factory.CreatePlayer(s.world, level.Player.CellX, level.Player.CellY)
	s.spawnAll(level)

	s.log.Info().
		Str("level", level.Name).
		Int("width", level.Width).
		Int("height", level.Height).
		Int("enemies", len(level.Enemies)).
		Int("rocks", len(level.Rocks)).
		Msg("level loaded")
	return nil
}

func (s *Simulation) spawnAll(level *leveldata.Level) {
	for _, r := range level.Rocks {
		systems.SpawnRock(s.world, s.log, r.CellX, r.CellY, r.Texture)
	}
	for _, e := range level.Enemies {
		if e.Kind != "pooka" {
			s.log.Warn().Str("kind", e.Kind).Msg("unknown enemy kind, spawning pooka")
		}
		systems.SpawnEnemy(s.world, s.log, s.rng, e.CellX, e.CellY)
	}
}

func (s *Simulation) newFrame(dt float64, intent components.Intent) *systems.Frame {
	return &systems.Frame{
		World:  s.world,
		DT:     dt,
		Intent: intent,
		Rand:   s.rng,
		Log:    s.log,
	}
}

// Step advances the simulation by dt seconds: player, harpoon, then the
// enemy and rock collections with collision and purge. Events raised during
// the step are delivered to the sinks before Step returns.
func (s *Simulation) Step(dt float64, intent components.Intent) {
	f := s.newFrame(dt, intent)
	systems.UpdatePlayer(f)
	systems.UpdateHarpoon(f)
	systems.UpdateDirectory(f)
	s.frame++
	s.flush()
}

func (s *Simulation) flush() {
	for _, ev := range systems.DrainEvents(s.world) {
		for _, sink := range s.sinks {
			sink.Handle(ev)
		}
	}
}

// Reset tears down the stage and loads level in its place. The player keeps
// lives and score.
func (s *Simulation) Reset(level *leveldata.Level) error {
	if level == nil {
		return fmt.Errorf("reset: nil level")
	}
	if level.TileSize != cfg.Grid.TileSize {
		return fmt.Errorf("reset: level %s tile size %d, configured %d", level.Name, level.TileSize, cfg.Grid.TileSize)
	}
	f := s.newFrame(0, components.Intent{})
	systems.ClearStage(f)

	factory.CreateLevel(s.world, level.Name, level.Grid())
	s.level = level
	factory.ResizeSpace(s.world, level.Width*level.TileSize, level.Height*level.TileSize, level.TileSize)

	systems.PlacePlayer(s.world, level.Player.CellX, level.Player.CellY)
	s.spawnAll(level)
	s.log.Info().Str("level", level.Name).Msg("stage reset")
	s.flush()
	return nil
}

// RespawnPlayer returns a defeated player with lives left to its spawn cell.
func (s *Simulation) RespawnPlayer() bool {
	return systems.RespawnPlayer(s.world)
}

// ScriptWalk walks the player through waypoint cells without digging.
func (s *Simulation) ScriptWalk(waypoints ...[2]int) {
	systems.ScriptWalk(s.world, waypoints...)
}

// SpawnEnemy adds a Pooka unless the enemy cap is reached.
func (s *Simulation) SpawnEnemy(cx, cy int) bool {
	_, ok := systems.SpawnEnemy(s.world, s.log, s.rng, cx, cy)
	return ok
}

// World exposes the entity world for renderers and tests.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Frame returns the number of steps taken.
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// Level returns the level currently loaded.
func (s *Simulation) Level() *leveldata.Level {
	return s.level
}

// Player returns a copy of the player state.
func (s *Simulation) Player() (components.PlayerData, bool) {
	pe, ok := components.Player.First(s.world)
	if !ok {
		return components.PlayerData{}, false
	}
	return *components.Player.Get(pe), true
}

// GameOver reports whether the player is defeated with no lives left.
func (s *Simulation) GameOver() bool {
	p, ok := s.Player()
	return ok && !p.Alive() && p.Lives == 0
}

// Cleared reports whether every enemy is gone.
func (s *Simulation) Cleared() bool {
	return systems.LiveEnemies(s.world) == 0
}
