package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/digdug/assets"
	"github.com/automoto/digdug/components"
	"github.com/automoto/digdug/config"
	"github.com/automoto/digdug/core"
	"github.com/automoto/digdug/fonts"
	"github.com/automoto/digdug/scenes"
	"github.com/automoto/digdug/shared/leveldata"
	"github.com/automoto/digdug/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{}
	g.scene = scenes.NewWorldScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.WorldWidth(), config.WorldHeight()
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML file overriding tuning values")
		levelName  = flag.String("level", "", "start on this embedded stage instead of the first")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "random seed for enemy pacing")
		headless   = flag.Bool("headless", false, "run the simulation without a window")
		duration   = flag.Duration("duration", 30*time.Second, "headless run time")
		debug      = flag.Bool("debug", false, "log simulation events")
		dumpConfig = flag.Bool("dump-config", false, "print the effective configuration and exit")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
	if *debug {
		log = log.Level(zerolog.DebugLevel)
	}

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
	}
	if *dumpConfig {
		out, err := config.Dump()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to encode config")
		}
		os.Stdout.Write(out)
		return
	}

	byName, names, err := assets.LoadLevels()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load levels")
	}
	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	if *levelName != "" {
		start := -1
		for i, name := range names {
			if name == *levelName {
				start = i
			}
		}
		if start < 0 {
			log.Fatal().Str("level", *levelName).Strs("available", names).Msg("unknown level")
		}
		rotated := append([]*leveldata.Level{}, levels[start:]...)
		levels = append(rotated, levels[:start]...)
	}
	log.Info().Strs("levels", names).Int64("seed", *seed).Msg("starting")

	if *headless {
		runHeadless(log, levels[0], *seed, *duration)
		return
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}
	highScore := 0
	if err := systems.InitPersistence("digdug"); err != nil {
		log.Warn().Err(err).Msg("progress will not be saved")
	} else if progress, err := systems.LoadProgress(); err != nil {
		log.Warn().Err(err).Msg("could not load saved progress")
	} else {
		highScore = progress.HighScore
	}

	ebiten.SetWindowTitle("Dig Dug")
	ebiten.SetWindowSize(config.WorldWidth()*config.UI.Scale, config.WorldHeight()*config.UI.Scale)
	ebiten.SetTPS(config.Loop.TickRate)

	game := NewGame(scenes.Options{Levels: levels, Seed: *seed, Log: log, HighScore: highScore})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// runHeadless plays the stage with an idle player until the duration ends,
// the player runs out of lives or the stage is cleared.
func runHeadless(log zerolog.Logger, level *leveldata.Level, seed int64, d time.Duration) {
	board := core.NewScoreBoard(log)
	sim, err := core.New(level, core.WithLogger(log), core.WithSeed(seed), core.WithSink(board))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start simulation")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, d)
	defer cancelTimeout()

	loop := core.NewGameLoop(sim, core.InputFunc(func() components.Intent {
		return components.Intent{}
	}), config.Loop.TickRate)
	loop.OnTick = func(s *core.Simulation) bool {
		if p, ok := s.Player(); ok && !p.Alive() {
			s.RespawnPlayer()
		}
		return !s.GameOver() && !s.Cleared()
	}
	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("game loop failed")
	}

	player, _ := sim.Player()
	log.Info().
		Uint64("frames", sim.Frame()).
		Int("score", board.Score()).
		Int("lives", player.Lives).
		Int("kills_inflation", board.Kills(components.KillInflation)).
		Int("kills_rock", board.Kills(components.KillRock)).
		Msg("headless run finished")
}
