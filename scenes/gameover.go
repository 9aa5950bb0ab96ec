package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/core"
	"github.com/automoto/digdug/fonts"
	"github.com/automoto/digdug/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	sceneChanger SceneChanger
	opts         Options
	score        int
	highScore    int
	games        int
	input        InputState
	frames       int
}

// NewGameOverScene records the finished game and creates the game over screen
func NewGameOverScene(sc SceneChanger, opts Options, board *core.ScoreBoard, level string) *GameOverScene {
	gs := &GameOverScene{
		sceneChanger: sc,
		opts:         opts,
		score:        board.Score(),
		highScore:    board.HighScore(),
	}

	progress, err := systems.RecordGame(board.Score(), level)
	if err != nil {
		opts.Log.Warn().Err(err).Msg("could not save progress")
	}
	gs.highScore = max(gs.highScore, progress.HighScore)
	gs.games = progress.GamesTotal
	gs.opts.HighScore = gs.highScore

	opts.Log.Info().
		Int("score", gs.score).
		Int("high_score", gs.highScore).
		Int("tiles_dug", board.TilesDug()).
		Int("games", gs.games).
		Msg("game over")
	return gs
}

func (gs *GameOverScene) Update() {
	gs.input.Poll()
	gs.frames++
	// Ignore a pump press still held from the last life.
	if gs.frames < 30 {
		return
	}
	if gs.input.JustPressed(ActionRestart) || gs.input.JustPressed(ActionPump) {
		gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger, gs.opts))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	y := cfg.WorldHeight()/2 - 30
	centered(screen, fonts.Title, "GAME OVER", y, cfg.UI.TextColor)
	centered(screen, fonts.HUD, fmt.Sprintf("SCORE %d", gs.score), y+24, cfg.White)
	centered(screen, fonts.HUD, fmt.Sprintf("HI %d", gs.highScore), y+38, cfg.White)
	centered(screen, fonts.Small, "PRESS ENTER", y+64, cfg.UI.TextColor)
}

func centered(screen *ebiten.Image, f fonts.FontName, s string, y int, clr color.Color) {
	x := (cfg.WorldWidth() - f.Width(s)) / 2
	text.Draw(screen, s, f.Get(), x, y, clr)
}
