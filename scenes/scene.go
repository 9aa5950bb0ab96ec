// Package scenes hosts the ebitengine front end: the playfield, the game
// over screen and keyboard/gamepad polling.
package scenes

import (
	"github.com/automoto/digdug/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is one screen of the game.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Options carries what every run of the playfield needs.
type Options struct {
	Levels    []*leveldata.Level
	Seed      int64
	Log       zerolog.Logger
	HighScore int
}
