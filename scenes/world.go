package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/core"
	"github.com/automoto/digdug/fonts"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// respawnDelay is how long the field stays frozen after the player is defeated.
const respawnDelay = 1.5

// WorldScene runs the simulation and draws it.
type WorldScene struct {
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once

	sim        *core.Simulation
	board      *core.ScoreBoard
	input      InputState
	levelIndex int
	paused     bool
	debug      bool
	downTimer  float64
	err        error

	shake  screenShake
	shakeX float64
	shakeY float64
	field  *ebiten.Image
}

func NewWorldScene(sc SceneChanger, opts Options) *WorldScene {
	return &WorldScene{sceneChanger: sc, opts: opts}
}

func (ws *WorldScene) configure() {
	ws.board = core.NewScoreBoard(ws.opts.Log)
	ws.board.RaiseHighScore(ws.opts.HighScore)

	if len(ws.opts.Levels) == 0 {
		ws.err = fmt.Errorf("no levels loaded")
		return
	}
	log := ws.opts.Log
	cues := core.SinkFunc(func(ev components.Event) {
		log.Debug().Stringer("event", ev.Kind).Float64("x", ev.X).Float64("y", ev.Y).Msg("cue")
		switch ev.Kind {
		case components.EventRockLanded:
			ws.shake.trigger(2, 12)
		case components.EventPlayerLostLife:
			ws.shake.trigger(4, 20)
		}
	})
	ws.sim, ws.err = core.New(ws.opts.Levels[0],
		core.WithLogger(ws.opts.Log),
		core.WithSeed(ws.opts.Seed),
		core.WithSink(ws.board),
		core.WithSink(cues),
	)
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return
	}

	ws.input.Poll()
	if ws.input.JustPressed(ActionPause) {
		ws.paused = !ws.paused
	}
	if ws.input.JustPressed(ActionDebug) {
		ws.debug = !ws.debug
	}
	if ws.paused {
		return
	}

	dt := 1 / float64(ebiten.TPS())
	ws.sim.Step(dt, ws.input.Intent())
	ws.shakeX, ws.shakeY = ws.shake.update()

	switch {
	case ws.sim.GameOver():
		ws.downTimer += dt
		if ws.downTimer >= respawnDelay {
			ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.opts, ws.board, ws.sim.Level().Name))
		}
	case ws.sim.Cleared():
		ws.nextLevel()
	default:
		if p, ok := ws.sim.Player(); ok && !p.Alive() {
			ws.downTimer += dt
			if ws.downTimer >= respawnDelay {
				ws.downTimer = 0
				ws.sim.RespawnPlayer()
			}
		}
	}
}

func (ws *WorldScene) nextLevel() {
	ws.levelIndex = (ws.levelIndex + 1) % len(ws.opts.Levels)
	level := ws.opts.Levels[ws.levelIndex]
	if err := ws.sim.Reset(level); err != nil {
		ws.opts.Log.Error().Err(err).Str("level", level.Name).Msg("could not load next stage")
		ws.err = err
		return
	}
	ws.downTimer = 0
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.err != nil {
		ebitenutil.DebugPrintAt(screen, ws.err.Error(), 4, 4)
		return
	}
	if ws.sim == nil {
		return
	}

	if ws.field == nil {
		ws.field = ebiten.NewImage(cfg.WorldWidth(), cfg.WorldHeight())
	}
	ws.field.Clear()

	snap := ws.sim.Snapshot()
	drawGrid(ws.field, snap.Grid)
	for _, sp := range snap.Sprites {
		drawSprite(ws.field, sp)
	}
	if ws.debug {
		drawDebug(ws.field, ws.sim.World())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ws.shakeX, ws.shakeY)
	screen.DrawImage(ws.field, op)
	hud := fmt.Sprintf("1UP %d  HI %d  x%d  R%d", snap.Score, ws.board.HighScore(), snap.Lives, snap.Stage)
	text.Draw(screen, hud, fonts.HUD.Get(), 2, 10, cfg.UI.TextColor)
	if ws.paused {
		msg := "PAUSED"
		text.Draw(screen, msg, fonts.Title.Get(), (cfg.WorldWidth()-fonts.Title.Width(msg))/2, cfg.WorldHeight()/2, cfg.UI.TextColor)
	}
}

func drawGrid(screen *ebiten.Image, g *tilegrid.Grid) {
	if g == nil {
		return
	}
	ts := float32(g.TileSize())
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			c, ok := tileColor(g.TileAtCell(cx, cy))
			if !ok {
				continue
			}
			vector.FillRect(screen, float32(cx)*ts, float32(cy)*ts, ts, ts, c, false)
		}
	}
}

func tileColor(code tilegrid.Code) (color.RGBA, bool) {
	switch code {
	case tilegrid.Surface:
		return cfg.UI.Surface, true
	case tilegrid.Bedrock:
		return cfg.UI.Bedrock, true
	case tilegrid.SoftA, tilegrid.SoftB, tilegrid.SoftC, tilegrid.SoftD:
		return cfg.UI.Dirt[code-tilegrid.SoftA], true
	}
	return color.RGBA{}, false
}

func drawSprite(screen *ebiten.Image, sp core.Sprite) {
	b := sp.Bounds
	switch sp.Kind {
	case core.SpriteRock:
		c := cfg.UI.RockColor
		if dirt, ok := tileColor(sp.Texture); ok && tilegrid.IsSoft(sp.Texture) {
			c = dirt
		}
		fillRect(screen, b.X+2, b.Y+2, b.W-4, b.H-4, fade(c, sp.Alpha))
	case core.SpriteEnemy:
		c := cfg.UI.EnemyColor
		if sp.Ghost {
			c = cfg.UI.GhostColor
		}
		grow := float64(sp.Inflation) * 2
		fillRect(screen, b.X+2-grow, b.Y+2-grow, b.W-4+2*grow, b.H-4+2*grow, c)
	case core.SpriteHarpoon:
		fillRect(screen, b.X, b.Y, b.W, b.H, cfg.UI.Harpoon)
	case core.SpritePlayer:
		fillRect(screen, b.X+2, b.Y+2, b.W-4, b.H-4, cfg.UI.PlayerColor)
		// Facing marker
		cx, cy := b.X+b.W/2, b.Y+b.H/2
		fillRect(screen, cx+float64(sp.FacingX)*5-2, cy+float64(sp.FacingY)*5-2, 4, 4, cfg.UI.Harpoon)
	}
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
