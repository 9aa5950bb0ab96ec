package core

import (
	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/yohamta/donburi"
)

type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpriteRock
	SpriteHarpoon
)

// Sprite is a read-only view of one drawable for a renderer.
type Sprite struct {
	Kind   SpriteKind
	Bounds gamemath.Rect

	FacingX, FacingY int
	Inflation        int  // enemy pump state
	Ghost            bool // enemy passing through dirt
	Alpha            float64
	Texture          tilegrid.Code // rock dirt variant
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Grid    *tilegrid.Grid
	Sprites []Sprite
	Score   int
	Lives   int
	Stage   int
}

// Snapshot collects the drawables in painter's order: rocks, enemies,
// harpoon, player. A defeated player is not drawn.
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	if level, ok := components.Level.First(s.world); ok {
		data := components.Level.Get(level)
		snap.Grid = data.Grid
		snap.Stage = data.Stage
	}
	ts := float64(cfg.Grid.TileSize)
	if snap.Grid != nil {
		ts = float64(snap.Grid.TileSize())
	}

	components.Rock.Each(s.world, func(e *donburi.Entry) {
		rock := components.Rock.Get(e)
		actor := components.Actor.Get(e)
		snap.Sprites = append(snap.Sprites, Sprite{
			Kind:    SpriteRock,
			Bounds:  gamemath.CenteredRect(actor.X+rock.ShakeOffset, actor.Y, ts, ts),
			Alpha:   rock.Alpha,
			Texture: rock.TextureSource,
		})
	})

	components.Enemy.Each(s.world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		actor := components.Actor.Get(e)
		sp := Sprite{
			Kind:      SpriteEnemy,
			Bounds:    gamemath.CenteredRect(actor.X, actor.Y, ts, ts),
			Inflation: enemy.PumpState,
			Ghost:     enemy.Status == components.EnemyGhost,
			Alpha:     1,
		}
		switch {
		case actor.TargetX > actor.X:
			sp.FacingX = 1
		case actor.TargetX < actor.X:
			sp.FacingX = -1
		}
		snap.Sprites = append(snap.Sprites, sp)
	})

	if pe, ok := components.Player.First(s.world); ok {
		player := components.Player.Get(pe)
		actor := components.Actor.Get(pe)
		harpoon := components.Harpoon.Get(pe)
		snap.Score = player.Score
		snap.Lives = player.Lives

		if harpoon.State != components.HarpoonIdle && harpoon.Length > 0 {
			box := gamemath.HarpoonProbe(actor.X, actor.Y, harpoon.DirX, harpoon.DirY, ts/2, harpoon.Length, cfg.Harpoon.ProbeThickness)
			snap.Sprites = append(snap.Sprites, Sprite{
				Kind:    SpriteHarpoon,
				Bounds:  box,
				FacingX: harpoon.DirX,
				FacingY: harpoon.DirY,
				Alpha:   1,
			})
		}
		if player.Alive() {
			snap.Sprites = append(snap.Sprites, Sprite{
				Kind:    SpritePlayer,
				Bounds:  gamemath.CenteredRect(actor.X, actor.Y, ts, ts),
				FacingX: player.FacingX,
				FacingY: player.FacingY,
				Alpha:   1,
			})
		}
	}
	return snap
}
