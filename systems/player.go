package systems

import (
	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/yohamta/donburi"
)

// UpdatePlayer turns the frame's intent into tile-to-tile movement and digs
// the tile under the player when a step completes.
func UpdatePlayer(f *Frame) {
	e, ok := components.Player.First(f.World)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	actor := components.Actor.Get(e)
	harpoon := components.Harpoon.Get(e)
	g := levelGrid(f.World)
	if g == nil || !player.Alive() {
		return
	}

	if player.Immobilized > 0 {
		player.Immobilized = max(0, player.Immobilized-f.DT)
	}

	// 1. Finish the step in progress
	if actor.Moving {
		if Advance(actor, f.DT, actor.Speed) {
			onPlayerReachedTile(f.World, g, e)
		}
		syncObject(e)
		return
	}

	// 2. Scripted walk ignores input
	if len(player.Script) > 0 {
		followScript(g, player, actor)
		syncObject(e)
		return
	}

	// 3. Held in place by the harpoon
	if player.Immobilized > 0 || harpoon.State != components.HarpoonIdle {
		return
	}

	dx, dy := f.Intent.Direction.Delta()
	if dx == 0 && dy == 0 {
		return
	}
	player.FacingX, player.FacingY = dx, dy

	cx, cy := actorCell(g, actor)
	if !tryStep(g, actor, cx, cy, dx, dy, tilegrid.IsWalkableForPlayer) {
		return
	}
	if Advance(actor, f.DT, actor.Speed) {
		onPlayerReachedTile(f.World, g, e)
	}
	syncObject(e)
}

// onPlayerReachedTile carves the tile the player just arrived on.
func onPlayerReachedTile(w donburi.World, g *tilegrid.Grid, e *donburi.Entry) {
	player := components.Player.Get(e)
	actor := components.Actor.Get(e)

	if len(player.Script) > 0 {
		cx, cy := actorCell(g, actor)
		if next := player.Script[0]; next[0] == cx && next[1] == cy {
			player.Script = player.Script[1:]
		}
		if len(player.Script) == 0 {
			player.CreateTunnels = true
		}
		return
	}
	if !player.CreateTunnels {
		return
	}
	Dig(w, g, e, actor.X, actor.Y)
}

// Dig turns the soft tile at (x, y) into tunnel and credits its score to the
// player entry. Digging a non-soft tile does nothing.
func Dig(w donburi.World, g *tilegrid.Grid, e *donburi.Entry, x, y float64) int {
	code := g.TileAt(x, y)
	if !tilegrid.IsSoft(code) {
		return 0
	}
	g.SetTile(x, y, tilegrid.Empty)
	table := tilegrid.ScoreTable{
		SoftA: cfg.Score.SoftA,
		SoftB: cfg.Score.SoftB,
		SoftC: cfg.Score.SoftC,
		SoftD: cfg.Score.SoftD,
	}
	points := table.DigScore(code)
	components.Player.Get(e).Score += points
	emit(w, components.Event{
		Kind:   components.EventTileDug,
		X:      x,
		Y:      y,
		Code:   code,
		Score:  points,
		Entity: e.Entity(),
	})
	return points
}

// followScript steps one tile toward the next waypoint, ignoring terrain.
func followScript(g *tilegrid.Grid, player *components.PlayerData, actor *components.ActorData) {
	cx, cy := actorCell(g, actor)
	next := player.Script[0]
	dx, dy := next[0]-cx, next[1]-cy
	if dx == 0 && dy == 0 {
		player.Script = player.Script[1:]
		if len(player.Script) == 0 {
			player.CreateTunnels = true
		}
		return
	}
	if dx != 0 {
		dy = 0
	}
	sx, sy := gamemath.Sign(dx), gamemath.Sign(dy)
	player.FacingX, player.FacingY = sx, sy
	tx, ty := g.CellCenter(cx+sx, cy+sy)
	SetTarget(actor, tx, ty)
}

// ScriptWalk walks the player through waypoints with tunnelling disabled.
// Each waypoint must share a row or column with the previous one.
func ScriptWalk(w donburi.World, waypoints ...[2]int) {
	e, ok := components.Player.First(w)
	if !ok || len(waypoints) == 0 {
		return
	}
	player := components.Player.Get(e)
	player.Script = append([][2]int(nil), waypoints...)
	player.CreateTunnels = false
}

// KillPlayer defeats the player: health drops to 0, one life is lost and
// any harpoon link is released.
func KillPlayer(w donburi.World, e *donburi.Entry, cause components.KillMethod) {
	player := components.Player.Get(e)
	if !player.Alive() {
		return
	}
	player.Health = 0
	player.Lives = max(0, player.Lives-1)
	DetachHarpoon(w, e)

	actor := components.Actor.Get(e)
	emit(w, components.Event{
		Kind:   components.EventPlayerLostLife,
		X:      actor.X,
		Y:      actor.Y,
		Method: cause,
		Entity: e.Entity(),
	})
}

// RespawnPlayer puts a defeated player with lives left back on its spawn cell.
func RespawnPlayer(w donburi.World) bool {
	e, ok := components.Player.First(w)
	if !ok {
		return false
	}
	player := components.Player.Get(e)
	if player.Alive() || player.Lives <= 0 {
		return false
	}
	if !placePlayer(w, e, player.SpawnCellX, player.SpawnCellY) {
		return false
	}
	player.Health = cfg.Player.Health
	return true
}

// PlacePlayer moves the player onto cell (cx, cy), makes it the spawn cell
// and clears any step, script or harpoon in progress.
func PlacePlayer(w donburi.World, cx, cy int) bool {
	e, ok := components.Player.First(w)
	if !ok {
		return false
	}
	player := components.Player.Get(e)
	player.SpawnCellX, player.SpawnCellY = cx, cy
	DetachHarpoon(w, e)
	return placePlayer(w, e, cx, cy)
}

func placePlayer(w donburi.World, e *donburi.Entry, cx, cy int) bool {
	g := levelGrid(w)
	if g == nil {
		return false
	}
	player := components.Player.Get(e)
	actor := components.Actor.Get(e)
	x, y := g.CellCenter(cx, cy)
	actor.X, actor.Y = x, y
	actor.TargetX, actor.TargetY = x, y
	actor.Moving = false
	player.Immobilized = 0
	player.FacingX, player.FacingY = 1, 0
	player.Script = nil
	player.CreateTunnels = true
	syncObject(e)
	return true
}
