package systems

import (
	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs capture timers and the pursuit/ghost AI for every live enemy.
func UpdateEnemies(f *Frame) {
	g := levelGrid(f.World)
	if g == nil {
		return
	}

	// Pursuit needs the player's cell; with no live player enemies only wander.
	seesPlayer := false
	var px, py int
	if pe, ok := components.Player.First(f.World); ok && components.Player.Get(pe).Alive() {
		px, py = actorCell(g, components.Actor.Get(pe))
		seesPlayer = true
	}

	components.Enemy.Each(f.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if !enemy.Alive {
			return
		}

		updateCapture(f, e)
		if !enemy.Free() {
			return
		}

		actor := components.Actor.Get(e)
		enemy.MoveTimer += f.DT
		enemy.StuckTimer += f.DT

		if actor.Moving {
			speed := cfg.Enemy.Speed
			if enemy.Status == components.EnemyGhost {
				speed = cfg.Enemy.GhostSpeed
			}
			if Advance(actor, f.DT, speed) {
				onEnemyReachedTile(f, g, e)
			}
			syncObject(e)
			return
		}

		if enemy.MoveTimer < enemy.MoveDelay {
			return
		}
		enemy.MoveTimer = 0
		enemy.MoveDelay = gamemath.Jitter(f.Rand, cfg.Enemy.MinMoveDelay, cfg.Enemy.MoveDelayJitter)

		decide(f, g, e, seesPlayer, px, py)
	})
}

func onEnemyReachedTile(f *Frame, g *tilegrid.Grid, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	actor := components.Actor.Get(e)
	if enemy.Status != components.EnemyGhost || g.TileAt(actor.X, actor.Y) != tilegrid.Empty {
		return
	}
	exitGhost(f, e)
}

func exitGhost(f *Frame, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	enemy.Status = components.EnemyNormal
	enemy.StuckTimer = 0
	enemy.GhostModeDelay = gamemath.Jitter(f.Rand, cfg.Enemy.MinGhostDelay, cfg.Enemy.GhostDelayJitter)

	actor := components.Actor.Get(e)
	emit(f.World, components.Event{
		Kind:   components.EventGhostEnded,
		X:      actor.X,
		Y:      actor.Y,
		Entity: e.Entity(),
	})
}

// decide picks the enemy's next step. Only one step is ever committed.
func decide(f *Frame, g *tilegrid.Grid, e *donburi.Entry, seesPlayer bool, px, py int) {
	enemy := components.Enemy.Get(e)
	actor := components.Actor.Get(e)
	cx, cy := actorCell(g, actor)

	if enemy.Status == components.EnemyGhost {
		ghostStep(f, g, e, cx, cy, seesPlayer, px, py)
		return
	}

	// Both in tunnel stands in for line of sight.
	if seesPlayer && g.TileAtCell(cx, cy) == tilegrid.Empty && g.TileAtCell(px, py) == tilegrid.Empty {
		if pursue(g, actor, cx, cy, px, py) {
			enemy.StuckTimer = 0
			return
		}
		if enemy.StuckTimer > enemy.GhostModeDelay && enterGhost(f, g, e, px, py) {
			return
		}
	}

	wander(f.Rand, g, actor, cx, cy, tilegrid.IsWalkableNormal)
}

// pursue steps along the axis with the larger delta to the player, vertical
// on ties, then tries the other axis.
func pursue(g *tilegrid.Grid, actor *components.ActorData, cx, cy, px, py int) bool {
	for _, step := range axisOrder(px-cx, py-cy) {
		if tryStep(g, actor, cx, cy, step[0], step[1], tilegrid.IsWalkableNormal) {
			return true
		}
	}
	return false
}

// axisOrder returns the unit steps toward (dx, dy), larger delta first and
// vertical first on ties. Zero axes are left out.
func axisOrder(dx, dy int) [][2]int {
	vertical := [2]int{0, gamemath.Sign(dy)}
	horizontal := [2]int{gamemath.Sign(dx), 0}
	order := [][2]int{vertical, horizontal}
	if gamemath.Abs(dx) > gamemath.Abs(dy) {
		order = [][2]int{horizontal, vertical}
	}
	out := order[:0]
	for _, s := range order {
		if s != [2]int{} {
			out = append(out, s)
		}
	}
	return out
}

// wander tries a random vertical step, then the opposite one.
func wander(rng gamemath.Rand, g *tilegrid.Grid, actor *components.ActorData, cx, cy int, walkable func(tilegrid.Code) bool) bool {
	dir := 1
	if rng.Intn(2) == 0 {
		dir = -1
	}
	if tryStep(g, actor, cx, cy, 0, dir, walkable) {
		return true
	}
	return tryStep(g, actor, cx, cy, 0, -dir, walkable)
}

// enterGhost caches the tunnel cell nearest the player as the ghost target.
// The first ghost step happens on the next decision.
func enterGhost(f *Frame, g *tilegrid.Grid, e *donburi.Entry, px, py int) bool {
	gx, gy, ok := g.NearestEmpty(px, py, cfg.Enemy.GhostSearchRange)
	if !ok {
		return false
	}
	enemy := components.Enemy.Get(e)
	enemy.Status = components.EnemyGhost
	enemy.GhostTargetX, enemy.GhostTargetY = gx, gy
	enemy.StuckTimer = 0

	actor := components.Actor.Get(e)
	emit(f.World, components.Event{
		Kind:   components.EventGhostStarted,
		X:      actor.X,
		Y:      actor.Y,
		Entity: e.Entity(),
	})
	return true
}

// ghostStep moves one cell toward the cached ghost target through dirt.
func ghostStep(f *Frame, g *tilegrid.Grid, e *donburi.Entry, cx, cy int, seesPlayer bool, px, py int) {
	enemy := components.Enemy.Get(e)
	actor := components.Actor.Get(e)

	dx, dy := enemy.GhostTargetX-cx, enemy.GhostTargetY-cy
	if dx == 0 && dy == 0 {
		// The target cell stopped being tunnel under us (a rock landed on it).
		if g.TileAtCell(cx, cy) == tilegrid.Empty {
			exitGhost(f, e)
			return
		}
		if seesPlayer {
			if gx, gy, ok := g.NearestEmpty(px, py, cfg.Enemy.GhostSearchRange); ok {
				enemy.GhostTargetX, enemy.GhostTargetY = gx, gy
			}
		}
		return
	}

	order := axisOrder(dx, dy)
	for _, step := range order {
		if tryStep(g, actor, cx, cy, step[0], step[1], tilegrid.IsWalkableForGhost) {
			return
		}
	}

	// Blocked on every axis toward the target: side-step around the obstacle.
	side := [2]int{order[0][1], order[0][0]}
	if f.Rand.Intn(2) == 0 {
		side = [2]int{-side[0], -side[1]}
	}
	if tryStep(g, actor, cx, cy, side[0], side[1], tilegrid.IsWalkableForGhost) {
		return
	}
	tryStep(g, actor, cx, cy, -side[0], -side[1], tilegrid.IsWalkableForGhost)
}
