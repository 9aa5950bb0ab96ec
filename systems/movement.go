package systems

import (
	"github.com/automoto/digdug/components"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/tilegrid"
)

// SetTarget records a destination and starts moving. Re-targeting the
// current destination is a no-op.
func SetTarget(a *components.ActorData, x, y float64) {
	if a.TargetX == x && a.TargetY == y {
		return
	}
	a.TargetX, a.TargetY = x, y
	a.Moving = true
}

// Advance moves the actor toward its target at speed and reports whether it
// arrived this call. Arrival is the hook for digging and AI replanning.
func Advance(a *components.ActorData, dt, speed float64) bool {
	if !a.Moving {
		return false
	}
	x, y, arrived := gamemath.Approach(a.X, a.Y, a.TargetX, a.TargetY, speed*dt)
	a.X, a.Y = x, y
	if arrived {
		a.Moving = false
	}
	return arrived
}

// actorCell returns the cell the actor's center is in.
func actorCell(g *tilegrid.Grid, a *components.ActorData) (int, int) {
	return g.CellOf(a.X, a.Y)
}

// tryStep targets the neighbour (cx+dx, cy+dy) if walkable accepts its code.
func tryStep(g *tilegrid.Grid, a *components.ActorData, cx, cy, dx, dy int, walkable func(tilegrid.Code) bool) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	nx, ny := cx+dx, cy+dy
	if !walkable(g.TileAtCell(nx, ny)) {
		return false
	}
	tx, ty := g.CellCenter(nx, ny)
	SetTarget(a, tx, ty)
	return true
}
