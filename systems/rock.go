package systems

import (
	"math"

	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/automoto/digdug/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateRocks advances every rock that is not yet removable. Settled and
// destroying rocks keep updating until their fade finishes.
func UpdateRocks(f *Frame) {
	g := levelGrid(f.World)
	if g == nil {
		return
	}
	components.Rock.Each(f.World, func(e *donburi.Entry) {
		updateRock(f, g, e)
	})
}

func updateRock(f *Frame, g *tilegrid.Grid, e *donburi.Entry) {
	rock := components.Rock.Get(e)
	actor := components.Actor.Get(e)
	ts := float64(g.TileSize())

	switch rock.State {
	case components.RockResting:
		if g.TileAt(actor.X, actor.Y+ts/2+1) != tilegrid.Empty {
			return
		}
		// Carve our own cell now so enemies stop treating it as solid.
		g.SetTile(actor.X, actor.Y, tilegrid.Empty)
		rock.State = components.RockShaking
		rock.ShakeTimer = 0
		emit(f.World, components.Event{
			Kind:   components.EventRockShaking,
			X:      actor.X,
			Y:      actor.Y,
			Entity: e.Entity(),
		})

	case components.RockShaking:
		rock.ShakeTimer += f.DT
		rock.ShakeOffset = gamemath.ShakeOffset(rock.ShakeTimer, cfg.Rock.ShakeSpeed, cfg.Rock.ShakeAmplitude)
		if rock.ShakeTimer >= cfg.Rock.FallDelay {
			rock.State = components.RockFalling
			rock.ShakeOffset = 0
		}

	case components.RockFalling:
		fall(f, g, e)

	case components.RockSettled:
		beginDestroy(rock)

	case components.RockDestroying:
		alpha, done := rock.Fade.Update(float32(f.DT))
		rock.Alpha = float64(alpha)
		if done {
			rock.State = components.RockRemovable
		}
	}
}

// fall moves a falling rock down one frame, lands it flush on solid ground
// and crushes anything it overlaps.
func fall(f *Frame, g *tilegrid.Grid, e *donburi.Entry) {
	rock := components.Rock.Get(e)
	actor := components.Actor.Get(e)
	ts := float64(g.TileSize())

	next := actor.Y + cfg.Rock.FallSpeed*f.DT
	bottom := next + ts/2
	landed := false
	if g.TileAt(actor.X, bottom) != tilegrid.Empty {
		top := math.Floor(bottom/ts) * ts
		next = gamemath.CenterYOnTop(top, ts)
		landed = true
	}
	if top, ok := rockBelow(e, actor.X, next, ts); ok && next+ts/2 > top {
		next = gamemath.CenterYOnTop(top, ts)
		landed = true
	}
	actor.Y = next
	actor.TargetX, actor.TargetY = actor.X, actor.Y
	syncObject(e)

	if crush(f, e) > 0 || landed {
		rock.State = components.RockSettled
		emit(f.World, components.Event{
			Kind:   components.EventRockLanded,
			X:      actor.X,
			Y:      actor.Y,
			Entity: e.Entity(),
		})
		beginDestroy(rock)
	}
}

// rockBelow returns the top edge of a rock under a falling rock moved to
// center y. Rocks that are still falling never count as floor.
func rockBelow(e *donburi.Entry, x, y, ts float64) (float64, bool) {
	obj := components.Object.Get(e)
	if obj.Space == nil {
		return 0, false
	}
	box := gamemath.CenteredRect(x, y, ts, ts)
	check := obj.Check(0, y-components.Actor.Get(e).Y, tags.ResolvRock)
	if check == nil {
		return 0, false
	}
	top, found := 0.0, false
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || !other.Valid() || other.Entity() == e.Entity() || o.Y <= obj.Y {
			continue
		}
		if components.Rock.Get(other).State == components.RockFalling {
			continue
		}
		if !gamemath.Overlaps(box, gamemath.ObjectRect(o)) {
			continue
		}
		if !found || o.Y < top {
			top, found = o.Y, true
		}
	}
	return top, found
}

// crush defeats the live player and every live enemy the rock overlaps.
func crush(f *Frame, e *donburi.Entry) int {
	rock := components.Rock.Get(e)
	obj := components.Object.Get(e)
	if obj.Space == nil {
		return 0
	}
	box := gamemath.ObjectRect(obj.Object)
	crushed := 0

	for _, victim := range overlapping(obj.Object, box, tags.ResolvPlayer) {
		if !components.Player.Get(victim).Alive() {
			continue
		}
		KillPlayer(f.World, victim, components.KillRock)
		crushed++
		emitSquash(f.World, e, victim)
	}

	for _, victim := range overlapping(obj.Object, box, tags.ResolvEnemy) {
		enemy := components.Enemy.Get(victim)
		if !enemy.Alive {
			continue
		}
		enemy.Alive = false
		enemy.Health = 0
		enemy.KilledBy = components.KillRock
		if enemy.HarpoonStuck {
			ReleaseEnemy(f.World, victim)
		}
		crushed++
		emitSquash(f.World, e, victim)
	}

	rock.Crushed += crushed
	return crushed
}

func emitSquash(w donburi.World, rockEntry, victim *donburi.Entry) {
	actor := components.Actor.Get(rockEntry)
	emit(w, components.Event{
		Kind:   components.EventRockSquashed,
		X:      actor.X,
		Y:      actor.Y,
		Method: components.KillRock,
		Entity: victim.Entity(),
	})
}

func beginDestroy(rock *components.RockData) {
	rock.State = components.RockDestroying
	rock.ShakeOffset = 0
	rock.Fade = gween.New(1, 0, float32(cfg.Rock.DestroyDuration), ease.Linear)
}

// MarkRockForDeletion makes a rock removable immediately.
func MarkRockForDeletion(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Rock) {
		return
	}
	components.Rock.Get(e).State = components.RockRemovable
}
