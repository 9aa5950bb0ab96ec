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

// UpdateHarpoon advances the player's harpoon: fire, extend, capture, pump
// and detach.
func UpdateHarpoon(f *Frame) {
	e, ok := components.Player.First(f.World)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	harpoon := components.Harpoon.Get(e)
	if !player.Alive() {
		if harpoon.State != components.HarpoonIdle {
			DetachHarpoon(f.World, e)
		}
		return
	}

	switch harpoon.State {
	case components.HarpoonIdle:
		actor := components.Actor.Get(e)
		if f.Intent.Action && !actor.Moving && player.Immobilized <= 0 && len(player.Script) == 0 {
			fireHarpoon(f.World, e)
		}
	case components.HarpoonExtending:
		extendHarpoon(f, e)
	case components.HarpoonAttached:
		updateAttached(f, e)
	}
}

func fireHarpoon(w donburi.World, e *donburi.Entry) {
	player := components.Player.Get(e)
	harpoon := components.Harpoon.Get(e)
	actor := components.Actor.Get(e)

	harpoon.State = components.HarpoonExtending
	harpoon.DirX, harpoon.DirY = player.FacingX, player.FacingY
	if harpoon.DirX == 0 && harpoon.DirY == 0 {
		harpoon.DirX = 1
	}
	harpoon.Length = 0
	harpoon.HitWall = false
	harpoon.Target = donburi.Null
	duration := cfg.Harpoon.MaxLength / cfg.Harpoon.ExtendSpeed
	harpoon.Growth = gween.New(0, float32(cfg.Harpoon.MaxLength), float32(duration), ease.Linear)

	emit(w, components.Event{
		Kind:   components.EventHarpoonFired,
		X:      actor.X,
		Y:      actor.Y,
		Entity: e.Entity(),
	})
}

func extendHarpoon(f *Frame, e *donburi.Entry) {
	harpoon := components.Harpoon.Get(e)
	actor := components.Actor.Get(e)
	g := levelGrid(f.World)

	// 1. Grow
	length, finished := harpoon.Growth.Update(float32(f.DT))
	harpoon.Length = math.Min(float64(length), cfg.Harpoon.MaxLength)

	// 2. Place the probe
	reach := float64(cfg.Grid.TileSize) / 2
	box := gamemath.HarpoonProbe(actor.X, actor.Y, harpoon.DirX, harpoon.DirY, reach, harpoon.Length, cfg.Harpoon.ProbeThickness)
	placeProbe(harpoon, box)

	// 3. Wall test at the leading edge
	tipX, tipY := gamemath.HarpoonTip(actor.X, actor.Y, harpoon.DirX, harpoon.DirY, reach, harpoon.Length)
	lx, ly := gamemath.LeadingPoint(tipX, tipY, harpoon.DirX, harpoon.DirY)
	if g == nil || g.TileAt(lx, ly) != tilegrid.Empty {
		harpoon.HitWall = true
	}

	// 4. A capture beats a same-frame stop
	if victim := harpoonVictim(actor, harpoon, box); victim != nil {
		AttachHarpoon(f.World, e, victim)
		return
	}

	if harpoon.HitWall || finished || harpoon.Length >= cfg.Harpoon.MaxLength {
		emit(f.World, components.Event{
			Kind:   components.EventHarpoonMissed,
			X:      tipX,
			Y:      tipY,
			Entity: e.Entity(),
		})
		resetHarpoon(harpoon)
	}
}

func placeProbe(harpoon *components.HarpoonData, box gamemath.Rect) {
	if harpoon.Probe == nil {
		return
	}
	// cells are only registered for boxes at least a pixel long
	harpoon.Probe.X, harpoon.Probe.Y = box.X, box.Y
	harpoon.Probe.W, harpoon.Probe.H = math.Max(box.W, 1), math.Max(box.H, 1)
	harpoon.Probe.Update()
}

// harpoonVictim returns the live, uncaptured enemy the probe overlaps that is
// closest to the player, or nil.
func harpoonVictim(actor *components.ActorData, harpoon *components.HarpoonData, box gamemath.Rect) *donburi.Entry {
	if harpoon.Probe == nil || harpoon.Probe.Space == nil || box.W <= 0 || box.H <= 0 {
		return nil
	}
	var best *donburi.Entry
	bestDist := math.MaxFloat64
	for _, candidate := range overlapping(harpoon.Probe, box, tags.ResolvEnemy) {
		enemy := components.Enemy.Get(candidate)
		if !enemy.Alive || enemy.HarpoonStuck {
			continue
		}
		ea := components.Actor.Get(candidate)
		d := math.Abs(ea.X-actor.X) + math.Abs(ea.Y-actor.Y)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

func updateAttached(f *Frame, e *donburi.Entry) {
	harpoon := components.Harpoon.Get(e)

	// A purged or released enemy means a detach was missed somewhere.
	if !harpoon.HasTarget() || !f.World.Valid(harpoon.Target) {
		f.Log.Debug().Msg("harpoon target gone, forcing detach")
		DetachHarpoon(f.World, e)
		return
	}
	target := f.World.Entry(harpoon.Target)
	if !target.HasComponent(components.Enemy) {
		DetachHarpoon(f.World, e)
		return
	}
	enemy := components.Enemy.Get(target)
	if !enemy.Alive || !enemy.HarpoonStuck {
		f.Log.Debug().Msg("harpoon target no longer captured, forcing detach")
		DetachHarpoon(f.World, e)
		return
	}

	// Movement always breaks the link and is not taken as a step this frame.
	if f.Intent.Direction != components.DirNone {
		DetachHarpoon(f.World, e)
		return
	}
	if f.Intent.Action {
		Inflate(f.World, target)
	}
}

// AttachHarpoon links the player's harpoon to enemy, freezes the enemy and
// briefly immobilizes the player.
func AttachHarpoon(w donburi.World, playerEntry, enemyEntry *donburi.Entry) {
	harpoon := components.Harpoon.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	enemy := components.Enemy.Get(enemyEntry)

	harpoon.State = components.HarpoonAttached
	harpoon.Target = enemyEntry.Entity()
	harpoon.Growth = nil
	player.Immobilized = cfg.Harpoon.ImmobilizeDuration

	enemy.HarpoonStuck = true
	enemy.DeflateTimer = 0

	actor := components.Actor.Get(enemyEntry)
	emit(w, components.Event{
		Kind:   components.EventHarpoonHit,
		X:      actor.X,
		Y:      actor.Y,
		Entity: enemyEntry.Entity(),
	})
}

// DetachHarpoon releases whatever the player's harpoon holds and returns it
// to idle. Both sides of the link are cleared.
func DetachHarpoon(w donburi.World, playerEntry *donburi.Entry) {
	harpoon := components.Harpoon.Get(playerEntry)
	if harpoon.HasTarget() && w.Valid(harpoon.Target) {
		target := w.Entry(harpoon.Target)
		if target.HasComponent(components.Enemy) {
			enemy := components.Enemy.Get(target)
			enemy.HarpoonStuck = false
			enemy.DeflateTimer = 0
		}
	}
	resetHarpoon(harpoon)
	components.Player.Get(playerEntry).Immobilized = 0
}

// ReleaseEnemy clears the enemy side of a capture and the harpoon holding it.
func ReleaseEnemy(w donburi.World, enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	enemy.HarpoonStuck = false
	enemy.DeflateTimer = 0

	target := enemyEntry.Entity()
	components.Harpoon.Each(w, func(e *donburi.Entry) {
		harpoon := components.Harpoon.Get(e)
		if harpoon.Target != target {
			return
		}
		resetHarpoon(harpoon)
		components.Player.Get(e).Immobilized = 0
	})
}

func resetHarpoon(harpoon *components.HarpoonData) {
	harpoon.State = components.HarpoonIdle
	harpoon.Target = donburi.Null
	harpoon.Length = 0
	harpoon.HitWall = false
	harpoon.Growth = nil
	if harpoon.Probe != nil {
		harpoon.Probe.W, harpoon.Probe.H = 0, 0
		harpoon.Probe.Update()
	}
}
