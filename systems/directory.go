package systems

import (
	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/automoto/digdug/systems/factory"
	"github.com/automoto/digdug/tags"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

// UpdateDirectory runs the enemy and rock collections for one frame in a
// fixed order: enemies, rocks, player contact, enemy purge, rock purge.
func UpdateDirectory(f *Frame) {
	UpdateEnemies(f)
	UpdateRocks(f)
	ResolvePlayerEnemy(f)
	PurgeEnemies(f)
	PurgeRocks(f)
}

// ResolvePlayerEnemy defeats the player on contact with the first lethal
// enemy. Inflated or captured enemies are harmless to touch.
func ResolvePlayerEnemy(f *Frame) {
	e, ok := components.Player.First(f.World)
	if !ok || !components.Player.Get(e).Alive() {
		return
	}
	obj := components.Object.Get(e)
	if obj.Space == nil {
		return
	}
	for _, enemyEntry := range overlapping(obj.Object, gamemath.ObjectRect(obj.Object), tags.ResolvEnemy) {
		if !components.Enemy.Get(enemyEntry).Lethal() {
			continue
		}
		KillPlayer(f.World, e, components.KillContact)
		return
	}
}

// PurgeEnemies removes dead enemies, scoring each kill once and clearing any
// harpoon still pointing at them first.
func PurgeEnemies(f *Frame) {
	var toRemove []*donburi.Entry
	components.Enemy.Each(f.World, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).Alive {
			toRemove = append(toRemove, e)
		}
	})

	playerEntry, hasPlayer := components.Player.First(f.World)
	for _, e := range toRemove {
		enemy := components.Enemy.Get(e)
		actor := components.Actor.Get(e)

		method := enemy.KilledBy
		if method == components.KillNone {
			method = components.KillRock
			if enemy.PumpState >= cfg.Enemy.MaxPump {
				method = components.KillInflation
			}
		}
		points := enemy.KillScore
		if method == components.KillRock {
			points *= cfg.Rock.KillMultiplier
		}

		ReleaseEnemy(f.World, e)
		if hasPlayer {
			components.Player.Get(playerEntry).Score += points
		}
		emit(f.World, components.Event{
			Kind:   components.EventEnemyKilled,
			X:      actor.X,
			Y:      actor.Y,
			Score:  points,
			Method: method,
			Entity: e.Entity(),
		})

		removeObject(f.World, e)
		f.World.Remove(e.Entity())
	}
}

// PurgeRocks removes rocks that reached the removable state.
func PurgeRocks(f *Frame) {
	var toRemove []*donburi.Entry
	components.Rock.Each(f.World, func(e *donburi.Entry) {
		if components.Rock.Get(e).State == components.RockRemovable {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		removeObject(f.World, e)
		f.World.Remove(e.Entity())
	}
}

// LiveEnemies counts enemies that have not been killed.
func LiveEnemies(w donburi.World) int {
	n := 0
	components.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Alive {
			n++
		}
	})
	return n
}

// SpawnEnemy adds a Pooka on cell (cx, cy) unless the live-enemy cap is reached.
func SpawnEnemy(w donburi.World, log zerolog.Logger, rng gamemath.Rand, cx, cy int) (*donburi.Entry, bool) {
	if !underCap(w, log, "pooka") {
		return nil, false
	}
	return factory.CreatePooka(w, cx, cy, rng), true
}

// SpawnRock adds a resting rock on cell (cx, cy) unless the live-enemy cap is reached.
func SpawnRock(w donburi.World, log zerolog.Logger, cx, cy int, texture tilegrid.Code) (*donburi.Entry, bool) {
	if !underCap(w, log, "rock") {
		return nil, false
	}
	return factory.CreateRock(w, levelGrid(w), cx, cy, texture), true
}

func underCap(w donburi.World, log zerolog.Logger, kind string) bool {
	alive := LiveEnemies(w)
	if alive < cfg.Directory.MaxEnemies {
		return true
	}
	log.Warn().
		Str("kind", kind).
		Int("alive", alive).
		Int("cap", cfg.Directory.MaxEnemies).
		Msg("spawn rejected: enemy cap reached")
	return false
}

// ClearStage marks every rock for deletion and removes all enemies and rocks.
func ClearStage(f *Frame) {
	components.Rock.Each(f.World, func(e *donburi.Entry) {
		MarkRockForDeletion(e)
	})

	var toRemove []*donburi.Entry
	components.Enemy.Each(f.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		ReleaseEnemy(f.World, e)
		removeObject(f.World, e)
		f.World.Remove(e.Entity())
	}
	PurgeRocks(f)
}
