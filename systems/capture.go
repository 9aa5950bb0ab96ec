package systems

import (
	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/yohamta/donburi"
)

// Inflate pumps a captured enemy once. Reaching the maximum pump state kills
// it in the same call and releases the harpoon. It reports whether the enemy died.
func Inflate(w donburi.World, e *donburi.Entry) bool {
	enemy := components.Enemy.Get(e)
	if !enemy.Alive {
		return true
	}

	enemy.PumpState = min(cfg.Enemy.MaxPump, enemy.PumpState+1)
	enemy.Health = max(0, enemy.Health-1)
	enemy.DeflateTimer = 0
	enemy.RegenTimer = 0

	actor := components.Actor.Get(e)
	emit(w, components.Event{
		Kind:   components.EventPump,
		X:      actor.X,
		Y:      actor.Y,
		Score:  enemy.PumpState,
		Entity: e.Entity(),
	})

	if enemy.PumpState < cfg.Enemy.MaxPump {
		return false
	}
	enemy.Alive = false
	enemy.KilledBy = components.KillInflation
	ReleaseEnemy(w, e)
	return true
}

// updateCapture runs deflation while the enemy is inflated or held, and
// health regeneration while it is free.
func updateCapture(f *Frame, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)

	if enemy.PumpState > 0 || enemy.HarpoonStuck {
		enemy.RegenTimer = 0
		enemy.DeflateTimer += f.DT
		if enemy.DeflateTimer < cfg.Enemy.DeflateInterval {
			return
		}
		enemy.DeflateTimer = 0
		if enemy.PumpState > 0 {
			enemy.PumpState--
			enemy.Health = min(cfg.Enemy.MaxHealth, enemy.Health+1)
		}
		if enemy.PumpState == 0 && enemy.HarpoonStuck {
			ReleaseEnemy(f.World, e)
			actor := components.Actor.Get(e)
			emit(f.World, components.Event{
				Kind:   components.EventEnemyEscaped,
				X:      actor.X,
				Y:      actor.Y,
				Entity: e.Entity(),
			})
		}
		return
	}

	if enemy.Health >= cfg.Enemy.MaxHealth {
		enemy.RegenTimer = 0
		return
	}
	enemy.RegenTimer += f.DT
	if enemy.RegenTimer >= cfg.Enemy.RegenDelay {
		enemy.Health++
		enemy.RegenTimer = cfg.Enemy.RegenDelay - cfg.Enemy.RegenInterval
	}
}
