package factory

import (
	"github.com/automoto/digdug/archetypes"
	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/tags"
	"github.com/yohamta/donburi"
)

// CreatePooka spawns a Pooka centered on cell (cx, cy). Its ghost threshold
// is drawn from rng so enemies do not unstick in lockstep.
func CreatePooka(w donburi.World, cx, cy int, rng gamemath.Rand) *donburi.Entry {
	enemy := archetypes.Pooka.Spawn(w)

	x, y := cellCenter(cx, cy)
	components.Actor.SetValue(enemy, components.ActorData{
		X: x, Y: y,
		TargetX: x, TargetY: y,
		Speed: cfg.Enemy.Speed,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:           "pooka",
		Alive:          true,
		Health:         cfg.Enemy.MaxHealth,
		KillScore:      cfg.Enemy.KillScore,
		MoveDelay:      cfg.Enemy.InitialMoveDelay,
		GhostModeDelay: gamemath.Jitter(rng, cfg.Enemy.MinGhostDelay, cfg.Enemy.GhostDelayJitter),
	})
	addObject(w, enemy, x, y, cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight, tags.ResolvEnemy)

	return enemy
}
