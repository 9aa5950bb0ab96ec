package systems

import (
	"testing"

	"github.com/automoto/digdug/components"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestAxisOrder(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   [][2]int
	}{
		{"straight down", 0, 4, [][2]int{{0, 1}}},
		{"tie goes vertical", 3, -3, [][2]int{{0, -1}, {1, 0}}},
		{"wider than tall", -5, 2, [][2]int{{-1, 0}, {0, 1}}},
		{"taller than wide", 1, -2, [][2]int{{0, -1}, {1, 0}}},
		{"already there", 0, 0, [][2]int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, axisOrder(tc.dx, tc.dy))
		})
	}
}

// decideNow makes the enemy act on the next update.
func decideNow(e *donburi.Entry) {
	components.Enemy.Get(e).MoveDelay = 0
}

func targetCell(tw *testWorld, e *donburi.Entry) [2]int {
	a := components.Actor.Get(e)
	x, y := tw.grid.CellOf(a.TargetX, a.TargetY)
	return [2]int{x, y}
}

func TestPursuitTakesLargerAxis(t *testing.T) {
	tw := newTestWorld(t, 11, 12, tilegrid.SoftA, 5, 9)
	tw.carve([2]int{5, 5}, [2]int{5, 6}, [2]int{5, 7}, [2]int{5, 8}, [2]int{4, 5}, [2]int{6, 5})
	e := tw.pooka(5, 5)
	decideNow(e)

	UpdateEnemies(tw.frame(components.Intent{}))

	assert.True(t, components.Actor.Get(e).Moving)
	assert.Equal(t, [2]int{5, 6}, targetCell(tw, e))
}

func TestPursuitFallsBackToOtherAxis(t *testing.T) {
	tw := newTestWorld(t, 11, 12, tilegrid.SoftA, 8, 6)
	tw.carve([2]int{5, 5}, [2]int{5, 6})
	e := tw.pooka(5, 5)
	decideNow(e)

	UpdateEnemies(tw.frame(components.Intent{}))

	assert.Equal(t, [2]int{5, 6}, targetCell(tw, e))
	assert.Equal(t, 0.0, components.Enemy.Get(e).StuckTimer)
}

func TestWanderWhenPlayerOutOfSight(t *testing.T) {
	tw := newTestWorld(t, 11, 12, tilegrid.SoftA, 8, 6)
	tw.set(tilegrid.SoftA, [2]int{8, 6})
	tw.carve([2]int{5, 5}, [2]int{5, 6}, [2]int{5, 4}, [2]int{6, 5})

	e := tw.pooka(5, 5)
	decideNow(e)
	UpdateEnemies(tw.frame(components.Intent{}))
	assert.Equal(t, [2]int{5, 4}, targetCell(tw, e), "up first")

	tw.rng = &scriptedRand{ints: []int{1}}
	e2 := tw.pooka(5, 5)
	decideNow(e2)
	UpdateEnemies(tw.frame(components.Intent{}))
	assert.Equal(t, [2]int{5, 6}, targetCell(tw, e2))
}

func TestWanderTriesOppositeWhenBlocked(t *testing.T) {
	tw := newTestWorld(t, 11, 12, tilegrid.SoftA, 8, 6)
	tw.set(tilegrid.SoftA, [2]int{8, 6})
	tw.carve([2]int{5, 5}, [2]int{5, 6})

	e := tw.pooka(5, 5)
	decideNow(e)
	UpdateEnemies(tw.frame(components.Intent{}))
	assert.Equal(t, [2]int{5, 6}, targetCell(tw, e))
}

func TestCapturedEnemyDoesNotMove(t *testing.T) {
	tw := newTestWorld(t, 11, 12, tilegrid.SoftA, 5, 9)
	tw.carve([2]int{5, 5}, [2]int{5, 6}, [2]int{5, 7}, [2]int{5, 8})
	e := tw.pooka(5, 5)
	decideNow(e)
	components.Enemy.Get(e).PumpState = 2

	for i := 0; i < 30; i++ {
		UpdateEnemies(tw.frame(components.Intent{}))
	}
	assert.False(t, components.Actor.Get(e).Moving)
	assert.Equal(t, [2]int{5, 5}, tw.cellOf(e))
}

func TestGhostModeEscapesPocket(t *testing.T) {
	tw := newTestWorld(t, 11, 5, tilegrid.SoftA, 8, 2)
	tw.carve([2]int{7, 2}, [2]int{2, 2})
	for x := 0; x < 11; x++ {
		tw.set(tilegrid.Bedrock, [2]int{x, 0}, [2]int{x, 4})
	}

	e := tw.pooka(2, 2)
	enemy := components.Enemy.Get(e)
	enemy.GhostModeDelay = 0.5

	var started, ended int
	wasGhost := false
	for i := 0; i < 900; i++ {
		UpdateEnemies(tw.frame(components.Intent{}))
		code := tw.grid.TileAt(components.Actor.Get(e).X, components.Actor.Get(e).Y)
		if enemy.Status == components.EnemyGhost {
			require.True(t, tilegrid.IsWalkableForGhost(code), "ghost on %s", code)
		}
		if wasGhost && enemy.Status == components.EnemyNormal {
			require.Equal(t, tilegrid.Empty, code, "ghost mode ends on tunnel only")
		}
		wasGhost = enemy.Status == components.EnemyGhost

		for _, ev := range tw.events() {
			switch ev.Kind {
			case components.EventGhostStarted:
				started++
			case components.EventGhostEnded:
				ended++
			}
		}
		if ended > 0 {
			break
		}
	}
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, ended)
	assert.Equal(t, [2]int{7, 2}, tw.cellOf(e), "first tunnel on the way to the player")
	assert.Equal(t, tilegrid.SoftA, tw.grid.TileAtCell(4, 2), "ghosts do not dig")
	assert.Greater(t, enemy.GhostModeDelay, 0.5, "threshold re-rolled")
}

func TestGhostTargetIsNearestTunnelToPlayer(t *testing.T) {
	tw := newTestWorld(t, 11, 5, tilegrid.SoftA, 8, 2)
	tw.carve([2]int{2, 2})
	e := tw.pooka(2, 2)

	require.True(t, enterGhost(tw.frame(components.Intent{}), tw.grid, e, 8, 2))
	enemy := components.Enemy.Get(e)
	assert.Equal(t, components.EnemyGhost, enemy.Status)
	assert.Equal(t, [2]int{8, 2}, [2]int{enemy.GhostTargetX, enemy.GhostTargetY})
	assert.Equal(t, 0.0, enemy.StuckTimer)
}

func TestGhostSideStepsAroundRockInColumn(t *testing.T) {
	tw := newTestWorld(t, 5, 8, tilegrid.SoftA, 2, 6)
	tw.carve([2]int{2, 1})
	tw.rock(2, 3)

	e := tw.pooka(2, 1)
	enemy := components.Enemy.Get(e)
	enemy.GhostModeDelay = 0.5

	ended := false
	for i := 0; i < 3600 && !ended; i++ {
		UpdateEnemies(tw.frame(components.Intent{}))
		for _, ev := range tw.events() {
			if ev.Kind == components.EventGhostEnded {
				ended = true
			}
		}
	}
	require.True(t, ended, "ghost stuck at %v", tw.cellOf(e))
	assert.Equal(t, components.EnemyNormal, enemy.Status)
	assert.Equal(t, [2]int{2, 6}, tw.cellOf(e))
	assert.Equal(t, tilegrid.Bedrock, tw.grid.TileAtCell(2, 3))
}
