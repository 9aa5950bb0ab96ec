package systems

import (
	"testing"

	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type rockTrace struct {
	states       []components.RockState
	settledY     []float64
	fallingAfter float64 // shake timer when the fall began
	removedAt    int
}

// runRock steps full frames until the rock is purged or n frames pass.
func runRock(tw *testWorld, rock *donburi.Entry, n int) rockTrace {
	tr := rockTrace{removedAt: -1}
	for i := 0; i < n; i++ {
		tw.step(1, components.Intent{})
		if !tw.w.Valid(rock.Entity()) {
			tr.removedAt = i
			return tr
		}
		r := components.Rock.Get(rock)
		if r.State == components.RockFalling && tr.fallingAfter == 0 {
			tr.fallingAfter = r.ShakeTimer
		}
		tr.states = append(tr.states, r.State)
		if r.State >= components.RockSettled {
			tr.settledY = append(tr.settledY, components.Actor.Get(rock).Y)
		}
	}
	return tr
}

func TestRockFallsOnceAndLandsFlush(t *testing.T) {
	tw := newTestWorld(t, 5, 8, tilegrid.SoftA, 0, 7)
	tw.set(tilegrid.Bedrock, [2]int{2, 6})
	tw.carve([2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{2, 5})
	rock := tw.rock(2, 1)
	require.Equal(t, tilegrid.Bedrock, tw.grid.TileAtCell(2, 1))

	tr := runRock(tw, rock, 400)

	require.NotEqual(t, -1, tr.removedAt, "rock was purged")
	require.NotEmpty(t, tr.states)
	assert.Equal(t, components.RockShaking, tr.states[0])
	for i := 1; i < len(tr.states); i++ {
		assert.GreaterOrEqual(t, tr.states[i], tr.states[i-1], "rock states only move forward")
	}
	assert.GreaterOrEqual(t, tr.fallingAfter, cfg.Rock.FallDelay)

	require.NotEmpty(t, tr.settledY)
	for _, y := range tr.settledY {
		assert.InDelta(t, 96.0, y+8, 1e-9, "bottom flush with the bedrock top")
	}

	for y := 1; y <= 5; y++ {
		assert.Equal(t, tilegrid.Empty, tw.grid.TileAtCell(2, y))
	}
	kinds := tw.kinds()
	assert.Contains(t, kinds, components.EventRockShaking)
	assert.Contains(t, kinds, components.EventRockLanded)
	assert.NotContains(t, kinds, components.EventRockSquashed)
}

func TestRockRestsWhileSupported(t *testing.T) {
	tw := newTestWorld(t, 5, 4, tilegrid.SoftA, 0, 3)
	rock := tw.rock(2, 1)
	bottom := tw.rock(4, 3)

	tw.step(120, components.Intent{})
	assert.Equal(t, components.RockResting, components.Rock.Get(rock).State)
	assert.Equal(t, components.RockResting, components.Rock.Get(bottom).State, "grid edge counts as support")

	tw.carve([2]int{2, 2})
	tw.step(1, components.Intent{})
	assert.Equal(t, components.RockShaking, components.Rock.Get(rock).State)
	assert.Equal(t, tilegrid.Empty, tw.grid.TileAtCell(2, 1), "own cell carved when shaking starts")
}

func TestRockLandsOnGridEdge(t *testing.T) {
	tw := newTestWorld(t, 3, 4, tilegrid.SoftA, 0, 0)
	tw.carve([2]int{1, 3})
	rock := tw.rock(1, 2)

	tr := runRock(tw, rock, 400)
	require.NotEmpty(t, tr.settledY)
	assert.InDelta(t, 64.0, tr.settledY[0]+8, 1e-9)
}

func TestStackedRocksLandOnEachOther(t *testing.T) {
	tw := newTestWorld(t, 5, 8, tilegrid.SoftA, 0, 7)
	tw.set(tilegrid.Bedrock, [2]int{2, 6})
	tw.carve([2]int{2, 3}, [2]int{2, 4}, [2]int{2, 5})
	upper := tw.rock(2, 1)
	lower := tw.rock(2, 2)

	landed := map[donburi.Entity]float64{}
	for i := 0; i < 400 && len(landed) < 2; i++ {
		tw.step(1, components.Intent{})
		for _, r := range []*donburi.Entry{upper, lower} {
			if _, ok := landed[r.Entity()]; ok || !tw.w.Valid(r.Entity()) {
				continue
			}
			if components.Rock.Get(r).State >= components.RockSettled {
				landed[r.Entity()] = components.Actor.Get(r).Y
			}
		}
	}
	require.Len(t, landed, 2)
	assert.InDelta(t, 88.0, landed[lower.Entity()], 1e-9, "lower rock on the bedrock")
	assert.InDelta(t, 72.0, landed[upper.Entity()], 1e-9, "upper rock flush on the lower one")
}

func TestRockCrushesEnemyForDoubleScore(t *testing.T) {
	tw := newTestWorld(t, 5, 8, tilegrid.SoftA, 0, 7)
	tw.set(tilegrid.Bedrock, [2]int{2, 6})
	tw.carve([2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{2, 5})
	enemy := tw.pooka(2, 4)
	components.Enemy.Get(enemy).MoveDelay = 100
	rock := tw.rock(2, 1)

	var evs []components.Event
	for i := 0; i < 400 && tw.w.Valid(rock.Entity()); i++ {
		tw.step(1, components.Intent{})
		evs = append(evs, tw.events()...)
		if tw.w.Valid(rock.Entity()) && components.Rock.Get(rock).State >= components.RockSettled {
			assert.Less(t, components.Actor.Get(rock).Y+8, 96.0, "consumed before reaching the floor")
		}
	}

	assert.False(t, tw.w.Valid(enemy.Entity()))
	want := cfg.Enemy.KillScore * cfg.Rock.KillMultiplier
	assert.Equal(t, want, components.Player.Get(tw.player).Score)

	var squashed, killed int
	for _, ev := range evs {
		switch ev.Kind {
		case components.EventRockSquashed:
			squashed++
			assert.Equal(t, enemy.Entity(), ev.Entity)
		case components.EventEnemyKilled:
			killed++
			assert.Equal(t, components.KillRock, ev.Method)
			assert.Equal(t, want, ev.Score)
		}
	}
	assert.Equal(t, 1, squashed)
	assert.Equal(t, 1, killed)
}

func TestRockCrushesPlayer(t *testing.T) {
	tw := newTestWorld(t, 5, 8, tilegrid.SoftA, 2, 4)
	tw.set(tilegrid.Bedrock, [2]int{2, 6})
	tw.carve([2]int{2, 2}, [2]int{2, 3}, [2]int{2, 5})
	rock := tw.rock(2, 1)

	var lost []components.Event
	for i := 0; i < 400 && tw.w.Valid(rock.Entity()); i++ {
		tw.step(1, components.Intent{})
		for _, ev := range tw.events() {
			if ev.Kind == components.EventPlayerLostLife {
				lost = append(lost, ev)
			}
		}
	}

	player := components.Player.Get(tw.player)
	assert.False(t, player.Alive())
	assert.Equal(t, cfg.Player.StartingLives-1, player.Lives)
	require.Len(t, lost, 1)
	assert.Equal(t, components.KillRock, lost[0].Method)
}

func TestMarkRockForDeletion(t *testing.T) {
	tw := newTestWorld(t, 5, 4, tilegrid.SoftA, 0, 3)
	rock := tw.rock(2, 1)

	MarkRockForDeletion(rock)
	assert.Equal(t, components.RockRemovable, components.Rock.Get(rock).State)
	PurgeRocks(tw.frame(components.Intent{}))
	assert.False(t, tw.w.Valid(rock.Entity()))

	assert.NotPanics(t, func() { MarkRockForDeletion(rock) })
}
