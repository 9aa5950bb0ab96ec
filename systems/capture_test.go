package systems

import (
	"testing"

	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/stretchr/testify/assert"
)

func TestDeflationLetsEnemyEscape(t *testing.T) {
	tw := newTestWorld(t, 6, 3, tilegrid.Bedrock, 1, 1)
	tw.carve([2]int{2, 1}, [2]int{3, 1}, [2]int{4, 1})
	e := tw.pooka(4, 1)
	enemy := components.Enemy.Get(e)
	enemy.MoveDelay = 100

	AttachHarpoon(tw.w, tw.player, e)
	Inflate(tw.w, e)
	assert.Equal(t, 1, enemy.PumpState)
	assert.Equal(t, cfg.Enemy.MaxHealth-1, enemy.Health)
	tw.events()

	// Just short of one deflate interval nothing changes.
	tw.step(55, components.Intent{})
	assert.Equal(t, 1, enemy.PumpState)
	assert.True(t, enemy.HarpoonStuck)

	tw.step(10, components.Intent{})
	assert.Equal(t, 0, enemy.PumpState)
	assert.Equal(t, cfg.Enemy.MaxHealth, enemy.Health)
	assert.False(t, enemy.HarpoonStuck)
	assert.True(t, enemy.Free())
	assert.Equal(t, components.HarpoonIdle, harpoonOf(tw).State)
	assert.Contains(t, tw.kinds(), components.EventEnemyEscaped)
}

func TestInflatedEnemyDeflatesAfterDetach(t *testing.T) {
	tw := newTestWorld(t, 6, 3, tilegrid.Bedrock, 1, 1)
	tw.carve([2]int{4, 1})
	e := tw.pooka(4, 1)
	enemy := components.Enemy.Get(e)

	AttachHarpoon(tw.w, tw.player, e)
	Inflate(tw.w, e)
	Inflate(tw.w, e)
	DetachHarpoon(tw.w, tw.player)
	tw.events()
	assert.False(t, enemy.Free(), "still inflated")
	assert.False(t, enemy.Lethal())

	f := tw.frame(components.Intent{})
	f.DT = cfg.Enemy.DeflateInterval
	updateCapture(f, e)
	assert.Equal(t, 1, enemy.PumpState)
	updateCapture(f, e)
	assert.Equal(t, 0, enemy.PumpState)
	assert.True(t, enemy.Free())
	assert.Empty(t, tw.kinds(), "escape is only reported for held enemies")
}

func TestHealthRegeneratesWhenFree(t *testing.T) {
	tw := newTestWorld(t, 6, 3, tilegrid.Bedrock, 1, 1)
	e := tw.pooka(4, 1)
	enemy := components.Enemy.Get(e)
	enemy.Health = cfg.Enemy.MaxHealth - 2

	f := tw.frame(components.Intent{})
	f.DT = 0.5
	for i := 0; i < 5; i++ {
		updateCapture(f, e)
	}
	assert.Equal(t, cfg.Enemy.MaxHealth-2, enemy.Health, "regen waits for the delay")

	updateCapture(f, e)
	assert.Equal(t, cfg.Enemy.MaxHealth-1, enemy.Health)

	updateCapture(f, e)
	assert.Equal(t, cfg.Enemy.MaxHealth-1, enemy.Health)
	updateCapture(f, e)
	assert.Equal(t, cfg.Enemy.MaxHealth, enemy.Health)

	for i := 0; i < 10; i++ {
		updateCapture(f, e)
	}
	assert.Equal(t, cfg.Enemy.MaxHealth, enemy.Health)
}
