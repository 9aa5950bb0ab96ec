package systems

import (
	"bytes"
	"testing"

	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSpawnRejectedAtCap(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Directory.MaxEnemies = 2

	tw := newTestWorld(t, 6, 3, tilegrid.Empty, 0, 1)
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	_, ok := SpawnEnemy(tw.w, log, tw.rng, 2, 1)
	assert.True(t, ok)
	_, ok = SpawnEnemy(tw.w, log, tw.rng, 3, 1)
	assert.True(t, ok)
	assert.Empty(t, buf.String())

	e, ok := SpawnEnemy(tw.w, log, tw.rng, 4, 1)
	assert.False(t, ok)
	assert.Nil(t, e)
	_, ok = SpawnRock(tw.w, log, 5, 0, tilegrid.SoftA)
	assert.False(t, ok)

	assert.Equal(t, 2, LiveEnemies(tw.w))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"kind":"rock"`)
	assert.Contains(t, buf.String(), "enemy cap")
}

func TestPurgeAttributesKillMethod(t *testing.T) {
	tw := newTestWorld(t, 6, 3, tilegrid.Empty, 0, 1)
	inflated := tw.pooka(2, 1)
	crushed := tw.pooka(4, 1)

	ie := components.Enemy.Get(inflated)
	ie.Alive, ie.PumpState = false, cfg.Enemy.MaxPump
	ce := components.Enemy.Get(crushed)
	ce.Alive = false

	PurgeEnemies(tw.frame(components.Intent{}))

	assert.False(t, tw.w.Valid(inflated.Entity()))
	assert.False(t, tw.w.Valid(crushed.Entity()))
	assert.Equal(t, 0, LiveEnemies(tw.w))

	methods := map[components.KillMethod]int{}
	for _, ev := range tw.events() {
		require.Equal(t, components.EventEnemyKilled, ev.Kind)
		methods[ev.Method] = ev.Score
	}
	assert.Equal(t, map[components.KillMethod]int{
		components.KillInflation: cfg.Enemy.KillScore,
		components.KillRock:      cfg.Enemy.KillScore * cfg.Rock.KillMultiplier,
	}, methods)
	assert.Equal(t, cfg.Enemy.KillScore*(1+cfg.Rock.KillMultiplier), components.Player.Get(tw.player).Score)

	// Nothing left to purge, nothing scored twice.
	PurgeEnemies(tw.frame(components.Intent{}))
	assert.Empty(t, tw.events())
}

func TestPurgeClearsHarpoonLink(t *testing.T) {
	tw := newTestWorld(t, 6, 3, tilegrid.Empty, 0, 1)
	e := tw.pooka(3, 1)
	AttachHarpoon(tw.w, tw.player, e)
	components.Enemy.Get(e).Alive = false

	PurgeEnemies(tw.frame(components.Intent{}))

	h := harpoonOf(tw)
	assert.Equal(t, components.HarpoonIdle, h.State)
	assert.False(t, h.HasTarget())
}

func TestContactWithFreeEnemyKillsPlayer(t *testing.T) {
	tw := newTestWorld(t, 6, 3, tilegrid.Empty, 1, 1)
	e := tw.pooka(1, 1)

	ResolvePlayerEnemy(tw.frame(components.Intent{}))

	player := components.Player.Get(tw.player)
	assert.False(t, player.Alive())
	assert.Equal(t, cfg.Player.StartingLives-1, player.Lives)
	assert.True(t, components.Enemy.Get(e).Alive)

	evs := tw.events()
	require.Len(t, evs, 1)
	assert.Equal(t, components.KillContact, evs[0].Method)

	// Already defeated: no second life lost.
	ResolvePlayerEnemy(tw.frame(components.Intent{}))
	assert.Equal(t, cfg.Player.StartingLives-1, player.Lives)
}

func TestInflatedEnemyIsHarmless(t *testing.T) {
	tw := newTestWorld(t, 6, 3, tilegrid.Empty, 1, 1)
	e := tw.pooka(1, 1)
	components.Enemy.Get(e).PumpState = 1

	ResolvePlayerEnemy(tw.frame(components.Intent{}))
	assert.True(t, components.Player.Get(tw.player).Alive())

	components.Enemy.Get(e).PumpState = 0
	components.Enemy.Get(e).HarpoonStuck = true
	ResolvePlayerEnemy(tw.frame(components.Intent{}))
	assert.True(t, components.Player.Get(tw.player).Alive())
}

func TestEdgeContactIsNotACollision(t *testing.T) {
	tw := newTestWorld(t, 6, 3, tilegrid.Empty, 1, 1)
	tw.pooka(2, 1)

	ResolvePlayerEnemy(tw.frame(components.Intent{}))
	assert.True(t, components.Player.Get(tw.player).Alive())
}

func TestClearStage(t *testing.T) {
	tw := newTestWorld(t, 6, 4, tilegrid.SoftA, 0, 1)
	tw.carve([2]int{2, 1}, [2]int{3, 1})
	e := tw.pooka(2, 1)
	tw.pooka(3, 1)
	tw.rock(5, 1)
	AttachHarpoon(tw.w, tw.player, e)

	ClearStage(tw.frame(components.Intent{}))

	assert.Equal(t, 0, LiveEnemies(tw.w))
	rocks := 0
	components.Rock.Each(tw.w, func(*donburi.Entry) { rocks++ })
	assert.Equal(t, 0, rocks)
	assert.Equal(t, components.HarpoonIdle, harpoonOf(tw).State)
	assert.True(t, tw.w.Valid(tw.player.Entity()))
}
