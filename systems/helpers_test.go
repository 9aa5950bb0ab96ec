package systems

import (
	"testing"

	"github.com/automoto/digdug/components"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/automoto/digdug/systems/factory"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60

// zeroRand always picks the low end: no jitter, upward wander first.
type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }
func (zeroRand) Intn(int) int     { return 0 }

// scriptedRand replays ints for Intn, then falls back to 0.
type scriptedRand struct {
	ints []int
}

func (r *scriptedRand) Float64() float64 { return 0 }

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

type testWorld struct {
	t      *testing.T
	w      donburi.World
	grid   *tilegrid.Grid
	player *donburi.Entry
	rng    gamemath.Rand
}

// newTestWorld builds a width x height grid filled with fill, carves the
// player's cell and spawns the player there.
func newTestWorld(t *testing.T, width, height int, fill tilegrid.Code, px, py int) *testWorld {
	t.Helper()
	g := tilegrid.New(width, height, 16)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.SetTileCell(x, y, fill)
		}
	}
	g.SetTileCell(px, py, tilegrid.Empty)

	w := donburi.NewWorld()
	factory.CreateSpace(w, width*16, height*16, 16)
	factory.CreateEventQueue(w)
	factory.CreateLevel(w, "test", g)
	player := factory.CreatePlayer(w, px, py)
	return &testWorld{t: t, w: w, grid: g, player: player, rng: zeroRand{}}
}

func (tw *testWorld) carve(cells ...[2]int) {
	for _, c := range cells {
		tw.grid.SetTileCell(c[0], c[1], tilegrid.Empty)
	}
}

func (tw *testWorld) set(code tilegrid.Code, cells ...[2]int) {
	for _, c := range cells {
		tw.grid.SetTileCell(c[0], c[1], code)
	}
}

func (tw *testWorld) frame(intent components.Intent) *Frame {
	return &Frame{
		World:  tw.w,
		DT:     dt,
		Intent: intent,
		Rand:   tw.rng,
		Log:    zerolog.Nop(),
	}
}

// step runs n full frames in simulation order.
func (tw *testWorld) step(n int, intent components.Intent) {
	for i := 0; i < n; i++ {
		f := tw.frame(intent)
		UpdatePlayer(f)
		UpdateHarpoon(f)
		UpdateDirectory(f)
	}
}

func (tw *testWorld) pooka(cx, cy int) *donburi.Entry {
	return factory.CreatePooka(tw.w, cx, cy, tw.rng)
}

func (tw *testWorld) rock(cx, cy int) *donburi.Entry {
	return factory.CreateRock(tw.w, tw.grid, cx, cy, tilegrid.SoftA)
}

func (tw *testWorld) cellOf(e *donburi.Entry) [2]int {
	a := components.Actor.Get(e)
	x, y := tw.grid.CellOf(a.X, a.Y)
	return [2]int{x, y}
}

func (tw *testWorld) kinds() []components.EventKind {
	var out []components.EventKind
	for _, ev := range DrainEvents(tw.w) {
		out = append(out, ev.Kind)
	}
	return out
}

func (tw *testWorld) events() []components.Event {
	return DrainEvents(tw.w)
}

func center(cx, cy int) (float64, float64) {
	return float64(cx)*16 + 8, float64(cy)*16 + 8
}
