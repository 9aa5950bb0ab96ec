package systems

import (
	"github.com/automoto/digdug/components"
	"github.com/automoto/digdug/shared/gamemath"
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Frame carries one simulation step to the update functions.
type Frame struct {
	World  donburi.World
	DT     float64
	Intent components.Intent
	Rand   gamemath.Rand
	Log    zerolog.Logger
}

// UpdateObjects re-registers every collision box in the space.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// syncObject moves the entry's collision box onto its actor center.
func syncObject(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	obj := components.Object.Get(e)
	obj.X = actor.X - obj.W/2
	obj.Y = actor.Y - obj.H/2
	obj.Update()
}

func removeObject(w donburi.World, e *donburi.Entry) {
	spaceEntry, ok := components.Space.First(w)
	if !ok || !e.HasComponent(components.Object) {
		return
	}
	space := components.Space.Get(spaceEntry)
	if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
		space.Remove(obj.Object)
	}
}

// levelGrid returns the stage grid, or nil before a level is loaded.
func levelGrid(w donburi.World) *tilegrid.Grid {
	level, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(level).Grid
}

func emit(w donburi.World, ev components.Event) {
	queue, ok := components.Events.First(w)
	if !ok {
		return
	}
	q := components.Events.Get(queue)
	q.Pending = append(q.Pending, ev)
}

// DrainEvents returns and clears the events raised since the last drain.
func DrainEvents(w donburi.World) []components.Event {
	queue, ok := components.Events.First(w)
	if !ok {
		return nil
	}
	q := components.Events.Get(queue)
	out := q.Pending
	q.Pending = nil
	return out
}

// overlapping returns the entries tagged tag whose boxes strictly overlap box.
// obj must be registered in a space; its cells are the broad phase.
func overlapping(obj *resolv.Object, box gamemath.Rect, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var hits []*donburi.Entry
	for _, o := range check.Objects {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		if gamemath.Overlaps(box, gamemath.ObjectRect(o)) {
			hits = append(hits, e)
		}
	}
	return hits
}
