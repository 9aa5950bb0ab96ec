package factory

import (
	"github.com/automoto/digdug/archetypes"
	"github.com/automoto/digdug/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace adds the collision space singleton. Cells match the tile size
// so a broad-phase query touches only neighbouring tiles.
func CreateSpace(w donburi.World, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellSize, cellSize),
	})
	return space
}

// CreateEventQueue adds the per-frame event queue singleton.
func CreateEventQueue(w donburi.World) *donburi.Entry {
	events := archetypes.Events.Spawn(w)
	components.Events.SetValue(events, components.EventQueueData{})
	return events
}

// addObject registers a centered collision box for entry in the space, if any.
func addObject(w donburi.World, entry *donburi.Entry, cx, cy, width, height float64, tag string) *resolv.Object {
	obj := resolv.NewObject(cx-width/2, cy-height/2, width, height, tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// ResizeSpace replaces the collision space with one of the given size and
// moves every collision box and harpoon probe into it.
func ResizeSpace(w donburi.World, width, height, cellSize int) *donburi.Entry {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return CreateSpace(w, width, height, cellSize)
	}
	old := components.Space.Get(spaceEntry)
	next := resolv.NewSpace(width, height, cellSize, cellSize)
	move := func(obj *resolv.Object) {
		if obj == nil {
			return
		}
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}
		next.Add(obj)
	}
	components.Object.Each(w, func(e *donburi.Entry) {
		move(components.Object.Get(e).Object)
	})
	components.Harpoon.Each(w, func(e *donburi.Entry) {
		move(components.Harpoon.Get(e).Probe)
	})
	old.Space = next
	return spaceEntry
}
