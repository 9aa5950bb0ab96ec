package archetypes

import (
	"github.com/automoto/digdug/components"
	"github.com/automoto/digdug/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Actor,
		components.Harpoon,
		components.Object,
	)
	Pooka = newArchetype(
		tags.Enemy,
		tags.Pooka,
		components.Enemy,
		components.Actor,
		components.Object,
	)
	Rock = newArchetype(
		tags.Rock,
		components.Rock,
		components.Actor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Events = newArchetype(
		components.Events,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
