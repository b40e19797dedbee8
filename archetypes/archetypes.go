package archetypes

import (
	"github.com/automoto/brownian/components"
	"github.com/automoto/brownian/tags"
	"github.com/yohamta/donburi"
)

var (
	Body = newArchetype(
		tags.Body,
		components.Body,
		components.Impulse,
		components.PhysicsBody,
		components.Transform,
		components.Sprite,
		components.Object,
	)
	Anchor = newArchetype(
		tags.Anchor,
		components.Anchor,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
	VisibilityIndex = newArchetype(
		components.VisibilityIndex,
	)
	Input = newArchetype(
		components.Input,
		components.ScrollQueue,
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
