package archetypes

import (
	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// Every drawable takes part in the depth pass.
var drawable = []donburi.IComponentType{
	transform.Transform,
	components.Sprite,
	components.DrawLayer,
	components.Depth,
}

var (
	Player = newArchetype(
		append([]donburi.IComponentType{
			tags.Player,
			components.Player,
			components.Object,
		}, drawable...)...,
	)
	Wanderer = newArchetype(
		append([]donburi.IComponentType{
			tags.Wanderer,
			components.Patrol,
		}, drawable...)...,
	)
	OreVein = newArchetype(
		append([]donburi.IComponentType{
			tags.OreVein,
			components.OreVein,
			components.Object,
		}, drawable...)...,
	)
	Label = newArchetype(
		append([]donburi.IComponentType{
			tags.Label,
			components.Label,
		}, drawable...)...,
	)
	Drawable = newArchetype(drawable...)
	Space    = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components[:len(a.components):len(a.components)], cs...)...,
	))
	return e
}
