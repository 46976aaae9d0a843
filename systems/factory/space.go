package factory

import (
	"github.com/automoto/lunium/archetypes"
	"github.com/automoto/lunium/assets"
	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// CreateSpace spawns the collision space covering the whole scene.
// It must exist before any entity with a collider is created.
func CreateSpace(ecs *ecs.ECS, scene *assets.Scene) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := cfg.Scene.CellSize
	components.Space.Set(space, resolv.NewSpace(scene.Width, scene.Height, cell, cell))
	return space
}

// attachCollider gives e a box collider placed relative to its world position
// and registers it with the scene space.
func attachCollider(ecs *ecs.ECS, e *donburi.Entry, spec *assets.ColliderSpec, tags ...string) {
	if spec == nil {
		return
	}
	pos := transform.WorldPosition(e)
	obj := resolv.NewObject(pos.X+spec.OffsetX, pos.Y+spec.OffsetY, spec.Width, spec.Height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, spec.Width, spec.Height))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{
		Object:  obj,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
