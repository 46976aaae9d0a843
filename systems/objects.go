package systems

import (
	"github.com/automoto/lunium/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateObjects moves every collider to its entity's world position so the
// resolv space matches the transforms produced this frame.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		syncCollider(e, obj)
	}
}

func syncCollider(e *donburi.Entry, obj *components.ObjectData) {
	pos := transform.WorldPosition(e)
	x, y := pos.X+obj.OffsetX, pos.Y+obj.OffsetY
	if obj.X == x && obj.Y == y {
		return
	}
	obj.X, obj.Y = x, y
	obj.Update()
}
