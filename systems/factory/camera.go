package factory

import (
	"github.com/automoto/lunium/archetypes"
	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the scene camera centred on pos.
func CreateCamera(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: pos,
		Zoom:     cfg.Camera.Zoom,
	})
	return camera
}
