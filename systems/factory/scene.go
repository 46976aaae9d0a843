package factory

import (
	"fmt"

	"github.com/automoto/lunium/assets"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Prefab names the scene map may reference.
const (
	PrefabPlayer   = "player"
	PrefabWanderer = "wanderer"
	PrefabOreVein  = "ore_vein"
)

// CreateScene spawns the collision space, every placement in map order and
// the camera. The camera starts on the player when there is one.
func CreateScene(ecs *ecs.ECS, scene *assets.Scene, prefabs map[string]*assets.Prefab) {
	CreateSpace(ecs, scene)

	start := dmath.NewVec2(float64(scene.Width)/2, float64(scene.Height)/2)
	for _, p := range scene.Placements {
		CreateFromPlacement(ecs, prefabs, p)
		if p.Prefab == PrefabPlayer {
			start = dmath.NewVec2(p.X, p.Y)
		}
	}

	CreateCamera(ecs, start)
}

// CreateFromPlacement dispatches a placement to the factory for its prefab.
func CreateFromPlacement(ecs *ecs.ECS, prefabs map[string]*assets.Prefab, p assets.Placement) *donburi.Entry {
	prefab, ok := prefabs[p.Prefab]
	if !ok {
		panic(fmt.Sprintf("placement %q: unknown prefab %q", p.Name, p.Prefab))
	}

	switch p.Prefab {
	case PrefabPlayer:
		return CreatePlayer(ecs, prefab, p)
	case PrefabWanderer:
		return CreateWanderer(ecs, prefab, p)
	case PrefabOreVein:
		return CreateOreVein(ecs, prefab, p)
	default:
		panic(fmt.Sprintf("placement %q: no factory for prefab %q", p.Name, p.Prefab))
	}
}
