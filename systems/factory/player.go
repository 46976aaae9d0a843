package factory

import (
	"github.com/automoto/lunium/archetypes"
	"github.com/automoto/lunium/assets"
	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/depth"
	"github.com/automoto/lunium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, prefab *assets.Prefab, p assets.Placement) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	setDrawable(player, dmath.NewVec2(p.X, p.Y),
		newPlaceholder(prefab.Sprite, prefab.Sprite.Color),
		depth.Layer(prefab.Layer))

	speed := prefab.Speed
	if speed <= 0 {
		speed = cfg.Player.Speed
	}
	components.Player.SetValue(player, components.PlayerData{Speed: speed})

	attachCollider(ecs, player, prefab.Collider, "character", tags.ResolvPlayer)

	if prefab.Label != nil {
		CreateLabel(ecs, player, *prefab.Label)
	}

	return player
}
