package factory

import (
	"github.com/automoto/lunium/archetypes"
	"github.com/automoto/lunium/assets"
	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/depth"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateWanderer spawns a character that walks down and back up forever,
// crossing the player's row so both share a layer but swap order on screen.
func CreateWanderer(ecs *ecs.ECS, prefab *assets.Prefab, p assets.Placement) *donburi.Entry {
	wanderer := archetypes.Wanderer.Spawn(ecs)

	origin := dmath.NewVec2(p.X, p.Y)
	setDrawable(wanderer, origin,
		newPlaceholder(prefab.Sprite, prefab.Sprite.Color),
		depth.Layer(prefab.Layer))

	// Offsets are relative to origin so the sequence can restart in place.
	dist := float32(cfg.Wander.Distance)
	tw := gween.NewSequence(
		gween.New(0, dist, cfg.Wander.Duration, ease.InOutQuad),
		gween.New(dist, 0, cfg.Wander.Duration, ease.InOutQuad),
	)
	components.Patrol.SetValue(wanderer, components.PatrolData{
		Origin:   origin,
		Sequence: tw,
	})

	return wanderer
}
