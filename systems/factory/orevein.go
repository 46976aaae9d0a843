package factory

import (
	"fmt"

	"github.com/automoto/lunium/archetypes"
	"github.com/automoto/lunium/assets"
	"github.com/automoto/lunium/components"
	"github.com/automoto/lunium/depth"
	"github.com/automoto/lunium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateOreVein spawns a solid ore vein. The sprite colour comes from the
// prefab's ore_colors entry for the vein's type when one exists.
func CreateOreVein(ecs *ecs.ECS, prefab *assets.Prefab, p assets.Placement) *donburi.Entry {
	oreType, ok := components.ParseOreType(p.OreType)
	if !ok {
		panic(fmt.Sprintf("ore vein %q: unknown ore_type %q", p.Name, p.OreType))
	}

	vein := archetypes.OreVein.Spawn(ecs)

	fill := prefab.Sprite.Color
	if c, ok := prefab.OreColors[oreType.String()]; ok {
		fill = c
	}
	setDrawable(vein, dmath.NewVec2(p.X, p.Y), newPlaceholder(prefab.Sprite, fill), depth.Layer(prefab.Layer))

	amount := p.Amount
	if amount <= 0 {
		amount = components.DefaultOreAmount
	}
	components.OreVein.SetValue(vein, components.OreVeinData{
		Type:   oreType,
		Amount: amount,
	})

	attachCollider(ecs, vein, prefab.Collider, tags.ResolvSolid)

	return vein
}
