package factory

import (
	"image/color"

	"github.com/automoto/lunium/assets"
	"github.com/automoto/lunium/components"
	"github.com/automoto/lunium/depth"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// newPlaceholder builds a flat coloured sprite anchored at its prefab origin.
func newPlaceholder(spec assets.SpriteSpec, fill color.Color) components.SpriteData {
	img := ebiten.NewImage(spec.Width, spec.Height)
	img.Fill(fill)
	return components.SpriteData{
		Image:  img,
		PivotX: spec.OriginX,
		PivotY: spec.OriginY,
	}
}

// setDrawable fills the components every drawable archetype carries.
// Depth is left at zero until the first depth pass.
func setDrawable(e *donburi.Entry, pos dmath.Vec2, sprite components.SpriteData, layer depth.Layer) {
	transform.Transform.Get(e).LocalPosition = pos
	components.Sprite.SetValue(e, sprite)
	components.DrawLayer.SetValue(e, components.DrawLayerData{Layer: layer})
}
