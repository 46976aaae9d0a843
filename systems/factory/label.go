package factory

import (
	"image/color"

	"github.com/automoto/lunium/archetypes"
	"github.com/automoto/lunium/assets"
	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

const labelPadding = 4

var labelBackground = color.RGBA{R: 0, G: 0, B: 0, A: 160}

// CreateLabel spawns a text sprite parented to owner. The label keeps its
// offset from the owner as the owner moves.
func CreateLabel(ecs *ecs.ECS, owner *donburi.Entry, spec assets.LabelSpec) *donburi.Entry {
	label := archetypes.Label.Spawn(ecs)
	components.Label.SetValue(label, components.LabelData{Text: spec.Text})

	transform.AppendChild(owner, label, false)
	setDrawable(label, dmath.NewVec2(spec.OffsetX, spec.OffsetY), newTextSprite(spec.Text), cfg.LayerOverlay)

	return label
}

// newTextSprite renders s on a translucent plate anchored at its bottom centre.
func newTextSprite(s string) components.SpriteData {
	face := fonts.Label.Get()
	bounds := text.BoundString(face, s)

	w := bounds.Dx() + 2*labelPadding
	h := bounds.Dy() + 2*labelPadding
	img := ebiten.NewImage(w, h)
	img.Fill(labelBackground)
	text.Draw(img, s, face, labelPadding-bounds.Min.X, labelPadding-bounds.Min.Y, cfg.White)

	return components.SpriteData{
		Image:  img,
		PivotX: float64(w) / 2,
		PivotY: float64(h),
	}
}
