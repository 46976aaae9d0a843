package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData marks an entity as renderable. The transform position is drawn
// at (PivotX, PivotY) inside the image.
type SpriteData struct {
	Image  *ebiten.Image
	PivotX float64
	PivotY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
