package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's collider. OffsetX/OffsetY place the collider's
// top-left corner relative to the entity's world position.
type ObjectData struct {
	*resolv.Object
	OffsetX float64
	OffsetY float64
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
