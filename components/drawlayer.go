package components

import (
	"github.com/automoto/lunium/depth"
	"github.com/yohamta/donburi"
)

// DrawLayerData is set once by the factory that spawns the entity.
type DrawLayerData struct {
	Layer depth.Layer
}

var DrawLayer = donburi.NewComponentType[DrawLayerData]()

// DepthData is written only by the depth pass and read by the renderer.
type DepthData struct {
	Z float64
}

var Depth = donburi.NewComponentType[DepthData]()
