package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point at the centre of the screen
	Zoom     float64
}

var Camera = donburi.NewComponentType[CameraData]()
