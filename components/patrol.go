package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PatrolData offsets LocalPosition from Origin by a looping tween sequence.
type PatrolData struct {
	Origin   math.Vec2
	Sequence *gween.Sequence
}

var Patrol = donburi.NewComponentType[PatrolData]()
