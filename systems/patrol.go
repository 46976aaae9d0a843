package systems

import (
	"github.com/automoto/lunium/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdatePatrol advances every patrol tween by one tick.
func UpdatePatrol(ecs *ecs.ECS) {
	StepPatrol(ecs.World, float32(1/float64(ebiten.TPS())))
}

// StepPatrol advances every patrol tween by dt seconds and restarts finished loops.
func StepPatrol(world donburi.World, dt float32) {
	components.Patrol.Each(world, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		if patrol.Sequence == nil {
			return
		}
		offset, _, sequenceDone := patrol.Sequence.Update(dt)
		if sequenceDone {
			patrol.Sequence.Reset()
		}

		t := transform.Transform.Get(e)
		t.LocalPosition.X = patrol.Origin.X
		t.LocalPosition.Y = patrol.Origin.Y + float64(offset)
	})
}
