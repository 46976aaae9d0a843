package systems

import (
	"math"

	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// UpdatePlayer moves the player from the held movement keys.
func UpdatePlayer(ecs *ecs.ECS) {
	StepPlayers(ecs.World, getOrCreateInput(ecs), 1/float64(ebiten.TPS()))
}

// MoveDirection turns held keys into a unit direction in Y-down world space.
// Opposite keys cancel and diagonals are normalized.
func MoveDirection(up, down, left, right bool) dmath.Vec2 {
	v := dmath.NewVec2(float64(b2i(right)-b2i(left)), float64(b2i(down)-b2i(up)))
	if v.X == 0 && v.Y == 0 {
		return v
	}
	return v.MulScalar(1 / math.Hypot(v.X, v.Y))
}

// StepPlayers advances every player by dt seconds. Positions snap to whole
// pixels and movement stops at solid colliders.
func StepPlayers(world donburi.World, input *components.InputData, dt float64) {
	dir := MoveDirection(
		GetAction(input, cfg.ActionMoveUp).Pressed,
		GetAction(input, cfg.ActionMoveDown).Pressed,
		GetAction(input, cfg.ActionMoveLeft).Pressed,
		GetAction(input, cfg.ActionMoveRight).Pressed,
	)

	tags.Player.Each(world, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		t := transform.Transform.Get(e)

		target := t.LocalPosition.Add(dir.MulScalar(player.Speed * dt))
		dx := math.Round(target.X) - t.LocalPosition.X
		dy := math.Round(target.Y) - t.LocalPosition.Y
		if dx == 0 && dy == 0 {
			return
		}

		if obj := colliderOf(e); obj != nil {
			syncCollider(e, obj)
			dx = resolveAxis(obj, dx, 0)
			obj.X += dx
			dy = resolveAxis(obj, 0, dy)
			obj.Y += dy
			obj.Update()
		}

		t.LocalPosition.X += dx
		t.LocalPosition.Y += dy
	})
}

// resolveAxis shortens a single-axis move so obj stops touching the first solid in the way.
func resolveAxis(obj *components.ObjectData, dx, dy float64) float64 {
	move := dx + dy
	if move == 0 {
		return 0
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return move
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return move
	}
	// Check is a cell broadphase, so the nearest solid may still be farther away than the move.
	for _, s := range solids {
		contact := check.ContactWithObject(s)
		c := contact.Y()
		if dx != 0 {
			c = contact.X()
		}
		if !overlapsAcross(obj, s, dx, dy) || !ahead(obj, s, dx, dy) {
			continue
		}
		if move > 0 {
			move = math.Max(0, math.Min(move, c))
		} else {
			move = math.Min(0, math.Max(move, c))
		}
	}
	return move
}

// ahead reports whether s lies entirely in front of obj in the direction of the move.
// A collider obj already overlaps never blocks, so an overlapping spawn can walk free.
func ahead(obj *components.ObjectData, s *resolv.Object, dx, dy float64) bool {
	switch {
	case dx > 0:
		return s.X >= obj.X+obj.W
	case dx < 0:
		return s.X+s.W <= obj.X
	case dy > 0:
		return s.Y >= obj.Y+obj.H
	default:
		return s.Y+s.H <= obj.Y
	}
}

// overlapsAcross reports whether s shares obj's extent on the axis perpendicular to the move.
func overlapsAcross(obj *components.ObjectData, s *resolv.Object, dx, dy float64) bool {
	if dx != 0 {
		return obj.Y < s.Y+s.H && s.Y < obj.Y+obj.H
	}
	return obj.X < s.X+s.W && s.X < obj.X+obj.W
}

// colliderOf returns e's collider, or nil when it has none.
func colliderOf(e *donburi.Entry) *components.ObjectData {
	if !e.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return nil
	}
	return obj
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
