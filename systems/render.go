package systems

import (
	"sort"

	"github.com/automoto/lunium/components"
	"github.com/automoto/lunium/depth"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	drawItems   []DrawItem
	spriteQuery = donburi.NewQuery(filter.Contains(transform.Transform, components.Sprite))
)

// DrawItem is one sprite in the painter's queue.
type DrawItem struct {
	Entity donburi.Entity
	Z      float64
	Entry  *donburi.Entry
}

// SortByDepth orders items back to front. Equal depths fall back to entity id
// so the order is stable across frames.
func SortByDepth(items []DrawItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Z != items[j].Z {
			return items[i].Z < items[j].Z
		}
		return items[i].Entity < items[j].Entity
	})
}

// CollectDrawItems appends every sprite in world to dst. Sprites without a
// Depth component sort as background (0).
func CollectDrawItems(world donburi.World, dst []DrawItem) []DrawItem {
	spriteQuery.Each(world, func(e *donburi.Entry) {
		z := 0.0
		if e.HasComponent(components.Depth) {
			z = components.Depth.Get(e).Z
		}
		dst = append(dst, DrawItem{Entity: e.Entity(), Z: z, Entry: e})
	})
	return dst
}

// DrawSprites draws every sprite back to front by depth.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	vp := depth.Viewport{Width: float64(screen.Bounds().Dx()), Height: float64(screen.Bounds().Dy())}
	cam, err := ActiveCamera(ecs.World, vp)
	if err != nil {
		return // no camera yet
	}

	drawItems = CollectDrawItems(ecs.World, drawItems[:0])
	SortByDepth(drawItems)

	for _, item := range drawItems {
		sprite := components.Sprite.Get(item.Entry)
		if sprite.Image == nil {
			continue
		}
		pos, err := cam.WorldToScreen(transform.WorldPosition(item.Entry))
		if err != nil {
			continue
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Pivot at the sprite's anchor point, then camera zoom and position.
		drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
		drawOp.GeoM.Scale(cam.Zoom, cam.Zoom)
		drawOp.GeoM.Translate(pos.X, pos.Y)

		screen.DrawImage(sprite.Image, drawOp)
	}
}
