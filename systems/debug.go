package systems

import (
	"fmt"

	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/depth"
	"github.com/automoto/lunium/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// DrawDepthOverlay prints the layer and depth of every drawable next to its anchor.
func DrawDepthOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowDepth {
		return
	}

	vp := depth.Viewport{Width: float64(screen.Bounds().Dx()), Height: float64(screen.Bounds().Dy())}
	cam, err := ActiveCamera(ecs.World, vp)
	if err != nil {
		return
	}
	face := fonts.Regular.Get()

	drawableQuery.Each(ecs.World, func(e *donburi.Entry) {
		pos, err := cam.WorldToScreen(transform.WorldPosition(e))
		if err != nil {
			return
		}
		layer := components.DrawLayer.Get(e).Layer
		z := components.Depth.Get(e).Z

		// Anchor marker
		vector.FillRect(screen, float32(pos.X-2), float32(pos.Y-2), 4, 4, cfg.Debug.OverlayColor, false)
		text.Draw(screen, fmt.Sprintf("L%d z=%.4f", layer, z), face, int(pos.X)+6, int(pos.Y), cfg.Debug.OverlayColor)
	})
}
