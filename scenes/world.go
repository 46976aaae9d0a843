package scenes

import (
	"log"
	"sync"

	"github.com/automoto/lunium/assets"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/systems"
	"github.com/automoto/lunium/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type WorldScene struct {
	ecs         *ecs.ECS
	once        sync.Once
	lastSkipped int
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

// Update runs the gameplay systems, then normalizes depth over the transforms
// they produced. A configuration error from the depth pass stops the game.
func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.QuitRequested(ws.ecs) {
		return ebiten.Termination
	}

	report, err := systems.UpdateDepth(ws.ecs)
	if err != nil {
		return err
	}
	if n := len(report.Skipped); n != ws.lastSkipped {
		if n > 0 {
			log.Printf("Warning: depth pass skipped %d entities: %v", n, report.Skipped[0])
		}
		ws.lastSkipped = n
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Ground)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	scene, prefabs := assets.MustLoadScene(cfg.Scene.MapPath, cfg.Scene.PrefabsDir)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every system sees this frame's actions.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Systems that produce transforms
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePatrol)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDepthOverlay)

	ws.ecs = ecs

	factory.CreateScene(ws.ecs, scene, prefabs)
}
