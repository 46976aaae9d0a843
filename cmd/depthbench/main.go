// Profiling:
// go build ./cmd/depthbench
// ./depthbench -entities 20000 -frames 600 -parallel -profile cpu
// go tool pprof -http=":8000" ./depthbench cpu.pprof

package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/depth"
	"github.com/automoto/lunium/systems"
	"github.com/pkg/profile"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func main() {
	entities := flag.Int("entities", 10000, "drawables to spawn")
	frames := flag.Int("frames", 600, "depth passes to run")
	parallel := flag.Bool("parallel", false, "use the worker pool pass")
	mode := flag.String("profile", "cpu", "profile to write: cpu or mem")
	flag.Parse()

	var p interface{ Stop() }
	switch *mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		log.Fatalf("unknown profile mode %q", *mode)
	}

	elapsed, err := run(*entities, *frames, *parallel)
	p.Stop()
	if err != nil {
		log.Fatalf("depth pass failed: %v", err)
	}
	log.Printf("%d entities x %d frames: %v (%v/frame)", *entities, *frames, elapsed, elapsed/time.Duration(max(*frames, 1)))
}

func run(numEntities, frames int, parallel bool) (time.Duration, error) {
	world := donburi.NewWorld()
	populate(world, numEntities)

	vp := systems.ScreenViewport()
	opts := cfg.Depth.Options()
	start := time.Now()
	for range frames {
		var err error
		if parallel {
			_, err = systems.NormalizeDepthsParallel(world, vp, opts, cfg.Depth.Workers)
		} else {
			_, err = systems.NormalizeDepths(world, vp, opts)
		}
		if err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

// populate spawns a camera and n drawables scattered over one screen.
func populate(world donburi.World, n int) {
	cam := world.Entry(world.Create(components.Camera))
	components.Camera.SetValue(cam, components.CameraData{
		Position: dmath.NewVec2(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2),
		Zoom:     1,
	})

	rng := rand.New(rand.NewSource(1))
	for range n {
		e := world.Entry(world.Create(transform.Transform, components.Sprite, components.DrawLayer, components.Depth))
		transform.Transform.Get(e).LocalPosition = dmath.NewVec2(
			rng.Float64()*float64(cfg.C.Width),
			rng.Float64()*float64(cfg.C.Height),
		)
		components.DrawLayer.SetValue(e, components.DrawLayerData{Layer: depth.Layer(rng.Intn(4))})
	}
}
