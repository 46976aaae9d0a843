package systems

import (
	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/depth"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/sync/errgroup"
)

// Entities missing any of these are left alone by the depth pass.
var drawableQuery = donburi.NewQuery(filter.Contains(
	transform.Transform,
	components.Sprite,
	components.DrawLayer,
	components.Depth,
))

// ScreenViewport is the logical render surface from config.
func ScreenViewport() depth.Viewport {
	return depth.Viewport{Width: float64(cfg.C.Width), Height: float64(cfg.C.Height)}
}

// ActiveCamera returns the projection of the only camera entity in world.
func ActiveCamera(world donburi.World, vp depth.Viewport) (depth.Camera, error) {
	var cams []depth.Camera
	components.Camera.Each(world, func(e *donburi.Entry) {
		c := components.Camera.Get(e)
		zoom := c.Zoom
		if zoom == 0 {
			zoom = 1
		}
		cams = append(cams, depth.Camera{Position: c.Position, Zoom: zoom, Viewport: vp})
	})

	cam, err := depth.Single(cams)
	if err != nil {
		return depth.Camera{}, err
	}
	if err := vp.Validate(); err != nil {
		return depth.Camera{}, err
	}
	return cam, nil
}

// UpdateDepth runs the depth pass with the configured options. It must run
// after every system that moves entities and before the renderers.
func UpdateDepth(e *ecs.ECS) (depth.Report, error) {
	vp := ScreenViewport()
	opts := cfg.Depth.Options()
	if cfg.Depth.Workers > 1 && drawableQuery.Count(e.World) > cfg.Depth.ParallelThreshold {
		return NormalizeDepthsParallel(e.World, vp, opts, cfg.Depth.Workers)
	}
	return NormalizeDepths(e.World, vp, opts)
}

// NormalizeDepths recomputes the Depth of every drawable from its world
// position and draw layer.
func NormalizeDepths(world donburi.World, vp depth.Viewport, opts depth.Options) (depth.Report, error) {
	var report depth.Report
	cam, err := ActiveCamera(world, vp)
	if err != nil {
		return report, err
	}

	var abort error
	drawableQuery.Each(world, func(entry *donburi.Entry) {
		if abort != nil {
			return
		}
		abort = normalizeEntry(entry, cam, opts, &report)
	})
	return report, abort
}

// NormalizeDepthsParallel is NormalizeDepths split over workers goroutines.
// The camera is resolved once before fanning out and each worker writes only
// the entries of its own chunk. Skipped entities are reported in the same order
// as the serial pass.
func NormalizeDepthsParallel(world donburi.World, vp depth.Viewport, opts depth.Options, workers int) (depth.Report, error) {
	var report depth.Report
	cam, err := ActiveCamera(world, vp)
	if err != nil {
		return report, err
	}

	entries := make([]*donburi.Entry, 0, drawableQuery.Count(world))
	drawableQuery.Each(world, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	if len(entries) == 0 {
		return report, nil
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(entries) {
		workers = len(entries)
	}
	size := (len(entries) + workers - 1) / workers
	parts := make([]depth.Report, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		lo := i * size
		hi := min(lo+size, len(entries))
		if lo >= hi {
			break
		}
		part := &parts[i]
		chunk := entries[lo:hi]
		g.Go(func() error {
			for _, entry := range chunk {
				if err := normalizeEntry(entry, cam, opts, part); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err = g.Wait()

	for _, p := range parts {
		report.Merge(p)
	}
	return report, err
}

func normalizeEntry(entry *donburi.Entry, cam depth.Camera, opts depth.Options, report *depth.Report) error {
	layer := components.DrawLayer.Get(entry).Layer
	pos := transform.WorldPosition(entry)

	z, err := depth.Normalize(layer, pos, cam, opts)
	if err != nil {
		perr := &depth.ProjectionError{Entity: entry.Entity(), World: pos, Err: err}
		if opts.OnProjectionError == depth.Abort {
			return perr
		}
		report.Skipped = append(report.Skipped, perr)
		return nil
	}

	components.Depth.Get(entry).Z = z
	report.Updated++
	return nil
}
