// Package depth turns a discrete draw layer and a world position into the
// continuous depth value the renderer sorts by.
//
// Depth is BaseOffset + layer - projectedY/viewportHeight. The integer layer
// picks a bucket and the screen-space correction orders entities inside it:
// the lower an entity sits on screen, the larger its depth and the later it
// is drawn. The package has no ECS dependency; the ECS driver lives in
// package systems.
package depth

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// BaseOffset keeps every layered depth above a background drawn at 0.
const BaseOffset = 1.0

// Layer is a coarse draw-order bucket. Higher layers are drawn on top of lower
// ones regardless of position. A layer is assigned when an entity is created
// and is not changed afterwards.
type Layer uint16

// ErrorPolicy decides what a pass does when a single entity cannot be projected.
type ErrorPolicy int

const (
	// Skip leaves the entity's previous depth in place and records it in the Report.
	Skip ErrorPolicy = iota
	// Abort stops the pass and returns the ProjectionError.
	Abort
)

func (p ErrorPolicy) String() string {
	switch p {
	case Skip:
		return "skip"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Options tune a normalization pass.
type Options struct {
	// BaseOffset is added to every depth. Zero means use the package BaseOffset.
	BaseOffset float64
	// ClampCorrection clamps projectedY/height into [0, 1] so an off-screen
	// entity can never leave its layer bucket.
	ClampCorrection bool
	// OnProjectionError selects the per-entity failure policy.
	OnProjectionError ErrorPolicy
}

// DefaultOptions returns the options used by the game: clamped correction,
// skip on projection failure.
func DefaultOptions() Options {
	return Options{
		BaseOffset:        BaseOffset,
		ClampCorrection:   true,
		OnProjectionError: Skip,
	}
}

func (o Options) offset() float64 {
	if o.BaseOffset == 0 {
		return BaseOffset
	}
	return o.BaseOffset
}

// Correction is the within-layer tie-break term: 0 at the bottom edge of the
// viewport, 1 at the top edge.
func Correction(projectedY, height float64) float64 {
	return projectedY / height
}

// Compute returns the depth for an entity on layer whose position projects to
// projectedY in a viewport of the given height.
func Compute(layer Layer, projectedY, height float64, opts Options) (float64, error) {
	if !(height > 0) || math.IsInf(height, 0) {
		return 0, &ConfigurationError{Err: ErrInvalidViewport}
	}
	if math.IsNaN(projectedY) || math.IsInf(projectedY, 0) {
		return 0, ErrProjection
	}

	c := Correction(projectedY, height)
	if opts.ClampCorrection {
		c = math.Max(0, math.Min(1, c))
	}
	return opts.offset() + float64(layer) - c, nil
}

// Normalize projects world through cam and returns the entity's depth.
func Normalize(layer Layer, world dmath.Vec2, cam Camera, opts Options) (float64, error) {
	if err := cam.Viewport.Validate(); err != nil {
		return 0, err
	}
	vp, err := cam.WorldToViewport(world)
	if err != nil {
		return 0, err
	}
	return Compute(layer, vp.Y, cam.Viewport.Height, opts)
}
