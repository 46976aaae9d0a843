package depth

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Viewport is the size of the active render surface in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Validate reports a ConfigurationError unless both dimensions are positive and finite.
func (v Viewport) Validate() error {
	if !(v.Width > 0) || !(v.Height > 0) || math.IsInf(v.Width, 0) || math.IsInf(v.Height, 0) {
		return &ConfigurationError{Err: ErrInvalidViewport}
	}
	return nil
}

// Camera is an orthographic 2D camera. Position is the world point shown at
// the centre of the viewport.
type Camera struct {
	Position dmath.Vec2
	Zoom     float64
	Viewport Viewport
}

// NewCamera returns a camera at pos with zoom 1.
func NewCamera(pos dmath.Vec2, vp Viewport) Camera {
	return Camera{Position: pos, Zoom: 1, Viewport: vp}
}

// WorldToViewport maps a Y-down world point to viewport coordinates whose
// origin is the bottom-left corner with Y growing upward.
func (c Camera) WorldToViewport(world dmath.Vec2) (dmath.Vec2, error) {
	if !finite(world.X) || !finite(world.Y) {
		return dmath.Vec2{}, ErrProjection
	}
	if !(c.Zoom > 0) || !finite(c.Zoom) || !finite(c.Position.X) || !finite(c.Position.Y) {
		return dmath.Vec2{}, ErrProjection
	}
	if err := c.Viewport.Validate(); err != nil {
		return dmath.Vec2{}, err
	}

	x := (world.X-c.Position.X)*c.Zoom + c.Viewport.Width/2
	y := c.Viewport.Height/2 - (world.Y-c.Position.Y)*c.Zoom
	if !finite(x) || !finite(y) {
		return dmath.Vec2{}, ErrProjection
	}
	return dmath.NewVec2(x, y), nil
}

// WorldToScreen maps a world point to Y-down screen pixels, the space ebiten draws in.
func (c Camera) WorldToScreen(world dmath.Vec2) (dmath.Vec2, error) {
	vp, err := c.WorldToViewport(world)
	if err != nil {
		return dmath.Vec2{}, err
	}
	return dmath.NewVec2(vp.X, c.Viewport.Height-vp.Y), nil
}

// Single returns the only camera in cams. Zero or several cameras is a
// ConfigurationError.
func Single(cams []Camera) (Camera, error) {
	switch len(cams) {
	case 0:
		return Camera{}, &ConfigurationError{Err: ErrNoCamera}
	case 1:
		return cams[0], nil
	default:
		return Camera{}, &ConfigurationError{Err: ErrMultipleCameras, Count: len(cams)}
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
