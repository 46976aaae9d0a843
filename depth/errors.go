package depth

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrNoCamera        = errors.New("no active camera")
	ErrMultipleCameras = errors.New("more than one active camera")
	ErrInvalidViewport = errors.New("viewport must have a positive size")
	ErrProjection      = errors.New("world point cannot be projected into the viewport")
)

// ConfigurationError means the scene is set up wrong. It is fatal for the frame.
type ConfigurationError struct {
	Err   error
	Count int // number of cameras found, set with ErrMultipleCameras
}

func (e *ConfigurationError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("depth: configuration: %v (found %d)", e.Err, e.Count)
	}
	return fmt.Sprintf("depth: configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ProjectionError is a per-entity failure to map a world point to the viewport.
type ProjectionError struct {
	Entity donburi.Entity
	World  dmath.Vec2
	Err    error
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("depth: entity %v at (%g, %g): %v", e.Entity, e.World.X, e.World.Y, e.Err)
}

func (e *ProjectionError) Unwrap() error { return e.Err }

// Report summarises one pass.
type Report struct {
	Updated int
	Skipped []*ProjectionError
}

// Merge folds other into r. Used to combine worker results.
func (r *Report) Merge(other Report) {
	r.Updated += other.Updated
	r.Skipped = append(r.Skipped, other.Skipped...)
}
