package depth

import (
	"errors"
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestWorldToViewport(t *testing.T) {
	cases := []struct {
		name  string
		cam   Camera
		world dmath.Vec2
		want  dmath.Vec2
	}{
		{"origin_centre", NewCamera(dmath.NewVec2(0, 0), hd), dmath.NewVec2(0, 0), dmath.NewVec2(960, 540)},
		{"bottom_left", NewCamera(dmath.NewVec2(0, 0), hd), dmath.NewVec2(-960, 540), dmath.NewVec2(0, 0)},
		{"top_right", NewCamera(dmath.NewVec2(0, 0), hd), dmath.NewVec2(960, -540), dmath.NewVec2(1920, 1080)},
		{"offset_camera", NewCamera(dmath.NewVec2(100, 50), hd), dmath.NewVec2(100, 50), dmath.NewVec2(960, 540)},
		{"zoomed", Camera{Zoom: 2, Viewport: hd}, dmath.NewVec2(10, 10), dmath.NewVec2(980, 520)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.cam.WorldToViewport(c.world)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !approx(got.X, c.want.X) || !approx(got.Y, c.want.Y) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := NewCamera(dmath.NewVec2(0, 0), hd)
	got, err := cam.WorldToScreen(dmath.NewVec2(-960, 540))
	if err != nil {
		t.Fatal(err)
	}
	if got.X != 0 || got.Y != 1080 {
		t.Fatalf("expected bottom-left screen pixel (0, 1080), got %v", got)
	}
}

func TestWorldToViewportFailures(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name  string
		cam   Camera
		world dmath.Vec2
	}{
		{"nan_point", NewCamera(dmath.Vec2{}, hd), dmath.NewVec2(nan, 0)},
		{"inf_point", NewCamera(dmath.Vec2{}, hd), dmath.NewVec2(0, math.Inf(-1))},
		{"zero_zoom", Camera{Viewport: hd}, dmath.NewVec2(0, 0)},
		{"negative_zoom", Camera{Zoom: -1, Viewport: hd}, dmath.NewVec2(0, 0)},
		{"overflow", Camera{Zoom: math.MaxFloat64, Viewport: hd}, dmath.NewVec2(math.MaxFloat64, 0)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.cam.WorldToViewport(c.world); !errors.Is(err, ErrProjection) {
				t.Fatalf("expected ErrProjection, got %v", err)
			}
		})
	}
}

func TestSingleCamera(t *testing.T) {
	cam := NewCamera(dmath.NewVec2(1, 2), hd)

	if _, err := Single(nil); !errors.Is(err, ErrNoCamera) {
		t.Fatalf("expected ErrNoCamera, got %v", err)
	}

	_, err := Single([]Camera{cam, cam})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || !errors.Is(err, ErrMultipleCameras) || cfgErr.Count != 2 {
		t.Fatalf("expected multiple camera error with count 2, got %v", err)
	}

	got, err := Single([]Camera{cam})
	if err != nil || got != cam {
		t.Fatalf("expected the only camera back, got %v, %v", got, err)
	}
}

func TestViewportValidate(t *testing.T) {
	if err := hd.Validate(); err != nil {
		t.Fatalf("1920x1080 should be valid: %v", err)
	}
	if err := (Viewport{Width: 1920}).Validate(); !errors.Is(err, ErrInvalidViewport) {
		t.Fatalf("zero height should be invalid, got %v", err)
	}
}
