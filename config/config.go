package config

import (
	"image/color"
	"runtime"

	"github.com/automoto/lunium/depth"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ecs layer. Draw order is decided by depth, not by ecs layers.
const Default ecs.LayerID = 0

// Draw layers. Higher layers always render on top of lower ones.
const (
	LayerBackground depth.Layer = 0
	LayerGround     depth.Layer = 1 // ore veins and other ground clutter
	LayerActors     depth.Layer = 2 // player and wandering characters
	LayerOverlay    depth.Layer = 3 // labels attached to characters
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains player movement configuration
type PlayerConfig struct {
	Speed float64 // pixels per second
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the remaining distance covered per tick
	Zoom            float64
}

// DepthConfig contains depth normalization configuration
type DepthConfig struct {
	BaseOffset        float64
	ClampCorrection   bool // keep off-screen entities inside their layer bucket
	OnProjectionError depth.ErrorPolicy
	ParallelThreshold int // participating entities above which the pass fans out
	Workers           int
}

// Options converts the config into normalizer options.
func (d DepthConfig) Options() depth.Options {
	return depth.Options{
		BaseOffset:        d.BaseOffset,
		ClampCorrection:   d.ClampCorrection,
		OnProjectionError: d.OnProjectionError,
	}
}

// WanderConfig contains the patrol tween of the wandering character
type WanderConfig struct {
	Distance float64 // pixels travelled downward before turning back
	Duration float32 // seconds per leg
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowDepth     bool // print layer and depth next to each sprite
	OverlayColor  color.RGBA
	SettingsAppID string // gdata app name used for persisted settings
}

// SceneConfig points at the embedded scene and prefab data
type SceneConfig struct {
	MapPath    string
	PrefabsDir string
	CellSize   int // resolv space cell size
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Depth DepthConfig
var Wander WanderConfig
var Debug DebugConfig
var Scene SceneConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Ground     = color.RGBA{R: 58, G: 52, B: 44, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BrightLime = color.RGBA{R: 190, G: 255, B: 80, A: 255}
)

func init() {
	C = &Config{
		Width:  1920,
		Height: 1080,
		Title:  "lunium",
	}

	Player = PlayerConfig{
		Speed: 200,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		Zoom:            1,
	}

	Depth = DepthConfig{
		BaseOffset:        depth.BaseOffset,
		ClampCorrection:   true,
		OnProjectionError: depth.Skip,
		ParallelThreshold: 4096,
		Workers:           runtime.GOMAXPROCS(0),
	}

	Wander = WanderConfig{
		Distance: 320,
		Duration: 3,
	}

	Debug = DebugConfig{
		ShowDepth:     false,
		OverlayColor:  BrightLime,
		SettingsAppID: "lunium",
	}

	Scene = SceneConfig{
		MapPath:    "levels/outpost.tmx",
		PrefabsDir: "prefabs",
		CellSize:   16,
	}
}
