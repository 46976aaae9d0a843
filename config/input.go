package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionToggleDepthOverlay
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp:             {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionMoveDown:           {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionMoveLeft:           {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveRight:          {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionToggleDepthOverlay: {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionQuit:               {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
