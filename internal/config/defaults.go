package config

import (
	_ "embed"

	"github.com/vovakirdan/gatefall/internal/core"
)

//go:embed defaults/gatefall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/gatefall.yaml.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:      1000,
			Height:     750,
			Background: core.ColorGray,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -9,
		},
		Obstacles: ObstacleConfig{
			Width:         100,
			Speed:         -3,
			Gap:           200,
			MinimumHeight: 100,
			Distance:      300,
			Color:         core.ColorBlack,
		},
		Player: PlayerConfig{
			X:      200,
			Y:      375,
			Radius: 30,
		},
		Boundaries: BoundaryConfig{
			FloorThickness:   35,
			CeilingThickness: 35,
			Color:            core.ColorBlack,
		},
		Loop: LoopConfig{
			TargetFPS:       60,
			CollisionWindow: 2,
			HaltOnCollision: true,
			ShowFPS:         true,
			TextColor:       core.ColorRed,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
