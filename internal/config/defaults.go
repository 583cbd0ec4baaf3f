package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in variants.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Default: "classic",
		Variants: map[string]Variant{
			"classic": {
				Title: "Snake",
				Board: BoardConfig{
					ViewportWidth:  640,
					ViewportHeight: 480,
					CellSize:       32,
				},
				Speed: SpeedConfig{
					BaseDelayMs: 150,
					StepMs:      2,
				},
				Input:       InputConfig{Policy: "queued"},
				OverDelayMs: 200,
			},
			"fixed": {
				Title: "Snake (Fixed)",
				Board: BoardConfig{
					ViewportWidth:  640,
					ViewportHeight: 480,
					CellSize:       16,
				},
				Speed: SpeedConfig{
					BaseDelayMs: 100,
					Fixed:       true,
				},
				Input:       InputConfig{Policy: "queued"},
				OverDelayMs: 200,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
