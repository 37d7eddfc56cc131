package config

import (
	_ "embed"
)

//go:embed defaults/tappy.yaml
var defaultTappyYAML []byte

// DefaultTappy returns the built-in configuration.
// It mirrors defaults/tappy.yaml and is used when the embedded file cannot be parsed.
func DefaultTappy() Tappy {
	return Tappy{
		World: World{
			Width:  1600,
			Height: 900,
		},
		Agent: Agent{
			X:      100,
			Size:   30,
			StartY: 400,
		},
		Physics: Physics{
			Gravity:      150 * 0.02,
			Jump:         85,
			TickInterval: 0.01,
			Speed:        3.1,
		},
		Obstacles: Obstacles{
			SpawnEvery: 210,
			MinWidth:   40,
			MaxWidth:   90,
			MinGap:     250,
			MaxGap:     400,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTappyYAML
}
