// Package config provides YAML-based configuration loading and validation
// for Tappy Block.
package config

// Tappy contains all tunables of a Tappy Block session.
type Tappy struct {
	World     World     `yaml:"world"`
	Agent     Agent     `yaml:"agent"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
}

// World defines the fixed logical playfield.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Agent defines the falling block.
type Agent struct {
	X      float64 `yaml:"x"`
	Size   float64 `yaml:"size"`
	StartY float64 `yaml:"start_y"`
}

// Physics defines per-tick motion.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	Jump         float64 `yaml:"jump"`
	TickInterval float64 `yaml:"tick_interval"`
	Speed        float64 `yaml:"speed"`
}

// Obstacles defines spawn cadence and random geometry ranges.
type Obstacles struct {
	SpawnEvery int     `yaml:"spawn_every"`
	MinWidth   float64 `yaml:"min_width"`
	MaxWidth   float64 `yaml:"max_width"`
	MinGap     float64 `yaml:"min_gap"`
	MaxGap     float64 `yaml:"max_gap"`
}
