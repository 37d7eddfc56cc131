package tappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tappy-block/internal/config"
)

// Source yields uniformly distributed numbers in [0, 1).
// *rand.Rand satisfies it; tests plug in scripted sources.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded *rand.Rand. A zero seed uses the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generator spawns obstacles at a fixed tick cadence with random geometry.
type Generator struct {
	src   Source
	world World
	every int
	cfg   config.Obstacles
}

// NewGenerator creates a generator for the given world and obstacle settings.
func NewGenerator(src Source, world World, cfg config.Obstacles) *Generator {
	return &Generator{
		src:   src,
		world: world,
		every: cfg.SpawnEvery,
		cfg:   cfg,
	}
}

// Step advances the spawn counter by one tick. When the counter reaches the
// cadence it resets and one new obstacle is appended at the right edge.
func (g *Generator) Step(s Session) Session {
	s.Spawn++
	if s.Spawn < g.every {
		return s
	}
	s.Spawn = 0

	next := make([]Obstacle, len(s.Obstacles), len(s.Obstacles)+1)
	copy(next, s.Obstacles)
	s.Obstacles = append(next, g.Spawn())
	return s
}

// Spawn draws one obstacle positioned just beyond the right edge of the world.
// The gap always lies inside the world: 0 <= GapY and GapY+GapHeight <= Height.
func (g *Generator) Spawn() Obstacle {
	gapHeight := g.between(g.cfg.MinGap, g.cfg.MaxGap)
	width := g.between(g.cfg.MinWidth, g.cfg.MaxWidth)
	gapY := g.src.Float64() * (g.world.Height - gapHeight)

	return Obstacle{
		X:         g.world.Width,
		Width:     width,
		GapY:      gapY,
		GapHeight: gapHeight,
	}
}

// between returns a uniform value in [lo, hi].
func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.src.Float64()*(hi-lo)
}
