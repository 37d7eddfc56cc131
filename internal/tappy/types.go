// Package tappy implements Tappy Block: a falling block that must pass through
// the gaps of a stream of scrolling obstacles.
//
// The package is pure simulation. It draws into core.Screen and never touches
// the terminal; the platform layer owns timing, input devices and output.
package tappy

import "github.com/vovakirdan/tappy-block/internal/core"

// World is the fixed logical playfield. Y grows downward.
type World struct {
	Width  float64
	Height float64
}

// Agent is the player-controlled block. Its horizontal position never changes.
type Agent struct {
	X    float64 // Left edge
	Y    float64 // Top edge
	Size float64 // Side of the square hitbox
}

// HSpan returns the horizontal extent of the agent.
func (a Agent) HSpan() core.Span {
	return core.NewSpan(a.X, a.Size)
}

// VSpan returns the vertical extent of the agent.
func (a Agent) VSpan() core.Span {
	return core.NewSpan(a.Y, a.Size)
}

// Obstacle is a pair of bars with a passable gap between them.
type Obstacle struct {
	X         float64 // Left edge
	Width     float64
	GapY      float64 // Top of the gap
	GapHeight float64
}

// HSpan returns the horizontal extent of the obstacle.
func (o Obstacle) HSpan() core.Span {
	return core.NewSpan(o.X, o.Width)
}

// Gap returns the vertical extent of the passable gap.
func (o Obstacle) Gap() core.Span {
	return core.NewSpan(o.GapY, o.GapHeight)
}

// Gone reports whether the obstacle has fully left the world on the left.
func (o Obstacle) Gone() bool {
	return o.X+o.Width <= 0
}

// Phase is the state machine tag.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Input is a discrete player event.
// Click, tap and the activate key all collapse into Activate; its meaning
// depends on the current phase (start, jump or restart).
type Input int

const (
	Activate Input = iota + 1
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	if in == Activate {
		return "Activate"
	}
	return "Unknown"
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Phase     Phase
	World     World
	Agent     Agent
	Obstacles []Obstacle // Spawn order, left to right
	Elapsed   float64
	Score     int
	HighScore int
}
