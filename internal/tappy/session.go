package tappy

import (
	"math"

	"github.com/vovakirdan/tappy-block/internal/config"
)

// Session holds all mutable state of one playthrough plus the high score
// carried across restarts. It is a value; step functions return a new Session.
type Session struct {
	Phase     Phase
	Agent     Agent
	Obstacles []Obstacle
	Ticks     int     // Playing ticks since start
	Elapsed   float64 // Ticks * tick interval
	Score     int     // floor(Elapsed)
	Speed     float64 // Horizontal obstacle speed, fixed at session start
	Spawn     int     // Generator counter, ticks since the last spawn
	HighScore int
}

// NewSession returns a fresh pre-start session carrying the given high score.
func NewSession(cfg config.Tappy, highScore int) Session {
	return Session{
		Phase: PhaseNotStarted,
		Agent: Agent{
			X:    cfg.Agent.X,
			Y:    cfg.Agent.StartY,
			Size: cfg.Agent.Size,
		},
		Obstacles: nil,
		Speed:     cfg.Physics.Speed,
		HighScore: highScore,
	}
}

// scoreFor returns the score for the given elapsed time.
func scoreFor(elapsed float64) int {
	return int(math.Floor(elapsed))
}

// endGame freezes the session and commits the high score.
func endGame(s Session) Session {
	s.Phase = PhaseGameOver
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	return s
}
