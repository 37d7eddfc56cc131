package tappy

import (
	"fmt"

	"github.com/vovakirdan/tappy-block/internal/config"
)

// transition handles Activate for one phase.
type transition func(m *Machine) Session

// onActivate is the dispatch table for the single input, keyed by phase.
var onActivate = map[Phase]transition{
	PhaseNotStarted: (*Machine).start,
	PhasePlaying:    (*Machine).jump,
	PhaseGameOver:   (*Machine).restart,
}

// Machine owns the session and drives it through
// NotStarted -> Playing -> GameOver -> NotStarted.
// It is not safe for concurrent use; the host serializes input and ticks.
type Machine struct {
	cfg     config.Tappy
	world   World
	gen     *Generator
	session Session
}

// New validates cfg and returns a machine in NotStarted.
// src supplies obstacle randomness; nil means a time-seeded source.
func New(cfg config.Tappy, src Source) (*Machine, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("tappy: %w", err)
	}
	if src == nil {
		src = NewSource(0)
	}

	world := World{Width: cfg.World.Width, Height: cfg.World.Height}
	return &Machine{
		cfg:     cfg,
		world:   world,
		gen:     NewGenerator(src, world, cfg.Obstacles),
		session: NewSession(cfg, 0),
	}, nil
}

// Handle applies an input immediately and returns the resulting phase.
func (m *Machine) Handle(in Input) Phase {
	if in != Activate {
		return m.session.Phase
	}
	if t, ok := onActivate[m.session.Phase]; ok {
		m.session = t(m)
	}
	return m.session.Phase
}

func (m *Machine) start() Session {
	s := m.session
	s.Phase = PhasePlaying
	return s
}

func (m *Machine) jump() Session {
	return jump(m.session, m.cfg.Physics)
}

func (m *Machine) restart() Session {
	return NewSession(m.cfg, m.session.HighScore)
}

// Tick advances a Playing session by one fixed interval and reports whether
// the game is still running. Outside Playing it does nothing and returns false.
//
// Order within a tick: integrate, spawn, scroll, collide, prune. Collisions
// use the post-move positions of the same tick.
func (m *Machine) Tick() bool {
	if m.session.Phase != PhasePlaying {
		return false
	}
	m.session = m.step(m.session)
	return m.session.Phase == PhasePlaying
}

func (m *Machine) step(s Session) Session {
	s = integrate(s, m.cfg.Physics)
	s = m.gen.Step(s)
	s.Obstacles = scroll(s.Obstacles, s.Speed)
	hit := detect(s.Agent, s.Obstacles, m.world)
	s.Obstacles = prune(s.Obstacles)
	if hit {
		s = endGame(s)
	}
	return s
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.session.Phase
}

// Score returns the score of the current session.
func (m *Machine) Score() int {
	return m.session.Score
}

// HighScore returns the best score committed at any game over so far.
func (m *Machine) HighScore() int {
	return m.session.HighScore
}

// Session returns a copy of the current session.
func (m *Machine) Session() Session {
	s := m.session
	s.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	return s
}

// Snapshot returns a read-only view for rendering.
func (m *Machine) Snapshot() Snapshot {
	s := m.session
	return Snapshot{
		Phase:     s.Phase,
		World:     m.world,
		Agent:     s.Agent,
		Obstacles: append([]Obstacle(nil), s.Obstacles...),
		Elapsed:   s.Elapsed,
		Score:     s.Score,
		HighScore: s.HighScore,
	}
}
