package tappy

import "github.com/vovakirdan/tappy-block/internal/config"

// integrate advances time, score and the agent by one tick.
// Gravity is a constant per-tick displacement; there is no vertical velocity.
func integrate(s Session, p config.Physics) Session {
	s.Ticks++
	// A product instead of a running sum keeps score boundaries exact.
	s.Elapsed = float64(s.Ticks) * p.TickInterval
	s.Score = scoreFor(s.Elapsed)
	s.Agent.Y += p.Gravity
	return s
}

// jump displaces the agent upward immediately.
func jump(s Session, p config.Physics) Session {
	s.Agent.Y -= p.Jump
	return s
}

// scroll returns the obstacles moved left by speed.
func scroll(obstacles []Obstacle, speed float64) []Obstacle {
	if len(obstacles) == 0 {
		return nil
	}
	moved := make([]Obstacle, len(obstacles))
	for i, o := range obstacles {
		o.X -= speed
		moved[i] = o
	}
	return moved
}

// prune drops obstacles that have left the world, keeping spawn order.
func prune(obstacles []Obstacle) []Obstacle {
	kept := obstacles[:0:0]
	for _, o := range obstacles {
		if !o.Gone() {
			kept = append(kept, o)
		}
	}
	return kept
}
