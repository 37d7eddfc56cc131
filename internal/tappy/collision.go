package tappy

// Collides reports whether the agent hits the bars of an obstacle:
// the obstacle overlaps the agent horizontally and the agent is not
// fully inside the gap.
func Collides(a Agent, o Obstacle) bool {
	if !o.HSpan().Overlaps(a.HSpan()) {
		return false
	}
	return !a.VSpan().Within(o.Gap())
}

// OutOfBounds reports whether the agent touches or passes the floor or ceiling.
// Both comparisons are inclusive: resting exactly at Y=0 already ends the game.
func OutOfBounds(a Agent, w World) bool {
	return a.Y >= w.Height-a.Size || a.Y <= 0
}

// detect runs all collision checks for the current tick.
func detect(a Agent, obstacles []Obstacle, w World) bool {
	if OutOfBounds(a, w) {
		return true
	}
	for _, o := range obstacles {
		if Collides(a, o) {
			return true
		}
	}
	return false
}
