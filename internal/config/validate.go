package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid config [%s]: %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable session.
// All violations are reported together; each one is a ValidationError.
func Validate(cfg Tappy) error {
	var errs []error
	check := func(ok bool, field, format string, args ...any) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
		}
	}

	check(cfg.World.Width > 0, "world.width", "must be positive, got %g", cfg.World.Width)
	check(cfg.World.Height > 0, "world.height", "must be positive, got %g", cfg.World.Height)

	check(cfg.Agent.Size > 0, "agent.size", "must be positive, got %g", cfg.Agent.Size)
	check(cfg.Agent.X >= 0 && cfg.Agent.X+cfg.Agent.Size <= cfg.World.Width,
		"agent.x", "agent must fit horizontally inside the world, got x=%g", cfg.Agent.X)
	check(cfg.Agent.StartY > 0 && cfg.Agent.StartY < cfg.World.Height-cfg.Agent.Size,
		"agent.start_y", "must lie strictly between ceiling and floor, got %g", cfg.Agent.StartY)

	check(cfg.Physics.TickInterval > 0, "physics.tick_interval", "must be positive, got %g", cfg.Physics.TickInterval)
	check(cfg.Physics.Gravity >= 0, "physics.gravity", "must not be negative, got %g", cfg.Physics.Gravity)
	check(cfg.Physics.Jump >= 0, "physics.jump", "must not be negative, got %g", cfg.Physics.Jump)
	check(cfg.Physics.Speed > 0, "physics.speed", "must be positive, got %g", cfg.Physics.Speed)

	o := cfg.Obstacles
	check(o.SpawnEvery > 0, "obstacles.spawn_every", "must be positive, got %d", o.SpawnEvery)
	check(o.MinWidth > 0, "obstacles.min_width", "must be positive, got %g", o.MinWidth)
	check(o.MinWidth <= o.MaxWidth, "obstacles.max_width",
		"min_width %g exceeds max_width %g", o.MinWidth, o.MaxWidth)
	check(o.MinGap > 0, "obstacles.min_gap", "must be positive, got %g", o.MinGap)
	check(o.MinGap <= o.MaxGap, "obstacles.max_gap",
		"min_gap %g exceeds max_gap %g", o.MinGap, o.MaxGap)
	check(o.MaxGap <= cfg.World.Height, "obstacles.max_gap",
		"gap %g does not fit in world height %g", o.MaxGap, cfg.World.Height)

	return errors.Join(errs...)
}
