package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/ledpong/internal/pong"
	"github.com/vovakirdan/ledpong/internal/registry"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) ValidationError {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the configuration against the track and input invariants.
// Bot IDs are checked against the registry, so the bots package must be
// linked in for non-empty bot fields to pass.
func (c Config) Validate() error {
	if c.Track.Width < pong.MinTrackSize || c.Track.Height < pong.MinTrackSize {
		return invalid("track", "track %dx%d is smaller than %dx%d",
			c.Track.Width, c.Track.Height, pong.MinTrackSize, pong.MinTrackSize)
	}
	if c.Paddle.Width < 1 || c.Paddle.Width > c.Track.Width {
		return invalid("paddle", "paddle width %d must be within [1, %d]", c.Paddle.Width, c.Track.Width)
	}
	if c.Rules.WinThreshold < 1 {
		return invalid("rules", "win_threshold must be at least 1, got %d", c.Rules.WinThreshold)
	}
	if c.Strip.Length < 1 {
		return invalid("strip", "strip length must be at least 1, got %d", c.Strip.Length)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"normal", c.Timing.Normal},
		{"fast", c.Timing.Fast},
		{"goal_pause", c.Timing.GoalPause},
		{"celebration", c.Timing.Celebration},
		{"celebration_fade", c.Timing.CelebrationFade},
		{"celebration_frame", c.Timing.CelebrationFrame},
	}
	for _, d := range durations {
		if d.d < 0 {
			return invalid("timing", "%s must not be negative, got %s", d.name, d.d)
		}
	}
	if c.Timing.CelebrationFrame == 0 {
		return invalid("timing", "celebration_frame must be positive")
	}

	for i, in := range []PlayerInput{c.Input.Player1, c.Input.Player2} {
		if err := in.validate(); err != nil {
			return invalid("input", "player%d: %v", i+1, err)
		}
	}

	if c.Display.Brightness < 0 || c.Display.Brightness > 255 {
		return invalid("display", "brightness %d must be within [0, 255]", c.Display.Brightness)
	}

	for i, id := range []string{c.Bots.Player1, c.Bots.Player2} {
		if id != "" && !registry.Exists(id) {
			return invalid("bots", "player%d: unknown bot %q", i+1, id)
		}
	}
	if c.Bots.MinSkill < 0 || c.Bots.MaxSkill > 1 || c.Bots.MinSkill > c.Bots.MaxSkill {
		return invalid("bots", "skill range [%g, %g] must lie within [0, 1]", c.Bots.MinSkill, c.Bots.MaxSkill)
	}
	switch c.Bots.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return invalid("bots", "unknown progression type %q", c.Bots.Difficulty.Progression.Type)
	}
	return nil
}

func (in PlayerInput) validate() error {
	switch in.Mode {
	case InputButtons:
		return nil
	case InputTilt, "":
	default:
		return fmt.Errorf("unknown mode %q", in.Mode)
	}
	if in.DeadBand < 0 {
		return fmt.Errorf("dead_band must not be negative")
	}
	return in.Thresholds().Validate()
}
