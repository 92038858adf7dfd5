// Package bots contains computer paddle strategies. Each bot decides a
// paddle command, which is then turned into a synthetic sensor reading so
// bot input goes through the same classifier as a real tilt sensor.
package bots

import (
	"math/rand"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/pong"
	"github.com/vovakirdan/ledpong/internal/registry"
)

// Bot IDs
const (
	TrackerID = "tracker"
	IdleID    = "idle"
	RandomID  = "random"
)

func init() {
	registry.Register(TrackerID, func(opts registry.Options) registry.Bot { return NewTracker(opts) })
	registry.Register(IdleID, func(registry.Options) registry.Bot { return Idle{} })
	registry.Register(RandomID, func(opts registry.Options) registry.Bot { return NewRandom(opts.Seed) })
}

// Tracker moves toward where the ball will cross its front row. With skill
// below 1 it sometimes hesitates for a tick.
type Tracker struct {
	skill registry.SkillFunc
	rng   *rand.Rand
}

// NewTracker creates a tracker bot.
func NewTracker(opts registry.Options) *Tracker {
	skill := opts.Skill
	if skill == nil {
		skill = registry.FixedSkill(1)
	}
	return &Tracker{skill: skill, rng: rand.New(rand.NewSource(opts.Seed))}
}

func (t *Tracker) ID() string    { return TrackerID }
func (t *Tracker) Title() string { return "Ball tracker" }

// Decide implements registry.Bot.
func (t *Tracker) Decide(s pong.Snapshot, p core.Player) core.Command {
	opponent, start := s.Score2, s.Paddle1
	if p == core.Player2 {
		opponent, start = s.Score1, s.Paddle2
	}

	if t.rng.Float64() >= t.skill(opponent, s.Tick) {
		return core.Hold
	}

	target := s.Width / 2
	if steps, ok := approach(s, p); ok {
		target = reflect(s.BallX+s.BallDX*steps, s.Width)
	}
	return steer(target, start, s.PaddleWidth)
}

// approach returns how many ticks the ball needs to reach p's front row,
// or false when it is moving away.
func approach(s pong.Snapshot, p core.Player) (int, bool) {
	if p == core.Player1 {
		if s.BallDY >= 0 {
			return 0, false
		}
		return core.Clamp(s.BallY-1, 0, s.Height), true
	}
	if s.BallDY <= 0 {
		return 0, false
	}
	return core.Clamp(s.Height-2-s.BallY, 0, s.Height), true
}

// reflect folds an unbounded x back into [0, width) the way side walls do.
func reflect(x, width int) int {
	period := 2 * (width - 1)
	if period <= 0 {
		return 0
	}
	x %= period
	if x < 0 {
		x += period
	}
	if x >= width {
		x = period - x
	}
	return x
}

// steer returns the command that moves a paddle at start toward target.
func steer(target, start, width int) core.Command {
	switch {
	case target < start:
		return core.MoveLeft
	case target > start+width-1:
		return core.MoveRight
	default:
		return core.Hold
	}
}

// Idle never moves.
type Idle struct{}

func (Idle) ID() string                                     { return IdleID }
func (Idle) Title() string                                  { return "Idle" }
func (Idle) Decide(pong.Snapshot, core.Player) core.Command { return core.Hold }

// Random picks a command uniformly every tick.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random bot with a fixed seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ID() string    { return RandomID }
func (r *Random) Title() string { return "Random walker" }

// Decide implements registry.Bot.
func (r *Random) Decide(pong.Snapshot, core.Player) core.Command {
	return core.Command(r.rng.Intn(3))
}
