package pong

import (
	"time"

	"github.com/vovakirdan/ledpong/internal/core"
)

// FrameEvents describes what happened during one tick.
// It is produced by Tick and consumed by the loop before the next one.
type FrameEvents struct {
	Tick     uint64
	Commands core.Commands // Paddle commands applied this tick

	Bounce  Bounce
	Blocker core.Player // Valid for paddle bounces

	Goal   bool
	Scorer core.Player // Valid when Goal is set

	Win    bool
	Winner core.Player // Valid when Win is set

	Serve       bool // Ball was put back in the center this tick
	ScoresReset bool // Scores were zeroed after a win
	MatchPoint  bool // Tempo switched to fast this tick

	Delay time.Duration // How long the loop should wait before the next tick
}

// WallBounce reports whether the ball bounced off a side wall.
func (e FrameEvents) WallBounce() bool {
	return e.Bounce == BounceWall
}

// PaddleBlock reports whether a paddle returned the ball, including
// corner hits.
func (e FrameEvents) PaddleBlock() bool {
	return e.Bounce == BounceStraight || e.Bounce == BounceDiagonal
}

// DiagonalBlock reports whether the ball was returned off a paddle corner.
func (e FrameEvents) DiagonalBlock() bool {
	return e.Bounce == BounceDiagonal
}

// Celebrate reports whether the renderer should play the win animation
// before the next tick.
func (e FrameEvents) Celebrate() bool {
	return e.Win
}
