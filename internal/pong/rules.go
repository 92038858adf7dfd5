// Package pong implements the two-player Pong simulation that drives the
// LED track. Player 1 defends row 0, Player 2 defends the far row; paddles
// slide along x and the ball moves one cell per tick on both axes.
//
// The package is deterministic and has no I/O: GameState.Tick is the only
// transition and everything else is read access for renderers and loggers.
package pong

import (
	"fmt"
	"time"
)

// Minimum track size on either axis.
const MinTrackSize = 3

// Default game settings
const (
	DefaultWidth        = 8
	DefaultHeight       = 16
	DefaultPaddleWidth  = 3
	DefaultWinThreshold = 5
)

// Tempo holds the inter-tick delays the driving loop sleeps between frames.
type Tempo struct {
	Normal    time.Duration // Regular play
	Fast      time.Duration // A player is one goal from winning
	GoalPause time.Duration // Frame that shows the ball on the scoring cell
}

// DefaultTempo returns the delays used when no configuration is given.
func DefaultTempo() Tempo {
	return Tempo{
		Normal:    200 * time.Millisecond,
		Fast:      120 * time.Millisecond,
		GoalPause: 800 * time.Millisecond,
	}
}

// Rules is the fixed configuration of a game. It never changes after New.
type Rules struct {
	Width        int // Transverse size; paddles move along this axis
	Height       int // Scoring size; goal rows are 0 and Height-1
	PaddleWidth  int
	WinThreshold int
	Tempo        Tempo
}

// DefaultRules returns rules for an 8x16 panel.
func DefaultRules() Rules {
	return Rules{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		PaddleWidth:  DefaultPaddleWidth,
		WinThreshold: DefaultWinThreshold,
		Tempo:        DefaultTempo(),
	}
}

// Validate rejects rules that break the track invariants.
func (r Rules) Validate() error {
	if r.Width < MinTrackSize || r.Height < MinTrackSize {
		return fmt.Errorf("pong: track %dx%d is smaller than %dx%d", r.Width, r.Height, MinTrackSize, MinTrackSize)
	}
	if r.PaddleWidth < 1 || r.PaddleWidth > r.Width {
		return fmt.Errorf("pong: paddle width %d does not fit track width %d", r.PaddleWidth, r.Width)
	}
	if r.WinThreshold < 1 {
		return fmt.Errorf("pong: win threshold must be positive, got %d", r.WinThreshold)
	}
	if r.Tempo.Normal < 0 || r.Tempo.Fast < 0 || r.Tempo.GoalPause < 0 {
		return fmt.Errorf("pong: negative tick delay in %+v", r.Tempo)
	}
	return nil
}
