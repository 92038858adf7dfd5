package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/render"
	"github.com/vovakirdan/ledpong/internal/tilt"
)

// MatchResult contains the outcome of a completed match.
type MatchResult struct {
	MatchID     uuid.UUID
	Winner      core.Player
	Score1      int
	Score2      int
	Ticks       uint64
	Goals       int
	WallBounces int
	Blocks      int
	Duration    time.Duration // Sum of tick delays, i.e. play time at real speed
	FinishedAt  time.Time
}

// InputSource supplies one reading per paddle for every tick.
type InputSource interface {
	Read(ctx context.Context) (tilt.Readings, error)
}

// PixelDriver pushes a frame to the LEDs.
type PixelDriver interface {
	Show(ctx context.Context, f render.Frame) error
}

// MatchRecorder persists finished matches.
type MatchRecorder interface {
	SaveMatch(ctx context.Context, r MatchResult) error
}

// DiscardDriver is a PixelDriver that drops every frame.
type DiscardDriver struct{}

// Show implements PixelDriver.
func (DiscardDriver) Show(context.Context, render.Frame) error { return nil }
