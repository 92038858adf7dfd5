// Package engine drives a pong game: it classifies paddle readings, ticks
// the game, renders LED frames and plays the win celebration.
//
// Sensors and LED hardware stay behind the InputSource and PixelDriver
// interfaces so the same loop runs against bots, a terminal preview or a
// real panel.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/matrix"
	"github.com/vovakirdan/ledpong/internal/pong"
	"github.com/vovakirdan/ledpong/internal/render"
	"github.com/vovakirdan/ledpong/internal/tilt"
)

// Default celebration frame interval.
const DefaultCelebrationFrame = 40 * time.Millisecond

// Options configures a Session.
type Options struct {
	Rules    pong.Rules
	Layout   matrix.Layout
	StripLen int
	Palette  render.Palette

	// Classifier settings per player
	Inputs [2]tilt.Classifier

	Celebration      time.Duration
	CelebrationFade  time.Duration
	CelebrationFrame time.Duration
}

// DefaultOptions returns options for the default panel with tilt input.
func DefaultOptions() Options {
	th := tilt.Thresholds{Left: -0.3, Right: 0.3}
	return Options{
		Rules:            pong.DefaultRules(),
		Layout:           matrix.Serpentine,
		StripLen:         pong.DefaultWinThreshold * 2,
		Palette:          render.DefaultPalette(),
		Inputs:           [2]tilt.Classifier{{Thresholds: th}, {Thresholds: th}},
		Celebration:      render.DefaultCelebration,
		CelebrationFade:  render.DefaultFadeIn,
		CelebrationFrame: DefaultCelebrationFrame,
	}
}

// Step is the outcome of one Session.Step call.
type Step struct {
	Frame    render.Frame
	Delay    time.Duration // Wait before the next Step
	Events   pong.FrameEvents
	Snapshot pong.Snapshot

	// Celebrating is set for celebration frames; Events is empty then.
	Celebrating bool
	// Result is set on the step a match is won.
	Result *MatchResult
}

// stats accumulates per-match counters.
type stats struct {
	ticks       uint64
	goals       int
	wallBounces int
	blocks      int
	elapsed     time.Duration
}

// Session owns one game with its classifiers and renderer.
type Session struct {
	opts        Options
	game        *pong.GameState
	renderer    *render.Renderer
	classifiers [2]*tilt.Classifier

	celebration *render.Celebration
	celebrated  time.Duration

	stats stats
}

// NewSession validates options and creates a ready session.
func NewSession(opts Options) (*Session, error) {
	game, err := pong.New(opts.Rules)
	if err != nil {
		return nil, err
	}
	mapper, err := matrix.NewMapper(opts.Rules.Width, opts.Rules.Height, opts.Layout)
	if err != nil {
		return nil, err
	}
	if opts.StripLen < 1 {
		return nil, fmt.Errorf("engine: strip length must be positive, got %d", opts.StripLen)
	}
	if opts.CelebrationFrame <= 0 {
		opts.CelebrationFrame = DefaultCelebrationFrame
	}

	s := &Session{
		opts:     opts,
		game:     game,
		renderer: render.NewRenderer(mapper, opts.StripLen, opts.Palette),
	}
	for _, p := range core.Players {
		in := opts.Inputs[p.Index()]
		if in.Mode == tilt.ModeTilt {
			if err := in.Thresholds.Validate(); err != nil {
				return nil, fmt.Errorf("engine: %s input: %w", p, err)
			}
		}
		s.classifiers[p.Index()] = &in
	}
	return s, nil
}

// Game returns the underlying game state.
func (s *Session) Game() *pong.GameState {
	return s.game
}

// Renderer returns the renderer used for frames.
func (s *Session) Renderer() *render.Renderer {
	return s.renderer
}

// Inputs returns the classifier settings of both players.
func (s *Session) Inputs() [2]tilt.Classifier {
	return s.opts.Inputs
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() pong.Snapshot {
	return s.game.Snapshot()
}

// Celebrating reports whether the win animation is playing.
func (s *Session) Celebrating() bool {
	return s.celebration != nil
}

// Frame renders the current game state without advancing it.
func (s *Session) Frame() render.Frame {
	return s.renderer.Render(s.game)
}

// Step advances the session by one frame. While a celebration plays the
// readings are ignored and the game is not ticked.
func (s *Session) Step(r1, r2 tilt.Reading) Step {
	if s.celebration != nil {
		return s.celebrate()
	}

	c1 := s.classifiers[core.Player1.Index()].Classify(r1)
	c2 := s.classifiers[core.Player2.Index()].Classify(r2)
	ev := s.game.Tick(c1, c2)
	s.count(ev)

	step := Step{
		Frame:    s.renderer.Render(s.game),
		Delay:    ev.Delay,
		Events:   ev,
		Snapshot: s.game.Snapshot(),
	}

	if ev.Celebrate() {
		step.Result = s.result(ev)
		s.stats = stats{}
		s.celebration = &render.Celebration{
			Duration: s.opts.Celebration,
			FadeIn:   s.opts.CelebrationFade,
			Winner:   ev.Winner,
		}
		s.celebrated = 0
	}
	return step
}

// celebrate returns the next celebration frame.
func (s *Session) celebrate() Step {
	step := Step{
		Frame:       s.renderer.Celebrate(*s.celebration, s.celebrated),
		Delay:       s.opts.CelebrationFrame,
		Snapshot:    s.game.Snapshot(),
		Celebrating: true,
	}
	s.celebrated += s.opts.CelebrationFrame
	if s.celebration.Done(s.celebrated) {
		s.celebration = nil
		for _, c := range s.classifiers {
			c.Reset()
		}
	}
	return step
}

func (s *Session) count(ev pong.FrameEvents) {
	s.stats.ticks++
	s.stats.elapsed += ev.Delay
	switch {
	case ev.WallBounce():
		s.stats.wallBounces++
	case ev.PaddleBlock():
		s.stats.blocks++
	}
	if ev.Goal {
		s.stats.goals++
	}
}

func (s *Session) result(ev pong.FrameEvents) *MatchResult {
	scores := s.game.Scores()
	return &MatchResult{
		MatchID:     uuid.New(),
		Winner:      ev.Winner,
		Score1:      scores[0],
		Score2:      scores[1],
		Ticks:       s.stats.ticks,
		Goals:       s.stats.goals,
		WallBounces: s.stats.wallBounces,
		Blocks:      s.stats.blocks,
		Duration:    s.stats.elapsed,
		FinishedAt:  time.Now(),
	}
}
