package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/matrix"
	"github.com/vovakirdan/ledpong/internal/pong"
	"github.com/vovakirdan/ledpong/internal/render"
	"github.com/vovakirdan/ledpong/internal/tilt"
)

// testOptions describes a 5x6 track where two idle players finish a match
// to 2 in nine ticks: P1 scores on tick 2, P2 on tick 6 (wall corner),
// P1 wins on tick 9.
func testOptions() Options {
	th := tilt.Thresholds{Left: -1, Right: 1}
	return Options{
		Rules: pong.Rules{
			Width:        5,
			Height:       6,
			PaddleWidth:  1,
			WinThreshold: 2,
			Tempo: pong.Tempo{
				Normal:    100 * time.Millisecond,
				Fast:      50 * time.Millisecond,
				GoalPause: 500 * time.Millisecond,
			},
		},
		Layout:           matrix.Serpentine,
		StripLen:         4,
		Palette:          render.DefaultPalette(),
		Inputs:           [2]tilt.Classifier{{Thresholds: th}, {Thresholds: th}},
		Celebration:      200 * time.Millisecond,
		CelebrationFade:  100 * time.Millisecond,
		CelebrationFrame: 40 * time.Millisecond,
	}
}

type restInput struct{}

func (restInput) Read(ctx context.Context) (tilt.Readings, error) {
	return tilt.Readings{}, ctx.Err()
}

type memRecorder struct {
	results []MatchResult
	err     error
}

func (m *memRecorder) SaveMatch(_ context.Context, r MatchResult) error {
	m.results = append(m.results, r)
	return m.err
}

type countingDriver struct {
	frames int
	err    error
}

func (d *countingDriver) Show(context.Context, render.Frame) error {
	d.frames++
	return d.err
}

func TestNewSessionRejectsBadOptions(t *testing.T) {
	opts := testOptions()
	opts.Rules.Width = 2
	if _, err := NewSession(opts); err == nil {
		t.Error("NewSession with 2-wide track succeeded")
	}

	opts = testOptions()
	opts.StripLen = 0
	if _, err := NewSession(opts); err == nil {
		t.Error("NewSession with empty strip succeeded")
	}

	opts = testOptions()
	opts.Inputs[1].Thresholds = tilt.Thresholds{Left: 0, Right: 1}
	if _, err := NewSession(opts); err == nil {
		t.Error("NewSession with threshold at rest succeeded")
	}
}

func TestSessionMatchAndCelebration(t *testing.T) {
	s, err := NewSession(testOptions())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var win Step
	for i := 1; i <= 9; i++ {
		step := s.Step(tilt.Reading{}, tilt.Reading{})
		if step.Celebrating {
			t.Fatalf("step %d: celebrating before the win", i)
		}
		if step.Events.Tick != uint64(i) {
			t.Fatalf("step %d: tick = %d", i, step.Events.Tick)
		}
		if i < 9 && step.Result != nil {
			t.Fatalf("step %d: unexpected result", i)
		}
		win = step
	}

	if !win.Events.Win || win.Events.Winner != core.Player1 {
		t.Fatalf("tick 9 events = %+v, expected P1 win", win.Events)
	}
	r := win.Result
	if r == nil {
		t.Fatal("no result on the winning step")
	}
	if r.Winner != core.Player1 || r.Score1 != 2 || r.Score2 != 1 {
		t.Errorf("result = %+v, expected P1 2-1", r)
	}
	if r.Ticks != 9 || r.Goals != 3 || r.WallBounces != 1 || r.Blocks != 0 {
		t.Errorf("result counters = %+v", r)
	}
	if expected := 1850 * time.Millisecond; r.Duration != expected {
		t.Errorf("Duration = %v, expected %v", r.Duration, expected)
	}
	if win.Delay != 500*time.Millisecond {
		t.Errorf("winning step delay = %v, expected goal pause", win.Delay)
	}

	for i := 0; i < 5; i++ {
		step := s.Step(tilt.Reading{Value: 5}, tilt.Reading{Value: -5})
		if !step.Celebrating {
			t.Fatalf("celebration step %d not celebrating", i)
		}
		if step.Delay != 40*time.Millisecond {
			t.Errorf("celebration delay = %v", step.Delay)
		}
	}
	if s.Celebrating() {
		t.Fatal("celebration did not finish after 200ms")
	}
	if got := s.Game().Paddle(core.Player1).Start(); got != 2 {
		t.Errorf("paddle moved during celebration: start = %d", got)
	}

	after := s.Step(tilt.Reading{}, tilt.Reading{})
	if !after.Events.Serve || !after.Events.ScoresReset {
		t.Errorf("step after celebration events = %+v, expected serve with reset", after.Events)
	}
	if after.Snapshot.Score1 != 0 || after.Snapshot.Score2 != 0 {
		t.Errorf("scores after reset = %d-%d", after.Snapshot.Score1, after.Snapshot.Score2)
	}
}

func TestSessionClassifiesReadings(t *testing.T) {
	s, err := NewSession(testOptions())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	step := s.Step(tilt.Reading{Value: -2}, tilt.Reading{Value: 2})
	if step.Events.Commands != (core.Commands{core.MoveLeft, core.MoveRight}) {
		t.Errorf("commands = %v, expected [MoveLeft MoveRight]", step.Events.Commands)
	}
	if step.Snapshot.Paddle1 != 1 || step.Snapshot.Paddle2 != 3 {
		t.Errorf("paddles = %d,%d, expected 1,3", step.Snapshot.Paddle1, step.Snapshot.Paddle2)
	}
}

func TestRunnerStopsAfterMatch(t *testing.T) {
	s, err := NewSession(testOptions())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	rec := &memRecorder{err: errors.New("disk full")}
	drv := &countingDriver{}
	var observed int

	r := &Runner{
		Session:    s,
		Input:      restInput{},
		Driver:     drv,
		Recorder:   rec,
		MaxMatches: 1,
		OnStep:     func(Step) { observed++ },
	}
	sum, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Nine ticks plus five celebration frames.
	if sum.Steps != 14 || sum.Ticks != 9 {
		t.Errorf("summary steps/ticks = %d/%d, expected 14/9", sum.Steps, sum.Ticks)
	}
	if sum.Matches != 1 || len(sum.Results) != 1 {
		t.Fatalf("summary matches = %d", sum.Matches)
	}
	if len(rec.results) != 1 || rec.results[0].MatchID != sum.Results[0].MatchID {
		t.Error("recorder did not receive the match result")
	}
	if drv.frames != 14 || observed != 14 {
		t.Errorf("frames shown = %d, observed = %d, expected 14", drv.frames, observed)
	}
}

func TestRunnerMaxTicks(t *testing.T) {
	s, _ := NewSession(testOptions())
	r := &Runner{Session: s, Input: restInput{}, MaxTicks: 4}
	sum, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Ticks != 4 {
		t.Errorf("Ticks = %d, expected 4", sum.Ticks)
	}
}

func TestRunnerDriverError(t *testing.T) {
	s, _ := NewSession(testOptions())
	r := &Runner{Session: s, Input: restInput{}, Driver: &countingDriver{err: errors.New("bus")}}
	if _, err := r.Run(context.Background()); err == nil {
		t.Error("Run with failing driver returned nil error")
	}
}

func TestRunnerCancelled(t *testing.T) {
	s, _ := NewSession(testOptions())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	r := &Runner{Session: s, Input: restInput{}, Realtime: true}
	sum, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// First delay is 100ms, so the timeout hits while sleeping.
	if sum.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", sum.Ticks)
	}
}

func TestRunnerRequiresInput(t *testing.T) {
	if _, err := (&Runner{}).Run(context.Background()); err == nil {
		t.Error("Run without session succeeded")
	}
}
