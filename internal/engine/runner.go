package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Summary describes a finished Run.
type Summary struct {
	Steps   uint64
	Ticks   uint64
	Matches int
	Results []MatchResult
}

// Runner is the headless driving loop: read inputs, step the session,
// show the frame, wait.
type Runner struct {
	Session  *Session
	Input    InputSource
	Driver   PixelDriver
	Recorder MatchRecorder // Optional
	Logger   *log.Logger   // Optional

	// Realtime sleeps for each step's delay. Simulations leave it off.
	Realtime bool
	// MaxTicks stops the loop after this many game ticks (0 = unlimited).
	MaxTicks uint64
	// MaxMatches stops the loop after this many wins (0 = unlimited).
	MaxMatches int
	// OnStep is called after every step, e.g. to feed spectators.
	OnStep func(Step)
}

// Run drives the session until ctx is done or a limit is reached.
// Context cancellation is a normal stop and is not reported as an error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	if r.Session == nil || r.Input == nil {
		return sum, errors.New("engine: runner needs a session and an input source")
	}
	driver := r.Driver
	if driver == nil {
		driver = DiscardDriver{}
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return sum, nil
		}

		readings, err := r.Input.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return sum, nil
			}
			return sum, fmt.Errorf("engine: read input: %w", err)
		}

		step := r.Session.Step(readings[0], readings[1])
		sum.Steps++
		if !step.Celebrating {
			sum.Ticks++
		}
		r.logStep(step)

		if err := driver.Show(ctx, step.Frame); err != nil {
			return sum, fmt.Errorf("engine: show frame: %w", err)
		}
		if r.OnStep != nil {
			r.OnStep(step)
		}

		if step.Result != nil {
			sum.Matches++
			sum.Results = append(sum.Results, *step.Result)
			if r.Recorder != nil {
				if err := r.Recorder.SaveMatch(ctx, *step.Result); err != nil {
					r.warn("failed to record match", "match", step.Result.MatchID, "err", err)
				}
			}
		}

		if r.MaxMatches > 0 && sum.Matches >= r.MaxMatches && !r.Session.Celebrating() {
			return sum, nil
		}
		if r.MaxTicks > 0 && sum.Ticks >= r.MaxTicks {
			return sum, nil
		}

		if r.Realtime && step.Delay > 0 {
			if timer == nil {
				timer = time.NewTimer(step.Delay)
			} else {
				timer.Reset(step.Delay)
			}
			select {
			case <-ctx.Done():
				return sum, nil
			case <-timer.C:
			}
		}
	}
}

func (r *Runner) logStep(step Step) {
	if r.Logger == nil || step.Celebrating {
		return
	}
	ev := step.Events
	if ev.Goal {
		r.Logger.Info("goal", "scorer", ev.Scorer, "score1", step.Snapshot.Score1, "score2", step.Snapshot.Score2, "tick", ev.Tick)
	}
	if ev.MatchPoint {
		r.Logger.Debug("match point, speeding up", "player", ev.Scorer, "delay", ev.Delay)
	}
	if ev.Win {
		r.Logger.Info("match won", "winner", ev.Winner, "match", step.Result.MatchID, "ticks", step.Result.Ticks)
	}
	if ev.ScoresReset {
		r.Logger.Debug("scores reset", "tick", ev.Tick)
	}
}

func (r *Runner) warn(msg string, kv ...any) {
	if r.Logger != nil {
		r.Logger.Warn(msg, kv...)
	}
}
