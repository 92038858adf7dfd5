package config

import (
	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/engine"
	"github.com/vovakirdan/ledpong/internal/pong"
	"github.com/vovakirdan/ledpong/internal/registry"
	"github.com/vovakirdan/ledpong/internal/render"
	"github.com/vovakirdan/ledpong/internal/tilt"
)

// Thresholds returns the classifier thresholds for this input.
func (in PlayerInput) Thresholds() tilt.Thresholds {
	return tilt.Thresholds{Left: in.Left, Right: in.Right, Rest: in.Rest}
}

// Classifier returns a classifier template for this input.
func (in PlayerInput) Classifier() tilt.Classifier {
	mode := tilt.ModeTilt
	if in.Mode == InputButtons {
		mode = tilt.ModeButtons
	}
	return tilt.Classifier{
		Thresholds: in.Thresholds(),
		Mode:       mode,
		Latch:      in.Latch,
		DeadBand:   in.DeadBand,
	}
}

// PongRules returns the game rules.
func (c Config) PongRules() pong.Rules {
	return pong.Rules{
		Width:        c.Track.Width,
		Height:       c.Track.Height,
		PaddleWidth:  c.Paddle.Width,
		WinThreshold: c.Rules.WinThreshold,
		Tempo: pong.Tempo{
			Normal:    c.Timing.Normal,
			Fast:      c.Timing.Fast,
			GoalPause: c.Timing.GoalPause,
		},
	}
}

// Palette returns the LED palette.
func (c Config) Palette() render.Palette {
	return render.Palette{
		Background: c.Display.Background,
		Ball:       c.Display.Ball,
		Paddles:    [2]core.RGB{c.Display.Paddle1, c.Display.Paddle2},
		Strips:     [2]core.RGB{c.Display.Strip1, c.Display.Strip2},
		Brightness: uint8(core.Clamp(c.Display.Brightness, 0, 255)),
	}
}

// SessionOptions returns everything engine.NewSession needs.
func (c Config) SessionOptions() engine.Options {
	return engine.Options{
		Rules:            c.PongRules(),
		Layout:           c.Track.Layout,
		StripLen:         c.Strip.Length,
		Palette:          c.Palette(),
		Inputs:           [2]tilt.Classifier{c.Input.Player1.Classifier(), c.Input.Player2.Classifier()},
		Celebration:      c.Timing.Celebration,
		CelebrationFade:  c.Timing.CelebrationFade,
		CelebrationFrame: c.Timing.CelebrationFrame,
	}
}

// BotID returns the configured bot for p, or empty for a human.
func (c Config) BotID(p core.Player) string {
	if p == core.Player1 {
		return c.Bots.Player1
	}
	return c.Bots.Player2
}

// NewBots instantiates the configured bots. Human players get nil.
// Each bot gets its own seed derived from Bots.Seed.
func (c Config) NewBots() ([2]registry.Bot, error) {
	var out [2]registry.Bot
	dm := NewDifficultyManager(c.Bots)
	for _, p := range core.Players {
		id := c.BotID(p)
		if id == "" {
			continue
		}
		b, err := registry.Create(id, registry.Options{
			Skill: dm.Skill,
			Seed:  c.Bots.Seed + int64(p.Index()),
		})
		if err != nil {
			return out, err
		}
		out[p.Index()] = b
	}
	return out, nil
}
