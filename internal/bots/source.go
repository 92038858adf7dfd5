package bots

import (
	"context"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/pong"
	"github.com/vovakirdan/ledpong/internal/registry"
	"github.com/vovakirdan/ledpong/internal/tilt"
)

// overshoot is how far past a threshold a synthetic reading lands,
// as a fraction of the threshold's distance from rest.
const overshoot = 0.25

// Reading converts a command into a sensor reading that the classifier
// for th maps back to the same command.
func Reading(cmd core.Command, th tilt.Thresholds, mode tilt.Mode) tilt.Reading {
	if mode == tilt.ModeButtons {
		return tilt.Reading{
			Value: th.Rest,
			Left:  cmd == core.MoveLeft,
			Right: cmd == core.MoveRight,
		}
	}
	switch cmd {
	case core.MoveLeft:
		return tilt.Reading{Value: th.Left + (th.Left-th.Rest)*overshoot}
	case core.MoveRight:
		return tilt.Reading{Value: th.Right + (th.Right-th.Rest)*overshoot}
	default:
		return tilt.Reading{Value: th.Rest}
	}
}

// Snapshotter exposes the game state bots look at.
type Snapshotter interface {
	Snapshot() pong.Snapshot
}

// Source is an input source driven by bots. A nil bot holds its paddle.
type Source struct {
	game   Snapshotter
	bots   [2]registry.Bot
	inputs [2]tilt.Classifier
}

// NewSource creates a bot-driven input source. inputs carries the
// thresholds and mode of each player's classifier.
func NewSource(game Snapshotter, bots [2]registry.Bot, inputs [2]tilt.Classifier) *Source {
	return &Source{game: game, bots: bots, inputs: inputs}
}

// Bot returns the bot playing p, or nil.
func (s *Source) Bot(p core.Player) registry.Bot {
	return s.bots[p.Index()]
}

// ReadPlayer returns the synthetic reading for one player.
func (s *Source) ReadPlayer(p core.Player, snap pong.Snapshot) tilt.Reading {
	in := s.inputs[p.Index()]
	cmd := core.Hold
	if b := s.bots[p.Index()]; b != nil {
		cmd = b.Decide(snap, p)
	}
	return Reading(cmd, in.Thresholds, in.Mode)
}

// Read implements engine.InputSource.
func (s *Source) Read(ctx context.Context) (tilt.Readings, error) {
	if err := ctx.Err(); err != nil {
		return tilt.Readings{}, err
	}
	snap := s.game.Snapshot()
	var r tilt.Readings
	for _, p := range core.Players {
		r[p.Index()] = s.ReadPlayer(p, snap)
	}
	return r, nil
}
