// Package tilt turns balance-board sensor readings into paddle commands.
package tilt

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ledpong/internal/core"
)

// Thresholds is the calibrated trigger pair of one physical sensor.
// A threshold counts as crossed when the reading moves past it on the side
// away from Rest, so the pair may be asymmetric and of either sign.
type Thresholds struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
	Rest  float64 `yaml:"rest"`
}

// ThresholdError reports an unusable threshold pair.
type ThresholdError struct {
	Thresholds Thresholds
	Reason     string
}

func (e ThresholdError) Error() string {
	return fmt.Sprintf("tilt: thresholds left=%g right=%g rest=%g: %s",
		e.Thresholds.Left, e.Thresholds.Right, e.Thresholds.Rest, e.Reason)
}

// Validate rejects pairs that can never fire or that trigger both
// directions on the same side of rest.
func (t Thresholds) Validate() error {
	switch {
	case t.Left == t.Rest || t.Right == t.Rest:
		return ThresholdError{t, "threshold equals rest value"}
	case t.Left == t.Right:
		return ThresholdError{t, "left and right thresholds are equal"}
	case (t.Left > t.Rest) == (t.Right > t.Rest):
		return ThresholdError{t, "both thresholds lie on the same side of rest"}
	}
	return nil
}

// crossed reports whether raw lies beyond threshold as seen from rest.
func crossed(raw, threshold, rest float64) bool {
	switch {
	case threshold > rest:
		return raw > threshold
	case threshold < rest:
		return raw < threshold
	default:
		return false
	}
}

// Classify maps a continuous reading to a command.
// Right is checked before left; at most one command is returned.
func Classify(raw float64, th Thresholds) core.Command {
	if crossed(raw, th.Right, th.Rest) {
		return core.MoveRight
	}
	if crossed(raw, th.Left, th.Rest) {
		return core.MoveLeft
	}
	return core.Hold
}

// ClassifyButtons maps digital button levels to a command.
// Left wins when both buttons are pressed.
func ClassifyButtons(leftPressed, rightPressed bool) core.Command {
	switch {
	case leftPressed:
		return core.MoveLeft
	case rightPressed:
		return core.MoveRight
	default:
		return core.Hold
	}
}

// Reading is one sample for one paddle.
type Reading struct {
	Value float64 // Tilt along the paddle axis
	Left  bool    // Left button level (button boards)
	Right bool    // Right button level (button boards)
}

// Readings holds one sample per player.
type Readings [2]Reading

// Mode selects which part of a Reading a classifier looks at.
type Mode int

const (
	ModeTilt Mode = iota
	ModeButtons
)

// Classifier classifies the readings of a single paddle.
//
// With Latch enabled a reading that falls back between the thresholds keeps
// repeating the previous move until it returns within DeadBand of Rest.
type Classifier struct {
	Thresholds Thresholds
	Mode       Mode
	Latch      bool
	DeadBand   float64

	last core.Command
}

// NewClassifier creates a tilt classifier for the given thresholds.
func NewClassifier(th Thresholds) (*Classifier, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{Thresholds: th, Mode: ModeTilt}, nil
}

// Classify returns the command for one reading and remembers it.
func (c *Classifier) Classify(r Reading) core.Command {
	var cmd core.Command
	if c.Mode == ModeButtons {
		cmd = ClassifyButtons(r.Left, r.Right)
	} else {
		cmd = Classify(r.Value, c.Thresholds)
		if cmd == core.Hold && c.Latch && c.latched(r.Value) {
			cmd = c.last
		}
	}
	c.last = cmd
	return cmd
}

// latched reports whether raw still holds the previous move: it must lie
// outside the dead band on the same side of rest as that move's threshold.
func (c *Classifier) latched(raw float64) bool {
	var threshold float64
	switch c.last {
	case core.MoveLeft:
		threshold = c.Thresholds.Left
	case core.MoveRight:
		threshold = c.Thresholds.Right
	default:
		return false
	}
	rest := c.Thresholds.Rest
	if (raw > rest) != (threshold > rest) {
		return false
	}
	return math.Abs(raw-rest) > c.DeadBand
}

// Last returns the previously emitted command.
func (c *Classifier) Last() core.Command {
	return c.last
}

// Reset forgets the previous command.
func (c *Classifier) Reset() {
	c.last = core.Hold
}
