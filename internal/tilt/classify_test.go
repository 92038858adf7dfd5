package tilt

import (
	"testing"

	"github.com/vovakirdan/ledpong/internal/core"
)

func TestClassify(t *testing.T) {
	// Rest at 0, right tilt is positive.
	normal := Thresholds{Left: -0.3, Right: 0.3, Rest: 0}
	// Sensor mounted the other way round with an offset rest value.
	flipped := Thresholds{Left: 612, Right: 380, Rest: 512}

	tests := []struct {
		name     string
		raw      float64
		th       Thresholds
		expected core.Command
	}{
		{"rest holds", 0, normal, core.Hold},
		{"inside band holds", 0.29, normal, core.Hold},
		{"exactly on threshold holds", 0.3, normal, core.Hold},
		{"past right", 0.31, normal, core.MoveRight},
		{"past left", -0.5, normal, core.MoveLeft},
		{"flipped rest holds", 512, flipped, core.Hold},
		{"flipped right is below rest", 300, flipped, core.MoveRight},
		{"flipped left is above rest", 700, flipped, core.MoveLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.raw, tc.th)
			if got != tc.expected {
				t.Errorf("Classify(%v) = %v, expected %v", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestClassifyRightHasPriority(t *testing.T) {
	// Same-side pair is invalid config, but Classify must still pick one.
	th := Thresholds{Left: 0.2, Right: 0.4, Rest: 0}
	if got := Classify(0.5, th); got != core.MoveRight {
		t.Errorf("Classify with both crossed = %v, expected MoveRight", got)
	}
	if got := Classify(0.3, th); got != core.MoveLeft {
		t.Errorf("Classify with only left crossed = %v, expected MoveLeft", got)
	}
}

func TestClassifyButtons(t *testing.T) {
	tests := []struct {
		left, right bool
		expected    core.Command
	}{
		{false, false, core.Hold},
		{true, false, core.MoveLeft},
		{false, true, core.MoveRight},
		{true, true, core.MoveLeft},
	}

	for _, tc := range tests {
		got := ClassifyButtons(tc.left, tc.right)
		if got != tc.expected {
			t.Errorf("ClassifyButtons(%v, %v) = %v, expected %v", tc.left, tc.right, got, tc.expected)
		}
	}
}

func TestThresholdsValidate(t *testing.T) {
	tests := []struct {
		name    string
		th      Thresholds
		wantErr bool
	}{
		{"symmetric", Thresholds{Left: -1, Right: 1}, false},
		{"asymmetric", Thresholds{Left: -0.2, Right: 0.6}, false},
		{"inverted polarity", Thresholds{Left: 5, Right: -3}, false},
		{"offset rest", Thresholds{Left: 400, Right: 600, Rest: 512}, false},
		{"left equals rest", Thresholds{Left: 0, Right: 1}, true},
		{"same side", Thresholds{Left: 0.2, Right: 0.4}, true},
		{"equal pair", Thresholds{Left: 1, Right: 1, Rest: 0}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.th.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestClassifierLatch(t *testing.T) {
	c, err := NewClassifier(Thresholds{Left: -0.5, Right: 0.5})
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}
	c.Latch = true
	c.DeadBand = 0.1

	steps := []struct {
		value    float64
		expected core.Command
	}{
		{0.0, core.Hold},
		{0.7, core.MoveRight},
		{0.3, core.MoveRight}, // still tilted, latched
		{0.05, core.Hold},     // back inside the dead band
		{0.3, core.Hold},      // nothing to latch
		{-0.8, core.MoveLeft},
		{-0.3, core.MoveLeft}, // latched on the left side
		{0.7, core.MoveRight},
		{-0.3, core.Hold}, // tilted the other way, latch released
		{-0.3, core.Hold},
	}

	for i, step := range steps {
		got := c.Classify(Reading{Value: step.value})
		if got != step.expected {
			t.Errorf("step %d: Classify(%v) = %v, expected %v", i, step.value, got, step.expected)
		}
		if c.Last() != got {
			t.Errorf("step %d: Last() = %v, expected %v", i, c.Last(), got)
		}
	}
}

func TestClassifierWithoutLatchIsStateless(t *testing.T) {
	c, _ := NewClassifier(Thresholds{Left: -0.5, Right: 0.5})
	c.Classify(Reading{Value: 0.9})
	if got := c.Classify(Reading{Value: 0.3}); got != core.Hold {
		t.Errorf("without latch expected Hold, got %v", got)
	}
}

func TestClassifierButtonsMode(t *testing.T) {
	c, _ := NewClassifier(Thresholds{Left: -0.5, Right: 0.5})
	c.Mode = ModeButtons

	if got := c.Classify(Reading{Value: 0.9, Right: true}); got != core.MoveRight {
		t.Errorf("button mode should ignore tilt, got %v", got)
	}
	if got := c.Classify(Reading{}); got != core.Hold {
		t.Errorf("no button pressed should hold, got %v", got)
	}
}

func TestNewClassifierRejectsInvalid(t *testing.T) {
	if _, err := NewClassifier(Thresholds{Left: 0.1, Right: 0.2}); err == nil {
		t.Error("expected error for same-side thresholds")
	}
}

func TestClassifierLatchReleasesOnOppositeTilt(t *testing.T) {
	c := &Classifier{Thresholds: Thresholds{Left: -10, Right: 10}, Latch: true, DeadBand: 2}

	if got := c.Classify(Reading{Value: 11}); got != core.MoveRight {
		t.Fatalf("Classify(11) = %v, expected MoveRight", got)
	}
	if got := c.Classify(Reading{Value: -5}); got != core.Hold {
		t.Errorf("Classify(-5) after MoveRight = %v, expected Hold", got)
	}
	if got := c.Classify(Reading{Value: -11}); got != core.MoveLeft {
		t.Errorf("Classify(-11) = %v, expected MoveLeft", got)
	}
	if got := c.Classify(Reading{Value: 5}); got != core.Hold {
		t.Errorf("Classify(5) after MoveLeft = %v, expected Hold", got)
	}
}
