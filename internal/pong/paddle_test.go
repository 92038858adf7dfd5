package pong

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ledpong/internal/core"
)

func TestNewPaddleIsCentered(t *testing.T) {
	tests := []struct {
		width, track, start int
	}{
		{3, 7, 2},
		{3, 8, 2},
		{1, 3, 1},
		{5, 5, 0},
	}

	for _, tc := range tests {
		p := NewPaddle(tc.width, tc.track)
		if p.Start() != tc.start {
			t.Errorf("NewPaddle(%d, %d).Start() = %d, expected %d", tc.width, tc.track, p.Start(), tc.start)
		}
	}
}

func TestPaddleMoveLeftAtZeroDoesNotWrap(t *testing.T) {
	p := NewPaddle(3, 7)
	for i := 0; i < 10; i++ {
		p.Apply(core.MoveLeft)
	}
	if p.Start() != 0 {
		t.Errorf("Start() after many MoveLeft = %d, expected 0", p.Start())
	}

	p.Apply(core.MoveLeft)
	if p.Start() != 0 {
		t.Errorf("MoveLeft at 0 should be a no-op, got %d", p.Start())
	}
}

func TestPaddleMoveRightSaturates(t *testing.T) {
	p := NewPaddle(3, 7)
	for i := 0; i < 10; i++ {
		p.Apply(core.MoveRight)
	}
	if p.Start() != 4 {
		t.Errorf("Start() after many MoveRight = %d, expected 4", p.Start())
	}
	if p.End() != 6 {
		t.Errorf("End() = %d, expected 6", p.End())
	}
}

func TestPaddleHold(t *testing.T) {
	p := NewPaddle(3, 7)
	before := p.Start()
	p.Apply(core.Hold)
	if p.Start() != before {
		t.Errorf("Hold moved the paddle from %d to %d", before, p.Start())
	}
}

func TestPaddleCovers(t *testing.T) {
	p := Paddle{start: 2, width: 3, track: 7}

	for x := 0; x < 7; x++ {
		expected := x >= 2 && x <= 4
		if p.Covers(x) != expected {
			t.Errorf("Covers(%d) = %v, expected %v", x, p.Covers(x), expected)
		}
	}
}

func TestPaddleStaysOnTrack(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cmds := []core.Command{core.Hold, core.MoveLeft, core.MoveRight}

	for _, width := range []int{1, 3, 5} {
		p := NewPaddle(width, 5)
		for i := 0; i < 1000; i++ {
			p.Apply(cmds[rng.Intn(len(cmds))])
			if p.Start() < 0 || p.Start() > 5-width {
				t.Fatalf("width %d: Start() = %d left [0, %d]", width, p.Start(), 5-width)
			}
		}
	}
}
