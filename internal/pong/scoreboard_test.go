package pong

import (
	"testing"

	"github.com/vovakirdan/ledpong/internal/core"
)

func TestScoreBoardSaturates(t *testing.T) {
	s := NewScoreBoard(3)
	for i := 0; i < 10; i++ {
		s.Increment(core.Player1)
	}
	if s.Score(core.Player1) != 3 {
		t.Errorf("Score = %d, expected saturation at 3", s.Score(core.Player1))
	}
	if s.Score(core.Player2) != 0 {
		t.Errorf("Player2 score changed: %d", s.Score(core.Player2))
	}
}

func TestScoreBoardCheckWin(t *testing.T) {
	s := NewScoreBoard(2)

	if _, ok := s.CheckWin(); ok {
		t.Error("empty board should have no winner")
	}

	s.Increment(core.Player2)
	if !s.MatchPoint(core.Player2) {
		t.Error("Player2 should be at match point with 1 of 2")
	}
	if s.MatchPoint(core.Player1) {
		t.Error("Player1 should not be at match point")
	}

	s.Increment(core.Player2)
	winner, ok := s.CheckWin()
	if !ok || winner != core.Player2 {
		t.Errorf("CheckWin() = (%v, %v), expected (P2, true)", winner, ok)
	}

	s.Reset()
	if s.Scores() != [2]int{0, 0} {
		t.Errorf("Scores after Reset = %v", s.Scores())
	}
}
