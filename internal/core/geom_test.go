package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 7, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 3, 2, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right cell", 6, 4, true},
		{"right edge (exclusive)", 7, 4, false},
		{"bottom edge (exclusive)", 6, 5, false},
		{"negative x", -1, 2, false},
		{"negative y", 3, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		r      Rect
		cx, cy int
	}{
		{NewRect(0, 0, 7, 5), 3, 2},
		{NewRect(0, 0, 8, 8), 4, 4},
		{NewRect(2, 3, 3, 3), 3, 4},
	}

	for _, tc := range tests {
		cx, cy := tc.r.Center()
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("Center() of %+v = (%d, %d), expected (%d, %d)", tc.r, cx, cy, tc.cx, tc.cy)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, -1.0, 1.0, 0.5},
		{-5.5, -1.0, 1.0, -1.0},
		{15.5, -1.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestPlayerOpponent(t *testing.T) {
	if Player1.Opponent() != Player2 {
		t.Error("Player1 opponent should be Player2")
	}
	if Player2.Opponent() != Player1 {
		t.Error("Player2 opponent should be Player1")
	}
	if Player1.Number() != 1 || Player2.Number() != 2 {
		t.Error("player numbers should be 1-based")
	}
}

func TestCommandsFor(t *testing.T) {
	cmds := Commands{MoveLeft, MoveRight}
	if cmds.For(Player1) != MoveLeft {
		t.Errorf("For(Player1) = %v, expected MoveLeft", cmds.For(Player1))
	}
	if cmds.For(Player2) != MoveRight {
		t.Errorf("For(Player2) = %v, expected MoveRight", cmds.For(Player2))
	}
	var zero Commands
	if zero.For(Player1) != Hold {
		t.Error("zero Commands should hold")
	}
}
