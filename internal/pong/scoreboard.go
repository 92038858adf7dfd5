package pong

import "github.com/vovakirdan/ledpong/internal/core"

// ScoreBoard keeps both scores within [0, winThreshold].
type ScoreBoard struct {
	score        [2]int
	winThreshold int
}

// NewScoreBoard creates an empty scoreboard.
func NewScoreBoard(winThreshold int) ScoreBoard {
	return ScoreBoard{winThreshold: winThreshold}
}

// Increment adds a point for p, saturating at the win threshold.
// Returns the new score.
func (s *ScoreBoard) Increment(p core.Player) int {
	i := p.Index()
	if s.score[i] < s.winThreshold {
		s.score[i]++
	}
	return s.score[i]
}

// Score returns the score of p.
func (s ScoreBoard) Score(p core.Player) int {
	return s.score[p.Index()]
}

// Scores returns both scores indexed by player.
func (s ScoreBoard) Scores() [2]int {
	return s.score
}

// WinThreshold returns the score that wins a match.
func (s ScoreBoard) WinThreshold() int {
	return s.winThreshold
}

// CheckWin returns the player who reached the win threshold, if any.
func (s ScoreBoard) CheckWin() (core.Player, bool) {
	for _, p := range core.Players {
		if s.score[p.Index()] >= s.winThreshold {
			return p, true
		}
	}
	return core.Player1, false
}

// MatchPoint reports whether p is exactly one goal from winning.
func (s ScoreBoard) MatchPoint(p core.Player) bool {
	return s.score[p.Index()] == s.winThreshold-1
}

// Reset zeroes both scores.
func (s *ScoreBoard) Reset() {
	s.score = [2]int{}
}
