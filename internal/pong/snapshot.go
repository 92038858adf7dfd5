package pong

// Snapshot contains the complete observable state of a game.
// Uses primitive types only for stable serialization to spectators.
type Snapshot struct {
	Tick        uint64 `json:"tick"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	BallX       int    `json:"ball_x"`
	BallY       int    `json:"ball_y"`
	BallDX      int    `json:"ball_dx"`
	BallDY      int    `json:"ball_dy"`
	Paddle1     int    `json:"paddle1"`
	Paddle2     int    `json:"paddle2"`
	PaddleWidth int    `json:"paddle_width"`
	Score1      int    `json:"score1"`
	Score2      int    `json:"score2"`
	WinScore    int    `json:"win_score"`
	HitOccurred bool   `json:"hit_occurred"`
	DelayMillis int64  `json:"delay_ms"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *GameState) Snapshot() Snapshot {
	scores := g.board.Scores()
	return Snapshot{
		Tick:        g.tick,
		Width:       g.rules.Width,
		Height:      g.rules.Height,
		BallX:       g.ball.X,
		BallY:       g.ball.Y,
		BallDX:      g.ball.DX,
		BallDY:      g.ball.DY,
		Paddle1:     g.paddles[0].Start(),
		Paddle2:     g.paddles[1].Start(),
		PaddleWidth: g.rules.PaddleWidth,
		Score1:      scores[0],
		Score2:      scores[1],
		WinScore:    g.rules.WinThreshold,
		HitOccurred: g.hitOccurred,
		DelayMillis: g.delay.Milliseconds(),
	}
}
