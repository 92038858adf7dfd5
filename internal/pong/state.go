package pong

import (
	"time"

	"github.com/vovakirdan/ledpong/internal/core"
)

// GameState owns the paddles, the ball and the scoreboard of one game.
type GameState struct {
	rules   Rules
	paddles [2]Paddle
	ball    Ball
	board   ScoreBoard

	// hitOccurred is set on the tick a goal is scored; the next tick
	// serves from the center instead of moving the ball.
	hitOccurred bool
	delay       time.Duration
	tick        uint64
}

// New creates a game with centered paddles, a centered ball and zero scores.
func New(rules Rules) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	g := &GameState{
		rules: rules,
		board: NewScoreBoard(rules.WinThreshold),
		delay: rules.Tempo.Normal,
	}
	for i := range g.paddles {
		g.paddles[i] = NewPaddle(rules.PaddleWidth, rules.Width)
	}
	cx, cy := g.track().Center()
	g.ball = newBall(cx, cy, 1, 1)
	return g, nil
}

// track returns the play field as a rectangle.
func (g *GameState) track() core.Rect {
	return core.NewRect(0, 0, g.rules.Width, g.rules.Height)
}

// Tick advances the game by one frame. Both paddle commands are applied
// before the ball moves so blocking always uses this tick's paddle extent.
func (g *GameState) Tick(p1, p2 core.Command) FrameEvents {
	g.tick++
	ev := FrameEvents{
		Tick:     g.tick,
		Commands: core.Commands{p1, p2},
	}

	g.paddles[core.Player1.Index()].Apply(p1)
	g.paddles[core.Player2.Index()].Apply(p2)

	if g.hitOccurred {
		g.serve(&ev)
		ev.Delay = g.delay
		return ev
	}

	g.ball.mustBeInside(g.rules.Width, g.rules.Height)

	ev.Bounce, ev.Blocker = g.ball.collide(g.rules.Width, g.rules.Height, g.paddles)
	g.ball.advance(g.rules.Height)

	ev.Delay = g.delay
	if scorer, ok := g.ball.scorer(g.rules.Height); ok {
		g.score(scorer, &ev)
	}

	g.ball.mustBeInside(g.rules.Width, g.rules.Height)
	return ev
}

// score records a goal. The ball stays on the scoring cell for this frame.
func (g *GameState) score(scorer core.Player, ev *FrameEvents) {
	g.hitOccurred = true
	g.board.Increment(scorer)

	ev.Goal = true
	ev.Scorer = scorer
	ev.Delay = g.rules.Tempo.GoalPause

	if winner, ok := g.board.CheckWin(); ok {
		ev.Win = true
		ev.Winner = winner
		return
	}
	if g.board.MatchPoint(scorer) && g.delay != g.rules.Tempo.Fast {
		g.delay = g.rules.Tempo.Fast
		ev.MatchPoint = true
	}
}

// serve puts the ball back in the center with the scoring direction
// mirrored, and settles a pending win.
func (g *GameState) serve(ev *FrameEvents) {
	g.hitOccurred = false
	cx, cy := g.track().Center()
	g.ball.X, g.ball.Y = cx, cy
	g.ball.DY = -g.ball.DY
	ev.Serve = true

	if _, won := g.board.CheckWin(); won {
		g.board.Reset()
		g.delay = g.rules.Tempo.Normal
		ev.ScoresReset = true
	}
}

// Rules returns the fixed game configuration.
func (g *GameState) Rules() Rules {
	return g.rules
}

// Ball returns a copy of the ball.
func (g *GameState) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of p's paddle.
func (g *GameState) Paddle(p core.Player) Paddle {
	return g.paddles[p.Index()]
}

// GoalRow returns the row p's paddle sits on.
func (g *GameState) GoalRow(p core.Player) int {
	return goalRow(p, g.rules.Height)
}

// Scores returns both scores indexed by player.
func (g *GameState) Scores() [2]int {
	return g.board.Scores()
}

// HitOccurred reports whether the last tick scored a goal.
func (g *GameState) HitOccurred() bool {
	return g.hitOccurred
}

// Delay returns the current inter-tick delay.
func (g *GameState) Delay() time.Duration {
	return g.delay
}

// TickCount returns the number of ticks run so far.
func (g *GameState) TickCount() uint64 {
	return g.tick
}
