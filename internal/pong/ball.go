package pong

import (
	"fmt"

	"github.com/vovakirdan/ledpong/internal/core"
)

// Bounce names the collision branch taken on a tick.
// Exactly one branch fires per moving tick.
type Bounce int

const (
	BounceNone     Bounce = iota // Direction unchanged
	BounceWall                   // Transverse direction inverted at a side wall
	BounceStraight               // Ball hit the paddle face
	BounceDiagonal               // Ball clipped the paddle corner on a diagonal
)

// String returns a human-readable name for the bounce.
func (b Bounce) String() string {
	switch b {
	case BounceNone:
		return "none"
	case BounceWall:
		return "wall"
	case BounceStraight:
		return "paddle"
	case BounceDiagonal:
		return "paddle-diagonal"
	default:
		return "unknown"
	}
}

// Ball is the ball position and unit direction on the track grid.
// DX is -1, 0 or 1; DY is -1 or 1. Speed is the cells-per-tick multiplier.
type Ball struct {
	X, Y   int
	DX, DY int
	Speed  int
}

// newBall places a ball at (x, y) heading along (dx, dy).
func newBall(x, y, dx, dy int) Ball {
	return Ball{X: x, Y: y, DX: dx, DY: dy, Speed: 1}
}

// defender returns the player whose goal row the ball is heading to.
func (b Ball) defender() core.Player {
	if b.DY < 0 {
		return core.Player1
	}
	return core.Player2
}

// frontRow returns the row in front of p's goal line.
func frontRow(p core.Player, height int) int {
	if p == core.Player1 {
		return 1
	}
	return height - 2
}

// goalRow returns the row p defends.
func goalRow(p core.Player, height int) int {
	if p == core.Player1 {
		return 0
	}
	return height - 1
}

// mustBeInside panics when the ball left the track. Every transition keeps
// the ball in bounds, so reaching this is a simulation defect.
func (b Ball) mustBeInside(width, height int) {
	if !core.NewRect(0, 0, width, height).Contains(b.X, b.Y) {
		panic(fmt.Sprintf("pong: ball at (%d,%d) outside %dx%d track", b.X, b.Y, width, height))
	}
}

// collide runs the bounce branches in priority order against the current
// paddle positions and inverts one direction component if a branch fires.
// The returned player is the blocker for paddle bounces.
func (b *Ball) collide(width, height int, paddles [2]Paddle) (Bounce, core.Player) {
	// 1. Side walls
	if (b.X == 0 && b.DX < 0) || (b.X == width-1 && b.DX > 0) {
		b.DX = -b.DX
		return BounceWall, core.Player1
	}

	p := b.defender()
	if b.Y != frontRow(p, height) {
		return BounceNone, p
	}
	paddle := paddles[p.Index()]

	// 2. Paddle face
	if paddle.Covers(b.X) {
		b.DY = -b.DY
		return BounceStraight, p
	}

	// 3. Paddle corner: the ball is one cell outside the paddle on the
	// side it is moving toward.
	if (b.DX > 0 && b.X == paddle.Start()-1) || (b.DX < 0 && b.X == paddle.End()+1) {
		b.DY = -b.DY
		return BounceDiagonal, p
	}

	return BounceNone, p
}

// atGoalLine reports whether the ball sits on a goal row moving outward.
func (b Ball) atGoalLine(height int) bool {
	return (b.Y == 0 && b.DY < 0) || (b.Y == height-1 && b.DY > 0)
}

// advance moves the ball by direction*speed. A ball on a goal row moving
// outward stays put: the point is over and the cell must stay visible.
func (b *Ball) advance(height int) {
	if b.atGoalLine(height) {
		return
	}
	b.X += b.DX * b.Speed
	b.Y += b.DY * b.Speed
}

// scorer returns who scores if the ball has reached a goal line.
func (b Ball) scorer(height int) (core.Player, bool) {
	if !b.atGoalLine(height) {
		return core.Player1, false
	}
	return b.defender().Opponent(), true
}
