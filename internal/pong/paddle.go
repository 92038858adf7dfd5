package pong

import "github.com/vovakirdan/ledpong/internal/core"

// Paddle is one player's bat on its goal row.
// Start is the leftmost covered column; the paddle covers
// [Start, Start+Width-1] and never leaves [0, track-Width].
type Paddle struct {
	start int
	width int
	track int
}

// NewPaddle creates a paddle centered on a track of the given width.
func NewPaddle(width, track int) Paddle {
	return Paddle{
		start: (track - width) / 2,
		width: width,
		track: track,
	}
}

// Start returns the leftmost covered column.
func (p Paddle) Start() int {
	return p.start
}

// Width returns the number of covered columns.
func (p Paddle) Width() int {
	return p.width
}

// End returns the rightmost covered column.
func (p Paddle) End() int {
	return p.start + p.width - 1
}

// Max returns the largest legal Start.
func (p Paddle) Max() int {
	return p.track - p.width
}

// Covers reports whether column x is under the paddle.
func (p Paddle) Covers(x int) bool {
	return x >= p.start && x <= p.End()
}

// Apply moves the paddle one cell for a move command.
// Moves saturate at the track edges; Hold does nothing.
func (p *Paddle) Apply(cmd core.Command) {
	switch cmd {
	case core.MoveLeft:
		if p.start > 0 {
			p.start--
		}
	case core.MoveRight:
		if p.start < p.Max() {
			p.start++
		}
	}
}
