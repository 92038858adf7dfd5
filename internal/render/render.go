// Package render turns game state into LED frames.
//
// A Frame is what the pixel driver receives: one color per physical LED of
// the track panel, in wiring order, plus one buffer per player score strip.
package render

import (
	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/matrix"
	"github.com/vovakirdan/ledpong/internal/pong"
)

// State is the read access the renderer needs from a game.
type State interface {
	Rules() pong.Rules
	Ball() pong.Ball
	Paddle(p core.Player) pong.Paddle
	GoalRow(p core.Player) int
	Scores() [2]int
}

// Palette holds the colors of every track element.
type Palette struct {
	Background core.RGB    `yaml:"background"`
	Ball       core.RGB    `yaml:"ball"`
	Paddles    [2]core.RGB `yaml:"paddles"`
	Strips     [2]core.RGB `yaml:"strips"`
	Brightness uint8       `yaml:"brightness"`
}

// DefaultPalette returns the colors used when no configuration is given.
func DefaultPalette() Palette {
	return Palette{
		Background: core.Black,
		Ball:       core.White,
		Paddles:    [2]core.RGB{core.Red, core.Blue},
		Strips:     [2]core.RGB{core.Red, core.Blue},
		Brightness: 255,
	}
}

// scaled returns the palette with brightness applied to every color.
func (p Palette) scaled() Palette {
	out := p
	out.Background = p.Background.Scale(p.Brightness)
	out.Ball = p.Ball.Scale(p.Brightness)
	for i := range p.Paddles {
		out.Paddles[i] = p.Paddles[i].Scale(p.Brightness)
		out.Strips[i] = p.Strips[i].Scale(p.Brightness)
	}
	return out
}

// Frame is one complete output for the pixel driver.
type Frame struct {
	Track  []core.RGB    // Indexed by physical LED index
	Strips [2][]core.RGB // Per-player score strip, index 0 is the strip start
}

// Lit returns the number of track LEDs that are not black.
func (f Frame) Lit() int {
	n := 0
	for _, c := range f.Track {
		if !c.IsBlack() {
			n++
		}
	}
	return n
}

// Renderer rasterizes game state through a coordinate mapper.
type Renderer struct {
	mapper   matrix.Mapper
	stripLen int
	palette  Palette // brightness already applied
}

// NewRenderer creates a renderer for the given panel and score strip length.
func NewRenderer(m matrix.Mapper, stripLen int, palette Palette) *Renderer {
	return &Renderer{
		mapper:   m,
		stripLen: stripLen,
		palette:  palette.scaled(),
	}
}

// Mapper returns the coordinate mapper in use.
func (r *Renderer) Mapper() matrix.Mapper {
	return r.mapper
}

// Palette returns the brightness-adjusted palette.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// NewFrame returns a frame with every LED set to the background color.
func (r *Renderer) NewFrame() Frame {
	f := Frame{Track: make([]core.RGB, r.mapper.Len())}
	for i := range f.Track {
		f.Track[i] = r.palette.Background
	}
	for i := range f.Strips {
		f.Strips[i] = make([]core.RGB, r.stripLen)
	}
	return f
}

// set lights logical cell (x, y).
func (r *Renderer) set(f Frame, x, y int, c core.RGB) {
	f.Track[r.mapper.Index(x, y)] = c
}

// Render draws paddles, ball and score strips for the current state.
func (r *Renderer) Render(s State) Frame {
	f := r.NewFrame()

	for _, p := range core.Players {
		pd := s.Paddle(p)
		row := s.GoalRow(p)
		for x := pd.Start(); x <= pd.End(); x++ {
			r.set(f, x, row, r.palette.Paddles[p.Index()])
		}
	}

	b := s.Ball()
	r.set(f, b.X, b.Y, r.palette.Ball)

	scores := s.Scores()
	win := s.Rules().WinThreshold
	for _, p := range core.Players {
		r.fillStrip(f.Strips[p.Index()], StripCells(scores[p.Index()], win, r.stripLen), r.palette.Strips[p.Index()])
	}
	return f
}

// StripCells returns how many strip LEDs represent score out of win.
func StripCells(score, win, stripLen int) int {
	if win <= 0 || score <= 0 {
		return 0
	}
	n := score * stripLen / win
	return core.Clamp(n, 0, stripLen)
}

// fillStrip lights the trailing n cells of a strip.
func (r *Renderer) fillStrip(strip []core.RGB, n int, c core.RGB) {
	for i := len(strip) - n; i < len(strip); i++ {
		strip[i] = c
	}
}
