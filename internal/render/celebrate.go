package render

import (
	"math"
	"time"

	"github.com/vovakirdan/ledpong/internal/core"
)

// Default celebration timing.
const (
	DefaultCelebration = 3 * time.Second
	DefaultFadeIn      = time.Second
)

// Celebration is the rainbow sweep shown after a win. Hue drifts over time
// and the gradient direction wobbles on both axes; brightness fades in over
// the first FadeIn of the sequence.
type Celebration struct {
	Duration time.Duration
	FadeIn   time.Duration
	Winner   core.Player
}

// Done reports whether the animation is over at elapsed.
func (c Celebration) Done(elapsed time.Duration) bool {
	return elapsed >= c.Duration
}

// brightness returns the global brightness for elapsed.
func (c Celebration) brightness(max uint8, elapsed time.Duration) uint8 {
	if c.FadeIn <= 0 || elapsed >= c.FadeIn {
		return max
	}
	return uint8(int64(max) * int64(elapsed) / int64(c.FadeIn))
}

// hueDelta returns a per-cell hue step oscillating with time.
// rate controls the wobble speed, spread the hue range across the panel.
func hueDelta(ms int64, rate int64, spread int) int {
	phase := float64((ms*rate)%65536) / 65536 * 2 * math.Pi
	return int(math.Cos(phase) * float64(spread))
}

// Celebrate renders the celebration frame at elapsed.
func (r *Renderer) Celebrate(c Celebration, elapsed time.Duration) Frame {
	f := r.NewFrame()
	w, h := r.mapper.Width, r.mapper.Height
	ms := elapsed.Milliseconds()

	yDelta := hueDelta(ms, 27, 350/w)
	xDelta := hueDelta(ms, 39, 310/h)
	level := c.brightness(r.palette.Brightness, elapsed)

	lineHue := int(ms / 8)
	for y := 0; y < h; y++ {
		lineHue += yDelta
		hue := lineHue
		for x := 0; x < w; x++ {
			hue += xDelta
			r.set(f, x, y, core.HSV(uint8(hue&0xff), 255, 255).Scale(level))
		}
	}

	r.fillStrip(f.Strips[c.Winner.Index()], r.stripLen, r.palette.Strips[c.Winner.Index()])
	return f
}
