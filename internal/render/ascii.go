package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ledpong/internal/core"
)

// ASCII characters for frame dumps.
const (
	EmptyChar  = '.'
	BallChar   = 'o'
	PaddleChar = '='
	OtherChar  = '*'
	StripChar  = '#'
)

// Screen draws a frame into a character buffer in logical (x, y) order,
// reading each cell back through the mapper. Row 0 is the top line. The
// two score strips follow the track, one line per player. Cells keep
// their LED color.
func (r *Renderer) Screen(f Frame) *core.Screen {
	w, h := r.mapper.Width, r.mapper.Height
	width := max(w, len("P1 []")+r.stripLen)
	s := core.NewScreen(width, h+2)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := f.Track[r.mapper.Index(x, y)]
			s.SetCell(x, y, core.Cell{Rune: r.cellChar(c), Color: c})
		}
	}

	for _, p := range core.Players {
		y := h + p.Index()
		prefix := fmt.Sprintf("%s [", p)
		s.DrawText(0, y, prefix)
		for i, c := range f.Strips[p.Index()] {
			ch := StripChar
			if c.IsBlack() {
				ch = EmptyChar
			}
			s.SetCell(len(prefix)+i, y, core.Cell{Rune: ch, Color: c})
		}
		s.Set(len(prefix)+len(f.Strips[p.Index()]), y, ']')
	}
	return s
}

// ASCII renders a frame as plain text, see Screen.
func (r *Renderer) ASCII(f Frame) string {
	s := r.Screen(f)
	var sb strings.Builder
	for y := 0; y < s.Height(); y++ {
		sb.WriteString(strings.TrimRight(s.Row(y), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) cellChar(c core.RGB) rune {
	switch c {
	case r.palette.Background:
		return EmptyChar
	case r.palette.Ball:
		return BallChar
	case r.palette.Paddles[0], r.palette.Paddles[1]:
		return PaddleChar
	default:
		return OtherChar
	}
}
