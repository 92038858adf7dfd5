package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/matrix"
	"github.com/vovakirdan/ledpong/internal/render"
)

// Cell glyphs. Each LED is two columns wide so the panel looks square.
const (
	litGlyph   = "██"
	unlitGlyph = "· "
)

var unlitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

// styleCache maps LED colors to lipgloss styles.
type styleCache map[core.RGB]lipgloss.Style

func (c styleCache) get(rgb core.RGB) lipgloss.Style {
	if s, ok := c[rgb]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(rgb.Hex()))
	c[rgb] = s
	return s
}

// writeRun writes a row of LED colors, grouping adjacent cells with the
// same color to minimize ANSI escape sequences.
func writeRun(sb *strings.Builder, styles styleCache, colors []core.RGB) {
	x := 0
	for x < len(colors) {
		start := colors[x]
		n := 0
		for x < len(colors) && colors[x] == start {
			n++
			x++
		}
		if start.IsBlack() {
			sb.WriteString(unlitStyle.Render(strings.Repeat(unlitGlyph, n)))
		} else {
			sb.WriteString(styles.get(start).Render(strings.Repeat(litGlyph, n)))
		}
	}
}

// RenderFrame converts an LED frame to a styled string: Player 1's score
// strip, the track in logical order read back through the mapper, then
// Player 2's score strip.
func RenderFrame(f render.Frame, m matrix.Mapper) string {
	styles := make(styleCache)
	var sb strings.Builder
	sb.Grow((m.Width*2 + 1) * (m.Height + 2) * 4)

	writeRun(&sb, styles, f.Strips[core.Player1.Index()])
	sb.WriteByte('\n')

	row := make([]core.RGB, m.Width)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			row[x] = f.Track[m.Index(x, y)]
		}
		writeRun(&sb, styles, row)
		sb.WriteByte('\n')
	}

	writeRun(&sb, styles, f.Strips[core.Player2.Index()])
	return sb.String()
}
