// Package matrix maps logical track cells to physical LED indices.
// The wiring layout is a property of the panel, never of the game: the
// simulation works in (x, y) and only this package knows how the strip
// snakes through the matrix.
package matrix

import (
	"fmt"
	"strings"
)

// Layout describes how the LED strip is wired through the matrix rows.
type Layout int

const (
	// RowMajor wires every row left to right.
	RowMajor Layout = iota
	// Serpentine wires even rows left to right and odd rows right to left.
	Serpentine
)

// String returns the config name of the layout.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case Serpentine:
		return "serpentine"
	default:
		return "unknown"
	}
}

// ParseLayout converts a config name to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row-major", "rowmajor", "progressive":
		return RowMajor, nil
	case "serpentine", "zigzag", "boustrophedon":
		return Serpentine, nil
	default:
		return RowMajor, fmt.Errorf("matrix: unknown layout %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(text []byte) error {
	parsed, err := ParseLayout(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Map returns the physical LED index of logical cell (x, y).
// Callers must keep 0 <= x < width and 0 <= y < height.
func Map(x, y, width, height int, layout Layout) int {
	if layout == Serpentine && y&1 == 1 {
		// Odd rows run backwards
		return y*width + (width - 1 - x)
	}
	return y*width + x
}

// Mapper binds Map to a fixed panel geometry.
type Mapper struct {
	Width  int
	Height int
	Layout Layout
}

// NewMapper creates a mapper for a width x height panel.
func NewMapper(width, height int, layout Layout) (Mapper, error) {
	if width <= 0 || height <= 0 {
		return Mapper{}, fmt.Errorf("matrix: invalid size %dx%d", width, height)
	}
	if layout != RowMajor && layout != Serpentine {
		return Mapper{}, fmt.Errorf("matrix: invalid layout %d", int(layout))
	}
	return Mapper{Width: width, Height: height, Layout: layout}, nil
}

// Len returns the number of LEDs on the panel.
func (m Mapper) Len() int {
	return m.Width * m.Height
}

// Index returns the physical index of logical cell (x, y).
func (m Mapper) Index(x, y int) int {
	return Map(x, y, m.Width, m.Height, m.Layout)
}

// Coord returns the logical cell wired at physical index i.
func (m Mapper) Coord(i int) (x, y int) {
	y = i / m.Width
	x = i % m.Width
	if m.Layout == Serpentine && y&1 == 1 {
		x = m.Width - 1 - x
	}
	return x, y
}
