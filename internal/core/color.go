package core

import (
	"fmt"
	"strings"
)

// RGB is a single LED color as sent to the pixel driver.
type RGB struct {
	R, G, B uint8
}

// Predefined colors for track elements.
var (
	Black   = RGB{}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
	Orange  = RGB{255, 165, 0}
)

var namedColors = map[string]RGB{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
	"orange":  Orange,
}

// IsBlack reports whether the LED is off.
func (c RGB) IsBlack() bool {
	return c == Black
}

// Scale dims the color by brightness/255, rounding like an 8-bit scaler.
func (c RGB) Scale(brightness uint8) RGB {
	scale := func(v uint8) uint8 {
		return uint8((uint16(v) * (uint16(brightness) + 1)) >> 8)
	}
	return RGB{scale(c.R), scale(c.G), scale(c.B)}
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// ParseRGB accepts a color name ("red") or a hex triple ("#ff8800").
func ParseRGB(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	var c RGB
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err == nil {
			return c, nil
		}
	}
	return c, fmt.Errorf("core: invalid color %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so colors can be
// written by name or hex in config files.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HSV converts an 8-bit hue/saturation/value triple to RGB.
// Hue wraps around the full spectrum every 256 steps.
func HSV(h, s, v uint8) RGB {
	if s == 0 {
		return RGB{v, v, v}
	}
	region := h / 43
	remainder := (uint16(h) - uint16(region)*43) * 6

	p := uint8((uint16(v) * (255 - uint16(s))) >> 8)
	q := uint8((uint16(v) * (255 - ((uint16(s) * remainder) >> 8))) >> 8)
	t := uint8((uint16(v) * (255 - ((uint16(s) * (255 - remainder)) >> 8))) >> 8)

	switch region {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default:
		return RGB{v, p, q}
	}
}
