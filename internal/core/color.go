package core

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color used by every drawing primitive.
// Backends translate it to their native representation (lipgloss hex
// strings for terminals, color.RGBA for windows).
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors for game elements.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 160, 0)
	ColorGray  = RGB(100, 100, 100)
)

// RandomColor returns a color whose channels are uniformly drawn from [lo, hi].
func RandomColor(rng *rand.Rand, lo, hi uint8) Color {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := int(hi-lo) + 1
	return Color{
		R: lo + uint8(rng.Intn(span)),
		G: lo + uint8(rng.Intn(span)),
		B: lo + uint8(rng.Intn(span)),
	}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	cf, _ := colorful.MakeColor(c.RGBA())
	return cf.Hex()
}

// RGBA converts to the standard library color type (fully opaque).
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// MarshalText implements encoding.TextMarshaler so colors round-trip through YAML.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText parses "#rrggbb" or "rrggbb".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 {
		return fmt.Errorf("core: invalid color %q: want #rrggbb", string(text))
	}
	cf, err := colorful.Hex("#" + s)
	if err != nil {
		return fmt.Errorf("core: invalid color %q: %w", string(text), err)
	}
	r, g, b := cf.RGB255()
	*c = Color{R: r, G: g, B: b}
	return nil
}
