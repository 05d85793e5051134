// Package hexcolor parses hex color strings into normalized RGBA components.
//
// Parsing is lenient and total: any input produces a color. Inputs whose
// alphanumeric content is not 3, 6 or 8 characters long fall back to opaque
// black.
package hexcolor

import (
	"image/color"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with each component in [0,1].
type RGBA struct {
	R float64 `json:"red"`
	G float64 `json:"green"`
	B float64 `json:"blue"`
	A float64 `json:"alpha"`
}

// Black is the fallback for inputs that are not 3, 6 or 8 digits long.
var Black = RGBA{A: 1}

// Parse converts a hex color string into RGBA.
//
// Non-alphanumeric characters (a leading '#', separators, whitespace) are
// removed first. The remaining characters are read as hexadecimal:
//
//	RGB      -> 12-bit shorthand, each nibble n becomes n*17, opaque
//	RRGGBB   -> 24-bit RGB, opaque
//	AARRGGBB -> 32-bit ARGB
//
// Scanning stops at the first non-hex character, so "zz0" reads as 0 and
// yields black while still taking the 3-digit branch.
func Parse(input string) RGBA {
	hex := stripNonAlphanumeric(input)
	n := scanHex(hex)

	var a, r, g, b uint64
	switch utf8.RuneCountInString(hex) {
	case 3:
		a, r, g, b = 255, (n>>8)*17, (n>>4&0xF)*17, (n&0xF)*17
	case 6:
		a, r, g, b = 255, n>>16, n>>8&0xFF, n&0xFF
	case 8:
		a, r, g, b = n>>24, n>>16&0xFF, n>>8&0xFF, n&0xFF
	default:
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Valid reports whether input is a well-formed hex color: after removing
// non-alphanumeric characters it must be 3, 6 or 8 hex digits. Parse does not
// require this; Valid exists for callers that want to reject typos.
func Valid(input string) bool {
	hex := stripNonAlphanumeric(input)
	switch len(hex) {
	case 3, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(hex); i++ {
		if hexDigit(hex[i]) < 0 {
			return false
		}
	}
	return true
}

// Color returns the color as an image/color value.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

// Colorful returns the RGB part of the color as a go-colorful value. Alpha is
// dropped.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex returns the RGB part as "#rrggbb".
func (c RGBA) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Blend mixes c towards other by t in RGB space. t is clamped to [0,1].
// Alpha is interpolated linearly.
func (c RGBA) Blend(other RGBA, t float64) RGBA {
	t = min(max(t, 0), 1)
	mixed := c.Colorful().BlendRgb(other.Colorful(), t).Clamped()
	return RGBA{
		R: mixed.R,
		G: mixed.G,
		B: mixed.B,
		A: c.A + (other.A-c.A)*t,
	}
}

func stripNonAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) {
			return r
		}
		return -1
	}, s)
}

// scanHex reads leading hex digits from s, accepting an optional 0x prefix.
// Input without leading hex digits reads as 0; overflow saturates.
func scanHex(s string) uint64 {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && hexDigit(s[2]) >= 0 {
		s = s[2:]
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		d := hexDigit(s[i])
		if d < 0 {
			break
		}
		if n > (^uint64(0))>>4 {
			return ^uint64(0)
		}
		n = n<<4 | uint64(d)
	}
	return n
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func toByte(v float64) uint8 {
	v = min(max(v, 0), 1)
	return uint8(v*255 + 0.5)
}
