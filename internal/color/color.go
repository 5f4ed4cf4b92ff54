// Package color holds the hex colour value used across the theme and the
// pure functions that derive one colour from another.
package color

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex encoded sRGB colour, either #rrggbb or #rrggbbaa.
type Color string

var (
	ErrInvalidHex   = errors.New("invalid hex color")
	ErrOpacityRange = errors.New("opacity must be within [0, 1]")
	ErrFactorRange  = errors.New("brighten factor must be a finite value >= 0")
)

func (c Color) String() string {
	return string(c)
}

// rgba8 is the decoded form of a Color.
type rgba8 struct {
	r, g, b, a uint8
}

// Parse accepts #rgb, #rgba, #rrggbb and #rrggbbaa (the leading # is
// optional) and returns the lowercase long form. A fully opaque alpha channel
// is dropped, so "#ff0000ff" parses to "#ff0000".
func Parse(s string) (Color, error) {
	p, err := decode(s)
	if err != nil {
		return "", err
	}
	return p.color(), nil
}

// MustParse is Parse for static tables, it panics on malformed input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether c parses.
func (c Color) Valid() bool {
	_, err := decode(string(c))
	return err == nil
}

// Opaque reports whether the alpha channel is fully opaque.
func (c Color) Opaque() bool {
	p, err := decode(string(c))
	return err == nil && p.a == 0xff
}

func decode(s string) (rgba8, error) {
	h := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))

	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, ch := range h {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		h = b.String()
	case 6, 8:
	default:
		return rgba8{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	raw, err := hex.DecodeString(h)
	if err != nil {
		return rgba8{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	p := rgba8{r: raw[0], g: raw[1], b: raw[2], a: 0xff}
	if len(raw) == 4 {
		p.a = raw[3]
	}
	return p, nil
}

func (p rgba8) color() Color {
	if p.a == 0xff {
		return Color(fmt.Sprintf("#%02x%02x%02x", p.r, p.g, p.b))
	}
	return Color(fmt.Sprintf("#%02x%02x%02x%02x", p.r, p.g, p.b, p.a))
}

func (p rgba8) colorful() colorful.Color {
	return colorful.Color{
		R: float64(p.r) / 255.0,
		G: float64(p.g) / 255.0,
		B: float64(p.b) / 255.0,
	}
}

func fromColorful(c colorful.Color, a uint8) rgba8 {
	r, g, b := c.Clamped().RGB255()
	return rgba8{r: r, g: g, b: b, a: a}
}
