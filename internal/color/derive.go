package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// brightenStep is the L* change (on go-colorful's 0-1 scale) per unit of
// brighten factor, matching chroma-js.
const brightenStep = 0.18

// brightenGrid is the lightness resolution of Brighten, on the same scale.
const brightenGrid = 1.0 / 1024

// roundingError bounds how far rounding a colour to 8 bits per channel can
// move its relative luminance (half a step at the steepest point of the sRGB
// curve, about 0.0045).
const roundingError = 0.005

// Alpha returns c with its alpha channel replaced by opacity. Opacity 1
// yields the six digit form. Values outside [0, 1] are rejected, never
// clamped.
func Alpha(c Color, opacity float64) (Color, error) {
	if math.IsNaN(opacity) || opacity < 0 || opacity > 1 {
		return "", fmt.Errorf("%w: got %v", ErrOpacityRange, opacity)
	}

	p, err := decode(string(c))
	if err != nil {
		return "", err
	}

	p.a = uint8(math.Round(opacity * 255))
	return p.color(), nil
}

func MustAlpha(c Color, opacity float64) Color {
	out, err := Alpha(c, opacity)
	if err != nil {
		panic(err)
	}
	return out
}

// Brighten raises the CIE L* of c by 18 points per unit of factor. The Lab
// hue angle and the alpha channel are kept; chroma is only reduced when the
// lighter colour would fall outside sRGB.
//
// The target lightness is snapped to brightenGrid. Every grid lightness
// between the input and the target yields an 8 bit candidate, and the result
// is the candidate (or the input) with the highest luminance. A larger
// factor only adds candidates, so rounding can never make it darker.
func Brighten(c Color, factor float64) (Color, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return "", fmt.Errorf("%w: got %v", ErrFactorRange, factor)
	}

	p, err := decode(string(c))
	if err != nil {
		return "", err
	}
	if factor == 0 {
		return p.color(), nil
	}

	L, a, b := p.colorful().Lab()
	target := math.Min(1, L+brightenStep*factor)

	best, bestY := p, Luminance(p.color())
	for k := math.Floor(target / brightenGrid); k*brightenGrid > L; k-- {
		candidate := inGamut(k*brightenGrid, a, b)
		// lower grid points cannot beat bestY any more
		if linearLuminance(candidate)+roundingError < bestY {
			break
		}
		q := fromColorful(candidate, p.a)
		if y := Luminance(q.color()); y > bestY {
			best, bestY = q, y
		}
	}
	return best.color(), nil
}

func MustBrighten(c Color, factor float64) Color {
	out, err := Brighten(c, factor)
	if err != nil {
		panic(err)
	}
	return out
}

// Tone moves c to CIE L* tone (0-100) with the same Lab hue and chroma,
// reducing chroma only where the tone cannot hold it. Alpha is dropped.
func Tone(c Color, tone float64) (Color, error) {
	if math.IsNaN(tone) || tone < 0 || tone > 100 {
		return "", fmt.Errorf("tone must be within [0, 100]: got %v", tone)
	}

	p, err := decode(string(c))
	if err != nil {
		return "", err
	}

	_, a, b := p.colorful().Lab()
	return fromColorful(inGamut(tone/100.0, a, b), 0xff).color(), nil
}

// inGamut scales chroma down until Lab(L, a, b) fits in sRGB. L is untouched,
// which keeps luminance a function of L alone.
func inGamut(L, a, b float64) colorful.Color {
	if c := colorful.Lab(L, a, b); c.IsValid() {
		return c
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < 32; i++ {
		k := (lo + hi) / 2
		if colorful.Lab(L, a*k, b*k).IsValid() {
			lo = k
		} else {
			hi = k
		}
	}
	return colorful.Lab(L, a*lo, b*lo).Clamped()
}

// linearLuminance is Luminance for an unrounded colour.
func linearLuminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Blend composites fg over an opaque bg and returns the opaque result.
func Blend(fg, bg Color) (Color, error) {
	f, err := decode(string(fg))
	if err != nil {
		return "", err
	}
	b, err := decode(string(bg))
	if err != nil {
		return "", err
	}

	alpha := float64(f.a) / 255.0
	mixed := b.colorful().BlendRgb(f.colorful(), alpha)
	return fromColorful(mixed, 0xff).color(), nil
}
