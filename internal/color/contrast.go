package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func sRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance is the WCAG relative luminance of c, ignoring alpha.
func Luminance(c Color) float64 {
	rgb := ToRGB(c)
	return 0.2126*sRGBToLinear(rgb.R) + 0.7152*sRGBToLinear(rgb.G) + 0.0722*sRGBToLinear(rgb.B)
}

func ContrastRatio(fg, bg Color) float64 {
	lumFg := Luminance(fg)
	lumBg := Luminance(bg)
	lighter := math.Max(lumFg, lumBg)
	darker := math.Min(lumFg, lumBg)
	return (lighter + 0.05) / (darker + 0.05)
}

func lstar(c Color) float64 {
	rgb := ToRGB(c)
	L, _, _ := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Lab()
	return L * 100.0 // DPS works on 0-100
}

func labToColor(L, a, b float64) Color {
	r, g, b2 := colorful.Lab(L/100.0, a, b).Clamped().RGB255()
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b2))
}

// Retone moves c to the target L* (0-100) keeping the hue, with chroma
// capped so it does not oversaturate.
func Retone(c Color, target float64) Color {
	rgb := ToRGB(c)
	L, a, b := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Lab()

	scale := 1.0
	if L != 0 {
		scale = target / (L * 100.0)
	}
	a2, b2 := a*scale, b*scale

	const maxChroma = 0.4
	if h := math.Hypot(a2, b2); h > maxChroma {
		k := maxChroma / h
		a2 *= k
		b2 *= k
	}

	return labToColor(target, a2, b2)
}

// DeltaPhiStar is the DPS lightness contrast between fg and bg.
func DeltaPhiStar(fg, bg Color, negativePolarity bool) float64 {
	Lf := lstar(fg)
	Lb := lstar(bg)

	phi := 1.618
	inv := 0.618
	lc := math.Pow(math.Abs(math.Pow(Lb, phi)-math.Pow(Lf, phi)), inv)*1.414 - 40

	if negativePolarity {
		lc += 5
	}
	return lc
}

// EnsureContrast walks HSV value away from bg until the WCAG ratio reaches
// minRatio. Light mode tries darker first.
func EnsureContrast(c, bg Color, minRatio float64, isLight bool) Color {
	if ContrastRatio(c, bg) >= minRatio {
		return c
	}

	hsv := RGBToHSV(ToRGB(c))
	for step := 1; step < 30; step++ {
		delta := float64(step) * 0.02

		darker := FromHSV(HSV{H: hsv.H, S: hsv.S, V: math.Max(0, hsv.V-delta)})
		lighter := FromHSV(HSV{H: hsv.H, S: hsv.S, V: math.Min(1, hsv.V+delta)})

		first, second := lighter, darker
		if isLight {
			first, second = darker, lighter
		}
		if ContrastRatio(first, bg) >= minRatio {
			return first
		}
		if ContrastRatio(second, bg) >= minRatio {
			return second
		}
	}

	return c
}

// EnsureContrastDPS nudges L* until the DPS contrast reaches minLc. Keeps
// hue intact unlike HSV fiddling.
func EnsureContrastDPS(c, bg Color, minLc float64, isLight bool) Color {
	if DeltaPhiStar(c, bg, !isLight) >= minLc {
		return c
	}

	rgb := ToRGB(c)
	L, a, b := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Lab()
	L *= 100.0

	dir := 1.0
	if isLight {
		dir = -1.0 // darker text on light backgrounds
	}

	for i := 0; i < 240; i++ {
		L = math.Max(0, math.Min(100, L+dir*0.5))
		cand := labToColor(L, a, b)
		if DeltaPhiStar(cand, bg, !isLight) >= minLc {
			return cand
		}
	}

	return c
}
