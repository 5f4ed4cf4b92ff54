package color

import (
	"fmt"
	"math"
)

type RGB struct {
	R, G, B float64
}

type HSV struct {
	H, S, V float64
}

// ToRGB drops the alpha channel. Invalid colours decode to black.
func ToRGB(c Color) RGB {
	p, err := decode(string(c))
	if err != nil {
		return RGB{}
	}
	return RGB{
		R: float64(p.r) / 255.0,
		G: float64(p.g) / 255.0,
		B: float64(p.b) / 255.0,
	}
}

func FromRGB(rgb RGB) Color {
	r := math.Max(0, math.Min(1, rgb.R))
	g := math.Max(0, math.Min(1, rgb.G))
	b := math.Max(0, math.Min(1, rgb.B))
	return Color(fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(r*255)), int(math.Round(g*255)), int(math.Round(b*255))))
}

func RGBToHSV(rgb RGB) HSV {
	max := math.Max(math.Max(rgb.R, rgb.G), rgb.B)
	min := math.Min(math.Min(rgb.R, rgb.G), rgb.B)
	delta := max - min

	var h float64
	if delta == 0 {
		h = 0
	} else if max == rgb.R {
		h = math.Mod((rgb.G-rgb.B)/delta, 6.0) / 6.0
	} else if max == rgb.G {
		h = ((rgb.B-rgb.R)/delta + 2.0) / 6.0
	} else {
		h = ((rgb.R-rgb.G)/delta + 4.0) / 6.0
	}

	if h < 0 {
		h += 1.0
	}

	var s float64
	if max == 0 {
		s = 0
	} else {
		s = delta / max
	}

	return HSV{H: h, S: s, V: max}
}

func HSVToRGB(hsv HSV) RGB {
	h := hsv.H * 6.0
	c := hsv.V * hsv.S
	x := c * (1.0 - math.Abs(math.Mod(h, 2.0)-1.0))
	m := hsv.V - c

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{R: r + m, G: g + m, B: b + m}
}

// FromHSV is shorthand for FromRGB(HSVToRGB(hsv)).
func FromHSV(hsv HSV) Color {
	return FromRGB(HSVToRGB(hsv))
}
