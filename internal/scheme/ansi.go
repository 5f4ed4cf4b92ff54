package scheme

import (
	"math"

	"github.com/AvengeMedia/switcher/internal/color"
)

type ANSIOptions struct {
	IsLight      bool
	HonorPrimary color.Color
	Background   color.Color
	UseDPS       bool
}

func (o ANSIOptions) ensure(c, bg color.Color, target float64) color.Color {
	if o.UseDPS {
		return color.EnsureContrastDPS(c, bg, target, o.IsLight)
	}
	return color.EnsureContrast(c, bg, target, o.IsLight)
}

func hsv(h, s, v float64) color.Color {
	return color.FromHSV(color.HSV{H: h, S: s, V: v})
}

func wrapHue(h float64) float64 {
	if h < 0 {
		return h + 1.0
	}
	if h > 1.0 {
		return h - 1.0
	}
	return h
}

// ANSI generates the 16 terminal colours (normal 0-7, bright 8-15) from a
// seed. Chromatic entries are pushed to a minimum contrast against the
// background.
func ANSI(seed color.Color, opts ANSIOptions) []color.Color {
	base := color.RGBToHSV(color.ToRGB(seed))
	palette := make([]color.Color, 0, 16)

	// DPS is tuned to keep colours vibrant
	normalTarget, brightTarget := 4.5, 3.0 // WCAG AA
	if opts.UseDPS {
		normalTarget, brightTarget = 40.0, 35.0
	}

	bg := opts.Background
	switch {
	case bg != "":
	case opts.IsLight:
		bg = "#f8f8f8"
	default:
		bg = "#1a1a1a"
	}
	normal := func(c color.Color) color.Color { return opts.ensure(c, bg, normalTarget) }
	bright := func(c color.Color) color.Color { return opts.ensure(c, bg, brightTarget) }

	const (
		redH    = 0.0
		greenH  = 0.33
		yellowH = 0.15 // actual yellow, not orange/brown
	)
	magH := wrapHue(base.H - 0.03)
	cyanH := wrapHue(base.H + 0.08)

	var honor color.HSV
	if opts.HonorPrimary != "" {
		honor = color.RGBToHSV(color.ToRGB(opts.HonorPrimary))
	}

	palette = append(palette, bg)

	if opts.IsLight {
		palette = append(palette,
			normal(hsv(redH, 0.75, 0.85)),
			normal(hsv(greenH, math.Max(base.S*0.9, 0.75), base.V*0.6)),
			normal(hsv(yellowH, 0.65, 0.7)),
			normal(hsv(base.H, math.Max(base.S*0.9, 0.7), base.V*1.1)),
		)
	} else {
		palette = append(palette,
			normal(hsv(redH, 0.6, 0.8)),
			normal(hsv(greenH, 0.35, 0.85)),
			normal(hsv(yellowH, 0.30, 0.88)),
			normal(hsv(base.H, math.Max(base.S*0.8, 0.6), math.Min(base.V*1.6, 1.0))),
		)
	}

	switch {
	case opts.HonorPrimary != "" && opts.IsLight:
		palette = append(palette, normal(hsv(honor.H, math.Max(honor.S*0.9, 0.7), honor.V*0.85)))
	case opts.HonorPrimary != "":
		palette = append(palette, normal(hsv(honor.H, honor.S*0.8, honor.V*0.75)))
	case opts.IsLight:
		palette = append(palette, normal(hsv(magH, math.Max(base.S*0.75, 0.6), base.V*0.9)))
	default:
		palette = append(palette, normal(hsv(magH, math.Max(base.S*0.7, 0.6), base.V*0.85)))
	}

	switch {
	case opts.HonorPrimary != "":
		palette = append(palette, normal(opts.HonorPrimary))
	case opts.IsLight:
		palette = append(palette, normal(hsv(cyanH, math.Max(base.S*0.8, 0.65), base.V*1.05)))
	default:
		palette = append(palette, normal(hsv(cyanH, math.Max(base.S*0.6, 0.5), math.Min(base.V*1.25, 0.85))))
	}

	if opts.IsLight {
		palette = append(palette, "#1a1a1a", "#2e2e2e")

		palette = append(palette,
			bright(hsv(redH, 0.6, 0.9)),
			bright(hsv(greenH, math.Max(base.S*0.8, 0.7), base.V*0.65)),
			bright(hsv(yellowH, 0.55, 0.85)),
		)
		if opts.HonorPrimary != "" {
			palette = append(palette, bright(hsv(honor.H, math.Min(honor.S*1.1, 1.0), math.Min(honor.V*1.2, 1.0))))
		} else {
			palette = append(palette, bright(hsv(base.H, math.Max(base.S*0.8, 0.7), math.Min(base.V*1.3, 1.0))))
		}
		palette = append(palette,
			bright(hsv(magH, math.Max(base.S*0.9, 0.75), math.Min(base.V*1.25, 1.0))),
			bright(hsv(cyanH, math.Max(base.S*0.75, 0.65), math.Min(base.V*1.25, 1.0))),
			"#1a1a1a",
		)
		return palette
	}

	palette = append(palette, "#abb2bf", "#5c6370")

	palette = append(palette,
		bright(hsv(redH, 0.45, 0.9)),
		bright(hsv(greenH, 0.30, 0.90)),
		bright(hsv(yellowH, 0.25, 0.94)),
	)
	if opts.HonorPrimary != "" {
		// Way brighter for type names in dark mode
		palette = append(palette, color.Retone(opts.HonorPrimary, 85.0))
	} else {
		palette = append(palette, bright(hsv(base.H, math.Max(base.S*0.6, 0.5), math.Min(base.V*1.5, 0.9))))
	}
	palette = append(palette,
		bright(hsv(magH, math.Max(base.S*0.7, 0.6), math.Min(base.V*1.3, 0.9))),
		bright(hsv(wrapHue(base.H+0.02), math.Max(base.S*0.6, 0.5), math.Min(base.V*1.2, 0.85))),
		"#ffffff",
	)
	return palette
}
