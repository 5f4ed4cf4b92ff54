package color

import "strings"

// Named opacity levels. Material state-layer values where one exists.
const (
	OpacityDisabled = 0.38
	OpacityBorder   = 0.12
	OpacityDrop     = 0.6
	OpacityText     = 0.6
	OpacityInactive = 0.5
	OpacityHover    = 0.08
	OpacityShadow   = 0.5
	OpacityWidget   = 0.9
)

var presets = map[string]float64{
	"DISABLED": OpacityDisabled,
	"BORDER":   OpacityBorder,
	"DROP":     OpacityDrop,
	"TEXT":     OpacityText,
	"INACTIVE": OpacityInactive,
	"HOVER":    OpacityHover,
	"SHADOW":   OpacityShadow,
	"WIDGET":   OpacityWidget,
}

// Transparency looks up a preset by name, case-insensitively.
func Transparency(name string) (float64, bool) {
	v, ok := presets[strings.ToUpper(name)]
	return v, ok
}

// Presets returns a copy of the preset table.
func Presets() map[string]float64 {
	out := make(map[string]float64, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}
