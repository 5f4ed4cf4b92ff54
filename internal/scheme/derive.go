package scheme

import (
	"fmt"
	"math"

	"github.com/AvengeMedia/switcher/internal/color"
)

// Key palettes a role draws from.
const (
	keyPrimary        = "primary"
	keySecondary      = "secondary"
	keyTertiary       = "tertiary"
	keyError          = "error"
	keyNeutral        = "neutral"
	keyNeutralVariant = "neutralVariant"
)

type toneSpec struct {
	key   string
	dark  float64
	light float64
}

// Material 3 role to tone assignments.
var roleTones = map[string]toneSpec{
	"primary":                 {keyPrimary, 80, 40},
	"onPrimary":               {keyPrimary, 20, 100},
	"primaryContainer":        {keyPrimary, 30, 90},
	"onPrimaryContainer":      {keyPrimary, 90, 10},
	"inversePrimary":          {keyPrimary, 40, 80},
	"primaryFixed":            {keyPrimary, 90, 90},
	"onPrimaryFixed":          {keyPrimary, 10, 10},
	"primaryFixedDim":         {keyPrimary, 80, 80},
	"onPrimaryFixedVariant":   {keyPrimary, 30, 30},
	"secondary":               {keySecondary, 80, 40},
	"onSecondary":             {keySecondary, 20, 100},
	"secondaryContainer":      {keySecondary, 30, 90},
	"onSecondaryContainer":    {keySecondary, 90, 10},
	"secondaryFixed":          {keySecondary, 90, 90},
	"onSecondaryFixed":        {keySecondary, 10, 10},
	"secondaryFixedDim":       {keySecondary, 80, 80},
	"onSecondaryFixedVariant": {keySecondary, 30, 30},
	"tertiary":                {keyTertiary, 80, 40},
	"onTertiary":              {keyTertiary, 20, 100},
	"tertiaryContainer":       {keyTertiary, 30, 90},
	"onTertiaryContainer":     {keyTertiary, 90, 10},
	"tertiaryFixed":           {keyTertiary, 90, 90},
	"onTertiaryFixed":         {keyTertiary, 10, 10},
	"tertiaryFixedDim":        {keyTertiary, 80, 80},
	"onTertiaryFixedVariant":  {keyTertiary, 30, 30},
	"error":                   {keyError, 80, 40},
	"onError":                 {keyError, 20, 100},
	"errorContainer":          {keyError, 30, 90},
	"onErrorContainer":        {keyError, 90, 10},
	"background":              {keyNeutral, 6, 98},
	"onBackground":            {keyNeutral, 90, 10},
	"surface":                 {keyNeutral, 6, 98},
	"onSurface":               {keyNeutral, 90, 10},
	"surfaceDim":              {keyNeutral, 6, 87},
	"surfaceBright":           {keyNeutral, 24, 98},
	"surfaceContainerLowest":  {keyNeutral, 4, 100},
	"surfaceContainerLow":     {keyNeutral, 10, 96},
	"surfaceContainer":        {keyNeutral, 12, 94},
	"surfaceContainerHigh":    {keyNeutral, 17, 92},
	"surfaceContainerHighest": {keyNeutral, 22, 90},
	"inverseSurface":          {keyNeutral, 90, 20},
	"inverseOnSurface":        {keyNeutral, 20, 95},
	"shadow":                  {keyNeutral, 0, 0},
	"scrim":                   {keyNeutral, 0, 0},
	"surfaceVariant":          {keyNeutralVariant, 30, 90},
	"onSurfaceVariant":        {keyNeutralVariant, 80, 30},
	"outline":                 {keyNeutralVariant, 60, 50},
	"outlineVariant":          {keyNeutralVariant, 30, 80},
}

// errorSeed is the Material baseline error hue.
const errorSeed color.Color = "#b3261e"

// Derive builds a full role set from one seed colour. The key palettes are
// HSV variations of the seed; each role is the key colour moved to its
// Material tone.
func Derive(name string, seed color.Color, light bool) (Scheme, error) {
	seed, err := color.Parse(string(seed))
	if err != nil {
		return Scheme{}, fmt.Errorf("derive %s: %w", name, err)
	}

	hsv := color.RGBToHSV(color.ToRGB(seed))
	tertiaryH := math.Mod(hsv.H+1.0/6.0, 1.0)

	keys := map[string]color.Color{
		keyPrimary:        color.FromHSV(color.HSV{H: hsv.H, S: math.Max(hsv.S, 0.48), V: hsv.V}),
		keySecondary:      color.FromHSV(color.HSV{H: hsv.H, S: hsv.S * 0.35, V: hsv.V}),
		keyTertiary:       color.FromHSV(color.HSV{H: tertiaryH, S: math.Max(hsv.S*0.6, 0.3), V: hsv.V}),
		keyError:          errorSeed,
		keyNeutral:        color.FromHSV(color.HSV{H: hsv.H, S: hsv.S * 0.08, V: hsv.V}),
		keyNeutralVariant: color.FromHSV(color.HSV{H: hsv.H, S: hsv.S * 0.16, V: hsv.V}),
	}

	roles := make(map[string]color.Color, len(roleTones))
	for role, spec := range roleTones {
		tone := spec.dark
		if light {
			tone = spec.light
		}
		c, err := color.Tone(keys[spec.key], tone)
		if err != nil {
			return Scheme{}, fmt.Errorf("derive %s role %s: %w", name, role, err)
		}
		roles[role] = c
	}

	return New(name, roles), nil
}
