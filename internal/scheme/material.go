package scheme

import "github.com/AvengeMedia/switcher/internal/color"

// Material 3 baseline roles for the Switcher violet seed.

func darkRoles() map[string]color.Color {
	return map[string]color.Color{
		"primary":                 "#d0bcff",
		"onPrimary":               "#381e72",
		"primaryContainer":        "#4f378b",
		"onPrimaryContainer":      "#eaddff",
		"secondary":               "#ccc2dc",
		"onSecondary":             "#332d41",
		"secondaryContainer":      "#4a4458",
		"onSecondaryContainer":    "#e8def8",
		"tertiary":                "#efb8c8",
		"onTertiary":              "#492532",
		"tertiaryContainer":       "#633b48",
		"onTertiaryContainer":     "#ffd8e4",
		"error":                   "#f2b8b5",
		"onError":                 "#601410",
		"errorContainer":          "#8c1d18",
		"onErrorContainer":        "#f9dedc",
		"background":              "#141218",
		"onBackground":            "#e6e0e9",
		"surface":                 "#141218",
		"onSurface":               "#e6e0e9",
		"surfaceVariant":          "#49454f",
		"onSurfaceVariant":        "#cac4d0",
		"outline":                 "#938f99",
		"outlineVariant":          "#49454f",
		"shadow":                  "#000000",
		"scrim":                   "#000000",
		"inverseSurface":          "#e6e0e9",
		"inverseOnSurface":        "#322f35",
		"inversePrimary":          "#6750a4",
		"primaryFixed":            "#eaddff",
		"onPrimaryFixed":          "#21005d",
		"primaryFixedDim":         "#d0bcff",
		"onPrimaryFixedVariant":   "#4f378b",
		"secondaryFixed":          "#e8def8",
		"onSecondaryFixed":        "#1d192b",
		"secondaryFixedDim":       "#ccc2dc",
		"onSecondaryFixedVariant": "#4a4458",
		"tertiaryFixed":           "#ffd8e4",
		"onTertiaryFixed":         "#31111d",
		"tertiaryFixedDim":        "#efb8c8",
		"onTertiaryFixedVariant":  "#633b48",
		"surfaceDim":              "#141218",
		"surfaceBright":           "#3b383e",
		"surfaceContainerLowest":  "#0f0d13",
		"surfaceContainerLow":     "#1d1b20",
		"surfaceContainer":        "#211f26",
		"surfaceContainerHigh":    "#2b2930",
		"surfaceContainerHighest": "#36343b",
	}
}

func lightRoles() map[string]color.Color {
	return map[string]color.Color{
		"primary":                 "#6750a4",
		"onPrimary":               "#ffffff",
		"primaryContainer":        "#eaddff",
		"onPrimaryContainer":      "#21005d",
		"secondary":               "#625b71",
		"onSecondary":             "#ffffff",
		"secondaryContainer":      "#e8def8",
		"onSecondaryContainer":    "#1d192b",
		"tertiary":                "#7d5260",
		"onTertiary":              "#ffffff",
		"tertiaryContainer":       "#ffd8e4",
		"onTertiaryContainer":     "#31111d",
		"error":                   "#b3261e",
		"onError":                 "#ffffff",
		"errorContainer":          "#f9dedc",
		"onErrorContainer":        "#410e0b",
		"background":              "#fef7ff",
		"onBackground":            "#1d1b20",
		"surface":                 "#fef7ff",
		"onSurface":               "#1d1b20",
		"surfaceVariant":          "#e7e0ec",
		"onSurfaceVariant":        "#49454f",
		"outline":                 "#79747e",
		"outlineVariant":          "#cac4d0",
		"shadow":                  "#000000",
		"scrim":                   "#000000",
		"inverseSurface":          "#322f35",
		"inverseOnSurface":        "#f5eff7",
		"inversePrimary":          "#d0bcff",
		"primaryFixed":            "#eaddff",
		"onPrimaryFixed":          "#21005d",
		"primaryFixedDim":         "#d0bcff",
		"onPrimaryFixedVariant":   "#4f378b",
		"secondaryFixed":          "#e8def8",
		"onSecondaryFixed":        "#1d192b",
		"secondaryFixedDim":       "#ccc2dc",
		"onSecondaryFixedVariant": "#4a4458",
		"tertiaryFixed":           "#ffd8e4",
		"onTertiaryFixed":         "#31111d",
		"tertiaryFixedDim":        "#efb8c8",
		"onTertiaryFixedVariant":  "#633b48",
		"surfaceDim":              "#ded8e1",
		"surfaceBright":           "#fef7ff",
		"surfaceContainerLowest":  "#ffffff",
		"surfaceContainerLow":     "#f7f2fa",
		"surfaceContainer":        "#f3edf7",
		"surfaceContainerHigh":    "#ece6f0",
		"surfaceContainerHighest": "#e6e0e9",
	}
}

func pinks() Ramp {
	return Ramp{
		100: "#f8bbd0",
		200: "#f48fb1",
		300: "#f06292",
		400: "#ec407a",
		500: "#e91e63",
		600: "#d81b60",
		700: "#c2185b",
		800: "#ad1457",
		900: "#880e4f",
	}
}
