package scheme

import (
	"testing"

	"github.com/AvengeMedia/switcher/internal/color"
)

func TestANSI(t *testing.T) {
	tests := []struct {
		name string
		base color.Color
		opts ANSIOptions
	}{
		{
			name: "dark theme default",
			base: "#625690",
			opts: ANSIOptions{IsLight: false},
		},
		{
			name: "light theme default",
			base: "#625690",
			opts: ANSIOptions{IsLight: true},
		},
		{
			name: "dark theme with honor primary",
			base: "#625690",
			opts: ANSIOptions{
				IsLight:      false,
				HonorPrimary: "#ff6600",
			},
		},
		{
			name: "light theme with custom background",
			base: "#625690",
			opts: ANSIOptions{
				IsLight:    true,
				Background: "#fafafa",
			},
		},
		{
			name: "dark theme with all options",
			base: "#625690",
			opts: ANSIOptions{
				IsLight:      false,
				HonorPrimary: "#ff6600",
				Background:   "#0a0a0a",
				UseDPS:       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ANSI(tt.base, tt.opts)

			if len(result) != 16 {
				t.Fatalf("ANSI returned %d colors, expected 16", len(result))
			}

			for i, c := range result {
				if len(c) != 7 || c[0] != '#' || !c.Valid() {
					t.Errorf("Color at index %d (%s) is not a valid hex color", i, c)
				}
			}

			if tt.opts.Background != "" && result[0] != tt.opts.Background {
				t.Errorf("Background color = %s, expected %s", result[0], tt.opts.Background)
			} else if !tt.opts.IsLight && tt.opts.Background == "" && result[0] != "#1a1a1a" {
				t.Errorf("Dark mode background = %s, expected #1a1a1a", result[0])
			} else if tt.opts.IsLight && tt.opts.Background == "" && result[0] != "#f8f8f8" {
				t.Errorf("Light mode background = %s, expected #f8f8f8", result[0])
			}

			if tt.opts.IsLight && result[15] != "#1a1a1a" {
				t.Errorf("Light mode foreground = %s, expected #1a1a1a", result[15])
			} else if !tt.opts.IsLight && result[15] != "#ffffff" {
				t.Errorf("Dark mode foreground = %s, expected #ffffff", result[15])
			}
		})
	}
}

func TestANSIContrast(t *testing.T) {
	opts := ANSIOptions{IsLight: false}
	result := ANSI("#625690", opts)

	for _, i := range []int{1, 2, 3} {
		if ratio := color.ContrastRatio(result[i], result[0]); ratio < 4.5 {
			t.Errorf("color%d %s has contrast %f against %s, expected >= 4.5", i, result[i], ratio, result[0])
		}
	}
}
