package build

import (
	"cmp"
	"fmt"

	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/theme"
	"golang.org/x/exp/slices"
)

// Finding is a token rule whose foreground is hard to read on the editor
// background.
type Finding struct {
	Scope      string
	Foreground color.Color
	Ratio      float64
}

// Check measures every token rule against colors["editor.background"]. A
// translucent foreground is composited over the background first. Findings
// are ordered worst first.
func Check(doc theme.Document, minRatio float64) ([]Finding, error) {
	bg, ok := doc.Colors["editor.background"]
	if !ok {
		return nil, fmt.Errorf("theme %s has no editor.background", doc.Name)
	}
	if !bg.Opaque() {
		return nil, fmt.Errorf("editor.background %s is not opaque", bg)
	}

	var findings []Finding
	for _, rule := range doc.TokenColors {
		fg, err := color.Blend(rule.Settings.Foreground, bg)
		if err != nil {
			return nil, fmt.Errorf("scope %q: %w", rule.Scope, err)
		}
		ratio := color.ContrastRatio(fg, bg)
		if ratio < minRatio {
			findings = append(findings, Finding{
				Scope:      rule.Scope,
				Foreground: rule.Settings.Foreground,
				Ratio:      ratio,
			})
		}
	}

	slices.SortStableFunc(findings, func(a, b Finding) int {
		return cmp.Compare(a.Ratio, b.Ratio)
	})
	return findings, nil
}
