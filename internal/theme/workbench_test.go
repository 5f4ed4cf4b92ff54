package theme

import (
	"testing"

	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbenchColorsAreValid(t *testing.T) {
	p := scheme.Default()
	for _, name := range p.SchemeNames() {
		t.Run(name, func(t *testing.T) {
			s, err := p.Scheme(name)
			require.NoError(t, err)

			for _, g := range Workbench(s) {
				for key, v := range g.Colors {
					if c, ok := v.Color(); ok {
						assert.True(t, c.Valid(), "%s/%s has invalid colour %q", g.Name, key, c)
					}
				}
			}
		})
	}
}

func TestWorkbenchOrder(t *testing.T) {
	s, err := scheme.Default().Scheme(scheme.Dark)
	require.NoError(t, err)

	groups := Workbench(s)
	require.Len(t, groups, 33)
	assert.Equal(t, "activityBar", groups[0].Name)
	assert.Equal(t, "terminal", groups[len(groups)-1].Name)
}

func TestWorkbenchAssembled(t *testing.T) {
	s, err := scheme.Default().Scheme(scheme.Dark)
	require.NoError(t, err)

	merged := Merge(Workbench(s)...)
	colors := Assemble(Workbench(s)...)

	unset := 0
	for _, v := range merged {
		if !v.IsSet() {
			unset++
		}
	}
	assert.Greater(t, unset, 0)
	assert.Len(t, colors, len(merged)-unset)

	assert.Equal(t, s.MustRole("surfaceContainer"), colors["editor.background"])
	assert.Equal(t, s.MustRole("surfaceContainerHigh"), colors["activityBar.background"])
	assert.Equal(t, colors["badge.background"], colors["activityBarBadge.background"])
	assert.NotContains(t, colors, "contrastBorder")
	assert.NotContains(t, colors, "menu.background")
}

func TestDerivedTerminalOverridesFixedColours(t *testing.T) {
	s, err := scheme.Default().Scheme(scheme.Dark)
	require.NoError(t, err)

	ansi := scheme.ANSI(s.MustRole("primary"), scheme.ANSIOptions{Background: s.MustRole("surfaceContainerHigh")})
	require.Len(t, ansi, 16)

	colors := Assemble(append(Workbench(s), DerivedTerminal(ansi))...)
	for i, key := range ANSIKeys {
		assert.Equal(t, ansi[i], colors[key], key)
	}
	assert.Equal(t, color.Color("#a8d2d4"), colors["terminal.foreground"])
}

func TestTokenColors(t *testing.T) {
	p := scheme.Default()
	s, err := p.Scheme(scheme.Dark)
	require.NoError(t, err)

	generic := Generic(s)
	rules, err := TokenColors(s, p, "json", "python")
	require.NoError(t, err)
	require.Len(t, rules, len(generic)+len(JSON(s, p))+len(Python(s, p)))

	assert.Equal(t, "comment", rules[0].Scope)
	assert.Equal(t, "support.type.property-name.json", rules[len(generic)].Scope)
	require.NotNil(t, rules[len(generic)].Settings.FontStyle)
	assert.Equal(t, "", *rules[len(generic)].Settings.FontStyle)

	for _, r := range rules {
		assert.True(t, r.Settings.Foreground.Valid(), r.Scope)
	}
}

func TestTokenColorsUnknownLanguage(t *testing.T) {
	p := scheme.Default()
	s, err := p.Scheme(scheme.Dark)
	require.NoError(t, err)

	_, err = TokenColors(s, p, "cobol")
	assert.ErrorContains(t, err, "cobol")
}

func TestHTMLUsesPinkRamp(t *testing.T) {
	p := scheme.Default()
	s, err := p.Scheme(scheme.Dark)
	require.NoError(t, err)

	for _, r := range HTML(s, p) {
		assert.Equal(t, color.Color("#f48fb1"), r.Settings.Foreground)
	}
}

func TestCommentIsTranslucent(t *testing.T) {
	s, err := scheme.Default().Scheme(scheme.Dark)
	require.NoError(t, err)

	comment := Generic(s)[0]
	assert.False(t, comment.Settings.Foreground.Opaque())
	require.NotNil(t, comment.Settings.FontStyle)
	assert.Equal(t, "italic", *comment.Settings.FontStyle)
}
