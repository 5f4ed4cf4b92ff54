package scheme

import (
	"testing"

	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestDefaultPalette(t *testing.T) {
	p := Default()
	assert.Equal(t, []string{Dark, Light}, p.SchemeNames())

	dark, err := p.Scheme(Dark)
	require.NoError(t, err)
	light, err := p.Scheme(Light)
	require.NoError(t, err)

	assert.Equal(t, dark.Roles(), light.Roles(), "dark and light must define the same roles")

	for _, s := range []Scheme{dark, light} {
		for _, role := range s.Roles() {
			c := s.MustRole(role)
			assert.True(t, c.Valid(), "%s.%s = %q is not a valid colour", s.Name(), role, c)
		}
	}

	assert.Equal(t, color.Color("#d0bcff"), dark.MustRole("primary"))
	assert.Equal(t, color.Color("#f48fb1"), p.MustShade("pinks", 200))
}

func TestDefaultCoversDerivedRoles(t *testing.T) {
	dark, err := Default().Scheme(Dark)
	require.NoError(t, err)

	for role := range roleTones {
		_, ok := dark.Role(role)
		assert.True(t, ok, "static scheme is missing %s", role)
	}
	assert.Len(t, dark.Roles(), len(roleTones))
}

func TestUnknownScheme(t *testing.T) {
	_, err := Default().Scheme("sepia")
	assert.ErrorContains(t, err, "unknown scheme")
}

func TestShadeMissing(t *testing.T) {
	p := Default()
	_, ok := p.Shade("pinks", 50)
	assert.False(t, ok)
	_, ok = p.Shade("blues", 100)
	assert.False(t, ok)
	assert.Panics(t, func() { p.MustShade("blues", 100) })
}

func TestNewCopiesInput(t *testing.T) {
	roles := map[string]color.Color{"primary": "#112233"}
	s := New("test", roles)
	roles["primary"] = "#000000"
	assert.Equal(t, color.Color("#112233"), s.MustRole("primary"))
}

func TestRolesSorted(t *testing.T) {
	s := New("test", map[string]color.Color{"b": "#000000", "a": "#000000", "c": "#000000"})
	assert.Equal(t, []string{"a", "b", "c"}, s.Roles())
	assert.True(t, slices.IsSorted(s.Roles()))
}

func TestMustRolePanics(t *testing.T) {
	s := New("test", nil)
	assert.PanicsWithValue(t, `scheme "test" has no role "primary"`, func() { s.MustRole("primary") })
}

func TestWithOverrides(t *testing.T) {
	base := New("test", map[string]color.Color{"primary": "#112233", "secondary": "#445566"})

	s, err := base.WithOverrides(map[string]string{"primary": "ABC", "tertiary": "#010203"})
	require.NoError(t, err)
	assert.Equal(t, color.Color("#aabbcc"), s.MustRole("primary"))
	assert.Equal(t, color.Color("#445566"), s.MustRole("secondary"))
	assert.Equal(t, color.Color("#010203"), s.MustRole("tertiary"))
	assert.Equal(t, color.Color("#112233"), base.MustRole("primary"))

	_, err = base.WithOverrides(map[string]string{"primary": "nope"})
	assert.ErrorIs(t, err, color.ErrInvalidHex)
}

func TestWithScheme(t *testing.T) {
	p := Default()
	custom := New(Dark, map[string]color.Color{"primary": "#123456"})

	q := p.WithScheme(custom)
	s, err := q.Scheme(Dark)
	require.NoError(t, err)
	assert.Equal(t, color.Color("#123456"), s.MustRole("primary"))
	assert.Equal(t, []string{Dark, Light}, q.SchemeNames())

	orig, err := p.Scheme(Dark)
	require.NoError(t, err)
	assert.Equal(t, color.Color("#d0bcff"), orig.MustRole("primary"))

	assert.Equal(t, p.MustShade("pinks", 500), q.MustShade("pinks", 500))
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		seed  color.Color
		light bool
	}{
		{name: "dark violet", seed: "#6750a4"},
		{name: "light violet", seed: "#6750a4", light: true},
		{name: "dark teal", seed: "#43fdd5"},
		{name: "light grey seed", seed: "#808080", light: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Derive("derived", tt.seed, tt.light)
			require.NoError(t, err)
			assert.Len(t, s.Roles(), len(roleTones))

			for _, role := range s.Roles() {
				assert.True(t, s.MustRole(role).Opaque(), "%s = %q", role, s.MustRole(role))
			}

			primary := color.Luminance(s.MustRole("primary"))
			onPrimary := color.Luminance(s.MustRole("onPrimary"))
			surface := color.Luminance(s.MustRole("surface"))
			onSurface := color.Luminance(s.MustRole("onSurface"))
			if tt.light {
				assert.Less(t, primary, onPrimary)
				assert.Greater(t, surface, onSurface)
			} else {
				assert.Greater(t, primary, onPrimary)
				assert.Less(t, surface, onSurface)
			}
			assert.Greater(t, color.ContrastRatio(s.MustRole("onSurface"), s.MustRole("surface")), 7.0)
		})
	}
}

func TestDeriveInvalidSeed(t *testing.T) {
	_, err := Derive("derived", "#12", false)
	assert.ErrorIs(t, err, color.ErrInvalidHex)
}
