package scheme

import (
	"fmt"

	"github.com/AvengeMedia/switcher/internal/color"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	Dark  = "dark"
	Light = "light"
)

// Ramp is a tonal scale keyed by weight (100, 200, ... 900).
type Ramp map[int]color.Color

// Palette is every scheme and ramp the theme tables may reference.
type Palette struct {
	schemes map[string]Scheme
	ramps   map[string]Ramp
}

func NewPalette(schemes []Scheme, ramps map[string]Ramp) Palette {
	p := Palette{
		schemes: make(map[string]Scheme, len(schemes)),
		ramps:   make(map[string]Ramp, len(ramps)),
	}
	for _, s := range schemes {
		p.schemes[s.Name()] = s
	}
	for name, r := range ramps {
		p.ramps[name] = maps.Clone(r)
	}
	return p
}

// Default builds the Switcher palette.
func Default() Palette {
	return NewPalette(
		[]Scheme{New(Dark, darkRoles()), New(Light, lightRoles())},
		map[string]Ramp{"pinks": pinks()},
	)
}

func (p Palette) Scheme(name string) (Scheme, error) {
	s, ok := p.schemes[name]
	if !ok {
		return Scheme{}, fmt.Errorf("unknown scheme %q (available: %v)", name, p.SchemeNames())
	}
	return s, nil
}

func (p Palette) SchemeNames() []string {
	names := make([]string, 0, len(p.schemes))
	for name := range p.schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// WithScheme returns a copy of p with s added or replaced.
func (p Palette) WithScheme(s Scheme) Palette {
	schemes := make([]Scheme, 0, len(p.schemes)+1)
	for _, name := range p.SchemeNames() {
		if name != s.Name() {
			schemes = append(schemes, p.schemes[name])
		}
	}
	return NewPalette(append(schemes, s), p.ramps)
}

func (p Palette) Shade(ramp string, weight int) (color.Color, bool) {
	r, ok := p.ramps[ramp]
	if !ok {
		return "", false
	}
	c, ok := r[weight]
	return c, ok
}

func (p Palette) MustShade(ramp string, weight int) color.Color {
	c, ok := p.Shade(ramp, weight)
	if !ok {
		panic(fmt.Sprintf("palette has no shade %s[%d]", ramp, weight))
	}
	return c
}
