// Package scheme holds the palette a theme is derived from: named schemes of
// Material colour roles plus tonal ramps.
package scheme

import (
	"fmt"

	"github.com/AvengeMedia/switcher/internal/color"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Scheme maps role names such as "primary" or "onSurface" to colours. It is
// never mutated after New returns.
type Scheme struct {
	name  string
	roles map[string]color.Color
}

func New(name string, roles map[string]color.Color) Scheme {
	return Scheme{name: name, roles: copyRoles(roles)}
}

func (s Scheme) Name() string {
	return s.name
}

func (s Scheme) Role(role string) (color.Color, bool) {
	c, ok := s.roles[role]
	return c, ok
}

// MustRole is for the static theme tables, a missing role is a programming
// error there.
func (s Scheme) MustRole(role string) color.Color {
	c, ok := s.roles[role]
	if !ok {
		panic(fmt.Sprintf("scheme %q has no role %q", s.name, role))
	}
	return c
}

// Roles returns the role names in sorted order.
func (s Scheme) Roles() []string {
	keys := make([]string, 0, len(s.roles))
	for k := range s.roles {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// WithOverrides returns a new scheme with the given roles replaced. Values
// are parsed, so short and uppercase hex forms are accepted.
func (s Scheme) WithOverrides(overrides map[string]string) (Scheme, error) {
	roles := copyRoles(s.roles)
	for role, value := range overrides {
		c, err := color.Parse(value)
		if err != nil {
			return Scheme{}, fmt.Errorf("override %s: %w", role, err)
		}
		roles[role] = c
	}
	return Scheme{name: s.name, roles: roles}, nil
}

func copyRoles(in map[string]color.Color) map[string]color.Color {
	out := make(map[string]color.Color, len(in))
	maps.Copy(out, in)
	return out
}
