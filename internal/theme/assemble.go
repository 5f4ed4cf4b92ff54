package theme

import "github.com/AvengeMedia/switcher/internal/color"

// Group is a named table of workbench keys, e.g. "editor" or "statusBar".
type Group struct {
	Name   string
	Colors map[string]Value
}

// Merge folds groups left to right. A key declared again in a later group
// replaces the earlier value, including with Unset.
func Merge(groups ...Group) map[string]Value {
	size := 0
	for _, g := range groups {
		size += len(g.Colors)
	}

	merged := make(map[string]Value, size)
	for _, g := range groups {
		for key, v := range g.Colors {
			merged[key] = v
		}
	}
	return merged
}

// Prune drops every Unset slot and returns the plain colour map.
func Prune(values map[string]Value) map[string]color.Color {
	out := make(map[string]color.Color, len(values))
	for key, v := range values {
		if c, ok := v.Color(); ok {
			out[key] = c
		}
	}
	return out
}

// Assemble is Prune(Merge(groups...)).
func Assemble(groups ...Group) map[string]color.Color {
	return Prune(Merge(groups...))
}
