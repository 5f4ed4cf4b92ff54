package theme

import "github.com/AvengeMedia/switcher/internal/color"

// Rule is one tokenColors entry. Scope may be a comma separated scope list,
// the editor resolves it.
type Rule struct {
	Scope    string   `json:"scope"`
	Settings Settings `json:"settings"`
}

// Settings.FontStyle is nil when no style was given. An explicit empty style
// is kept and emitted as "".
type Settings struct {
	Foreground color.Color `json:"foreground"`
	FontStyle  *string     `json:"fontStyle,omitempty"`
}

// Token builds a syntax rule. Only the first fontStyle argument is used.
func Token(scope string, fg color.Color, fontStyle ...string) Rule {
	r := Rule{
		Scope:    scope,
		Settings: Settings{Foreground: fg},
	}
	if len(fontStyle) > 0 {
		style := fontStyle[0]
		r.Settings.FontStyle = &style
	}
	return r
}

// Concat joins rule lists in order.
func Concat(lists ...[]Rule) []Rule {
	size := 0
	for _, l := range lists {
		size += len(l)
	}

	out := make([]Rule, 0, size)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
