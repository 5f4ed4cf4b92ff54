package theme

import "github.com/AvengeMedia/switcher/internal/color"

// Value is a workbench colour slot: either Set to a colour or Unset, which
// leaves the slot to the editor's default and is dropped before emission.
type Value struct {
	color color.Color
	set   bool
}

// Unset marks a slot that is intentionally not themed.
var Unset = Value{}

func Set(c color.Color) Value {
	return Value{color: c, set: true}
}

func (v Value) Color() (color.Color, bool) {
	return v.color, v.set
}

func (v Value) IsSet() bool {
	return v.set
}

func (v Value) String() string {
	if !v.set {
		return "unset"
	}
	return string(v.color)
}
