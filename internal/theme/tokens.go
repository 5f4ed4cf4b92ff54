package theme

import (
	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/scheme"
)

// Generic returns the language independent syntax rules.
func Generic(s scheme.Scheme) []Rule {
	r := s.MustRole
	return []Rule{
		Token("comment", color.MustAlpha(r("onSurface"), color.OpacityText), "italic"),
		Token("constant", r("onPrimaryContainer")),
		Token("entity", r("secondary"), "bold"),
		Token("invalid", r("onErrorContainer"), "italic bold underline"),
		Token("keyword", r("primary")),
		Token("markup", r("onSurface")),
		Token("storage", r("onSurface")),
		Token("string", r("onSurface")),
		Token("support", r("onSurface")),
		Token("variable", r("onSurface")),

		Token("support.type", r("onSurface"), "italic"),
		Token("keyword.control.as", r("onSurfaceVariant"), "italic"),
		Token("keyword.operator.type.asserts, keyword.operator.expression.is", r("onSurface")),
		Token("entity.name.type", r("onPrimaryContainer"), "italic"),
	}
}
