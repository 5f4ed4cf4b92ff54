package theme

import (
	"fmt"

	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/scheme"
	"golang.org/x/exp/slices"
)

// RuleSet builds the syntax rules for one language.
type RuleSet func(s scheme.Scheme, p scheme.Palette) []Rule

// DefaultLanguages is the order the language rules are appended in.
var DefaultLanguages = []string{"python", "react", "html", "json", "yaml"}

// Languages returns the known language rule sets by name.
func Languages() map[string]RuleSet {
	return map[string]RuleSet{
		"python": Python,
		"react":  React,
		"html":   HTML,
		"json":   JSON,
		"yaml":   YAML,
	}
}

// LanguageNames returns the registered names, sorted.
func LanguageNames() []string {
	registry := Languages()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TokenColors concatenates the generic rules with the named language rules
// in the order given. Language rules come later so they win over the
// generic scopes.
func TokenColors(s scheme.Scheme, p scheme.Palette, names ...string) ([]Rule, error) {
	registry := Languages()
	lists := [][]Rule{Generic(s)}
	for _, name := range names {
		build, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown language %q (available: %v)", name, LanguageNames())
		}
		lists = append(lists, build(s, p))
	}
	return Concat(lists...), nil
}

func Python(s scheme.Scheme, _ scheme.Palette) []Rule {
	r := s.MustRole
	return []Rule{
		Token("keyword.control.import.python", r("primary")),
		Token("variable.language.special.self.python", r("secondary"), "italic"),
		Token("variable.parameter.function.language.special.self.python", r("secondary"), "italic"),
		Token("meta.attribute.python", r("primary"), "italic"),
		Token("entity.name.type.class.python", r("primary"), "bold"),
	}
}

// React covers JSX and TSX.
func React(s scheme.Scheme, _ scheme.Palette) []Rule {
	r := s.MustRole
	return []Rule{
		Token("support.class.component", r("onPrimaryContainer"), "bold"),
		Token("entity.name.tag", r("onPrimaryContainer")),
		Token("entity.other.attribute-name", r("secondary"), "italic"),
		Token("punctuation.definition.tag", r("onPrimaryContainer")),
	}
}

func HTML(_ scheme.Scheme, p scheme.Palette) []Rule {
	pink := p.MustShade("pinks", 200)
	return []Rule{
		Token("punctuation.separator.key-value.html", pink),
		Token("meta.tag.structure.any.html, meta.tag.inline.any.html", pink),
	}
}

// JSON clears the italic the generic support.type rule puts on property
// names.
func JSON(s scheme.Scheme, _ scheme.Palette) []Rule {
	r := s.MustRole
	return []Rule{
		Token("support.type.property-name.json", r("primary"), ""),
		Token("source.json string", r("onPrimaryContainer")),
		Token("source.json punctuation.separator, source.json punctuation.definition.dictionary, source.json punctuation.definition.array",
			color.MustAlpha(r("primary"), color.OpacityInactive)),
	}
}

func YAML(s scheme.Scheme, _ scheme.Palette) []Rule {
	r := s.MustRole
	return []Rule{
		Token("entity.name.tag.yaml", r("onPrimaryContainer")),
		Token("source.yaml string", r("onSecondaryContainer")),
		Token("source.yaml punctuation.separator, source.yaml punctuation.definition.sequence", r("onTertiaryContainer")),
	}
}
