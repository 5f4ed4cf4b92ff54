// Package build turns a Config into the theme document and writes it.
package build

import (
	"context"
	"fmt"
	"strings"

	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/config"
	"github.com/AvengeMedia/switcher/internal/log"
	"github.com/AvengeMedia/switcher/internal/scheme"
	"github.com/AvengeMedia/switcher/internal/theme"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
)

const colorSpace = "sRGB"

// Result describes one emitted theme.
type Result struct {
	Path     string
	Colors   int
	Pruned   int
	Rules    int
	Document theme.Document
}

// Palette returns the palette and the scheme selected by cfg, with the seed
// and overrides applied.
func Palette(cfg config.Config) (scheme.Palette, scheme.Scheme, error) {
	p := scheme.Default()

	if cfg.Seed != "" {
		derived, err := scheme.Derive(cfg.Scheme, color.Color(cfg.Seed), cfg.IsLight())
		if err != nil {
			return scheme.Palette{}, scheme.Scheme{}, err
		}
		log.Debugf("Derived %s scheme from seed %s", cfg.Scheme, cfg.Seed)
		p = p.WithScheme(derived)
	}

	s, err := p.Scheme(cfg.Scheme)
	if err != nil {
		return scheme.Palette{}, scheme.Scheme{}, err
	}

	if len(cfg.Overrides) > 0 {
		overrides, err := resolveRoles(s, cfg.Overrides)
		if err != nil {
			return scheme.Palette{}, scheme.Scheme{}, err
		}
		if s, err = s.WithOverrides(overrides); err != nil {
			return scheme.Palette{}, scheme.Scheme{}, err
		}
		p = p.WithScheme(s)
	}
	return p, s, nil
}

// resolveRoles maps override keys onto role names case-insensitively; viper
// lowercases map keys read from a file.
func resolveRoles(s scheme.Scheme, overrides map[string]string) (map[string]string, error) {
	byFold := make(map[string]string, len(s.Roles()))
	for _, role := range s.Roles() {
		byFold[strings.ToLower(role)] = role
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make(map[string]string, len(overrides))
	for _, k := range keys {
		role, ok := byFold[strings.ToLower(k)]
		if !ok {
			return nil, fmt.Errorf("override %q: scheme %s has no such role", k, s.Name())
		}
		out[role] = overrides[k]
	}
	return out, nil
}

// Compose assembles the document without writing it.
func Compose(cfg config.Config) (Result, error) {
	p, s, err := Palette(cfg)
	if err != nil {
		return Result{}, err
	}

	groups := theme.Workbench(s)
	if cfg.Terminal.Derive {
		ansi := scheme.ANSI(s.MustRole("primary"), scheme.ANSIOptions{
			IsLight:    cfg.IsLight(),
			Background: s.MustRole("surfaceContainerHigh"),
			UseDPS:     cfg.Terminal.Contrast == config.ContrastDPS,
		})
		groups = append(groups, theme.DerivedTerminal(ansi))
	}

	merged := theme.Merge(groups...)
	colors := theme.Prune(merged)

	rules, err := theme.TokenColors(s, p, cfg.Languages...)
	if err != nil {
		return Result{}, err
	}

	doc := theme.NewDocument(theme.Meta{
		Author:         cfg.Author,
		Name:           cfg.Name,
		ColorSpaceName: colorSpace,
		SemanticClass:  cfg.SemanticClass(),
	}, colors, rules)

	return Result{
		Path:     theme.Output(cfg.OutputDir, cfg.Name),
		Colors:   len(colors),
		Pruned:   len(merged) - len(colors),
		Rules:    len(rules),
		Document: doc,
	}, nil
}

// Build composes the theme for cfg and writes it to fs. Nothing is written
// once ctx is done.
func Build(ctx context.Context, cfg config.Config, fs afero.Fs) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}

	res, err := Compose(cfg)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := theme.NewEmitter(fs).Emit(res.Document, res.Path); err != nil {
		return Result{}, err
	}

	log.Debugf("Pruned %d unset keys", res.Pruned)
	return res, nil
}
