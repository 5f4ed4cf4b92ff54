package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/scheme"
	"github.com/AvengeMedia/switcher/internal/theme"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "switcher.yaml"

const (
	ContrastDPS  = "dps"
	ContrastWCAG = "wcag"
)

// Config holds the build settings. The zero file reproduces the stock
// Switcher theme.
type Config struct {
	Name      string            `mapstructure:"name"`
	Author    string            `mapstructure:"author"`
	OutputDir string            `mapstructure:"output_dir"`
	Scheme    string            `mapstructure:"scheme"`
	Seed      string            `mapstructure:"seed"`
	Overrides map[string]string `mapstructure:"overrides"`
	Languages []string          `mapstructure:"languages"`
	Terminal  TerminalConfig    `mapstructure:"terminal"`
	LogLevel  string            `mapstructure:"log_level"`
}

// TerminalConfig controls the optional seed derived ANSI palette.
type TerminalConfig struct {
	Derive   bool   `mapstructure:"derive"`
	Contrast string `mapstructure:"contrast"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "Switcher")
	v.SetDefault("author", "Isaac Poole")
	v.SetDefault("output_dir", "dist")
	v.SetDefault("scheme", scheme.Dark)
	v.SetDefault("seed", "")
	v.SetDefault("languages", theme.DefaultLanguages)
	v.SetDefault("terminal.derive", false)
	v.SetDefault("terminal.contrast", ContrastDPS)
	v.SetDefault("log_level", "info")
}

// Default returns the configuration used when no file is present.
func Default() Config {
	c, err := decode(newViper(afero.NewMemMapFs()))
	if err != nil {
		panic(err)
	}
	return c
}

func newViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")
	setDefaults(v)
	return v
}

// Load reads path from fs on top of the defaults. An empty path looks for
// DefaultFile in the working directory and is not an error when absent; an
// explicit path must exist.
func Load(fs afero.Fs, path string) (Config, error) {
	v := newViper(fs)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", v.ConfigFileUsed(), err)
	}
	return c, nil
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg as YAML to path, for `switcher init`.
func Save(fs afero.Fs, path string, cfg Config) error {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")
	v.Set("name", cfg.Name)
	v.Set("author", cfg.Author)
	v.Set("output_dir", cfg.OutputDir)
	v.Set("scheme", cfg.Scheme)
	v.Set("seed", cfg.Seed)
	v.Set("overrides", cfg.Overrides)
	v.Set("languages", cfg.Languages)
	v.Set("terminal.derive", cfg.Terminal.Derive)
	v.Set("terminal.contrast", cfg.Terminal.Contrast)
	v.Set("log_level", cfg.LogLevel)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports the first setting that cannot produce a theme. Override
// role names are checked at build time against the selected scheme.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if c.Scheme != scheme.Dark && c.Scheme != scheme.Light {
		return fmt.Errorf("scheme %q must be %q or %q", c.Scheme, scheme.Dark, scheme.Light)
	}
	if c.Seed != "" {
		if _, err := color.Parse(c.Seed); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	roles := make([]string, 0, len(c.Overrides))
	for role := range c.Overrides {
		roles = append(roles, role)
	}
	slices.Sort(roles)
	for _, role := range roles {
		if _, err := color.Parse(c.Overrides[role]); err != nil {
			return fmt.Errorf("override %s: %w", role, err)
		}
	}

	known := theme.Languages()
	for _, lang := range c.Languages {
		if _, ok := known[lang]; !ok {
			return fmt.Errorf("unknown language %q (available: %v)", lang, theme.LanguageNames())
		}
	}

	switch c.Terminal.Contrast {
	case ContrastDPS, ContrastWCAG:
	default:
		return fmt.Errorf("terminal.contrast %q must be %q or %q", c.Terminal.Contrast, ContrastDPS, ContrastWCAG)
	}
	return nil
}

// IsLight reports whether the selected scheme is the light variant.
func (c Config) IsLight() bool {
	return c.Scheme == scheme.Light
}

// SemanticClass is the VS Code class string, e.g. theme.dark.switcher.
func (c Config) SemanticClass() string {
	return fmt.Sprintf("theme.%s.%s", c.Scheme, strings.ToLower(strings.ReplaceAll(c.Name, " ", "-")))
}
