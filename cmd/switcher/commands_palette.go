package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AvengeMedia/switcher/internal/build"
	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/config"
	"github.com/AvengeMedia/switcher/internal/log"
	"github.com/AvengeMedia/switcher/internal/scheme"
	"github.com/AvengeMedia/switcher/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the scheme roles",
	Long:  "Print every role of the selected scheme as a colour swatch, or as YAML overrides with --yaml",
	Args:  cobra.NoArgs,
	Run:   runPalette,
}

func init() {
	paletteCmd.Flags().Bool("ansi", false, "Show the derived 16 colour terminal palette instead")
	paletteCmd.Flags().Bool("yaml", false, "Print the roles as a YAML overrides block")
}

func runPalette(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	showANSI, _ := cmd.Flags().GetBool("ansi")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	_, s, err := build.Palette(cfg)
	if err != nil {
		log.Fatalf("Error building palette: %v", err)
	}

	var names []string
	var colors []color.Color
	if showANSI {
		colors = scheme.ANSI(s.MustRole("primary"), scheme.ANSIOptions{
			IsLight:    cfg.IsLight(),
			Background: s.MustRole("surfaceContainerHigh"),
			UseDPS:     cfg.Terminal.Contrast == config.ContrastDPS,
		})
		names = theme.ANSIKeys
	} else {
		names = s.Roles()
		for _, role := range names {
			colors = append(colors, s.MustRole(role))
		}
	}

	if asYAML {
		if err := writeOverrides(os.Stdout, names, colors); err != nil {
			log.Fatalf("Error encoding YAML: %v", err)
		}
		return
	}

	fmt.Print(renderSwatches(names, colors))
}

// writeOverrides emits a block that can be pasted into the config file.
func writeOverrides(w io.Writer, names []string, colors []color.Color) error {
	overrides := make(map[string]string, len(names))
	for i, name := range names {
		overrides[name] = string(colors[i])
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Overrides map[string]string `yaml:"overrides"`
	}{overrides}); err != nil {
		return err
	}
	return enc.Close()
}

func renderSwatches(names []string, colors []color.Color) string {
	maxNameLen := 0
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	label := lipgloss.NewStyle().Width(maxNameLen + 2)
	var b strings.Builder
	for i, name := range names {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(string(colors[i]))).Render("      ")
		fmt.Fprintf(&b, "%s%s %s\n", label.Render(name), swatch, colors[i])
	}
	return b.String()
}
