package main

import (
	"github.com/AvengeMedia/switcher/internal/build"
	"github.com/AvengeMedia/switcher/internal/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the theme JSON",
	Long:  "Assemble the workbench colours and token rules and write the theme to <output_dir>/<name>.json",
	Args:  cobra.NoArgs,
	Run:   runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "Output directory (overrides output_dir)")
}

func runBuild(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	if cmd.Flags().Lookup("output") != nil {
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			cfg.OutputDir = out
		}
	}

	res, err := build.Build(cmd.Context(), cfg, afero.NewOsFs())
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}

	log.Infof("Build finished: %s (%d colors, %d token rules)", res.Path, res.Colors, res.Rules)
}
