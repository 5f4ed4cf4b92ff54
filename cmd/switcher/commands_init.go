package main

import (
	"github.com/AvengeMedia/switcher/internal/config"
	"github.com/AvengeMedia/switcher/internal/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long:  "Write the default settings to a YAML config file (./" + config.DefaultFile + " unless a path is given)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) {
	path := config.DefaultFile
	if len(args) == 1 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	fs := afero.NewOsFs()
	exists, err := afero.Exists(fs, path)
	if err != nil {
		log.Fatalf("Error checking %s: %v", path, err)
	}
	if exists && !force {
		log.Fatalf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Save(fs, path, config.Default()); err != nil {
		log.Fatalf("Error writing config: %v", err)
	}
	log.Infof("Wrote %s", path)
}
