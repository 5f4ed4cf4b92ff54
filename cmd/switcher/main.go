package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/AvengeMedia/switcher/internal/config"
	"github.com/AvengeMedia/switcher/internal/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "switcher",
	Short:   "Build the Switcher VS Code colour theme",
	Long:    "Generate the Switcher VS Code colour theme JSON from its palette and write it to <output_dir>/<name>.json",
	Version: Version,
	Args:    cobra.NoArgs,
	Run:     runBuild,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(buildCmd, paletteCmd, checkCmd, initCmd)
}

// loadConfig reads the config named by --config and applies the log level.
func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(afero.NewOsFs(), path)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	if err := log.SetLevel(level); err != nil {
		log.Fatalf("Invalid log level %q: %v", level, err)
	}
	return cfg
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
