package main

import (
	"fmt"

	"github.com/AvengeMedia/switcher/internal/build"
	"github.com/AvengeMedia/switcher/internal/log"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report low contrast token colours",
	Long:  "Measure each token rule's WCAG contrast against editor.background and list the rules below --min",
	Args:  cobra.NoArgs,
	Run:   runCheck,
}

func init() {
	checkCmd.Flags().Float64("min", 4.5, "Minimum contrast ratio")
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	minRatio, _ := cmd.Flags().GetFloat64("min")
	if minRatio < 1 || minRatio > 21 {
		log.Fatalf("Minimum contrast must be between 1 and 21, got %v", minRatio)
	}

	res, err := build.Compose(cfg)
	if err != nil {
		log.Fatalf("Error composing theme: %v", err)
	}

	findings, err := build.Check(res.Document, minRatio)
	if err != nil {
		log.Fatalf("Error checking theme: %v", err)
	}

	if len(findings) == 0 {
		fmt.Printf("All %d token rules meet %.1f:1\n", res.Rules, minRatio)
		return
	}

	maxScopeLen := len("Scope")
	for _, f := range findings {
		if len(f.Scope) > maxScopeLen {
			maxScopeLen = len(f.Scope)
		}
	}

	fmt.Printf("%-*s  %-10s  %s\n", maxScopeLen, "Scope", "Color", "Ratio")
	for _, f := range findings {
		fmt.Printf("%-*s  %-10s  %5.2f\n", maxScopeLen, f.Scope, f.Foreground, f.Ratio)
	}
	log.Fatalf("%d of %d token rules below %.1f:1", len(findings), res.Rules, minRatio)
}
