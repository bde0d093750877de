package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/beamcalc/internal/logging"
	"github.com/alexiusacademia/beamcalc/internal/version"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "beamcalc",
	Short: "Beam Statics Calculator",
	Long: `beamcalc - Go Beam Statics Calculator

A CLI tool for the static analysis of single-span beams.

This tool helps structural engineers:
  - Compute support reactions of cantilevers and beams on two supports
  - Evaluate shear force and bending moment anywhere along the beam
  - Draw load, shear and moment diagrams (terminal, PNG, SVG, PDF)
  - Find the governing NSCP 2015 load combination
  - Produce PDF calculation reports

Loads are entered with flags, YAML/JSON beam files or XLSX load sheets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beamcalc v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Beam Statics Calculator                              ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Static analysis of cantilevers and beams on two supports.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Support reactions by static equilibrium")
		fmt.Println("    • Shear force and bending moment diagrams")
		fmt.Println("    • Governing NSCP 2015 load combination")
		fmt.Println("    • PDF reports and an HTTP API")
		fmt.Println()
		fmt.Println("  Use 'beamcalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed "Error: ..."
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
