package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocurve/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocurve",
	Short: "Curved Beam Stress Analysis Tool",
	Long: `gocurve - Go Curved Beam Analyzer

A CLI tool for computing bending stresses in curved beams using the
Winkler-Bach theory, with elementary straight-beam formulas included
for comparison.

This tool helps mechanical and structural engineers perform:
  - Curved-beam stress analysis for rectangular, trapezoidal,
    triangular, circular, and composite T sections
  - Neutral-axis and eccentricity calculation
  - Stress-distribution charts and PDF calculation sheets
  - Straight-beam shear, moment, and deflection checks

All lengths, forces, and moments are in whatever consistent unit
system the inputs use.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocurve v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Curved Beam Analyzer                                 ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for curved-beam bending stress analysis based on")
		fmt.Println("  the Winkler-Bach theory.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Five cross-section families, including composite T sections")
		fmt.Println("    • Neutral-axis location and eccentricity")
		fmt.Println("    • Hyperbolic stress distribution with chart export")
		fmt.Println("    • Straight-beam shear, moment, and deflection formulas")
		fmt.Println("    • JSON API server for external front ends")
		fmt.Println()
		fmt.Println("  Use 'gocurve --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
