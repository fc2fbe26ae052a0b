package cmd

import (
	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/alexiusacademia/gocurve/internal/section"
	"github.com/spf13/cobra"
)

var (
	rectRi      float64
	rectB       float64
	rectT       float64
	rectMoment  float64
	rectForce   float64
	rectArm     float64
	rectSamples int
	rectOut     curvedOutput
)

var curvedRectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Analyze a rectangular curved-beam section",
	Long: `Compute the Winkler-Bach stress distribution for a rectangular
section of width b and radial thickness t, with inner radius ri.

Examples:
  # 20x20 mm section at ri = 50 mm under M = 1000 (consistent units)
  gocurve curved rect --ri 0.05 -b 0.02 -t 0.02 --moment 1000

  # Load given as a force on a lever arm, with terminal diagrams
  gocurve curved rect --ri 0.05 -b 0.02 -t 0.02 --force 500 --arm 2 --diagram`,
	Run: runCurvedRect,
}

func init() {
	curvedCmd.AddCommand(curvedRectCmd)

	curvedRectCmd.Flags().Float64Var(&rectRi, "ri", 0, "Inner-surface radius [required]")
	curvedRectCmd.Flags().Float64VarP(&rectB, "width", "b", 0, "Section width b [required]")
	curvedRectCmd.Flags().Float64VarP(&rectT, "thickness", "t", 0, "Radial thickness t [required]")
	curvedRectCmd.Flags().Float64VarP(&rectMoment, "moment", "m", 0, "Applied bending moment M")
	curvedRectCmd.Flags().Float64Var(&rectForce, "force", 0, "Applied force P (used with --arm)")
	curvedRectCmd.Flags().Float64Var(&rectArm, "arm", 0, "Lever arm d for --force")
	curvedRectCmd.Flags().IntVar(&rectSamples, "samples", 0, "Number of stress samples (default 201)")
	rectOut.addOutputFlags(curvedRectCmd)

	curvedRectCmd.MarkFlagRequired("ri")
	curvedRectCmd.MarkFlagRequired("width")
	curvedRectCmd.MarkFlagRequired("thickness")
}

func runCurvedRect(cmd *cobra.Command, args []string) {
	m, p, d := loadFromFlags(cmd, rectMoment, rectForce, rectArm)
	runCurved(curved.Input{
		Shape:   section.Rectangular,
		RInner:  rectRi,
		Params:  section.Params{"b": rectB, "t": rectT},
		M:       m,
		P:       p,
		D:       d,
		Samples: rectSamples,
	}, rectOut)
}
