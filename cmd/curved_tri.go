package cmd

import (
	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/alexiusacademia/gocurve/internal/section"
	"github.com/spf13/cobra"
)

var (
	triRi      float64
	triBInner  float64
	triBOuter  float64
	triT       float64
	triMoment  float64
	triForce   float64
	triArm     float64
	triSamples int
	triOut     curvedOutput
)

var curvedTriCmd = &cobra.Command{
	Use:   "tri",
	Short: "Analyze a triangular curved-beam section",
	Long: `Compute the Winkler-Bach stress distribution for a triangular
section. The width varies linearly between bInner and bOuter; either
one may be zero for a true triangle, but not both.

Examples:
  # Apex at the inner surface
  gocurve curved tri --ri 0.05 --binner 0 --bouter 0.03 -t 0.02 --moment 1000`,
	Run: runCurvedTri,
}

func init() {
	curvedCmd.AddCommand(curvedTriCmd)

	curvedTriCmd.Flags().Float64Var(&triRi, "ri", 0, "Inner-surface radius [required]")
	curvedTriCmd.Flags().Float64Var(&triBInner, "binner", 0, "Width at the inner surface")
	curvedTriCmd.Flags().Float64Var(&triBOuter, "bouter", 0, "Width at the outer surface")
	curvedTriCmd.Flags().Float64VarP(&triT, "thickness", "t", 0, "Radial thickness t [required]")
	curvedTriCmd.Flags().Float64VarP(&triMoment, "moment", "m", 0, "Applied bending moment M")
	curvedTriCmd.Flags().Float64Var(&triForce, "force", 0, "Applied force P (used with --arm)")
	curvedTriCmd.Flags().Float64Var(&triArm, "arm", 0, "Lever arm d for --force")
	curvedTriCmd.Flags().IntVar(&triSamples, "samples", 0, "Number of stress samples (default 201)")
	triOut.addOutputFlags(curvedTriCmd)

	curvedTriCmd.MarkFlagRequired("ri")
	curvedTriCmd.MarkFlagRequired("thickness")
}

func runCurvedTri(cmd *cobra.Command, args []string) {
	m, p, d := loadFromFlags(cmd, triMoment, triForce, triArm)
	runCurved(curved.Input{
		Shape:   section.Triangular,
		RInner:  triRi,
		Params:  section.Params{"bInner": triBInner, "bOuter": triBOuter, "t": triT},
		M:       m,
		P:       p,
		D:       d,
		Samples: triSamples,
	}, triOut)
}
