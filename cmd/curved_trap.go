package cmd

import (
	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/alexiusacademia/gocurve/internal/section"
	"github.com/spf13/cobra"
)

var (
	trapRi      float64
	trapBInner  float64
	trapBOuter  float64
	trapT       float64
	trapMoment  float64
	trapForce   float64
	trapArm     float64
	trapSamples int
	trapOut     curvedOutput
)

var curvedTrapCmd = &cobra.Command{
	Use:   "trap",
	Short: "Analyze a trapezoidal curved-beam section",
	Long: `Compute the Winkler-Bach stress distribution for a trapezoidal
section whose width varies linearly from bInner at the inner surface
to bOuter at the outer surface.

Examples:
  gocurve curved trap --ri 0.05 --binner 0.03 --bouter 0.01 -t 0.02 --moment 1000`,
	Run: runCurvedTrap,
}

func init() {
	curvedCmd.AddCommand(curvedTrapCmd)

	curvedTrapCmd.Flags().Float64Var(&trapRi, "ri", 0, "Inner-surface radius [required]")
	curvedTrapCmd.Flags().Float64Var(&trapBInner, "binner", 0, "Width at the inner surface [required]")
	curvedTrapCmd.Flags().Float64Var(&trapBOuter, "bouter", 0, "Width at the outer surface [required]")
	curvedTrapCmd.Flags().Float64VarP(&trapT, "thickness", "t", 0, "Radial thickness t [required]")
	curvedTrapCmd.Flags().Float64VarP(&trapMoment, "moment", "m", 0, "Applied bending moment M")
	curvedTrapCmd.Flags().Float64Var(&trapForce, "force", 0, "Applied force P (used with --arm)")
	curvedTrapCmd.Flags().Float64Var(&trapArm, "arm", 0, "Lever arm d for --force")
	curvedTrapCmd.Flags().IntVar(&trapSamples, "samples", 0, "Number of stress samples (default 201)")
	trapOut.addOutputFlags(curvedTrapCmd)

	curvedTrapCmd.MarkFlagRequired("ri")
	curvedTrapCmd.MarkFlagRequired("binner")
	curvedTrapCmd.MarkFlagRequired("bouter")
	curvedTrapCmd.MarkFlagRequired("thickness")
}

func runCurvedTrap(cmd *cobra.Command, args []string) {
	m, p, d := loadFromFlags(cmd, trapMoment, trapForce, trapArm)
	runCurved(curved.Input{
		Shape:   section.Trapezoidal,
		RInner:  trapRi,
		Params:  section.Params{"bInner": trapBInner, "bOuter": trapBOuter, "t": trapT},
		M:       m,
		P:       p,
		D:       d,
		Samples: trapSamples,
	}, trapOut)
}
