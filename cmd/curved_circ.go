package cmd

import (
	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/alexiusacademia/gocurve/internal/section"
	"github.com/spf13/cobra"
)

var (
	circRi      float64
	circD       float64
	circMoment  float64
	circForce   float64
	circArm     float64
	circSamples int
	circOut     curvedOutput
)

var curvedCircCmd = &cobra.Command{
	Use:   "circ",
	Short: "Analyze a solid circular curved-beam section",
	Long: `Compute the Winkler-Bach stress distribution for a solid circular
section of diameter d. The section width is the chord length at each
radial offset, which vanishes at both surfaces.

Examples:
  gocurve curved circ --ri 0.05 -d 0.04 --moment 1000`,
	Run: runCurvedCirc,
}

func init() {
	curvedCmd.AddCommand(curvedCircCmd)

	curvedCircCmd.Flags().Float64Var(&circRi, "ri", 0, "Inner-surface radius [required]")
	curvedCircCmd.Flags().Float64VarP(&circD, "diameter", "d", 0, "Section diameter d [required]")
	curvedCircCmd.Flags().Float64VarP(&circMoment, "moment", "m", 0, "Applied bending moment M")
	curvedCircCmd.Flags().Float64Var(&circForce, "force", 0, "Applied force P (used with --arm)")
	curvedCircCmd.Flags().Float64Var(&circArm, "arm", 0, "Lever arm d for --force")
	curvedCircCmd.Flags().IntVar(&circSamples, "samples", 0, "Number of stress samples (default 201)")
	circOut.addOutputFlags(curvedCircCmd)

	curvedCircCmd.MarkFlagRequired("ri")
	curvedCircCmd.MarkFlagRequired("diameter")
}

func runCurvedCirc(cmd *cobra.Command, args []string) {
	m, p, d := loadFromFlags(cmd, circMoment, circForce, circArm)
	runCurved(curved.Input{
		Shape:   section.Circular,
		RInner:  circRi,
		Params:  section.Params{"d": circD},
		M:       m,
		P:       p,
		D:       d,
		Samples: circSamples,
	}, circOut)
}
