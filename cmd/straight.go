package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocurve/internal/diagram"
	"github.com/alexiusacademia/gocurve/internal/straight"
	"github.com/spf13/cobra"
)

var straightCmd = &cobra.Command{
	Use:   "straight",
	Short: "Straight-beam shear, moment, and deflection formulas",
	Long: `Evaluate the elementary closed-form solutions for straight beams
under the standard load cases.

Subcommands:
  simple-udl        - simply supported span, uniform load
  simple-point      - simply supported span, point load at midspan
  cantilever-udl    - cantilever, uniform load
  cantilever-point  - cantilever, point load at the free end

All results use whatever consistent unit system the inputs use.`,
}

func init() {
	rootCmd.AddCommand(straightCmd)

	for _, c := range []struct {
		use, short, example string
		loadCase            straight.LoadCase
		pointLoad           bool
	}{
		{
			use:      "simple-udl",
			short:    "Simply supported beam under a uniform load",
			example:  "gocurve straight simple-udl --span 6 -w 10e3 --modulus 200e9 --inertia 8e-5",
			loadCase: straight.SimpleUDL,
		},
		{
			use:       "simple-point",
			short:     "Simply supported beam with a point load at midspan",
			example:   "gocurve straight simple-point --span 6 -P 20e3 --modulus 200e9 --inertia 8e-5",
			loadCase:  straight.SimplePoint,
			pointLoad: true,
		},
		{
			use:      "cantilever-udl",
			short:    "Cantilever beam under a uniform load",
			example:  "gocurve straight cantilever-udl --span 3 -w 10e3 --modulus 200e9 --inertia 8e-5",
			loadCase: straight.CantileverUDL,
		},
		{
			use:       "cantilever-point",
			short:     "Cantilever beam with a point load at the free end",
			example:   "gocurve straight cantilever-point --span 3 -P 20e3 --modulus 200e9 --inertia 8e-5",
			loadCase:  straight.CantileverPoint,
			pointLoad: true,
		},
	} {
		straightCmd.AddCommand(newStraightCmd(c.use, c.short, c.example, c.loadCase, c.pointLoad))
	}
}

// newStraightCmd builds one load-case subcommand. Each gets its own flag
// storage so the commands stay independent.
func newStraightCmd(use, short, example string, loadCase straight.LoadCase, pointLoad bool) *cobra.Command {
	var (
		span, load, modulus, inertia float64
		samples                      int
		showDiagram                  bool
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: fmt.Sprintf(`%s.

Example:
  %s`, short, example),
		Run: func(cmd *cobra.Command, args []string) {
			in := straight.Input{
				Case:    loadCase,
				Span:    span,
				E:       modulus,
				I:       inertia,
				Samples: samples,
			}
			if pointLoad {
				in.P = load
			} else {
				in.W = load
			}

			res, err := straight.Evaluate(in)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			printStraightReport(in, res, showDiagram)
		},
	}

	cmd.Flags().Float64VarP(&span, "span", "l", 0, "Beam span L [required]")
	if pointLoad {
		cmd.Flags().Float64VarP(&load, "load", "P", 0, "Point load P [required]")
	} else {
		cmd.Flags().Float64VarP(&load, "load", "w", 0, "Uniform load w per unit length [required]")
	}
	cmd.Flags().Float64Var(&modulus, "modulus", 0, "Young's modulus E [required]")
	cmd.Flags().Float64Var(&inertia, "inertia", 0, "Second moment of area I [required]")
	cmd.Flags().IntVar(&samples, "samples", 0, "Number of diagram samples (default 201)")
	cmd.Flags().BoolVar(&showDiagram, "diagram", false, "Show ASCII shear, moment, and deflection diagrams")

	cmd.MarkFlagRequired("span")
	cmd.MarkFlagRequired("load")
	cmd.MarkFlagRequired("modulus")
	cmd.MarkFlagRequired("inertia")

	return cmd
}

func printStraightReport(in straight.Input, res *straight.Result, showDiagram bool) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STRAIGHT BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load Case:\t%s\n", in.Case)
	fmt.Fprintf(w, "  Span (L):\t%g\n", in.Span)
	if in.P != 0 {
		fmt.Fprintf(w, "  Point Load (P):\t%g\n", in.P)
	} else {
		fmt.Fprintf(w, "  Uniform Load (w):\t%g\n", in.W)
	}
	fmt.Fprintf(w, "  Young's Modulus (E):\t%g\n", in.E)
	fmt.Fprintf(w, "  Moment of Inertia (I):\t%g\n", in.I)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max Shear (V):\t%.6g\n", res.MaxShear)
	fmt.Fprintf(w, "  Max Moment (M):\t%.6g\tat x = %g\n", res.MaxMoment, res.MaxMomentAtX)
	fmt.Fprintf(w, "  Max Deflection (δ):\t%.6g\n", res.MaxDeflection)
	w.Flush()
	fmt.Println()

	if showDiagram {
		fmt.Println(diagram.Curve(res.Shear, "shear along the span"))
		fmt.Println()
		fmt.Println(diagram.Curve(res.Moment, "bending moment along the span"))
		fmt.Println()
		fmt.Println(diagram.Curve(res.Deflection, "deflection along the span"))
		fmt.Println()
	}
}
