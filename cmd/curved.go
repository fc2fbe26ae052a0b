package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/alexiusacademia/gocurve/internal/diagram"
	"github.com/alexiusacademia/gocurve/internal/report"
	"github.com/alexiusacademia/gocurve/internal/section"
	"github.com/spf13/cobra"
)

var curvedCmd = &cobra.Command{
	Use:   "curved",
	Short: "Curved-beam bending stress analysis (Winkler-Bach)",
	Long: `Analyze bending stresses in curved beams using the Winkler-Bach theory.

The neutral axis of a curved beam shifts from the centroid toward the
center of curvature, and the bending stress varies hyperbolically with
radius. Each subcommand analyzes one cross-section family:

  rect   - rectangular section
  trap   - trapezoidal section
  tri    - triangular section
  circ   - solid circular section
  tee    - composite T section (two rectangles at absolute radii)
  file   - full analysis input from a JSON file

The load is either a direct moment (--moment) or a force with a lever
arm (--force and --arm); the force-arm product wins when both are given.`,
}

func init() {
	rootCmd.AddCommand(curvedCmd)
}

// curvedOutput collects the presentation flags shared by every curved
// subcommand.
type curvedOutput struct {
	showDiagram bool
	chartFile   string
	profileFile string
	reportFile  string
	project     string
	author      string
}

// addOutputFlags registers the shared presentation flags on a subcommand.
func (o *curvedOutput) addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.showDiagram, "diagram", false, "Show ASCII section sketch and stress curve")
	cmd.Flags().StringVarP(&o.chartFile, "output", "o", "", "Export stress-vs-radius chart to file (png, svg, pdf)")
	cmd.Flags().StringVar(&o.profileFile, "profile", "", "Export section profile schematic to file (png, svg, pdf)")
	cmd.Flags().StringVar(&o.reportFile, "report", "", "Write a PDF calculation sheet to file")
	cmd.Flags().StringVar(&o.project, "project", "", "Project name printed on the PDF sheet")
	cmd.Flags().StringVar(&o.author, "author", "", "Author name printed on the PDF sheet")
}

// loadFlags holds the shared load inputs. Pointer semantics matter here:
// only flags the user actually set become part of the input, so the
// force-arm pair can override the moment exactly when both were given.
func loadFromFlags(cmd *cobra.Command, moment, force, arm float64) (m, p, d *float64) {
	if cmd.Flags().Changed("moment") {
		m = &moment
	}
	if cmd.Flags().Changed("force") {
		p = &force
	}
	if cmd.Flags().Changed("arm") {
		d = &arm
	}
	return m, p, d
}

// runCurved executes the analysis and renders every requested output.
func runCurved(in curved.Input, out curvedOutput) {
	res, err := curved.Analyze(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printCurvedReport(in, res)

	if out.showDiagram || out.profileFile != "" {
		profile, perr := section.Build(in.Shape, in.Params)
		if perr == nil {
			data := diagram.SectionData{
				Thickness: profile.Thickness,
				Width:     profile.Width,
				RInner:    res.RInner,
				Rn:        res.Rn,
				Rc:        res.Rc,
			}
			if out.showDiagram {
				fmt.Println(diagram.SketchSection(data))
				fmt.Println(diagram.Curve(res.Sigma, "bending stress from inner to outer surface"))
				fmt.Println()
			}
			if out.profileFile != "" {
				if err := diagram.ExportSectionProfile(data, out.profileFile); err != nil {
					fmt.Printf("Error exporting section profile: %v\n", err)
				} else {
					fmt.Printf("  Section profile saved to %s\n", out.profileFile)
				}
			}
		}
	}

	if out.chartFile != "" {
		data := diagram.StressChartData{R: res.R, Sigma: res.Sigma, Rn: res.Rn, Rc: res.Rc}
		if err := diagram.ExportStressChart(data, out.chartFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("  Stress chart saved to %s\n", out.chartFile)
		}
	}

	if out.reportFile != "" {
		meta := report.Meta{Project: out.project, Author: out.author}
		if err := report.SaveCurved(out.reportFile, meta, in, res); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("  Calculation sheet saved to %s\n", out.reportFile)
		}
	}
}

func printCurvedReport(in curved.Input, res *curved.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CURVED BEAM ANALYSIS - WINKLER-BACH THEORY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section Shape:\t%s\n", in.Shape)
	for _, field := range section.Fields(in.Shape) {
		fmt.Fprintf(w, "  %s:\t%g\n", field, in.Params[field])
	}
	fmt.Fprintf(w, "  Inner Radius (ri):\t%g\n", res.RInner)
	fmt.Fprintf(w, "  Outer Radius (ro):\t%g\n", res.ROuter)
	fmt.Fprintf(w, "  Applied Moment (M):\t%g\n", res.Moment)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.6g\n", res.A)
	fmt.Fprintf(w, "  Centroid offset (ȳ):\t%.6g\n", res.Ybar)
	fmt.Fprintf(w, "  Neutral-axis offset (yn):\t%.6g\n", res.Yn)
	fmt.Fprintf(w, "  Eccentricity (e = ȳ - yn):\t%.6g\n", res.E)
	fmt.Fprintf(w, "  Neutral-axis radius (Rn):\t%.6g\n", res.Rn)
	fmt.Fprintf(w, "  Centroid radius (Rc):\t%.6g\n", res.Rc)
	w.Flush()
	fmt.Println()

	fmt.Println("BENDING STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Inner fiber (σi):\t%.6g\n", res.SigmaInner)
	fmt.Fprintf(w, "  Outer fiber (σo):\t%.6g\n", res.SigmaOuter)
	fmt.Fprintf(w, "  Max tension:\t%.6g\tat r = %.6g (%s fiber)\n",
		res.MaxTension.Value, res.MaxTension.AtR, res.MaxTension.Side)
	fmt.Fprintf(w, "  Max compression:\t%.6g\tat r = %.6g (%s fiber)\n",
		res.MaxCompression.Value, res.MaxCompression.AtR, res.MaxCompression.Side)
	w.Flush()
	fmt.Println()
}
