package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// StressChartData holds the sampled stress curve and its reference radii.
type StressChartData struct {
	R     []float64
	Sigma []float64
	Rn    float64
	Rc    float64
}

// ExportStressChart writes the stress-versus-radius curve to an image
// file. The format follows the file extension (png, svg, or pdf).
func ExportStressChart(data StressChartData, filename string) error {
	if len(data.R) == 0 || len(data.R) != len(data.Sigma) {
		return fmt.Errorf("stress chart needs matching radius and stress samples")
	}

	p := plot.New()
	p.Title.Text = "Curved Beam Bending Stress"
	p.X.Label.Text = "Radius r"
	p.Y.Label.Text = "Stress σ"

	pts := make(plotter.XYs, len(data.R))
	lo, hi := data.Sigma[0], data.Sigma[0]
	for i := range data.R {
		pts[i] = plotter.XY{X: data.R[i], Y: data.Sigma[i]}
		if data.Sigma[i] < lo {
			lo = data.Sigma[i]
		}
		if data.Sigma[i] > hi {
			hi = data.Sigma[i]
		}
	}

	stressLine, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	stressLine.LineStyle.Width = vg.Points(2)
	stressLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(stressLine)
	p.Legend.Add("σ(r)", stressLine)

	// Zero-stress baseline.
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: data.R[0], Y: 0},
		{X: data.R[len(data.R)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	// Neutral axis and centroid as vertical markers.
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: data.Rn, Y: lo},
		{X: data.Rn, Y: hi},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)
	p.Legend.Add("neutral axis", naLine)

	cLine, err := plotter.NewLine(plotter.XYs{
		{X: data.Rc, Y: lo},
		{X: data.Rc, Y: hi},
	})
	if err != nil {
		return err
	}
	cLine.LineStyle.Width = vg.Points(1)
	cLine.LineStyle.Color = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	cLine.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(cLine)
	p.Legend.Add("centroid", cLine)

	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSectionProfile writes a schematic of the cross-section outline,
// width plotted symmetrically about the radial axis, with the neutral
// axis and centroid radii marked.
func ExportSectionProfile(d SectionData, filename string) error {
	if d.Thickness <= 0 {
		return fmt.Errorf("section profile needs a positive thickness")
	}

	const steps = 100

	// Trace the right edge from inner to outer, then the left edge back.
	outline := make(plotter.XYs, 0, 2*steps+3)
	for i := 0; i <= steps; i++ {
		y := d.Thickness * float64(i) / steps
		outline = append(outline, plotter.XY{X: d.Width(y) / 2, Y: d.RInner + y})
	}
	for i := steps; i >= 0; i-- {
		y := d.Thickness * float64(i) / steps
		outline = append(outline, plotter.XY{X: -d.Width(y) / 2, Y: d.RInner + y})
	}
	outline = append(outline, outline[0])

	p := plot.New()
	p.Title.Text = "Cross-Section Profile"
	p.X.Label.Text = "Width"
	p.Y.Label.Text = "Radius r"

	edge, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	edge.LineStyle.Width = vg.Points(2)
	edge.LineStyle.Color = color.Black
	p.Add(edge)

	wmax := maxWidth(d, steps)
	for _, marker := range []struct {
		r     float64
		c     color.RGBA
		label string
	}{
		{d.Rn, color.RGBA{R: 178, G: 34, B: 34, A: 255}, "neutral axis"},
		{d.Rc, color.RGBA{R: 34, G: 139, B: 34, A: 255}, "centroid"},
	} {
		line, err := plotter.NewLine(plotter.XYs{
			{X: -wmax / 2, Y: marker.r},
			{X: wmax / 2, Y: marker.r},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = marker.c
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)
		p.Legend.Add(marker.label, line)
	}

	p.Legend.Top = true

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

func maxWidth(d SectionData, steps int) float64 {
	var wmax float64
	for i := 0; i <= steps; i++ {
		if w := d.Width(d.Thickness * float64(i) / float64(steps)); w > wmax {
			wmax = w
		}
	}
	return wmax
}

// save writes the plot in the format implied by the file extension,
// defaulting to PNG for unrecognized extensions.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
