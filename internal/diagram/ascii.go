package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SectionData holds what the terminal sketch needs: the width profile and
// the radii of the two reference axes.
type SectionData struct {
	// Thickness is the radial extent of the section.
	Thickness float64

	// Width reports the section width at offset y from the inner surface.
	Width func(y float64) float64

	// RInner is the inner-surface radius; Rn and Rc are the absolute
	// neutral-axis and centroid radii.
	RInner float64
	Rn     float64
	Rc     float64
}

// SketchSection renders the cross-section profile as ASCII art, outer
// surface at the top, with the neutral axis and centroid rows marked.
func SketchSection(d SectionData) string {
	const (
		heightChars = 20
		widthChars  = 40
	)

	// Scale rows by the widest point of the profile.
	var wmax float64
	for i := 0; i <= heightChars; i++ {
		y := d.Thickness * float64(i) / heightChars
		wmax = math.Max(wmax, d.Width(y))
	}
	if wmax <= 0 {
		return ""
	}

	naRow := rowFor(d.Rn-d.RInner, d.Thickness, heightChars)
	cRow := rowFor(d.Rc-d.RInner, d.Thickness, heightChars)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  CROSS-SECTION (outer surface at top)\n")
	sb.WriteString("  ────────────────────────────────────\n")

	for i := 0; i <= heightChars; i++ {
		// Row 0 is the outer surface.
		y := d.Thickness * float64(heightChars-i) / heightChars
		n := int(math.Round(d.Width(y) / wmax * widthChars))

		pad := (widthChars - n) / 2
		row := strings.Repeat(" ", pad) + strings.Repeat("░", n) +
			strings.Repeat(" ", widthChars-pad-n)

		sb.WriteString(fmt.Sprintf("  %s", row))
		switch i {
		case 0:
			sb.WriteString("  ← outer surface")
		case heightChars:
			sb.WriteString("  ← inner surface")
		case naRow:
			sb.WriteString(fmt.Sprintf("  ◄─ N.A. at r = %.5g", d.Rn))
		case cRow:
			sb.WriteString(fmt.Sprintf("  ◄─ centroid at r = %.5g", d.Rc))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// rowFor maps an offset from the inner surface to a sketch row, with row 0
// at the outer surface.
func rowFor(y, thickness float64, heightChars int) int {
	if thickness <= 0 {
		return -1
	}
	row := heightChars - int(math.Round(y/thickness*float64(heightChars)))
	if row < 0 || row > heightChars {
		return -1
	}
	return row
}

// Curve plots a sampled quantity as a terminal graph.
func Curve(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
