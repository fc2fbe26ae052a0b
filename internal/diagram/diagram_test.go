package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSection() SectionData {
	return SectionData{
		Thickness: 0.02,
		Width:     func(y float64) float64 { return 0.02 },
		RInner:    0.05,
		Rn:        0.0594,
		Rc:        0.06,
	}
}

func TestSketchSection(t *testing.T) {
	out := SketchSection(testSection())

	assert.Contains(t, out, "outer surface")
	assert.Contains(t, out, "inner surface")
	assert.Contains(t, out, "N.A.")
	assert.Contains(t, out, "centroid")

	// A constant-width profile fills every row to the same extent.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Greater(t, len(lines), 20)
}

func TestSketchSectionEmptyProfile(t *testing.T) {
	d := testSection()
	d.Width = func(y float64) float64 { return 0 }

	assert.Empty(t, SketchSection(d))
}

func TestCurve(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = math.Sin(float64(i) / 8)
	}

	out := Curve(values, "stress vs radius")
	assert.Contains(t, out, "stress vs radius")
	assert.NotEmpty(t, out)
}

func TestExportStressChart(t *testing.T) {
	r := make([]float64, 51)
	sigma := make([]float64, 51)
	for i := range r {
		r[i] = 0.05 + float64(i)/50*0.02
		sigma[i] = 1e8 * (0.0594/r[i] - 1)
	}
	data := StressChartData{R: r, Sigma: sigma, Rn: 0.0594, Rc: 0.06}

	for _, ext := range []string{".png", ".svg", ".pdf"} {
		file := filepath.Join(t.TempDir(), "stress"+ext)
		require.NoError(t, ExportStressChart(data, file))

		info, err := os.Stat(file)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestExportStressChartBadInput(t *testing.T) {
	err := ExportStressChart(StressChartData{R: []float64{1}, Sigma: nil}, "x.png")
	assert.Error(t, err)
}

func TestExportSectionProfile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "section.png")
	require.NoError(t, ExportSectionProfile(testSection(), file))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportSectionProfileBadThickness(t *testing.T) {
	d := testSection()
	d.Thickness = 0

	assert.Error(t, ExportSectionProfile(d, "x.png"))
}
