package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/alexiusacademia/gocurve/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzed(t *testing.T) (curved.Input, *curved.Result) {
	t.Helper()
	m := 1000.0
	in := curved.Input{
		Shape:  section.Rectangular,
		RInner: 0.05,
		Params: section.Params{"b": 0.02, "t": 0.02},
		M:      &m,
	}
	res, err := curved.Analyze(in)
	require.NoError(t, err)
	return in, res
}

func TestWriteCurved(t *testing.T) {
	in, res := analyzed(t)

	var buf bytes.Buffer
	meta := Meta{Project: "Crane hook study", Author: "ASA", Notes: "SI units."}
	require.NoError(t, WriteCurved(&buf, meta, in, res))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestSaveCurved(t *testing.T) {
	in, res := analyzed(t)

	file := filepath.Join(t.TempDir(), "analysis.pdf")
	require.NoError(t, SaveCurved(file, Meta{}, in, res))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
