package chart_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/chart"
	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/matrix"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func solved(t *testing.T) *iterative.Result {
	t.Helper()
	a, err := matrix.NewFromInts([][]int64{{10, 1, 1}, {1, 10, 1}, {1, 1, 10}})
	require.NoError(t, err)
	res, err := iterative.GaussSeidel(a, matrix.NewVectorFromInts(12, 12, 12))
	require.NoError(t, err)

	return res
}

func TestValuesPNG(t *testing.T) {
	c, err := chart.Values(solved(t), chart.WithSize(3, 2), chart.WithTitle("demo"))
	require.NoError(t, err)
	require.Equal(t, "demo", c.Plot.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestMaxErrorSave(t *testing.T) {
	c, err := chart.MaxError(solved(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "errors.png")
	require.NoError(t, c.Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestEmpty(t *testing.T) {
	_, err := chart.Values(nil)
	require.ErrorIs(t, err, chart.ErrEmptyTable)
	_, err = chart.MaxError(&iterative.Result{})
	require.ErrorIs(t, err, chart.ErrEmptyTable)
	require.Panics(t, func() { chart.WithSize(0, 1) })
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.WriteHTML(&buf, solved(t), chart.WithTitle("demo page")))
	out := buf.String()
	require.Contains(t, out, "<html")
	require.Contains(t, out, "demo page")
	require.Contains(t, out, "max error")

	require.ErrorIs(t, chart.WriteHTML(&buf, nil), chart.ErrEmptyTable)
}
