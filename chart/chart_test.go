package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrobust/chart"
	"github.com/katalvlaran/netrobust/robustness"
)

var curve = robustness.Curve{
	{Removed: "X", Degree: 2, Remaining: 1, X: 0.5, Y: 0.5},
	{Removed: "Y", Degree: 1, Remaining: 0, X: 0, Y: 0},
}

func TestNew(t *testing.T) {
	p, err := chart.New(chart.Title("meadow"), curve)
	require.NoError(t, err)
	require.Equal(t, "Ecological Robustness - meadow", p.Title.Text)
	require.Equal(t, chart.XLabel, p.X.Label.Text)
	require.Equal(t, chart.YLabel, p.Y.Label.Text)
	require.Equal(t, 0.0, p.X.Min)
	require.Equal(t, 1.0, p.X.Max)

	_, err = chart.New("empty", nil)
	require.ErrorIs(t, err, chart.ErrEmptyCurve)
}

func TestRenderFormats(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".png", ".svg", ".pdf"} {
		path := filepath.Join(dir, "meadow"+ext)
		require.NoError(t, chart.Render(path, chart.Title("meadow"), curve), ext)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size(), ext)
	}

	require.Error(t, chart.Render(filepath.Join(dir, "meadow.bogus"), "x", curve))
}
