// SPDX-License-Identifier: MIT
// Package chart renders robustness curves to image files with gonum/plot.
//
// The x axis is 1 − X (fraction of pollinators removed grows to the right),
// the y axis is Y; both are fixed to [0,1] so charts of different networks
// are directly comparable. The output format follows the file extension
// (.png, .svg, .pdf, and anything else plot.Save understands).
package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/netrobust/robustness"
)

// Axis labels and default canvas size.
const (
	XLabel = "Fraction of pollinators remaining"
	YLabel = "Fraction of remaining plants"

	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrEmptyCurve indicates an attempt to draw a curve with no steps.
var ErrEmptyCurve = errors.New("chart: empty curve")

// Title returns the chart title used for a named network.
func Title(name string) string {
	return "Ecological Robustness - " + name
}

// New builds the plot for curve without saving it.
func New(title string, curve robustness.Curve) (*plot.Plot, error) {
	if len(curve) == 0 {
		return nil, fmt.Errorf("New: %q: %w", title, ErrEmptyCurve)
	}
	xs, ys := curve.Reversed(), curve.Ys()
	if floats.HasNaN(xs) || floats.HasNaN(ys) {
		return nil, fmt.Errorf("New: %q: curve contains NaN", title)
	}

	pts := make(plotter.XYs, len(curve))
	for i := range pts {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("New: %q: %w", title, err)
	}
	line.Color = color.RGBA{B: 180, A: 255}
	points.Shape = draw.CircleGlyph{}
	points.Color = line.Color
	p.Add(line, points)

	return p, nil
}

// Render draws curve and saves it to path at the default size.
func Render(path, title string, curve robustness.Curve) error {
	p, err := New(title, curve)
	if err != nil {
		return err
	}
	if err = p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("Render: %s: %w", path, err)
	}

	return nil
}
