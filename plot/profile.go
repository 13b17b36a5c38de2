// Package plot renders the simulated head profile.
package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Profile draws head versus position over the shaded impervious base
// and writes the figure to fp (format by extension). x, head and base
// must share length; rendering-backend errors propagate unmodified.
func Profile(x, head, base []float64, title, fp string) error {
	if len(x) != len(head) || len(x) != len(base) {
		return fmt.Errorf("plot.Profile: length mismatch %d/%d/%d", len(x), len(head), len(base))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "distance"
	p.Y.Label.Text = "elevation"

	bl, err := plotter.NewLine(xys(x, base))
	if err != nil {
		return err
	}
	bl.FillColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	bl.Color = color.RGBA{A: 255}

	hl, err := plotter.NewLine(xys(x, head))
	if err != nil {
		return err
	}
	hl.Color = color.RGBA{B: 255, A: 255}
	hl.Width = vg.Points(1.5)

	p.Add(bl, hl)
	p.Legend.Add("head", hl)
	p.Legend.Add("impervious base", bl)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, fp)
}

func xys(x, y []float64) plotter.XYs {
	o := make(plotter.XYs, len(x))
	for i := range x {
		o[i].X, o[i].Y = x[i], y[i]
	}
	return o
}
