// Package charts renders the scatter figures of the pipeline.
package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	Blue = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	Red  = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

const figureSize = 10 * vg.Inch

type Series struct {
	X     []float64
	Y     []float64
	Color color.NRGBA
}

type Line struct {
	Label string
	X     []float64
	Y     []float64
	Color color.NRGBA
}

type Figure struct {
	// file name inside the output directory, the extension picks the format
	File       string
	Title      string
	TitleSize  vg.Length
	XLabel     string
	YLabel     string
	Scatter    []Series
	Lines      []Line
	LegendLeft bool
}

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x has %d values, y has %d", len(x), len(y))
	}
	out := make(plotter.XYs, len(x))
	for i := range x {
		out[i].X = x[i]
		out[i].Y = y[i]
	}
	return out, nil
}

// translucent halves the alpha of c, markers overlap a lot.
func translucent(c color.NRGBA) color.NRGBA {
	c.A = 0x80
	return c
}

func (f Figure) build() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.Title.TextStyle.Font.Size = f.TitleSize
	if f.TitleSize == 0 {
		p.Title.TextStyle.Font.Size = vg.Points(18)
	}
	p.X.Label.Text = f.XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = f.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.Add(plotter.NewGrid())

	for _, s := range f.Scatter {
		points, err := xys(s.X, s.Y)
		if err != nil {
			return nil, err
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Color = translucent(s.Color)
		p.Add(scatter)
	}

	for _, l := range f.Lines {
		points, err := xys(l.X, l.Y)
		if err != nil {
			return nil, err
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = l.Color
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		if l.Label != "" {
			p.Legend.Add(l.Label, line)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = f.LegendLeft
	p.Legend.TextStyle.Font.Size = vg.Points(14)
	return p, nil
}

// Render writes the figure into `dir` and returns the written path.
func (f Figure) Render(dir string) (string, error) {
	p, err := f.build()
	if err != nil {
		return "", fmt.Errorf("build %s: %w", f.File, err)
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.File)
	err = p.Save(figureSize, figureSize, path)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
