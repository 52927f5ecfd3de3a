package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	chartTitle  = "LCS Operations: Observed vs. Theoretical Efficiency"
	xAxisLabel  = "Length of String Y (n)"
	yAxisLabel  = "Number of Operations"
	chartWidth  = 12 * vg.Inch
	chartHeight = 7 * vg.Inch

	// DefaultDPI is the raster resolution of PNG output.
	DefaultDPI = 300
)

// dashes is the pattern of the theoretical series.
var dashes = []vg.Length{vg.Points(6), vg.Points(4)}

// LegendLabel returns the legend entry of a group.
func LegendLabel(g Group) string {
	r2 := "NaN"
	if !math.IsNaN(g.RSquared) {
		r2 = fmt.Sprintf("%.4f", g.RSquared)
	}

	return fmt.Sprintf("(m = %d)  R² = %s", g.M, r2)
}

// Chart builds the observed vs. theoretical chart of a.
func Chart(a *Analysis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = chartTitle
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, g := range a.Groups {
		c := plotutil.Color(i)
		observed, theoretical := make(plotter.XYs, len(g.Points)), make(plotter.XYs, len(g.Points))
		for j, pt := range g.Points {
			observed[j] = plotter.XY{X: float64(pt.N), Y: float64(pt.Ops)}
			theoretical[j] = plotter.XY{X: float64(pt.N), Y: float64(pt.Theoretical)}
		}

		obsLine, obsPoints, err := series(observed, c, draw.CircleGlyph{}, nil)
		if err != nil {
			return nil, fmt.Errorf("plot: group m=%d: %w", g.M, err)
		}
		theoLine, theoPoints, err := series(theoretical, c, draw.CrossGlyph{}, dashes)
		if err != nil {
			return nil, fmt.Errorf("plot: group m=%d: %w", g.M, err)
		}

		p.Add(obsLine, obsPoints, theoLine, theoPoints)
		p.Legend.Add(LegendLabel(g), obsLine, obsPoints)
	}

	return p, nil
}

// series styles one line with markers.
func series(xys plotter.XYs, c color.Color, glyph draw.GlyphDrawer, dash []vg.Length) (*plotter.Line, *plotter.Scatter, error) {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, nil, err
	}
	line.Color = c
	line.Dashes = dash
	points.Color = c
	points.Shape = glyph

	return line, points, nil
}

// Encode renders p in the format named by path's extension. PNG output is
// rasterised at dpi.
func Encode(w io.Writer, p *plot.Plot, path string, dpi int) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format != "png" {
		wt, err := p.WriterTo(chartWidth, chartHeight, format)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		_, err = wt.WriteTo(w)
		return err
	}

	if dpi <= 0 {
		dpi = DefaultDPI
	}
	c := vgimg.NewWith(vgimg.UseWH(chartWidth, chartHeight), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)

	return err
}
