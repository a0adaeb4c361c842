// Package report renders the analysis artifacts: the multi-panel PNG
// figure and the PDF summary report.
package report

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/flight"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/stats"
)

const histogramBins = 50

var (
	colorTarget  = color.RGBA{R: 220, A: 255}
	colorStretch = color.RGBA{G: 160, A: 255}
	colorMean    = color.RGBA{R: 255, G: 165, A: 255}
	colorScatter = color.RGBA{R: 70, G: 120, B: 200, A: 180}
	colorTrend   = color.RGBA{R: 220, A: 255}
)

// FieldLabel returns the axis label of a parameter field.
func FieldLabel(name string) string {
	switch name {
	case flight.FieldEta:
		return "System Efficiency"
	case flight.FieldPackDens:
		return "Battery Energy Density (Wh/kg)"
	case flight.FieldLiftDrag:
		return "Lift-to-Drag Ratio"
	case flight.FieldHarvest:
		return "Harvesting Power (kW)"
	case flight.FieldSicGain:
		return "SiC Efficiency Gain"
	}
	return name
}

// HistogramPanel builds the range distribution panel with reference
// lines at the two target ranges and at the ensemble mean.
func HistogramPanel(ranges []float64, summary montecarlo.Summary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Range Distribution (mean=%.0f km, std=%.0f km)",
		summary.MeanKm, summary.StdKm)
	p.X.Label.Text = "Range (km)"
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())

	hist, err := plotter.NewHist(plotter.Values(ranges), histogramBins)
	if err != nil {
		return nil, fmt.Errorf("report: histogram: %w", err)
	}
	hist.FillColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	p.Add(hist)

	top := maxBinCount(ranges, histogramBins) * 1.05
	for _, ref := range []struct {
		x     float64
		c     color.Color
		label string
	}{
		{montecarlo.TargetRangeKm, colorTarget, "5,000 km target"},
		{montecarlo.StretchRangeKm, colorStretch, "10,000 km target"},
		{summary.MeanKm, colorMean, fmt.Sprintf("mean: %.0f km", summary.MeanKm)},
	} {
		line, err := plotter.NewLine(plotter.XYs{{X: ref.x, Y: 0}, {X: ref.x, Y: top}})
		if err != nil {
			return nil, err
		}
		line.Color = ref.c
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(line)
		p.Legend.Add(ref.label, line)
	}
	p.Legend.Top = true

	return p, nil
}

// ScatterPanel builds one sensitivity panel: sampled field vs range,
// with a least-squares trend line.
func ScatterPanel(field []float64, ranges []float64, fieldName string) (*plot.Plot, error) {
	p := plot.New()

	r := stats.Correlation(field, ranges)
	p.Title.Text = fmt.Sprintf("Range vs %s (r=%.3f)", FieldLabel(fieldName), r)
	p.X.Label.Text = FieldLabel(fieldName)
	p.Y.Label.Text = "Range (km)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(field))
	for i := range field {
		pts[i] = plotter.XY{X: field[i], Y: ranges[i]}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("report: scatter: %w", err)
	}
	scatter.GlyphStyle.Color = colorScatter
	scatter.GlyphStyle.Radius = vg.Points(1.2)
	p.Add(scatter)

	slope, intercept := stats.LinearFit(field, ranges)
	lo, hi := minMax(field)
	trend, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: slope*lo + intercept},
		{X: hi, Y: slope*hi + intercept},
	})
	if err != nil {
		return nil, err
	}
	trend.Color = colorTrend
	trend.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(trend)

	return p, nil
}

// CDFPanel builds the cumulative-distribution panel.
func CDFPanel(ranges []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Range Cumulative Distribution"
	p.X.Label.Text = "Range (km)"
	p.Y.Label.Text = "Cumulative Probability (%)"
	p.Add(plotter.NewGrid())

	sorted := make([]float64, len(ranges))
	copy(sorted, ranges)
	sort.Float64s(sorted)

	pts := make(plotter.XYs, len(sorted))
	for i, v := range sorted {
		pts[i] = plotter.XY{X: v, Y: float64(i+1) / float64(len(sorted)) * 100}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	for _, ref := range []struct {
		x float64
		c color.Color
	}{
		{montecarlo.TargetRangeKm, colorTarget},
		{montecarlo.StretchRangeKm, colorStretch},
	} {
		vline, err := plotter.NewLine(plotter.XYs{{X: ref.x, Y: 0}, {X: ref.x, Y: 100}})
		if err != nil {
			return nil, err
		}
		vline.Color = ref.c
		vline.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(vline)
	}

	return p, nil
}

// BuildPanels assembles the panel grid for an ensemble: histogram, CDF,
// then one sensitivity scatter per sampled field in the given order.
func BuildPanels(ensemble montecarlo.Ensemble, summary montecarlo.Summary, sampledFields []string) ([]*plot.Plot, error) {
	ranges := ensemble.Ranges()

	histPanel, err := HistogramPanel(ranges, summary)
	if err != nil {
		return nil, err
	}
	cdfPanel, err := CDFPanel(ranges)
	if err != nil {
		return nil, err
	}

	panels := []*plot.Plot{histPanel, cdfPanel}
	for _, name := range sampledFields {
		sp, err := ScatterPanel(ensemble.FieldValues(name), ranges, name)
		if err != nil {
			return nil, err
		}
		panels = append(panels, sp)
	}
	return panels, nil
}

// RenderFigure lays the panels out on a tile grid and returns the PNG.
func RenderFigure(panels []*plot.Plot, cols int) ([]byte, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("report: no panels to render")
	}
	if cols < 1 {
		cols = 1
	}
	rows := (len(panels) + cols - 1) / cols

	grid := make([][]*plot.Plot, rows)
	for i := range grid {
		grid[i] = make([]*plot.Plot, cols)
		for j := range grid[i] {
			idx := i*cols + j
			if idx < len(panels) {
				grid[i][j] = panels[idx]
			}
		}
	}

	img := vgimg.New(vg.Points(420*float64(cols)), vg.Points(320*float64(rows)))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Points(8), PadY: vg.Points(8),
		PadTop: vg.Points(4), PadBottom: vg.Points(4),
		PadLeft: vg.Points(4), PadRight: vg.Points(4),
	}

	canvases := plot.Align(grid, tiles, dc)
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] != nil {
				grid[i][j].Draw(canvases[i][j])
			}
		}
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFigure renders the full analysis figure to a PNG file.
func WriteFigure(path string, ensemble montecarlo.Ensemble, summary montecarlo.Summary, sampledFields []string) error {
	panels, err := BuildPanels(ensemble, summary, sampledFields)
	if err != nil {
		return err
	}
	data, err := RenderFigure(panels, 3)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// maxBinCount computes the tallest histogram bin, used to size the
// reference lines before the plot autoscale exists.
func maxBinCount(values []float64, bins int) float64 {
	if len(values) == 0 || bins <= 0 {
		return 1
	}
	lo, hi := minMax(values)
	if hi == lo {
		return float64(len(values))
	}

	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return float64(max)
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
