package graph

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hhe-bench/hheperf/internal/models"
)

// Plotter renders memory series charts. PiType selects the time axis and
// SWAP unit handling for the measurement hardware.
type Plotter struct {
	PiType string
}

var (
	ramColor   = color.NRGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: 0xff}
	ramFill    = color.NRGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: 0x60}
	swapColor  = color.NRGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
	swapFill   = color.NRGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0x60}
	keysColor  = color.NRGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xe6}
	zmqColor   = color.NRGBA{R: 0x00, G: 0x64, B: 0x00, A: 0xe6}
	peakColor  = color.NRGBA{R: 0xd8, G: 0x20, B: 0x20, A: 0xcc}
	batchShade = color.NRGBA{A: 0x26}
)

const (
	plotWidth  = 12 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// PlotRAM writes a scatter chart of RAM usage over time, with lifecycle
// markers at their RAM level and batch intervals shaded. The peak line is
// drawn only for the hybrid TTP, the one run whose transient peak matters.
func (p *Plotter) PlotRAM(series *models.MemorySeries, meta models.RunMetadata, path string) error {
	samples := trimLast(series.Samples)
	xs, xlabel := p.timeAxis(samples, meta)

	pl := newPlot(title(meta, "RAM Usage Over Time"), xlabel, "RAM Usage (MB)")

	ram := make([]float64, len(samples))
	for i, s := range samples {
		ram[i] = float64(s.RAMKB) / 1024
	}
	if err := addFilledLine(pl, xs, ram, ramFill); err != nil {
		return err
	}
	if err := addScatter(pl, xs, ram, ramColor); err != nil {
		return err
	}
	if err := addBatchShading(pl, xs, ram, samples); err != nil {
		return err
	}
	if err := addMarkers(pl, series.Markers, maxX(xs), false); err != nil {
		return err
	}
	if showPeak(series, meta) {
		if err := p.addPeakLine(pl, series, samples, xs, meta); err != nil {
			return err
		}
	}

	return savePlot(pl, path)
}

// PlotSwap writes a scatter chart of SWAP usage over time.
func (p *Plotter) PlotSwap(series *models.MemorySeries, meta models.RunMetadata, path string) error {
	samples := trimLast(series.Samples)
	xs, xlabel := p.timeAxis(samples, meta)
	values, ylabel := p.swapValues(samples, meta)

	pl := newPlot(title(meta, "SWAP Usage Over Time"), xlabel, ylabel)

	if err := addFilledLine(pl, xs, values, swapFill); err != nil {
		return err
	}
	if err := addScatter(pl, xs, values, swapColor); err != nil {
		return err
	}
	if err := addBatchShading(pl, xs, values, samples); err != nil {
		return err
	}

	return savePlot(pl, path)
}

// PlotStacked writes a stacked RAM+SWAP area chart. Lifecycle markers sit at
// the combined RAM+SWAP height so they line up with the stacked surface.
func (p *Plotter) PlotStacked(series *models.MemorySeries, meta models.RunMetadata, path string) error {
	samples := trimLast(series.Samples)
	xs, xlabel := p.timeAxis(samples, meta)

	pl := newPlot(title(meta, "Stacked RAM + SWAP Usage Over Time"), xlabel, "Memory Usage (MB)")

	ram := make([]float64, len(samples))
	total := make([]float64, len(samples))
	for i, s := range samples {
		ram[i] = float64(s.RAMKB) / 1024
		total[i] = ram[i] + float64(s.SwapKB)/1024
	}

	// Total behind, RAM in front: the visible orange band is the SWAP share.
	totalLine, err := line(xs, total, swapColor, nil)
	if err != nil {
		return err
	}
	totalLine.FillColor = swapFill
	pl.Add(totalLine)

	ramLine, err := line(xs, ram, ramColor, nil)
	if err != nil {
		return err
	}
	ramLine.FillColor = ramFill
	pl.Add(ramLine)

	pl.Legend.Add("RAM", ramLine)
	pl.Legend.Add("SWAP", totalLine)
	pl.Legend.Top = true
	pl.Legend.Left = true

	if err := addBatchShading(pl, xs, total, samples); err != nil {
		return err
	}
	if err := addMarkers(pl, series.Markers, maxX(xs), true); err != nil {
		return err
	}
	if showPeak(series, meta) {
		if err := p.addPeakLine(pl, series, samples, xs, meta); err != nil {
			return err
		}
	}

	return savePlot(pl, path)
}

// showPeak limits the peak line to hybrid TTP runs.
func showPeak(series *models.MemorySeries, meta models.RunMetadata) bool {
	return series.PeakRAMKB > 0 &&
		meta.Component == models.ComponentTTP &&
		meta.Variant == models.VariantHybrid
}

// addPeakLine draws a short red dashed segment at the peak RAM level, ending
// at the moment the peak was recorded.
func (p *Plotter) addPeakLine(pl *plot.Plot, series *models.MemorySeries, samples []models.Sample, xs []float64, meta models.RunMetadata) error {
	if len(samples) < 2 {
		return nil
	}
	peakSeconds := series.PeakTime.Sub(samples[0].Time).Seconds()
	peakX := peakSeconds
	if meta.Component == models.ComponentServer {
		peakX = peakSeconds / 3600
	}

	peakIndex := -1
	for i := range xs {
		if xs[i] >= peakX {
			peakIndex = i
			break
		}
	}
	if peakIndex <= 0 {
		return nil
	}

	peakMB := float64(series.PeakRAMKB) / 1024
	seg, err := line(
		[]float64{xs[peakIndex-1], peakX},
		[]float64{peakMB, peakMB},
		peakColor,
		[]vg.Length{vg.Points(6), vg.Points(3)},
	)
	if err != nil {
		return err
	}
	pl.Add(seg)
	return nil
}

// addMarkers draws one horizontal line per lifecycle marker. On stacked
// charts the line sits at the combined RAM+SWAP height.
func addMarkers(pl *plot.Plot, markers []models.LifecycleMarker, xMax float64, stacked bool) error {
	for _, m := range markers {
		y := m.RAMMB
		if stacked {
			y += float64(m.SwapKB) / 1024
		}

		var c color.Color
		var dashes []vg.Length
		switch m.Kind {
		case models.MarkerKeysParams:
			c = keysColor
		case models.MarkerZeroMQStart:
			c, dashes = zmqColor, []vg.Length{vg.Points(1), vg.Points(3)}
		case models.MarkerZeroMQEnd:
			c, dashes = zmqColor, []vg.Length{vg.Points(6), vg.Points(3)}
		default:
			continue
		}

		l, err := line([]float64{0, xMax}, []float64{y, y}, c, dashes)
		if err != nil {
			return err
		}
		l.Width = vg.Points(2)
		pl.Add(l)
	}
	return nil
}

// addBatchShading darkens the area under the curve for in-batch intervals.
func addBatchShading(pl *plot.Plot, xs, values []float64, samples []models.Sample) error {
	for i := 0; i+1 < len(samples); i++ {
		if !samples[i].InBatch {
			continue
		}
		quad := plotter.XYs{
			{X: xs[i], Y: 0},
			{X: xs[i], Y: values[i]},
			{X: xs[i+1], Y: values[i+1]},
			{X: xs[i+1], Y: 0},
		}
		poly, err := plotter.NewPolygon(quad)
		if err != nil {
			return fmt.Errorf("failed to build batch shading: %w", err)
		}
		poly.Color = batchShade
		poly.LineStyle.Width = 0
		pl.Add(poly)
	}
	return nil
}

func addScatter(pl *plot.Plot, xs, ys []float64, c color.Color) error {
	s, err := plotter.NewScatter(xyPoints(xs, ys))
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	pl.Add(s)
	return nil
}

func addFilledLine(pl *plot.Plot, xs, ys []float64, fill color.Color) error {
	l, err := line(xs, ys, color.Transparent, nil)
	if err != nil {
		return err
	}
	l.FillColor = fill
	pl.Add(l)
	return nil
}

func line(xs, ys []float64, c color.Color, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(xyPoints(xs, ys))
	if err != nil {
		return nil, fmt.Errorf("failed to build line: %w", err)
	}
	l.Color = c
	l.Width = vg.Points(1)
	l.Dashes = dashes
	return l, nil
}

func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

func maxX(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}

func newPlot(titleText, xlabel, ylabel string) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = titleText
	pl.X.Label.Text = xlabel
	pl.Y.Label.Text = ylabel
	pl.Add(plotter.NewGrid())
	return pl
}

func title(meta models.RunMetadata, suffix string) string {
	return fmt.Sprintf("%s %s - %s", strings.ToUpper(string(meta.Component)), meta.Variant.Label(), suffix)
}

func savePlot(pl *plot.Plot, path string) error {
	pl.X.Min = 0
	pl.Y.Min = 0
	if err := pl.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("failed to save graph: %w", err)
	}
	return nil
}
