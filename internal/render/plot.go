// Package render draws detection results as a stacked PNG chart: the value
// row with flagged samples marked, the saliency row and the score row with
// the decision threshold drawn in.
package render

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/srdetect/srdetect/internal/spectral"
	"github.com/srdetect/srdetect/internal/timeseries"
)

// Options control chart appearance.
type Options struct {
	Title     string    // title of the value row
	Threshold float64   // decision threshold drawn on the score row
	Width     vg.Length // 0 selects the default
	Height    vg.Length // 0 selects the default
}

const timeTickFormat = "01-02 15:04"

var (
	seriesColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	anomalyColor   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	thresholdColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// WritePNG renders the chart for series and result into a PNG file.
func WritePNG(path string, series timeseries.Series, result *spectral.Result, opts Options) error {
	if len(result.Flags) != len(series) {
		return fmt.Errorf("result has %d rows for %d samples", len(result.Flags), len(series))
	}

	width := opts.Width
	if width == 0 {
		width = 32 * vg.Centimeter
	}
	height := opts.Height
	if height == 0 {
		height = 24 * vg.Centimeter
	}

	valueRow, err := valuePlot(series, result, opts.Title)
	if err != nil {
		return err
	}
	saliencyRow, err := sequencePlot("saliency", series, result.Saliency)
	if err != nil {
		return err
	}
	scoreRow, err := scorePlot(series, result, opts.Threshold)
	if err != nil {
		return err
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 3,
		Cols: 1,
		PadY: vg.Millimeter * 4,
	}

	rows := []*plot.Plot{valueRow, saliencyRow, scoreRow}
	for i, p := range rows {
		p.Draw(tiles.At(dc, 0, i))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	return nil
}

func newRow(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Tick.Marker = plot.TimeTicks{Format: timeTickFormat}
	p.Add(plotter.NewGrid())
	return p
}

func valuePlot(series timeseries.Series, result *spectral.Result, title string) (*plot.Plot, error) {
	if title == "" {
		title = "value"
	}
	p := newRow(title)

	line, err := plotter.NewLine(seriesXYs(series))
	if err != nil {
		return nil, fmt.Errorf("value line: %w", err)
	}
	line.LineStyle.Color = seriesColor
	p.Add(line)

	var flagged plotter.XYs
	for i, pt := range series {
		if result.Flags[i] {
			flagged = append(flagged, plotter.XY{X: float64(pt.Time.Unix()), Y: pt.Value})
		}
	}
	if len(flagged) > 0 {
		scatter, err := plotter.NewScatter(flagged)
		if err != nil {
			return nil, fmt.Errorf("anomaly markers: %w", err)
		}
		scatter.GlyphStyle.Color = anomalyColor
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	return p, nil
}

func sequencePlot(title string, series timeseries.Series, values []float64) (*plot.Plot, error) {
	p := newRow(title)

	line, err := plotter.NewLine(finiteXYs(series, values))
	if err != nil {
		return nil, fmt.Errorf("%s line: %w", title, err)
	}
	line.LineStyle.Color = seriesColor
	p.Add(line)

	return p, nil
}

func scorePlot(series timeseries.Series, result *spectral.Result, threshold float64) (*plot.Plot, error) {
	p, err := sequencePlot("score", series, result.Score)
	if err != nil {
		return nil, err
	}

	if len(series) > 0 {
		bounds := plotter.XYs{
			{X: float64(series[0].Time.Unix()), Y: threshold},
			{X: float64(series[len(series)-1].Time.Unix()), Y: threshold},
		}
		line, err := plotter.NewLine(bounds)
		if err != nil {
			return nil, fmt.Errorf("threshold line: %w", err)
		}
		line.LineStyle.Color = thresholdColor
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
	}

	return p, nil
}

func seriesXYs(series timeseries.Series) plotter.XYs {
	xys := make(plotter.XYs, len(series))
	for i, pt := range series {
		xys[i] = plotter.XY{X: float64(pt.Time.Unix()), Y: pt.Value}
	}
	return xys
}

// finiteXYs pairs timestamps with values, skipping non-finite entries (a
// zero local average leaves NaN or infinity in the score sequence).
func finiteXYs(series timeseries.Series, values []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(series[i].Time.Unix()), Y: v})
	}
	return xys
}
