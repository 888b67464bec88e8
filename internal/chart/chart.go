package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/obsidianstack/empviz/internal/aggregate"
)

// Axis labels and bar styling.
const (
	xLabel = "Department"
	yLabel = "Count"

	barWidth = 28 // points
)

var barColor = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}

var (
	errNoData = errors.New("chart: no data")
	errClosed = errors.New("chart: figure already released")
)

// Options controls the rendered figure.
type Options struct {
	WidthIn  float64
	HeightIn float64

	// TickRotationDeg rotates x tick labels counter-clockwise, in degrees.
	TickRotationDeg float64
}

// Render draws counts as a bar chart and returns the SVG markup, without
// XML prolog, ready to embed in an HTML page. Bars appear in the order of
// counts.
func Render(counts []aggregate.DepartmentCount, opts Options) (string, error) {
	if len(counts) == 0 {
		return "", errNoData
	}

	fig, err := newFigure(counts, opts)
	if err != nil {
		return "", err
	}
	defer fig.Close()

	return fig.SVG()
}

// figure owns the in-memory plot and canvas for one render. Close drops
// both; SVG fails afterwards.
type figure struct {
	plot   *plot.Plot
	canvas *vgsvg.Canvas
}

func newFigure(counts []aggregate.DepartmentCount, opts Options) (*figure, error) {
	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	total := 0
	maxCount := 0
	for i, dc := range counts {
		values[i] = float64(dc.Count)
		names[i] = dc.Department
		total += dc.Count
		if dc.Count > maxCount {
			maxCount = dc.Count
		}
	}

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return nil, fmt.Errorf("chart: bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Department Distribution (n=%d)", total)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid(), bars)
	p.NominalX(names...)

	p.Y.Min = 0
	p.Y.Max = math.Ceil(float64(maxCount) * 1.1)

	if opts.TickRotationDeg != 0 {
		p.X.Tick.Label.Rotation = opts.TickRotationDeg * math.Pi / 180
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}

	c := vgsvg.New(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch)
	return &figure{plot: p, canvas: c}, nil
}

// SVG draws the plot onto the canvas and returns the <svg> element.
func (f *figure) SVG() (string, error) {
	if f.plot == nil || f.canvas == nil {
		return "", errClosed
	}

	f.plot.Draw(draw.New(f.canvas))

	var buf bytes.Buffer
	if _, err := f.canvas.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("chart: write svg: %w", err)
	}

	markup := buf.String()
	if i := strings.Index(markup, "<svg"); i > 0 {
		markup = markup[i:]
	}
	return markup, nil
}

// Close releases the plot and canvas.
func (f *figure) Close() {
	f.plot = nil
	f.canvas = nil
}
