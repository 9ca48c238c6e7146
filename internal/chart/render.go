package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ytget/hr-diagram/internal/hrd"
)

// Format is an output encoding
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Extension returns the file extension including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormat accepts "png" or "svg"
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported format %q (want png or svg)", s)
}

// Options controls output size in pixels
type Options struct {
	Width  int
	Height int
}

// Axis padding as a fraction of the data span
const (
	AxisPadFraction = 0.05
	MinAxisSpan     = 0.1
	LineWidth       = 2.0
)

// trackPalette follows the usual plotting qualitative palette
var trackPalette = []drawing.Color{
	{R: 99, G: 110, B: 250, A: 255},
	{R: 0, G: 204, B: 150, A: 255},
	{R: 171, G: 99, B: 250, A: 255},
	{R: 255, G: 161, B: 90, A: 255},
	{R: 25, G: 211, B: 243, A: 255},
	{R: 255, G: 102, B: 146, A: 255},
	{R: 182, G: 232, B: 128, A: 255},
	{R: 255, G: 151, B: 255, A: 255},
	{R: 254, G: 203, B: 82, A: 255},
}

// markerColors maps marker color names to drawing colors
var markerColors = map[string]drawing.Color{
	"red":   gochart.ColorRed,
	"blue":  gochart.ColorBlue,
	"green": gochart.ColorGreen,
}

// TrackColor returns the color of the i-th mass track
func TrackColor(i int) drawing.Color {
	return trackPalette[i%len(trackPalette)]
}

// Build converts a figure to a go-chart chart without rendering it
func Build(fig *hrd.Figure, opts Options) (*gochart.Chart, error) {
	if fig == nil {
		return nil, fmt.Errorf("nil figure")
	}

	xs, ys := collectValues(fig)
	if len(xs) == 0 {
		return nil, fmt.Errorf("figure %q has no points", fig.Title)
	}
	if err := checkFinite(fig); err != nil {
		return nil, err
	}

	xRange := paddedRange(xs)
	xRange.Descending = fig.XReversed
	yRange := paddedRange(ys)

	var series []gochart.Series
	track := 0
	for _, tr := range fig.Traces {
		switch tr.Mode {
		case hrd.ModeLines:
			series = append(series, gochart.ContinuousSeries{
				Name:    tr.Name,
				XValues: tr.X,
				YValues: tr.Y,
				Style: gochart.Style{
					StrokeWidth: LineWidth,
					StrokeColor: TrackColor(track),
				},
			})
			track++
		case hrd.ModeMarkersText:
			series = append(series, markerSeries(tr)...)
		default:
			return nil, fmt.Errorf("trace %q: unsupported mode %q", tr.Name, tr.Mode)
		}
	}

	ch := &gochart.Chart{
		Title:      fig.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: fig.XAxisTitle, Range: xRange},
		YAxis:      gochart.YAxis{Name: fig.YAxisTitle, Range: yRange},
		Series:     series,
	}
	if fig.ShowLegend {
		ch.Elements = []gochart.Renderable{gochart.Legend(ch)}
	}
	return ch, nil
}

// markerSeries draws the star as a dot, plus its label above the dot
func markerSeries(tr hrd.Trace) []gochart.Series {
	col, ok := markerColors[tr.Marker.Color]
	if !ok {
		col = gochart.ColorRed
	}
	dots := gochart.ContinuousSeries{
		Name:    tr.Name,
		XValues: tr.X,
		YValues: tr.Y,
		Style: gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidth:    float64(tr.Marker.Size) / 2,
			DotColor:    col,
		},
	}

	var notes []gochart.Value2
	for i, label := range tr.Text {
		if i >= len(tr.X) || i >= len(tr.Y) {
			break
		}
		notes = append(notes, gochart.Value2{XValue: tr.X[i], YValue: tr.Y[i], Label: label})
	}
	if len(notes) == 0 {
		return []gochart.Series{dots}
	}
	return []gochart.Series{dots, gochart.AnnotationSeries{Annotations: notes}}
}

// Render encodes the figure in the requested format
func Render(fig *hrd.Figure, opts Options, format Format) ([]byte, error) {
	ch, err := Build(fig, opts)
	if err != nil {
		return nil, err
	}

	provider := gochart.PNG
	if format == FormatSVG {
		provider = gochart.SVG
	}

	var buf bytes.Buffer
	if err := ch.Render(provider, &buf); err != nil {
		return nil, fmt.Errorf("render %s chart: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Image renders the figure for on-screen display. Render failures produce a
// placeholder carrying the error text so the window still updates.
func Image(fig *hrd.Figure, opts Options) image.Image {
	data, err := Render(fig, opts, FormatPNG)
	if err != nil {
		return Placeholder(opts.Width, opts.Height, err.Error())
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return Placeholder(opts.Width, opts.Height, fmt.Sprintf("decode chart: %v", err))
	}
	return img
}

func collectValues(fig *hrd.Figure) ([]float64, []float64) {
	var xs, ys []float64
	for _, tr := range fig.Traces {
		xs = append(xs, tr.X...)
		ys = append(ys, tr.Y...)
	}
	return xs, ys
}

// checkFinite rejects traces with NaN or infinite coordinates, which the
// rasterizer cannot stroke
func checkFinite(fig *hrd.Figure) error {
	for _, tr := range fig.Traces {
		for i := range tr.X {
			if !isFinite(tr.X[i]) || (i < len(tr.Y) && !isFinite(tr.Y[i])) {
				return fmt.Errorf("trace %q: point %d is not a finite number", tr.Name, i)
			}
		}
		for i := len(tr.X); i < len(tr.Y); i++ {
			if !isFinite(tr.Y[i]) {
				return fmt.Errorf("trace %q: point %d is not a finite number", tr.Name, i)
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// paddedRange spans the finite values with a margin; it never collapses to zero width
func paddedRange(values []float64) *gochart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 0
	}

	span := hi - lo
	if span < MinAxisSpan {
		mid := (lo + hi) / 2
		lo, hi = mid-MinAxisSpan/2, mid+MinAxisSpan/2
		span = MinAxisSpan
	}
	pad := span * AxisPadFraction
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
