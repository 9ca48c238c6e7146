package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/ytget/hr-diagram/internal/hrd"
	"github.com/ytget/hr-diagram/internal/model"
)

func siriusFigure(t *testing.T) *hrd.Figure {
	t.Helper()
	table := &model.TrackTable{
		Columns: []string{model.ColumnMass, model.ColumnLogTeff, model.ColumnLogL},
		Rows: [][]string{
			{"0.4", "3.58", "-1.60"}, {"0.4", "3.59", "-1.55"},
			{"1.0", "3.78", "0.01"}, {"1.0", "3.77", "0.33"},
			{"2.0", "4.01", "1.20"}, {"2.0", "3.70", "1.65"},
		},
	}
	elems := hrd.PlotMetallicity(table, 0.008, &model.Star{Name: "Sirius", LogTeff: 3.90, LogL: 1.0})
	if len(elems) != 1 || elems[0].Figure == nil {
		t.Fatalf("Expected a figure, got %+v", elems)
	}
	return elems[0].Figure
}

func TestBuild_SeriesAndAxes(t *testing.T) {
	fig := siriusFigure(t)

	ch, err := Build(fig, Options{Width: 900, Height: 500})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// 3 tracks + star dot + star label
	if len(ch.Series) != 5 {
		t.Fatalf("Expected 5 series, got %d", len(ch.Series))
	}
	if _, ok := ch.Series[4].(gochart.AnnotationSeries); !ok {
		t.Errorf("Last series should be the star label, got %T", ch.Series[4])
	}

	star, ok := ch.Series[3].(gochart.ContinuousSeries)
	if !ok {
		t.Fatalf("Star series should be continuous, got %T", ch.Series[3])
	}
	if star.XValues[0] != 3.90 || star.YValues[0] != 1.0 {
		t.Errorf("Star drawn at (%v, %v), want (3.9, 1.0)", star.XValues[0], star.YValues[0])
	}
	if star.Style.DotWidth <= 0 {
		t.Error("Star should be drawn as a dot")
	}

	xr, ok := ch.XAxis.Range.(*gochart.ContinuousRange)
	if !ok {
		t.Fatalf("Expected ContinuousRange on X axis")
	}
	if !xr.Descending {
		t.Error("Temperature axis should be descending")
	}
	if xr.Min >= 3.58 || xr.Max <= 4.01 {
		t.Errorf("X range [%v, %v] clips data", xr.Min, xr.Max)
	}
	if ch.XAxis.Name != "Log Teff" || ch.YAxis.Name != "Log L" {
		t.Errorf("Unexpected axis names %q / %q", ch.XAxis.Name, ch.YAxis.Name)
	}
	if len(ch.Elements) != 1 {
		t.Error("Legend should be attached")
	}
}

func TestBuild_Errors(t *testing.T) {
	if _, err := Build(nil, Options{}); err == nil {
		t.Error("Expected error for nil figure")
	}
	if _, err := Build(&hrd.Figure{Title: "empty"}, Options{}); err == nil {
		t.Error("Expected error for figure without points")
	}
	bad := &hrd.Figure{Traces: []hrd.Trace{{Name: "x", Mode: "bars", X: []float64{1}, Y: []float64{1}}}}
	if _, err := Build(bad, Options{}); err == nil {
		t.Error("Expected error for unsupported trace mode")
	}
}

func TestBuild_RejectsNonFinitePoints(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"infinite x", []float64{3.7, math.Inf(1)}, []float64{0.1, 0.2}},
		{"negative infinite y", []float64{3.7, 3.8}, []float64{0.1, math.Inf(-1)}},
		{"nan y", []float64{3.7}, []float64{math.NaN()}},
	}

	for _, test := range tests {
		fig := &hrd.Figure{Traces: []hrd.Trace{{Name: "Mass: 1.0 M", Mode: hrd.ModeLines, X: test.x, Y: test.y}}}
		if _, err := Build(fig, Options{Width: 800, Height: 450}); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}

func TestRender_TableWithInfiniteCells(t *testing.T) {
	table := &model.TrackTable{
		Columns: []string{model.ColumnMass, model.ColumnLogTeff, model.ColumnLogL},
		Rows: [][]string{
			{"1.0", "3.7", "0.1"},
			{"1.0", "inf", "0.2"},
			{"1.0", "3.8", "-inf"},
			{"1.0", "3.9", "0.4"},
		},
	}
	elems := hrd.PlotMetallicity(table, 0.008, &model.Star{Name: "Vega", LogTeff: 3.98, LogL: 1.6})
	if len(elems) != 2 || elems[0].Message == nil || elems[1].Figure == nil {
		t.Fatalf("Expected skipped-rows notice then figure, got %+v", elems)
	}
	if n := len(elems[1].Figure.Traces[0].X); n != 2 {
		t.Errorf("Expected 2 finite points on the track, got %d", n)
	}

	data, err := Render(elems[1].Figure, Options{Width: 800, Height: 450}, FormatPNG)
	if err != nil {
		t.Fatalf("PNG render failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("PNG output lacks PNG signature")
	}
}

func TestRender_PNGAndSVG(t *testing.T) {
	fig := siriusFigure(t)
	opts := Options{Width: 800, Height: 450}

	pngData, err := Render(fig, opts, FormatPNG)
	if err != nil {
		t.Fatalf("PNG render failed: %v", err)
	}
	if !bytes.HasPrefix(pngData, []byte("\x89PNG")) {
		t.Error("PNG output lacks PNG signature")
	}

	svgData, err := Render(fig, opts, FormatSVG)
	if err != nil {
		t.Fatalf("SVG render failed: %v", err)
	}
	if !strings.Contains(string(svgData), "<svg") {
		t.Error("SVG output lacks <svg element")
	}
}

func TestImage_Size(t *testing.T) {
	img := Image(siriusFigure(t), Options{Width: 700, Height: 400})
	b := img.Bounds()
	if b.Dx() != 700 || b.Dy() != 400 {
		t.Errorf("Expected 700x400 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestImage_FallsBackToPlaceholder(t *testing.T) {
	img := Image(&hrd.Figure{Title: "empty"}, Options{Width: 640, Height: 360})
	if img == nil {
		t.Fatal("Expected a placeholder image")
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 360 {
		t.Errorf("Placeholder should keep requested size, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestPlaceholder_MinimumSize(t *testing.T) {
	img := Placeholder(0, 0, "no data")
	b := img.Bounds()
	if b.Dx() != placeholderMinWidth || b.Dy() != placeholderMinHeight {
		t.Errorf("Expected minimum size, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		ok    bool
	}{
		{"png", FormatPNG, true},
		{"svg", FormatSVG, true},
		{"jpg", "", false},
	}

	for _, test := range tests {
		got, err := ParseFormat(test.input)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("ParseFormat(%q) = %q, %v", test.input, got, err)
		}
	}
	if FormatSVG.Extension() != ".svg" {
		t.Errorf("Unexpected extension %q", FormatSVG.Extension())
	}
}

func TestPaddedRange_NeverZeroWidth(t *testing.T) {
	r := paddedRange([]float64{3.9})
	if r.Max-r.Min < MinAxisSpan {
		t.Errorf("Range [%v, %v] narrower than %v", r.Min, r.Max, MinAxisSpan)
	}
	if r.Min >= 3.9 || r.Max <= 3.9 {
		t.Errorf("Range [%v, %v] should contain the value", r.Min, r.Max)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		rawW, prefW, prefH int
		wantW, wantH       int
	}{
		{200, 0, 0, MinWidth, 330},
		{1000, 900, 500, 900, 495},
		{2000, 0, 0, 2000, MaxHeight},
		{800, 0, 200, 800, MinHeight},
	}

	for _, test := range tests {
		w, h := Dimensions(test.rawW, test.prefW, test.prefH)
		if w != test.wantW || h != test.wantH {
			t.Errorf("Dimensions(%d, %d, %d) = %dx%d, want %dx%d",
				test.rawW, test.prefW, test.prefH, w, h, test.wantW, test.wantH)
		}
	}
}
