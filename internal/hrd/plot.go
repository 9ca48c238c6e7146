package hrd

import (
	"fmt"
	"strings"

	"github.com/ytget/hr-diagram/internal/locale"
	"github.com/ytget/hr-diagram/internal/model"
)

// Figure labels
const (
	AxisLogTeff = "Log Teff"
	AxisLogL    = "Log L"
	LegendMass  = "Mass Values"
)

// Star marker style
const (
	StarMarkerSize   = 12
	StarMarkerSymbol = "circle"
	StarMarkerColor  = "red"
	TrackMarkerSize  = 10
)

// PlotMetallicity describes the chart for one track table. Without a star it
// yields a single warning; with a table lacking required columns it yields a
// single error. Otherwise it yields the figure, preceded by a notice when rows
// had to be skipped.
func PlotMetallicity(table *model.TrackTable, metallicity model.Metallicity, star *model.Star) []Element {
	if star == nil {
		return []Element{messageElement(model.LevelWarning, locale.KeyMsgEnterStar)}
	}

	groups, skipped, err := model.GroupByMass(table)
	if err != nil {
		missing := table.MissingColumns(model.RequiredColumns...)
		return []Element{messageElement(model.LevelError, locale.KeyMsgMissingColumns,
			metallicity.String(), strings.Join(missing, ", "))}
	}

	fig := &Figure{
		Metallicity: metallicity,
		Title:       figureTitle(groups, metallicity),
		XAxisTitle:  AxisLogTeff,
		YAxisTitle:  AxisLogL,
		LegendTitle: LegendMass,
		ShowLegend:  true,
		XReversed:   true,
	}

	for _, g := range groups {
		tr := Trace{
			Name:   g.Label(),
			Mode:   ModeLines,
			X:      make([]float64, 0, len(g.Points)),
			Y:      make([]float64, 0, len(g.Points)),
			Marker: Marker{Size: TrackMarkerSize},
		}
		for _, p := range g.Points {
			tr.X = append(tr.X, p.LogTeff)
			tr.Y = append(tr.Y, p.LogL)
		}
		fig.Traces = append(fig.Traces, tr)
	}

	fig.Traces = append(fig.Traces, starTrace(star))

	var out []Element
	if skipped > 0 {
		out = append(out, messageElement(model.LevelInfo, locale.KeyMsgSkippedRows, skipped, metallicity.String()))
	}
	return append(out, Element{Figure: fig})
}

func starTrace(star *model.Star) Trace {
	return Trace{
		Name:         star.Name,
		Mode:         ModeMarkersText,
		X:            []float64{star.LogTeff},
		Y:            []float64{star.LogL},
		Text:         []string{star.Name},
		TextPosition: TextTopCenter,
		Marker:       Marker{Size: StarMarkerSize, Symbol: StarMarkerSymbol, Color: StarMarkerColor},
	}
}

func figureTitle(groups []model.MassGroup, metallicity model.Metallicity) string {
	if len(groups) == 0 {
		return fmt.Sprintf("Log L vs Log Teff with Metallicity= %s", metallicity)
	}
	lo, hi := groups[0].Mass, groups[0].Mass
	for _, g := range groups[1:] {
		if g.Mass < lo {
			lo = g.Mass
		}
		if g.Mass > hi {
			hi = g.Mass
		}
	}
	return fmt.Sprintf("Log L vs Log Teff for Mass Values from %s to %s with Metallicity= %s",
		model.FormatNumber(lo), model.FormatNumber(hi), metallicity)
}
