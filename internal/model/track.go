package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Required column headers. The temperature and luminosity headers carry
// literal double quotes as written by the track export.
const (
	ColumnMass    = "mass"
	ColumnLogTeff = `"Log Teff"`
	ColumnLogL    = `"Log L"`
)

// RequiredColumns lists every header a track table must provide
var RequiredColumns = []string{ColumnMass, ColumnLogTeff, ColumnLogL}

// ErrMissingColumns is returned when a table lacks a required header
var ErrMissingColumns = errors.New("required columns not found")

// TrackTable is a tabulated evolutionary track set for one metallicity.
// Rows keep the file order.
type TrackTable struct {
	Columns []string
	Rows    [][]string
}

// TrackPoint is one numeric sample of a track
type TrackPoint struct {
	Mass    float64
	LogTeff float64
	LogL    float64
}

// MassGroup holds the rows sharing one mass value, in table order
type MassGroup struct {
	Mass   float64
	Points []TrackPoint
}

// Label returns the legend text for the group
func (g MassGroup) Label() string {
	return fmt.Sprintf("Mass: %s M", FormatNumber(g.Mass))
}

// ColumnIndex returns the position of the named column or -1
func (t *TrackTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has the named column
func (t *TrackTable) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// MissingColumns returns the names that are not present, in argument order
func (t *TrackTable) MissingColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// GroupByMass partitions the table into mass groups ordered by the first
// appearance of each distinct mass. Rows with a non-numeric mass,
// temperature or luminosity cell are skipped; their count is returned. The
// only error is ErrMissingColumns.
func GroupByMass(t *TrackTable) ([]MassGroup, int, error) {
	if missing := t.MissingColumns(RequiredColumns...); len(missing) > 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	massIdx := t.ColumnIndex(ColumnMass)
	teffIdx := t.ColumnIndex(ColumnLogTeff)
	lumIdx := t.ColumnIndex(ColumnLogL)

	var groups []MassGroup
	index := make(map[float64]int)
	skipped := 0

	for _, row := range t.Rows {
		mass, ok1 := cellFloat(row, massIdx)
		teff, ok2 := cellFloat(row, teffIdx)
		lum, ok3 := cellFloat(row, lumIdx)
		if !ok1 || !ok2 || !ok3 {
			skipped++
			continue
		}

		pos, seen := index[mass]
		if !seen {
			pos = len(groups)
			index[mass] = pos
			groups = append(groups, MassGroup{Mass: mass})
		}
		groups[pos].Points = append(groups[pos].Points, TrackPoint{Mass: mass, LogTeff: teff, LogL: lum})
	}

	return groups, skipped, nil
}

// cellFloat parses a numeric cell; NaN, infinities and out-of-range positions are rejected
func cellFloat(row []string, idx int) (float64, bool) {
	if idx < 0 || idx >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
