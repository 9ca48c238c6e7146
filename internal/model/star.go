package model

import (
	"strconv"
	"strings"
)

// Star is a single observed star placed on the diagram
type Star struct {
	Name    string
	LogTeff float64 // log10 of effective temperature
	LogL    float64 // log10 of luminosity in solar units
}

// Metallicity labels one track table; it is never computed
type Metallicity float64

// Metallicities lists the track tables in render order
var Metallicities = []Metallicity{0.008, 0.019}

// String returns the shortest decimal form, e.g. "0.008"
func (m Metallicity) String() string {
	return FormatNumber(float64(m))
}

// FormatNumber renders a float the way track labels show it: shortest
// round-trip decimal, with ".0" kept on whole numbers ("1.0", not "1").
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
