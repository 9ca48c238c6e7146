package hrd

// Package hrd turns a star observation and the evolutionary track tables into
// a render description: an ordered list of user-facing messages and chart
// figures. Nothing here draws or displays; every interaction re-runs the whole
// pipeline from the current inputs.
