package chart

// Package chart rasterizes hrd figures with go-chart: one line series per
// mass track, a dot series with an annotation for the star, a descending
// temperature axis and a legend. Output is PNG for the window and PNG or SVG
// for export.
