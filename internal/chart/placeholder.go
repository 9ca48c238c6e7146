package chart

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Placeholder size fallbacks and layout
const (
	placeholderMinWidth  = 320
	placeholderMinHeight = 120
	placeholderMargin    = 12
	placeholderLineGap   = 4
)

var (
	placeholderBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	placeholderText       = color.RGBA{R: 183, G: 28, B: 28, A: 255}
)

// Placeholder returns a plain image with text wrapped across lines. It stands
// in for a chart that could not be rendered.
func Placeholder(w, h int, text string) image.Image {
	if w < placeholderMinWidth {
		w = placeholderMinWidth
	}
	if h < placeholderMinHeight {
		h = placeholderMinHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.NewUniform(placeholderText), Face: face}
	lineH := face.Metrics().Height.Ceil() + placeholderLineGap

	y := placeholderMargin + face.Metrics().Ascent.Ceil()
	for _, line := range wrapText(dr, text, w-2*placeholderMargin) {
		if y > h-placeholderMargin {
			break
		}
		dr.Dot = fixed.Point26_6{X: fixed.I(placeholderMargin), Y: fixed.I(y)}
		dr.DrawString(line)
		y += lineH
	}
	return img
}

// wrapText splits text into lines no wider than maxW pixels
func wrapText(dr *font.Drawer, text string, maxW int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && dr.MeasureString(next).Ceil() > maxW {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
