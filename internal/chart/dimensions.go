package chart

// Dimension clamps for on-screen charts
const (
	MinWidth  = 600
	MinHeight = 300
	MaxHeight = 700
	Aspect    = 0.55
)

// Dimensions derives chart width and height from the available width,
// keeping a fixed aspect ratio within sane bounds. A positive preferred
// size caps the result.
func Dimensions(rawW, preferredW, preferredH int) (int, int) {
	w := rawW
	if w < MinWidth {
		w = MinWidth
	}
	if preferredW > 0 && w > preferredW {
		w = preferredW
	}

	h := int(float32(w) * Aspect)
	if preferredH > 0 && h > preferredH {
		h = preferredH
	}
	if h < MinHeight {
		h = MinHeight
	}
	if h > MaxHeight {
		h = MaxHeight
	}
	return w, h
}
