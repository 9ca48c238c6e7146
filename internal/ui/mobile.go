package ui

import (
	"fyne.io/fyne/v2"
)

// Mobile layout adjustments
const (
	MobileChartWidth  = 600
	MobileChartHeight = 420
)

// MobileUI provides mobile-specific sizing decisions
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// PreferredChartSize caps the configured chart size on phones held upright,
// where wide charts would need horizontal scrolling.
func (m *MobileUI) PreferredChartSize(width, height int) (int, int) {
	if !m.IsMobileDevice() || m.IsLandscape() {
		return width, height
	}
	if width > MobileChartWidth {
		width = MobileChartWidth
	}
	if height > MobileChartHeight {
		height = MobileChartHeight
	}
	return width, height
}
