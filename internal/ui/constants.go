package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconExport   = "💾"
	IconStar     = "★"
)

// Number entry formatting
const (
	NumberFormat      = "%.2f"
	NumberPlaceholder = "0.00"
)

// Layout sizing
const (
	ChartWidthFraction float32 = 0.95
	ChartWidthMargin   float32 = 12
	LogoSize           float32 = 32
	SettingsDialogW    float32 = 500
	SettingsDialogH    float32 = 460
)
