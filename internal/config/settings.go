package config

import (
	"fyne.io/fyne/v2"
	"github.com/ytget/hr-diagram/internal/platform"
)

// ExportFormat selects the file type written by chart export
type ExportFormat string

const (
	ExportPNG ExportFormat = "png"
	ExportSVG ExportFormat = "svg"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir        = "data_directory"
	KeyExportDir      = "export_directory"
	KeyChartWidth     = "chart_width"
	KeyChartHeight    = "chart_height"
	KeyExportFormat   = "export_format"
	KeyLanguage       = "app_language"
	KeyRememberInputs = "remember_inputs"
)

// Default values
const (
	DefaultDataDir        = "."
	DefaultChartWidth     = 900
	DefaultChartHeight    = 500
	DefaultExportFormat   = ExportPNG
	DefaultLanguage       = "system"
	DefaultRememberInputs = false
)

// Chart size limits
const (
	MinChartWidth  = 600
	MaxChartWidth  = 2400
	MinChartHeight = 300
	MaxChartHeight = 1600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataDirectory returns the directory holding the track tables
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		s.SetDataDirectory(DefaultDataDir)
		return DefaultDataDir
	}
	return dir
}

// SetDataDirectory sets the track table directory
func (s *Settings) SetDataDirectory(dir string) {
	if dir == "" {
		dir = DefaultDataDir
	}
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetExportDirectory returns the directory charts are exported to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir := platform.DefaultExportDir()
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetChartWidth returns the rendered chart width in pixels
func (s *Settings) GetChartWidth() int {
	value := s.app.Preferences().Int(KeyChartWidth)
	if value <= 0 {
		s.SetChartWidth(DefaultChartWidth)
		return DefaultChartWidth
	}
	return value
}

// SetChartWidth sets the chart width, clamped to the supported range
func (s *Settings) SetChartWidth(width int) {
	s.app.Preferences().SetInt(KeyChartWidth, clamp(width, MinChartWidth, MaxChartWidth))
}

// GetChartHeight returns the rendered chart height in pixels
func (s *Settings) GetChartHeight() int {
	value := s.app.Preferences().Int(KeyChartHeight)
	if value <= 0 {
		s.SetChartHeight(DefaultChartHeight)
		return DefaultChartHeight
	}
	return value
}

// SetChartHeight sets the chart height, clamped to the supported range
func (s *Settings) SetChartHeight(height int) {
	s.app.Preferences().SetInt(KeyChartHeight, clamp(height, MinChartHeight, MaxChartHeight))
}

// GetExportFormat returns the configured export format
func (s *Settings) GetExportFormat() ExportFormat {
	format := s.app.Preferences().String(KeyExportFormat)
	if format == "" {
		s.SetExportFormat(DefaultExportFormat)
		return DefaultExportFormat
	}
	return ExportFormat(format)
}

// SetExportFormat sets the export format; unknown values fall back to PNG
func (s *Settings) SetExportFormat(format ExportFormat) {
	if format != ExportPNG && format != ExportSVG {
		format = DefaultExportFormat
	}
	s.app.Preferences().SetString(KeyExportFormat, string(format))
}

// GetExportFormatOptions returns available export formats
func (s *Settings) GetExportFormatOptions() []ExportFormat {
	return []ExportFormat{ExportPNG, ExportSVG}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRememberInputs returns whether star inputs survive a restart
func (s *Settings) GetRememberInputs() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberInputs, DefaultRememberInputs)
}

// SetRememberInputs sets whether star inputs survive a restart
func (s *Settings) SetRememberInputs(remember bool) {
	s.app.Preferences().SetBool(KeyRememberInputs, remember)
}

// InputStore returns the store for star inputs: app preferences when inputs
// are remembered, otherwise a fresh session-only store.
func (s *Settings) InputStore() InputStore {
	if s.GetRememberInputs() {
		return s.app.Preferences()
	}
	return NewMemoryInputStore()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
