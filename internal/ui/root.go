package ui

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/hr-diagram/internal/chart"
	"github.com/ytget/hr-diagram/internal/config"
	"github.com/ytget/hr-diagram/internal/hrd"
	"github.com/ytget/hr-diagram/internal/locale"
	"github.com/ytget/hr-diagram/internal/model"
	"github.com/ytget/hr-diagram/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *locale.Localization
	mobile       *MobileUI
	store        config.InputStore

	// Input form
	nameEntry  *widget.Entry
	teffLabel  *widget.Label
	teffEntry  *widget.Entry
	lumLabel   *widget.Label
	lumEntry   *widget.Entry
	numbersBox *fyne.Container

	// Messages and charts of the last pass
	output     *fyne.Container
	lastOutput hrd.Output

	revealExports bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := locale.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		store:        settings.InputStore(),

		revealExports: true,
	}

	window.SetTitle(localization.GetText(locale.KeyAppTitle))

	ui.setupUI()
	ui.rerender()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	text := ui.localization.GetText

	ui.createMenu()

	title := widget.NewLabelWithStyle(text(locale.KeyWelcome), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameSubHeadingText

	ui.nameEntry = widget.NewEntry()
	ui.nameEntry.SetPlaceHolder(text(locale.KeyEnterStarName))

	ui.teffLabel = widget.NewLabel("")
	ui.teffEntry = ui.newNumberEntry()
	ui.lumLabel = widget.NewLabel("")
	ui.lumEntry = ui.newNumberEntry()

	// Values are restored before callbacks exist so restoring does not re-render
	ui.restoreInputs()

	ui.nameEntry.OnChanged = ui.onNameChanged
	ui.teffEntry.OnChanged = func(s string) { ui.onNumberChanged(config.InputLogTeff, s) }
	ui.lumEntry.OnChanged = func(s string) { ui.onNumberChanged(config.InputLogL, s) }
	ui.teffEntry.OnSubmitted = func(string) { ui.reformatNumber(ui.teffEntry) }
	ui.lumEntry.OnSubmitted = func(string) { ui.reformatNumber(ui.lumEntry) }

	ui.numbersBox = container.NewVBox(ui.teffLabel, ui.teffEntry, ui.lumLabel, ui.lumEntry)
	ui.updateNumberLabels()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	exportBtn := widget.NewButton(IconExport, ui.onExport)
	exportBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn, exportBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn, exportBtn)
	}

	form := container.NewVBox(
		container.NewBorder(nil, nil, left, nil, title),
		widget.NewLabel(text(locale.KeyStarName)),
		ui.nameEntry,
		ui.numbersBox,
		widget.NewSeparator(),
	)

	ui.output = container.NewVBox()

	content := container.NewBorder(
		form,                            // top
		nil,                             // bottom
		nil,                             // left
		nil,                             // right
		container.NewVScroll(ui.output), // center
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	exportItem := fyne.NewMenuItem(text(locale.KeyExport), ui.onExport)
	settingsItem := fyne.NewMenuItem(text(locale.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(text(locale.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(text(locale.KeyFile), exportItem, settingsItem),
		languageMenu,
	))
}

// newNumberEntry creates an entry accepting a decimal number or nothing
func (ui *RootUI) newNumberEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(NumberPlaceholder)
	entry.Validator = func(s string) error {
		if _, err := parseNumber(s); err != nil {
			return errors.New(ui.localization.GetText(locale.KeyInvalidNumber))
		}
		return nil
	}
	return entry
}

// restoreInputs fills the form from the input store
func (ui *RootUI) restoreInputs() {
	ui.nameEntry.SetText(ui.store.String(config.InputStarName))
	ui.teffEntry.SetText(formatNumber(ui.store.Float(config.InputLogTeff)))
	ui.lumEntry.SetText(formatNumber(ui.store.Float(config.InputLogL)))
}

// onNameChanged stores the name and re-runs the whole pass
func (ui *RootUI) onNameChanged(name string) {
	ui.store.SetString(config.InputStarName, name)
	ui.updateNumberLabels()
	ui.rerender()
}

// onNumberChanged stores a parsed number; text that does not parse keeps the
// last good value and is flagged by the entry validator
func (ui *RootUI) onNumberChanged(key, s string) {
	v, err := parseNumber(s)
	if err != nil {
		return
	}
	ui.store.SetFloat(key, v)
	ui.rerender()
}

// reformatNumber shows the entry value with two decimals
func (ui *RootUI) reformatNumber(entry *widget.Entry) {
	if v, err := parseNumber(entry.Text); err == nil {
		entry.SetText(formatNumber(v))
	}
}

// updateNumberLabels names the star in the prompts and shows the number
// fields only once a name exists
func (ui *RootUI) updateNumberLabels() {
	name := ui.store.String(config.InputStarName)
	ui.teffLabel.SetText(ui.localization.Format(locale.KeyLogTeff, name))
	ui.lumLabel.SetText(ui.localization.Format(locale.KeyLogL, name))
	if name == "" {
		ui.numbersBox.Hide()
	} else {
		ui.numbersBox.Show()
	}
}

// rerender runs a fresh pass from the current inputs and replaces the output area
func (ui *RootUI) rerender() {
	pipeline := hrd.NewPipeline(ui.settings.GetDataDirectory())
	ui.lastOutput = pipeline.RunInputs(ui.store)
	ui.showOutput(ui.lastOutput)
}

// showOutput draws messages as labels and figures as chart images, in order
func (ui *RootUI) showOutput(out hrd.Output) {
	w, h := ui.chartSize()
	objects := make([]fyne.CanvasObject, 0, len(out.Elements))

	for _, e := range out.Elements {
		if e.Message != nil {
			objects = append(objects, ui.messageLabel(*e.Message))
			continue
		}
		img := canvas.NewImageFromImage(chart.Image(e.Figure, chart.Options{Width: w, Height: h}))
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		objects = append(objects, img)
	}

	ui.output.Objects = objects
	ui.output.Refresh()
}

// messageLabel renders a pipeline message with importance matching its level
func (ui *RootUI) messageLabel(m hrd.Message) *widget.Label {
	label := widget.NewLabel(m.Text(ui.localization))
	label.Wrapping = fyne.TextWrapWord
	switch m.Level {
	case model.LevelError:
		label.Importance = widget.DangerImportance
	case model.LevelWarning:
		label.Importance = widget.WarningImportance
	default:
		label.Importance = widget.LowImportance
	}
	return label
}

// chartSize fits charts to the window, capped by the configured size
func (ui *RootUI) chartSize() (int, int) {
	raw := 0
	if c := ui.window.Canvas(); c != nil {
		raw = int(c.Size().Width*ChartWidthFraction - ChartWidthMargin)
	}
	pw, ph := ui.mobile.PreferredChartSize(ui.settings.GetChartWidth(), ui.settings.GetChartHeight())
	return chart.Dimensions(raw, pw, ph)
}

// onExport writes the charts of the last pass to the export directory
func (ui *RootUI) onExport() {
	text := ui.localization.GetText

	if len(ui.lastOutput.Figures()) == 0 {
		dialog.ShowInformation(text(locale.KeyExport), text(locale.KeyNothingToExport), ui.window)
		return
	}

	dir := ui.settings.GetExportDirectory()
	opts := chart.Options{Width: ui.settings.GetChartWidth(), Height: ui.settings.GetChartHeight()}
	paths, err := chart.Export(ui.lastOutput, dir, chart.Format(ui.settings.GetExportFormat()), opts)
	if err != nil {
		log.Printf("[ui] %s: export failed: %v", ui.lastOutput.PassID, err)
		dialog.ShowError(fmt.Errorf("%s: %w", text(locale.KeyErrorExporting), err), ui.window)
		return
	}

	log.Printf("[ui] %s: exported %d chart(s) to %s", ui.lastOutput.PassID, len(paths), dir)
	dialog.ShowInformation(text(locale.KeyExport), ui.localization.Format(locale.KeyChartsExported, len(paths), dir), ui.window)

	if !ui.revealExports {
		return
	}
	if err := platform.OpenFileInManager(paths[0]); err != nil {
		log.Printf("[ui] reveal %s: %v", paths[0], err)
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies language and input storage changes, then re-renders
func (ui *RootUI) onSettingsSaved() {
	ui.switchStore(ui.settings.InputStore())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the window with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(locale.KeyAppTitle))
	ui.setupUI()
	ui.rerender()
}

// switchStore moves the current inputs into a new store
func (ui *RootUI) switchStore(next config.InputStore) {
	next.SetString(config.InputStarName, ui.store.String(config.InputStarName))
	next.SetFloat(config.InputLogTeff, ui.store.Float(config.InputLogTeff))
	next.SetFloat(config.InputLogL, ui.store.Float(config.InputLogL))
	ui.store = next
}

// parseNumber reads a decimal; blank text means zero
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return fmt.Sprintf(NumberFormat, v)
}
