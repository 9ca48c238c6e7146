package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/hr-diagram/internal/config"
	"github.com/ytget/hr-diagram/internal/locale"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *locale.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataDirEntry   *widget.Entry
	exportDirEntry *widget.Entry
	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
	formatSelect   *widget.Select
	languageSelect *widget.Select
	rememberCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a confirmed save
func NewSettingsDialog(settings *config.Settings, localization *locale.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.dataDirEntry = widget.NewEntry()
	sd.dataDirEntry.SetPlaceHolder(config.DefaultDataDir)
	dataDirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(text(locale.KeyBrowse), func() { sd.browseInto(sd.dataDirEntry) }), sd.dataDirEntry)

	sd.exportDirEntry = widget.NewEntry()
	exportDirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(text(locale.KeyBrowse), func() { sd.browseInto(sd.exportDirEntry) }), sd.exportDirEntry)

	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(strconv.Itoa(config.MinChartWidth) + "-" + strconv.Itoa(config.MaxChartWidth))
	sd.heightEntry = widget.NewEntry()
	sd.heightEntry.SetPlaceHolder(strconv.Itoa(config.MinChartHeight) + "-" + strconv.Itoa(config.MaxChartHeight))

	formatOptions := []string{}
	for _, f := range sd.settings.GetExportFormatOptions() {
		formatOptions = append(formatOptions, string(f))
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.rememberCheck = widget.NewCheck(text(locale.KeyRememberInputs), nil)

	form := widget.NewForm(
		widget.NewFormItem(text(locale.KeyDataDirectory), dataDirRow),
		widget.NewFormItem(text(locale.KeyExportDirectory), exportDirRow),
		widget.NewFormItem(text(locale.KeyChartWidth), sd.widthEntry),
		widget.NewFormItem(text(locale.KeyChartHeight), sd.heightEntry),
		widget.NewFormItem(text(locale.KeyExportFormat), sd.formatSelect),
		widget.NewFormItem(text(locale.KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(locale.KeySettings),
		text(locale.KeySave),
		text(locale.KeyCancel),
		container.NewVBox(form, sd.rememberCheck),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.widthEntry.SetText(strconv.Itoa(sd.settings.GetChartWidth()))
	sd.heightEntry.SetText(strconv.Itoa(sd.settings.GetChartHeight()))
	sd.formatSelect.SetSelected(string(sd.settings.GetExportFormat()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.rememberCheck.SetChecked(sd.settings.GetRememberInputs())
}

// browseInto fills entry with a folder picked by the user
func (sd *SettingsDialog) browseInto(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(locale.KeySettings),
		sd.localization.GetText(locale.KeySettingsSaved), sd.window)
}

// apply writes the dialog fields to settings and notifies the owner
func (sd *SettingsDialog) apply() {
	if sd.dataDirEntry.Text != "" {
		sd.settings.SetDataDirectory(sd.dataDirEntry.Text)
	}
	if sd.exportDirEntry.Text != "" {
		sd.settings.SetExportDirectory(sd.exportDirEntry.Text)
	}
	if w, err := strconv.Atoi(sd.widthEntry.Text); err == nil {
		sd.settings.SetChartWidth(w)
	}
	if h, err := strconv.Atoi(sd.heightEntry.Text); err == nil {
		sd.settings.SetChartHeight(h)
	}
	if sd.formatSelect.Selected != "" {
		sd.settings.SetExportFormat(config.ExportFormat(sd.formatSelect.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetRememberInputs(sd.rememberCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
