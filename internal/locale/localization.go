package locale

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyWelcome           = "welcome"
	KeyStarName          = "star_name"
	KeyLogTeff           = "log_teff"
	KeyLogL              = "log_l"
	KeyEnterStarName     = "enter_star_name"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyExport            = "export"
	KeyDataDirectory     = "data_directory"
	KeyExportDirectory   = "export_directory"
	KeyChartWidth        = "chart_width"
	KeyChartHeight       = "chart_height"
	KeyExportFormat      = "export_format"
	KeyRememberInputs    = "remember_inputs"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyChartsExported    = "charts_exported"
	KeyNothingToExport   = "nothing_to_export"
	KeyErrorExporting    = "error_exporting"
	KeyInvalidNumber     = "invalid_number"
	KeyMsgEnterStar      = "msg_enter_star"
	KeyMsgMissingColumns = "msg_missing_columns"
	KeyMsgMissingFiles   = "msg_missing_files"
	KeyMsgLoadFailed     = "msg_load_failed"
	KeyMsgSkippedRows    = "msg_skipped_rows"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	if len(args) == 0 {
		return l.GetText(key)
	}
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "HR Diagram",
		KeyWelcome:           "Welcome to Stellar System HR Diagram Plotting!",
		KeyStarName:          "Enter the star name:",
		KeyLogTeff:           "Enter Log Teff for %s:",
		KeyLogL:              "Enter Log L for %s:",
		KeyEnterStarName:     "Star name",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyExport:            "Export Charts…",
		KeyDataDirectory:     "Track Data Directory",
		KeyExportDirectory:   "Export Directory",
		KeyChartWidth:        "Chart Width",
		KeyChartHeight:       "Chart Height",
		KeyExportFormat:      "Export Format",
		KeyRememberInputs:    "Remember star inputs",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyChartsExported:    "Exported %d chart(s) to %s",
		KeyNothingToExport:   "No charts to export yet",
		KeyErrorExporting:    "Error exporting charts",
		KeyInvalidNumber:     "Enter a number",
		KeyMsgEnterStar:      "Please enter star data to plot.",
		KeyMsgMissingColumns: "Columns 'mass', 'Log Teff', or 'Log L' not found in the table for metallicity %s (missing: %s).",
		KeyMsgMissingFiles:   "One or more CSV files not found. Please ensure %s are in the data folder (%s).",
		KeyMsgLoadFailed:     "Could not read track table %s: %s",
		KeyMsgSkippedRows:    "Skipped %d non-numeric row(s) in the table for metallicity %s.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Диаграмма Герцшпрунга-Рассела",
		KeyWelcome:           "Добро пожаловать в построение HR-диаграмм!",
		KeyStarName:          "Введите название звезды:",
		KeyLogTeff:           "Введите Log Teff для %s:",
		KeyLogL:              "Введите Log L для %s:",
		KeyEnterStarName:     "Название звезды",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyExport:            "Экспорт графиков…",
		KeyDataDirectory:     "Папка с треками",
		KeyExportDirectory:   "Папка экспорта",
		KeyChartWidth:        "Ширина графика",
		KeyChartHeight:       "Высота графика",
		KeyExportFormat:      "Формат экспорта",
		KeyRememberInputs:    "Запоминать данные звезды",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyChartsExported:    "Экспортировано графиков: %d в %s",
		KeyNothingToExport:   "Нет графиков для экспорта",
		KeyErrorExporting:    "Ошибка экспорта графиков",
		KeyInvalidNumber:     "Введите число",
		KeyMsgEnterStar:      "Введите данные звезды для построения.",
		KeyMsgMissingColumns: "Столбцы 'mass', 'Log Teff' или 'Log L' не найдены в таблице для металличности %s (нет: %s).",
		KeyMsgMissingFiles:   "Не найдены CSV-файлы. Убедитесь, что %s находятся в папке данных (%s).",
		KeyMsgLoadFailed:     "Не удалось прочитать таблицу %s: %s",
		KeyMsgSkippedRows:    "Пропущено нечисловых строк: %d в таблице для металличности %s.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Diagrama HR",
		KeyWelcome:           "Bem-vindo ao traçado de diagramas HR!",
		KeyStarName:          "Digite o nome da estrela:",
		KeyLogTeff:           "Digite Log Teff para %s:",
		KeyLogL:              "Digite Log L para %s:",
		KeyEnterStarName:     "Nome da estrela",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyExport:            "Exportar Gráficos…",
		KeyDataDirectory:     "Diretório de Trilhas",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyChartWidth:        "Largura do Gráfico",
		KeyChartHeight:       "Altura do Gráfico",
		KeyExportFormat:      "Formato de Exportação",
		KeyRememberInputs:    "Lembrar dados da estrela",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyChartsExported:    "%d gráfico(s) exportado(s) para %s",
		KeyNothingToExport:   "Nenhum gráfico para exportar",
		KeyErrorExporting:    "Erro ao exportar gráficos",
		KeyInvalidNumber:     "Digite um número",
		KeyMsgEnterStar:      "Por favor, digite os dados da estrela.",
		KeyMsgMissingColumns: "Colunas 'mass', 'Log Teff' ou 'Log L' não encontradas na tabela de metalicidade %s (faltando: %s).",
		KeyMsgMissingFiles:   "Um ou mais arquivos CSV não encontrados. Verifique se %s estão na pasta de dados (%s).",
		KeyMsgLoadFailed:     "Não foi possível ler a tabela %s: %s",
		KeyMsgSkippedRows:    "%d linha(s) não numérica(s) ignorada(s) na tabela de metalicidade %s.",
	}
}
