package locale

import (
	"strings"
	"testing"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if l.GetText(KeyMsgEnterStar) != "Please enter star data to plot." {
		t.Errorf("Unexpected English text: %q", l.GetText(KeyMsgEnterStar))
	}

	// Unknown language keeps the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected language to stay 'en', got %s", l.GetCurrentLanguage())
	}

	// System maps to English
	l.SetLanguage("ru")
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'system' to resolve to 'en', got %s", l.GetCurrentLanguage())
	}

	// Unknown key returns itself
	if l.GetText("no_such_key") != "no_such_key" {
		t.Error("Unknown key should be returned as-is")
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Language %s has no texts", lang)
			continue
		}
		for key, en := range english {
			text, found := texts[key]
			if !found {
				t.Errorf("Language %s is missing key %s", lang, key)
				continue
			}
			if strings.Count(text, "%") != strings.Count(en, "%") {
				t.Errorf("Language %s key %s has mismatched format verbs", lang, key)
			}
		}
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	got := l.Format(KeyMsgMissingFiles, "'a.csv' and 'b.csv'", "/data")
	if !strings.Contains(got, "'a.csv' and 'b.csv'") || !strings.Contains(got, "/data") {
		t.Errorf("Formatted text missing arguments: %q", got)
	}

	if l.Format(KeyAppTitle) != "HR Diagram" {
		t.Errorf("Format without args should equal GetText, got %q", l.Format(KeyAppTitle))
	}
}
