package model

import "testing"

func TestMessageLevel_IsProblem(t *testing.T) {
	tests := []struct {
		level    MessageLevel
		expected bool
	}{
		{LevelInfo, false},
		{LevelWarning, true},
		{LevelError, true},
	}

	for _, test := range tests {
		result := test.level.IsProblem()
		if result != test.expected {
			t.Errorf("MessageLevel(%s).IsProblem() = %v, expected %v", test.level, result, test.expected)
		}
	}
}

func TestMessageLevel_String(t *testing.T) {
	level := LevelWarning
	expected := "Warning"
	result := level.String()

	if result != expected {
		t.Errorf("MessageLevel.String() = %s, expected %s", result, expected)
	}
}
