package config

import "testing"

func TestMemoryInputStore(t *testing.T) {
	store := NewMemoryInputStore()

	if store.String(InputStarName) != "" {
		t.Error("Unset name should be empty")
	}
	if store.Float(InputLogL) != 0 {
		t.Error("Unset number should default to zero")
	}

	store.SetString(InputStarName, "Sirius")
	store.SetFloat(InputLogTeff, 3.9)
	store.SetFloat(InputLogL, 1.0)

	if store.String(InputStarName) != "Sirius" {
		t.Errorf("Expected Sirius, got %q", store.String(InputStarName))
	}
	if store.Float(InputLogTeff) != 3.9 || store.Float(InputLogL) != 1.0 {
		t.Errorf("Unexpected numbers: %v %v", store.Float(InputLogTeff), store.Float(InputLogL))
	}
}
