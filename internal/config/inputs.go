package config

// Input field keys
const (
	InputStarName = "star_name"
	InputLogTeff  = "log_teff"
	InputLogL     = "log_l"
)

// InputStore keeps the last entered value of each input field.
// fyne.Preferences satisfies it.
type InputStore interface {
	String(key string) string
	SetString(key string, value string)
	Float(key string) float64
	SetFloat(key string, value float64)
}

// MemoryInputStore is a session-only InputStore; values are lost on restart
type MemoryInputStore struct {
	strings map[string]string
	floats  map[string]float64
}

// NewMemoryInputStore creates an empty session store
func NewMemoryInputStore() *MemoryInputStore {
	return &MemoryInputStore{
		strings: make(map[string]string),
		floats:  make(map[string]float64),
	}
}

// String returns the stored text or ""
func (m *MemoryInputStore) String(key string) string {
	return m.strings[key]
}

// SetString stores text under key
func (m *MemoryInputStore) SetString(key string, value string) {
	m.strings[key] = value
}

// Float returns the stored number or 0
func (m *MemoryInputStore) Float(key string) float64 {
	return m.floats[key]
}

// SetFloat stores a number under key
func (m *MemoryInputStore) SetFloat(key string, value float64) {
	m.floats[key] = value
}
