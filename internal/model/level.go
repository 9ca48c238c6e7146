package model

// MessageLevel represents the severity of a user-facing message
type MessageLevel string

const (
	// LevelInfo is a neutral notice
	LevelInfo MessageLevel = "Info"

	// LevelWarning means input is missing and nothing was drawn
	LevelWarning MessageLevel = "Warning"

	// LevelError means a table or file could not be used
	LevelError MessageLevel = "Error"
)

// String returns the string representation of MessageLevel
func (ml MessageLevel) String() string {
	return string(ml)
}

// IsProblem returns true for warnings and errors
func (ml MessageLevel) IsProblem() bool {
	return ml == LevelWarning || ml == LevelError
}
