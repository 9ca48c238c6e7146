package platform

// Package platform contains OS/platform integration: filesystem helpers for
// chart export and revealing exported files in the system file manager.
