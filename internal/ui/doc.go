package ui

// Package ui contains the Fyne-based user interface for the application.
// It collects the star inputs, re-runs the render pipeline on every change,
// and shows the resulting messages and charts. All UI strings are localized
// via locale.Localization.
