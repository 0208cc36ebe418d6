// Package domain contains the core settings interfaces and contracts
package domain

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Notifier is the user-visible message surface of the options page.
// Managers call it only for upload validation and processing failures;
// every other failure kind stays silent or goes to the log.
type Notifier interface {
	ShowError(message string)
	ShowSuccess(message string)
}

// SettingsStore handles persistence of the settings record.
// Set is the eager per-key side channel used by the animation manager;
// Save flushes the whole record after a dirty batch.
type SettingsStore interface {
	Load() (*Settings, error)
	Save(settings *Settings) error
	Set(key string, value interface{}) error
}

// FileEncoder converts a file on disk into a data URI.
// Implementations enforce the image MIME and size limits and honor
// context cancellation.
type FileEncoder interface {
	EncodeFile(ctx context.Context, path string) (string, error)
}

// StorageUsage describes how persisted settings data is distributed
type StorageUsage struct {
	TotalBytes      int64
	SettingsBytes   int64
	BackgroundBytes int64
	Path            string
}

// StorageReporter exposes persisted-data bookkeeping to the options panels
type StorageReporter interface {
	Usage() (StorageUsage, error)
}

// Theme supplies named colors for rendering the options page and preview
type Theme interface {
	Name() ThemeName
	GetColor(element string) string
}

// OptionsPanel is the contract every settings manager fulfills toward the
// page shell. Setup wires controls from the shared settings record and is
// idempotent; OnPanelSwitch fires when the panel becomes the visible one.
type OptionsPanel interface {
	tea.Model
	Setup()
	OnPanelSwitch(panelID string)
	SetSize(width, height int)
	SetTheme(theme Theme)
}
