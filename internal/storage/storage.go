// Package storage provides persisted-data bookkeeping for the options page
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/tabdeck/tabdeck-tui/internal/datauri"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"gopkg.in/yaml.v3"
)

// Manager reports storage usage and handles settings snapshots. It is the
// data-management collaborator the general panel pokes whenever it becomes
// visible, and the backend of the data panel's export/import actions.
type Manager struct {
	settings   *domain.Settings
	configFile func() string
	logger     *log.Logger
}

// NewManager creates a storage manager over the shared settings record.
// configFile resolves the current settings file location at call time, since
// the store may not have written a file yet when the options page starts.
func NewManager(settings *domain.Settings, configFile func() string, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		settings:   settings,
		configFile: configFile,
		logger:     logger.WithPrefix("storage"),
	}
}

// Usage reports how much persisted data the settings occupy and how much of
// it is the stored background image. A missing settings file is reported as
// zero usage, not an error.
func (m *Manager) Usage() (domain.StorageUsage, error) {
	usage := domain.StorageUsage{Path: m.configFile()}

	info, err := os.Stat(usage.Path)
	switch {
	case err == nil:
		usage.SettingsBytes = info.Size()
	case os.IsNotExist(err):
		// Nothing persisted yet
	default:
		return usage, fmt.Errorf("failed to stat settings file: %w", err)
	}

	if uri := m.settings.Background.DataURI; uri != "" {
		parsed, err := datauri.Parse(uri)
		if err != nil {
			m.logger.Warn("stored background image is not a parseable data URI")
		} else {
			usage.BackgroundBytes = parsed.Bytes
		}
	}

	usage.TotalBytes = usage.SettingsBytes + usage.BackgroundBytes
	return usage, nil
}

// FormatUsage renders a storage usage report as a short human-readable line
func FormatUsage(usage domain.StorageUsage) string {
	if usage.TotalBytes == 0 {
		return "no settings stored yet"
	}
	line := fmt.Sprintf("%s stored", humanize.Bytes(uint64(usage.TotalBytes)))
	if usage.BackgroundBytes > 0 {
		line += fmt.Sprintf(" (%s background image)", humanize.Bytes(uint64(usage.BackgroundBytes)))
	}
	return line
}

// Export writes a YAML snapshot of the current settings to path
func (m *Manager) Export(path string) error {
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	m.logger.Info("exported settings snapshot", "path", path)
	return nil
}

// Import reads a YAML snapshot and copies its fields into the shared
// settings record in place; the record itself is never replaced. Imported
// values go through the same normalization as loaded ones.
func (m *Manager) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	// Start from defaults so fields absent from the snapshot keep their
	// default values instead of collapsing to zero values.
	imported := *domain.DefaultSettings()
	if err := yaml.Unmarshal(data, &imported); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if imported.Background.DataURI != "" && !datauri.IsImage(imported.Background.DataURI) {
		m.logger.Warn("discarding imported background image: not a valid image data URI")
		imported.Background.DataURI = ""
	}
	if reset := imported.Normalize(); len(reset) > 0 {
		m.logger.Warn("reset out-of-range imported settings to defaults", "fields", reset)
	}

	*m.settings = imported
	m.logger.Info("imported settings snapshot", "path", path)
	return nil
}
