// Package config provides the viper-backed settings store
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/tabdeck/tabdeck-tui/internal/datauri"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
)

// Store persists the settings record to a YAML file. It implements
// domain.SettingsStore: Load/Save carry the whole record for the batched
// dirty flow, Set is the eager per-key side channel used by the animation
// manager.
type Store struct {
	viper      *viper.Viper
	configFile string
	logger     *log.Logger
}

// NewStore creates a settings store rooted at the standard config locations
func NewStore(logger *log.Logger) *Store {
	v := viper.New()

	v.SetConfigName("settings")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/tabdeck")

	v.SetEnvPrefix("TABDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if logger == nil {
		logger = log.Default()
	}

	return &Store{
		viper:  v,
		logger: logger.WithPrefix("store"),
	}
}

// setDefaults registers every settings key with its default value
func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultSettings()

	// Background
	v.SetDefault("background.page_color", defaults.Background.PageColor)
	v.SetDefault("background.data_uri", defaults.Background.DataURI)
	v.SetDefault("background.size", string(defaults.Background.Size))
	v.SetDefault("background.repeat", string(defaults.Background.Repeat))
	v.SetDefault("background.position", string(defaults.Background.Position))
	v.SetDefault("background.width", defaults.Background.Width)
	v.SetDefault("background.height", defaults.Background.Height)
	v.SetDefault("background.custom_size", defaults.Background.CustomSize)

	// Animation
	v.SetDefault("animation.enabled", defaults.Animation.Enabled)
	v.SetDefault("animation.style", string(defaults.Animation.Style))
	v.SetDefault("animation.mode", string(defaults.Animation.Mode))
	v.SetDefault("animation.duration", defaults.Animation.Duration)
	v.SetDefault("animation.delay", defaults.Animation.Delay)
	v.SetDefault("animation.stagger", defaults.Animation.Stagger)
	v.SetDefault("animation.stylesheet_only", defaults.Animation.StylesheetOnly)

	// Display
	v.SetDefault("display.base_font_size", defaults.Display.BaseFontSize)
	v.SetDefault("display.ui_scale", defaults.Display.UIScale)
	v.SetDefault("display.column_width_base", defaults.Display.ColumnWidthBase)

	// General
	v.SetDefault("general.show_icons", defaults.General.ShowIcons)
	v.SetDefault("general.show_urls", defaults.General.ShowURLs)
	v.SetDefault("general.show_column_headers", defaults.General.ShowColumnHeaders)
	v.SetDefault("general.show_group_headers", defaults.General.ShowGroupHeaders)

	// Theme
	v.SetDefault("theme.active", string(defaults.Theme.Active))
	for _, name := range domain.ThemeNames() {
		v.SetDefault(fmt.Sprintf("theme.%s.enabled", name), false)
		v.SetDefault(fmt.Sprintf("theme.%s.css", name), "")
	}
}

// Load reads the settings file, falling back to defaults when no file
// exists. Loaded values that violate the field invariants are reset to
// their defaults rather than failing the whole load, so a hand-edited file
// cannot leave the options page with out-of-range state.
func (s *Store) Load() (*domain.Settings, error) {
	if err := s.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	} else {
		s.configFile = s.viper.ConfigFileUsed()
	}

	settings := &domain.Settings{}
	if err := s.viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	s.sanitize(settings)
	return settings, nil
}

// LoadFromFile reads settings from an explicit file path
func (s *Store) LoadFromFile(filePath string) (*domain.Settings, error) {
	s.viper.SetConfigFile(filePath)

	if err := s.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", filePath, err)
	}
	s.configFile = filePath

	settings := &domain.Settings{}
	if err := s.viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	s.sanitize(settings)
	return settings, nil
}

// sanitize resets out-of-range or unknown loaded values to their defaults
func (s *Store) sanitize(settings *domain.Settings) {
	if settings.Background.DataURI != "" && !datauri.IsImage(settings.Background.DataURI) {
		s.logger.Warn("discarding stored background image: not a valid image data URI")
		settings.Background.DataURI = ""
	}

	if reset := settings.Normalize(); len(reset) > 0 {
		s.logger.Warn("reset out-of-range settings to defaults", "fields", reset)
	}
}

// ConfigFile returns the path of the loaded settings file, or the default
// location when no file has been read or written yet.
func (s *Store) ConfigFile() string {
	if s.configFile != "" {
		return s.configFile
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tabdeck", "settings.yaml")
}

// Save writes the whole settings record to the settings file
func (s *Store) Save(settings *domain.Settings) error {
	s.apply(settings)

	configFile := s.ConfigFile()
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	s.configFile = configFile

	return nil
}

// SaveAs writes the whole settings record to an explicit file path
func (s *Store) SaveAs(settings *domain.Settings, filePath string) error {
	s.apply(settings)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := s.viper.WriteConfigAs(filePath); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	s.configFile = filePath

	return nil
}

// Set writes a single key and persists it immediately. This is the eager
// side channel: the change reaches disk even if the user never triggers the
// batched save.
func (s *Store) Set(key string, value interface{}) error {
	s.viper.Set(key, value)

	configFile := s.ConfigFile()
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := s.viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	s.configFile = configFile

	return nil
}

// Get retrieves a raw value by key
func (s *Store) Get(key string) interface{} {
	return s.viper.Get(key)
}

// apply pushes every field of the settings record into the viper keys
func (s *Store) apply(settings *domain.Settings) {
	s.viper.Set("background.page_color", settings.Background.PageColor)
	s.viper.Set("background.data_uri", settings.Background.DataURI)
	s.viper.Set("background.size", string(settings.Background.Size))
	s.viper.Set("background.repeat", string(settings.Background.Repeat))
	s.viper.Set("background.position", string(settings.Background.Position))
	s.viper.Set("background.width", settings.Background.Width)
	s.viper.Set("background.height", settings.Background.Height)
	s.viper.Set("background.custom_size", settings.Background.CustomSize)

	s.viper.Set("animation.enabled", settings.Animation.Enabled)
	s.viper.Set("animation.style", string(settings.Animation.Style))
	s.viper.Set("animation.mode", string(settings.Animation.Mode))
	s.viper.Set("animation.duration", settings.Animation.Duration)
	s.viper.Set("animation.delay", settings.Animation.Delay)
	s.viper.Set("animation.stagger", settings.Animation.Stagger)
	s.viper.Set("animation.stylesheet_only", settings.Animation.StylesheetOnly)

	s.viper.Set("display.base_font_size", settings.Display.BaseFontSize)
	s.viper.Set("display.ui_scale", settings.Display.UIScale)
	s.viper.Set("display.column_width_base", settings.Display.ColumnWidthBase)

	s.viper.Set("general.show_icons", settings.General.ShowIcons)
	s.viper.Set("general.show_urls", settings.General.ShowURLs)
	s.viper.Set("general.show_column_headers", settings.General.ShowColumnHeaders)
	s.viper.Set("general.show_group_headers", settings.General.ShowGroupHeaders)

	s.viper.Set("theme.active", string(settings.Theme.Active))
	for _, name := range domain.ThemeNames() {
		slot := settings.Theme.CSSFor(name)
		s.viper.Set(fmt.Sprintf("theme.%s.enabled", name), slot.Enabled)
		s.viper.Set(fmt.Sprintf("theme.%s.css", name), slot.CSS)
	}
}
