package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
)

func TestNewStore(t *testing.T) {
	store := NewStore(nil)

	assert.NotNil(t, store)
	assert.NotNil(t, store.viper)
}

func TestStoreLoadDefaults(t *testing.T) {
	store := NewStore(nil)

	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackgroundSizeCover, settings.Background.Size)
	assert.Equal(t, domain.AnimationModeAllAtOnce, settings.Animation.Mode)
	assert.Equal(t, 16, settings.Display.BaseFontSize)
	assert.Equal(t, 1.0, settings.Display.UIScale)
	assert.Equal(t, 320, settings.Display.ColumnWidthBase)
	assert.True(t, settings.General.ShowIcons)
	assert.Equal(t, domain.ThemeLight, settings.Theme.Active)
}

func TestStoreSaveAndReload(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "settings.yaml")

	settings := domain.DefaultSettings()
	settings.Background.PageColor = "#112233"
	settings.Background.Size = domain.BackgroundSizeCustom
	settings.Background.Width = "200px"
	settings.Background.CustomSize = "200px auto"
	settings.Animation.Duration = 1.5
	settings.Display.ColumnWidthBase = 400
	settings.General.ShowURLs = false
	settings.Theme.Active = domain.ThemeDark
	settings.Theme.Dark = domain.ThemeCSS{Enabled: true, CSS: ".deck {}"}

	store := NewStore(nil)
	require.NoError(t, store.SaveAs(settings, path))
	assert.FileExists(t, path)

	reloaded, err := NewStore(nil).LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "#112233", reloaded.Background.PageColor)
	assert.Equal(t, domain.BackgroundSizeCustom, reloaded.Background.Size)
	assert.Equal(t, "200px auto", reloaded.Background.CustomSize)
	assert.Equal(t, 1.5, reloaded.Animation.Duration)
	assert.Equal(t, 400, reloaded.Display.ColumnWidthBase)
	assert.False(t, reloaded.General.ShowURLs)
	assert.Equal(t, domain.ThemeDark, reloaded.Theme.Active)
	assert.True(t, reloaded.Theme.Dark.Enabled)
	assert.Equal(t, ".deck {}", reloaded.Theme.Dark.CSS)
}

func TestStoreLoadSanitizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
background:
  size: stretch
  data_uri: not-a-data-uri
animation:
  duration: 9.5
  mode: random
display:
  base_font_size: 7
  ui_scale: 4.0
  column_width_base: 100
theme:
  active: solarized
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := NewStore(nil).LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.BackgroundSizeCover, settings.Background.Size)
	assert.Empty(t, settings.Background.DataURI)
	assert.Equal(t, 0.4, settings.Animation.Duration)
	assert.Equal(t, domain.AnimationModeAllAtOnce, settings.Animation.Mode)
	assert.Equal(t, 16, settings.Display.BaseFontSize)
	assert.Equal(t, 1.0, settings.Display.UIScale)
	assert.Equal(t, 320, settings.Display.ColumnWidthBase)
	assert.Equal(t, domain.ThemeLight, settings.Theme.Active)
}

func TestStoreEagerSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	store := NewStore(nil)
	require.NoError(t, store.SaveAs(domain.DefaultSettings(), path))

	require.NoError(t, store.Set("animation.duration", 1.8))

	reloaded, err := NewStore(nil).LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1.8, reloaded.Animation.Duration)
}

func TestStoreConfigFileDefaultLocation(t *testing.T) {
	store := NewStore(nil)

	path := store.ConfigFile()
	assert.Contains(t, path, filepath.Join(".config", "tabdeck", "settings.yaml"))
}

func TestStoreLoadFromMissingFile(t *testing.T) {
	_, err := NewStore(nil).LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
