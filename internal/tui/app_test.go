package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	configpkg "github.com/tabdeck/tabdeck-tui/internal/config"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/options"
)

func newTestModel(t *testing.T) (*OptionsModel, *domain.Settings) {
	t.Helper()
	data := domain.DefaultSettings()
	model := NewOptionsModel(data, nil, nil)
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model, data
}

func TestOptionsModelStartsClean(t *testing.T) {
	model, _ := newTestModel(t)

	assert.False(t, model.Dirty())
	assert.Equal(t, options.PanelBackground, model.ActivePanel())
}

func TestOptionsModelDirtyAfterPanelChange(t *testing.T) {
	model, data := newTestModel(t)

	// Enter on the first background row toggles the page color feature
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, model.Dirty())
	assert.NotEmpty(t, data.Background.PageColor)
}

func TestOptionsModelPanelSwitching(t *testing.T) {
	model, _ := newTestModel(t)

	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, options.PanelAnimation, model.ActivePanel())

	model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, options.PanelBackground, model.ActivePanel())

	// Wraps around in both directions
	model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, options.PanelData, model.ActivePanel())
}

func TestOptionsModelSaveClearsDirty(t *testing.T) {
	data := domain.DefaultSettings()
	store := configpkg.NewStore(nil)
	require.NoError(t, store.SaveAs(data, filepath.Join(t.TempDir(), "settings.yaml")))

	model := NewOptionsModel(data, store, nil)
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, model.Dirty())

	model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.False(t, model.Dirty())
	assert.Equal(t, "Settings saved", model.status.text)
	assert.False(t, model.status.isError)
}

func TestOptionsModelThemeChangeRecolorsPanels(t *testing.T) {
	model, data := newTestModel(t)

	model.applyTheme(domain.ThemeDark)

	assert.Equal(t, domain.ThemeDark, model.themes.GetTheme().Name())
	// The record itself is only written through the theme panel
	assert.Equal(t, domain.ThemeLight, data.Theme.Active)
}

func TestOptionsModelViewRendersTabsAndFooter(t *testing.T) {
	model, _ := newTestModel(t)

	view := model.View()

	assert.Contains(t, view, "TabDeck Options")
	assert.Contains(t, view, "Background")
	assert.Contains(t, view, "ctrl+s: save")
}

func TestOptionsModelQuitWhenClean(t *testing.T) {
	model, _ := newTestModel(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestOptionsModelQuitGuardWhenDirty(t *testing.T) {
	model, _ := newTestModel(t)

	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, model.Dirty())

	// First ctrl+c only warns
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd)
	assert.Contains(t, model.status.text, "Unsaved changes")

	// Second ctrl+c quits
	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestOptionsModelQuitGuardDisarmsOnOtherKeys(t *testing.T) {
	model, _ := newTestModel(t)

	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, model.Dirty())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd)

	// Any other key disarms the confirmation, so ctrl+c warns again
	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd)
}

func TestNewOptionsModelDefaultsNilSettings(t *testing.T) {
	model := NewOptionsModel(nil, nil, nil)
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.False(t, model.Dirty())
	assert.Contains(t, model.View(), "TabDeck Options")
}

func TestOptionsModelImportResyncsPanels(t *testing.T) {
	model, data := newTestModel(t)
	snapshot := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(snapshot, []byte("animation:\n  duration: 1.5\n"), 0644))

	// Drive the data panel: import the snapshot through its path editor
	model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, options.PanelData, model.ActivePanel())
	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(snapshot)})
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, 1.5, data.Animation.Duration)

	model.Update(cmd())

	// A no-keystroke commit on the duration editor must keep the
	// imported value, not revert it to the pre-import one
	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, options.PanelAnimation, model.ActivePanel())
	for i := 0; i < 3; i++ {
		model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1.5, data.Animation.Duration)
}

func TestStatusLine(t *testing.T) {
	status := &statusLine{}

	status.ShowError("boom")
	assert.True(t, status.isError)
	assert.Equal(t, "boom", status.text)

	status.ShowSuccess("done")
	assert.False(t, status.isError)
	assert.Equal(t, "done", status.text)
}
