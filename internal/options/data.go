package options

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
	"github.com/tabdeck/tabdeck-tui/internal/storage"
)

// Data panel rows in focus order
const (
	dataRowExport = iota
	dataRowImport
	dataRowClearImage
)

// SettingsReloadedMsg announces that the shared settings record was rewritten
// in bulk, such as by a snapshot import. Panels holding editable copies of
// record fields must resync from the record when they see it.
type SettingsReloadedMsg struct{}

// DataManager owns snapshot export/import and background image cleanup. It
// reads usage through the storage manager and commits imports through the
// shared settings record.
type DataManager struct {
	state    *settings.State
	manager  *storage.Manager
	notifier domain.Notifier
	logger   *log.Logger

	styles panelStyles
	keys   panelKeyMap

	pathInput textinput.Model

	usage   domain.StorageUsage
	focus   int
	editing bool
	width   int
	height  int
}

// NewDataManager creates the data panel
func NewDataManager(state *settings.State, manager *storage.Manager, notifier domain.Notifier, logger *log.Logger) *DataManager {
	pathInput := textinput.New()
	pathInput.Placeholder = "~/tabdeck-settings.yaml"
	pathInput.Width = 40

	return &DataManager{
		state:     state,
		manager:   manager,
		notifier:  notifier,
		logger:    logger,
		styles:    defaultPanelStyles(),
		keys:      defaultPanelKeyMap(),
		pathInput: pathInput,
	}
}

// Setup refreshes the usage summary; idempotent
func (m *DataManager) Setup() {
	m.focus = dataRowExport
	m.editing = false
	m.refreshUsage()
}

func (m *DataManager) refreshUsage() {
	if m.manager == nil {
		return
	}
	usage, err := m.manager.Usage()
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("failed to read storage usage", "error", err)
		}
		return
	}
	m.usage = usage
}

// Init implements tea.Model
func (m *DataManager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *DataManager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch {
		case key.Matches(keyMsg, m.keys.Escape):
			m.editing = false
			m.pathInput.Blur()
		case key.Matches(keyMsg, m.keys.Commit):
			return m, m.commitPath()
		default:
			var cmd tea.Cmd
			m.pathInput, cmd = m.pathInput.Update(keyMsg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.focus > dataRowExport {
			m.focus--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.focus < dataRowClearImage {
			m.focus++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		m.activate()
	}
	return m, nil
}

func (m *DataManager) activate() {
	switch m.focus {
	case dataRowExport, dataRowImport:
		m.editing = true
		m.pathInput.Focus()
	case dataRowClearImage:
		m.clearBackgroundImage()
	}
}

func (m *DataManager) commitPath() tea.Cmd {
	m.editing = false
	m.pathInput.Blur()

	path := strings.TrimSpace(m.pathInput.Value())
	if path == "" {
		return nil
	}

	switch m.focus {
	case dataRowExport:
		m.export(path)
	case dataRowImport:
		if m.importSnapshot(path) {
			return func() tea.Msg { return SettingsReloadedMsg{} }
		}
	}
	return nil
}

func (m *DataManager) export(path string) {
	if err := m.manager.Export(path); err != nil {
		if m.logger != nil {
			m.logger.Warn("snapshot export failed", "path", path, "error", err)
		}
		m.notifier.ShowError("Could not export settings snapshot")
		return
	}
	m.notifier.ShowSuccess(fmt.Sprintf("Settings exported to %s", path))
}

// importSnapshot replaces the shared record in place and signals dirty so
// the imported values get persisted on the next save
func (m *DataManager) importSnapshot(path string) bool {
	if err := m.manager.Import(path); err != nil {
		if m.logger != nil {
			m.logger.Warn("snapshot import failed", "path", path, "error", err)
		}
		m.notifier.ShowError("Could not import settings snapshot")
		return false
	}
	m.state.MarkDirty()
	m.notifier.ShowSuccess("Settings imported")
	return true
}

func (m *DataManager) clearBackgroundImage() {
	if m.state.Data().Background.DataURI == "" {
		return
	}
	m.state.ClearBackgroundImage()
	m.refreshUsage()
	m.notifier.ShowSuccess("Background image removed")
}

// View implements tea.Model
func (m *DataManager) View() string {
	var content strings.Builder

	content.WriteString(m.styles.title.Render("Data") + "\n\n")
	content.WriteString(m.styles.label.Render("Stored settings: ") +
		m.styles.value.Render(humanize.Bytes(uint64(m.usage.SettingsBytes))) + "\n")
	content.WriteString(m.styles.label.Render("Background image: ") +
		m.styles.value.Render(humanize.Bytes(uint64(m.usage.BackgroundBytes))) + "\n\n")

	content.WriteString(m.styles.actionRow("Export snapshot...", m.focus == dataRowExport, true) + "\n")
	content.WriteString(m.styles.actionRow("Import snapshot...", m.focus == dataRowImport, true) + "\n")
	content.WriteString(m.styles.actionRow("Remove background image", m.focus == dataRowClearImage,
		m.state.Data().Background.DataURI != "") + "\n")

	if m.editing {
		content.WriteString("\n" + m.styles.label.Render("Path: ") + m.pathInput.View() + "\n")
	}
	return content.String()
}

// OnPanelSwitch refreshes the usage summary when this panel becomes active
func (m *DataManager) OnPanelSwitch(panelID string) {
	if panelID == PanelData {
		m.refreshUsage()
	}
}

// SetSize implements domain.OptionsPanel
func (m *DataManager) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme implements domain.OptionsPanel
func (m *DataManager) SetTheme(theme domain.Theme) {
	m.styles.applyTheme(theme)
}
