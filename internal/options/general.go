package options

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
	"github.com/tabdeck/tabdeck-tui/internal/storage"
)

// General panel rows in focus order
const (
	genRowShowIcons = iota
	genRowShowURLs
	genRowShowColumnHeaders
	genRowShowGroupHeaders
)

// GeneralManager owns the deck visibility toggles and shows a storage usage
// summary refreshed each time the panel gains focus.
type GeneralManager struct {
	state    *settings.State
	reporter domain.StorageReporter
	logger   *log.Logger

	styles panelStyles
	keys   panelKeyMap

	usageLine string
	focus     int
	width     int
	height    int
}

// NewGeneralManager creates the general options panel
func NewGeneralManager(state *settings.State, reporter domain.StorageReporter, logger *log.Logger) *GeneralManager {
	return &GeneralManager{
		state:    state,
		reporter: reporter,
		logger:   logger,
		styles:   defaultPanelStyles(),
		keys:     defaultPanelKeyMap(),
	}
}

// Setup resets focus and refreshes the usage summary; idempotent
func (m *GeneralManager) Setup() {
	m.focus = genRowShowIcons
	m.refreshUsage()
}

// Init implements tea.Model
func (m *GeneralManager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *GeneralManager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.focus > genRowShowIcons {
			m.focus--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.focus < genRowShowGroupHeaders {
			m.focus++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		m.toggleFocused()
	}
	return m, nil
}

func (m *GeneralManager) toggleFocused() {
	general := m.state.Data().General
	switch m.focus {
	case genRowShowIcons:
		m.state.SetShowIcons(!general.ShowIcons)
	case genRowShowURLs:
		m.state.SetShowURLs(!general.ShowURLs)
	case genRowShowColumnHeaders:
		m.state.SetShowColumnHeaders(!general.ShowColumnHeaders)
	case genRowShowGroupHeaders:
		m.state.SetShowGroupHeaders(!general.ShowGroupHeaders)
	}
}

func (m *GeneralManager) refreshUsage() {
	if m.reporter == nil {
		return
	}
	usage, err := m.reporter.Usage()
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("failed to read storage usage", "error", err)
		}
		m.usageLine = "storage usage unavailable"
		return
	}
	m.usageLine = storage.FormatUsage(usage)
}

// View implements tea.Model
func (m *GeneralManager) View() string {
	var content strings.Builder
	general := m.state.Data().General

	content.WriteString(m.styles.title.Render("General") + "\n\n")
	content.WriteString(m.styles.checkbox("Show site icons", general.ShowIcons, m.focus == genRowShowIcons) + "\n")
	content.WriteString(m.styles.checkbox("Show URLs", general.ShowURLs, m.focus == genRowShowURLs) + "\n")
	content.WriteString(m.styles.checkbox("Show column headers", general.ShowColumnHeaders, m.focus == genRowShowColumnHeaders) + "\n")
	content.WriteString(m.styles.checkbox("Show group headers", general.ShowGroupHeaders, m.focus == genRowShowGroupHeaders) + "\n")

	if m.usageLine != "" {
		content.WriteString("\n" + m.styles.help.Render(m.usageLine) + "\n")
	}
	return content.String()
}

// OnPanelSwitch refreshes the storage summary when this panel becomes active
func (m *GeneralManager) OnPanelSwitch(panelID string) {
	if panelID == PanelGeneral {
		m.refreshUsage()
	}
}

// SetSize implements domain.OptionsPanel
func (m *GeneralManager) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme implements domain.OptionsPanel
func (m *GeneralManager) SetTheme(theme domain.Theme) {
	m.styles.applyTheme(theme)
}
