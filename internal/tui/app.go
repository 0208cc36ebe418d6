package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	configpkg "github.com/tabdeck/tabdeck-tui/internal/config"
	"github.com/tabdeck/tabdeck-tui/internal/datauri"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/options"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
	"github.com/tabdeck/tabdeck-tui/internal/storage"
)

// statusLine implements domain.Notifier; panels write user-facing outcomes
// here and the shell renders the latest one
type statusLine struct {
	text    string
	isError bool
}

func (s *statusLine) ShowError(msg string) {
	s.text = msg
	s.isError = true
}

func (s *statusLine) ShowSuccess(msg string) {
	s.text = msg
	s.isError = false
}

// panelEntry binds a panel ID and title to its manager
type panelEntry struct {
	id    string
	title string
	panel domain.OptionsPanel
}

// KeyMap defines the shell-level keyboard shortcuts. They deliberately avoid
// plain letters so they cannot collide with panel text inputs.
type KeyMap struct {
	NextPanel key.Binding
	PrevPanel key.Binding
	Save      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default shell key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// OptionsModel is the root model of the options page. It owns the shared
// settings record through the typed state boundary, routes keys to the
// active panel, and batches dirty changes into an explicit save.
type OptionsModel struct {
	state  *settings.State
	store  *configpkg.Store
	themes *ThemeManager
	layout *ResponsiveLayout
	logger *log.Logger

	panels  []panelEntry
	active  int
	preview *PreviewModel
	status  *statusLine

	dirty       bool
	quitConfirm bool
	keyMap      KeyMap
	width       int
	height      int
	quitting    bool
}

// NewOptionsModel creates the options page over a loaded settings record
func NewOptionsModel(data *domain.Settings, store *configpkg.Store, logger *log.Logger) *OptionsModel {
	if data == nil {
		data = domain.DefaultSettings()
	}
	if logger == nil {
		logger = log.Default()
	}

	m := &OptionsModel{
		store:  store,
		themes: NewThemeManager(),
		layout: NewResponsiveLayout(),
		logger: logger.WithPrefix("options"),
		status: &statusLine{},
		keyMap: DefaultKeyMap(),
	}
	m.state = settings.NewState(data, func() { m.dirty = true })

	storageManager := storage.NewManager(data, m.configFile, logger)
	encoder := datauri.NewEncoder()

	var settingsStore domain.SettingsStore
	if store != nil {
		settingsStore = store
	}

	m.panels = []panelEntry{
		{options.PanelBackground, "Background", options.NewBackgroundManager(m.state, m.status, encoder, logger)},
		{options.PanelAnimation, "Animation", options.NewAnimationManager(m.state, settingsStore, logger)},
		{options.PanelDisplay, "Display", options.NewDisplayScaleManager(m.state, options.DisplayScaleConfig{IncludeColumnWidth: true})},
		{options.PanelGeneral, "General", options.NewGeneralManager(m.state, storageManager, logger)},
		{options.PanelTheme, "Theme", options.NewThemeSelector(m.state, m.status, m.applyTheme, logger)},
		{options.PanelData, "Data", options.NewDataManager(m.state, storageManager, m.status, logger)},
	}
	m.preview = NewPreviewModel(m.state)

	m.themes.SetTheme(data.Theme.Active)
	for _, entry := range m.panels {
		entry.panel.Setup()
		m.themes.ApplyThemeToPanel(entry.panel)
	}
	m.preview.SetTheme(m.themes.GetTheme())

	return m
}

func (m *OptionsModel) configFile() string {
	if m.store == nil {
		return ""
	}
	return m.store.ConfigFile()
}

// applyTheme is the theme-change hook passed to the theme selector; it
// recolors every panel and the preview from the newly active palette
func (m *OptionsModel) applyTheme(name domain.ThemeName) {
	if !m.themes.SetTheme(name) {
		m.logger.Warn("no palette registered for theme", "theme", name)
		return
	}
	for _, entry := range m.panels {
		m.themes.ApplyThemeToPanel(entry.panel)
	}
	m.preview.SetTheme(m.themes.GetTheme())
}

// Init implements tea.Model
func (m *OptionsModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model
func (m *OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)

		panelWidth := m.layout.PanelWidth()
		for _, entry := range m.panels {
			entry.panel.SetSize(panelWidth, msg.Height-4)
		}
		m.preview.SetSize(m.layout.PreviewWidth(), msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if !key.Matches(msg, m.keyMap.Quit) {
			m.quitConfirm = false
		}
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			if m.dirty && !m.quitConfirm {
				m.quitConfirm = true
				m.status.ShowError("Unsaved changes, press ctrl+c again to quit")
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Save):
			m.save()
			return m, nil
		case key.Matches(msg, m.keyMap.NextPanel):
			m.switchPanel(1)
			return m, nil
		case key.Matches(msg, m.keyMap.PrevPanel):
			m.switchPanel(-1)
			return m, nil
		}
		// Keys go to the active panel only
		updated, cmd := m.panels[m.active].panel.Update(msg)
		if panel, ok := updated.(domain.OptionsPanel); ok {
			m.panels[m.active].panel = panel
		}
		return m, cmd

	case options.SettingsReloadedMsg:
		// A bulk rewrite invalidated any editable copies the panels hold;
		// resync them all from the shared record
		for _, entry := range m.panels {
			entry.panel.Setup()
		}
		return m, nil
	}

	// Everything else is broadcast, so an async result reaches its panel
	// even while another one is active
	var cmds []tea.Cmd
	for i, entry := range m.panels {
		updated, cmd := entry.panel.Update(msg)
		if panel, ok := updated.(domain.OptionsPanel); ok {
			m.panels[i].panel = panel
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *OptionsModel) switchPanel(dir int) {
	m.active = (m.active + dir + len(m.panels)) % len(m.panels)
	m.panels[m.active].panel.OnPanelSwitch(m.panels[m.active].id)
}

// save flushes the shared record through the store and clears the dirty flag
func (m *OptionsModel) save() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.state.Data()); err != nil {
		m.logger.Error("failed to save settings", "err", err)
		m.status.ShowError("Failed to save settings")
		return
	}
	m.dirty = false
	m.status.ShowSuccess("Settings saved")
}

// Dirty reports whether unsaved changes exist
func (m *OptionsModel) Dirty() bool {
	return m.dirty
}

// ActivePanel returns the ID of the active panel
func (m *OptionsModel) ActivePanel() string {
	return m.panels[m.active].id
}

// View implements tea.Model
func (m *OptionsModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	content := m.renderContent()
	footer := m.renderFooter()

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	_, contentHeight := m.layout.GetContentArea(headerHeight, footerHeight)

	contentStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Left, header, contentStyle.Render(content), footer)
}

// renderHeader renders the tab strip with the dirty indicator
func (m *OptionsModel) renderHeader() string {
	theme := m.themes.GetTheme()

	tabStyle := lipgloss.NewStyle().Padding(0, 1).
		Foreground(lipgloss.Color(theme.GetColor("muted")))
	activeStyle := lipgloss.NewStyle().Padding(0, 1).Bold(true).
		Background(lipgloss.Color(theme.GetColor("primary"))).
		Foreground(lipgloss.Color(theme.GetColor("highlight")))

	var tabs []string
	for i, entry := range m.panels {
		if i == m.active {
			tabs = append(tabs, activeStyle.Render(entry.title))
		} else {
			tabs = append(tabs, tabStyle.Render(entry.title))
		}
	}

	title := "TabDeck Options"
	if m.dirty {
		title += " •"
	}
	titleStyle := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Background(lipgloss.Color(theme.GetColor("primary"))).
		Foreground(lipgloss.Color(theme.GetColor("highlight"))).
		Bold(true)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

// renderContent renders the active panel, with the preview pane beside it
// when the screen is wide enough
func (m *OptionsModel) renderContent() string {
	panelView := m.panels[m.active].panel.View()
	if !m.layout.ShowPreview() {
		return panelView
	}

	panelStyle := lipgloss.NewStyle().Width(m.layout.PanelWidth() - 2)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(panelView),
		m.preview.View(),
	)
}

// renderFooter renders the status line and key hints
func (m *OptionsModel) renderFooter() string {
	theme := m.themes.GetTheme()

	status := ""
	if m.status.text != "" {
		statusColor := theme.GetColor("success")
		if m.status.isError {
			statusColor = theme.GetColor("error")
		}
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color(statusColor)).
			Padding(0, 1).
			Render(m.status.text)
	}

	keys := []string{
		"tab: next panel",
		"ctrl+s: save",
		"ctrl+c: quit",
	}
	if m.dirty {
		keys = append(keys, "unsaved changes")
	}

	footerStyle := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Background(lipgloss.Color(theme.GetColor("border"))).
		Foreground(lipgloss.Color(theme.GetColor("foreground")))

	footer := footerStyle.Render(strings.Join(keys, " • "))
	if status == "" {
		return footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, footer)
}
