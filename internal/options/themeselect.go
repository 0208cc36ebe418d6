package options

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
)

// Theme panel rows in focus order. The radio rows come first, followed by
// the stylesheet block for whichever theme is active.
const (
	themeRowRadioBase = iota // one row per theme name
)

const (
	themeRowCSSEnabled = 100 + iota
	themeRowCSSEdit
	themeRowCSSCopy
)

// ThemeChangeFunc is notified after the active theme changes. The selection
// is already committed when the callback runs; a panicking callback is
// logged and the selection stands.
type ThemeChangeFunc func(name domain.ThemeName)

// ThemeSelector owns the active theme radio group and the per-theme custom
// stylesheet slots. Exactly one stylesheet section is visible at a time,
// the one belonging to the selected theme.
type ThemeSelector struct {
	state         *settings.State
	notifier      domain.Notifier
	onThemeChange ThemeChangeFunc
	logger        *log.Logger

	styles panelStyles
	keys   panelKeyMap

	cssInput textarea.Model

	focus   int
	editing bool
	width   int
	height  int
}

// NewThemeSelector creates the theme panel
func NewThemeSelector(state *settings.State, notifier domain.Notifier, onThemeChange ThemeChangeFunc, logger *log.Logger) *ThemeSelector {
	cssInput := textarea.New()
	cssInput.Placeholder = "/* custom stylesheet */"
	cssInput.SetHeight(6)

	return &ThemeSelector{
		state:         state,
		notifier:      notifier,
		onThemeChange: onThemeChange,
		logger:        logger,
		styles:        defaultPanelStyles(),
		keys:          defaultPanelKeyMap(),
		cssInput:      cssInput,
	}
}

// Setup points the stylesheet editor at the active theme's slot; idempotent
func (m *ThemeSelector) Setup() {
	m.focus = m.activeRadioRow()
	m.editing = false
	m.syncCSSInput()
}

// CurrentTheme returns the committed active theme
func (m *ThemeSelector) CurrentTheme() domain.ThemeName {
	return m.state.Data().Theme.Active
}

func (m *ThemeSelector) activeRadioRow() int {
	for i, name := range domain.ThemeNames() {
		if name == m.CurrentTheme() {
			return themeRowRadioBase + i
		}
	}
	return themeRowRadioBase
}

func (m *ThemeSelector) syncCSSInput() {
	if slot := m.state.Data().Theme.CSSFor(m.CurrentTheme()); slot != nil {
		m.cssInput.SetValue(slot.CSS)
	}
}

// Init implements tea.Model
func (m *ThemeSelector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *ThemeSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch {
		case key.Matches(keyMsg, m.keys.Escape):
			m.commitCSS()
		default:
			var cmd tea.Cmd
			m.cssInput, cmd = m.cssInput.Update(keyMsg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Enter):
		m.activate()
	}
	return m, nil
}

func (m *ThemeSelector) activate() {
	names := domain.ThemeNames()
	if m.focus >= themeRowRadioBase && m.focus < themeRowRadioBase+len(names) {
		m.selectTheme(names[m.focus-themeRowRadioBase])
		return
	}

	active := m.CurrentTheme()
	switch m.focus {
	case themeRowCSSEnabled:
		if slot := m.state.Data().Theme.CSSFor(active); slot != nil {
			m.state.SetThemeCSSEnabled(active, !slot.Enabled)
		}
	case themeRowCSSEdit:
		m.editing = true
		m.syncCSSInput()
		m.cssInput.Focus()
	case themeRowCSSCopy:
		m.copyCSS()
	}
}

// selectTheme commits the radio selection, rebinds the stylesheet section to
// the new theme and fires the change callback. The callback runs after the
// write; if it panics the selection is not rolled back.
func (m *ThemeSelector) selectTheme(name domain.ThemeName) {
	if name == m.CurrentTheme() {
		return
	}
	if !m.state.SetTheme(name) {
		return
	}
	m.syncCSSInput()
	m.notifyThemeChange(name)
}

func (m *ThemeSelector) notifyThemeChange(name domain.ThemeName) {
	if m.onThemeChange == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil && m.logger != nil {
			m.logger.Error("theme change callback panicked", "theme", name, "panic", r)
		}
	}()
	m.onThemeChange(name)
}

func (m *ThemeSelector) commitCSS() {
	m.editing = false
	m.cssInput.Blur()
	m.state.SetThemeCSS(m.CurrentTheme(), m.cssInput.Value())
}

func (m *ThemeSelector) copyCSS() {
	slot := m.state.Data().Theme.CSSFor(m.CurrentTheme())
	if slot == nil || slot.CSS == "" {
		return
	}
	if err := clipboard.WriteAll(slot.CSS); err != nil {
		if m.logger != nil {
			m.logger.Warn("failed to copy stylesheet to clipboard", "error", err)
		}
		if m.notifier != nil {
			m.notifier.ShowError("Could not copy stylesheet to clipboard")
		}
		return
	}
	if m.notifier != nil {
		m.notifier.ShowSuccess("Stylesheet copied to clipboard")
	}
}

func (m *ThemeSelector) visibleRows() []int {
	rows := make([]int, 0, len(domain.ThemeNames())+3)
	for i := range domain.ThemeNames() {
		rows = append(rows, themeRowRadioBase+i)
	}
	rows = append(rows, themeRowCSSEnabled, themeRowCSSEdit, themeRowCSSCopy)
	return rows
}

func (m *ThemeSelector) moveFocus(dir int) {
	rows := m.visibleRows()
	index := 0
	for i, row := range rows {
		if row == m.focus {
			index = i
			break
		}
	}
	index += dir
	if index < 0 {
		index = 0
	}
	if index >= len(rows) {
		index = len(rows) - 1
	}
	m.focus = rows[index]
}

// View implements tea.Model
func (m *ThemeSelector) View() string {
	var content strings.Builder
	theme := m.state.Data().Theme

	content.WriteString(m.styles.title.Render("Theme") + "\n\n")

	for i, name := range domain.ThemeNames() {
		mark := "( )"
		if name == theme.Active {
			mark = "(•)"
		}
		row := fmt.Sprintf("%s %s", mark, name)
		if m.focus == themeRowRadioBase+i {
			content.WriteString(m.styles.selected.Render(row) + "\n")
		} else {
			content.WriteString(m.styles.label.Render(row) + "\n")
		}
	}

	slot := theme.CSSFor(theme.Active)
	if slot != nil {
		content.WriteString("\n" + m.styles.title.Render(fmt.Sprintf("Custom stylesheet (%s)", theme.Active)) + "\n")
		content.WriteString(m.styles.checkbox("Enable custom stylesheet", slot.Enabled, m.focus == themeRowCSSEnabled) + "\n")

		if m.editing {
			content.WriteString(m.cssInput.View() + "\n")
			content.WriteString(m.styles.help.Render("esc to save") + "\n")
		} else {
			content.WriteString(m.styles.actionRow("Edit stylesheet", m.focus == themeRowCSSEdit, true) + "\n")
			content.WriteString(m.styles.actionRow("Copy to clipboard", m.focus == themeRowCSSCopy, slot.CSS != "") + "\n")
		}
	}

	return content.String()
}

// OnPanelSwitch implements domain.OptionsPanel
func (m *ThemeSelector) OnPanelSwitch(panelID string) {}

// SetSize implements domain.OptionsPanel
func (m *ThemeSelector) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.cssInput.SetWidth(max(20, min(width-4, 60)))
}

// SetTheme implements domain.OptionsPanel
func (m *ThemeSelector) SetTheme(theme domain.Theme) {
	m.styles.applyTheme(theme)
}
