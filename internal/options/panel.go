// Package options contains the settings managers of the TabDeck options page.
// Each manager owns a disjoint group of fields in the shared settings record,
// binds its controls to that group, and applies its side effects whenever a
// field changes. Managers never read another manager's fields except through
// the record, and never trigger another manager's recomputation directly.
package options

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
)

// Panel identifiers used by the page shell and the OnPanelSwitch hook
const (
	PanelBackground = "background"
	PanelAnimation  = "animation"
	PanelDisplay    = "display"
	PanelGeneral    = "general"
	PanelTheme      = "theme"
	PanelData       = "data"
)

// panelKeyMap is the key set shared by every settings panel
type panelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Commit key.Binding
	Escape key.Binding
	Reset  key.Binding
}

func defaultPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous value")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next value")),
		Enter:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle/edit")),
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to default")),
	}
}

// panelStyles holds the lipgloss styles shared by the settings panels
type panelStyles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	selected lipgloss.Style
	disabled lipgloss.Style
	dimmed   lipgloss.Style
	help     lipgloss.Style
	errorMsg lipgloss.Style
	success  lipgloss.Style
	border   lipgloss.Style
}

func defaultPanelStyles() panelStyles {
	return panelStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		selected: lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("230")),
		disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		dimmed:   lipgloss.NewStyle().Faint(true),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")),
	}
}

// applyTheme recolors the shared styles from the active theme
func (s *panelStyles) applyTheme(theme domain.Theme) {
	if theme == nil {
		return
	}
	s.title = s.title.Foreground(lipgloss.Color(theme.GetColor("primary")))
	s.selected = s.selected.Background(lipgloss.Color(theme.GetColor("primary")))
	s.errorMsg = s.errorMsg.Foreground(lipgloss.Color(theme.GetColor("error")))
	s.success = s.success.Foreground(lipgloss.Color(theme.GetColor("success")))
	s.border = s.border.BorderForeground(lipgloss.Color(theme.GetColor("border")))
}

// cycle advances cur through options by dir (+1 or -1), wrapping at the ends
func cycle[T comparable](options []T, cur T, dir int) T {
	for i, option := range options {
		if option == cur {
			next := (i + dir + len(options)) % len(options)
			return options[next]
		}
	}
	return options[0]
}

// checkbox renders a boolean row the way every panel draws them
func (s panelStyles) checkbox(label string, checked, selected bool) string {
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	row := fmt.Sprintf("%s %s", mark, label)
	if selected {
		return s.selected.Render(row)
	}
	return s.label.Render(row)
}

// selectRow renders an enum row with its current value
func (s panelStyles) selectRow(label, value string, selected, disabled bool) string {
	row := fmt.Sprintf("%s: ", label)
	switch {
	case disabled:
		return s.disabled.Render(row + value)
	case selected:
		return s.selected.Render(row + "◀ " + value + " ▶")
	default:
		return s.label.Render(row) + s.value.Render(value)
	}
}

// actionRow renders an action row like "Remove image"
func (s panelStyles) actionRow(label string, selected, enabled bool) string {
	row := "» " + label
	switch {
	case !enabled:
		return s.disabled.Render(row)
	case selected:
		return s.selected.Render(row)
	default:
		return s.label.Render(row)
	}
}
