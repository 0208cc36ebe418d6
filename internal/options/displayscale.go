package options

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
)

// Display panel rows in focus order
const (
	dsRowFontSize = iota
	dsRowUIScale
	dsRowColumnWidth
)

const (
	uiScaleStep     = 0.05
	columnWidthStep = 10
)

// DisplayScaleConfig selects which controls a display panel instance hosts.
// The deck page and the compact popup share this one component; the popup
// simply omits the column width control.
type DisplayScaleConfig struct {
	IncludeColumnWidth bool
}

// DisplayScaleManager owns the three numeric scale fields. Each control is
// independent: range-checked write, live label, reset to default.
type DisplayScaleManager struct {
	state  *settings.State
	config DisplayScaleConfig

	styles panelStyles
	keys   panelKeyMap

	fontSizeInput textinput.Model

	focus   int
	editing bool
	width   int
	height  int
}

// NewDisplayScaleManager creates the display scale panel
func NewDisplayScaleManager(state *settings.State, config DisplayScaleConfig) *DisplayScaleManager {
	fontSizeInput := textinput.New()
	fontSizeInput.CharLimit = 3
	fontSizeInput.Width = 4

	return &DisplayScaleManager{
		state:         state,
		config:        config,
		styles:        defaultPanelStyles(),
		keys:          defaultPanelKeyMap(),
		fontSizeInput: fontSizeInput,
	}
}

// Setup wires the controls from the shared settings record; idempotent
func (m *DisplayScaleManager) Setup() {
	m.fontSizeInput.SetValue(strconv.Itoa(m.state.Data().Display.BaseFontSize))
	m.focus = dsRowFontSize
	m.editing = false
}

// ScaleLabel renders a UI scale factor as its rounded percentage
func ScaleLabel(scale float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(scale*100)))
}

// WidthLabel renders a column width as a pixel value
func WidthLabel(width int) string {
	return fmt.Sprintf("%dpx", width)
}

// Init implements tea.Model
func (m *DisplayScaleManager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *DisplayScaleManager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch {
		case key.Matches(keyMsg, m.keys.Escape):
			m.stopEditing()
		case key.Matches(keyMsg, m.keys.Commit):
			m.commitFontSize()
		default:
			var cmd tea.Cmd
			m.fontSizeInput, cmd = m.fontSizeInput.Update(keyMsg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Left):
		m.step(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.step(1)
	case key.Matches(keyMsg, m.keys.Enter):
		if m.focus == dsRowFontSize {
			m.editing = true
			m.fontSizeInput.Focus()
		}
	case key.Matches(keyMsg, m.keys.Reset):
		m.resetFocused()
	}
	return m, nil
}

func (m *DisplayScaleManager) stopEditing() {
	m.editing = false
	m.fontSizeInput.Blur()
}

// commitFontSize parses the font size input. Out-of-range input is rejected
// outright, not clamped to the nearest bound; the input reverts to the
// stored value either way.
func (m *DisplayScaleManager) commitFontSize() {
	m.stopEditing()

	if v, err := strconv.Atoi(strings.TrimSpace(m.fontSizeInput.Value())); err == nil {
		m.state.SetBaseFontSize(v)
	}
	m.fontSizeInput.SetValue(strconv.Itoa(m.state.Data().Display.BaseFontSize))
}

// step nudges the focused slider; a step past either bound is rejected by
// the state boundary and leaves the value where it was
func (m *DisplayScaleManager) step(dir int) {
	display := m.state.Data().Display
	switch m.focus {
	case dsRowUIScale:
		next := math.Round((display.UIScale+float64(dir)*uiScaleStep)*100) / 100
		m.state.SetUIScale(next)
	case dsRowColumnWidth:
		if m.config.IncludeColumnWidth {
			m.state.SetColumnWidth(display.ColumnWidthBase + dir*columnWidthStep)
		}
	}
}

// resetFocused restores the focused control to its default value
func (m *DisplayScaleManager) resetFocused() {
	switch m.focus {
	case dsRowFontSize:
		m.state.SetBaseFontSize(domain.DefaultBaseFontSize)
		m.fontSizeInput.SetValue(strconv.Itoa(domain.DefaultBaseFontSize))
	case dsRowUIScale:
		m.state.SetUIScale(domain.DefaultUIScale)
	case dsRowColumnWidth:
		if m.config.IncludeColumnWidth {
			m.state.SetColumnWidth(domain.DefaultColumnWidth)
		}
	}
}

func (m *DisplayScaleManager) visibleRows() []int {
	rows := []int{dsRowFontSize, dsRowUIScale}
	if m.config.IncludeColumnWidth {
		rows = append(rows, dsRowColumnWidth)
	}
	return rows
}

func (m *DisplayScaleManager) moveFocus(dir int) {
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
func (m *DisplayScaleManager) View() string {
	var content strings.Builder
	display := m.state.Data().Display

	content.WriteString(m.styles.title.Render("Display Scale") + "\n\n")

	fontStyle := m.styles.label
	if m.focus == dsRowFontSize {
		fontStyle = m.styles.selected
	}
	content.WriteString(fontStyle.Render("Base font size:") + " " + m.fontSizeInput.View() +
		" " + m.styles.help.Render(fmt.Sprintf("(%d-%d)", domain.MinBaseFontSize, domain.MaxBaseFontSize)) + "\n")

	content.WriteString(m.sliderRow("UI scale", ScaleLabel(display.UIScale), dsRowUIScale) + "\n")

	if m.config.IncludeColumnWidth {
		content.WriteString(m.sliderRow("Column width", WidthLabel(display.ColumnWidthBase), dsRowColumnWidth) + "\n")
	}

	content.WriteString("\n" + m.styles.help.Render("←/→ adjust • r reset to default") + "\n")
	return content.String()
}

func (m *DisplayScaleManager) sliderRow(label, value string, row int) string {
	if m.focus == row {
		return m.styles.selected.Render(fmt.Sprintf("%s: ◀ %s ▶", label, value))
	}
	return m.styles.label.Render(label+":") + " " + m.styles.value.Render(value)
}

// OnPanelSwitch implements domain.OptionsPanel
func (m *DisplayScaleManager) OnPanelSwitch(panelID string) {}

// SetSize implements domain.OptionsPanel
func (m *DisplayScaleManager) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme implements domain.OptionsPanel
func (m *DisplayScaleManager) SetTheme(theme domain.Theme) {
	m.styles.applyTheme(theme)
}
