package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
)

// Animation panel rows in focus order
const (
	animRowEnabled = iota
	animRowStyle
	animRowMode
	animRowDuration
	animRowDelay
	animRowStagger
	animRowStylesheetOnly
)

// AnimationManager owns the column-animation field group and its cross-field
// visibility rules. Its writes are double-tracked: the typed setters fire the
// shared dirty signal, and every committed change is also pushed eagerly
// through the settings store so animation settings survive even when the
// user never reaches the batched save.
type AnimationManager struct {
	state  *settings.State
	store  domain.SettingsStore
	logger *log.Logger

	styles panelStyles
	keys   panelKeyMap

	durationInput textinput.Model
	delayInput    textinput.Model
	staggerInput  textinput.Model

	focus   int
	editing bool
	width   int
	height  int
}

// NewAnimationManager creates the animation settings panel
func NewAnimationManager(state *settings.State, store domain.SettingsStore, logger *log.Logger) *AnimationManager {
	if logger == nil {
		logger = log.Default()
	}

	newNumericInput := func() textinput.Model {
		input := textinput.New()
		input.CharLimit = 8
		input.Width = 6
		return input
	}

	return &AnimationManager{
		state:         state,
		store:         store,
		logger:        logger.WithPrefix("animation"),
		styles:        defaultPanelStyles(),
		keys:          defaultPanelKeyMap(),
		durationInput: newNumericInput(),
		delayInput:    newNumericInput(),
		staggerInput:  newNumericInput(),
	}
}

// Setup wires the controls from the shared settings record; idempotent
func (m *AnimationManager) Setup() {
	animation := m.state.Data().Animation

	m.durationInput.SetValue(formatSeconds(animation.Duration))
	m.delayInput.SetValue(formatSeconds(animation.Delay))
	m.staggerInput.SetValue(formatSeconds(animation.Stagger))

	m.focus = animRowEnabled
	m.editing = false
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Init implements tea.Model
func (m *AnimationManager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *AnimationManager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Left):
		m.adjust(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.adjust(1)
	case key.Matches(keyMsg, m.keys.Enter):
		m.activate()
	}
	return m, nil
}

func (m *AnimationManager) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.stopEditing()
		return m, nil
	case key.Matches(msg, m.keys.Commit):
		m.commitEdit()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case animRowDuration:
		m.durationInput, cmd = m.durationInput.Update(msg)
	case animRowDelay:
		m.delayInput, cmd = m.delayInput.Update(msg)
	case animRowStagger:
		m.staggerInput, cmd = m.staggerInput.Update(msg)
	}
	return m, cmd
}

func (m *AnimationManager) activate() {
	switch m.focus {
	case animRowEnabled:
		m.setEnabled(!m.state.Data().Animation.Enabled)
	case animRowStylesheetOnly:
		m.setStylesheetOnly(!m.state.Data().Animation.StylesheetOnly)
	case animRowDuration, animRowDelay, animRowStagger:
		m.startEditing()
	case animRowStyle, animRowMode:
		m.adjust(1)
	}
}

func (m *AnimationManager) startEditing() {
	m.editing = true
	switch m.focus {
	case animRowDuration:
		m.durationInput.Focus()
	case animRowDelay:
		m.delayInput.Focus()
	case animRowStagger:
		m.staggerInput.Focus()
	}
}

func (m *AnimationManager) stopEditing() {
	m.editing = false
	m.durationInput.Blur()
	m.delayInput.Blur()
	m.staggerInput.Blur()
}

// commitEdit parses the focused numeric input. Out-of-range or unparseable
// input is silently ignored: no mutation, no dirty signal, and the input
// reverts to the stored value.
func (m *AnimationManager) commitEdit() {
	row := m.focus
	m.stopEditing()

	switch row {
	case animRowDuration:
		if v, err := strconv.ParseFloat(strings.TrimSpace(m.durationInput.Value()), 64); err == nil && m.state.SetAnimationDuration(v) {
			m.persist("animation.duration", v)
		}
		m.durationInput.SetValue(formatSeconds(m.state.Data().Animation.Duration))
	case animRowDelay:
		if v, err := strconv.ParseFloat(strings.TrimSpace(m.delayInput.Value()), 64); err == nil && m.state.SetAnimationDelay(v) {
			m.persist("animation.delay", v)
		}
		m.delayInput.SetValue(formatSeconds(m.state.Data().Animation.Delay))
	case animRowStagger:
		if v, err := strconv.ParseFloat(strings.TrimSpace(m.staggerInput.Value()), 64); err == nil && m.state.SetAnimationStagger(v) {
			m.persist("animation.stagger", v)
		}
		m.staggerInput.SetValue(formatSeconds(m.state.Data().Animation.Stagger))
	}
}

func (m *AnimationManager) setEnabled(enabled bool) {
	m.state.SetAnimationEnabled(enabled)
	m.persist("animation.enabled", enabled)
}

func (m *AnimationManager) setStylesheetOnly(enabled bool) {
	m.state.SetStylesheetOnly(enabled)
	m.persist("animation.stylesheet_only", enabled)
}

// adjust cycles the focused select; the style and mode selects are inert
// while stylesheet-only mode is on
func (m *AnimationManager) adjust(dir int) {
	animation := m.state.Data().Animation

	switch m.focus {
	case animRowStyle:
		if animation.StylesheetOnly {
			return
		}
		styles := []domain.AnimationStyle{
			domain.AnimationStyleFade,
			domain.AnimationStyleSlideUp,
			domain.AnimationStyleSlideDown,
			domain.AnimationStyleZoom,
			domain.AnimationStyleNone,
		}
		next := cycle(styles, animation.Style, dir)
		if m.state.SetAnimationStyle(next) {
			m.persist("animation.style", string(next))
		}
	case animRowMode:
		if animation.StylesheetOnly {
			return
		}
		modes := []domain.AnimationMode{
			domain.AnimationModeAllAtOnce,
			domain.AnimationModeSequential,
		}
		next := cycle(modes, animation.Mode, dir)
		if m.state.SetAnimationMode(next) {
			m.persist("animation.mode", string(next))
		}
	}
}

// persist is the eager side channel: each committed field change is written
// through the store immediately, in addition to the batched dirty flow
func (m *AnimationManager) persist(key string, value interface{}) {
	if m.store == nil {
		return
	}
	if err := m.store.Set(key, value); err != nil {
		m.logger.Warn("eager persist failed", "key", key, "err", err)
	}
}

// AnimationRender is the derived view of the animation field group
type AnimationRender struct {
	ControlsVisible bool
	StaggerVisible  bool
	SelectsDisabled bool
	TimingDimmed    bool
}

// RenderAnimation computes the cross-field visibility rules: the controls
// block follows the enabled flag, the stagger control follows sequential
// mode, and stylesheet-only mode disables the selects and dims the timing
// controls without touching their stored values.
func RenderAnimation(animation domain.AnimationSettings) AnimationRender {
	return AnimationRender{
		ControlsVisible: animation.Enabled,
		StaggerVisible:  animation.Enabled && animation.Mode == domain.AnimationModeSequential,
		SelectsDisabled: animation.StylesheetOnly,
		TimingDimmed:    animation.StylesheetOnly,
	}
}

// visibleRows lists focusable rows for the current state
func (m *AnimationManager) visibleRows() []int {
	animation := m.state.Data().Animation
	render := RenderAnimation(animation)

	rows := []int{animRowEnabled}
	if !render.ControlsVisible {
		return rows
	}

	if !render.SelectsDisabled {
		rows = append(rows, animRowStyle, animRowMode)
	}
	if !render.TimingDimmed {
		rows = append(rows, animRowDuration, animRowDelay)
		if render.StaggerVisible {
			rows = append(rows, animRowStagger)
		}
	}
	rows = append(rows, animRowStylesheetOnly)
	return rows
}

func (m *AnimationManager) moveFocus(dir int) {
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
func (m *AnimationManager) View() string {
	var content strings.Builder
	animation := m.state.Data().Animation
	render := RenderAnimation(animation)

	content.WriteString(m.styles.title.Render("Column Animation") + "\n\n")
	content.WriteString(m.styles.checkbox("Animate columns", animation.Enabled, m.focus == animRowEnabled) + "\n")

	if !render.ControlsVisible {
		return content.String()
	}

	content.WriteString(m.styles.selectRow("Style", string(animation.Style), m.focus == animRowStyle, render.SelectsDisabled) + "\n")
	content.WriteString(m.styles.selectRow("Mode", string(animation.Mode), m.focus == animRowMode, render.SelectsDisabled) + "\n")

	timing := fmt.Sprintf("%s\n%s\n",
		m.numericRow("Duration (s)", m.durationInput, animRowDuration),
		m.numericRow("Delay (s)", m.delayInput, animRowDelay),
	)
	if render.StaggerVisible {
		timing += m.numericRow("Stagger (s)", m.staggerInput, animRowStagger) + "\n"
	}
	if render.TimingDimmed {
		timing = m.styles.dimmed.Render(strings.TrimRight(timing, "\n")) + "\n"
	}
	content.WriteString(timing)

	content.WriteString("\n" + m.styles.checkbox("Stylesheet only", animation.StylesheetOnly, m.focus == animRowStylesheetOnly) + "\n")
	if animation.StylesheetOnly {
		content.WriteString(m.styles.help.Render("Animation is driven by the custom stylesheet; settings are kept but inactive") + "\n")
	}

	return content.String()
}

func (m *AnimationManager) numericRow(label string, input textinput.Model, row int) string {
	style := m.styles.label
	if m.focus == row {
		style = m.styles.selected
	}
	return style.Render(label+":") + " " + input.View()
}

// OnPanelSwitch implements domain.OptionsPanel
func (m *AnimationManager) OnPanelSwitch(panelID string) {}

// SetSize implements domain.OptionsPanel
func (m *AnimationManager) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme implements domain.OptionsPanel
func (m *AnimationManager) SetTheme(theme domain.Theme) {
	m.styles.applyTheme(theme)
}
