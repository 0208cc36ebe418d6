package options

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tabdeck/tabdeck-tui/internal/datauri"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
)

// Background panel rows in focus order
const (
	bgRowColorEnabled = iota
	bgRowColorValue
	bgRowClearColor
	bgRowImagePath
	bgRowRemoveImage
	bgRowSize
	bgRowRepeat
	bgRowPosition
	bgRowWidth
	bgRowHeight
)

const defaultPageColor = "#ffffff"

// uploadResultMsg carries the outcome of an image encode task back to the
// merge point. generation identifies the task so a superseded result can be
// recognized.
type uploadResultMsg struct {
	generation int
	path       string
	uri        string
	err        error
}

// BackgroundManager owns the page-background-color and background-image
// field groups. The color and image sub-systems are independent: either can
// be set, cleared or changed without touching the other.
type BackgroundManager struct {
	state    *settings.State
	notifier domain.Notifier
	encoder  domain.FileEncoder
	logger   *log.Logger

	styles panelStyles
	keys   panelKeyMap

	colorInput  textinput.Model
	pathInput   textinput.Model
	widthInput  textinput.Model
	heightInput textinput.Model

	focus   int
	editing bool
	width   int
	height  int

	// uploadGeneration and cancelUpload implement the explicit merge point
	// for the one asynchronous operation on this page: starting a new
	// upload or removing the image bumps the generation and cancels the
	// in-flight encode, so the last requested write is the one that lands.
	uploadGeneration int
	cancelUpload     context.CancelFunc
}

// NewBackgroundManager creates the background settings panel
func NewBackgroundManager(state *settings.State, notifier domain.Notifier, encoder domain.FileEncoder, logger *log.Logger) *BackgroundManager {
	if logger == nil {
		logger = log.Default()
	}

	colorInput := textinput.New()
	colorInput.Placeholder = defaultPageColor
	colorInput.CharLimit = 32
	colorInput.Width = 12

	pathInput := textinput.New()
	pathInput.Placeholder = "path to image file..."
	pathInput.CharLimit = 512
	pathInput.Width = 40

	widthInput := textinput.New()
	widthInput.Placeholder = "auto"
	widthInput.CharLimit = 32
	widthInput.Width = 12

	heightInput := textinput.New()
	heightInput.Placeholder = "auto"
	heightInput.CharLimit = 32
	heightInput.Width = 12

	return &BackgroundManager{
		state:       state,
		notifier:    notifier,
		encoder:     encoder,
		logger:      logger.WithPrefix("background"),
		styles:      defaultPanelStyles(),
		keys:        defaultPanelKeyMap(),
		colorInput:  colorInput,
		pathInput:   pathInput,
		widthInput:  widthInput,
		heightInput: heightInput,
	}
}

// Setup wires the controls from the shared settings record. It is idempotent:
// running it twice over identical state leaves identical control values.
func (m *BackgroundManager) Setup() {
	background := m.state.Data().Background

	if background.PageColor != "" {
		m.colorInput.SetValue(background.PageColor)
	} else if m.colorInput.Value() == "" {
		m.colorInput.SetValue(defaultPageColor)
	}
	m.widthInput.SetValue(background.Width)
	m.heightInput.SetValue(background.Height)

	m.focus = bgRowColorEnabled
	m.editing = false
}

// Init implements tea.Model
func (m *BackgroundManager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *BackgroundManager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadResultMsg:
		m.applyUploadResult(msg)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNavigation(msg)
	}

	return m, nil
}

// updateNavigation handles keys while no text input is focused
func (m *BackgroundManager) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		m.adjust(1)
	case key.Matches(msg, m.keys.Enter):
		return m.activate()
	}
	return m, nil
}

// updateEditing routes keys into the focused text input and commits derived
// values on every keystroke where the contract calls for it
func (m *BackgroundManager) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.stopEditing()
		return m, nil
	case key.Matches(msg, m.keys.Commit):
		return m.commitEdit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case bgRowColorValue:
		m.colorInput, cmd = m.colorInput.Update(msg)
		// While the color feature is on, the property follows every
		// keystroke; while off, only the input changes.
		if m.ColorEnabled() {
			m.state.SetPageColor(m.colorInput.Value())
		}
	case bgRowImagePath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case bgRowWidth:
		m.widthInput, cmd = m.widthInput.Update(msg)
		m.state.SetBackgroundDimensions(m.widthInput.Value(), m.heightInput.Value())
	case bgRowHeight:
		m.heightInput, cmd = m.heightInput.Update(msg)
		m.state.SetBackgroundDimensions(m.widthInput.Value(), m.heightInput.Value())
	}
	return m, cmd
}

// activate handles enter on the focused row
func (m *BackgroundManager) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case bgRowColorEnabled:
		m.toggleColorEnabled()
	case bgRowClearColor:
		m.clearColor()
	case bgRowRemoveImage:
		m.removeImage()
	case bgRowColorValue, bgRowImagePath, bgRowWidth, bgRowHeight:
		m.startEditing()
	case bgRowSize, bgRowRepeat, bgRowPosition:
		m.adjust(1)
	}
	return m, nil
}

// commitEdit finishes an edit; the image path row commits by starting the
// upload task
func (m *BackgroundManager) commitEdit() (tea.Model, tea.Cmd) {
	row := m.focus
	m.stopEditing()

	if row == bgRowImagePath {
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		return m, m.startUpload(path)
	}
	return m, nil
}

func (m *BackgroundManager) startEditing() {
	m.editing = true
	switch m.focus {
	case bgRowColorValue:
		m.colorInput.Focus()
	case bgRowImagePath:
		m.pathInput.Focus()
	case bgRowWidth:
		m.widthInput.Focus()
	case bgRowHeight:
		m.heightInput.Focus()
	}
}

func (m *BackgroundManager) stopEditing() {
	m.editing = false
	m.colorInput.Blur()
	m.pathInput.Blur()
	m.widthInput.Blur()
	m.heightInput.Blur()
}

// ColorEnabled reports whether the page background color feature is on
func (m *BackgroundManager) ColorEnabled() bool {
	return m.state.Data().Background.PageColor != ""
}

// toggleColorEnabled enables the color feature with the current input value,
// or disables it leaving the input untouched so re-enabling restores the
// last value held by the input.
func (m *BackgroundManager) toggleColorEnabled() {
	if m.ColorEnabled() {
		m.state.ClearPageColor()
		return
	}
	color := m.colorInput.Value()
	if color == "" {
		color = defaultPageColor
		m.colorInput.SetValue(color)
	}
	m.state.SetPageColor(color)
}

// clearColor disables and nulls the color in one step
func (m *BackgroundManager) clearColor() {
	m.state.ClearPageColor()
}

// startUpload begins the asynchronous encode of an image file. Any in-flight
// encode is cancelled first; its late result will be dropped at the merge
// point because the generation has moved on.
func (m *BackgroundManager) startUpload(path string) tea.Cmd {
	if m.cancelUpload != nil {
		m.cancelUpload()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelUpload = cancel
	m.uploadGeneration++

	generation := m.uploadGeneration
	encoder := m.encoder

	return func() tea.Msg {
		uri, err := encoder.EncodeFile(ctx, path)
		return uploadResultMsg{generation: generation, path: path, uri: uri, err: err}
	}
}

// applyUploadResult is the single merge point for upload outcomes: stale
// generations are dropped, failures surface through the notifier with state
// untouched, and a success is the one write to the stored data URI.
func (m *BackgroundManager) applyUploadResult(msg uploadResultMsg) {
	if msg.generation != m.uploadGeneration {
		m.logger.Debug("dropping superseded upload result", "path", msg.path)
		return
	}

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			m.logger.Debug("upload cancelled", "path", msg.path)
			return
		}
		m.logger.Error("background upload failed", "path", msg.path, "err", msg.err)
		m.notifier.ShowError(uploadErrorMessage(msg.err))
		return
	}

	m.state.SetBackgroundDataURI(msg.uri)
	m.notifier.ShowSuccess("Background image updated")
}

// uploadErrorMessage maps an upload failure to its user-visible message
func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, datauri.ErrNotImage):
		return "Background must be an image file"
	case errors.Is(err, datauri.ErrTooLarge):
		return "Background image must be 5 MB or smaller"
	default:
		return "Failed to process background image"
	}
}

// BackgroundRender is the derived view of the background field group, the
// values the preview renderer applies verbatim.
type BackgroundRender struct {
	HasImage  bool
	Image     string
	Size      string
	Repeat    string
	Position  string
	PageColor string
}

// RenderBackground computes the preview values from the raw fields. With no
// stored image every image property is cleared; with one, the size property
// is the derived custom string when the size mode is custom and the raw
// enum otherwise.
func RenderBackground(background domain.BackgroundSettings) BackgroundRender {
	render := BackgroundRender{PageColor: background.PageColor}

	if background.DataURI == "" {
		return render
	}

	render.HasImage = true
	render.Image = background.DataURI
	render.Repeat = string(background.Repeat)
	render.Position = string(background.Position)

	if background.Size == domain.BackgroundSizeCustom {
		render.Size = background.CustomSize
	} else {
		render.Size = string(background.Size)
	}
	return render
}

// removeImage clears the stored image; the preview reverts to its
// placeholder state. An in-flight upload is cancelled so it cannot land
// after the removal.
func (m *BackgroundManager) removeImage() {
	if m.cancelUpload != nil {
		m.cancelUpload()
		m.cancelUpload = nil
	}
	m.uploadGeneration++
	m.state.ClearBackgroundImage()
}

// adjust cycles the focused select row
func (m *BackgroundManager) adjust(dir int) {
	background := m.state.Data().Background
	switch m.focus {
	case bgRowSize:
		sizes := []domain.BackgroundSize{
			domain.BackgroundSizeCover,
			domain.BackgroundSizeContain,
			domain.BackgroundSizeAuto,
			domain.BackgroundSizeCustom,
		}
		m.state.SetBackgroundSize(cycle(sizes, background.Size, dir))
	case bgRowRepeat:
		repeats := []domain.BackgroundRepeat{
			domain.BackgroundRepeatNone,
			domain.BackgroundRepeatBoth,
			domain.BackgroundRepeatX,
			domain.BackgroundRepeatY,
		}
		m.state.SetBackgroundRepeat(cycle(repeats, background.Repeat, dir))
	case bgRowPosition:
		positions := []domain.BackgroundPosition{
			domain.BackgroundPositionCenter,
			domain.BackgroundPositionTop,
			domain.BackgroundPositionBottom,
			domain.BackgroundPositionLeft,
			domain.BackgroundPositionRight,
			domain.BackgroundPositionTopLeft,
			domain.BackgroundPositionTopRight,
			domain.BackgroundPositionBottomLeft,
			domain.BackgroundPositionBottomRight,
		}
		m.state.SetBackgroundPosition(cycle(positions, background.Position, dir))
	}
}

// visibleRows lists the focusable rows for the current state: the secondary
// options block only exists while an image is stored, and the custom
// dimension inputs only while the size mode is custom.
func (m *BackgroundManager) visibleRows() []int {
	rows := []int{bgRowColorEnabled, bgRowColorValue, bgRowClearColor, bgRowImagePath}

	background := m.state.Data().Background
	if background.DataURI != "" {
		rows = append(rows, bgRowRemoveImage, bgRowSize, bgRowRepeat, bgRowPosition)
		if background.Size == domain.BackgroundSizeCustom {
			rows = append(rows, bgRowWidth, bgRowHeight)
		}
	}
	return rows
}

// moveFocus shifts focus between visible rows without wrapping
func (m *BackgroundManager) moveFocus(dir int) {
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
func (m *BackgroundManager) View() string {
	var content strings.Builder
	background := m.state.Data().Background

	content.WriteString(m.styles.title.Render("Background") + "\n\n")

	content.WriteString(m.styles.checkbox("Page background color", m.ColorEnabled(), m.focus == bgRowColorEnabled) + "\n")
	content.WriteString("  " + m.inputRow("Color", m.colorInput, bgRowColorValue) + "\n")
	content.WriteString("  " + m.styles.actionRow("Clear color", m.focus == bgRowClearColor, true) + "\n\n")

	content.WriteString(m.inputRow("Image file", m.pathInput, bgRowImagePath) + "\n")

	if background.DataURI != "" {
		content.WriteString(m.styles.actionRow("Remove image", m.focus == bgRowRemoveImage, true) + "\n\n")
		content.WriteString(m.styles.selectRow("Size", string(background.Size), m.focus == bgRowSize, false) + "\n")
		content.WriteString(m.styles.selectRow("Repeat", string(background.Repeat), m.focus == bgRowRepeat, false) + "\n")
		content.WriteString(m.styles.selectRow("Position", string(background.Position), m.focus == bgRowPosition, false) + "\n")

		if background.Size == domain.BackgroundSizeCustom {
			content.WriteString("  " + m.inputRow("Width", m.widthInput, bgRowWidth) + "\n")
			content.WriteString("  " + m.inputRow("Height", m.heightInput, bgRowHeight) + "\n")
			content.WriteString("  " + m.styles.help.Render("size: "+background.CustomSize) + "\n")
		}
	} else {
		content.WriteString(m.styles.help.Render("No background image") + "\n")
	}

	return content.String()
}

// inputRow renders a labelled text input row
func (m *BackgroundManager) inputRow(label string, input textinput.Model, row int) string {
	style := m.styles.label
	if m.focus == row {
		style = m.styles.selected
	}
	return style.Render(label+":") + " " + input.View()
}

// OnPanelSwitch implements domain.OptionsPanel
func (m *BackgroundManager) OnPanelSwitch(panelID string) {}

// SetSize implements domain.OptionsPanel
func (m *BackgroundManager) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme implements domain.OptionsPanel
func (m *BackgroundManager) SetTheme(theme domain.Theme) {
	m.styles.applyTheme(theme)
}
