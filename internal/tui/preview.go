package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/options"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
)

// PreviewModel renders a miniature deck next to the panels so every change
// is visible as it is made. It reads the shared record and applies the same
// derived values the real deck would.
type PreviewModel struct {
	state  *settings.State
	theme  domain.Theme
	width  int
	height int
}

// NewPreviewModel creates the preview pane over the shared settings record
func NewPreviewModel(state *settings.State) *PreviewModel {
	return &PreviewModel{state: state}
}

// SetSize updates the pane dimensions
func (p *PreviewModel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetTheme recolors the pane from the active palette
func (p *PreviewModel) SetTheme(theme domain.Theme) {
	p.theme = theme
}

// View renders the deck mockup
func (p *PreviewModel) View() string {
	if p.width < 20 {
		return ""
	}

	data := p.state.Data()
	background := options.RenderBackground(data.Background)
	animation := options.RenderAnimation(data.Animation)

	var lines []string
	lines = append(lines, p.backgroundSummary(background))
	lines = append(lines, p.deckMockup(data))
	lines = append(lines, p.animationSummary(animation, data.Animation))

	borderColor := "240"
	if p.theme != nil {
		borderColor = p.theme.GetColor("border")
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(p.width-2).
		Padding(0, 1)

	return frame.Render(strings.Join(lines, "\n"))
}

// backgroundSummary describes the page background the way the deck would
// paint it
func (p *PreviewModel) backgroundSummary(background options.BackgroundRender) string {
	var parts []string

	if background.PageColor != "" {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(background.PageColor)).
			Render("  ")
		parts = append(parts, swatch+" "+background.PageColor)
	}
	if background.HasImage {
		parts = append(parts, fmt.Sprintf("image %s / %s / %s",
			background.Size, background.Repeat, background.Position))
	}
	if len(parts) == 0 {
		return "plain background"
	}
	return wordwrap.String(strings.Join(parts, ", "), p.width-4)
}

// deckMockup draws a few columns sized from the display settings, with the
// element toggles from the general group applied
func (p *PreviewModel) deckMockup(data *domain.Settings) string {
	display := data.Display
	general := data.General

	// Scale the real column width down to a handful of terminal cells
	columnWidth := display.ColumnWidthBase / 25
	if columnWidth < 8 {
		columnWidth = 8
	}
	columns := (p.width - 6) / (columnWidth + 1)
	if columns < 1 {
		columns = 1
	}
	if columns > 3 {
		columns = 3
	}

	var column strings.Builder
	if general.ShowColumnHeaders {
		column.WriteString(strings.Repeat("━", columnWidth) + "\n")
	}
	if general.ShowGroupHeaders {
		column.WriteString("┄ group ┄\n")
	}
	for i := 0; i < 3; i++ {
		row := ""
		if general.ShowIcons {
			row += "▣ "
		}
		row += "site"
		if general.ShowURLs {
			row += " · url"
		}
		column.WriteString(row + "\n")
	}

	columnStyle := lipgloss.NewStyle().
		Width(columnWidth).
		MarginRight(1)

	rendered := make([]string, columns)
	for i := range rendered {
		rendered[i] = columnStyle.Render(strings.TrimRight(column.String(), "\n"))
	}

	mockup := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	caption := fmt.Sprintf("%dpx text · %s · %s columns",
		display.BaseFontSize, options.ScaleLabel(display.UIScale), options.WidthLabel(display.ColumnWidthBase))

	return mockup + "\n" + caption
}

// animationSummary describes how columns will enter the page
func (p *PreviewModel) animationSummary(render options.AnimationRender, animation domain.AnimationSettings) string {
	if !render.ControlsVisible {
		return "no animation"
	}
	if render.SelectsDisabled {
		return "animation: stylesheet driven"
	}

	summary := fmt.Sprintf("animation: %s, %s, %.2gs", animation.Style, animation.Mode, animation.Duration)
	if render.StaggerVisible {
		summary += fmt.Sprintf(" +%.2gs stagger", animation.Stagger)
	}
	return wordwrap.String(summary, p.width-4)
}
