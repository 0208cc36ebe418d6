// Package tui contains the options page shell and theme system
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
)

// PaletteTheme implements the domain.Theme interface over a color map
type PaletteTheme struct {
	name   domain.ThemeName
	colors map[string]string
}

// NewLightTheme creates the light theme
func NewLightTheme() *PaletteTheme {
	return &PaletteTheme{
		name: domain.ThemeLight,
		colors: map[string]string{
			"primary":    "4",  // Blue
			"secondary":  "13", // Magenta
			"success":    "2",  // Green
			"warning":    "3",  // Yellow
			"error":      "1",  // Red
			"background": "15", // White
			"foreground": "0",  // Black
			"muted":      "8",  // Gray
			"border":     "7",  // Light Gray
			"highlight":  "15", // White
		},
	}
}

// NewDarkTheme creates the dark theme
func NewDarkTheme() *PaletteTheme {
	return &PaletteTheme{
		name: domain.ThemeDark,
		colors: map[string]string{
			"primary":    "62",  // Blue
			"secondary":  "205", // Pink
			"success":    "46",  // Green
			"warning":    "226", // Yellow
			"error":      "196", // Red
			"background": "235", // Dark Gray
			"foreground": "252", // Light Gray
			"muted":      "243", // Medium Gray
			"border":     "240", // Border Gray
			"highlight":  "230", // White
		},
	}
}

// NewBrowserTheme creates the terminal-default theme: it leaves background
// and foreground to the terminal palette the way the browser theme defers
// to the browser.
func NewBrowserTheme() *PaletteTheme {
	return &PaletteTheme{
		name: domain.ThemeBrowser,
		colors: map[string]string{
			"primary":   "6", // Cyan
			"secondary": "5", // Magenta
			"success":   "2",
			"warning":   "3",
			"error":     "1",
			"muted":     "8",
			"border":    "8",
			"highlight": "7",
		},
	}
}

// NewCustomTheme creates the custom theme base; its colors are meant to be
// overridden through SetColor
func NewCustomTheme() *PaletteTheme {
	base := NewDarkTheme()
	base.name = domain.ThemeCustom
	return base
}

// Name implements domain.Theme
func (t *PaletteTheme) Name() domain.ThemeName {
	return t.name
}

// GetColor implements domain.Theme
func (t *PaletteTheme) GetColor(element string) string {
	if color, exists := t.colors[element]; exists {
		return color
	}
	return t.colors["foreground"]
}

// SetColor overrides a palette entry
func (t *PaletteTheme) SetColor(element, color string) {
	t.colors[element] = color
}

// GetLipglossStyle returns a foreground style for the given element
func (t *PaletteTheme) GetLipglossStyle(element string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.GetColor(element)))
}

// ThemeManager resolves theme names to palettes and tracks the active one
type ThemeManager struct {
	themes  map[domain.ThemeName]domain.Theme
	current domain.Theme
}

// NewThemeManager creates a theme manager with the built-in palettes
func NewThemeManager() *ThemeManager {
	themes := map[domain.ThemeName]domain.Theme{
		domain.ThemeLight:   NewLightTheme(),
		domain.ThemeDark:    NewDarkTheme(),
		domain.ThemeBrowser: NewBrowserTheme(),
		domain.ThemeCustom:  NewCustomTheme(),
	}

	return &ThemeManager{
		themes:  themes,
		current: themes[domain.ThemeLight],
	}
}

// GetTheme returns the current theme
func (tm *ThemeManager) GetTheme() domain.Theme {
	return tm.current
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name domain.ThemeName) bool {
	if theme, exists := tm.themes[name]; exists {
		tm.current = theme
		return true
	}
	return false
}

// RegisterTheme registers or replaces a named palette
func (tm *ThemeManager) RegisterTheme(name domain.ThemeName, theme domain.Theme) {
	tm.themes[name] = theme
}

// ApplyThemeToPanel applies the current theme to an options panel
func (tm *ThemeManager) ApplyThemeToPanel(panel domain.OptionsPanel) {
	panel.SetTheme(tm.current)
}

// ResponsiveLayout handles responsive layout calculations
type ResponsiveLayout struct {
	width  int
	height int
}

// NewResponsiveLayout creates a new responsive layout manager
func NewResponsiveLayout() *ResponsiveLayout {
	return &ResponsiveLayout{}
}

// SetSize updates the layout dimensions
func (rl *ResponsiveLayout) SetSize(width, height int) {
	rl.width = width
	rl.height = height
}

// GetContentArea returns the available content area dimensions
func (rl *ResponsiveLayout) GetContentArea(headerHeight, footerHeight int) (int, int) {
	contentWidth := rl.width
	contentHeight := rl.height - headerHeight - footerHeight

	if contentHeight < 1 {
		contentHeight = 1
	}
	if contentWidth < 1 {
		contentWidth = 1
	}

	return contentWidth, contentHeight
}

// ShowPreview returns true if the screen is wide enough for the side-by-side
// preview pane
func (rl *ResponsiveLayout) ShowPreview() bool {
	return rl.width >= 100
}

// PanelWidth returns the width of the panel column, leaving room for the
// preview pane when it is visible
func (rl *ResponsiveLayout) PanelWidth() int {
	if rl.ShowPreview() {
		return rl.width / 2
	}
	return rl.width
}

// PreviewWidth returns the width of the preview pane column
func (rl *ResponsiveLayout) PreviewWidth() int {
	if !rl.ShowPreview() {
		return 0
	}
	return rl.width - rl.PanelWidth()
}
