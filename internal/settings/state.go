// Package settings provides the typed write boundary around the shared
// settings record
package settings

import (
	"github.com/tabdeck/tabdeck-tui/internal/domain"
)

// State owns all writes to the shared settings record. Every manager holds
// the same State and mutates its own field group through named setters; the
// setters enforce range and enum membership in one place and invoke the
// dirty signal exactly once per committed mutation. Rejected input mutates
// nothing and fires nothing.
type State struct {
	data      *domain.Settings
	markDirty func()
}

// NewState wraps a settings record with the write boundary. markDirty is the
// shared dirty signal; it fires after every committed mutation.
func NewState(data *domain.Settings, markDirty func()) *State {
	if data == nil {
		data = domain.DefaultSettings()
	}
	if markDirty == nil {
		markDirty = func() {}
	}
	return &State{data: data, markDirty: markDirty}
}

// Data returns the shared settings record. Callers read through it freely;
// writes go through the setters.
func (s *State) Data() *domain.Settings {
	return s.data
}

// MarkDirty signals a change made outside the setters, such as a bulk
// import that rewrote the record in place
func (s *State) MarkDirty() {
	s.markDirty()
}

// SetPageColor enables the page background color feature with the given
// color. An empty color disables the feature, matching ClearPageColor.
func (s *State) SetPageColor(color string) {
	s.data.Background.PageColor = color
	s.markDirty()
}

// ClearPageColor disables the page background color feature
func (s *State) ClearPageColor() {
	s.data.Background.PageColor = ""
	s.markDirty()
}

// SetBackgroundDataURI stores a freshly encoded background image
func (s *State) SetBackgroundDataURI(uri string) {
	s.data.Background.DataURI = uri
	s.markDirty()
}

// ClearBackgroundImage removes the stored background image
func (s *State) ClearBackgroundImage() {
	s.data.Background.DataURI = ""
	s.markDirty()
}

// SetBackgroundSize writes the size mode; unknown values are rejected
func (s *State) SetBackgroundSize(size domain.BackgroundSize) bool {
	if !size.Valid() {
		return false
	}
	s.data.Background.Size = size
	s.markDirty()
	return true
}

// SetBackgroundRepeat writes the repeat mode; unknown values are rejected
func (s *State) SetBackgroundRepeat(repeat domain.BackgroundRepeat) bool {
	if !repeat.Valid() {
		return false
	}
	s.data.Background.Repeat = repeat
	s.markDirty()
	return true
}

// SetBackgroundPosition writes the position anchor; unknown values are rejected
func (s *State) SetBackgroundPosition(position domain.BackgroundPosition) bool {
	if !position.Valid() {
		return false
	}
	s.data.Background.Position = position
	s.markDirty()
	return true
}

// SetBackgroundDimensions writes the free-form width and height strings and
// recomputes the derived custom-size value in the same step, so the record
// never holds an inconsistent pair.
func (s *State) SetBackgroundDimensions(width, height string) {
	s.data.Background.Width = width
	s.data.Background.Height = height
	s.data.Background.CustomSize = CustomSize(width, height)
	s.markDirty()
}

// CustomSize derives the "<width> <height>" size string used by the preview
// whenever the size mode is custom. A blank side defaults to "auto".
func CustomSize(width, height string) string {
	if width == "" {
		width = "auto"
	}
	if height == "" {
		height = "auto"
	}
	return width + " " + height
}

// SetAnimationEnabled toggles column animations
func (s *State) SetAnimationEnabled(enabled bool) {
	s.data.Animation.Enabled = enabled
	s.markDirty()
}

// SetAnimationStyle writes the animation style; unknown values are rejected
func (s *State) SetAnimationStyle(style domain.AnimationStyle) bool {
	if !style.Valid() {
		return false
	}
	s.data.Animation.Style = style
	s.markDirty()
	return true
}

// SetAnimationMode writes the animation mode; unknown values are rejected
func (s *State) SetAnimationMode(mode domain.AnimationMode) bool {
	if !mode.Valid() {
		return false
	}
	s.data.Animation.Mode = mode
	s.markDirty()
	return true
}

// SetAnimationDuration writes the duration in seconds; out-of-range values
// are rejected, leaving the prior value intact
func (s *State) SetAnimationDuration(seconds float64) bool {
	if seconds < domain.MinAnimationDuration || seconds > domain.MaxAnimationDuration {
		return false
	}
	s.data.Animation.Duration = seconds
	s.markDirty()
	return true
}

// SetAnimationDelay writes the start delay in seconds with range rejection
func (s *State) SetAnimationDelay(seconds float64) bool {
	if seconds < domain.MinAnimationDelay || seconds > domain.MaxAnimationDelay {
		return false
	}
	s.data.Animation.Delay = seconds
	s.markDirty()
	return true
}

// SetAnimationStagger writes the sequential stagger delay with range rejection
func (s *State) SetAnimationStagger(seconds float64) bool {
	if seconds < domain.MinAnimationStagger || seconds > domain.MaxAnimationStagger {
		return false
	}
	s.data.Animation.Stagger = seconds
	s.markDirty()
	return true
}

// SetStylesheetOnly toggles stylesheet-only mode. The style, mode and timing
// fields keep their values so disabling the mode restores the prior
// configuration.
func (s *State) SetStylesheetOnly(enabled bool) {
	s.data.Animation.StylesheetOnly = enabled
	s.markDirty()
}

// SetBaseFontSize writes the base font size with range rejection
func (s *State) SetBaseFontSize(size int) bool {
	if size < domain.MinBaseFontSize || size > domain.MaxBaseFontSize {
		return false
	}
	s.data.Display.BaseFontSize = size
	s.markDirty()
	return true
}

// SetUIScale writes the interface scale factor with range rejection
func (s *State) SetUIScale(scale float64) bool {
	if scale < domain.MinUIScale || scale > domain.MaxUIScale {
		return false
	}
	s.data.Display.UIScale = scale
	s.markDirty()
	return true
}

// SetColumnWidth writes the base column width with range rejection
func (s *State) SetColumnWidth(width int) bool {
	if width < domain.MinColumnWidth || width > domain.MaxColumnWidth {
		return false
	}
	s.data.Display.ColumnWidthBase = width
	s.markDirty()
	return true
}

// SetShowIcons toggles link icons on the deck
func (s *State) SetShowIcons(show bool) {
	s.data.General.ShowIcons = show
	s.markDirty()
}

// SetShowURLs toggles link URLs on the deck
func (s *State) SetShowURLs(show bool) {
	s.data.General.ShowURLs = show
	s.markDirty()
}

// SetShowColumnHeaders toggles column headers on the deck
func (s *State) SetShowColumnHeaders(show bool) {
	s.data.General.ShowColumnHeaders = show
	s.markDirty()
}

// SetShowGroupHeaders toggles group headers on the deck
func (s *State) SetShowGroupHeaders(show bool) {
	s.data.General.ShowGroupHeaders = show
	s.markDirty()
}

// SetTheme writes the active theme; unknown values are rejected
func (s *State) SetTheme(name domain.ThemeName) bool {
	if !name.Valid() {
		return false
	}
	s.data.Theme.Active = name
	s.markDirty()
	return true
}

// SetThemeCSSEnabled toggles the custom stylesheet for the named theme
func (s *State) SetThemeCSSEnabled(name domain.ThemeName, enabled bool) bool {
	slot := s.data.Theme.CSSFor(name)
	if slot == nil {
		return false
	}
	slot.Enabled = enabled
	s.markDirty()
	return true
}

// SetThemeCSS replaces the custom stylesheet text for the named theme
func (s *State) SetThemeCSS(name domain.ThemeName, css string) bool {
	slot := s.data.Theme.CSSFor(name)
	if slot == nil {
		return false
	}
	slot.CSS = css
	s.markDirty()
	return true
}
