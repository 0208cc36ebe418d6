package domain

// Normalize resets any field that violates its range or enum invariant back
// to its default and returns the names of the fields it reset. It does not
// inspect the background data URI; that check needs the data URI codec and
// is done by the callers that load external data.
func (s *Settings) Normalize() []string {
	defaults := DefaultSettings()
	var reset []string

	if !s.Background.Size.Valid() {
		s.Background.Size = defaults.Background.Size
		reset = append(reset, "background.size")
	}
	if !s.Background.Repeat.Valid() {
		s.Background.Repeat = defaults.Background.Repeat
		reset = append(reset, "background.repeat")
	}
	if !s.Background.Position.Valid() {
		s.Background.Position = defaults.Background.Position
		reset = append(reset, "background.position")
	}

	if !s.Animation.Style.Valid() {
		s.Animation.Style = defaults.Animation.Style
		reset = append(reset, "animation.style")
	}
	if !s.Animation.Mode.Valid() {
		s.Animation.Mode = defaults.Animation.Mode
		reset = append(reset, "animation.mode")
	}
	if s.Animation.Duration < MinAnimationDuration || s.Animation.Duration > MaxAnimationDuration {
		s.Animation.Duration = defaults.Animation.Duration
		reset = append(reset, "animation.duration")
	}
	if s.Animation.Delay < MinAnimationDelay || s.Animation.Delay > MaxAnimationDelay {
		s.Animation.Delay = defaults.Animation.Delay
		reset = append(reset, "animation.delay")
	}
	if s.Animation.Stagger < MinAnimationStagger || s.Animation.Stagger > MaxAnimationStagger {
		s.Animation.Stagger = defaults.Animation.Stagger
		reset = append(reset, "animation.stagger")
	}

	if s.Display.BaseFontSize < MinBaseFontSize || s.Display.BaseFontSize > MaxBaseFontSize {
		s.Display.BaseFontSize = defaults.Display.BaseFontSize
		reset = append(reset, "display.base_font_size")
	}
	if s.Display.UIScale < MinUIScale || s.Display.UIScale > MaxUIScale {
		s.Display.UIScale = defaults.Display.UIScale
		reset = append(reset, "display.ui_scale")
	}
	if s.Display.ColumnWidthBase < MinColumnWidth || s.Display.ColumnWidthBase > MaxColumnWidth {
		s.Display.ColumnWidthBase = defaults.Display.ColumnWidthBase
		reset = append(reset, "display.column_width_base")
	}

	if !s.Theme.Active.Valid() {
		s.Theme.Active = defaults.Theme.Active
		reset = append(reset, "theme.active")
	}

	return reset
}
