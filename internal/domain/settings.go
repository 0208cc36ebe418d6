// Package domain contains core settings types and value objects
package domain

// BackgroundSize controls how a background image is scaled on the deck
type BackgroundSize string

const (
	BackgroundSizeCover   BackgroundSize = "cover"
	BackgroundSizeContain BackgroundSize = "contain"
	BackgroundSizeAuto    BackgroundSize = "auto"
	BackgroundSizeCustom  BackgroundSize = "custom"
)

// Valid reports whether the value is a known background size
func (s BackgroundSize) Valid() bool {
	switch s {
	case BackgroundSizeCover, BackgroundSizeContain, BackgroundSizeAuto, BackgroundSizeCustom:
		return true
	}
	return false
}

// BackgroundRepeat controls background image tiling
type BackgroundRepeat string

const (
	BackgroundRepeatNone BackgroundRepeat = "no-repeat"
	BackgroundRepeatBoth BackgroundRepeat = "repeat"
	BackgroundRepeatX    BackgroundRepeat = "repeat-x"
	BackgroundRepeatY    BackgroundRepeat = "repeat-y"
)

// Valid reports whether the value is a known repeat mode
func (r BackgroundRepeat) Valid() bool {
	switch r {
	case BackgroundRepeatNone, BackgroundRepeatBoth, BackgroundRepeatX, BackgroundRepeatY:
		return true
	}
	return false
}

// BackgroundPosition anchors the background image on the deck
type BackgroundPosition string

const (
	BackgroundPositionCenter      BackgroundPosition = "center"
	BackgroundPositionTop         BackgroundPosition = "top"
	BackgroundPositionBottom      BackgroundPosition = "bottom"
	BackgroundPositionLeft        BackgroundPosition = "left"
	BackgroundPositionRight       BackgroundPosition = "right"
	BackgroundPositionTopLeft     BackgroundPosition = "top left"
	BackgroundPositionTopRight    BackgroundPosition = "top right"
	BackgroundPositionBottomLeft  BackgroundPosition = "bottom left"
	BackgroundPositionBottomRight BackgroundPosition = "bottom right"
)

// Valid reports whether the value is a known position anchor
func (p BackgroundPosition) Valid() bool {
	switch p {
	case BackgroundPositionCenter, BackgroundPositionTop, BackgroundPositionBottom,
		BackgroundPositionLeft, BackgroundPositionRight,
		BackgroundPositionTopLeft, BackgroundPositionTopRight,
		BackgroundPositionBottomLeft, BackgroundPositionBottomRight:
		return true
	}
	return false
}

// AnimationStyle names the entrance animation applied to deck columns
type AnimationStyle string

const (
	AnimationStyleFade      AnimationStyle = "fade"
	AnimationStyleSlideUp   AnimationStyle = "slide-up"
	AnimationStyleSlideDown AnimationStyle = "slide-down"
	AnimationStyleZoom      AnimationStyle = "zoom"
	AnimationStyleNone      AnimationStyle = "none"
)

// Valid reports whether the value is a known animation style
func (s AnimationStyle) Valid() bool {
	switch s {
	case AnimationStyleFade, AnimationStyleSlideUp, AnimationStyleSlideDown,
		AnimationStyleZoom, AnimationStyleNone:
		return true
	}
	return false
}

// AnimationMode controls whether columns animate together or one after another
type AnimationMode string

const (
	AnimationModeAllAtOnce  AnimationMode = "all-at-once"
	AnimationModeSequential AnimationMode = "sequential"
)

// Valid reports whether the value is a known animation mode
func (m AnimationMode) Valid() bool {
	return m == AnimationModeAllAtOnce || m == AnimationModeSequential
}

// ThemeName identifies one of the selectable deck themes
type ThemeName string

const (
	ThemeLight   ThemeName = "light"
	ThemeDark    ThemeName = "dark"
	ThemeBrowser ThemeName = "browser"
	ThemeCustom  ThemeName = "custom"
)

// Valid reports whether the value is a known theme
func (t ThemeName) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeBrowser, ThemeCustom:
		return true
	}
	return false
}

// ThemeNames lists every selectable theme in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeLight, ThemeDark, ThemeBrowser, ThemeCustom}
}

// Numeric field bounds enforced at the settings write boundary
const (
	MinAnimationDuration = 0.1
	MaxAnimationDuration = 2.0
	MinAnimationDelay    = 0.0
	MaxAnimationDelay    = 0.5
	MinAnimationStagger  = 0.1
	MaxAnimationStagger  = 0.5

	MinBaseFontSize = 12
	MaxBaseFontSize = 24
	MinUIScale      = 0.8
	MaxUIScale      = 1.5
	MinColumnWidth  = 250
	MaxColumnWidth  = 500

	DefaultBaseFontSize = 16
	DefaultUIScale      = 1.0
	DefaultColumnWidth  = 320
)

// MaxBackgroundImageBytes is the upper bound for an uploaded background image
const MaxBackgroundImageBytes = 5 << 20

// BackgroundSettings holds the fields owned by the background manager
type BackgroundSettings struct {
	// PageColor is the deck background color; empty means the color
	// feature is disabled.
	PageColor string `json:"page_color" yaml:"page_color" mapstructure:"page_color"`
	// DataURI is the stored background image; empty means no image.
	DataURI  string             `json:"data_uri" yaml:"data_uri" mapstructure:"data_uri"`
	Size     BackgroundSize     `json:"size" yaml:"size" mapstructure:"size"`
	Repeat   BackgroundRepeat   `json:"repeat" yaml:"repeat" mapstructure:"repeat"`
	Position BackgroundPosition `json:"position" yaml:"position" mapstructure:"position"`
	Width    string             `json:"width" yaml:"width" mapstructure:"width"`
	Height   string             `json:"height" yaml:"height" mapstructure:"height"`
	// CustomSize is derived from Width and Height; it is the value the
	// preview uses whenever Size is "custom".
	CustomSize string `json:"custom_size" yaml:"custom_size" mapstructure:"custom_size"`
}

// AnimationSettings holds the fields owned by the animation manager
type AnimationSettings struct {
	Enabled        bool           `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Style          AnimationStyle `json:"style" yaml:"style" mapstructure:"style"`
	Mode           AnimationMode  `json:"mode" yaml:"mode" mapstructure:"mode"`
	Duration       float64        `json:"duration" yaml:"duration" mapstructure:"duration"`
	Delay          float64        `json:"delay" yaml:"delay" mapstructure:"delay"`
	Stagger        float64        `json:"stagger" yaml:"stagger" mapstructure:"stagger"`
	StylesheetOnly bool           `json:"stylesheet_only" yaml:"stylesheet_only" mapstructure:"stylesheet_only"`
}

// DisplaySettings holds the scale fields owned by the display manager
type DisplaySettings struct {
	BaseFontSize    int     `json:"base_font_size" yaml:"base_font_size" mapstructure:"base_font_size"`
	UIScale         float64 `json:"ui_scale" yaml:"ui_scale" mapstructure:"ui_scale"`
	ColumnWidthBase int     `json:"column_width_base" yaml:"column_width_base" mapstructure:"column_width_base"`
}

// GeneralSettings holds the visibility toggles owned by the general manager
type GeneralSettings struct {
	ShowIcons         bool `json:"show_icons" yaml:"show_icons" mapstructure:"show_icons"`
	ShowURLs          bool `json:"show_urls" yaml:"show_urls" mapstructure:"show_urls"`
	ShowColumnHeaders bool `json:"show_column_headers" yaml:"show_column_headers" mapstructure:"show_column_headers"`
	ShowGroupHeaders  bool `json:"show_group_headers" yaml:"show_group_headers" mapstructure:"show_group_headers"`
}

// ThemeCSS holds the custom stylesheet attached to a single theme
type ThemeCSS struct {
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	CSS     string `json:"css" yaml:"css" mapstructure:"css"`
}

// ThemeSettings holds the active theme and the per-theme stylesheets
type ThemeSettings struct {
	Active  ThemeName `json:"active" yaml:"active" mapstructure:"active"`
	Light   ThemeCSS  `json:"light" yaml:"light" mapstructure:"light"`
	Dark    ThemeCSS  `json:"dark" yaml:"dark" mapstructure:"dark"`
	Browser ThemeCSS  `json:"browser" yaml:"browser" mapstructure:"browser"`
	Custom  ThemeCSS  `json:"custom" yaml:"custom" mapstructure:"custom"`
}

// CSSFor returns the stylesheet slot for the named theme
func (t *ThemeSettings) CSSFor(name ThemeName) *ThemeCSS {
	switch name {
	case ThemeLight:
		return &t.Light
	case ThemeDark:
		return &t.Dark
	case ThemeBrowser:
		return &t.Browser
	case ThemeCustom:
		return &t.Custom
	}
	return nil
}

// Settings is the single shared record holding every user-configurable field.
// It is created once per options session, mutated in place through the typed
// state owner, and handed to the persistence store on save. Managers never
// replace the record, only fields within it.
type Settings struct {
	Background BackgroundSettings `json:"background" yaml:"background" mapstructure:"background"`
	Animation  AnimationSettings  `json:"animation" yaml:"animation" mapstructure:"animation"`
	Display    DisplaySettings    `json:"display" yaml:"display" mapstructure:"display"`
	General    GeneralSettings    `json:"general" yaml:"general" mapstructure:"general"`
	Theme      ThemeSettings      `json:"theme" yaml:"theme" mapstructure:"theme"`
}

// DefaultSettings returns a settings record with every field at its default
func DefaultSettings() *Settings {
	return &Settings{
		Background: BackgroundSettings{
			Size:     BackgroundSizeCover,
			Repeat:   BackgroundRepeatNone,
			Position: BackgroundPositionCenter,
		},
		Animation: AnimationSettings{
			Enabled:  true,
			Style:    AnimationStyleFade,
			Mode:     AnimationModeAllAtOnce,
			Duration: 0.4,
			Delay:    0.0,
			Stagger:  0.1,
		},
		Display: DisplaySettings{
			BaseFontSize:    DefaultBaseFontSize,
			UIScale:         DefaultUIScale,
			ColumnWidthBase: DefaultColumnWidth,
		},
		General: GeneralSettings{
			ShowIcons:         true,
			ShowURLs:          true,
			ShowColumnHeaders: true,
			ShowGroupHeaders:  true,
		},
		Theme: ThemeSettings{
			Active: ThemeLight,
		},
	}
}
