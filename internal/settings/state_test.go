package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
)

func newTrackedState() (*State, *int) {
	dirty := 0
	state := NewState(domain.DefaultSettings(), func() { dirty++ })
	return state, &dirty
}

func TestNewStateDefaults(t *testing.T) {
	state := NewState(nil, nil)

	assert.NotNil(t, state.Data())
	assert.Equal(t, domain.ThemeLight, state.Data().Theme.Active)

	// nil dirty signal must not panic
	state.SetShowIcons(false)
	assert.False(t, state.Data().General.ShowIcons)
}

func TestSetPageColorAndClear(t *testing.T) {
	state, dirty := newTrackedState()

	state.SetPageColor("#112233")
	assert.Equal(t, "#112233", state.Data().Background.PageColor)
	assert.Equal(t, 1, *dirty)

	state.ClearPageColor()
	assert.Empty(t, state.Data().Background.PageColor)
	assert.Equal(t, 2, *dirty)
}

func TestSetBackgroundEnums(t *testing.T) {
	state, dirty := newTrackedState()

	assert.True(t, state.SetBackgroundSize(domain.BackgroundSizeContain))
	assert.Equal(t, domain.BackgroundSizeContain, state.Data().Background.Size)

	assert.False(t, state.SetBackgroundSize(domain.BackgroundSize("stretch")))
	assert.Equal(t, domain.BackgroundSizeContain, state.Data().Background.Size)

	assert.True(t, state.SetBackgroundRepeat(domain.BackgroundRepeatX))
	assert.False(t, state.SetBackgroundRepeat(domain.BackgroundRepeat("bad")))

	assert.True(t, state.SetBackgroundPosition(domain.BackgroundPositionTopLeft))
	assert.False(t, state.SetBackgroundPosition(domain.BackgroundPosition("middle")))

	// Three committed writes, three rejections
	assert.Equal(t, 3, *dirty)
}

func TestCustomSizeDerivation(t *testing.T) {
	tests := []struct {
		width  string
		height string
		want   string
	}{
		{"", "50%", "auto 50%"},
		{"200px", "", "200px auto"},
		{"", "", "auto auto"},
		{"100px", "200px", "100px 200px"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CustomSize(tt.width, tt.height), "width=%q height=%q", tt.width, tt.height)
	}
}

func TestSetBackgroundDimensions(t *testing.T) {
	state, dirty := newTrackedState()

	state.SetBackgroundDimensions("200px", "")

	background := state.Data().Background
	assert.Equal(t, "200px", background.Width)
	assert.Empty(t, background.Height)
	assert.Equal(t, "200px auto", background.CustomSize)
	// Width, height and the derived value are one user-intent change
	assert.Equal(t, 1, *dirty)
}

func TestAnimationRangeRejection(t *testing.T) {
	state, dirty := newTrackedState()

	tests := []struct {
		name    string
		set     func(float64) bool
		inside  float64
		outside []float64
		read    func() float64
	}{
		{
			name:    "duration",
			set:     state.SetAnimationDuration,
			inside:  1.5,
			outside: []float64{0.05, 2.5, -1},
			read:    func() float64 { return state.Data().Animation.Duration },
		},
		{
			name:    "delay",
			set:     state.SetAnimationDelay,
			inside:  0.25,
			outside: []float64{-0.1, 0.6},
			read:    func() float64 { return state.Data().Animation.Delay },
		},
		{
			name:    "stagger",
			set:     state.SetAnimationStagger,
			inside:  0.3,
			outside: []float64{0.05, 0.6},
			read:    func() float64 { return state.Data().Animation.Stagger },
		},
	}

	for _, tt := range tests {
		before := *dirty
		assert.True(t, tt.set(tt.inside), tt.name)
		assert.Equal(t, tt.inside, tt.read(), tt.name)
		assert.Equal(t, before+1, *dirty, "%s: committed write fires dirty once", tt.name)

		for _, v := range tt.outside {
			beforeValue := tt.read()
			beforeDirty := *dirty
			assert.False(t, tt.set(v), "%s: %v must be rejected", tt.name, v)
			assert.Equal(t, beforeValue, tt.read(), tt.name)
			assert.Equal(t, beforeDirty, *dirty, "%s: rejection must not fire dirty", tt.name)
		}
	}
}

func TestAnimationBoundsInclusive(t *testing.T) {
	state, _ := newTrackedState()

	assert.True(t, state.SetAnimationDuration(0.1))
	assert.True(t, state.SetAnimationDuration(2.0))
	assert.True(t, state.SetAnimationDelay(0.0))
	assert.True(t, state.SetAnimationDelay(0.5))
	assert.True(t, state.SetAnimationStagger(0.1))
	assert.True(t, state.SetAnimationStagger(0.5))
}

func TestDisplayRangeRejection(t *testing.T) {
	state, dirty := newTrackedState()

	assert.True(t, state.SetBaseFontSize(12))
	assert.True(t, state.SetBaseFontSize(24))
	assert.False(t, state.SetBaseFontSize(11))
	assert.False(t, state.SetBaseFontSize(25))
	assert.Equal(t, 24, state.Data().Display.BaseFontSize)

	assert.True(t, state.SetUIScale(0.8))
	assert.True(t, state.SetUIScale(1.5))
	assert.False(t, state.SetUIScale(0.79))
	assert.False(t, state.SetUIScale(1.51))
	assert.Equal(t, 1.5, state.Data().Display.UIScale)

	assert.True(t, state.SetColumnWidth(250))
	assert.True(t, state.SetColumnWidth(500))
	assert.False(t, state.SetColumnWidth(249))
	assert.False(t, state.SetColumnWidth(501))
	assert.Equal(t, 500, state.Data().Display.ColumnWidthBase)

	assert.Equal(t, 6, *dirty)
}

func TestStylesheetOnlyPreservesTimingFields(t *testing.T) {
	state, _ := newTrackedState()

	state.SetAnimationDuration(1.2)
	state.SetAnimationStagger(0.4)

	state.SetStylesheetOnly(true)
	assert.True(t, state.Data().Animation.StylesheetOnly)
	assert.Equal(t, 1.2, state.Data().Animation.Duration)
	assert.Equal(t, 0.4, state.Data().Animation.Stagger)

	state.SetStylesheetOnly(false)
	assert.Equal(t, 1.2, state.Data().Animation.Duration)
	assert.Equal(t, 0.4, state.Data().Animation.Stagger)
}

func TestSetTheme(t *testing.T) {
	state, dirty := newTrackedState()

	assert.True(t, state.SetTheme(domain.ThemeDark))
	assert.Equal(t, domain.ThemeDark, state.Data().Theme.Active)

	assert.False(t, state.SetTheme(domain.ThemeName("solarized")))
	assert.Equal(t, domain.ThemeDark, state.Data().Theme.Active)

	assert.Equal(t, 1, *dirty)
}

func TestThemeCSSWrites(t *testing.T) {
	state, dirty := newTrackedState()

	assert.True(t, state.SetThemeCSS(domain.ThemeCustom, ".deck { gap: 2px }"))
	assert.True(t, state.SetThemeCSSEnabled(domain.ThemeCustom, true))

	custom := state.Data().Theme.Custom
	assert.True(t, custom.Enabled)
	assert.Equal(t, ".deck { gap: 2px }", custom.CSS)

	assert.False(t, state.SetThemeCSS(domain.ThemeName("missing"), "x"))
	assert.False(t, state.SetThemeCSSEnabled(domain.ThemeName("missing"), true))

	assert.Equal(t, 2, *dirty)
}

func TestBackgroundImageWrites(t *testing.T) {
	state, dirty := newTrackedState()

	state.SetBackgroundDataURI("data:image/png;base64,AAAA")
	assert.Equal(t, "data:image/png;base64,AAAA", state.Data().Background.DataURI)

	state.ClearBackgroundImage()
	assert.Empty(t, state.Data().Background.DataURI)

	assert.Equal(t, 2, *dirty)
}
