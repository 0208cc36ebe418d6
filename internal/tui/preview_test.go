package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
)

func newPreviewFixture() (*PreviewModel, *settings.State) {
	state := settings.NewState(domain.DefaultSettings(), nil)
	preview := NewPreviewModel(state)
	preview.SetSize(60, 20)
	return preview, state
}

func TestPreviewReflectsBackground(t *testing.T) {
	preview, state := newPreviewFixture()

	assert.Contains(t, preview.View(), "plain background")

	state.SetPageColor("#336699")
	assert.Contains(t, preview.View(), "#336699")

	state.SetBackgroundDataURI("data:image/png;base64,eA==")
	assert.Contains(t, preview.View(), "image cover / no-repeat / center")
}

func TestPreviewReflectsDisplaySettings(t *testing.T) {
	preview, state := newPreviewFixture()

	state.SetBaseFontSize(20)
	state.SetColumnWidth(400)

	view := preview.View()
	assert.Contains(t, view, "20px text")
	assert.Contains(t, view, "400px")
}

func TestPreviewReflectsGeneralToggles(t *testing.T) {
	preview, state := newPreviewFixture()

	assert.Contains(t, preview.View(), "▣")

	state.SetShowIcons(false)
	state.SetShowURLs(false)

	view := preview.View()
	assert.NotContains(t, view, "▣")
	assert.NotContains(t, view, "url")
}

func TestPreviewAnimationSummary(t *testing.T) {
	preview, state := newPreviewFixture()

	assert.Contains(t, preview.View(), "animation: fade")

	state.SetAnimationMode(domain.AnimationModeSequential)
	assert.Contains(t, preview.View(), "stagger")

	state.SetStylesheetOnly(true)
	assert.Contains(t, preview.View(), "stylesheet driven")

	state.SetStylesheetOnly(false)
	state.SetAnimationEnabled(false)
	assert.Contains(t, preview.View(), "no animation")
}

func TestPreviewTooNarrowRendersNothing(t *testing.T) {
	preview, _ := newPreviewFixture()
	preview.SetSize(10, 20)

	assert.Empty(t, preview.View())
}
