package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabdeck/tabdeck-tui/internal/datauri"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
)

func newBackgroundFixture(encoder *fakeEncoder) (*BackgroundManager, *trackedState, *fakeNotifier) {
	state := newTrackedPanelState()
	notifier := &fakeNotifier{}
	manager := NewBackgroundManager(state.State, notifier, encoder, nil)
	manager.Setup()
	return manager, state, notifier
}

func TestBackgroundSetupIdempotent(t *testing.T) {
	manager, state, _ := newBackgroundFixture(&fakeEncoder{})

	state.SetPageColor("#102030")
	state.SetBackgroundDimensions("200px", "50%")

	manager.Setup()
	first := manager.colorInput.Value()
	manager.Setup()

	assert.Equal(t, first, manager.colorInput.Value())
	assert.Equal(t, "200px", manager.widthInput.Value())
	assert.Equal(t, "50%", manager.heightInput.Value())
}

func TestBackgroundColorToggleRestoresInputValue(t *testing.T) {
	manager, state, _ := newBackgroundFixture(&fakeEncoder{})

	manager.colorInput.SetValue("#336699")
	manager.toggleColorEnabled()
	require.Equal(t, "#336699", state.Data().Background.PageColor)

	// Disabling clears the stored color but keeps the input
	manager.toggleColorEnabled()
	assert.Empty(t, state.Data().Background.PageColor)
	assert.Equal(t, "#336699", manager.colorInput.Value())

	// Re-enabling restores the last value held by the input
	manager.toggleColorEnabled()
	assert.Equal(t, "#336699", state.Data().Background.PageColor)
}

func TestBackgroundColorEnableUsesDefaultWhenInputEmpty(t *testing.T) {
	state := newTrackedPanelState()
	manager := NewBackgroundManager(state.State, &fakeNotifier{}, &fakeEncoder{}, nil)

	manager.toggleColorEnabled()

	assert.Equal(t, defaultPageColor, state.Data().Background.PageColor)
	assert.Equal(t, defaultPageColor, manager.colorInput.Value())
}

func TestBackgroundUploadSuccess(t *testing.T) {
	encoder := &fakeEncoder{uri: "data:image/png;base64,aGVsbG8="}
	manager, state, notifier := newBackgroundFixture(encoder)

	cmd := manager.startUpload("/tmp/bg.png")
	require.NotNil(t, cmd)

	manager.Update(cmd())

	assert.Equal(t, encoder.uri, state.Data().Background.DataURI)
	assert.Len(t, notifier.successes, 1)
	assert.Empty(t, notifier.errors)
	assert.Equal(t, []string{"/tmp/bg.png"}, encoder.calls)
}

func TestBackgroundUploadRejectionLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"not an image", datauri.ErrNotImage, "Background must be an image file"},
		{"too large", datauri.ErrTooLarge, "Background image must be 5 MB or smaller"},
		{"read failure", assert.AnError, "Failed to process background image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder := &fakeEncoder{err: tt.err}
			manager, state, notifier := newBackgroundFixture(encoder)
			dirtyBefore := state.dirtyCount

			cmd := manager.startUpload("/tmp/bad-file")
			manager.Update(cmd())

			assert.Empty(t, state.Data().Background.DataURI)
			assert.Equal(t, dirtyBefore, state.dirtyCount)
			require.Len(t, notifier.errors, 1)
			assert.Equal(t, tt.message, notifier.errors[0])
		})
	}
}

func TestBackgroundStaleUploadResultDropped(t *testing.T) {
	encoder := &fakeEncoder{uri: "data:image/png;base64,Zmlyc3Q="}
	manager, state, notifier := newBackgroundFixture(encoder)

	first := manager.startUpload("/tmp/first.png")
	firstResult := first()

	// A second upload supersedes the first before its result lands
	encoder.uri = "data:image/png;base64,c2Vjb25k"
	second := manager.startUpload("/tmp/second.png")
	secondResult := second()

	manager.Update(secondResult)
	manager.Update(firstResult)

	assert.Equal(t, "data:image/png;base64,c2Vjb25k", state.Data().Background.DataURI)
	assert.Len(t, notifier.successes, 1)
}

func TestBackgroundRemoveImageCancelsUpload(t *testing.T) {
	encoder := &fakeEncoder{uri: "data:image/png;base64,bGF0ZQ=="}
	manager, state, notifier := newBackgroundFixture(encoder)

	cmd := manager.startUpload("/tmp/slow.png")
	manager.removeImage()

	// The encode sees a cancelled context; even a non-error late result
	// would be dropped because the generation moved on.
	manager.Update(cmd())

	assert.Empty(t, state.Data().Background.DataURI)
	assert.Empty(t, notifier.errors)
	assert.Empty(t, notifier.successes)
}

func TestRenderBackground(t *testing.T) {
	t.Run("no image clears every image property", func(t *testing.T) {
		render := RenderBackground(domain.BackgroundSettings{
			PageColor: "#123456",
			Size:      domain.BackgroundSizeCover,
			Repeat:    domain.BackgroundRepeatNone,
			Position:  domain.BackgroundPositionCenter,
		})

		assert.False(t, render.HasImage)
		assert.Empty(t, render.Image)
		assert.Empty(t, render.Size)
		assert.Empty(t, render.Repeat)
		assert.Empty(t, render.Position)
		assert.Equal(t, "#123456", render.PageColor)
	})

	t.Run("custom size uses the derived string", func(t *testing.T) {
		render := RenderBackground(domain.BackgroundSettings{
			DataURI:    "data:image/png;base64,eA==",
			Size:       domain.BackgroundSizeCustom,
			CustomSize: "200px auto",
			Repeat:     domain.BackgroundRepeatNone,
			Position:   domain.BackgroundPositionCenter,
		})

		assert.True(t, render.HasImage)
		assert.Equal(t, "200px auto", render.Size)
	})

	t.Run("enum size passes through", func(t *testing.T) {
		render := RenderBackground(domain.BackgroundSettings{
			DataURI: "data:image/png;base64,eA==",
			Size:    domain.BackgroundSizeContain,
		})

		assert.Equal(t, "contain", render.Size)
	})
}

func TestBackgroundVisibleRows(t *testing.T) {
	manager, state, _ := newBackgroundFixture(&fakeEncoder{})

	assert.NotContains(t, manager.visibleRows(), bgRowSize)

	state.SetBackgroundDataURI("data:image/png;base64,eA==")
	assert.Contains(t, manager.visibleRows(), bgRowSize)
	assert.NotContains(t, manager.visibleRows(), bgRowWidth)

	state.SetBackgroundSize(domain.BackgroundSizeCustom)
	assert.Contains(t, manager.visibleRows(), bgRowWidth)
	assert.Contains(t, manager.visibleRows(), bgRowHeight)
}
