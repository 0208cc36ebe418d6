package options

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/settings"
)

// trackedState wires a State to a dirty counter for assertions
type trackedState struct {
	*settings.State
	dirtyCount int
}

func newTrackedPanelState() *trackedState {
	tracked := &trackedState{}
	tracked.State = settings.NewState(domain.DefaultSettings(), func() {
		tracked.dirtyCount++
	})
	return tracked
}

// fakeNotifier records user-facing messages
type fakeNotifier struct {
	errors    []string
	successes []string
}

func (n *fakeNotifier) ShowError(msg string)   { n.errors = append(n.errors, msg) }
func (n *fakeNotifier) ShowSuccess(msg string) { n.successes = append(n.successes, msg) }

// fakeEncoder returns a canned encode result, or the context error if the
// task was cancelled before it ran
type fakeEncoder struct {
	uri   string
	err   error
	calls []string
}

func (e *fakeEncoder) EncodeFile(ctx context.Context, path string) (string, error) {
	e.calls = append(e.calls, path)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if e.err != nil {
		return "", e.err
	}
	return e.uri, nil
}

// spyStore records eager per-key writes
type spyStore struct {
	sets map[string]interface{}
	err  error
}

func newSpyStore() *spyStore {
	return &spyStore{sets: map[string]interface{}{}}
}

func (s *spyStore) Load() (*domain.Settings, error) { return domain.DefaultSettings(), nil }
func (s *spyStore) Save(*domain.Settings) error     { return nil }

func (s *spyStore) Set(key string, value interface{}) error {
	if s.err != nil {
		return s.err
	}
	s.sets[key] = value
	return nil
}

// fakeReporter returns canned storage usage
type fakeReporter struct {
	usage domain.StorageUsage
	err   error
	calls int
}

func (r *fakeReporter) Usage() (domain.StorageUsage, error) {
	r.calls++
	return r.usage, r.err
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyUp() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyUp} }
func keyDown() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }
func keyLeft() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyLeft} }
func keyRight() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRight} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEscape} }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
