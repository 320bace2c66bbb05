package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxctl/internal/virtualbox"
	"vboxctl/pkg/logging"
)

func logEntryFor(msg string) logging.LogEntry {
	return logging.LogEntry{Level: logging.LevelInfo, Subsystem: "Test", Message: msg}
}

// fakeProvider records every operation so tests can assert on call order
// and counts.
type fakeProvider struct {
	vms       []virtualbox.VM
	infoLines []string

	calls []string

	listErr   error
	infoErr   error
	startErr  error
	deleteErr error
	createErr error
}

func (f *fakeProvider) ListVMs(ctx context.Context) ([]virtualbox.VM, error) {
	f.calls = append(f.calls, "list")
	return f.vms, f.listErr
}

func (f *fakeProvider) VMInfo(ctx context.Context, name string) ([]string, error) {
	f.calls = append(f.calls, "info "+name)
	return f.infoLines, f.infoErr
}

func (f *fakeProvider) StartVM(ctx context.Context, name string) error {
	f.calls = append(f.calls, "start "+name)
	return f.startErr
}

func (f *fakeProvider) DeleteVM(ctx context.Context, name string) error {
	f.calls = append(f.calls, "delete "+name)
	if f.deleteErr == nil {
		kept := f.vms[:0]
		for _, vm := range f.vms {
			if vm.Name != name {
				kept = append(kept, vm)
			}
		}
		f.vms = kept
	}
	return f.deleteErr
}

func (f *fakeProvider) CreateVM(ctx context.Context, req virtualbox.CreateRequest) error {
	f.calls = append(f.calls, "create "+req.Name)
	return f.createErr
}

func countCalls(calls []string, want string) int {
	n := 0
	for _, c := range calls {
		if c == want {
			n++
		}
	}
	return n
}

// step feeds one message and synchronously executes any returned command,
// feeding its result back, until the model settles. tea.Quit is surfaced
// instead of being executed.
func step(t *testing.T, m Model, msg tea.Msg) (Model, bool) {
	t.Helper()
	for msg != nil {
		updated, cmd := m.Update(msg)
		m = updated.(Model)
		if cmd == nil {
			return m, false
		}
		out := cmd()
		if _, quit := out.(tea.QuitMsg); quit {
			return m, true
		}
		msg = out
	}
	return m, false
}

func newTestModel(t *testing.T, provider *fakeProvider) Model {
	t.Helper()
	m := NewModel(provider, testDefaults(), nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	// Leave the splash; this fetches the initial listing.
	m, _ = step(t, m, keyEnter())
	require.Equal(t, screenTopMenu, m.screen)
	return m
}

func twoVMProvider() *fakeProvider {
	return &fakeProvider{vms: []virtualbox.VM{
		{Name: "alpha", UUID: "uuid-a"},
		{Name: "beta", UUID: "uuid-b"},
	}}
}

func TestTopMenuListsFleetBetweenFixedEntries(t *testing.T) {
	m := newTestModel(t, twoVMProvider())

	assert.Equal(t, []string{
		"Create New VM",
		"Select VM: alpha",
		"Select VM: beta",
		"Quit",
	}, m.topMenu.items)
	assert.Equal(t, 0, m.topMenu.selected)
}

func TestSelectingVMOpensActionsMenu(t *testing.T) {
	m := newTestModel(t, twoVMProvider())

	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())

	require.Equal(t, screenVMActions, m.screen)
	assert.Equal(t, "alpha", m.currentVM.Name)
	assert.Equal(t, []string{
		"Start VM: alpha",
		"Show VM Info: alpha",
		"Delete VM: alpha",
		"Back",
	}, m.actionsMenu.items)
}

func TestDeleteReturnsToRefreshedTopMenu(t *testing.T) {
	provider := twoVMProvider()
	m := newTestModel(t, provider)

	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())
	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())

	assert.Equal(t, screenTopMenu, m.screen)
	assert.Equal(t, 1, countCalls(provider.calls, "delete alpha"))
	assert.Equal(t, []string{"Create New VM", "Select VM: beta", "Quit"}, m.topMenu.items)
	assert.Equal(t, 0, m.topMenu.selected)
}

func TestDeleteFailureShowsDiagnosticThenTopMenu(t *testing.T) {
	provider := twoVMProvider()
	provider.deleteErr = errors.New("unregistervm refused")
	m := newTestModel(t, provider)

	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())
	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())

	assert.Contains(t, m.View(), "unregistervm refused")
	assert.Contains(t, m.View(), "Press any key to continue...")

	m, _ = step(t, m, keyRune('x'))
	assert.Equal(t, screenTopMenu, m.screen)
}

func TestStartStaysOnActionsMenu(t *testing.T) {
	provider := twoVMProvider()
	m := newTestModel(t, provider)

	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())
	m, _ = step(t, m, keyEnter())

	assert.Equal(t, screenVMActions, m.screen)
	assert.Equal(t, 1, countCalls(provider.calls, "start alpha"))
	assert.Contains(t, m.status, "alpha")
}

func TestInfoViewerRoundTrip(t *testing.T) {
	provider := twoVMProvider()
	provider.infoLines = []string{"Name: alpha", "State: powered off"}
	m := newTestModel(t, provider)

	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())
	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())

	require.Equal(t, screenInfoViewer, m.screen)
	assert.Contains(t, m.View(), "VM Info - alpha (Page 1/1)")
	assert.Contains(t, m.View(), "State: powered off")

	m, _ = step(t, m, keyRune('q'))
	assert.Equal(t, screenVMActions, m.screen)
}

func TestQuitWorksWithEmptyFleet(t *testing.T) {
	m := newTestModel(t, &fakeProvider{})

	require.Equal(t, []string{"Create New VM", "Quit"}, m.topMenu.items)

	m, _ = step(t, m, keyDown())
	_, quit := step(t, m, keyEnter())
	assert.True(t, quit)
}

func TestQOnTopMenuQuits(t *testing.T) {
	m := newTestModel(t, twoVMProvider())
	_, quit := step(t, m, keyRune('q'))
	assert.True(t, quit)
}

func TestWizardCreateSuccess(t *testing.T) {
	provider := &fakeProvider{}
	m := newTestModel(t, provider)

	m, _ = step(t, m, keyEnter())
	require.Equal(t, screenWizard, m.screen)

	for i := 0; i < 6; i++ {
		m, _ = step(t, m, keyCtrlS())
	}
	assert.Equal(t, 1, countCalls(provider.calls, "create NewVM"))
	assert.Contains(t, m.View(), "VM created successfully!")

	m, _ = step(t, m, keyRune('x'))
	assert.Equal(t, screenTopMenu, m.screen)
}

func TestWizardCreateFailureShowsPartialCreationWarning(t *testing.T) {
	provider := &fakeProvider{createErr: &virtualbox.CommandError{
		Args:   []string{"createhd", "--filename", "NewVM.vdi", "--size", "10240"},
		Stderr: "disk exists",
	}}
	m := newTestModel(t, provider)

	m, _ = step(t, m, keyEnter())
	for i := 0; i < 6; i++ {
		m, _ = step(t, m, keyCtrlS())
	}

	out := m.View()
	assert.Contains(t, out, "createhd")
	assert.Contains(t, out, "disk exists")
	assert.Contains(t, out, "VM and/or disk may have been partially created.")

	m, _ = step(t, m, keyEnter())
	assert.Equal(t, screenTopMenu, m.screen)
}

func TestWizardAbortMakesNoProviderCalls(t *testing.T) {
	provider := twoVMProvider()
	m := newTestModel(t, provider)
	listCalls := countCalls(provider.calls, "list")

	m, _ = step(t, m, keyEnter())
	require.Equal(t, screenWizard, m.screen)

	m, _ = step(t, m, keyCtrlS())
	m, _ = step(t, m, keyRune('q'))

	assert.Equal(t, screenTopMenu, m.screen)
	for _, call := range provider.calls {
		assert.NotContains(t, call, "create")
	}
	// Leaving the wizard re-fetches the listing, nothing else.
	assert.Len(t, provider.calls, listCalls+1)
}

func TestTopMenuReentryRefetchesAndResetsSelection(t *testing.T) {
	provider := twoVMProvider()
	m := newTestModel(t, provider)
	listCalls := countCalls(provider.calls, "list")

	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyDown())
	m, _ = step(t, m, keyEnter())
	require.Equal(t, screenVMActions, m.screen)

	provider.vms = append(provider.vms, virtualbox.VM{Name: "gamma", UUID: "uuid-c"})
	m, _ = step(t, m, keyRune('q'))

	assert.Equal(t, screenTopMenu, m.screen)
	assert.Equal(t, listCalls+1, countCalls(provider.calls, "list"))
	assert.Equal(t, 0, m.topMenu.selected)
	assert.Contains(t, m.topMenu.items, "Select VM: gamma")
}

func TestListingFailureLeavesEmptyMenuWithStatus(t *testing.T) {
	provider := &fakeProvider{listErr: errors.New("list blew up")}
	m := newTestModel(t, provider)

	assert.Equal(t, []string{"Create New VM", "Quit"}, m.topMenu.items)
	assert.Contains(t, m.View(), "list blew up")
}

func TestSplashScreen(t *testing.T) {
	m := NewModel(&fakeProvider{}, testDefaults(), nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	out := m.View()
	assert.Contains(t, out, "vboxctl")
	assert.Contains(t, out, "Interactive VM Management")

	_, quit := step(t, m, keyRune('q'))
	assert.True(t, quit)
}

func TestCtrlCQuitsEverywhere(t *testing.T) {
	m := newTestModel(t, twoVMProvider())
	screens := []tea.KeyMsg{keyDown(), keyEnter()}
	for _, k := range screens {
		m, _ = step(t, m, k)
	}
	_, quit := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, quit)
}

func TestActivityLogCapped(t *testing.T) {
	m := NewModel(&fakeProvider{}, testDefaults(), nil)
	for i := 0; i < maxActivityLogLines+50; i++ {
		m.appendLog(logEntryFor(fmt.Sprintf("entry %d", i)))
	}
	assert.Len(t, m.activityLog, maxActivityLogLines)
	assert.Contains(t, m.activityLog[len(m.activityLog)-1], "entry 249")
}
