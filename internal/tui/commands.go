package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"vboxctl/internal/virtualbox"
	"vboxctl/pkg/logging"
)

// Provider calls run inside tea.Cmd closures. Each call is singular and
// blocking; the screen that issued it simply waits for the result message,
// so at most one VM operation is ever in flight.

// fetchVMListCmd re-fetches the fleet for the top menu.
func fetchVMListCmd(provider virtualbox.Provider) tea.Cmd {
	return func() tea.Msg {
		vms, err := provider.ListVMs(context.Background())
		return vmListMsg{vms: vms, err: err}
	}
}

// fetchVMInfoCmd loads the info text for the viewer.
func fetchVMInfoCmd(provider virtualbox.Provider, name string) tea.Cmd {
	return func() tea.Msg {
		lines, err := provider.VMInfo(context.Background(), name)
		return vmInfoMsg{name: name, lines: lines, err: err}
	}
}

// startVMCmd issues a start command for the named VM.
func startVMCmd(provider virtualbox.Provider, name string) tea.Cmd {
	return func() tea.Msg {
		err := provider.StartVM(context.Background(), name)
		return startResultMsg{name: name, err: err}
	}
}

// deleteVMCmd unregisters and deletes the named VM.
func deleteVMCmd(provider virtualbox.Provider, name string) tea.Cmd {
	return func() tea.Msg {
		err := provider.DeleteVM(context.Background(), name)
		return deleteResultMsg{name: name, err: err}
	}
}

// createVMCmd runs the five-step creation sequence assembled by the wizard.
func createVMCmd(provider virtualbox.Provider, req virtualbox.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		err := provider.CreateVM(context.Background(), req)
		return createResultMsg{name: req.Name, err: err}
	}
}

// waitForLogEntryCmd blocks on the logging channel and forwards the next
// entry to the model.
func waitForLogEntryCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg{entry: entry}
	}
}
