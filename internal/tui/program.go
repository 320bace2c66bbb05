package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"vboxctl/internal/config"
	"vboxctl/internal/virtualbox"
	"vboxctl/pkg/logging"
)

// NewProgram creates the Bubble Tea program for the interactive manager.
func NewProgram(provider virtualbox.Provider, defaults config.WizardDefaults, logCh <-chan logging.LogEntry) *tea.Program {
	m := NewModel(provider, defaults, logCh)
	return tea.NewProgram(m, tea.WithAltScreen())
}
