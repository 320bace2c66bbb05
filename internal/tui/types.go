package tui

import (
	"vboxctl/internal/virtualbox"
	"vboxctl/pkg/logging"
)

// screen identifies the single active interactive mode. Exactly one screen
// owns the display and the key stream at any time.
type screen int

const (
	screenSplash screen = iota
	screenTopMenu
	screenVMActions
	screenInfoViewer
	screenWizard
)

// Define messages for Bubble Tea

// vmListMsg carries a fresh fleet listing for the top menu. The listing is
// re-fetched on every entry to the top menu, so indices never go stale.
type vmListMsg struct {
	vms []virtualbox.VM
	err error
}

// vmInfoMsg carries the text lines shown by the info viewer.
type vmInfoMsg struct {
	name  string
	lines []string
	err   error
}

// startResultMsg reports the outcome of a start command.
type startResultMsg struct {
	name string
	err  error
}

// deleteResultMsg reports the outcome of a delete command.
type deleteResultMsg struct {
	name string
	err  error
}

// createResultMsg reports the outcome of the wizard's creation sequence.
type createResultMsg struct {
	name string
	err  error
}

// logEntryMsg delivers one entry drained from the logging channel.
type logEntryMsg struct {
	entry logging.LogEntry
}
