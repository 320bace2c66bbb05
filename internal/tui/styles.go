package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Constants for TUI behavior and screen geometry.
const (
	// headerFooterReserve is the number of rows the paged viewer keeps out
	// of the page body: two header rows (title and instructions) plus a
	// two-row margin below the text.
	headerFooterReserve = 4
	// viewerBodyRow is the row at which the viewer's page body starts.
	viewerBodyRow = 2
	// maxActivityLogLines caps the in-memory activity log drained from the
	// logging channel.
	maxActivityLogLines = 200
)

// Styles for the TUI, defined using the lipgloss library.
var (
	// titleStyle renders screen titles.
	titleStyle = lipgloss.NewStyle().Bold(true)

	// selectedItemStyle renders the menu item under the cursor.
	selectedItemStyle = lipgloss.NewStyle().Reverse(true)

	// itemStyle renders unselected menu items.
	itemStyle = lipgloss.NewStyle()

	// instructionStyle is for key-hint lines under titles.
	instructionStyle = lipgloss.NewStyle().Faint(true)

	// statusStyle renders the transient status line at the bottom of menus.
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// errorStyle renders inline command diagnostics.
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"})

	// splashStyle renders the startup banner.
	splashStyle = lipgloss.NewStyle().Bold(true)
)
