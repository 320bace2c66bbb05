package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// viewerAction is the outcome of feeding one key to the viewer.
type viewerAction int

const (
	viewerIgnored viewerAction = iota
	viewerMoved
	viewerClosed
)

// viewerState pages through an arbitrary-length text, one screenful at a
// time. The page size is computed once at viewer entry from the terminal
// height; a resize mid-session does not reflow until the viewer is
// re-entered.
type viewerState struct {
	title       string
	lines       []string
	pageSize    int
	currentPage int
	totalPages  int
}

// newViewer sizes the pages for the given surface height. Even an empty
// text has one (empty) page so the header always renders sensibly.
func newViewer(title string, lines []string, surfaceHeight int) viewerState {
	pageSize := surfaceHeight - headerFooterReserve
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(lines) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return viewerState{
		title:      title,
		lines:      lines,
		pageSize:   pageSize,
		totalPages: totalPages,
	}
}

// handleKey moves between pages, clamped at both ends. q closes the viewer.
func (v *viewerState) handleKey(msg tea.KeyMsg) viewerAction {
	switch msg.String() {
	case "up":
		if v.currentPage > 0 {
			v.currentPage--
		}
		return viewerMoved
	case "down":
		if v.currentPage < v.totalPages-1 {
			v.currentPage++
		}
		return viewerMoved
	case "q":
		return viewerClosed
	default:
		return viewerIgnored
	}
}

// pageLines returns the slice of lines belonging to the current page.
func (v viewerState) pageLines() []string {
	start := v.currentPage * v.pageSize
	if start >= len(v.lines) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.lines) {
		end = len(v.lines)
	}
	return v.lines[start:end]
}

// view renders the header, the instruction line, and the current page.
// Rendering is a pure function of the state: the same state always yields
// the same screen. Body lines are truncated to width-1 display cells so
// they never wrap.
func (v viewerState) view(width int) string {
	rows := make([]string, viewerBodyRow+v.pageSize)
	rows[0] = titleStyle.Render(fmt.Sprintf("%s (Page %d/%d)", v.title, v.currentPage+1, v.totalPages))
	rows[1] = instructionStyle.Render("use UP/DOWN to scroll, q to return")
	for i, line := range v.pageLines() {
		rows[viewerBodyRow+i] = runewidth.Truncate(line, max(1, width-1), "")
	}
	return strings.Join(rows, "\n")
}
