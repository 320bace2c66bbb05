package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// menuAction is the outcome of feeding one key to a menu.
type menuAction int

const (
	menuIgnored menuAction = iota
	menuMoved
	menuActivated
	menuExited
)

// menuState is a single-selection list. The same state machine backs the
// top-level menu and the per-VM action menu; it is agnostic to what an
// index means, the caller interprets activation.
//
// Navigation clamps at both ends. There is deliberately no wraparound.
type menuState struct {
	items    []string
	selected int
}

func newMenu(items []string) menuState {
	return menuState{items: items}
}

// handleKey mutates the selection and reports what the key meant. Keys
// other than up, down, enter and q leave the menu untouched.
func (m *menuState) handleKey(msg tea.KeyMsg) menuAction {
	switch msg.String() {
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return menuMoved
	case "down":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
		return menuMoved
	case "enter":
		if len(m.items) == 0 {
			return menuIgnored
		}
		return menuActivated
	case "q":
		return menuExited
	default:
		return menuIgnored
	}
}

// view renders the menu onto a width×height canvas: title at the top-left,
// items left-aligned at column width/4 starting at row height/4, the
// selected item inverted.
func (m menuState) view(title string, width, height int) string {
	rows := make([]string, height)
	if title != "" {
		rows[0] = titleStyle.Render(title)
	}

	indent := strings.Repeat(" ", max(0, width/4))
	for i, item := range m.items {
		y := height/4 + i
		if y < 0 || y >= height {
			continue
		}
		if i == m.selected {
			rows[y] = indent + selectedItemStyle.Render(item)
		} else {
			rows[y] = indent + itemStyle.Render(item)
		}
	}
	return strings.Join(rows, "\n")
}
