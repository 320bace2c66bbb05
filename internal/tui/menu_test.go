package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyUp() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyUp} }
func keyDown() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }
func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMenuClampsAtBothEnds(t *testing.T) {
	m := newMenu([]string{"a", "b", "c"})

	m.handleKey(keyUp())
	assert.Equal(t, 0, m.selected)

	for i := 0; i < 10; i++ {
		m.handleKey(keyDown())
	}
	assert.Equal(t, 2, m.selected)

	for i := 0; i < 10; i++ {
		m.handleKey(keyUp())
	}
	assert.Equal(t, 0, m.selected)
}

func TestMenuUpThenDownRestoresSelection(t *testing.T) {
	m := newMenu([]string{"a", "b", "c"})
	m.handleKey(keyDown())
	before := m.selected

	m.handleKey(keyUp())
	m.handleKey(keyDown())
	assert.Equal(t, before, m.selected)
}

func TestMenuSelectionAlwaysInRange(t *testing.T) {
	m := newMenu([]string{"a", "b", "c", "d"})
	keys := []tea.KeyMsg{
		keyDown(), keyDown(), keyUp(), keyDown(), keyDown(), keyDown(),
		keyDown(), keyUp(), keyUp(), keyUp(), keyUp(), keyUp(),
	}
	for _, k := range keys {
		m.handleKey(k)
		assert.GreaterOrEqual(t, m.selected, 0)
		assert.Less(t, m.selected, len(m.items))
	}
}

func TestMenuActions(t *testing.T) {
	m := newMenu([]string{"a", "b"})

	assert.Equal(t, menuMoved, m.handleKey(keyDown()))
	assert.Equal(t, menuActivated, m.handleKey(keyEnter()))
	assert.Equal(t, menuExited, m.handleKey(keyRune('q')))
	assert.Equal(t, menuIgnored, m.handleKey(keyRune('x')))
	assert.Equal(t, 1, m.selected)
}

func TestMenuEnterOnEmptyIsIgnored(t *testing.T) {
	m := newMenu(nil)
	assert.Equal(t, menuIgnored, m.handleKey(keyEnter()))
}

func TestMenuViewGeometry(t *testing.T) {
	m := newMenu([]string{"first", "second"})
	m.selected = 1

	rows := strings.Split(m.view("Title", 40, 12), "\n")
	assert.Len(t, rows, 12)
	assert.Contains(t, rows[0], "Title")

	// Items start at row height/4, indented by width/4.
	assert.True(t, strings.HasPrefix(rows[3], strings.Repeat(" ", 10)))
	assert.Contains(t, rows[3], "first")
	assert.Contains(t, rows[4], "second")
	assert.Empty(t, rows[5])
}
