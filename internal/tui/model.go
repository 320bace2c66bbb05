package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"vboxctl/internal/config"
	"vboxctl/internal/virtualbox"
	"vboxctl/pkg/logging"
)

const splashBanner = `/)  /)   +----------------------------+
( .-. ) ~ | vboxctl                    |
/   /   ~ | Interactive VM Management  |
          | enter to continue...       |
          | q to quit.                 |
          +----------------------------+`

// Model is the application controller. It owns exactly one active screen
// at a time and routes key events to the state machine behind that screen.
// All per-screen state (menu selection, viewer page, wizard progress) is
// discarded when the screen is left.
type Model struct {
	provider virtualbox.Provider
	defaults config.WizardDefaults
	logCh    <-chan logging.LogEntry

	screen   screen
	width    int
	height   int
	ready    bool
	quitting bool

	// Top menu. vms is the snapshot backing the current menu items; it is
	// replaced wholesale on every re-entry to the top menu.
	vms     []virtualbox.VM
	topMenu menuState

	// VM actions menu, bound to one VM while active.
	actionsMenu menuState
	currentVM   virtualbox.VM

	viewer viewerState
	wizard wizardState

	// status is a transient one-line note on menu screens. notice is a
	// blocking diagnostic: while set, the next key press dismisses it and
	// moves to noticeNext.
	status     string
	notice     string
	noticeNext screen

	activityLog []string
}

// NewModel builds the controller in its initial (splash) state.
func NewModel(provider virtualbox.Provider, defaults config.WizardDefaults, logCh <-chan logging.LogEntry) Model {
	return Model{
		provider: provider,
		defaults: defaults,
		logCh:    logCh,
		screen:   screenSplash,
		topMenu:  newMenu(topMenuItems(nil)),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchVMListCmd(m.provider), waitForLogEntryCmd(m.logCh))
}

// topMenuItems builds the top-level menu entries for a fleet snapshot.
func topMenuItems(vms []virtualbox.VM) []string {
	items := []string{"Create New VM"}
	for _, vm := range vms {
		items = append(items, fmt.Sprintf("Select VM: %s", vm.Name))
	}
	return append(items, "Quit")
}

func actionMenuItems(name string) []string {
	return []string{
		fmt.Sprintf("Start VM: %s", name),
		fmt.Sprintf("Show VM Info: %s", name),
		fmt.Sprintf("Delete VM: %s", name),
		"Back",
	}
}

// enterTopMenu switches to the top menu and re-fetches the fleet. The
// selection always resets to the first item so it can never point into a
// listing that changed underneath it.
func (m *Model) enterTopMenu() tea.Cmd {
	m.screen = screenTopMenu
	m.status = ""
	m.topMenu = newMenu(topMenuItems(m.vms))
	return fetchVMListCmd(m.provider)
}

// showNotice blocks on a diagnostic until the next key press.
func (m *Model) showNotice(text string, next screen) {
	m.notice = text
	m.noticeNext = next
}

func (m *Model) appendLog(entry logging.LogEntry) {
	line := fmt.Sprintf("[%s] %s", entry.Subsystem, entry.Message)
	if entry.Err != nil {
		line += ": " + entry.Err.Error()
	}
	m.activityLog = append(m.activityLog, line)
	if len(m.activityLog) > maxActivityLogLines {
		m.activityLog = m.activityLog[len(m.activityLog)-maxActivityLogLines:]
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case logEntryMsg:
		m.appendLog(msg.entry)
		return m, waitForLogEntryCmd(m.logCh)

	case vmListMsg:
		m.vms = msg.vms
		m.topMenu = newMenu(topMenuItems(m.vms))
		if msg.err != nil {
			m.status = errorStyle.Render("Listing failed: " + msg.err.Error())
		}
		return m, nil

	case vmInfoMsg:
		if msg.err != nil {
			m.showNotice(msg.err.Error(), screenVMActions)
			return m, nil
		}
		m.viewer = newViewer(fmt.Sprintf("VM Info - %s", msg.name), msg.lines, m.height)
		m.screen = screenInfoViewer
		return m, nil

	case startResultMsg:
		if msg.err != nil {
			m.showNotice(msg.err.Error(), screenVMActions)
			return m, nil
		}
		m.status = fmt.Sprintf("Start command issued for %s", msg.name)
		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			m.showNotice(msg.err.Error(), screenTopMenu)
			return m, nil
		}
		return m, m.enterTopMenu()

	case createResultMsg:
		m.wizard.finish(msg.err)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// A pending diagnostic eats the key and returns to its parent context.
	if m.notice != "" {
		m.notice = ""
		if m.noticeNext == screenTopMenu {
			return m, m.enterTopMenu()
		}
		m.screen = m.noticeNext
		return m, nil
	}

	switch m.screen {
	case screenSplash:
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.enterTopMenu()

	case screenTopMenu:
		switch m.topMenu.handleKey(msg) {
		case menuActivated:
			idx := m.topMenu.selected
			switch {
			case idx == 0:
				m.wizard = newWizard(m.defaults)
				m.screen = screenWizard
			case idx == len(m.topMenu.items)-1:
				m.quitting = true
				return m, tea.Quit
			default:
				m.currentVM = m.vms[idx-1]
				m.actionsMenu = newMenu(actionMenuItems(m.currentVM.Name))
				m.screen = screenVMActions
				m.status = ""
			}
		case menuExited:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case screenVMActions:
		if msg.String() == "y" {
			if err := clipboard.WriteAll(m.currentVM.UUID); err != nil {
				m.status = errorStyle.Render("Copy failed: " + err.Error())
			} else {
				m.status = fmt.Sprintf("UUID of %s copied to clipboard", m.currentVM.Name)
			}
			return m, nil
		}
		switch m.actionsMenu.handleKey(msg) {
		case menuActivated:
			switch m.actionsMenu.selected {
			case 0:
				m.status = fmt.Sprintf("Starting %s...", m.currentVM.Name)
				return m, startVMCmd(m.provider, m.currentVM.Name)
			case 1:
				return m, fetchVMInfoCmd(m.provider, m.currentVM.Name)
			case 2:
				return m, deleteVMCmd(m.provider, m.currentVM.Name)
			case 3:
				return m, m.enterTopMenu()
			}
		case menuExited:
			return m, m.enterTopMenu()
		}
		return m, nil

	case screenInfoViewer:
		if m.viewer.handleKey(msg) == viewerClosed {
			m.screen = screenVMActions
		}
		return m, nil

	case screenWizard:
		action, cmd := m.wizard.handleKey(msg)
		switch action {
		case wizardAborted, wizardFinished:
			return m, m.enterTopMenu()
		case wizardSubmit:
			return m, createVMCmd(m.provider, m.wizard.request())
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	if m.notice != "" {
		return strings.Join([]string{
			errorStyle.Render("Error: " + m.notice),
			"",
			"Press any key to continue...",
		}, "\n")
	}

	switch m.screen {
	case screenSplash:
		return splashStyle.Render(splashBanner)
	case screenTopMenu:
		return m.withFooter(m.topMenu.view("VirtualBox Manager", m.width, m.height))
	case screenVMActions:
		return m.withFooter(m.actionsMenu.view(fmt.Sprintf("VM Actions - %s", m.currentVM.Name), m.width, m.height))
	case screenInfoViewer:
		return m.viewer.view(m.width)
	case screenWizard:
		return m.wizard.view(m.height)
	}
	return ""
}

// withFooter writes the status line and the most recent activity log entry
// into the bottom rows of a menu canvas, leaving occupied rows alone.
func (m Model) withFooter(canvas string) string {
	rows := strings.Split(canvas, "\n")
	if m.status != "" && len(rows) >= 1 && rows[len(rows)-1] == "" {
		rows[len(rows)-1] = statusStyle.Render(m.status)
	}
	if len(m.activityLog) > 0 && len(rows) >= 2 && rows[len(rows)-2] == "" {
		rows[len(rows)-2] = instructionStyle.Render(m.activityLog[len(m.activityLog)-1])
	}
	return strings.Join(rows, "\n")
}
