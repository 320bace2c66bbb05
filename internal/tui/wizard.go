package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vboxctl/internal/config"
	"vboxctl/internal/virtualbox"
)

// wizardAction is the outcome of feeding one key to the wizard.
type wizardAction int

const (
	wizardContinue wizardAction = iota
	// wizardAborted: the operator pressed q on a field prompt. The whole
	// wizard terminates; no provider call has been or will be made.
	wizardAborted
	// wizardSubmit: the last field resolved; the caller should run the
	// creation sequence.
	wizardSubmit
	// wizardFinished: the result was shown and a key was pressed; the
	// caller should leave the wizard.
	wizardFinished
)

// wizardPhase tracks where the wizard is in its per-field protocol.
type wizardPhase int

const (
	// wizardPrompting: the current field shows its bracketed default and
	// waits for one key: q aborts, ctrl+s takes the default, anything else
	// opens free-text entry.
	wizardPrompting wizardPhase = iota
	// wizardEditing: free-text entry for the current field, terminated by
	// enter. An empty entry is accepted as given.
	wizardEditing
	// wizardSubmitting: all fields resolved, the creation sequence is
	// running.
	wizardSubmitting
	// wizardDone: success or failure is displayed until any key is pressed.
	wizardDone
)

// wizardField is one entry of the fixed field sequence.
type wizardField struct {
	label        string // short name used when echoing resolved values
	prompt       string // free-text entry prompt
	defaultValue string
	displayUnit  string // suffix shown inside the brackets, e.g. "MB"
}

// wizardState collects the six VM creation fields in fixed order, each
// resolving to its default (ctrl+s) or to typed text, then reports the
// submit outcome. Aborting at any field is all-or-nothing: no partial
// submission ever happens.
type wizardState struct {
	fields []wizardField
	values []string
	index  int
	phase  wizardPhase
	input  textinput.Model
	err    error
}

// newWizard builds the field sequence from the configured defaults.
func newWizard(defaults config.WizardDefaults) wizardState {
	ti := textinput.New()
	ti.CharLimit = 156

	return wizardState{
		fields: []wizardField{
			{label: "Name", prompt: "Enter VM name: ", defaultValue: defaults.Name},
			{label: "OS type", prompt: "Enter OS type (e.g., Ubuntu_64): ", defaultValue: defaults.OSType},
			{label: "Memory", prompt: "Enter memory size (MB): ", defaultValue: defaults.MemoryMB, displayUnit: "MB"},
			{label: "CPUs", prompt: "Enter number of CPUs: ", defaultValue: defaults.CPUCount, displayUnit: " CPUs"},
			{label: "Video memory", prompt: "Enter video memory (MB): ", defaultValue: defaults.VideoMemoryMB, displayUnit: "MB"},
			{label: "Disk size", prompt: "Enter hard disk size (MB): ", defaultValue: defaults.DiskMB, displayUnit: "MB"},
		},
		values: make([]string, 0, 6),
		input:  ti,
	}
}

// handleKey advances the per-field state machine by one key press.
func (w *wizardState) handleKey(msg tea.KeyMsg) (wizardAction, tea.Cmd) {
	switch w.phase {
	case wizardPrompting:
		switch msg.String() {
		case "q":
			return wizardAborted, nil
		case "ctrl+s":
			return w.resolveCurrent(w.fields[w.index].defaultValue), nil
		default:
			// Any other key starts free-text entry for this field. The
			// triggering key is routed into the input, so a printable
			// character becomes the first character of the value instead
			// of being swallowed.
			w.phase = wizardEditing
			w.input.Prompt = w.fields[w.index].prompt
			w.input.SetValue("")
			w.input.Focus()
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			return wizardContinue, tea.Batch(textinput.Blink, cmd)
		}

	case wizardEditing:
		if msg.String() == "enter" {
			value := w.input.Value()
			w.input.Blur()
			w.input.Reset()
			return w.resolveCurrent(value), nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return wizardContinue, cmd

	case wizardSubmitting:
		// The creation sequence is running; keys are ignored until the
		// result arrives.
		return wizardContinue, nil

	case wizardDone:
		return wizardFinished, nil
	}
	return wizardContinue, nil
}

// resolveCurrent records the value for the current field and advances.
func (w *wizardState) resolveCurrent(value string) wizardAction {
	w.values = append(w.values, value)
	w.index++
	if w.index >= len(w.fields) {
		w.phase = wizardSubmitting
		return wizardSubmit
	}
	w.phase = wizardPrompting
	return wizardContinue
}

// finish records the submit outcome and switches to the result display.
func (w *wizardState) finish(err error) {
	w.err = err
	w.phase = wizardDone
}

// request assembles the creation request from the resolved values. Only
// valid once all six fields are resolved.
func (w wizardState) request() virtualbox.CreateRequest {
	return virtualbox.CreateRequest{
		Name:          w.values[0],
		OSType:        w.values[1],
		MemoryMB:      w.values[2],
		CPUCount:      w.values[3],
		VideoMemoryMB: w.values[4],
		DiskMB:        w.values[5],
	}
}

// view lays the wizard out with the title and hint at the top, one row per
// field every second line starting at row 4, and the submit status below
// the last field.
func (w wizardState) view(height int) string {
	rowCount := 4 + 2*len(w.fields) + 4
	if rowCount < height {
		rowCount = height
	}
	rows := make([]string, rowCount)
	rows[1] = "  " + titleStyle.Render("VM Creation Wizard (press ctrl+s to use default value, 'q' to quit)")
	rows[2] = "  " + instructionStyle.Render("Default values will be shown in brackets [...]")

	for i, f := range w.fields {
		y := 4 + 2*i
		switch {
		case i < len(w.values):
			rows[y] = fmt.Sprintf("  %s: %s", f.label, w.values[i])
		case i == w.index && w.phase == wizardEditing:
			rows[y] = "  " + w.input.View()
		case i == w.index && w.phase == wizardPrompting:
			rows[y] = fmt.Sprintf("  [%s%s]", f.defaultValue, f.displayUnit)
		}
	}

	statusRow := 4 + 2*len(w.fields)
	switch w.phase {
	case wizardSubmitting:
		rows[statusRow] = "  Creating VM... Please wait..."
	case wizardDone:
		if w.err != nil {
			rows[statusRow] = "  " + errorStyle.Render("Error: "+w.err.Error())
			rows[statusRow+1] = "  " + errorStyle.Render("VM and/or disk may have been partially created.")
			rows[statusRow+2] = "  Press any key to continue..."
		} else {
			rows[statusRow] = "  VM created successfully! Press any key to continue..."
		}
	}

	return strings.Join(rows, "\n")
}
