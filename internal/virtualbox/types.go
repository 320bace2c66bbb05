package virtualbox

import (
	"fmt"
	"strings"
)

// VM is one entry of a fleet listing: the machine's name and its UUID as
// reported by the management tool. Listings are produced fresh on every
// request; nothing is cached between calls.
type VM struct {
	Name string
	UUID string
}

// CreateRequest carries the six fields collected by the creation wizard.
// Every value is a string passed through to the management tool verbatim.
type CreateRequest struct {
	Name          string
	OSType        string
	MemoryMB      string
	CPUCount      string
	VideoMemoryMB string
	DiskMB        string
}

// CommandError reports a management tool invocation that returned
// non-success. It carries the full argv and the tool's stderr so callers
// can surface the diagnostic text inline.
type CommandError struct {
	Args   []string
	Stderr string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", strings.Join(e.Args, " "))
	if strings.TrimSpace(e.Stderr) != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}
	return msg
}
