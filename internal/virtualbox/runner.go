package virtualbox

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"vboxctl/pkg/logging"
)

// Result is the outcome of a single management tool invocation.
type Result struct {
	Succeeded bool
	Stdout    string
	Stderr    string
}

// Runner executes the external management tool. It exists as an interface
// so the client can be tested without a VirtualBox installation.
type Runner interface {
	// Run invokes the tool with the given arguments and blocks until it
	// exits. A non-zero exit code is reported via Result.Succeeded, not as
	// an error; the returned error is reserved for failures to invoke the
	// tool at all (typically a missing binary).
	Run(ctx context.Context, args ...string) (Result, error)
}

// ErrToolUnavailable indicates the management tool could not be invoked at
// all. Callers listing the fleet treat this as an empty fleet.
var ErrToolUnavailable = errors.New("management tool unavailable")

// execRunner runs a real binary via os/exec.
type execRunner struct {
	path string
}

// NewExecRunner returns a Runner invoking the binary at path (a bare name
// is resolved via PATH).
func NewExecRunner(path string) Runner {
	return &execRunner{path: path}
}

func (r *execRunner) Run(ctx context.Context, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, r.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Succeeded: err == nil,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The process never ran: missing binary, permission problem, etc.
			logging.Warn("VirtualBox", "cannot invoke %s: %v", r.path, err)
			return res, ErrToolUnavailable
		}
		logging.Debug("VirtualBox", "%s exited non-zero: %v", r.path, err)
	}
	return res, nil
}
