package virtualbox

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"vboxctl/internal/config"
	"vboxctl/pkg/logging"
)

// Provider exposes the VM management operations the rest of vboxctl
// consumes. The TUI and the MCP server are both written against this
// interface and never invoke the management tool directly.
type Provider interface {
	// ListVMs returns the current fleet. An unavailable management tool is
	// not an error: it yields an empty fleet.
	ListVMs(ctx context.Context) ([]VM, error)
	// VMInfo returns the tool's human-readable description of a VM, split
	// into lines.
	VMInfo(ctx context.Context, name string) ([]string, error)
	// StartVM boots the named VM.
	StartVM(ctx context.Context, name string) error
	// DeleteVM unregisters the named VM and deletes its files.
	DeleteVM(ctx context.Context, name string) error
	// CreateVM performs the five-step creation sequence. The first step
	// that fails aborts the remainder; steps already performed are not
	// rolled back.
	CreateVM(ctx context.Context, req CreateRequest) error
}

// listLineRe matches one line of `VBoxManage list vms` output:
//
//	"ubuntu-dev" {5b2e32a2-4ba7-4f82-a7a4-90ca5d7e4d6a}
var listLineRe = regexp.MustCompile(`^"([^"]+)" \{(.+)\}$`)

// Client is the VBoxManage-backed Provider.
type Client struct {
	runner            Runner
	storageController string
}

// NewClient builds a Client from the manager settings.
func NewClient(settings config.ManagerSettings) *Client {
	return &Client{
		runner:            NewExecRunner(settings.Path),
		storageController: settings.StorageController,
	}
}

// NewClientWithRunner builds a Client around an explicit Runner. Used by
// tests and anywhere the exec layer needs substituting.
func NewClientWithRunner(runner Runner, storageController string) *Client {
	return &Client{runner: runner, storageController: storageController}
}

func (c *Client) ListVMs(ctx context.Context) ([]VM, error) {
	res, err := c.runner.Run(ctx, "list", "vms")
	if err != nil {
		if errors.Is(err, ErrToolUnavailable) {
			// No tool means no fleet, not a failure.
			return nil, nil
		}
		return nil, err
	}
	if !res.Succeeded {
		return nil, &CommandError{Args: []string{"list", "vms"}, Stderr: res.Stderr}
	}

	var vms []VM
	for _, line := range strings.Split(res.Stdout, "\n") {
		if m := listLineRe.FindStringSubmatch(strings.TrimRight(line, "\r")); m != nil {
			vms = append(vms, VM{Name: m[1], UUID: m[2]})
		}
	}
	logging.Debug("VirtualBox", "listed %d VMs", len(vms))
	return vms, nil
}

func (c *Client) VMInfo(ctx context.Context, name string) ([]string, error) {
	res, err := c.runner.Run(ctx, "showvminfo", name)
	if err != nil {
		return nil, err
	}
	if !res.Succeeded {
		return nil, &CommandError{Args: []string{"showvminfo", name}, Stderr: res.Stderr}
	}
	return strings.Split(strings.TrimRight(res.Stdout, "\n"), "\n"), nil
}

func (c *Client) StartVM(ctx context.Context, name string) error {
	return c.run(ctx, "startvm", name)
}

func (c *Client) DeleteVM(ctx context.Context, name string) error {
	return c.run(ctx, "unregistervm", name, "--delete")
}

func (c *Client) CreateVM(ctx context.Context, req CreateRequest) error {
	diskName := req.Name + ".vdi"
	steps := [][]string{
		{"createvm", "--name", req.Name, "--ostype", req.OSType, "--register"},
		{"modifyvm", req.Name, "--memory", req.MemoryMB, "--cpus", req.CPUCount, "--vram", req.VideoMemoryMB},
		{"createhd", "--filename", diskName, "--size", req.DiskMB},
		{"storagectl", req.Name, "--name", c.storageController, "--add", "sata"},
		{"storageattach", req.Name, "--storagectl", c.storageController,
			"--port", "0", "--device", "0", "--type", "hdd", "--medium", diskName},
	}

	for _, step := range steps {
		if err := c.run(ctx, step...); err != nil {
			logging.Error("VirtualBox", err, "VM creation aborted at %s", step[0])
			return err
		}
	}
	logging.Info("VirtualBox", "created VM %q", req.Name)
	return nil
}

// run executes one tool invocation and folds its outcome into an error.
func (c *Client) run(ctx context.Context, args ...string) error {
	res, err := c.runner.Run(ctx, args...)
	if err != nil {
		return err
	}
	if !res.Succeeded {
		return &CommandError{Args: args, Stderr: res.Stderr}
	}
	return nil
}
