package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vboxctl/internal/virtualbox"
)

// register adds every VM tool to the server.
func (t *VMTools) register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("vm_list",
		mcp.WithDescription("List all registered VMs with their UUIDs"),
	), t.handleVMList)

	s.AddTool(mcp.NewTool("vm_info",
		mcp.WithDescription("Get the detailed configuration of a VM"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the VM"),
		),
	), t.handleVMInfo)

	s.AddTool(mcp.NewTool("vm_start",
		mcp.WithDescription("Start a VM"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the VM to start"),
		),
	), t.handleVMStart)

	s.AddTool(mcp.NewTool("vm_delete",
		mcp.WithDescription("Unregister a VM and delete its files"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the VM to delete"),
		),
	), t.handleVMDelete)

	s.AddTool(mcp.NewTool("vm_create",
		mcp.WithDescription("Create and register a new VM with an attached disk. Omitted parameters fall back to the configured defaults."),
		mcp.WithString("name", mcp.Description("VM name")),
		mcp.WithString("os_type", mcp.Description("Guest OS type, e.g. Ubuntu_64")),
		mcp.WithString("memory_mb", mcp.Description("Memory size in MB")),
		mcp.WithString("cpu_count", mcp.Description("Number of CPUs")),
		mcp.WithString("video_memory_mb", mcp.Description("Video memory in MB")),
		mcp.WithString("disk_mb", mcp.Description("Hard disk size in MB")),
	), t.handleVMCreate)
}

func (t *VMTools) handleVMList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vms, err := t.provider.ListVMs(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list VMs: %v", err)), nil
	}

	type entry struct {
		Name string `json:"name"`
		UUID string `json:"uuid"`
	}
	entries := make([]entry, 0, len(vms))
	for _, vm := range vms {
		entries = append(entries, entry{Name: vm.Name, UUID: vm.UUID})
	}
	jsonData, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format VM list: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (t *VMTools) handleVMInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := stringArg(request, "name")
	if !ok {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	lines, err := t.provider.VMInfo(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get info for %s: %v", name, err)), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (t *VMTools) handleVMStart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := stringArg(request, "name")
	if !ok {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	if err := t.provider.StartVM(ctx, name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to start %s: %v", name, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Start command issued for %s", name)), nil
}

func (t *VMTools) handleVMDelete(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := stringArg(request, "name")
	if !ok {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	if err := t.provider.DeleteVM(ctx, name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete %s: %v", name, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %s", name)), nil
}

func (t *VMTools) handleVMCreate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := virtualbox.CreateRequest{
		Name:          stringArgOr(request, "name", t.defaults.Name),
		OSType:        stringArgOr(request, "os_type", t.defaults.OSType),
		MemoryMB:      stringArgOr(request, "memory_mb", t.defaults.MemoryMB),
		CPUCount:      stringArgOr(request, "cpu_count", t.defaults.CPUCount),
		VideoMemoryMB: stringArgOr(request, "video_memory_mb", t.defaults.VideoMemoryMB),
		DiskMB:        stringArgOr(request, "disk_mb", t.defaults.DiskMB),
	}
	if err := t.provider.CreateVM(ctx, req); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create %s (VM and/or disk may have been partially created): %v", req.Name, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Created VM %s", req.Name)), nil
}

// stringArg extracts a non-empty string argument.
func stringArg(request mcp.CallToolRequest, key string) (string, bool) {
	value, ok := request.GetArguments()[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// stringArgOr extracts a string argument, falling back to a default.
func stringArgOr(request mcp.CallToolRequest, key, fallback string) string {
	if value, ok := stringArg(request, key); ok {
		return value
	}
	return fallback
}
