// Package mcpserver exposes the VM provider's operations as MCP tools so
// agents and editors can drive the same management surface the TUI offers.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"vboxctl/internal/config"
	"vboxctl/internal/virtualbox"
)

// VMTools bundles the provider and the wizard defaults used to fill
// omitted vm_create parameters.
type VMTools struct {
	provider virtualbox.Provider
	defaults config.WizardDefaults
}

// NewVMTools creates the tool set around a provider.
func NewVMTools(provider virtualbox.Provider, defaults config.WizardDefaults) *VMTools {
	return &VMTools{provider: provider, defaults: defaults}
}

// NewServer builds the MCP server with all VM tools registered.
func NewServer(version string, tools *VMTools) *server.MCPServer {
	s := server.NewMCPServer(
		"vboxctl",
		version,
		server.WithToolCapabilities(true),
	)
	tools.register(s)
	return s
}

// ServeStdio runs the server over stdin/stdout until the client hangs up.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
