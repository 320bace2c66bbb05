package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vboxctl/internal/config"
	"vboxctl/internal/mcpserver"
	"vboxctl/internal/virtualbox"
	"vboxctl/pkg/logging"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve VM management as MCP tools over stdio",
		Long: `Starts an MCP server on stdin/stdout exposing vm_list, vm_info,
vm_start, vm_delete and vm_create, backed by the same VBoxManage
provider the TUI uses. Point an MCP-capable client at this command to
manage VMs from an editor or agent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			// stdout carries the protocol; logs must go to stderr.
			logging.InitForCLI(logging.LevelInfo, os.Stderr)

			provider := virtualbox.NewClient(cfg.Manager)
			tools := mcpserver.NewVMTools(provider, cfg.WizardDefaults)
			s := mcpserver.NewServer(rootCmd.Version, tools)

			logging.Info("MCP", "serving VM tools over stdio")
			return mcpserver.ServeStdio(s)
		},
	}
}
