package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vboxctl/internal/config"
	"vboxctl/internal/tui"
	"vboxctl/internal/virtualbox"
	"vboxctl/pkg/logging"
)

func newManageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manage",
		Short: "Open the interactive VM manager",
		Long: `Opens the full-screen terminal interface: browse the fleet, inspect a
VM's configuration, start or delete machines, or create a new VM with
the guided wizard.`,
		RunE: runManage,
	}
}

func runManage(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// TUI mode diverts log entries to a channel the model drains, so
	// nothing writes to the terminal behind the alternate screen.
	logCh := logging.InitForTUI(logging.LevelInfo)

	provider := virtualbox.NewClient(cfg.Manager)
	p := tui.NewProgram(provider, cfg.WizardDefaults, logCh)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}
