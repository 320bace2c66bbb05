package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vboxctl/internal/config"
	"vboxctl/internal/virtualbox"
	"vboxctl/pkg/logging"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the VM fleet without entering the TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			logging.InitForCLI(logging.LevelWarn, os.Stderr)

			provider := virtualbox.NewClient(cfg.Manager)
			vms, err := provider.ListVMs(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing VMs: %w", err)
			}
			if len(vms) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No VMs registered.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tUUID")
			for _, vm := range vms {
				fmt.Fprintf(w, "%s\t%s\n", vm.Name, vm.UUID)
			}
			return w.Flush()
		},
	}
}
