package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// Bare `vboxctl` drops straight into the interactive manager.
var rootCmd = &cobra.Command{
	Use:   "vboxctl",
	Short: "Interactive VirtualBox VM management from the terminal",
	Long: `vboxctl is a keyboard-driven front-end for VBoxManage. It lets you
browse the VM fleet, inspect configurations, start or delete machines,
and create new VMs through a guided wizard.`,
	// SilenceUsage prevents printing the usage block on errors we handle
	// ourselves (failed commands, unavailable VBoxManage).
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runManage(cmd, args)
	},
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "vboxctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero.
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newManageCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
