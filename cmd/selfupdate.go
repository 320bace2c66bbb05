package cmd

import (
	"context"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the repository self-update pulls releases from.
const githubRepoSlug = "vboxctl/vboxctl"

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update vboxctl to the latest release",
		Long: `Checks for the latest release on GitHub and, if a newer version is
available, downloads it and replaces the current binary in place.`,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	version := rootCmd.Version
	if version == "" || version == "dev" {
		return fmt.Errorf("cannot self-update a development version; install a released build first")
	}

	latest, err := selfupdate.UpdateSelf(context.Background(), version, selfupdate.ParseSlug(githubRepoSlug))
	if err != nil {
		return fmt.Errorf("self-update failed: %w", err)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current version %s is the latest\n", version)
	} else {
		fmt.Printf("Updated to version %s\n", latest.Version())
	}
	return nil
}
