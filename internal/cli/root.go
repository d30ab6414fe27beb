// Package cli defines the dealscout command tree.
package cli

import "github.com/spf13/cobra"

// NewRootCommand builds the root command with its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dealscout",
		Short:        "Check your Steam wishlist for notable deals",
		Long:         "dealscout cross-references your Steam wishlist with IsThereAnyDeal price history\nand tells you which games are at a notably good price right now.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCommand())
	root.AddCommand(newSyncCommand())

	return root
}
