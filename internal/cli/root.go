package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/cli/helpers"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pstack",
		Short: "pstack resolves patch revisions and ranges of a git patch stack",
		Long: `pstack resolves patch revisions and ranges of a git patch stack.

Revisions have the form patch[@branch][//id] where id is one of top, bottom,
top.old or bottom.old. Anything else is handed to git.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringP(helpers.DirectoryFlag, "C", ".", "Run as if started in this directory")

	rootCmd.AddCommand(newIDCmd())
	rootCmd.AddCommand(newSeriesCmd())
	rootCmd.AddCommand(newPatchesCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newAddressCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
