package cli

import (
	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/actions"
	"pstack.dev/pstack/internal/cli/helpers"
)

// newSeriesCmd creates the series command
func newSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "List the patches of the current branch",
		Long: `List the patches of the current branch.

Applied patches are marked with "+", the current patch with ">" and
unapplied patches with "-".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.SeriesAction)
		},
	}

	return cmd
}
