package cli

import (
	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/actions"
	"pstack.dev/pstack/internal/cli/helpers"
	"pstack.dev/pstack/internal/runtime"
)

// newIDCmd creates the id command
func newIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id [revision]",
		Short: "Print the commit id of a revision",
		Long: `Print the commit id a revision resolves to.

Without a revision, prints the top of the current patch.

Examples:
  pstack id
  pstack id fix-parser//bottom
  pstack id refactor@feature/x
  pstack id base
  pstack id HEAD~2`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompletePatches,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.IDOptions{}
			if len(args) > 0 {
				opts.Revision = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.IDAction(ctx, opts)
			})
		},
	}

	return cmd
}
