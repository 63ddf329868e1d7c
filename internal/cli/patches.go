package cli

import (
	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/actions"
	"pstack.dev/pstack/internal/cli/helpers"
	"pstack.dev/pstack/internal/runtime"
)

// newPatchesCmd creates the patches command
func newPatchesCmd() *cobra.Command {
	var unapplied bool

	cmd := &cobra.Command{
		Use:   "patches <range>...",
		Short: "Print the patches selected by names and ranges",
		Long: `Print the patches selected by patch names and ranges.

A range is first..last; either end may be left out. A range whose first
patch comes after its last is listed in reverse.

Examples:
  pstack patches p1 p3
  pstack patches p2..
  pstack patches --unapplied ..p5`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: helpers.CompletePatches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PatchesAction(ctx, actions.PatchesOptions{
					Ranges:    args,
					Unapplied: unapplied,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&unapplied, "unapplied", "u", false, "Select among unapplied patches")

	return cmd
}
