package cli

import (
	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/actions"
	"pstack.dev/pstack/internal/cli/helpers"
	"pstack.dev/pstack/internal/runtime"
	"pstack.dev/pstack/internal/utils"
)

// newNameCmd creates the name command
func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [message]",
		Short: "Derive a patch name from a commit message",
		Long: `Derive a patch name from the first line of a commit message.

The message is read from standard input when not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var message string
			if len(args) > 0 {
				message = args[0]
			} else {
				var err error
				message, err = utils.ReadFrom(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			return helpers.RunBare(cmd, func(ctx *runtime.Context) error {
				return actions.NameAction(ctx, actions.NameOptions{Message: message})
			})
		},
	}

	return cmd
}
