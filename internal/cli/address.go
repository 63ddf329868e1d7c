package cli

import (
	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/actions"
	"pstack.dev/pstack/internal/cli/helpers"
	"pstack.dev/pstack/internal/runtime"
)

// newAddressCmd creates the address command
func newAddressCmd() *cobra.Command {
	var withDate bool

	cmd := &cobra.Command{
		Use:   "address [author]",
		Short: "Split an author string into name and email",
		Long: `Split an author string of the form "name <email>" or "email (name)".

With --date the form is "name <email> date". Without an author string,
your own identity is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.AddressOptions{WithDate: withDate}
			if len(args) > 0 {
				opts.Address = args[0]
			}
			return helpers.RunBare(cmd, func(ctx *runtime.Context) error {
				return actions.AddressAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&withDate, "date", false, "Also parse a trailing date")

	return cmd
}
