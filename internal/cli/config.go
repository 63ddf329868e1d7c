package cli

import (
	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/actions"
	"pstack.dev/pstack/internal/cli/helpers"
	"pstack.dev/pstack/internal/config"
	"pstack.dev/pstack/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set repository configuration values.

Keys:
  grammar   auto, slashed or plain; whether branch names may contain "/"
  backend   go-git or git; how non-patch revisions are resolved

Examples:
  pstack config get grammar
  pstack config set grammar slashed
  pstack config set backend git`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.RunRepo(cmd, actions.ConfigListAction)
		},
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Get a configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.RunRepo(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigGetAction(ctx, args[0])
			})
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.RunRepo(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigSetAction(ctx, args[0], args[1])
			})
		},
	}
}
