package helpers

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/output"
	"pstack.dev/pstack/internal/runtime"
)

// CompletePatches is a helper for cobra.ValidArgsFunction. It returns the
// patches of the current branch, applied first, or "patch@branch" candidates
// once an "@" has been typed.
func CompletePatches(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	splog, err := output.NewSplogWithConfig(io.Discard, io.Discard, "")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ctx, err := runtime.GetContext(Directory(cmd), splog)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	if patch, _, ok := strings.Cut(toComplete, "@"); ok {
		branches, err := ctx.Repo.GetBranchNames()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		candidates := make([]string, 0, len(branches))
		for _, branch := range branches {
			candidates = append(candidates, patch+"@"+branch)
		}
		return candidates, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := ctx.RequireSeries()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := append([]string{}, s.AppliedPatches()...)
	names = append(names, s.UnappliedPatches()...)
	return names, cobra.ShellCompDirectiveNoFileComp
}
